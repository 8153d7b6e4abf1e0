package main

import "testing"

func TestFuzzyMatchEmptyPatternMatchesEverything(t *testing.T) {
	for _, text := range []string{"", "github", "a very long piece of text"} {
		if got := fuzzyMatch("", text); got != 0 {
			t.Errorf("fuzzyMatch(%q, %q) = %d, want 0", "", text, got)
		}
	}
}

func TestFuzzyMatchRejectsNonSubsequence(t *testing.T) {
	cases := []struct {
		pattern, text string
	}{
		{"x", ""},
		{"abc", "acb"},
		{"gh", "g"},
		{"longpattern", "short"},
	}
	for _, c := range cases {
		if got := fuzzyMatch(c.pattern, c.text); got != noMatch {
			t.Errorf("fuzzyMatch(%q, %q) = %d, want noMatch", c.pattern, c.text, got)
		}
	}
}

func TestFuzzyMatchIsCaseInsensitive(t *testing.T) {
	lower := fuzzyMatch("gh", "github")
	upper := fuzzyMatch("GH", "GitHub")
	if lower < 0 || lower != upper {
		t.Errorf("case folding broken: lower=%d upper=%d", lower, upper)
	}
}

func TestFuzzyMatchExactScores(t *testing.T) {
	cases := []struct {
		name          string
		pattern, text string
		want          int
	}{
		// a: 10 base + 20 start + 10 position; b: 10 base + 10 consecutive + 9 position.
		{"adjacent pair", "ab", "ab", 69},
		// gap resets the consecutive run, but '_' grants a boundary bonus.
		{"separator gap", "ab", "a_b", 78},
		// plain mid-word match gets base + position only.
		{"mid word", "b", "ab", 19},
		// a match right after '/' earns the boundary bonus.
		{"after slash", "b", "a/b", 38},
		// position bonus bottoms out at zero past index 10.
		{"deep position", "x", "aaaaaaaaaaax", 10},
		// three in a row: the run bonus keeps growing.
		{"triple run", "abc", "abc", 107},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := fuzzyMatch(c.pattern, c.text); got != c.want {
				t.Errorf("fuzzyMatch(%q, %q) = %d, want %d", c.pattern, c.text, got, c.want)
			}
		})
	}
}

func TestFuzzyMatchScoreLowerBound(t *testing.T) {
	// Every matched character contributes at least its base 10.
	cases := []struct{ pattern, text string }{
		{"gh", "github"},
		{"code", "code hosting"},
		{"ab", "axxbxx"},
		{"xyz", "x-y-z"},
	}
	for _, c := range cases {
		got := fuzzyMatch(c.pattern, c.text)
		if min := 10 * len(c.pattern); got < min {
			t.Errorf("fuzzyMatch(%q, %q) = %d, want >= %d", c.pattern, c.text, got, min)
		}
	}
}

func TestFuzzyMatchPrefersWordBoundaries(t *testing.T) {
	boundary := fuzzyMatch("b", "a/b")
	buried := fuzzyMatch("b", "ab")
	if boundary <= buried {
		t.Errorf("boundary match %d should beat buried match %d", boundary, buried)
	}
}

func TestFuzzyMatchGreedyTakesLeftmost(t *testing.T) {
	// Greedy scan anchors on the first 'a' even though the later "ab" run
	// would score higher. Determinism over optimality.
	got := fuzzyMatch("ab", "axxab")
	// a@0: 10+20+10 = 40; b@4: 10+0+0+6 = 16.
	if got != 56 {
		t.Errorf("fuzzyMatch(ab, axxab) = %d, want 56", got)
	}
}

func TestRankBookmarkFieldPriority(t *testing.T) {
	b := bookmark{
		name: "github",
		url:  "https://github.com",
		desc: "code hosting on github",
		tags: []string{"git", "hub"},
	}

	nameHit := rankBookmark("gith", b)
	if nameHit < 1000 {
		t.Errorf("name match rank = %d, want >= 1000", nameHit)
	}

	urlOnly := bookmark{name: "work", url: "https://github.com", desc: "daily tools"}
	urlHit := rankBookmark("github", urlOnly)
	if urlHit < 500 || urlHit >= 1000 {
		t.Errorf("url match rank = %d, want in [500, 1000)", urlHit)
	}

	descOnly := bookmark{name: "work", url: "https://example.com", desc: "github mirror"}
	descHit := rankBookmark("github", descOnly)
	if descHit < 100 || descHit >= 500 {
		t.Errorf("desc match rank = %d, want in [100, 500)", descHit)
	}

	tagOnly := bookmark{name: "work", url: "https://example.com", tags: []string{"github"}}
	tagHit := rankBookmark("github", tagOnly)
	if want := fuzzyMatch("github", "github"); tagHit != want {
		t.Errorf("tag match rank = %d, want unboosted %d", tagHit, want)
	}

	if nameHit <= urlHit || urlHit <= descHit || descHit <= tagHit {
		t.Errorf("field priority violated: name=%d url=%d desc=%d tag=%d",
			nameHit, urlHit, descHit, tagHit)
	}
}

func TestRankBookmarkBestTagWins(t *testing.T) {
	b := bookmark{name: "zzz", url: "zzz", desc: "zzz", tags: []string{"xgox", "go"}}
	// "go" as a whole tag scores higher than buried inside "xgox".
	want := fuzzyMatch("go", "go")
	if got := rankBookmark("go", b); got != want {
		t.Errorf("rankBookmark = %d, want best tag score %d", got, want)
	}
}

func TestRankBookmarkNoFieldMatches(t *testing.T) {
	b := bookmark{name: "alpha", url: "https://a.example", desc: "first", tags: []string{"one"}}
	if got := rankBookmark("zzz", b); got != noMatch {
		t.Errorf("rankBookmark = %d, want noMatch", got)
	}
}
