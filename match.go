package main

import "strings"

// Fuzzy matching and ranking for the interactive browser.
//
// fuzzyMatch is a greedy leftmost ordered-subsequence scan: every pattern
// character must appear in text in order, case-insensitively, and each
// match always takes the earliest available position. Greedy scanning is
// not guaranteed to find the best-scoring alignment, but it is fully
// deterministic, which is what the live filter needs.

// noMatch is the fuzzyMatch / rankBookmark result for text that does not
// contain the pattern as an ordered subsequence. It is a normal outcome,
// not an error.
const noMatch = -1

// fuzzyMatch scores how well pattern matches text. Returns noMatch when
// pattern is not an ordered subsequence of text; an empty pattern matches
// everything with score 0.
//
// Per matched character: base 10, plus a consecutive-run bonus of +10 per
// character directly following the previous match (reset on gaps), plus
// +20 when the match sits at the start of text or right after a separator
// (/ . - _ space), plus an early-position bonus of 10-min(i,10).
func fuzzyMatch(pattern, text string) int {
	if pattern == "" {
		return 0
	}

	p := []rune(strings.ToLower(pattern))
	t := []rune(strings.ToLower(text))

	patternIdx := 0
	score := 0
	lastMatch := -1
	consecutive := 0

	for i, c := range t {
		if patternIdx >= len(p) || c != p[patternIdx] {
			continue
		}

		if lastMatch >= 0 {
			if i == lastMatch+1 {
				consecutive += 10
			} else {
				consecutive = 0
			}
		}

		boundaryBonus := 0
		if i == 0 || isBoundary(t[i-1]) {
			boundaryBonus = 20
		}

		positionBonus := 10 - i
		if positionBonus < 0 {
			positionBonus = 0
		}

		score += 10 + consecutive + boundaryBonus + positionBonus
		lastMatch = i
		patternIdx++
	}

	if patternIdx < len(p) {
		return noMatch
	}
	return score
}

func isBoundary(c rune) bool {
	switch c {
	case '/', '.', '-', '_', ' ':
		return true
	}
	return false
}

// rankBookmark combines per-field fuzzyMatch scores into one relevance
// score. Field priority: a name match always outranks a url match, which
// outranks a description match, which outranks a tag match. Tag matches
// carry no boost so that tag-only hits stay below everything else.
// Returns noMatch when no field matches.
func rankBookmark(query string, b bookmark) int {
	nameScore := fuzzyMatch(query, b.name)
	urlScore := fuzzyMatch(query, b.url)
	descScore := fuzzyMatch(query, b.desc)
	tagScore := noMatch
	for _, t := range b.tags {
		if s := fuzzyMatch(query, t); s > tagScore {
			tagScore = s
		}
	}

	switch {
	case nameScore >= 0:
		return nameScore + 1000
	case urlScore >= 0:
		return urlScore + 500
	case descScore >= 0:
		return descScore + 100
	case tagScore >= 0:
		return tagScore
	default:
		return noMatch
	}
}
