package main

import (
	"sort"
	"strings"
)

// visibleIndices computes the ordered visible subset of the collection for
// the given free-text query and tag constraint. It is a pure function of
// its inputs: identical arguments always produce identical output.
//
// Pipeline: tag gate (case-insensitive) first, then relevance ranking with
// exclusion of non-matching records (an empty query keeps every survivor at
// score 0), then sort by score descending. Ties keep original collection
// order — sort.SliceStable makes the ordering fully deterministic.
func visibleIndices(bookmarks []bookmark, query, tagFilter string) []int {
	type scoredIndex struct {
		idx   int
		score int
	}

	var kept []scoredIndex
	for i, b := range bookmarks {
		if tagFilter != "" && !hasTag(b, tagFilter) {
			continue
		}
		score := 0
		if query != "" {
			score = rankBookmark(query, b)
			if score < 0 {
				continue
			}
		}
		kept = append(kept, scoredIndex{idx: i, score: score})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})

	out := make([]int, len(kept))
	for i, s := range kept {
		out[i] = s.idx
	}
	return out
}

// hasTag reports whether b carries the tag, compared case-insensitively.
func hasTag(b bookmark, tag string) bool {
	for _, t := range b.tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// allTags returns the distinct tags present across the collection, sorted
// case-insensitively. Tags differing only in case collapse to the first
// spelling seen.
func allTags(bookmarks []bookmark) []string {
	seen := make(map[string]bool)
	var out []string
	for _, b := range bookmarks {
		for _, t := range b.tags {
			key := strings.ToLower(t)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
