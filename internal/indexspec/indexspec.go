// Package indexspec parses user-supplied index lists like "0,2,5-7".
package indexspec

import (
	"sort"
	"strconv"
	"strings"
)

// Parse expands spec into the list positions it names, preserving the
// left-to-right order of tokens. Tokens are comma-separated: either a bare
// non-negative integer or an inclusive range "a-b"; ranges normalize
// ascending, so "5-3" and "3-5" both expand to 3,4,5. Whitespace around
// tokens and range endpoints is ignored, empty tokens are skipped, and a
// token that fails to parse is dropped whole. Parse never fails; the result
// may be empty and may contain duplicates. Bounds checks and any
// deduplication or reordering are the caller's concern.
func Parse(spec string) []int {
	var result []int
	for _, part := range strings.Split(spec, ",") {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		if startStr, endStr, ok := strings.Cut(p, "-"); ok {
			start, err := strconv.Atoi(strings.TrimSpace(startStr))
			if err != nil || start < 0 {
				continue
			}
			end, err := strconv.Atoi(strings.TrimSpace(endStr))
			if err != nil || end < 0 {
				continue
			}
			if start > end {
				start, end = end, start
			}
			for i := start; i <= end; i++ {
				result = append(result, i)
			}
			continue
		}

		if v, err := strconv.Atoi(p); err == nil {
			result = append(result, v)
		}
	}
	return result
}

// Ascending returns the distinct indexes sorted ascending, the order batch
// completion applies them in.
func Ascending(indexes []int) []int {
	out := unique(indexes)
	sort.Ints(out)
	return out
}

// Descending returns the distinct indexes sorted descending. Deletion uses
// this order so removing an item never shifts a later target.
func Descending(indexes []int) []int {
	out := unique(indexes)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

func unique(indexes []int) []int {
	seen := make(map[int]bool, len(indexes))
	out := make([]int, 0, len(indexes))
	for _, idx := range indexes {
		if seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}
	return out
}
