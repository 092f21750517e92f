package util

import "github.com/antzucaro/matchr"

// maxSuggestDistance is the largest edit distance at which SuggestColumn still
// offers a candidate.
const maxSuggestDistance = 2

// SuggestColumn returns the element of have closest to want by Levenshtein
// distance, or "" if nothing is within maxSuggestDistance edits. Ties go to
// the earliest column.
func SuggestColumn(want string, have []string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, h := range have {
		if d := matchr.Levenshtein(want, h); d < bestDist {
			best, bestDist = h, d
		}
	}
	return best
}
