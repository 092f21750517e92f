package lcr

import "sort"

// Merge sorts intervals by name, start and end, and merges intervals of the
// same name that overlap.  The input slice is reordered.
func Merge(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}
	sort.Slice(intervals, func(i, j int) bool {
		a, b := intervals[i], intervals[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.End < b.End
	})
	merged := []Interval{intervals[0]}
	for _, next := range intervals[1:] {
		cur := &merged[len(merged)-1]
		if next.Name == cur.Name && next.Start <= cur.End {
			if next.End > cur.End {
				cur.End = next.End
			}
			continue
		}
		merged = append(merged, next)
	}
	return merged
}
