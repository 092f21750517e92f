package fasta

// Slice returns seq[start:end] for 0-based, half-open coordinates, without
// ever failing:
//
//   - a negative coordinate counts from the end of seq, and is clamped to 0 if
//     it is still negative;
//   - a coordinate past the end of seq is clamped to len(seq);
//   - if start >= end after the above, the result is empty.
func Slice(seq string, start, end int) string {
	start = clampIndex(start, len(seq))
	end = clampIndex(end, len(seq))
	if start >= end {
		return ""
	}
	return seq[start:end]
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}
