package lcr

import "math"

// Score returns the low-complexity score of x for k-mers of length k and
// threshold t.  Strings shorter than k score 0.
func Score(x string, k int, t float64) float64 {
	if k <= 0 || len(x) < k {
		return 0
	}
	n := len(x) - k + 1
	counts := make(map[string]int, n)
	for i := 0; i < n; i++ {
		counts[x[i:i+k]]++
	}
	var s float64
	for _, c := range counts {
		s += lnFactorial(c)
	}
	return s - t*float64(n)
}

func lnFactorial(n int) float64 {
	v, _ := math.Lgamma(float64(n) + 1)
	return v
}
