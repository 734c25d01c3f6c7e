package prime

import "math"

// ISqrt returns the floor of the square root of n.
//
// The float64 estimate can be off by one for large n, so it is corrected
// with division-based comparisons that cannot overflow.
func ISqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}
	r := uint64(math.Sqrt(float64(n)))
	for r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}
