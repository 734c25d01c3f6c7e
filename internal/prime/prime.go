package prime

import "math/bits"

// IsPrime reports whether n is prime. Every n < 2, negatives included, is
// not prime.
func IsPrime(n int32) bool {
	if n < 2 {
		return false
	}
	return IsPrimeUint32(uint32(n))
}

// IsPrimeUint32 reports whether n is prime using trial division by 6k±1
// candidates up to the integer square root of n.
func IsPrimeUint32(n uint32) bool {
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0, n%3 == 0:
		return false
	}
	limit := uint32(ISqrt(uint64(n)))
	for i := uint32(5); i <= limit; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// millerRabinBases is a witness set that is deterministic for every n below
// 3.3e24, which covers the whole uint64 range.
var millerRabinBases = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrime64 reports whether n is prime. Values that fit in 32 bits use trial
// division; larger values use Miller–Rabin with a fixed witness set.
func IsPrime64(n uint64) bool {
	if n <= 1<<32-1 {
		return IsPrimeUint32(uint32(n))
	}
	if n%2 == 0 || n%3 == 0 || n%5 == 0 {
		return false
	}

	// n-1 = d * 2^s with d odd.
	d := n - 1
	s := bits.TrailingZeros64(d)
	d >>= uint(s)

	for _, a := range millerRabinBases {
		if !witnessPasses(a, d, s, n) {
			return false
		}
	}
	return true
}

// witnessPasses runs one Miller–Rabin round for base a.
func witnessPasses(a, d uint64, s int, n uint64) bool {
	x := powMod(a, d, n)
	if x == 1 || x == n-1 {
		return true
	}
	for r := 1; r < s; r++ {
		x = mulMod(x, x, n)
		if x == n-1 {
			return true
		}
		if x == 1 {
			return false
		}
	}
	return false
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

func powMod(base, exp, m uint64) uint64 {
	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}
	return result
}
