// Package prime is the primality oracle behind libprime.
//
// Contents
//
//   - IsPrime for the signed 32-bit ABI contract (is_prime(int))
//   - IsPrimeUint32 for the unsigned 32-bit variant
//   - IsPrime64, a deterministic Miller–Rabin for all uint64 values
//   - ISqrt, an exact integer square root
//   - Sieve, the reference table used for cross-checks
//
// # Notes
//
// Every function is a pure function of its arguments. Nothing here keeps
// state, allocates on the scalar paths, or logs, so callers may invoke any
// of them concurrently from any number of goroutines or foreign threads.
package prime
