// Package scan checks every value in an inclusive int32 range against an
// oracle, fanning out over a bounded number of workers.
//
// The range is split into contiguous chunks, one per worker, and the results
// are merged in ascending order. With Verify set, each verdict for a
// non-negative value is cross-checked against a sieve of Eratosthenes.
package scan
