package main

/*
#include <stdbool.h>
*/
import "C"

import "libprime/internal/prime"

//export is_prime
func is_prime(n C.int) C.bool {
	return C.bool(prime.IsPrime(int32(n)))
}

//export is_prime_u32
func is_prime_u32(n C.uint) C.bool {
	return C.bool(prime.IsPrimeUint32(uint32(n)))
}

//export is_prime_u64
func is_prime_u64(n C.ulonglong) C.bool {
	return C.bool(prime.IsPrime64(uint64(n)))
}

// main is required by -buildmode=c-shared and never runs.
func main() {}
