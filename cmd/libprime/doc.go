// Package main builds libprime, the shared library foreign callers load by
// path.
//
//	go build -buildmode=c-shared -o libprime.so ./cmd/libprime
//
// Exports
//
//	bool is_prime(int n)
//	    Stable entry point. false for every n < 2.
//
//	bool is_prime_u32(unsigned int n)
//	bool is_prime_u64(unsigned long long n)
//	    Wider domains. Optional for callers; loaders must not require them.
//
// The declarations in include/prime.h must match these exports. Changing a
// parameter width or return type is a breaking change for every caller.
//
// There is no init-time state and nothing to tear down, so the library can
// be loaded and unloaded in any order relative to other libraries.
package main
