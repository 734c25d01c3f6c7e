// Package ffi loads libprime as a shared library and calls it through its C ABI.
//
// Open resolves the library by path, binds the exported is_prime symbol,
// and returns a Library that satisfies domain.Oracle. The handle is a scoped
// resource: load once, call many times, Close at exit. Calls are safe from
// many goroutines; Close waits for in-flight calls before unloading.
//
// The optional is_prime_u32 and is_prime_u64 exports are bound when the
// library provides them, so older builds that only export is_prime still
// load.
//
// # Notes
//
// Loading a Go-built c-shared library into a Go process starts a second Go
// runtime. That works on linux/amd64 in practice but is not supported by the
// Go project; prefer the native backend unless the library under test was
// built by another toolchain.
package ffi
