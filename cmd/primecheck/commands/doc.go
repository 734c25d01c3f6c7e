// Package commands defines the primecheck CLI and wires dependencies for subcommands.
//
// Commands
//
//   - check        Print a verdict for each value, the way the demo callers do
//   - scan         Count (or list) the primes in an inclusive range
//   - fingerprint  Print the fingerprint of a libprime build
//
// # Implementation
//
// The root command loads the TOML config, applies flag overrides, builds the
// zap logger and the oracle backend (native, ffi or remote) before any
// subcommand runs. A loaded shared library is released after the subcommand
// returns.
package commands
