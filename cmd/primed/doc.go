// Package main runs primed, an HTTP front end for the primality oracle.
//
// It serves the API documented in internal/remote on the configured listen
// address (default :8089), answering from the native oracle or, with
// backend = "ffi", from a loaded libprime build. Values in the URL are
// decoded by the same marshalling boundary the CLI uses, so a non-numeric
// value is answered with 400 and never reaches the oracle.
//
// The server shuts down gracefully on SIGINT or SIGTERM and unloads the
// library, if one was loaded, before exiting.
package main
