// Package app wires application dependencies for the CLI and the server.
//
// It decodes Config from TOML, builds the zap logger, and constructs the
// oracle backend (native, shared library or remote) plus the marshalling
// boundary in front of it, exposing them via the Wire struct for commands
// to use.
package app
