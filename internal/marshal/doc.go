// Package marshal converts caller-side values into the oracle's boundary type.
//
// It plays the role a foreign runtime's marshalling layer plays in front of
// is_prime(int): values that cannot be represented as a signed 32-bit
// integer are rejected here with domain.ErrTypeMismatch or
// domain.ErrOutOfRange, so they never reach the oracle.
//
// Strings are never coerced by Int32. Textual input (CLI arguments, URL path
// segments) goes through ParseInt32 explicitly.
package marshal
