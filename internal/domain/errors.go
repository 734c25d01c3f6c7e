package domain

import "errors"

var (
	// ErrTypeMismatch is returned when a value cannot be decoded into the
	// boundary integer type at all (strings, bools, nil, structs).
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrOutOfRange is returned when a numeric value does not fit in the
	// boundary type.
	ErrOutOfRange = errors.New("value out of range")

	// ErrLibrary is returned when the shared library cannot be opened or
	// does not export the expected symbol.
	ErrLibrary = errors.New("shared library unavailable")

	// ErrClosed is returned by calls through a library handle after Close.
	ErrClosed = errors.New("library closed")

	// ErrMissingExport is returned when a wide check needs an optional
	// symbol (is_prime_u32, is_prime_u64) the loaded library lacks.
	ErrMissingExport = errors.New("library lacks export")

	// ErrUnsupportedWidth is returned for a width other than 32 or 64, or
	// when the backend cannot answer wide checks at all.
	ErrUnsupportedWidth = errors.New("unsupported width")
)
