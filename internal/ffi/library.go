package ffi

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"libprime/internal/domain"
)

const (
	symIsPrime    = "is_prime"
	symIsPrimeU32 = "is_prime_u32"
	symIsPrimeU64 = "is_prime_u64"
)

// Library is an open handle to libprime.
type Library struct {
	path string

	mu         sync.RWMutex
	handle     uintptr
	isPrime    func(int32) bool
	isPrimeU32 func(uint32) bool
	isPrimeU64 func(uint64) bool
}

// DefaultName returns the platform file name of the library.
func DefaultName() string {
	switch runtime.GOOS {
	case "darwin":
		return "libprime.dylib"
	case "windows":
		return "prime.dll"
	default:
		return "libprime.so"
	}
}

// Open loads the library at path and binds its exports.
func Open(path string) (*Library, error) {
	handle, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %v", path, domain.ErrLibrary, err)
	}

	lib := &Library{path: path, handle: handle}
	if err := bind(handle, symIsPrime, &lib.isPrime); err != nil {
		_ = closeLibrary(handle)
		return nil, fmt.Errorf("open %s: %w: %v", path, domain.ErrLibrary, err)
	}
	// Optional exports.
	_ = bind(handle, symIsPrimeU32, &lib.isPrimeU32)
	_ = bind(handle, symIsPrimeU64, &lib.isPrimeU64)
	return lib, nil
}

// Path returns the path the library was loaded from.
func (l *Library) Path() string { return l.path }

// IsPrime calls is_prime through the C ABI.
func (l *Library) IsPrime(_ context.Context, n int32) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.handle == 0 {
		return false, domain.ErrClosed
	}
	return l.isPrime(n), nil
}

// IsPrimeUint32 calls is_prime_u32. ok is false when the export is missing.
func (l *Library) IsPrimeUint32(n uint32) (prime, ok bool, err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.handle == 0 {
		return false, false, domain.ErrClosed
	}
	if l.isPrimeU32 == nil {
		return false, false, nil
	}
	return l.isPrimeU32(n), true, nil
}

// IsPrime64 calls is_prime_u64. ok is false when the export is missing.
func (l *Library) IsPrime64(n uint64) (prime, ok bool, err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.handle == 0 {
		return false, false, domain.ErrClosed
	}
	if l.isPrimeU64 == nil {
		return false, false, nil
	}
	return l.isPrimeU64(n), true, nil
}

// Close unloads the library. Calling Close more than once is a no-op.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.handle == 0 {
		return nil
	}
	handle := l.handle
	l.handle = 0
	l.isPrime, l.isPrimeU32, l.isPrimeU64 = nil, nil, nil
	return closeLibrary(handle)
}

var _ domain.Oracle = (*Library)(nil)
