//go:build !(darwin || linux || freebsd)

package ffi

import (
	"errors"
	"runtime"
)

var errUnsupported = errors.New("dynamic loading not supported on " + runtime.GOOS)

func openLibrary(string) (uintptr, error) { return 0, errUnsupported }

func bind(uintptr, string, any) error { return errUnsupported }

func closeLibrary(uintptr) error { return nil }
