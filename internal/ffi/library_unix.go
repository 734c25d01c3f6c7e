//go:build darwin || linux || freebsd

package ffi

import (
	"fmt"

	"github.com/ebitengine/purego"
)

func openLibrary(path string) (uintptr, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	if handle == 0 {
		return 0, fmt.Errorf("nil handle for %s", path)
	}
	return handle, nil
}

// bind resolves name and installs a Go trampoline for it in fptr.
func bind(handle uintptr, name string, fptr any) error {
	sym, err := purego.Dlsym(handle, name)
	if err != nil {
		return fmt.Errorf("symbol %s: %w", name, err)
	}
	purego.RegisterFunc(fptr, sym)
	return nil
}

func closeLibrary(handle uintptr) error {
	if err := purego.Dlclose(handle); err != nil {
		return fmt.Errorf("close library: %w", err)
	}
	return nil
}
