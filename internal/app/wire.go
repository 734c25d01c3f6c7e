package app

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"libprime/internal/domain"
	"libprime/internal/ffi"
	"libprime/internal/marshal"
	"libprime/internal/oracle"
	"libprime/internal/prime"
	"libprime/internal/remote"
)

// Wire bundles the oracle backend and the boundary in front of it.
type Wire struct {
	Config   Config
	Logger   *zap.Logger
	Oracle   domain.Oracle
	Counter  *oracle.Counting
	Boundary *oracle.Boundary
	Library  *ffi.Library // nil unless Config.Backend is ffi
}

// NewWire constructs the dependency graph from cfg. The caller must Close
// the result to release a loaded library.
func NewWire(cfg Config, logger *zap.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	w := &Wire{Config: cfg, Logger: logger}
	switch cfg.Backend {
	case BackendFFI:
		lib, err := ffi.Open(cfg.Library)
		if err != nil {
			return nil, err
		}
		logger.Debug("library loaded", zap.String("path", lib.Path()))
		w.Library = lib
		w.Oracle = lib
	case BackendRemote:
		httpClient := cfg.HTTP
		if httpClient == nil {
			httpClient = http.DefaultClient
		}
		w.Oracle = remote.NewHTTP(cfg.Remote, httpClient)
	default:
		w.Oracle = oracle.Native{}
	}

	w.Counter = oracle.NewCounting(w.Oracle)
	w.Boundary = oracle.NewBoundary(w.Counter)
	return w, nil
}

// Close releases the loaded library, if any.
func (w *Wire) Close() error {
	if w.Library == nil {
		return nil
	}
	w.Logger.Debug("library unloaded",
		zap.String("path", w.Library.Path()),
		zap.Int64("calls", w.Counter.Calls()),
	)
	return w.Library.Close()
}

// CheckWide decodes s as an unsigned integer of width bits (32 or 64) and
// checks it through the backend's wide entry points. The ffi backend needs
// the optional is_prime_u32 / is_prime_u64 exports; the remote backend has
// no wide API.
func (w *Wire) CheckWide(width int, s string) (domain.WideVerdict, error) {
	n, err := marshal.ParseUint(s, width)
	if err != nil {
		return domain.WideVerdict{}, err
	}

	var ok bool
	switch {
	case w.Library != nil:
		ok, err = w.libraryWide(width, n)
	case w.Config.Backend == BackendRemote:
		err = fmt.Errorf("backend %s: %w", w.Config.Backend, domain.ErrUnsupportedWidth)
	case width == 32:
		ok = prime.IsPrimeUint32(uint32(n))
	default:
		ok = prime.IsPrime64(n)
	}
	if err != nil {
		return domain.WideVerdict{}, err
	}
	return domain.WideVerdict{N: n, Width: width, Prime: ok}, nil
}

func (w *Wire) libraryWide(width int, n uint64) (bool, error) {
	var (
		isPrime, found bool
		err            error
		sym            string
	)
	if width == 32 {
		sym = "is_prime_u32"
		isPrime, found, err = w.Library.IsPrimeUint32(uint32(n))
	} else {
		sym = "is_prime_u64"
		isPrime, found, err = w.Library.IsPrime64(n)
	}
	if err != nil {
		return false, err
	}
	if !found {
		return false, fmt.Errorf("%s: %s: %w", w.Library.Path(), sym, domain.ErrMissingExport)
	}
	return isPrime, nil
}
