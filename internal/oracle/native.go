package oracle

import (
	"context"

	"libprime/internal/domain"
	"libprime/internal/prime"
)

// Native answers in-process. It never fails and ignores ctx.
type Native struct{}

// IsPrime reports whether n is prime.
func (Native) IsPrime(_ context.Context, n int32) (bool, error) {
	return prime.IsPrime(n), nil
}

var _ domain.Oracle = Native{}
