package oracle

import (
	"context"

	"libprime/internal/domain"
	"libprime/internal/marshal"
)

// Boundary stands between loosely typed callers and an oracle. Values are
// decoded first; if decoding fails the oracle is never called and no
// verdict is produced.
type Boundary struct {
	Oracle domain.Oracle
}

// NewBoundary returns a Boundary in front of o.
func NewBoundary(o domain.Oracle) *Boundary { return &Boundary{Oracle: o} }

// Call decodes v with marshal.Int32 and checks it.
func (b *Boundary) Call(ctx context.Context, v any) (domain.Verdict, error) {
	n, err := marshal.Int32(v)
	if err != nil {
		return domain.Verdict{}, err
	}
	return b.check(ctx, n)
}

// CallString decodes s with marshal.ParseInt32 and checks it.
func (b *Boundary) CallString(ctx context.Context, s string) (domain.Verdict, error) {
	n, err := marshal.ParseInt32(s)
	if err != nil {
		return domain.Verdict{}, err
	}
	return b.check(ctx, n)
}

func (b *Boundary) check(ctx context.Context, n int32) (domain.Verdict, error) {
	ok, err := b.Oracle.IsPrime(ctx, n)
	if err != nil {
		return domain.Verdict{}, err
	}
	return domain.Verdict{N: n, Prime: ok}, nil
}
