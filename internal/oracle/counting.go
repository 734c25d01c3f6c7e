package oracle

import (
	"context"
	"sync/atomic"

	"libprime/internal/domain"
)

// Counting wraps an oracle and counts calls that reached it.
type Counting struct {
	Next  domain.Oracle
	calls atomic.Int64
}

// NewCounting wraps next.
func NewCounting(next domain.Oracle) *Counting { return &Counting{Next: next} }

// IsPrime forwards to Next.
func (c *Counting) IsPrime(ctx context.Context, n int32) (bool, error) {
	c.calls.Add(1)
	return c.Next.IsPrime(ctx, n)
}

// Calls returns the number of calls forwarded so far.
func (c *Counting) Calls() int64 { return c.calls.Load() }

var _ domain.Oracle = (*Counting)(nil)
