package interfaces

import "context"

// Oracle answers primality for the signed 32-bit boundary type.
//
// In-process and shared-library oracles never fail; remote oracles may
// return transport errors. An error never carries a verdict.
type Oracle interface {
	IsPrime(ctx context.Context, n int32) (bool, error)
}

// OracleFunc adapts a plain function to Oracle.
type OracleFunc func(ctx context.Context, n int32) (bool, error)

// IsPrime calls f.
func (f OracleFunc) IsPrime(ctx context.Context, n int32) (bool, error) { return f(ctx, n) }
