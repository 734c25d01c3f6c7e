package scan

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"libprime/internal/domain"
	"libprime/internal/prime"
)

// MaxVerifyLimit is the largest upper bound for which Verify builds a sieve.
const MaxVerifyLimit = 1 << 24

// cancelCheckEvery is how many values a worker checks between ctx polls.
const cancelCheckEvery = 4096

var (
	// ErrEmptyRange is returned when From > To.
	ErrEmptyRange = errors.New("empty range")

	// ErrMismatch is returned when the oracle disagrees with the sieve.
	ErrMismatch = errors.New("oracle disagrees with sieve")
)

// Options configures a scan.
type Options struct {
	From    int32
	To      int32
	Workers int  // <= 0 means GOMAXPROCS
	Collect bool // keep the primes found, not just the count
	Verify  bool // cross-check against a sieve when To <= MaxVerifyLimit
}

type chunk struct {
	count  int
	primes []int32
}

// Run scans [opts.From, opts.To] with o.
func Run(ctx context.Context, o domain.Oracle, opts Options) (domain.ScanReport, error) {
	if opts.From > opts.To {
		return domain.ScanReport{}, fmt.Errorf("scan [%d, %d]: %w", opts.From, opts.To, ErrEmptyRange)
	}
	start := time.Now()

	total := int64(opts.To) - int64(opts.From) + 1
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if int64(workers) > total {
		workers = int(total)
	}
	size := (total + int64(workers) - 1) / int64(workers)

	var table []bool
	verified := opts.Verify && opts.To <= MaxVerifyLimit
	if verified && opts.To >= 0 {
		table = prime.Sieve(int(opts.To))
	}

	results := make([]chunk, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := int64(opts.From) + int64(w)*size
		hi := min(lo+size-1, int64(opts.To))
		if lo > hi {
			continue
		}
		g.Go(func() error {
			c, err := scanChunk(ctx, o, lo, hi, opts.Collect, table)
			if err != nil {
				return err
			}
			results[w] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.ScanReport{}, err
	}

	report := domain.ScanReport{From: opts.From, To: opts.To, Verified: verified}
	for _, c := range results {
		report.Count += c.count
		if opts.Collect {
			report.Primes = append(report.Primes, c.primes...)
		}
	}
	report.ElapsedMS = time.Since(start).Milliseconds()
	return report, nil
}

func scanChunk(ctx context.Context, o domain.Oracle, lo, hi int64, collect bool, table []bool) (chunk, error) {
	var c chunk
	for i := lo; i <= hi; i++ {
		if (i-lo)%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return chunk{}, err
			}
		}
		n := int32(i)
		ok, err := o.IsPrime(ctx, n)
		if err != nil {
			return chunk{}, fmt.Errorf("check %d: %w", n, err)
		}
		if table != nil && n >= 0 && table[n] != ok {
			return chunk{}, fmt.Errorf("check %d: got %v: %w", n, ok, ErrMismatch)
		}
		if ok {
			c.count++
			if collect {
				c.primes = append(c.primes, n)
			}
		}
	}
	return c, nil
}
