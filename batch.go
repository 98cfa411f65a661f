// SPDX-License-Identifier: MIT
package tally

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
)

type (
	// Result holds the outcome of parsing one line of a batch.
	Result struct {
		Err     error
		Input   string
		Product Product
		Line    int // 1-based index of Input in the batch.
	}

	// BatchOption defines the ParseBatch functional option type.
	BatchOption func(*batchConfig)

	batchConfig struct {
		workers int
	}
)

// WithWorkers configures the number of concurrent parsers; values below 1 are ignored.
func WithWorkers(n int) BatchOption {
	return func(c *batchConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// ParseBatch parses lines concurrently, returning one Result per non-blank line in input order.
//
// Per-line failures are reported through Result.Err; err is only set when the batch itself could
// not complete, e.g. on context cancelation.
func ParseBatch(ctx context.Context, lines []string, opts ...BatchOption) (results []Result, err error) {
	cfg := batchConfig{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&cfg)
	}

	results = make([]Result, 0, len(lines))
	for index, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		results = append(results, Result{Line: index + 1, Input: line})
	}
	if len(results) < 1 {
		return
	}

	wg := new(sync.WaitGroup)
	pool, err := ants.NewPoolWithFunc(cfg.workers, func(arg interface{}) {
		defer wg.Done()

		// Each worker owns a distinct element of results.
		r := arg.(*Result)
		r.Product, r.Err = parseRecovered(r.Input)
	}, ants.WithLogger(fLogger))
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	fLogger.Debugf("parsing %d lines with %d workers", len(results), cfg.workers)

	for index := range results {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		default:
		}

		wg.Add(1)
		if err = pool.Invoke(&results[index]); err != nil {
			wg.Done()
			wg.Wait()

			return nil, fmt.Errorf("line %d: %w", results[index].Line, err)
		}
	}
	wg.Wait()

	return
}

// parseRecovered is ParseProduct with panics converted to ErrPanicked.
func parseRecovered(line string) (p Product, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}
	}()

	return ParseProduct(line)
}
