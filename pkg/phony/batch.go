package phony

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome for one input of a batch
type BatchResult struct {
	Result
	Err error `json:"-" yaml:"-"`
}

// SplitBatch decomposes inputs on up to workers goroutines. Results keep
// the order of inputs and per-number failures are reported in Err. Only a
// cancelled context fails the batch.
func (s *Service) SplitBatch(ctx context.Context, inputs []string, country string, workers int) ([]BatchResult, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]BatchResult, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, input := range inputs {
		if gctx.Err() != nil {
			break
		}
		i, input := i, input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.Split(input, country)
			if err != nil {
				res.Input = input
			}
			results[i] = BatchResult{Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
