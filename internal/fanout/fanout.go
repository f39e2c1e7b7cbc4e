// Package fanout runs independent per-item work concurrently and collects
// results into a slice indexed by position, never by completion order. The
// accumulator's per-solution verification, its polynomial fold, and the
// verifier's per-solution sampling all need this property: the result must
// be order-deterministic regardless of how much parallelism actually ran.
package fanout

import "golang.org/x/sync/errgroup"

// Map applies fn to every item, running up to workers goroutines
// concurrently, and returns the results in the same order as items. A
// workers value <= 0 leaves the degree of parallelism to errgroup's
// default (unbounded).
func Map[T any, R any](items []T, workers int, fn func(index int, item T) R) []R {
	out := make([]R, len(items))
	if len(items) == 0 {
		return out
	}

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			out[i] = fn(i, item)
			return nil
		})
	}
	g.Wait()
	return out
}

// MapErr is like Map, but fn may fail. The first error returned by any
// call is returned to the caller; the remaining calls are not cancelled
// and still run to completion. On error the result slice is nil.
func MapErr[T any, R any](items []T, workers int, fn func(index int, item T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	if len(items) == 0 {
		return out, nil
	}

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			r, err := fn(i, item)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
