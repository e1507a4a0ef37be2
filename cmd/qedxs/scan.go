package main

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// linspace returns n points evenly spaced over [lo, hi]; n = 1 gives lo and
// n < 1 none.
func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, max(n, 0))
	for i := range xs {
		if n > 1 {
			xs[i] = lo + (hi-lo)*float64(i)/float64(n-1)
		} else {
			xs[i] = lo
		}
	}
	return xs
}

// scan evaluates eval at every x with at most a.cfg.Scan.Workers calls in
// flight and returns the rows in input order. The first error cancels the
// points not yet started.
func (a *app) scan(ctx context.Context, reaction string, xs []float64, eval func(x float64) ([]float64, error)) ([][]float64, error) {
	if len(xs) == 0 {
		return nil, errors.Newf("%s: no points to evaluate", reaction)
	}
	start := time.Now()
	rows := make([][]float64, len(xs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Scan.Workers)
	for i, x := range xs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row, err := eval(x)
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	a.log.Info("scan finished",
		zap.String("reaction", reaction),
		zap.Int("points", len(xs)),
		zap.Int("workers", a.cfg.Scan.Workers),
		zap.Duration("elapsed", time.Since(start)),
	)
	return rows, nil
}
