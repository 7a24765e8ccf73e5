package root

import (
	"context"

	"github.com/sgostarter/libcalculus/calculus"
)

type Scanner interface {
	// BisectMany splits [xmin, xmax] into numIntervals equal parts, bisects
	// every part concurrently and returns the roots sorted and deduplicated.
	// Any interval that fails, including one that can not reach the
	// precision, fails the scan and no roots are returned.
	BisectMany(ctx context.Context, fx calculus.Func, xmin, xmax float64, numIntervals int,
		options ...Option) ([]float64, error)
}
