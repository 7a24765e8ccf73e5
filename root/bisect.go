package root

import (
	"fmt"
	"math"

	"github.com/sgostarter/libcalculus/calculus"
)

// Bisect narrows [xmin, xmax] to a root of fx. found is false when the
// interval shows no sign change. On ErrNotConverged x holds the last midpoint.
func Bisect(fx calculus.Func, xmin, xmax float64, options ...Option) (x float64, found bool, err error) {
	return bisect(fx, xmin, xmax, optionNew(options...))
}

func bisect(fx calculus.Func, xmin, xmax float64, opts *Options) (x float64, found bool, err error) {
	if fx(xmin) == 0 {
		return xmin, true, nil
	}

	if fx(xmax) == 0 {
		return xmax, true, nil
	}

	if !HasSignChange(fx, xmin, xmax) {
		return
	}

	xMed := (xmin + xmax) / 2

	// NaN residuals keep the loop going
	for iteration := 0; !(math.Abs(fx(xMed)) <= opts.precision); iteration++ {
		if xMed == xmin || xMed == xmax {
			err = fmt.Errorf("%w: interval [%v, %v] can not be split", ErrNotConverged, xmin, xmax)

			return xMed, false, err
		}

		if iteration >= opts.bisectMaxIterations {
			err = fmt.Errorf("%w: %d iterations", ErrNotConverged, iteration)

			return xMed, false, err
		}

		if opts.onIteration != nil && !opts.onIteration() {
			return xMed, false, ErrAborted
		}

		if HasSignChange(fx, xmin, xMed) {
			xmax = xMed
		} else if HasSignChange(fx, xMed, xmax) {
			xmin = xMed
		} else {
			// neither half shows a sign change: keep the lower one
			xmax = xMed
		}

		xMed = (xmin + xmax) / 2
	}

	return xMed, true, nil
}
