package root

import (
	"fmt"
	"math"

	"github.com/sgostarter/libcalculus/calculus"
)

// Newton refines x0 with x = x - f(x)/f'(x) until |f(x)| <= precision.
func Newton(fx calculus.Func, x0 float64, options ...Option) (float64, error) {
	opts := optionNew(options...)

	xn := x0

	for iteration := 0; ; iteration++ {
		fxn := fx(xn)
		if math.Abs(fxn) <= opts.precision {
			return xn, nil
		}

		if math.IsNaN(xn) || math.IsInf(xn, 0) {
			return xn, fmt.Errorf("%w: iterate %v after %d iterations", ErrDiverged, xn, iteration)
		}

		if iteration >= opts.newtonMaxIterations {
			return xn, fmt.Errorf("%w: %d iterations, residual %v", ErrNotConverged, iteration, fxn)
		}

		xn -= fxn / calculus.DerivativeWithSteps(fx, xn, opts.derivativeSteps)
	}
}
