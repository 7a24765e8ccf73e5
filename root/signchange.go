package root

import (
	"math"

	"github.com/sgostarter/libcalculus/calculus"
)

// HasSignChange reports whether fx(a) and fx(b) are both nonzero with
// opposite signs. It is false on a zero endpoint and on a == b.
func HasSignChange(fx calculus.Func, a, b float64) bool {
	fa, fb := fx(a), fx(b)

	return math.Abs(fa+fb) < math.Abs(fa)+math.Abs(fb)
}
