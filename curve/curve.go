package curve

import (
	"github.com/sgostarter/libcalculus/calculus"
	"github.com/sgostarter/libcalculus/datafile"
)

// Sample evaluates fx on n+1 equally spaced points from xmin to xmax.
func Sample(fx calculus.Func, xmin, xmax float64, n int) []*Point {
	return sample(fx, xmin, xmax, n)
}

// SampleDerivative is Sample on the numeric derivative of fx.
func SampleDerivative(fx calculus.Func, xmin, xmax float64, n int) []*Point {
	return sample(func(x float64) float64 {
		return calculus.Derivative(fx, x)
	}, xmin, xmax, n)
}

func sample(fx calculus.Func, xmin, xmax float64, n int) []*Point {
	if n <= 0 {
		return nil
	}

	delX := (xmax - xmin) / float64(n)

	ps := make([]*Point, 0, n+1)

	for idx := 0; idx <= n; idx++ {
		x := xmin + float64(idx)*delX
		if idx == n {
			x = xmax
		}

		ps = append(ps, &Point{
			X: x,
			Y: fx(x),
		})
	}

	return ps
}

// WriteDataFile writes ps as "x y" rows, replacing fileName.
func WriteDataFile(fileName string, ps []*Point) (err error) {
	df, err := datafile.Create(fileName)
	if err != nil {
		return
	}

	defer func() {
		if e := df.Close(); err == nil {
			err = e
		}
	}()

	for _, p := range ps {
		if err = df.Write(p.X, p.Y); err != nil {
			return
		}
	}

	return
}
