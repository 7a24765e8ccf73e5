package calculus

// IntegralRectangles integrates fx over [xmin, xmax] with DefaultRectangles
// midpoint rectangles.
func IntegralRectangles(fx Func, xmin, xmax float64) float64 {
	return IntegralRectanglesN(fx, xmin, xmax, DefaultRectangles)
}

func IntegralRectanglesN(fx Func, xmin, xmax float64, n int) float64 {
	if n <= 0 {
		n = DefaultRectangles
	}

	delX := (xmax - xmin) / float64(n)

	var integral float64

	for i := 0; i < n; i++ {
		integral += delX * fx(xmin+float64(i)*delX+delX/2)
	}

	return integral
}

// IntegralRectangles integrates with cfg.Rectangles rectangles. A nil cfg
// uses the defaults.
func (cfg *Config) IntegralRectangles(fx Func, xmin, xmax float64) float64 {
	if cfg == nil {
		return IntegralRectangles(fx, xmin, xmax)
	}

	return IntegralRectanglesN(fx, xmin, xmax, cfg.Rectangles)
}
