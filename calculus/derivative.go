package calculus

// Derivative estimates f'(x) with DefaultDerivativeSteps refinements.
func Derivative(fx Func, x float64) float64 {
	return DerivativeWithSteps(fx, x, DefaultDerivativeSteps)
}

// DerivativeWithSteps runs a central difference with h = 1, 1/2, 1/4, ...
// for exactly steps iterations and returns the last estimate.
func DerivativeWithSteps(fx Func, x float64, steps int) float64 {
	if steps <= 0 {
		steps = DefaultDerivativeSteps
	}

	var d float64

	h := 1.0

	for i := 0; i < steps; i++ {
		d = (fx(x+h) - fx(x-h)) / (2 * h)
		h /= 2
	}

	return d
}

// Derivative estimates f'(x) with cfg.DerivativeSteps refinements. A nil
// cfg uses the defaults.
func (cfg *Config) Derivative(fx Func, x float64) float64 {
	if cfg == nil {
		return Derivative(fx, x)
	}

	return DerivativeWithSteps(fx, x, cfg.DerivativeSteps)
}
