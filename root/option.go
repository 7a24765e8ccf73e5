package root

import "github.com/sgostarter/libcalculus/calculus"

type Options struct {
	precision           float64
	derivativeSteps     int
	bisectMaxIterations int
	newtonMaxIterations int

	// onIteration is called once per narrowing step; returning false aborts.
	onIteration func() bool
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}
	ConfigOption(calculus.DefaultConfig())(opts)

	for _, o := range option {
		o(opts)
	}

	return opts
}

// ConfigOption takes precision, derivative steps and iteration caps from cfg.
// Unset fields of cfg keep the package defaults.
func ConfigOption(cfg *calculus.Config) Option {
	return func(o *Options) {
		if cfg == nil {
			return
		}

		c := *cfg
		c.Fix()

		o.precision = c.Precision
		o.derivativeSteps = c.DerivativeSteps
		o.bisectMaxIterations = c.BisectMaxIterations
		o.newtonMaxIterations = c.NewtonMaxIterations
	}
}

func PrecisionOption(precision float64) Option {
	return func(o *Options) {
		if precision > 0 {
			o.precision = precision
		}
	}
}

// MaxIterationsOption caps both bisection and Newton iterations.
func MaxIterationsOption(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.bisectMaxIterations = n
			o.newtonMaxIterations = n
		}
	}
}

func DerivativeStepsOption(steps int) Option {
	return func(o *Options) {
		if steps > 0 {
			o.derivativeSteps = steps
		}
	}
}
