package calculus

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPrecision           = 1.0e-16
	DefaultDerivativeSteps     = 20
	DefaultRectangles          = 100000
	DefaultBisectMaxIterations = 2200
	DefaultNewtonMaxIterations = 1000
	DefaultStallCheckInterval  = time.Second
)

type Config struct {
	Precision       float64 `yaml:"precision" json:"precision"`
	DerivativeSteps int     `yaml:"derivativeSteps" json:"derivativeSteps"`
	Rectangles      int     `yaml:"rectangles" json:"rectangles"`

	BisectMaxIterations int `yaml:"bisectMaxIterations" json:"bisectMaxIterations"`
	NewtonMaxIterations int `yaml:"newtonMaxIterations" json:"newtonMaxIterations"`

	// MemoizeTTL, if > 0, caches evaluations of the scanned function for that long.
	MemoizeTTL time.Duration `yaml:"memoizeTTL" json:"memoizeTTL"`

	// StallTimeout, if > 0, reports scans whose tasks made no progress for that long.
	StallTimeout       time.Duration `yaml:"stallTimeout" json:"stallTimeout"`
	StallCheckInterval time.Duration `yaml:"stallCheckInterval" json:"stallCheckInterval"`
}

func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Fix()

	return cfg
}

// Fix replaces unset or invalid values with the defaults.
func (cfg *Config) Fix() {
	if cfg.Precision <= 0 {
		cfg.Precision = DefaultPrecision
	}

	if cfg.DerivativeSteps <= 0 {
		cfg.DerivativeSteps = DefaultDerivativeSteps
	}

	if cfg.Rectangles <= 0 {
		cfg.Rectangles = DefaultRectangles
	}

	if cfg.BisectMaxIterations <= 0 {
		cfg.BisectMaxIterations = DefaultBisectMaxIterations
	}

	if cfg.NewtonMaxIterations <= 0 {
		cfg.NewtonMaxIterations = DefaultNewtonMaxIterations
	}

	if cfg.StallCheckInterval <= 0 {
		cfg.StallCheckInterval = DefaultStallCheckInterval
	}
}

func LoadConfig(fileName string) (cfg *Config, err error) {
	d, err := os.ReadFile(fileName)
	if err != nil {
		return
	}

	cfg = &Config{}

	err = yaml.Unmarshal(d, cfg)
	if err != nil {
		cfg = nil

		return
	}

	cfg.Fix()

	return
}
