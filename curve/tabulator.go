package curve

import (
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libcalculus/calculus"
)

// Tabulator samples functions, keeps the tables in a Storage and exports
// them as data files.
type Tabulator struct {
	logger  l.Wrapper
	cfg     *calculus.Config
	storage Storage
}

func NewTabulator(storage Storage, cfg *calculus.Config, logger l.Wrapper) *Tabulator {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "tabulator"))

	if storage == nil {
		logger.Error("no storage")

		return nil
	}

	c := calculus.Config{}
	if cfg != nil {
		c = *cfg
	}

	c.Fix()

	return &Tabulator{
		logger:  logger,
		cfg:     &c,
		storage: storage,
	}
}

// Tabulate samples fx on n+1 points of [xmin, xmax] and saves them under key.
func (tab *Tabulator) Tabulate(key string, fx calculus.Func, xmin, xmax float64, n int) ([]*Point, error) {
	return tab.tabulate(key, fx, xmin, xmax, n)
}

// TabulateDerivative is Tabulate on f', using the configured derivative steps.
func (tab *Tabulator) TabulateDerivative(key string, fx calculus.Func, xmin, xmax float64, n int) ([]*Point, error) {
	if fx == nil {
		return nil, commerr.ErrInvalidArgument
	}

	return tab.tabulate(key, func(x float64) float64 {
		return tab.cfg.Derivative(fx, x)
	}, xmin, xmax, n)
}

func (tab *Tabulator) tabulate(key string, fx calculus.Func, xmin, xmax float64, n int) (ps []*Point, err error) {
	if fx == nil || n <= 0 || xmax < xmin {
		err = commerr.ErrInvalidArgument

		return
	}

	ps = sample(fx, xmin, xmax, n)

	if err = tab.storage.Save(key, ps); err != nil {
		tab.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("save table failed")

		ps = nil

		return
	}

	return
}

func (tab *Tabulator) Points(key string) ([]*Point, error) {
	return tab.storage.Load(key)
}

// Export writes the table saved under key to fileName.
func (tab *Tabulator) Export(key, fileName string) error {
	ps, err := tab.storage.Load(key)
	if err != nil {
		return err
	}

	return WriteDataFile(fileName, ps)
}
