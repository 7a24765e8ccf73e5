package root

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libcalculus/calculus"
	"github.com/sgostarter/libcalculus/watchdog"
	"github.com/sgostarter/libeasygo/routineman"
)

// BisectMany scans with the default configuration and no logging.
//
// The default precision, 1e-16, is below the float64 resolution of |f(x)| for
// most roots that are not exactly representable. Such an interval ends in
// ErrNotConverged and fails the whole scan, so pass PrecisionOption with a
// reachable residual (1e-12 for example) unless the roots are exact.
func BisectMany(fx calculus.Func, xmin, xmax float64, numIntervals int, options ...Option) ([]float64, error) {
	return NewScanner(nil, nil).BisectMany(context.Background(), fx, xmin, xmax, numIntervals, options...)
}

func NewScanner(cfg *calculus.Config, logger l.Wrapper) Scanner {
	return NewScannerEx(cfg, nil, logger)
}

// NewScannerEx reports stalled scans to notify instead of the logger.
func NewScannerEx(cfg *calculus.Config, notify watchdog.INotify, logger l.Wrapper) Scanner {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	c := calculus.Config{}
	if cfg != nil {
		c = *cfg
	}

	c.Fix()

	return &scannerImpl{
		cfg:         &c,
		stallNotify: notify,
		logger:      logger.WithFields(l.StringField(l.ClsKey, "scannerImpl")),
	}
}

type scannerImpl struct {
	cfg         *calculus.Config
	stallNotify watchdog.INotify
	logger      l.Wrapper
}

type collector struct {
	lock  sync.RWMutex
	roots []float64
	errs  []error
}

func (c *collector) addRoot(x float64) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.roots = append(c.roots, x)
}

func (c *collector) addError(err error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.errs = append(c.errs, err)
}

func (c *collector) result() ([]float64, []error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return append([]float64{}, c.roots...), append([]error{}, c.errs...)
}

func (impl *scannerImpl) BisectMany(ctx context.Context, fx calculus.Func, xmin, xmax float64, numIntervals int,
	options ...Option) (roots []float64, err error) {
	if fx == nil || numIntervals <= 0 || !isFinite(xmin) || !isFinite(xmax) || xmax < xmin {
		err = commerr.ErrInvalidArgument

		return
	}

	opts := optionNew(append([]Option{ConfigOption(impl.cfg)}, options...)...)

	fx = calculus.Memoize(fx, impl.cfg.MemoizeTTL)

	var notify watchdog.INotify = &stallNotify{
		logger:       impl.logger,
		xmin:         xmin,
		xmax:         xmax,
		numIntervals: numIntervals,
	}

	if impl.stallNotify != nil {
		notify = impl.stallNotify
	}

	wd := watchdog.NewWatchDog(watchdog.Config{
		CheckInterval: impl.cfg.StallCheckInterval,
		MaxIdle:       impl.cfg.StallTimeout,
	}, notify)

	wd.Start()
	defer wd.Stop()

	c := &collector{}

	routineMan := routineman.NewRoutineMan(ctx, impl.logger)

	delX := (xmax - xmin) / float64(numIntervals)

	for idx := 0; idx < numIntervals; idx++ {
		index := idx
		xMinTemp := xmin + float64(idx)*delX
		xMaxTemp := xmin + float64(idx+1)*delX

		if idx == numIntervals-1 {
			xMaxTemp = xmax
		}

		routineMan.StartRoutine(func(_ context.Context, _ func() bool) {
			impl.bisectTask(ctx, index, fx, xMinTemp, xMaxTemp, *opts, wd, c)
		}, fmt.Sprintf("bisect-%d", idx))
	}

	routineMan.Wait()
	routineMan.TriggerStop()

	if err = ctx.Err(); err != nil {
		return
	}

	found, errs := c.result()
	if len(errs) > 0 {
		err = fmt.Errorf("%d of %d intervals failed, first: %w", len(errs), numIntervals, errs[0])

		return
	}

	roots = sortUnique(found)

	impl.logger.WithFields(l.IntField("intervals", numIntervals), l.IntField("roots", len(roots))).
		Debug("bisect scan done")

	return
}

func (impl *scannerImpl) bisectTask(ctx context.Context, index int, fx calculus.Func, xmin, xmax float64,
	opts Options, wd watchdog.WatchDog, c *collector) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: interval [%v, %v]: %v", ErrTaskFailed, xmin, xmax, r)

			impl.logger.WithFields(l.ErrorField(err), l.IntField("interval", index)).Error("bisect task panic")

			c.addError(err)
		}
	}()

	opts.onIteration = func() bool {
		wd.Touch()

		return ctx.Err() == nil
	}

	x, found, err := bisect(fx, xmin, xmax, &opts)
	if err != nil {
		c.addError(fmt.Errorf("interval [%v, %v]: %w", xmin, xmax, err))

		return
	}

	if found {
		c.addRoot(x)
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// sortUnique sorts vs in place and drops exact duplicates.
func sortUnique(vs []float64) []float64 {
	sort.Float64s(vs)

	uniq := make([]float64, 0, len(vs))

	for _, v := range vs {
		if len(uniq) > 0 && uniq[len(uniq)-1] == v {
			continue
		}

		uniq = append(uniq, v)
	}

	return uniq
}

type stallNotify struct {
	logger       l.Wrapper
	xmin, xmax   float64
	numIntervals int
}

func (n *stallNotify) NotifyStall(idle time.Duration) {
	n.logger.WithFields(l.StringField("idle", idle.String()),
		l.StringField("domain", fmt.Sprintf("[%v, %v]", n.xmin, n.xmax)),
		l.IntField("intervals", n.numIntervals)).Error("bisect scan made no progress")
}
