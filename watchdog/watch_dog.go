package watchdog

import (
	"context"
	"sync"
	"time"
)

type INotify interface {
	// NotifyStall is called from the watchdog routine when nothing touched
	// the watchdog for longer than Config.MaxIdle.
	NotifyStall(idle time.Duration)
}

type WatchDog interface {
	Touch()

	Start()
	Stop()
	Started() bool
}

type Config struct {
	CheckInterval time.Duration
	MaxIdle       time.Duration
}

func NewWatchDog(cfg Config, notify INotify) WatchDog {
	if notify == nil || cfg.MaxIdle <= 0 {
		return NewFakeWatchDog()
	}

	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = cfg.MaxIdle / 2
	}

	return &watchDogImpl{
		cfg:    cfg,
		notify: notify,
	}
}

type watchDogImpl struct {
	cfg    Config
	notify INotify

	lock        sync.Mutex
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	lastTouchAt time.Time
}

func (impl *watchDogImpl) Touch() {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	impl.lastTouchAt = time.Now()
}

func (impl *watchDogImpl) Start() {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	if impl.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	impl.cancel = cancel
	impl.lastTouchAt = time.Now()

	impl.wg.Add(1)

	go impl.mainRoutine(ctx)
}

// Stop ends the watchdog routine and waits for it, so no notification
// arrives after Stop returns.
func (impl *watchDogImpl) Stop() {
	impl.lock.Lock()
	cancel := impl.cancel
	impl.cancel = nil
	impl.lock.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	impl.wg.Wait()
}

func (impl *watchDogImpl) Started() bool {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	return impl.cancel != nil
}

func (impl *watchDogImpl) idle() time.Duration {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	return time.Since(impl.lastTouchAt)
}

func (impl *watchDogImpl) mainRoutine(ctx context.Context) {
	defer impl.wg.Done()

	ticker := time.NewTicker(impl.cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			idle := impl.idle()
			if idle < impl.cfg.MaxIdle {
				continue
			}

			impl.notify.NotifyStall(idle)

			// report once per idle period
			impl.Touch()
		}
	}
}
