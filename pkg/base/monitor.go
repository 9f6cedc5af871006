package base

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/stonefinance/stone-sub000/pkg/config"
)

// Poller is one tick of monitoring work: cmd/locust-monitor's price
// sampler implements this.
type Poller interface {
	Poll(ctx context.Context) error
}

// Monitor is a periodic Poller runner, adapted from Strategy's
// Running/MainCtx/Wg/Start/Stop shape: where a Strategy's Runner owns
// its own long-running loop, a Monitor owns the ticker itself and
// invokes Poller.Poll on each tick, since every poller in this repo
// does the same fixed-interval sampling rather than strategy-specific
// scheduling.
type Monitor struct {
	mut           sync.RWMutex
	Logger        *zap.Logger
	Running       atomic.Bool
	MainCtx       context.Context
	MainCancel    context.CancelFunc
	Wg            sync.WaitGroup
	Cfg           *config.MonitorConfig
	Poller        Poller
	lastPollTime  time.Time
	lastPollError error
}

// NewMonitor builds a Monitor bound to cfg's poll interval and logger.
func NewMonitor(cfg *config.MonitorConfig, logger *zap.Logger, poller Poller) *Monitor {
	mainCtx, mainCancel := context.WithCancel(context.Background())
	return &Monitor{
		Logger:     logger,
		Cfg:        cfg,
		MainCtx:    mainCtx,
		MainCancel: mainCancel,
		Poller:     poller,
	}
}

func (m *Monitor) IsRunning() bool {
	return m.Running.Load()
}

func (m *Monitor) LastPoll() (time.Time, error) {
	m.mut.RLock()
	defer m.mut.RUnlock()
	return m.lastPollTime, m.lastPollError
}

// Start launches the poll loop and returns immediately; it is a no-op
// if the monitor is already running.
func (m *Monitor) Start() error {
	if m.Running.Load() {
		return nil
	}
	m.Running.Store(true)
	m.Wg.Add(1)
	go m.run()
	return nil
}

func (m *Monitor) run() {
	defer m.Wg.Done()

	ticker := time.NewTicker(m.Cfg.PollInterval)
	defer ticker.Stop()

	m.tick()
	for {
		select {
		case <-m.MainCtx.Done():
			return
		case <-ticker.C:
			m.tick()
		}
	}
}

func (m *Monitor) tick() {
	err := m.Poller.Poll(m.MainCtx)

	m.mut.Lock()
	m.lastPollTime = time.Now()
	m.lastPollError = err
	m.mut.Unlock()

	if err != nil {
		m.Logger.Error("poll failed", zap.Error(err))
	}
}

// Stop cancels the poll loop and waits for the in-flight tick to finish.
func (m *Monitor) Stop() {
	if !m.Running.Load() {
		return
	}
	m.Logger.Info("stopping monitor")
	m.Running.Store(false)
	m.MainCancel()
	m.Wg.Wait()
}
