package heartbeat

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/wdlauncher/pkg/config"
	"github.com/selebrow/wdlauncher/pkg/models"
)

// ProbeFunc reads current page title of the monitored session
type ProbeFunc func(ctx context.Context) (string, error)

type Monitor struct {
	interval  time.Duration
	expected  string
	probe     ProbeFunc
	onFailure func(err error)

	mtx     sync.Mutex
	timer   *time.Timer
	started bool
	stopped bool
	ctx     context.Context
	cancel  context.CancelFunc
	once    sync.Once
	l       *zap.SugaredLogger
}

func NewMonitor(cfg config.HeartbeatConfig, probe ProbeFunc, onFailure func(err error), l *zap.Logger) *Monitor {
	interval := cfg.HeartbeatInterval()
	if interval <= 0 {
		interval = config.DefaultHeartbeatInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Monitor{
		interval:  interval,
		expected:  cfg.HeartbeatTitle(),
		probe:     probe,
		onFailure: onFailure,
		ctx:       ctx,
		cancel:    cancel,
		l:         l.Sugar(),
	}
}

// Start schedules the first probe. Monitor can be started only once.
func (m *Monitor) Start() {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if m.started || m.stopped {
		return
	}
	m.started = true
	m.timer = time.AfterFunc(m.interval, m.tick)
	m.l.Debugf("heartbeat started: interval=%v", m.interval)
}

// Stop cancels scheduled and in-flight probes, results of the latter are discarded
func (m *Monitor) Stop() {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if m.stopped {
		return
	}
	m.stopped = true
	if m.timer != nil {
		m.timer.Stop()
	}
	m.cancel()
}

func (m *Monitor) Stopped() bool {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.stopped
}

func (m *Monitor) tick() {
	if m.Stopped() {
		return
	}

	m.l.Debug("heartbeat: fetching page title")
	ctx, cancel := context.WithTimeout(m.ctx, m.interval)
	title, err := m.probe(ctx)
	cancel()

	m.mtx.Lock()
	if m.stopped {
		m.mtx.Unlock()
		return
	}

	if err == nil && title != m.expected {
		err = errors.Errorf("unexpected page title %q", title)
	}
	if err != nil {
		m.stopped = true
		m.cancel()
		m.mtx.Unlock()
		m.l.Errorw("heartbeat failed", zap.String("error", models.FormatError(err)))
		m.once.Do(func() {
			m.onFailure(models.NewHeartbeatFailure(errors.Wrap(err, "session is not responding")))
		})
		return
	}

	m.timer = time.AfterFunc(m.interval, m.tick)
	m.mtx.Unlock()
	m.l.Debug("heartbeat: session is active")
}
