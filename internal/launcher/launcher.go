// Package launcher drives a single remote browser session through its lifecycle.
//
// Launcher is the only owner of the session state. Remote calls are performed on separate goroutines,
// their continuations are ignored when the launcher has moved on in the meantime (a kill or restart
// happened while the call was in flight).
package launcher

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/wdlauncher/internal/heartbeat"
	"github.com/selebrow/wdlauncher/pkg/config"
	"github.com/selebrow/wdlauncher/pkg/models"
	"github.com/selebrow/wdlauncher/pkg/webdriver"
)

// Signals receives host visible notifications. Methods are never called with launcher lock held.
type Signals interface {
	Captured(l *Launcher)
	ProcessFailure(l *Launcher, err error)
	Done(l *Launcher, err error)
}

type Option func(*Launcher)

// WithHeartbeatInterval overrides globally configured heartbeat interval
func WithHeartbeatInterval(interval time.Duration) Option {
	return func(l *Launcher) {
		l.cfg.interval = interval
	}
}

// WithSessionID makes launcher attach to existing session instead of creating new one
func WithSessionID(id string) Option {
	return func(l *Launcher) {
		l.sessionID = id
	}
}

type launcherConfig struct {
	config.LauncherConfig
	interval time.Duration
}

func (c launcherConfig) HeartbeatInterval() time.Duration {
	if c.interval > 0 {
		return c.interval
	}
	return c.LauncherConfig.HeartbeatInterval()
}

type Launcher struct {
	id        string
	name      string
	spec      models.CapabilitySpec
	cfg       launcherConfig
	newClient func() webdriver.Client
	sig       Signals

	mtx       sync.Mutex
	state     State
	gen       uint64
	url       string
	client    webdriver.Client
	sessionID string
	attempts  int
	monitor   *heartbeat.Monitor
	teardown  *Teardown
	err       error

	ctx    context.Context
	cancel context.CancelFunc
	log    *zap.Logger
	l      *zap.SugaredLogger
}

func NewLauncher(
	id string,
	spec models.CapabilitySpec,
	newClient func() webdriver.Client,
	sig Signals,
	cfg config.LauncherConfig,
	l *zap.Logger,
	opts ...Option,
) (*Launcher, error) {
	if spec.BrowserName == "" {
		return nil, models.NewConfigurationError(errors.New("browserName is required"))
	}
	if id == "" {
		id = uuid.NewString()
	}

	ctx, cancel := context.WithCancel(context.Background())
	logger := l.With(zap.String("launcher_id", id), zap.String("browser_name", spec.BrowserName))
	ln := &Launcher{
		id:        id,
		name:      spec.BrowserName + " via Remote WebDriver",
		spec:      spec,
		cfg:       launcherConfig{LauncherConfig: cfg},
		newClient: newClient,
		sig:       sig,
		state:     Idle,
		ctx:       ctx,
		cancel:    cancel,
		log:       logger,
		l:         logger.Sugar(),
	}
	for _, opt := range opts {
		opt(ln)
	}

	ln.l.Infof("browser %s created", spec.BrowserName)
	return ln, nil
}

func (l *Launcher) ID() string {
	return l.id
}

func (l *Launcher) Name() string {
	return l.name
}

func (l *Launcher) Spec() models.CapabilitySpec {
	return l.spec
}

func (l *Launcher) State() State {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.state
}

func (l *Launcher) SessionID() string {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.sessionID
}

// Err returns the first error recorded for the current session
func (l *Launcher) Err() error {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.err
}

func (l *Launcher) URL() string {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.url
}

// Start opens session and navigates it to the given URL, has effect only in Idle state
func (l *Launcher) Start(u string) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	if l.state != Idle {
		l.l.Warnf("start ignored in %s state", l.state)
		return
	}
	l.url = u
	l.state = Starting
	l.startLocked()
}

// Kill terminates the session. Concurrent callers get the same teardown handle.
func (l *Launcher) Kill() *Teardown {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.killLocked()
}

// ForceKill terminates the session, pending restart is cancelled and no failure is reported
func (l *Launcher) ForceKill() *Teardown {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	if l.state != Finished {
		l.state = BeingForceKilled
	}
	return l.killLocked()
}

// Restart terminates current session and starts a new one once teardown completes
func (l *Launcher) Restart() {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	switch l.state {
	case Idle, Restarting, BeingForceKilled, Finished:
		l.l.Debugf("restart ignored in %s state", l.state)
		return
	}

	l.state = Restarting
	if l.teardown == nil {
		l.killLocked()
	}
}

// Fail records err as terminal error and tears the session down.
// Failures reported while teardown is in progress are expected (browser goes away) and ignored.
func (l *Launcher) Fail(err error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	if l.state == Finished || l.state.tearingDown() {
		l.l.Debugw("failure ignored", zap.Stringer("state", l.state), zap.Error(err))
		return
	}

	l.l.Errorw("browser failed", zap.String("error", models.FormatError(err)))
	l.recordErrLocked(err)
	l.killLocked()
}

func (l *Launcher) startLocked() {
	l.gen++
	gen := l.gen
	sid := l.sessionID
	c := l.newClient()
	l.l.Infow("starting browser session", zap.String("url", l.url), zap.Int("attempt", l.attempts+1))
	go l.runStart(gen, c, sid, l.url)
}

func (l *Launcher) runStart(gen uint64, c webdriver.Client, sid, u string) {
	if sid != "" {
		l.runAttach(gen, c, sid, u)
		return
	}

	id, err := c.Init(l.ctx, l.spec)
	if err != nil {
		l.startFailed(gen, c, models.NewSessionStartError(errors.Wrap(err, "driver initialization failed")))
		return
	}
	if !l.sessionCreated(gen, c, id) {
		return
	}

	l.l.Debugw("connecting browser", zap.String("session_id", id), zap.String("url", u))
	if err := c.Get(l.ctx, u); err != nil {
		l.startFailed(gen, c, models.NewSessionStartError(errors.Wrapf(err, "failed to open %s", u)))
		return
	}
	l.activate(gen, c)
}

func (l *Launcher) runAttach(gen uint64, c webdriver.Client, sid, u string) {
	_, err := c.Attach(l.ctx, sid)
	if err != nil {
		l.l.Debugw("failed to attach session",
			zap.String("session_id", sid),
			zap.String("error", models.FormatError(err)))
		// stored session is gone, next attempt creates a new one
		l.startFailed(gen, nil, models.NewAttachError(err))
		return
	}

	l.mtx.Lock()
	if l.staleLocked(gen) {
		l.mtx.Unlock()
		go l.quitOrphan(c)
		return
	}
	l.client = c
	l.mtx.Unlock()
	l.l.Infow("session attached", zap.String("session_id", sid))

	if err := c.Get(l.ctx, u); err != nil {
		l.startFailed(gen, c, models.NewSessionStartError(errors.Wrapf(err, "failed to open %s", u)))
		return
	}
	l.activate(gen, c)
}

func (l *Launcher) sessionCreated(gen uint64, c webdriver.Client, id string) bool {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	if l.staleLocked(gen) {
		l.l.Debugw("session created after launcher moved on, closing it", zap.String("session_id", id))
		go l.quitOrphan(c)
		return false
	}
	l.client = c
	l.sessionID = id
	return true
}

// startFailed retries the start with a fresh session until start retries are used up.
// After that err is recorded and the launcher stays in Starting.
func (l *Launcher) startFailed(gen uint64, c webdriver.Client, err error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	if l.staleLocked(gen) {
		return
	}

	l.sessionID = ""
	if c != nil && l.client == c {
		l.client = nil
		go l.quitOrphan(c)
	}

	l.attempts++
	if l.attempts > l.cfg.StartRetries() {
		l.l.Errorw("failed to start browser session",
			zap.Int("attempts", l.attempts),
			zap.String("error", models.FormatError(err)))
		l.recordErrLocked(err)
		return
	}

	l.l.Warnw("browser session start failed, trying to create new session",
		zap.Int("attempt", l.attempts),
		zap.Int("retries", l.cfg.StartRetries()),
		zap.String("error", models.FormatError(err)))
	l.startLocked()
}

func (l *Launcher) activate(gen uint64, c webdriver.Client) {
	l.mtx.Lock()
	if l.staleLocked(gen) {
		l.mtx.Unlock()
		return
	}

	l.state = Active
	l.attempts = 0
	l.monitor = heartbeat.NewMonitor(l.cfg, c.Title, func(err error) {
		l.heartbeatFailed(gen, err)
	}, l.log.Named("heartbeat"))
	l.monitor.Start()
	sid := l.sessionID
	l.mtx.Unlock()

	l.l.Infow("browser captured", zap.String("session_id", sid))
	l.sig.Captured(l)
}

func (l *Launcher) heartbeatFailed(gen uint64, err error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	// session monitored by this heartbeat is already gone
	if gen != l.gen || l.state != Active {
		return
	}
	l.l.Errorw("browser failed", zap.String("error", models.FormatError(err)))
	l.recordErrLocked(err)
	l.killLocked()
}

// staleLocked reports whether continuation of the start attempt gen must be ignored
func (l *Launcher) staleLocked(gen uint64) bool {
	return gen != l.gen || l.state != Starting
}

func (l *Launcher) killLocked() *Teardown {
	if l.teardown != nil {
		return l.teardown
	}
	if l.state == Finished {
		return settledTeardown(nil)
	}

	if !l.state.tearingDown() {
		l.state = BeingKilled
	}
	td := newTeardown()
	l.teardown = td
	// invalidate in-flight start
	l.gen++
	if l.monitor != nil {
		l.monitor.Stop()
		l.monitor = nil
	}
	c := l.client
	l.client = nil

	go l.quit(td, c)
	return td
}

func (l *Launcher) quit(td *Teardown, c webdriver.Client) {
	var err error
	if c != nil {
		ctx, cancel := context.WithTimeout(context.Background(), l.cfg.KillTimeout())
		err = c.Quit(ctx)
		cancel()
	}

	l.mtx.Lock()
	var tdErr error
	if err != nil {
		tdErr = models.NewTeardownError(err)
		l.l.Errorw("failed to close browser session", zap.String("error", models.FormatError(err)))
		l.recordErrLocked(tdErr)
	} else {
		if c != nil {
			l.l.Infow("browser session closed", zap.String("session_id", l.sessionID))
		}
		l.sessionID = ""
	}

	if l.state == Restarting {
		l.teardown = nil
		l.err = nil
		l.attempts = 0
		// a session that failed to quit is not reused
		l.sessionID = ""
		l.state = Starting
		l.l.Debugf("restarting %s", l.name)
		l.startLocked()
		l.mtx.Unlock()
		td.settle(tdErr)
		return
	}

	notify := l.finishLocked()
	l.mtx.Unlock()

	notify()
	td.settle(tdErr)
}

func (l *Launcher) finishLocked() func() {
	prev := l.state
	l.state = Finished
	l.cancel()

	err := l.err
	failed := err != nil && prev != BeingForceKilled && prev != Restarting
	if err != nil {
		l.l.Infow("browser finished", zap.Stringer("state", prev), zap.Error(err))
	} else {
		l.l.Infow("browser finished", zap.Stringer("state", prev))
	}

	return func() {
		if failed {
			l.sig.ProcessFailure(l, err)
		}
		l.sig.Done(l, err)
	}
}

func (l *Launcher) quitOrphan(c webdriver.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), l.cfg.KillTimeout())
	defer cancel()
	if err := c.Quit(ctx); err != nil {
		l.l.Warnw("failed to close orphan session", zap.String("error", models.FormatError(err)))
	}
}

func (l *Launcher) recordErrLocked(err error) {
	if l.err == nil {
		l.err = err
	}
}
