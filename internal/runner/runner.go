// Package runner starts configured browsers and drives them until completion or shutdown.
package runner

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/wdlauncher/internal/launcher"
	"github.com/selebrow/wdlauncher/pkg/config"
	"github.com/selebrow/wdlauncher/pkg/event"
	evmodels "github.com/selebrow/wdlauncher/pkg/event/models"
	"github.com/selebrow/wdlauncher/pkg/launchers"
	"github.com/selebrow/wdlauncher/pkg/models"
	"github.com/selebrow/wdlauncher/pkg/quota"
	"github.com/selebrow/wdlauncher/pkg/resolve"
	"github.com/selebrow/wdlauncher/pkg/webdriver"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

type Config interface {
	config.LauncherConfig
	config.RunnerConfig
	config.DriverConfig
}

// Registry receives launcher signals and makes launchers reachable by the capture server
type Registry interface {
	launcher.Signals
	Register(ln *launcher.Launcher)
	Unregister(id string)
}

type Runner struct {
	cfg     Config
	listen  string
	cat     launchers.LaunchersCatalog
	reg     Registry
	eb      event.EventBroker
	qa      quota.SlotAuthorizer
	factory webdriver.Factory
	log     *zap.Logger
	l       *zap.SugaredLogger
}

type tracker struct {
	name     string
	ln       *launcher.Launcher
	url      string
	timer    *time.Timer
	restarts int
	slot     bool
	done     bool
}

type denial struct {
	id  string
	err error
}

func NewRunner(
	cfg Config,
	listen string,
	cat launchers.LaunchersCatalog,
	reg Registry,
	eb event.EventBroker,
	qa quota.SlotAuthorizer,
	factory webdriver.Factory,
	l *zap.Logger,
) *Runner {
	return &Runner{
		cfg:     cfg,
		listen:  listen,
		cat:     cat,
		reg:     reg,
		eb:      eb,
		qa:      qa,
		factory: factory,
		log:     l,
		l:       l.Sugar(),
	}
}

// Run starts selected launchers and blocks until all of them are finished (in single run mode)
// or ctx is cancelled. Returns process exit code.
func (r *Runner) Run(ctx context.Context) (int, error) {
	trackers, err := r.prepare()
	if err != nil {
		return ExitFailure, err
	}

	events := r.eb.Subscribe(
		evmodels.BrowserCapturedEventType,
		evmodels.BrowserCompleteEventType,
		evmodels.BrowserProcessFailureEventType,
		evmodels.BrowserDoneEventType,
	)
	defer r.eb.Unsubscribe(events)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	grants := make(chan string)
	denials := make(chan denial)
	timeouts := make(chan string)
	byID := make(map[string]*tracker, len(trackers))
	for _, t := range trackers {
		byID[t.ln.ID()] = t
		r.reg.Register(t.ln)
		go r.acquire(ctx, t.ln.ID(), grants, denials)
	}
	// late sockets of finished runs are answered with 404
	defer func() {
		for id := range byID {
			r.reg.Unregister(id)
		}
	}()

	failed := false
	finished := 0
	for {
		select {
		case <-ctx.Done():
			r.l.Info("shutting down browsers")
			r.stopAll(trackers)
			return exitCode(failed), nil

		case id := <-grants:
			t := byID[id]
			t.slot = true
			if t.done {
				r.release(t)
				continue
			}
			t.ln.Start(t.url)
			r.arm(ctx, t, timeouts)

		case d := <-denials:
			byID[d.id].ln.Fail(d.err)

		case id := <-timeouts:
			r.captureTimeout(ctx, byID[id], timeouts)

		case ev, ok := <-events:
			if !ok {
				r.l.Warn("event stream closed, shutting down browsers")
				r.stopAll(trackers)
				return exitCode(failed), nil
			}

			switch e := ev.(type) {
			case *evmodels.Event[evmodels.BrowserCaptured]:
				if t := byID[e.Attributes.LauncherID]; t != nil {
					stopTimer(t)
				}
			case *evmodels.Event[evmodels.BrowserComplete]:
				if t := byID[e.Attributes.LauncherID]; t != nil {
					r.l.Infof("browser %s completed", t.ln.Name())
					t.ln.Kill()
				}
			case *evmodels.Event[evmodels.BrowserProcessFailure]:
				if byID[e.Attributes.LauncherID] != nil {
					failed = true
				}
			case *evmodels.Event[evmodels.BrowserDone]:
				t := byID[e.Attributes.LauncherID]
				if t == nil || t.done {
					continue
				}
				t.done = true
				stopTimer(t)
				r.release(t)
				finished++
				r.l.Infof("%d of %d browsers finished", finished, len(trackers))
				if finished == len(trackers) && r.cfg.SingleRun() {
					return exitCode(failed), nil
				}
			}
		}
	}
}

func (r *Runner) prepare() ([]*tracker, error) {
	names := uniq(r.cfg.Launchers())
	if len(names) == 0 {
		names = r.cat.Names()
	}
	if len(names) == 0 {
		return nil, models.NewConfigurationError(errors.New("no launchers configured"))
	}

	res := make([]*tracker, 0, len(names))
	for _, name := range names {
		t, err := r.newTracker(name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create launcher %s", name)
		}
		res = append(res, t)
	}
	return res, nil
}

func (r *Runner) newTracker(name string) (*tracker, error) {
	def, ok := r.cat.Lookup(name)
	if !ok {
		return nil, models.NewConfigurationError(errors.Errorf("unknown launcher %q", name))
	}

	hub, err := resolve.ResolveHub(r.cfg.HubConfig(), def.HubConfig())
	if err != nil {
		return nil, err
	}
	target, err := resolve.ResolveTarget(r.listen, r.cfg.TargetConfig(), def.TargetConfig())
	if err != nil {
		return nil, err
	}
	spec, err := resolve.ResolveSpec(def, launchers.ReservedKeys...)
	if err != nil {
		return nil, err
	}
	interval, err := def.HeartbeatInterval()
	if err != nil {
		return nil, models.NewConfigurationError(err)
	}

	opts := []launcher.Option{launcher.WithHeartbeatInterval(interval)}
	if sid := def.SessionID(); sid != "" {
		opts = append(opts, launcher.WithSessionID(sid))
	}
	newClient := func() webdriver.Client {
		return r.factory(hub)
	}

	ln, err := launcher.NewLauncher("", spec, newClient, r.reg, r.cfg, r.log.Named("launcher"), opts...)
	if err != nil {
		return nil, err
	}
	r.l.Infow("launcher prepared",
		zap.String("launcher", name),
		zap.String("launcher_id", ln.ID()),
		zap.Stringer("hub", hub.URL()))

	return &tracker{
		name: name,
		ln:   ln,
		url:  target.CaptureURL(ln.ID()).String(),
	}, nil
}

func (r *Runner) acquire(ctx context.Context, id string, grants chan<- string, denials chan<- denial) {
	if err := r.qa.Reserve(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		select {
		case denials <- denial{id: id, err: err}:
		case <-ctx.Done():
		}
		return
	}

	select {
	case grants <- id:
	case <-ctx.Done():
		r.qa.Release()
	}
}

func (r *Runner) arm(ctx context.Context, t *tracker, timeouts chan<- string) {
	id := t.ln.ID()
	t.timer = time.AfterFunc(r.cfg.CaptureTimeout(), func() {
		select {
		case timeouts <- id:
		case <-ctx.Done():
		}
	})
}

func (r *Runner) captureTimeout(ctx context.Context, t *tracker, timeouts chan<- string) {
	if t.done || t.ln.State() == launcher.Active {
		return
	}

	if t.restarts < r.cfg.RetryLimit() {
		t.restarts++
		r.l.Warnf("browser %s was not captured in %s, restarting (%d/%d)",
			t.ln.Name(), r.cfg.CaptureTimeout(), t.restarts, r.cfg.RetryLimit())
		t.ln.Restart()
		r.arm(ctx, t, timeouts)
		return
	}

	r.l.Errorf("browser %s was not captured in %s, giving up", t.ln.Name(), r.cfg.CaptureTimeout())
	t.ln.Fail(models.NewSessionStartError(errors.Errorf("browser %s was not captured after %d restarts",
		t.ln.Name(), t.restarts)))
}

func (r *Runner) stopAll(trackers []*tracker) {
	tds := make([]*launcher.Teardown, 0, len(trackers))
	for _, t := range trackers {
		stopTimer(t)
		if !t.done {
			tds = append(tds, t.ln.ForceKill())
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.KillTimeout())
	defer cancel()
	for _, td := range tds {
		if err := td.Wait(ctx); err != nil {
			r.l.Warnw("browser teardown failed", zap.String("error", models.FormatError(err)))
		}
	}
	for _, t := range trackers {
		r.release(t)
	}
}

func (r *Runner) release(t *tracker) {
	if t.slot {
		t.slot = false
		r.qa.Release()
	}
}

func stopTimer(t *tracker) {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func exitCode(failed bool) int {
	if failed {
		return ExitFailure
	}
	return ExitOK
}

func uniq(names []string) []string {
	seen := make(map[string]bool, len(names))
	res := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		res = append(res, n)
	}
	return res
}
