// Package bridge publishes launcher lifecycle signals to the event broker
// and routes capture page notifications back to the launchers.
package bridge

import (
	"net/url"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/wdlauncher/internal/launcher"
	"github.com/selebrow/wdlauncher/pkg/event"
	evmodels "github.com/selebrow/wdlauncher/pkg/event/models"
	"github.com/selebrow/wdlauncher/pkg/models"
)

type Bridge struct {
	eb        event.EventBroker
	mtx       sync.RWMutex
	launchers map[string]*launcher.Launcher
	done      map[string]bool
	l         *zap.SugaredLogger
}

func NewBridge(eb event.EventBroker, l *zap.Logger) *Bridge {
	return &Bridge{
		eb:        eb,
		launchers: make(map[string]*launcher.Launcher),
		done:      make(map[string]bool),
		l:         l.Sugar(),
	}
}

func (b *Bridge) Register(ln *launcher.Launcher) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	b.launchers[ln.ID()] = ln
}

func (b *Bridge) Unregister(id string) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	delete(b.launchers, id)
}

// Launchers returns registered launchers ordered by id
func (b *Bridge) Launchers() []*launcher.Launcher {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	res := make([]*launcher.Launcher, 0, len(b.launchers))
	for _, ln := range b.launchers {
		res = append(res, ln)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].ID() < res[j].ID()
	})
	return res
}

func (b *Bridge) Captured(ln *launcher.Launcher) {
	b.eb.Publish(evmodels.NewBrowserCapturedEvent(evmodels.BrowserCaptured{
		LauncherID:  ln.ID(),
		BrowserName: ln.Spec().BrowserName,
		SessionID:   ln.SessionID(),
	}))
}

func (b *Bridge) ProcessFailure(ln *launcher.Launcher, err error) {
	b.l.With(zap.String("launcher_id", ln.ID())).
		Errorf("browser %s process failure: %s", ln.Name(), models.FormatError(err))
	b.eb.Publish(evmodels.NewBrowserProcessFailureEvent(evmodels.BrowserProcessFailure{
		LauncherID:  ln.ID(),
		BrowserName: ln.Spec().BrowserName,
		Spec:        ln.Spec(),
		Error:       err,
	}))
}

func (b *Bridge) Done(ln *launcher.Launcher, err error) {
	b.mtx.Lock()
	if b.done[ln.ID()] {
		b.mtx.Unlock()
		b.l.Warnw("duplicate done signal ignored", zap.String("launcher_id", ln.ID()))
		return
	}
	b.done[ln.ID()] = true
	b.mtx.Unlock()

	b.eb.Publish(evmodels.NewBrowserDoneEvent(evmodels.BrowserDone{
		LauncherID:  ln.ID(),
		BrowserName: ln.Spec().BrowserName,
		Error:       err,
	}))
}

// Disconnected fails the launcher whose navigated URL carries the given reference.
// Returns false when there is no such launcher.
func (b *Bridge) Disconnected(ref string) bool {
	ln := b.find(ref)
	if ln == nil {
		b.l.Debugw("disconnect of unknown browser ignored", zap.String("ref", ref))
		return false
	}
	ln.Fail(models.NewDisconnectError(errors.Errorf("browser %s disconnected", ln.Name())))
	return true
}

// Complete publishes completion reported by the capture page with the given reference
func (b *Bridge) Complete(ref string) bool {
	ln := b.find(ref)
	if ln == nil {
		b.l.Debugw("completion of unknown browser ignored", zap.String("ref", ref))
		return false
	}
	b.eb.Publish(evmodels.NewBrowserCompleteEvent(evmodels.BrowserComplete{LauncherID: ln.ID()}))
	return true
}

// Known reports whether a registered launcher was navigated to the page with the given reference
func (b *Bridge) Known(ref string) bool {
	return b.find(ref) != nil
}

func (b *Bridge) find(ref string) *launcher.Launcher {
	if ref == "" {
		return nil
	}

	b.mtx.RLock()
	defer b.mtx.RUnlock()
	for _, ln := range b.launchers {
		u, err := url.Parse(ln.URL())
		if err != nil {
			continue
		}
		if models.SessionRef(u) == ref {
			return ln
		}
	}
	return nil
}
