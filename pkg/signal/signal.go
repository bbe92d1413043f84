package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

type ShutdownHook func(ctx context.Context) error

type Handler struct {
	mtx     sync.Mutex
	hooks   map[any][]ShutdownHook
	order   []any
	timeout time.Duration
	signals chan os.Signal
	l       *zap.SugaredLogger
}

func NewHandler(timeout time.Duration, l *zap.Logger) *Handler {
	return &Handler{
		hooks:   make(map[any][]ShutdownHook),
		timeout: timeout,
		signals: make(chan os.Signal, 2),
		l:       l.Sugar(),
	}
}

// Start blocks until termination signal is caught or done yields an exit code, then runs shutdown hooks.
// Hook groups run concurrently, hooks of the same group run in reverse registration order.
func (h *Handler) Start(done <-chan int) int {
	signal.Notify(h.signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(h.signals)

	code := 0
	select {
	case sig := <-h.signals:
		h.l.Infow("signal caught, shutting down...", zap.String("signal", sig.String()))
	case code = <-done:
		h.l.Infof("run completed with exit code %d, shutting down...", code)
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	select {
	case <-ctx.Done():
		h.l.Warnf("shutdown hooks did not complete within %v, exiting immediately", h.timeout)
		return 1
	case <-h.performShutdown(ctx):
		h.l.Infof("graceful shutdown completed in %v", time.Since(start))
		return code
	case sig := <-h.signals:
		h.l.Infow("second signal caught, exiting immediately", zap.String("signal", sig.String()))
	}

	return 1
}

func (h *Handler) RegisterShutdownHook(group any, hook ShutdownHook) {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	if _, ok := h.hooks[group]; !ok {
		h.order = append(h.order, group)
	}
	h.hooks[group] = append(h.hooks[group], hook)
}

func (h *Handler) performShutdown(ctx context.Context) <-chan struct{} {
	h.mtx.Lock()
	groups := make([][]ShutdownHook, 0, len(h.order))
	for _, g := range h.order {
		groups = append(groups, h.hooks[g])
	}
	h.mtx.Unlock()

	var wg sync.WaitGroup
	done := make(chan struct{})
	for _, hooks := range groups {
		hooks := hooks
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := len(hooks) - 1; i >= 0; i-- {
				if err := hooks[i](ctx); err != nil {
					h.l.Warnw("shutdown hook failed", zap.Error(err))
				}
			}
		}()
	}

	go func() {
		defer close(done)
		wg.Wait()
	}()

	return done
}
