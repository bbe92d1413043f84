package launcher

import (
	"context"
	"sync"
)

// Teardown is a handle of the in-flight session termination shared by all kill requesters.
// It settles exactly once.
type Teardown struct {
	done chan struct{}
	once sync.Once
	err  error
}

func newTeardown() *Teardown {
	return &Teardown{done: make(chan struct{})}
}

func settledTeardown(err error) *Teardown {
	t := newTeardown()
	t.settle(err)
	return t
}

func (t *Teardown) settle(err error) {
	t.once.Do(func() {
		t.err = err
		close(t.done)
	})
}

func (t *Teardown) Done() <-chan struct{} {
	return t.done
}

// Err returns teardown error, it's always nil until Done is closed
func (t *Teardown) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

func (t *Teardown) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
