package event

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/selebrow/wdlauncher/pkg/event/models"
)

type EventBroker interface {
	Subscribe(eventTypes ...string) <-chan models.IEvent
	Unsubscribe(ch <-chan models.IEvent)
	Publish(event models.IEvent)
}

type EventBrokerImpl struct {
	mtx      sync.RWMutex
	subs     map[string][]chan models.IEvent
	bSize    int
	timeout  time.Duration
	shutdown bool
	l        *zap.SugaredLogger
}

// NewEventBrokerImpl creates broker which waits up to publishTimeout for a slow subscriber before dropping the event.
// Zero timeout means events are dropped as soon as subscriber's buffer is full.
func NewEventBrokerImpl(bufferSize int, publishTimeout time.Duration, l *zap.Logger) *EventBrokerImpl {
	return &EventBrokerImpl{
		subs:    make(map[string][]chan models.IEvent),
		bSize:   bufferSize,
		timeout: publishTimeout,
		l:       l.Sugar(),
	}
}

func (b *EventBrokerImpl) Subscribe(eventTypes ...string) <-chan models.IEvent {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	ch := make(chan models.IEvent, b.bSize)
	if b.shutdown {
		close(ch)
		return ch
	}
	for _, et := range eventTypes {
		b.subs[et] = append(b.subs[et], ch)
	}
	return ch
}

// Unsubscribe removes subscription and closes its channel
func (b *EventBrokerImpl) Unsubscribe(ch <-chan models.IEvent) {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	var found chan models.IEvent
	for et, chs := range b.subs {
		for i, c := range chs {
			if c == ch {
				found = c
				b.subs[et] = append(chs[:i:i], chs[i+1:]...)
				break
			}
		}
		if len(b.subs[et]) == 0 {
			delete(b.subs, et)
		}
	}
	if found != nil {
		close(found)
	}
}

func (b *EventBrokerImpl) Publish(event models.IEvent) {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	for _, ch := range b.subs[event.EventType()] {
		select {
		case ch <- event:
			continue
		default:
		}

		if b.timeout > 0 {
			t := time.NewTimer(b.timeout)
			select {
			case ch <- event:
				t.Stop()
				continue
			case <-t.C:
			}
		}
		b.l.With(zap.String("type", event.EventType()), zap.String("subject", event.Subject())).
			Warnf("dropping published event, channel is full: length=%d", len(ch))
	}
}

func (b *EventBrokerImpl) ShutDown(_ context.Context) error {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	closed := make(map[chan models.IEvent]bool)
	for et, chs := range b.subs {
		for _, ch := range chs {
			if !closed[ch] {
				close(ch)
				closed[ch] = true
			}
		}
		delete(b.subs, et)
	}
	b.shutdown = true
	b.l.Info("event broker shutdown completed")
	return nil
}
