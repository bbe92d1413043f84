package limit

import (
	"container/list"
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/wdlauncher/pkg/models"
)

type waiter chan struct{}

// SlotLimiter grants browser slots in FIFO order, nil limiter is disabled
type SlotLimiter struct {
	limit     int
	allocated int
	m         sync.RWMutex
	queue     *list.List
	qLimit    int
	l         *zap.SugaredLogger
}

// NewSlotLimiter returns nil when limit is not positive
func NewSlotLimiter(limit, qLimit int, l *zap.Logger) *SlotLimiter {
	if limit <= 0 {
		return nil
	}
	logger := l.Sugar()
	logger.Infow("limiting concurrent browsers", zap.Int("limit", limit), zap.Int("queue_limit", qLimit))
	return &SlotLimiter{
		limit:  limit,
		queue:  list.New(),
		qLimit: qLimit,
		l:      logger,
	}
}

func (s *SlotLimiter) Enabled() bool {
	return s != nil
}

func (s *SlotLimiter) Reserve(ctx context.Context) error {
	if s == nil {
		return nil
	}

	s.m.Lock()
	qSize := s.queue.Len()
	// queued launchers go first
	if s.allocated+qSize < s.limit {
		defer s.m.Unlock()
		s.allocated++
		s.l.Debugf("slot reserved: allocated=%d", s.allocated)
		return nil
	}

	if qSize >= s.qLimit {
		defer s.m.Unlock()
		return models.NewSlotUnavailableError(errors.New(s.describe("waiting queue is full")))
	}

	ch := make(waiter)
	e := s.queue.PushBack(ch)
	s.l.Debugf("waiting for slot: queue size=%d", s.queue.Len())
	s.m.Unlock()

	select {
	case <-ctx.Done():
		s.m.Lock()
		defer s.m.Unlock()
		select {
		case <-ch:
			// slot was handed over by Release() concurrently with cancellation
			return nil
		default:
			s.queue.Remove(e)
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return models.NewSlotUnavailableError(errors.Wrap(ctx.Err(), s.describe("slot wait timed out")))
			}
			return errors.Wrap(ctx.Err(), s.describe("slot wait cancelled"))
		}
	case <-ch:
		return nil
	}
}

// Release frees a slot or hands it over to the first waiting launcher, returns allocated slots count
func (s *SlotLimiter) Release() int {
	if s == nil {
		return 0
	}

	s.m.Lock()
	defer s.m.Unlock()

	if e := s.queue.Front(); e != nil {
		ch, _ := s.queue.Remove(e).(waiter)
		s.l.Debugf("slot handed over to queue: allocated=%d, queue size=%d", s.allocated, s.queue.Len())
		close(ch)
		return s.allocated
	}

	if s.allocated < 1 {
		s.l.Warnf("slot underrun detected, resetting to 0: allocated=%d", s.allocated)
		s.allocated = 0
	} else {
		s.allocated--
		s.l.Debugf("slot released: allocated=%d", s.allocated)
	}
	return s.allocated
}

func (s *SlotLimiter) Limit() int {
	if s == nil {
		return 0
	}
	return s.limit
}

func (s *SlotLimiter) Allocated() int {
	if s == nil {
		return 0
	}
	s.m.RLock()
	defer s.m.RUnlock()
	return s.allocated
}

func (s *SlotLimiter) QueueLimit() int {
	if s == nil {
		return 0
	}
	return s.qLimit
}

func (s *SlotLimiter) QueueSize() int {
	if s == nil {
		return 0
	}
	s.m.RLock()
	defer s.m.RUnlock()
	return s.queue.Len()
}

func (s *SlotLimiter) describe(msg string) string {
	return fmt.Sprintf("%s: allocated=%d, limit=%d, queue size=%d", msg, s.allocated, s.limit, s.queue.Len())
}
