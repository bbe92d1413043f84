package ws

import (
	"io"
	"net"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/net/websocket"
)

// CompleteMessage text frame sent by the capture page once the browser has finished its work
const CompleteMessage = "complete"

type Notifier interface {
	Complete(ref string) bool
	Disconnected(ref string) bool
}

type Listener interface {
	Handler(ref string) websocket.Handler
}

// CaptureListener reads notifications sent by capture pages.
// Disconnect is reported once the last socket opened for a reference is closed,
// so a page reloaded by a restarted session doesn't fail the new one.
type CaptureListener struct {
	n     Notifier
	mtx   sync.Mutex
	conns map[string]int
	l     *zap.SugaredLogger
}

func NewCaptureListener(n Notifier, l *zap.Logger) *CaptureListener {
	return &CaptureListener{
		n:     n,
		conns: make(map[string]int),
		l:     l.Sugar(),
	}
}

func (c *CaptureListener) Handler(ref string) websocket.Handler {
	return func(wsconn *websocket.Conn) {
		l := c.l.With(zap.String("ref", ref))
		c.opened(ref)
		l.Debug("capture socket opened")

		defer func() {
			_ = wsconn.Close()
			if c.closed(ref) {
				l.Info("capture socket closed")
				c.n.Disconnected(ref)
			}
		}()

		for {
			var msg string
			if err := websocket.Message.Receive(wsconn, &msg); err != nil {
				if logReceiveErr(err) {
					l.Warnw("capture socket error", zap.Error(err))
				}
				return
			}

			switch strings.TrimSpace(msg) {
			case CompleteMessage:
				if !c.n.Complete(ref) {
					l.Warn("completion reported for unknown browser")
				}
			default:
				l.Debugf("ignoring capture page message: %q", msg)
			}
		}
	}
}

// Connections returns number of open sockets for the reference
func (c *CaptureListener) Connections(ref string) int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.conns[ref]
}

func (c *CaptureListener) opened(ref string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.conns[ref]++
}

func (c *CaptureListener) closed(ref string) bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.conns[ref]--
	if c.conns[ref] > 0 {
		return false
	}
	delete(c.conns, ref)
	return true
}

func logReceiveErr(err error) bool {
	// EOF and closed connection are regular ways for the browser to go away
	return !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) && !errors.Is(err, io.ErrClosedPipe)
}
