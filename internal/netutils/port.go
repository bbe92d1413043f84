package netutils

import (
	"net"
	"strconv"

	"github.com/pkg/errors"
)

// FreePort asks the system for a TCP port that is currently free on host
func FreePort(host string) (int, error) {
	l, err := net.Listen("tcp", net.JoinHostPort(host, "0"))
	if err != nil {
		return 0, errors.Wrapf(err, "failed to listen on %s", host)
	}
	defer l.Close()

	return ListenPort(l)
}

// ListenPort returns port the listener is bound to
func ListenPort(l net.Listener) (int, error) {
	_, p, err := net.SplitHostPort(l.Addr().String())
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(p)
}
