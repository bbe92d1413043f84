// Package driver runs a local WebDriver binary acting as the hub for launched browsers.
package driver

import (
	"context"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapio"
)

const readyPollInterval = 200 * time.Millisecond

// ReadyFunc reports whether the driver accepts new sessions
type ReadyFunc func(ctx context.Context) (bool, error)

type Driver struct {
	bin   string
	args  []string
	ready ReadyFunc

	mtx    sync.Mutex
	cmd    *exec.Cmd
	exited chan struct{}
	err    error
	out    *zapio.Writer
	l      *zap.SugaredLogger
}

func NewDriver(bin string, args []string, ready ReadyFunc, l *zap.Logger) *Driver {
	return &Driver{
		bin:   bin,
		args:  args,
		ready: ready,
		out:   &zapio.Writer{Log: l.Named("output"), Level: zap.DebugLevel},
		l:     l.Sugar(),
	}
}

// Start launches the driver and blocks until it's ready or ctx is done
func (d *Driver) Start(ctx context.Context) error {
	d.mtx.Lock()
	if d.cmd != nil {
		d.mtx.Unlock()
		return errors.New("driver is already started")
	}

	cmd := exec.Command(d.bin, d.args...)
	cmd.Stdout = d.out
	cmd.Stderr = d.out
	if err := cmd.Start(); err != nil {
		d.mtx.Unlock()
		return errors.Wrapf(err, "failed to start %s", d.bin)
	}
	d.cmd = cmd
	d.exited = make(chan struct{})
	d.mtx.Unlock()

	d.l.Infow("driver started", zap.String("bin", d.bin), zap.Strings("args", d.args), zap.Int("pid", cmd.Process.Pid))
	go d.wait(cmd)

	if err := d.waitReady(ctx); err != nil {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = d.Stop(stopCtx)
		return err
	}
	d.l.Info("driver is ready")
	return nil
}

// Stop interrupts the driver and kills it when it doesn't exit before ctx is done
func (d *Driver) Stop(ctx context.Context) error {
	d.mtx.Lock()
	cmd, exited := d.cmd, d.exited
	d.mtx.Unlock()
	if cmd == nil {
		return nil
	}

	select {
	case <-exited:
		return nil
	default:
	}

	if err := cmd.Process.Signal(os.Interrupt); err != nil {
		d.l.Debugw("failed to interrupt driver, killing it", zap.Error(err))
		_ = cmd.Process.Kill()
	}

	select {
	case <-exited:
		d.l.Info("driver stopped")
		return nil
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-exited
		return errors.Wrap(ctx.Err(), "driver did not stop in time and was killed")
	}
}

// Exited is closed once the driver process is gone
func (d *Driver) Exited() <-chan struct{} {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return d.exited
}

func (d *Driver) Err() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return d.err
}

func (d *Driver) wait(cmd *exec.Cmd) {
	err := cmd.Wait()
	_ = d.out.Sync()
	if err != nil {
		d.l.Warnw("driver exited", zap.Error(err))
	} else {
		d.l.Info("driver exited")
	}

	d.mtx.Lock()
	defer d.mtx.Unlock()
	d.err = err
	close(d.exited)
}

func (d *Driver) waitReady(ctx context.Context) error {
	ticker := time.NewTicker(readyPollInterval)
	defer ticker.Stop()

	var lastErr error
	for {
		ready, err := d.ready(ctx)
		if err == nil && ready {
			return nil
		}
		if err != nil {
			lastErr = err
		}

		select {
		case <-d.exited:
			return errors.Errorf("driver exited before becoming ready: %v", d.Err())
		case <-ctx.Done():
			if lastErr != nil {
				return errors.Wrapf(ctx.Err(), "driver is not ready, last error was: %s", lastErr.Error())
			}
			return errors.Wrap(ctx.Err(), "driver is not ready")
		case <-ticker.C:
		}
	}
}
