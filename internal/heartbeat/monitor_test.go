package heartbeat

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/wdlauncher/pkg/models"
)

type testConfig struct {
	interval time.Duration
	title    string
}

func (c testConfig) HeartbeatInterval() time.Duration {
	return c.interval
}

func (c testConfig) HeartbeatTitle() string {
	return c.title
}

var cfg = testConfig{interval: 10 * time.Millisecond, title: "Karma"}

func TestMonitor_Active(t *testing.T) {
	g := NewWithT(t)

	var probes atomic.Int32
	var failures atomic.Int32
	m := NewMonitor(cfg, func(context.Context) (string, error) {
		probes.Add(1)
		return "Karma", nil
	}, func(error) {
		failures.Add(1)
	}, zaptest.NewLogger(t))

	m.Start()
	g.Eventually(probes.Load).Should(BeNumerically(">=", 3))
	m.Stop()

	n := probes.Load()
	g.Consistently(probes.Load, 50*time.Millisecond).Should(BeNumerically("<=", n+1))
	g.Expect(failures.Load()).To(BeZero())
	g.Expect(m.Stopped()).To(BeTrue())
}

func TestMonitor_TitleMismatch(t *testing.T) {
	g := NewWithT(t)

	var probes atomic.Int32
	errs := make(chan error, 2)
	m := NewMonitor(cfg, func(context.Context) (string, error) {
		if probes.Add(1) < 2 {
			return "Karma", nil
		}
		return "blank", nil
	}, func(err error) {
		errs <- err
	}, zaptest.NewLogger(t))

	m.Start()

	var err error
	g.Eventually(errs).Should(Receive(&err))
	g.Expect(models.IsKind(err, models.HeartbeatFailure)).To(BeTrue())
	g.Expect(err.Error()).To(ContainSubstring(`unexpected page title "blank"`))
	g.Expect(m.Stopped()).To(BeTrue())

	g.Consistently(errs, 50*time.Millisecond).ShouldNot(Receive())
	g.Expect(probes.Load()).To(BeEquivalentTo(2))
}

func TestMonitor_ProbeError(t *testing.T) {
	g := NewWithT(t)

	errs := make(chan error, 2)
	m := NewMonitor(cfg, func(context.Context) (string, error) {
		return "", errors.New("session deleted")
	}, func(err error) {
		errs <- err
	}, zaptest.NewLogger(t))

	m.Start()

	var err error
	g.Eventually(errs).Should(Receive(&err))
	g.Expect(models.IsKind(err, models.HeartbeatFailure)).To(BeTrue())
	g.Expect(err).To(MatchError(ContainSubstring("session deleted")))
	g.Consistently(errs, 50*time.Millisecond).ShouldNot(Receive())
}

func TestMonitor_StopDuringProbe(t *testing.T) {
	g := NewWithT(t)

	inProbe := make(chan struct{})
	release := make(chan struct{})
	var failures atomic.Int32
	var probes atomic.Int32
	m := NewMonitor(cfg, func(context.Context) (string, error) {
		probes.Add(1)
		close(inProbe)
		<-release
		return "", errors.New("too late")
	}, func(error) {
		failures.Add(1)
	}, zaptest.NewLogger(t))

	m.Start()
	g.Eventually(inProbe).Should(BeClosed())
	m.Stop()
	close(release)

	g.Consistently(failures.Load, 50*time.Millisecond).Should(BeZero())
	g.Expect(probes.Load()).To(BeEquivalentTo(1))
}

func TestMonitor_NotRestartable(t *testing.T) {
	g := NewWithT(t)

	var probes atomic.Int32
	m := NewMonitor(cfg, func(context.Context) (string, error) {
		probes.Add(1)
		return "Karma", nil
	}, func(error) {}, zaptest.NewLogger(t))

	m.Stop()
	m.Start()
	m.Stop()

	g.Consistently(probes.Load, 50*time.Millisecond).Should(BeZero())
}

func TestNewMonitor_DefaultInterval(t *testing.T) {
	g := NewWithT(t)

	m := NewMonitor(testConfig{title: "Karma"}, nil, nil, zaptest.NewLogger(t))
	g.Expect(m.interval).To(Equal(10 * time.Second))
}
