package runner

import (
	"context"
	"sync"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/wdlauncher/internal/bridge"
	"github.com/selebrow/wdlauncher/internal/launcher"
	"github.com/selebrow/wdlauncher/mocks"
	"github.com/selebrow/wdlauncher/pkg/event"
	"github.com/selebrow/wdlauncher/pkg/launchers"
	"github.com/selebrow/wdlauncher/pkg/models"
	"github.com/selebrow/wdlauncher/pkg/quota"
	"github.com/selebrow/wdlauncher/pkg/quota/limit"
	"github.com/selebrow/wdlauncher/pkg/webdriver"
)

const listen = "127.0.0.1:9876"

type testConfig struct {
	launchers      []string
	captureTimeout time.Duration
	retryLimit     int
	singleRun      bool
}

func (testConfig) HeartbeatInterval() time.Duration { return time.Hour }
func (testConfig) HeartbeatTitle() string           { return "Karma" }
func (testConfig) StartRetries() int                { return 0 }
func (testConfig) KillTimeout() time.Duration       { return time.Second }
func (c testConfig) CaptureTimeout() time.Duration  { return c.captureTimeout }
func (c testConfig) RetryLimit() int                { return c.retryLimit }
func (testConfig) Concurrency() int                 { return 0 }
func (testConfig) QueueSize() int                   { return 0 }
func (c testConfig) SingleRun() bool                { return c.singleRun }
func (c testConfig) Launchers() []string            { return c.launchers }
func (testConfig) HubConfig() map[string]any        { return nil }
func (testConfig) TargetConfig() map[string]any     { return map[string]any{"port": 9999} }
func (testConfig) WebDriverBin() string             { return "" }

var defaultConfig = testConfig{captureTimeout: time.Minute, retryLimit: 2, singleRun: true}

var chromeDef = launchers.Definition{
	"base":        launchers.BaseName,
	"browserName": "chrome",
}

type result struct {
	code int
	err  error
}

type harness struct {
	r   *Runner
	b   *bridge.Bridge
	cat *mocks.LaunchersCatalog

	mtx  sync.Mutex
	hubs []models.SessionConfig
}

func newHarness(t *testing.T, cfg testConfig, qa quota.SlotAuthorizer, c webdriver.Client) *harness {
	eb := event.NewEventBrokerImpl(10, time.Second, zaptest.NewLogger(t))
	h := &harness{
		b:   bridge.NewBridge(eb, zaptest.NewLogger(t)),
		cat: mocks.NewLaunchersCatalog(t),
	}
	if qa == nil {
		qa = limit.NewSlotLimiter(0, 0, zaptest.NewLogger(t))
	}
	factory := func(hub models.SessionConfig) webdriver.Client {
		h.mtx.Lock()
		defer h.mtx.Unlock()
		h.hubs = append(h.hubs, hub)
		return c
	}
	h.r = NewRunner(cfg, listen, h.cat, h.b, eb, qa, factory, zaptest.NewLogger(t))
	return h
}

func (h *harness) run(ctx context.Context) <-chan result {
	ch := make(chan result, 1)
	go func() {
		code, err := h.r.Run(ctx)
		ch <- result{code: code, err: err}
	}()
	return ch
}

func (h *harness) launchers(g *WithT, n int) []*launcher.Launcher {
	g.Eventually(h.b.Launchers).Should(HaveLen(n))
	return h.b.Launchers()
}

func (h *harness) Hubs() []models.SessionConfig {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return append([]models.SessionConfig(nil), h.hubs...)
}

func inState(states ...launcher.State) func([]*launcher.Launcher) int {
	return func(lns []*launcher.Launcher) int {
		n := 0
		for _, ln := range lns {
			for _, s := range states {
				if ln.State() == s {
					n++
				}
			}
		}
		return n
	}
}

func TestRunner_Run_Complete(t *testing.T) {
	g := NewWithT(t)
	c := mocks.NewClient(t)
	h := newHarness(t, defaultConfig, nil, c)

	h.cat.EXPECT().Names().Return([]string{"chrome"}).Once()
	h.cat.EXPECT().Lookup("chrome").Return(launchers.Definition{
		"base":        launchers.BaseName,
		"browserName": "chrome",
		"version":     120,
		"config": map[string]interface{}{
			"port": 5555,
			"browser": map[string]interface{}{
				"hostname": "10.0.0.1",
			},
		},
	}, true).Once()

	c.EXPECT().Init(mock.Anything, mock.MatchedBy(func(spec models.CapabilitySpec) bool {
		return spec.BrowserName == "chrome" && spec.Version == "120" && spec.Extra == nil
	})).Return("s1", nil).Once()
	c.EXPECT().Get(mock.Anything, mock.Anything).Return(nil).Once()
	c.EXPECT().Quit(mock.Anything).Return(nil).Once()

	res := h.run(context.Background())
	ln := h.launchers(g, 1)[0]
	g.Eventually(ln.State).Should(Equal(launcher.Active))
	g.Expect(ln.URL()).To(Equal("http://10.0.0.1:9999/?id=" + ln.ID()))
	g.Expect(h.Hubs()).To(Equal([]models.SessionConfig{{
		Protocol: "http",
		Hostname: "localhost",
		Port:     5555,
		Path:     "/wd/hub",
	}}))

	g.Expect(h.b.Complete(ln.ID())).To(BeTrue())

	var got result
	g.Eventually(res).Should(Receive(&got))
	g.Expect(got.err).ToNot(HaveOccurred())
	g.Expect(got.code).To(Equal(ExitOK))
	g.Expect(ln.State()).To(Equal(launcher.Finished))
	g.Expect(ln.Err()).ToNot(HaveOccurred())
	g.Expect(h.b.Known(ln.ID())).To(BeFalse())
}

func TestRunner_Run_ProcessFailure(t *testing.T) {
	g := NewWithT(t)
	c := mocks.NewClient(t)
	h := newHarness(t, defaultConfig, nil, c)

	h.cat.EXPECT().Names().Return([]string{"chrome"}).Once()
	h.cat.EXPECT().Lookup("chrome").Return(chromeDef, true).Once()
	c.EXPECT().Init(mock.Anything, mock.Anything).Return("s1", nil).Once()
	c.EXPECT().Get(mock.Anything, mock.Anything).Return(nil).Once()
	c.EXPECT().Quit(mock.Anything).Return(nil).Once()

	res := h.run(context.Background())
	ln := h.launchers(g, 1)[0]
	g.Eventually(ln.State).Should(Equal(launcher.Active))

	g.Expect(h.b.Disconnected(ln.ID())).To(BeTrue())

	var got result
	g.Eventually(res).Should(Receive(&got))
	g.Expect(got.err).ToNot(HaveOccurred())
	g.Expect(got.code).To(Equal(ExitFailure))
	g.Expect(models.IsKind(ln.Err(), models.DisconnectErr)).To(BeTrue())
}

func TestRunner_Run_CaptureTimeout(t *testing.T) {
	g := NewWithT(t)
	c := mocks.NewClient(t)
	cfg := defaultConfig
	cfg.captureTimeout = 50 * time.Millisecond
	cfg.retryLimit = 1
	h := newHarness(t, cfg, nil, c)

	h.cat.EXPECT().Names().Return([]string{"chrome"}).Once()
	h.cat.EXPECT().Lookup("chrome").Return(chromeDef, true).Once()
	c.EXPECT().Init(mock.Anything, mock.Anything).Return("", errors.New("no nodes available")).Twice()

	res := h.run(context.Background())
	ln := h.launchers(g, 1)[0]

	var got result
	g.Eventually(res).Should(Receive(&got))
	g.Expect(got.err).ToNot(HaveOccurred())
	g.Expect(got.code).To(Equal(ExitFailure))
	g.Expect(ln.State()).To(Equal(launcher.Finished))
	g.Expect(models.IsKind(ln.Err(), models.SessionStartErr)).To(BeTrue())
	g.Expect(ln.Err()).To(MatchError(ContainSubstring("no nodes available")))
	g.Expect(h.Hubs()).To(HaveLen(2))
}

func TestRunner_Run_Shutdown(t *testing.T) {
	g := NewWithT(t)
	c := mocks.NewClient(t)
	h := newHarness(t, defaultConfig, nil, c)

	h.cat.EXPECT().Names().Return([]string{"chrome"}).Once()
	h.cat.EXPECT().Lookup("chrome").Return(chromeDef, true).Once()
	c.EXPECT().Init(mock.Anything, mock.Anything).Return("s1", nil).Once()
	c.EXPECT().Get(mock.Anything, mock.Anything).Return(nil).Once()
	c.EXPECT().Quit(mock.Anything).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	res := h.run(ctx)
	ln := h.launchers(g, 1)[0]
	g.Eventually(ln.State).Should(Equal(launcher.Active))

	cancel()

	var got result
	g.Eventually(res).Should(Receive(&got))
	g.Expect(got.err).ToNot(HaveOccurred())
	g.Expect(got.code).To(Equal(ExitOK))
	g.Expect(ln.State()).To(Equal(launcher.Finished))
}

func TestRunner_Run_AttachSession(t *testing.T) {
	g := NewWithT(t)
	c := mocks.NewClient(t)
	h := newHarness(t, defaultConfig, nil, c)

	h.cat.EXPECT().Names().Return([]string{"remote"}).Once()
	h.cat.EXPECT().Lookup("remote").Return(launchers.Definition{
		"base":        launchers.BaseName,
		"browserName": "firefox",
		"sessionId":   "s0",
	}, true).Once()
	c.EXPECT().Attach(mock.Anything, "s0").Return(map[string]interface{}{"browserName": "firefox"}, nil).Once()
	c.EXPECT().Get(mock.Anything, mock.Anything).Return(nil).Once()
	c.EXPECT().Quit(mock.Anything).Return(nil).Once()

	res := h.run(context.Background())
	ln := h.launchers(g, 1)[0]
	g.Eventually(ln.State).Should(Equal(launcher.Active))
	g.Expect(ln.SessionID()).To(Equal("s0"))

	g.Expect(h.b.Complete(ln.ID())).To(BeTrue())

	var got result
	g.Eventually(res).Should(Receive(&got))
	g.Expect(got.code).To(Equal(ExitOK))
}

func TestRunner_Run_Slots(t *testing.T) {
	g := NewWithT(t)
	c := mocks.NewClient(t)
	cfg := defaultConfig
	cfg.launchers = []string{"chrome", "firefox", "chrome"}
	h := newHarness(t, cfg, limit.NewSlotLimiter(1, 5, zaptest.NewLogger(t)), c)

	h.cat.EXPECT().Lookup("chrome").Return(chromeDef, true).Once()
	h.cat.EXPECT().Lookup("firefox").Return(launchers.Definition{
		"base":        launchers.BaseName,
		"browserName": "firefox",
	}, true).Once()
	c.EXPECT().Init(mock.Anything, mock.Anything).Return("s1", nil).Twice()
	c.EXPECT().Get(mock.Anything, mock.Anything).Return(nil).Twice()
	c.EXPECT().Quit(mock.Anything).Return(nil).Twice()

	res := h.run(context.Background())
	lns := h.launchers(g, 2)

	g.Eventually(lns).Should(WithTransform(inState(launcher.Active), Equal(1)))
	g.Consistently(lns, 50*time.Millisecond).Should(WithTransform(inState(launcher.Idle), Equal(1)))

	for _, ln := range lns {
		if ln.State() == launcher.Active {
			g.Expect(h.b.Complete(ln.ID())).To(BeTrue())
		}
	}
	g.Eventually(lns).Should(WithTransform(inState(launcher.Finished), Equal(1)))
	g.Eventually(lns).Should(WithTransform(inState(launcher.Active), Equal(1)))

	for _, ln := range lns {
		if ln.State() == launcher.Active {
			g.Expect(h.b.Complete(ln.ID())).To(BeTrue())
		}
	}

	var got result
	g.Eventually(res).Should(Receive(&got))
	g.Expect(got.code).To(Equal(ExitOK))
}

func TestRunner_Run_QueueFull(t *testing.T) {
	g := NewWithT(t)
	c := mocks.NewClient(t)
	cfg := defaultConfig
	cfg.launchers = []string{"chrome", "firefox"}
	h := newHarness(t, cfg, limit.NewSlotLimiter(1, 0, zaptest.NewLogger(t)), c)

	h.cat.EXPECT().Lookup("chrome").Return(chromeDef, true).Once()
	h.cat.EXPECT().Lookup("firefox").Return(launchers.Definition{
		"base":        launchers.BaseName,
		"browserName": "firefox",
	}, true).Once()
	c.EXPECT().Init(mock.Anything, mock.Anything).Return("s1", nil).Once()
	c.EXPECT().Get(mock.Anything, mock.Anything).Return(nil).Once()
	c.EXPECT().Quit(mock.Anything).Return(nil).Once()

	res := h.run(context.Background())
	lns := h.launchers(g, 2)

	g.Eventually(lns).Should(WithTransform(inState(launcher.Active), Equal(1)))
	g.Eventually(lns).Should(WithTransform(inState(launcher.Finished), Equal(1)))

	for _, ln := range lns {
		switch ln.State() {
		case launcher.Active:
			g.Expect(h.b.Complete(ln.ID())).To(BeTrue())
		case launcher.Finished:
			g.Expect(models.IsKind(ln.Err(), models.SlotUnavailableErr)).To(BeTrue())
		}
	}

	var got result
	g.Eventually(res).Should(Receive(&got))
	g.Expect(got.code).To(Equal(ExitFailure))
}

func TestRunner_Run_ConfigurationError(t *testing.T) {
	tests := []struct {
		name  string
		cfg   testConfig
		setup func(cat *mocks.LaunchersCatalog)
		msg   string
	}{
		{
			name: "no launchers",
			setup: func(cat *mocks.LaunchersCatalog) {
				cat.EXPECT().Names().Return(nil).Once()
			},
			msg: "no launchers configured",
		},
		{
			name: "unknown launcher",
			cfg:  testConfig{launchers: []string{"opera"}},
			setup: func(cat *mocks.LaunchersCatalog) {
				cat.EXPECT().Lookup("opera").Return(nil, false).Once()
			},
			msg: `failed to create launcher opera: configuration error: unknown launcher "opera"`,
		},
		{
			name: "invalid hub",
			cfg:  testConfig{launchers: []string{"chrome"}},
			setup: func(cat *mocks.LaunchersCatalog) {
				cat.EXPECT().Lookup("chrome").Return(launchers.Definition{
					"base":        launchers.BaseName,
					"browserName": "chrome",
					"config":      map[string]interface{}{"port": "none"},
				}, true).Once()
			},
			msg: "invalid hub configuration",
		},
		{
			name: "no browser name",
			cfg:  testConfig{launchers: []string{"chrome"}},
			setup: func(cat *mocks.LaunchersCatalog) {
				cat.EXPECT().Lookup("chrome").Return(launchers.Definition{
					"base": launchers.BaseName,
				}, true).Once()
			},
			msg: "browserName is required",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			h := newHarness(t, tc.cfg, nil, nil)
			tc.setup(h.cat)

			code, err := h.r.Run(context.Background())
			g.Expect(code).To(Equal(ExitFailure))
			g.Expect(models.IsKind(err, models.ConfigurationErr)).To(BeTrue())
			g.Expect(err).To(MatchError(ContainSubstring(tc.msg)))
			g.Expect(h.b.Launchers()).To(BeEmpty())
		})
	}
}
