package bridge

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/wdlauncher/internal/launcher"
	"github.com/selebrow/wdlauncher/mocks"
	"github.com/selebrow/wdlauncher/pkg/event"
	evmodels "github.com/selebrow/wdlauncher/pkg/event/models"
	"github.com/selebrow/wdlauncher/pkg/models"
	"github.com/selebrow/wdlauncher/pkg/webdriver"
)

type testConfig struct{}

func (testConfig) HeartbeatInterval() time.Duration { return time.Hour }
func (testConfig) HeartbeatTitle() string           { return "Karma" }
func (testConfig) StartRetries() int                { return 1 }
func (testConfig) KillTimeout() time.Duration       { return time.Second }

var chrome = models.CapabilitySpec{BrowserName: "chrome", Platform: models.DefaultPlatform}

func newTestBridge(t *testing.T) (*Bridge, *event.EventBrokerImpl) {
	eb := event.NewEventBrokerImpl(10, 0, zaptest.NewLogger(t))
	return NewBridge(eb, zaptest.NewLogger(t)), eb
}

func newTestLauncher(t *testing.T, b *Bridge, id string, c webdriver.Client) *launcher.Launcher {
	ln, err := launcher.NewLauncher(id, chrome, func() webdriver.Client { return c }, b, testConfig{}, zaptest.NewLogger(t))
	NewWithT(t).Expect(err).ToNot(HaveOccurred())
	b.Register(ln)
	return ln
}

func TestBridge_Lifecycle(t *testing.T) {
	g := NewWithT(t)
	b, eb := newTestBridge(t)
	ch := eb.Subscribe(
		evmodels.BrowserCapturedEventType,
		evmodels.BrowserProcessFailureEventType,
		evmodels.BrowserDoneEventType,
		evmodels.BrowserCompleteEventType,
	)

	c := new(mocks.Client)
	c.EXPECT().Init(mock.Anything, chrome).Return("s1", nil).Once()
	c.EXPECT().Get(mock.Anything, "http://localhost:9876/?id=l1").Return(nil).Once()
	c.EXPECT().Quit(mock.Anything).Return(nil).Once()

	ln := newTestLauncher(t, b, "l1", c)
	ln.Start("http://localhost:9876/?id=l1")

	var ev evmodels.IEvent
	g.Eventually(ch).Should(Receive(&ev))
	g.Expect(ev.(*evmodels.Event[evmodels.BrowserCaptured]).Attributes).To(Equal(evmodels.BrowserCaptured{
		LauncherID:  "l1",
		BrowserName: "chrome",
		SessionID:   "s1",
	}))

	g.Expect(b.Known("l1")).To(BeTrue())
	g.Expect(b.Known("unknown")).To(BeFalse())
	g.Expect(b.Complete("unknown")).To(BeFalse())
	g.Expect(b.Complete("l1")).To(BeTrue())
	g.Eventually(ch).Should(Receive(&ev))
	g.Expect(ev.EventType()).To(Equal(evmodels.BrowserCompleteEventType))

	g.Expect(b.Disconnected("")).To(BeFalse())
	g.Expect(b.Disconnected("l2")).To(BeFalse())
	g.Expect(b.Disconnected("l1")).To(BeTrue())

	g.Eventually(ch).Should(Receive(&ev))
	pf := ev.(*evmodels.Event[evmodels.BrowserProcessFailure]).Attributes
	g.Expect(pf.LauncherID).To(Equal("l1"))
	g.Expect(pf.Spec).To(Equal(chrome))
	g.Expect(models.IsKind(pf.Error, models.DisconnectErr)).To(BeTrue())

	g.Eventually(ch).Should(Receive(&ev))
	done := ev.(*evmodels.Event[evmodels.BrowserDone]).Attributes
	g.Expect(done.LauncherID).To(Equal("l1"))
	g.Expect(done.Error).To(BeIdenticalTo(pf.Error))
	g.Expect(ln.State()).To(Equal(launcher.Finished))

	// subsequent disconnects have no effect
	g.Expect(b.Disconnected("l1")).To(BeTrue())
	g.Expect(ln.Kill().Wait(context.TODO())).To(Succeed())
	g.Consistently(ch, 50*time.Millisecond).ShouldNot(Receive())

	c.AssertExpectations(t)
}

func TestBridge_DoneOnce(t *testing.T) {
	g := NewWithT(t)
	b, eb := newTestBridge(t)
	ch := eb.Subscribe(evmodels.BrowserDoneEventType)

	ln := newTestLauncher(t, b, "l1", nil)
	b.Done(ln, nil)
	b.Done(ln, nil)

	g.Expect(ch).To(Receive())
	g.Expect(ch).ToNot(Receive())
}

func TestBridge_Launchers(t *testing.T) {
	g := NewWithT(t)
	b, _ := newTestBridge(t)

	l2 := newTestLauncher(t, b, "b", nil)
	l1 := newTestLauncher(t, b, "a", nil)
	g.Expect(b.Launchers()).To(Equal([]*launcher.Launcher{l1, l2}))

	b.Unregister("a")
	g.Expect(b.Launchers()).To(Equal([]*launcher.Launcher{l2}))
}
