package app

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/selebrow/wdlauncher/internal/bridge"
	"github.com/selebrow/wdlauncher/pkg/config"
	"github.com/selebrow/wdlauncher/pkg/event"
	"github.com/selebrow/wdlauncher/pkg/launchers"
	"github.com/selebrow/wdlauncher/pkg/quota"
	"github.com/selebrow/wdlauncher/pkg/signal"
)

var (
	InitLogger           func() *zap.Logger                                               = InitLoggerFunc
	InitConfig           func() config.Config                                             = InitConfigFunc
	InitHTTPClient       func(config.Config) *http.Client                                 = InitHTTPClientFunc
	InitLaunchersCatalog func(config.Config, []byte) launchers.LaunchersCatalog           = InitLaunchersCatalogFunc
	InitSignalHandler    func(config.Config) *signal.Handler                              = InitSignalHandlerFunc
	InitEventBroker      func(config.Config, *signal.Handler) event.EventBroker           = InitEventBrokerFunc
	InitSlotAuthorizer   func(config.Config) quota.SlotAuthorizer                         = InitSlotAuthorizerFunc
	InitDriver           func(config.Config, *http.Client, *signal.Handler) config.Config = InitDriverFunc
	InitMiddleware       func(config.Config, *echo.Echo, *zap.Logger)                     = InitMiddlewareFunc
	InitAPI              func(
		config.Config,
		*echo.Echo,
		CaptureController,
		SocketController,
		StatusController,
		LaunchersController,
		InfoController,
	) = InitAPIFunc
)

func Run(gitRef, gitSha, appName string) {
	l := InitLogger()
	mainLog := l.Sugar().Named("app")
	appVersion := fmt.Sprintf("%s-%s", gitRef, gitSha)
	mainLog.Infof("starting %s build %s (%s/%s)", appName, appVersion, runtime.GOOS, runtime.GOARCH)

	cfg := InitConfig()
	sig := InitSignalHandler(cfg)
	client := InitHTTPClient(cfg)

	launchersConfig := loadLaunchersConfig(cfg, http.DefaultClient) // using Default client with sane timeout defaults
	catalog := InitLaunchersCatalog(cfg, launchersConfig)

	eb := InitEventBroker(cfg, sig)
	br := bridge.NewBridge(eb, l.Named("bridge"))
	qa := InitSlotAuthorizer(cfg)

	cLog := l.Named("controller")
	captureController := initCaptureController(cfg)
	socketController := initSocketController(br, cLog)
	statusController := initStatusController(br, qa)
	launchersController := initLaunchersController(catalog)
	infoController := initInfoController(appName, gitRef, gitSha)

	srvLog := l.Named("server")
	e := initEcho(cfg, srvLog)
	// Routes
	initCapturePage(e)
	InitAPI(cfg, e, captureController, socketController, statusController, launchersController, infoController)

	// listener is created upfront so that actual port is known when listening on port 0
	lstn, err := net.Listen("tcp", cfg.Listen())
	if err != nil {
		InitLog.Fatalw("failed to listen", zap.String("listen", cfg.Listen()), zap.Error(err))
	}
	e.Listener = lstn
	addr := lstn.Addr().String()

	// Start server
	go func() {
		sl := srvLog.Sugar()
		sl.Infof("capture server listening on %s", addr)
		if err := e.Start(""); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sl.Fatalw("failed to start the server", zap.Error(err))
		}
	}()
	sig.RegisterShutdownHook(nil, e.Shutdown)

	cfg = InitDriver(cfg, client, sig)
	done := startRunner(cfg, addr, catalog, br, eb, qa, client, sig)

	code := sig.Start(done)
	select {
	case rc := <-done:
		// run was interrupted by a signal, keep its verdict
		code = max(code, rc)
	default:
	}
	mainLog.Infof("exiting with code %d", code)
	_ = l.Sync()
	os.Exit(code)
}
