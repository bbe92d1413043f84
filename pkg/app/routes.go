package app

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/selebrow/wdlauncher/html"
	"github.com/selebrow/wdlauncher/internal/bridge"
	"github.com/selebrow/wdlauncher/internal/common/ws"
	"github.com/selebrow/wdlauncher/internal/controllers"
	"github.com/selebrow/wdlauncher/pkg/config"
	"github.com/selebrow/wdlauncher/pkg/launchers"
	"github.com/selebrow/wdlauncher/pkg/quota"
)

type (
	CaptureController interface {
		Capture(c echo.Context) error
	}

	SocketController interface {
		Socket(c echo.Context) error
	}

	StatusController interface {
		Status(c echo.Context) error
	}

	LaunchersController interface {
		Launchers(c echo.Context) error
	}

	InfoController interface {
		Info(c echo.Context) error
	}
)

func initEcho(cfg config.Config, l *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = controllers.NewErrorHandler(l.Named("errors"))

	// Middleware
	InitMiddleware(cfg, e, l)
	return e
}

func InitMiddlewareFunc(_ config.Config, e *echo.Echo, srvLogger *zap.Logger) {
	isStatic := func(c echo.Context) bool {
		return strings.HasPrefix(c.Request().URL.Path, controllers.StaticRoot)
	}

	if srvLogger.Core().Enabled(zap.DebugLevel) {
		accLogger := srvLogger.Named("access").Sugar()
		e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			Skipper: isStatic,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				l := accLogger.With(zap.Time("start_time", v.StartTime),
					zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.String("remote_ip", v.RemoteIP),
					zap.Duration("latency", v.Latency),
					zap.Int("status", v.Status))
				if v.Error != nil {
					l = l.With(zap.Error(v.Error))
				}
				l.Debug()
				return nil
			},
			LogLatency:   true,
			LogRemoteIP:  true,
			LogMethod:    true,
			LogURI:       true,
			LogUserAgent: true,
			LogStatus:    true,
			LogError:     true,
			HandleError:  true,
		}))
	}

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisablePrintStack: true, // this will be handled by zap logger
		LogErrorFunc: func(c echo.Context, err error, _ []byte) error {
			srvLogger.With(zap.Error(err), zap.String("uri", c.Request().RequestURI)).Error("panic recovered")
			return err
		},
	}))
}

func InitAPIFunc(
	_ config.Config,
	e *echo.Echo,
	captureController CaptureController,
	socketController SocketController,
	statusController StatusController,
	launchersController LaunchersController,
	infoController InfoController,
) {
	e.GET(controllers.CapturePath, captureController.Capture)
	e.GET(controllers.SocketPath, socketController.Socket)
	e.GET("/status", statusController.Status)
	e.GET("/launchers", launchersController.Launchers)
	e.GET("/info", infoController.Info)
}

func initCapturePage(e *echo.Echo) {
	assets := html.Assets(html.DevMode)
	r, err := html.NewPageRenderer(assets, html.DevMode)
	if err != nil {
		InitLog.Fatalw("failed to initialize page renderer", zap.Error(err))
	}
	static, err := html.Static(assets)
	if err != nil {
		InitLog.Fatalw("failed to initialize static files", zap.Error(err))
	}
	e.Renderer = r
	e.StaticFS(controllers.StaticRoot, static)
}

func initCaptureController(cfg config.Config) *controllers.CaptureController {
	return controllers.NewCaptureController(cfg.HeartbeatTitle())
}

func initSocketController(br *bridge.Bridge, cLog *zap.Logger) *controllers.SocketController {
	listener := ws.NewCaptureListener(br, cLog.Named("socket"))
	return controllers.NewSocketController(listener, br)
}

func initStatusController(br *bridge.Bridge, qa quota.SlotAuthorizer) *controllers.StatusController {
	return controllers.NewStatusController(br, qa)
}

func initLaunchersController(cat launchers.LaunchersCatalog) *controllers.LaunchersController {
	return controllers.NewLaunchersController(cat)
}

func initInfoController(appName, gitRef, gitSha string) *controllers.InfoController {
	return controllers.NewInfoController(appName, gitRef, gitSha)
}
