package app

import (
	"context"
	"io"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/selebrow/wdlauncher/internal/bridge"
	hc "github.com/selebrow/wdlauncher/internal/common/client"
	"github.com/selebrow/wdlauncher/internal/driver"
	"github.com/selebrow/wdlauncher/internal/netutils"
	"github.com/selebrow/wdlauncher/internal/runner"
	"github.com/selebrow/wdlauncher/pkg/config"
	"github.com/selebrow/wdlauncher/pkg/event"
	"github.com/selebrow/wdlauncher/pkg/launchers"
	"github.com/selebrow/wdlauncher/pkg/log"
	"github.com/selebrow/wdlauncher/pkg/quota"
	"github.com/selebrow/wdlauncher/pkg/quota/limit"
	"github.com/selebrow/wdlauncher/pkg/resolve"
	"github.com/selebrow/wdlauncher/pkg/signal"
	"github.com/selebrow/wdlauncher/pkg/webdriver"
)

const (
	driverStartTimeout = time.Minute
	// extra time given to shutdown hooks on top of browser kill timeout
	shutdownGrace = 5 * time.Second
)

// browsers group hooks stop launched browsers first and the local driver after them
type browsersGroup struct{}

var (
	InitLog *zap.SugaredLogger

	freePort = netutils.FreePort
)

func InitLoggerFunc() *zap.Logger {
	logger := log.GetLogger()
	InitLog = logger.Sugar().Named("init")
	return logger
}

func InitConfigFunc() config.Config {
	flags, exit, err := config.ParseCmdLine(pflag.CommandLine, os.Args[1:])
	if err != nil {
		InitLog.Fatalw("failed to parse command line", zap.Error(err))
	}
	if exit {
		os.Exit(1)
	}

	cfg, err := config.NewConfig(viper.GetViper(), flags)
	if err != nil {
		InitLog.Fatalw("failed to initialize configuration", zap.Error(err))
	}

	return cfg
}

func InitHTTPClientFunc(_ config.Config) *http.Client {
	//nolint:errcheck // not going to fail
	transport := http.DefaultTransport.(*http.Transport).Clone()
	return &http.Client{
		Transport: transport,
	}
}

func InitSignalHandlerFunc(cfg config.Config) *signal.Handler {
	l := log.GetLogger().Named("signal")
	return signal.NewHandler(cfg.KillTimeout()+shutdownGrace, l)
}

func loadLaunchersConfig(cfg config.Config, httpClient hc.HTTPClient) []byte {
	httpPattern := regexp.MustCompile(`(?i)^https?://.+`)
	uri := cfg.LaunchersURI()

	var (
		data []byte
		err  error
	)
	if httpPattern.MatchString(uri) {
		data, err = downloadLaunchersConfig(httpClient, uri)
	} else {
		data, err = os.ReadFile(uri)
	}
	if err != nil {
		InitLog.Fatalw("failed to load launchers config", zap.String("uri", uri), zap.Error(err))
	}
	return data
}

func downloadLaunchersConfig(httpClient hc.HTTPClient, uri string) ([]byte, error) {
	InitLog.Infow("downloading launchers config from remote URL", zap.String("url", uri))
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, uri, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, errors.Errorf("request %s failed with code %d", uri, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func InitLaunchersCatalogFunc(_ config.Config, launchersConfig []byte) launchers.LaunchersCatalog {
	cat, err := launchers.NewYamlLaunchersCatalog(launchersConfig)
	if err != nil {
		InitLog.Fatalw("failed to initialize launchers catalog", zap.Error(err))
	}

	return cat
}

func InitEventBrokerFunc(cfg config.Config, sig *signal.Handler) event.EventBroker {
	const defaultEventBufferSize = 100
	l := log.GetLogger().Named("event")
	eb := event.NewEventBrokerImpl(defaultEventBufferSize, cfg.KillTimeout(), l)
	sig.RegisterShutdownHook(eb, eb.ShutDown)
	return eb
}

func InitSlotAuthorizerFunc(cfg config.Config) quota.SlotAuthorizer {
	l := log.GetLogger().Named("slots")
	return limit.NewSlotLimiter(cfg.Concurrency(), cfg.QueueSize(), l)
}

// driverConfig points launchers to the locally started driver
type driverConfig struct {
	config.Config
	hub map[string]any
}

func (c *driverConfig) HubConfig() map[string]any {
	return c.hub
}

func InitDriverFunc(cfg config.Config, client *http.Client, sig *signal.Handler) config.Config {
	bin := cfg.WebDriverBin()
	if bin == "" {
		return cfg
	}

	hub, err := localHubConfig(cfg.HubConfig())
	if err != nil {
		InitLog.Fatalw("failed to configure local driver", zap.Error(err))
	}
	hubCfg, err := resolve.ResolveHub(hub)
	if err != nil {
		InitLog.Fatalw("failed to configure local driver", zap.Error(err))
	}

	l := log.GetLogger().Named("driver")
	wd := webdriver.NewRemoteClient(hubCfg, client, l)
	d := driver.NewDriver(bin, []string{"--port=" + strconv.Itoa(hubCfg.Port)}, wd.Ready, l)

	ctx, cancel := context.WithTimeout(context.Background(), driverStartTimeout)
	defer cancel()
	if err := d.Start(ctx); err != nil {
		InitLog.Fatalw("failed to start local driver", zap.String("bin", bin), zap.Error(err))
	}
	sig.RegisterShutdownHook(browsersGroup{}, d.Stop)

	return &driverConfig{Config: cfg, hub: hub}
}

// localHubConfig fills hub settings not given explicitly with the ones of a driver running on this host
func localHubConfig(host map[string]any) (map[string]any, error) {
	res := map[string]any{
		"protocol": resolve.DefaultProtocol,
		"hostname": resolve.DefaultHostname,
		"path":     "/",
	}
	for k, v := range host {
		res[k] = v
	}
	if _, ok := res["port"]; !ok {
		port, err := freePort(resolve.DefaultHostname)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find free port for local driver")
		}
		res["port"] = port
	}
	return res, nil
}

func startRunner(
	cfg config.Config,
	listen string,
	cat launchers.LaunchersCatalog,
	br *bridge.Bridge,
	eb event.EventBroker,
	qa quota.SlotAuthorizer,
	client hc.HTTPClient,
	sig *signal.Handler,
) <-chan int {
	factory := webdriver.NewFactory(client, log.GetLogger().Named("webdriver"))
	r := runner.NewRunner(cfg, listen, cat, br, eb, qa, factory, log.GetLogger().Named("runner"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan int, 1)
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		code, err := r.Run(ctx)
		if err != nil {
			InitLog.Errorw("failed to run browsers", zap.Error(err))
		}
		done <- code
	}()

	sig.RegisterShutdownHook(browsersGroup{}, func(ctx context.Context) error {
		cancel()
		select {
		case <-finished:
			return nil
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "browsers were not stopped in time")
		}
	})
	return done
}
