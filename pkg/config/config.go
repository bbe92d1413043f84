package config

import (
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	ConfigPrefix = "WDL"

	DefaultHeartbeatTitle    = "Karma"
	DefaultHeartbeatInterval = 10 * time.Second
)

const (
	DefaultListen = "127.0.0.1:9876"

	WebDriverBinEnv = "WEBDRIVER_BIN"

	listen                 = "listen"
	configFile             = "config"
	launchersURI           = "launchers-uri"
	launchers              = "launchers"
	hubProtocol            = "hub-protocol"
	hubHostname            = "hub-hostname"
	hubPort                = "hub-port"
	hubPath                = "hub-path"
	targetProtocol         = "target-protocol"
	targetHostname         = "target-hostname"
	targetPort             = "target-port"
	pseudoActivityInterval = "pseudo-activity-interval"
	heartbeatTitle         = "heartbeat-title"
	startRetries           = "start-retries"
	captureTimeout         = "capture-timeout"
	retryLimit             = "retry-limit"
	killTimeout            = "kill-timeout"
	concurrency            = "concurrency"
	queueSize              = "queue-size"
	singleRun              = "single-run"

	// driver config sections, usually provided via config file only
	webdriverHub    = "webdriver.hub"
	webdriverTarget = "webdriver.target"

	defaultConfigPath   = "config/"
	defaultLaunchersURI = defaultConfigPath + "launchers.yaml"
)

var envReplacer = strings.NewReplacer("-", "_", ".", "_")

type (
	HeartbeatConfig interface {
		HeartbeatInterval() time.Duration
		HeartbeatTitle() string
	}

	LauncherConfig interface {
		HeartbeatConfig
		StartRetries() int
		KillTimeout() time.Duration
	}

	RunnerConfig interface {
		CaptureTimeout() time.Duration
		RetryLimit() int
		Concurrency() int
		QueueSize() int
		SingleRun() bool
		Launchers() []string
	}

	DriverConfig interface {
		// HubConfig returns host supplied hub settings, only keys explicitly set are present
		HubConfig() map[string]any
		// TargetConfig returns host supplied capture page location, only keys explicitly set are present
		TargetConfig() map[string]any
		WebDriverBin() string
	}

	Config interface {
		LauncherConfig
		RunnerConfig
		DriverConfig
		Listen() string
		LaunchersURI() string
	}

	ConfigViper struct {
		v            *viper.Viper
		webdriverBin string
	}
)

func NewConfig(v *viper.Viper, f *pflag.FlagSet) (*ConfigViper, error) {
	if err := v.BindPFlags(f); err != nil {
		return nil, err
	}
	bindEnvVars(v)

	if cf := v.GetString(configFile); cf != "" {
		v.SetConfigFile(cf)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", cf)
		}
	}

	if _, _, err := net.SplitHostPort(v.GetString(listen)); err != nil {
		return nil, errors.Wrapf(err, "invalid listen address specified (%s)", v.GetString(listen))
	}

	if v.GetInt(startRetries) < 0 {
		return nil, errors.Errorf("invalid %s value %d, must not be negative", startRetries, v.GetInt(startRetries))
	}

	return &ConfigViper{
		v:            v,
		webdriverBin: os.Getenv(WebDriverBinEnv),
	}, nil
}

func (c *ConfigViper) Listen() string {
	return c.v.GetString(listen)
}

func (c *ConfigViper) LaunchersURI() string {
	return c.v.GetString(launchersURI)
}

func (c *ConfigViper) Launchers() []string {
	return c.v.GetStringSlice(launchers)
}

func (c *ConfigViper) HeartbeatInterval() time.Duration {
	if d := c.v.GetDuration(pseudoActivityInterval); d > 0 {
		return d
	}
	return DefaultHeartbeatInterval
}

func (c *ConfigViper) HeartbeatTitle() string {
	if t := c.v.GetString(heartbeatTitle); t != "" {
		return t
	}
	return DefaultHeartbeatTitle
}

func (c *ConfigViper) StartRetries() int {
	return c.v.GetInt(startRetries)
}

func (c *ConfigViper) KillTimeout() time.Duration {
	return c.v.GetDuration(killTimeout)
}

func (c *ConfigViper) CaptureTimeout() time.Duration {
	return c.v.GetDuration(captureTimeout)
}

func (c *ConfigViper) RetryLimit() int {
	return c.v.GetInt(retryLimit)
}

func (c *ConfigViper) Concurrency() int {
	return c.v.GetInt(concurrency)
}

func (c *ConfigViper) QueueSize() int {
	return c.v.GetInt(queueSize)
}

func (c *ConfigViper) SingleRun() bool {
	return c.v.GetBool(singleRun)
}

func (c *ConfigViper) WebDriverBin() string {
	return c.webdriverBin
}

func (c *ConfigViper) HubConfig() map[string]any {
	res := c.section(webdriverHub)
	c.setString(res, "protocol", hubProtocol)
	c.setString(res, "hostname", hubHostname)
	c.setInt(res, "port", hubPort)
	c.setString(res, "path", hubPath)
	return res
}

func (c *ConfigViper) TargetConfig() map[string]any {
	res := c.section(webdriverTarget)
	c.setString(res, "protocol", targetProtocol)
	c.setString(res, "hostname", targetHostname)
	c.setInt(res, "port", targetPort)
	return res
}

func (c *ConfigViper) section(key string) map[string]any {
	res := make(map[string]any)
	for k, v := range c.v.GetStringMap(key) {
		res[k] = v
	}
	return res
}

// values are copied only when set explicitly (flag, env or config file), unset keys keep launcher defaults
func (c *ConfigViper) setString(res map[string]any, name, key string) {
	if c.v.IsSet(key) {
		if val := c.v.GetString(key); val != "" {
			res[name] = val
		}
	}
}

func (c *ConfigViper) setInt(res map[string]any, name, key string) {
	if c.v.IsSet(key) {
		if val := c.v.GetInt(key); val != 0 {
			res[name] = val
		}
	}
}

func bindEnvVars(v *viper.Viper) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(envReplacer)
	v.SetEnvPrefix(ConfigPrefix)
}

// ListenPort returns port part of listen spec or 0 if it can't be parsed
func ListenPort(listenSpec string) int {
	_, p, err := net.SplitHostPort(listenSpec)
	if err != nil {
		return 0
	}
	port, err := strconv.Atoi(p)
	if err != nil {
		return 0
	}
	return port
}

var logLevelMap = map[string]zapcore.Level{
	"debug": zap.DebugLevel,
	"info":  zap.InfoLevel,
	"warn":  zap.WarnLevel,
	"error": zap.ErrorLevel,
}

func ZapLogLevel(strLevel string, defaultLevel zapcore.Level) zapcore.Level {
	if lvl, ok := logLevelMap[strings.ToLower(strLevel)]; ok {
		return lvl
	}
	return defaultLevel
}
