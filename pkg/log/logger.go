// Package log builds the process wide zap logger from WDL_LOG_* environment variables.
package log

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/selebrow/wdlauncher/pkg/config"
)

const (
	encodingJSON    = "json"
	encodingConsole = "console"
	// test runners usually collect stdout, keep logs there
	defaultOutput = "stdout"
)

var (
	SetupLogger = NewConsoleLogger
	isTerminal  = func() bool {
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}

	once   sync.Once
	logger *zap.Logger
)

// Settings of the logger, normally taken from environment
type Settings struct {
	Level  zapcore.Level
	Format string
	Output string
	Color  bool
}

func GetLogger() *zap.Logger {
	once.Do(func() {
		logger = SetupLogger()
	})
	return logger
}

func NewConsoleLogger() *zap.Logger {
	z, err := Build(SettingsFromEnv())
	if err != nil {
		panic(err)
	}
	return z
}

func SettingsFromEnv() Settings {
	s := Settings{
		Level:  config.ZapLogLevel(os.Getenv(envName("LOG_LEVEL")), zap.InfoLevel),
		Format: strings.ToLower(os.Getenv(envName("LOG_FORMAT"))),
		Output: os.Getenv(envName("LOG_OUTPUT")),
	}
	if s.Format != encodingJSON {
		s.Format = encodingConsole
	}
	// colors only make sense when writing to a terminal
	s.Color = s.Format == encodingConsole && s.Output == "" && isTerminal()
	if s.Output == "" {
		s.Output = defaultOutput
	}
	return s
}

func Build(s Settings) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(s.Level)
	zc.DisableStacktrace = s.Level >= zap.InfoLevel
	zc.DisableCaller = s.Level >= zap.InfoLevel
	zc.OutputPaths = []string{s.Output}
	zc.Encoding = s.Format

	ec := &zc.EncoderConfig
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	switch s.Format {
	case encodingJSON:
		ec.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		ec.TimeKey = "@timestamp"
		ec.MessageKey = "message"
	default:
		ec.EncodeTime = zapcore.RFC3339TimeEncoder
	}

	var opts []zap.Option
	if s.Color {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		// Windows console needs escape sequences translated
		if runtime.GOOS == "windows" {
			opts = append(opts, zap.WrapCore(func(_ zapcore.Core) zapcore.Core {
				return zapcore.NewCore(
					zapcore.NewConsoleEncoder(*ec),
					zapcore.AddSync(colorable.NewColorableStdout()),
					s.Level,
				)
			}))
		}
	}

	return zc.Build(opts...)
}

func envName(name string) string {
	return fmt.Sprintf("%s_%s", config.ConfigPrefix, name)
}
