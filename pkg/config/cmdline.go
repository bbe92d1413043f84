package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
)

func ParseCmdLine(f *pflag.FlagSet, args []string) (*pflag.FlagSet, bool, error) {
	help := f.BoolP("help", "h", false, "Show usage help")
	f.String(listen, DefaultListen, "Listening address and port of the capture server")
	f.String(configFile, "", "Optional config file with driver settings (webdriver.hub and webdriver.target sections)")
	f.String(launchersURI, defaultLaunchersURI, "Path to launchers YAML file")
	f.StringSlice(launchers, nil, "Launchers to start, all launchers from --"+launchersURI+" are started when empty")

	f.String(hubProtocol, "", "WebDriver hub protocol (default http)")
	f.String(hubHostname, "", "WebDriver hub hostname (default localhost)")
	f.Int(hubPort, 0, "WebDriver hub port (default 4444)")
	f.String(hubPath, "", "WebDriver hub base path (default /wd/hub)")

	f.String(targetProtocol, "", "Protocol of the capture page URL as seen by the browser (default http)")
	f.String(targetHostname, "", "Hostname of the capture page URL as seen by the browser (default is taken from --"+listen+")")
	f.Int(targetPort, 0, "Port of the capture page URL as seen by the browser (default is taken from --"+listen+")")

	f.Duration(pseudoActivityInterval, DefaultHeartbeatInterval, "Heartbeat interval for active browser sessions")
	f.String(heartbeatTitle, DefaultHeartbeatTitle, "Expected capture page title checked by heartbeat")
	f.Int(startRetries, 3, "Number of session start retries when attaching to existing session fails")
	f.Duration(captureTimeout, time.Minute, "Timeout for browser to reach the capture page")
	f.Int(retryLimit, 2, "Number of browser restarts on capture timeout")
	f.Duration(killTimeout, 30*time.Second, "Timeout for remote session termination")
	f.Int(concurrency, 0, "Limit for simultaneously running browsers, 0 (default) - no limit")
	f.Int(queueSize, 25, "Queue size for browsers waiting for a concurrency slot")
	f.Bool(singleRun, true, "Exit when all browsers are finished")

	if err := f.Parse(args); err != nil {
		return nil, true, err
	}
	if *help {
		_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		f.PrintDefaults()
		return nil, true, nil
	}

	return f, false, nil
}
