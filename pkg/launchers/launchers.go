package launchers

import (
	"slices"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/selebrow/wdlauncher/pkg/resolve"
)

const (
	BaseKey                   = "base"
	ConfigKey                 = "config"
	BrowserKey                = "browser"
	PseudoActivityIntervalKey = "pseudoActivityInterval"
	SessionIDKey              = "sessionId"

	// BaseName is the only launcher implementation supported
	BaseName = "SeleniumWebDriver"
)

// ReservedKeys launcher arguments which control the launcher itself and never reach the hub
var ReservedKeys = []string{BaseKey, ConfigKey, PseudoActivityIntervalKey, SessionIDKey}

type LaunchersCatalog interface {
	Lookup(name string) (Definition, bool)
	Names() []string
}

// Definition raw arguments of the named launcher
type Definition map[string]interface{}

// HubConfig returns per launcher hub overrides
func (d Definition) HubConfig() map[string]interface{} {
	cfg, _ := d[ConfigKey].(map[string]interface{})
	return cfg
}

// TargetConfig returns per launcher overrides of the capture page location
func (d Definition) TargetConfig() map[string]interface{} {
	browser, _ := d.HubConfig()[BrowserKey].(map[string]interface{})
	return browser
}

// HeartbeatInterval returns launcher specific heartbeat interval, zero when not set.
// Numbers are treated as milliseconds.
func (d Definition) HeartbeatInterval() (time.Duration, error) {
	var res struct {
		Interval time.Duration `mapstructure:"pseudoActivityInterval"`
	}
	if err := resolve.Decode(d, &res); err != nil {
		return 0, errors.Wrap(err, "invalid pseudoActivityInterval")
	}
	return res.Interval, nil
}

func (d Definition) SessionID() string {
	id, _ := d[SessionIDKey].(string)
	return id
}

type YamlLaunchersCatalog struct {
	cat map[string]Definition
}

func NewYamlLaunchersCatalog(data []byte) (*YamlLaunchersCatalog, error) {
	cat := make(map[string]Definition)
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, err
	}

	for name, def := range cat {
		if def == nil {
			return nil, errors.Errorf("launcher %s has no arguments", name)
		}
		if base, ok := def[BaseKey]; ok && base != BaseName {
			return nil, errors.Errorf("launcher %s: unsupported base %v", name, base)
		}
		if _, ok := def[ConfigKey]; ok && def.HubConfig() == nil {
			return nil, errors.Errorf("launcher %s: %s must be a map", name, ConfigKey)
		}
	}
	return &YamlLaunchersCatalog{cat: cat}, nil
}

func (c *YamlLaunchersCatalog) Lookup(name string) (Definition, bool) {
	def, ok := c.cat[name]
	return def, ok
}

func (c *YamlLaunchersCatalog) Names() []string {
	res := make([]string, 0, len(c.cat))
	for name := range c.cat {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}
