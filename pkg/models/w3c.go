package models

import (
	"maps"
	"slices"
	"strings"
)

const (
	DefaultPlatform = "ANY"
	DefaultTestName = "Karma test"

	seNameCap   = "se:name"
	optionsCaps = "wdl:options"
)

// standard W3C capabilities which can be passed through as is
// see https://www.w3.org/TR/webdriver2/#capabilities
var w3cStandardCaps = []string{
	"acceptInsecureCerts",
	"pageLoadStrategy",
	"proxy",
	"setWindowRect",
	"strictFileInteractability",
	"timeouts",
	"unhandledPromptBehavior",
	"webSocketUrl",
}

// CapabilitySpec desired browser and test metadata sent to the hub
type CapabilitySpec struct {
	BrowserName string         `mapstructure:"browserName"`
	Platform    string         `mapstructure:"platform"`
	Name        string         `mapstructure:"name"`
	Tags        []string       `mapstructure:"tags"`
	Version     string         `mapstructure:"version"`
	Extra       map[string]any `mapstructure:"-"`
}

// W3CCapabilities WebDriver capabilities model
// see details at https://www.w3.org/TR/webdriver2/#capabilities
type W3CCapabilities struct {
	AlwaysMatch map[string]interface{}   `json:"alwaysMatch,omitempty"`
	FirstMatch  []map[string]interface{} `json:"firstMatch,omitempty"`
}

// NewSessionRequest carries both JsonWire and W3C flavors, so it's accepted by old and new hubs
type NewSessionRequest struct {
	DesiredCapabilities map[string]interface{} `json:"desiredCapabilities"`
	Capabilities        *W3CCapabilities       `json:"capabilities"`
}

func NewNewSessionRequest(spec CapabilitySpec) *NewSessionRequest {
	return &NewSessionRequest{
		DesiredCapabilities: spec.JsonWire(),
		Capabilities: &W3CCapabilities{
			AlwaysMatch: spec.W3C(),
		},
	}
}

// JsonWire capabilities model
// full description at https://www.selenium.dev/documentation/legacy/json_wire_protocol/
func (s CapabilitySpec) JsonWire() map[string]interface{} {
	caps := maps.Clone(s.Extra)
	if caps == nil {
		caps = make(map[string]interface{})
	}
	caps["browserName"] = s.BrowserName
	caps["platform"] = s.Platform
	caps["version"] = s.Version
	caps["name"] = s.Name
	caps["tags"] = s.tags()
	return caps
}

func (s CapabilitySpec) W3C() map[string]interface{} {
	caps := make(map[string]interface{})
	for k, v := range s.Extra {
		if strings.Contains(k, ":") || slices.Contains(w3cStandardCaps, k) {
			caps[k] = v
		}
	}
	caps["browserName"] = s.BrowserName
	// W3C has no wildcard platform, omitting it matches any
	if s.Platform != "" && !strings.EqualFold(s.Platform, DefaultPlatform) {
		caps["platformName"] = strings.ToLower(s.Platform)
	}
	if s.Version != "" {
		caps["browserVersion"] = s.Version
	}
	if s.Name != "" {
		caps[seNameCap] = s.Name
	}
	caps[optionsCaps] = map[string]interface{}{
		"name": s.Name,
		"tags": s.tags(),
	}
	return caps
}

func (s CapabilitySpec) tags() []string {
	if s.Tags == nil {
		return []string{}
	}
	return s.Tags
}
