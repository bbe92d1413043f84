package models

import (
	"encoding/json"
	"testing"

	. "github.com/onsi/gomega"
)

func TestNewNewSessionRequest(t *testing.T) {
	g := NewWithT(t)

	spec := CapabilitySpec{
		BrowserName: "chrome",
		Platform:    "LINUX",
		Name:        "my test",
		Tags:        []string{"a", "b"},
		Version:     "120",
		Extra: map[string]any{
			"acceptInsecureCerts": true,
			"goog:chromeOptions":  map[string]any{"args": []string{"--headless"}},
			"customFlag":          1,
		},
	}

	req := NewNewSessionRequest(spec)

	g.Expect(req.DesiredCapabilities).To(Equal(map[string]interface{}{
		"browserName":         "chrome",
		"platform":            "LINUX",
		"version":             "120",
		"name":                "my test",
		"tags":                []string{"a", "b"},
		"acceptInsecureCerts": true,
		"goog:chromeOptions":  map[string]any{"args": []string{"--headless"}},
		"customFlag":          1,
	}))
	g.Expect(req.Capabilities.AlwaysMatch).To(Equal(map[string]interface{}{
		"browserName":         "chrome",
		"platformName":        "linux",
		"browserVersion":      "120",
		"se:name":             "my test",
		"acceptInsecureCerts": true,
		"goog:chromeOptions":  map[string]any{"args": []string{"--headless"}},
		"wdl:options": map[string]interface{}{
			"name": "my test",
			"tags": []string{"a", "b"},
		},
	}))

	// extra map must not be modified
	g.Expect(spec.Extra).To(HaveLen(3))
}

func TestNewNewSessionRequest_Defaults(t *testing.T) {
	g := NewWithT(t)

	req := NewNewSessionRequest(CapabilitySpec{BrowserName: "firefox", Platform: DefaultPlatform})

	b, err := json.Marshal(req)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(b).To(MatchJSON(`{
		"desiredCapabilities": {
			"browserName": "firefox",
			"platform": "ANY",
			"version": "",
			"name": "",
			"tags": []
		},
		"capabilities": {
			"alwaysMatch": {
				"browserName": "firefox",
				"wdl:options": {"name": "", "tags": []}
			}
		}
	}`))
}
