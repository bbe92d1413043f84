package resolve

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"

	"github.com/selebrow/wdlauncher/pkg/models"
)

func TestConfigure(t *testing.T) {
	g := NewWithT(t)

	defaults := map[string]any{"a": 1, "b": 2}
	got := Configure(defaults, map[string]any{"b": 3, "c": 4})
	g.Expect(got).To(Equal(map[string]any{"a": 1, "b": 3}))

	// defaults stay intact
	g.Expect(defaults).To(Equal(map[string]any{"a": 1, "b": 2}))
}

func TestConfigure_Layers(t *testing.T) {
	g := NewWithT(t)

	got := Configure(
		map[string]any{"a": 1, "b": 2, "c": 3},
		nil,
		map[string]any{"b": 20, "c": 30},
		map[string]any{},
		map[string]any{"c": 300, "d": 400},
	)
	g.Expect(got).To(Equal(map[string]any{"a": 1, "b": 20, "c": 300}))
}

func TestConfigure_Nested(t *testing.T) {
	g := NewWithT(t)

	defaults := map[string]any{
		"browser": map[string]any{"hostname": "a", "port": 1},
		"tags":    []string{"x"},
	}
	got := Configure(defaults, map[string]any{
		"browser": map[string]any{"port": 2, "extra": true},
		"tags":    []string{"y", "z"},
	})

	g.Expect(got).To(Equal(map[string]any{
		"browser": map[string]any{"hostname": "a", "port": 2, "extra": true},
		"tags":    []string{"y", "z"},
	}))
	g.Expect(defaults["browser"]).To(Equal(map[string]any{"hostname": "a", "port": 1}))
}

func TestConfigure_NoDefaults(t *testing.T) {
	g := NewWithT(t)
	g.Expect(Configure(nil, map[string]any{"a": 1})).To(BeEmpty())
}

func TestResolveHub(t *testing.T) {
	g := NewWithT(t)

	got, err := ResolveHub(nil, nil)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got).To(Equal(models.SessionConfig{
		Protocol: "http",
		Hostname: "localhost",
		Port:     4444,
		Path:     "/wd/hub",
	}))

	got, err = ResolveHub(
		map[string]any{"hostname": "grid", "port": "4445"},
		map[string]any{"protocol": "https", "browser": map[string]any{"port": 1}},
	)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got).To(Equal(models.SessionConfig{
		Protocol: "https",
		Hostname: "grid",
		Port:     4445,
		Path:     "/wd/hub",
	}))

	_, err = ResolveHub(map[string]any{"port": "not a number"})
	g.Expect(err).To(HaveOccurred())
	g.Expect(models.IsKind(err, models.ConfigurationErr)).To(BeTrue())
}

func TestResolveTarget(t *testing.T) {
	g := NewWithT(t)

	got, err := ResolveTarget("0.0.0.0:9876")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got).To(Equal(models.BrowserTarget{Protocol: "http", Hostname: "localhost", Port: 9876}))

	got, err = ResolveTarget("10.1.1.1:9876", map[string]any{"port": 80}, map[string]any{"hostname": "capture"})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got).To(Equal(models.BrowserTarget{Protocol: "http", Hostname: "capture", Port: 80}))

	got, err = ResolveTarget(":8080")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got.Hostname).To(Equal("localhost"))
	g.Expect(got.Port).To(Equal(8080))
}

func TestResolveSpec(t *testing.T) {
	g := NewWithT(t)

	got, err := ResolveSpec(map[string]any{"browserName": "chrome"})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got).To(Equal(models.CapabilitySpec{
		BrowserName: "chrome",
		Platform:    "ANY",
		Name:        "Karma test",
		Tags:        []string{},
		Version:     "",
	}))

	got, err = ResolveSpec(map[string]any{
		"browserName":            "firefox",
		"platform":               "LINUX",
		"tags":                   []any{"smoke", "ci"},
		"version":                119,
		"base":                   "SeleniumWebDriver",
		"pseudoActivityInterval": 5000,
		"moz:firefoxOptions":     map[string]any{"args": []any{"-headless"}},
	}, "base", "pseudoActivityInterval")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got).To(Equal(models.CapabilitySpec{
		BrowserName: "firefox",
		Platform:    "LINUX",
		Name:        "Karma test",
		Tags:        []string{"smoke", "ci"},
		Version:     "119",
		Extra: map[string]any{
			"moz:firefoxOptions": map[string]any{"args": []any{"-headless"}},
		},
	}))
}

func TestResolveSpec_MissingBrowserName(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
	}{
		{name: "nil args", args: nil},
		{name: "empty browserName", args: map[string]any{"browserName": ""}},
		{name: "other fields only", args: map[string]any{"platform": "LINUX"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			_, err := ResolveSpec(tt.args)
			g.Expect(err).To(HaveOccurred())
			g.Expect(models.IsKind(err, models.ConfigurationErr)).To(BeTrue())
			g.Expect(err.Error()).To(ContainSubstring("browserName is required"))
		})
	}
}

func TestDecode_Durations(t *testing.T) {
	g := NewWithT(t)

	var out struct {
		Interval time.Duration `mapstructure:"interval"`
		Timeout  time.Duration `mapstructure:"timeout"`
	}
	err := Decode(map[string]any{"interval": 5000, "timeout": "1m"}, &out)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(out.Interval).To(Equal(5 * time.Second))
	g.Expect(out.Timeout).To(Equal(time.Minute))
}
