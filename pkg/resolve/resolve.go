// Package resolve merges layered launcher configuration into effective hub, target and capability settings.
//
// Layers are applied from the lowest priority (launcher defaults) to the highest (per-launcher arguments).
// Only keys present in the defaults survive into the result, later layers can override values but never
// introduce new keys.
package resolve

import (
	"net"
	"reflect"
	"slices"
	"strconv"
	"time"

	"dario.cat/mergo"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"

	"github.com/selebrow/wdlauncher/pkg/models"
)

const (
	DefaultProtocol = "http"
	DefaultHostname = "localhost"
	DefaultHubPort  = 4444
	DefaultHubPath  = "/wd/hub"
)

// Configure merges layers over defaults, keeping only the keys of defaults. Nil layers are ignored.
func Configure(defaults map[string]any, layers ...map[string]any) map[string]any {
	merged := deepCopy(defaults)
	for _, l := range layers {
		if len(l) == 0 {
			continue
		}
		// merging into a copy of plain maps can't fail
		_ = mergo.Merge(&merged, deepCopy(l), mergo.WithOverride)
	}

	res := make(map[string]any, len(defaults))
	for k := range defaults {
		res[k] = merged[k]
	}
	return res
}

func HubDefaults() map[string]any {
	return map[string]any{
		"protocol": DefaultProtocol,
		"hostname": DefaultHostname,
		"port":     DefaultHubPort,
		"path":     DefaultHubPath,
	}
}

// TargetDefaults derives capture page location from capture server listen address
func TargetDefaults(listen string) map[string]any {
	host, port, _ := net.SplitHostPort(listen)
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = DefaultHostname
	}
	p, _ := strconv.Atoi(port)
	return map[string]any{
		"protocol": DefaultProtocol,
		"hostname": host,
		"port":     p,
	}
}

func SpecDefaults() map[string]any {
	return map[string]any{
		"browserName": "",
		"platform":    models.DefaultPlatform,
		"name":        models.DefaultTestName,
		"tags":        []string{},
		"version":     "",
	}
}

func ResolveHub(layers ...map[string]any) (models.SessionConfig, error) {
	var res models.SessionConfig
	if err := Decode(Configure(HubDefaults(), layers...), &res); err != nil {
		return res, models.NewConfigurationError(errors.Wrap(err, "invalid hub configuration"))
	}
	return res, nil
}

func ResolveTarget(listen string, layers ...map[string]any) (models.BrowserTarget, error) {
	var res models.BrowserTarget
	if err := Decode(Configure(TargetDefaults(listen), layers...), &res); err != nil {
		return res, models.NewConfigurationError(errors.Wrap(err, "invalid browser target configuration"))
	}
	return res, nil
}

// ResolveSpec builds capability spec from launcher arguments. Arguments which are not capability
// fields and not listed in reserved are passed through to the hub as is.
func ResolveSpec(args map[string]any, reserved ...string) (models.CapabilitySpec, error) {
	var res models.CapabilitySpec
	defaults := SpecDefaults()
	if err := Decode(Configure(defaults, args), &res); err != nil {
		return res, models.NewConfigurationError(errors.Wrap(err, "invalid capabilities"))
	}
	if res.BrowserName == "" {
		return res, models.NewConfigurationError(errors.New("browserName is required"))
	}

	for k, v := range args {
		if _, ok := defaults[k]; ok || slices.Contains(reserved, k) {
			continue
		}
		if res.Extra == nil {
			res.Extra = make(map[string]any)
		}
		res.Extra[k] = v
	}
	return res, nil
}

// Decode decodes resolved map into typed structure. Numbers are accepted for durations as milliseconds.
func Decode(input map[string]any, out any) error {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			millisDurationHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return d.Decode(input)
}

func millisDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		switch v := data.(type) {
		case int:
			return time.Duration(v) * time.Millisecond, nil
		case int64:
			return time.Duration(v) * time.Millisecond, nil
		case float64:
			return time.Duration(v * float64(time.Millisecond)), nil
		default:
			return data, nil
		}
	}
}

func deepCopy(src map[string]any) map[string]any {
	if src == nil {
		return make(map[string]any)
	}
	res := make(map[string]any, len(src))
	for k, v := range src {
		if m, ok := v.(map[string]any); ok {
			v = deepCopy(m)
		}
		res[k] = v
	}
	return res
}
