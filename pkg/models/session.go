package models

import (
	"net"
	"net/url"
	"strconv"
)

const SessionRefParam = "id"

// SessionConfig location of the WebDriver hub
type SessionConfig struct {
	Protocol string `mapstructure:"protocol"`
	Hostname string `mapstructure:"hostname"`
	Port     int    `mapstructure:"port"`
	Path     string `mapstructure:"path"`
}

func (c SessionConfig) URL() *url.URL {
	return &url.URL{
		Scheme: c.Protocol,
		Host:   hostPort(c.Hostname, c.Port),
		Path:   c.Path,
	}
}

// BrowserTarget location of the capture page as seen by the browser
type BrowserTarget struct {
	Protocol string `mapstructure:"protocol"`
	Hostname string `mapstructure:"hostname"`
	Port     int    `mapstructure:"port"`
}

// CaptureURL returns capture page URL with session reference embedded into the query
func (t BrowserTarget) CaptureURL(ref string) *url.URL {
	q := make(url.Values)
	q.Set(SessionRefParam, ref)
	return &url.URL{
		Scheme:   t.Protocol,
		Host:     hostPort(t.Hostname, t.Port),
		Path:     "/",
		RawQuery: q.Encode(),
	}
}

// SessionRef extracts session reference previously embedded by CaptureURL
func SessionRef(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.Query().Get(SessionRefParam)
}

func hostPort(host string, port int) string {
	if port == 0 {
		return host
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}
