// Package webdriver implements the handful of remote WebDriver operations needed to drive a capture session.
//
// Requests are sent in a form accepted by both W3C and legacy JsonWire hubs.
package webdriver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"path"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/wdlauncher/internal/common/client"
	"github.com/selebrow/wdlauncher/pkg/models"
)

const SessionPath = "/session"

var ErrNoSession = errors.New("no active session")

type Client interface {
	// Init creates new session on the hub and returns its id
	Init(ctx context.Context, spec models.CapabilitySpec) (string, error)
	// Get navigates current session to the given URL
	Get(ctx context.Context, u string) error
	// Attach makes existing session current, returns session capabilities
	Attach(ctx context.Context, id string) (map[string]interface{}, error)
	// Title returns title of the page loaded in current session
	Title(ctx context.Context) (string, error)
	// Quit deletes current session, it's a no-op when there is no session
	Quit(ctx context.Context) error
	SessionID() string
}

type Factory func(cfg models.SessionConfig) Client

type RemoteClient struct {
	hub *url.URL
	hc  client.HTTPClient
	mtx sync.RWMutex
	id  string
	l   *zap.SugaredLogger
}

func NewRemoteClient(cfg models.SessionConfig, hc client.HTTPClient, l *zap.Logger) *RemoteClient {
	hub := cfg.URL()
	return &RemoteClient{
		hub: hub,
		hc:  hc,
		l:   l.Sugar().With(zap.String("hub", hub.String())),
	}
}

func NewFactory(hc client.HTTPClient, l *zap.Logger) Factory {
	return func(cfg models.SessionConfig) Client {
		return NewRemoteClient(cfg, hc, l)
	}
}

func (c *RemoteClient) Init(ctx context.Context, spec models.CapabilitySpec) (string, error) {
	res, err := c.do(ctx, http.MethodPost, SessionPath, models.NewNewSessionRequest(spec))
	if err != nil {
		return "", err
	}

	id, err := extractSessionID(res)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse create session response")
	}

	c.setSessionID(id)
	c.l.Debugw("session created", zap.String("session_id", id), zap.String("browser_name", spec.BrowserName))
	return id, nil
}

func (c *RemoteClient) Get(ctx context.Context, u string) error {
	id := c.SessionID()
	if id == "" {
		return ErrNoSession
	}
	_, err := c.do(ctx, http.MethodPost, path.Join(SessionPath, id, "url"), map[string]string{"url": u})
	return err
}

// Attach checks that session id is alive with "GET /session/{id}/url" known to both W3C and JSONWire hubs.
// Capabilities are read from JSONWire only "GET /session/{id}", nil is returned when the hub doesn't support it.
func (c *RemoteClient) Attach(ctx context.Context, id string) (map[string]interface{}, error) {
	if _, err := c.do(ctx, http.MethodGet, path.Join(SessionPath, id, "url"), nil); err != nil {
		return nil, err
	}
	c.setSessionID(id)

	res, err := c.do(ctx, http.MethodGet, path.Join(SessionPath, id), nil)
	if err != nil {
		c.l.Debugw("session capabilities are not available", zap.String("session_id", id), zap.Error(err))
		return nil, nil
	}
	caps, _ := res["value"].(map[string]interface{})
	return caps, nil
}

func (c *RemoteClient) Title(ctx context.Context) (string, error) {
	id := c.SessionID()
	if id == "" {
		return "", ErrNoSession
	}
	res, err := c.do(ctx, http.MethodGet, path.Join(SessionPath, id, "title"), nil)
	if err != nil {
		return "", err
	}
	title, ok := res["value"].(string)
	if !ok {
		return "", errors.New("failed to cast title value to string")
	}
	return title, nil
}

func (c *RemoteClient) Quit(ctx context.Context) error {
	c.mtx.Lock()
	id := c.id
	c.id = ""
	c.mtx.Unlock()

	if id == "" {
		return nil
	}
	_, err := c.do(ctx, http.MethodDelete, path.Join(SessionPath, id), nil)
	return err
}

func (c *RemoteClient) SessionID() string {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	return c.id
}

// Ready checks whether hub is ready to accept new sessions
func (c *RemoteClient) Ready(ctx context.Context) (bool, error) {
	b, err := c.doRaw(ctx, http.MethodGet, "/status", nil)
	if err != nil {
		return false, err
	}
	var st models.HubStatus
	if err := json.Unmarshal(b, &st); err != nil {
		return false, errors.Wrap(err, "failed to parse status response")
	}
	if !st.Value.Ready {
		c.l.Debugw("hub is not ready", zap.String("message", st.Value.Message))
	}
	return st.Value.Ready, nil
}

func (c *RemoteClient) setSessionID(id string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.id = id
}

func (c *RemoteClient) do(ctx context.Context, method, p string, body interface{}) (map[string]interface{}, error) {
	b, err := c.doRaw(ctx, method, p, body)
	if err != nil {
		return nil, err
	}

	res := make(map[string]interface{})
	if len(bytes.TrimSpace(b)) == 0 {
		return res, nil
	}
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s %s response", method, p)
	}
	return res, nil
}

func (c *RemoteClient) doRaw(ctx context.Context, method, p string, body interface{}) ([]byte, error) {
	u := *c.hub
	u.Path = path.Join(u.Path, p)

	var reqBody io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}

	c.l.Debugw("sending request", zap.String("method", method), zap.String("url", u.String()))
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s failed", method, u.String())
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s %s response", method, u.String())
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, errors.Wrapf(models.ParseW3CError(resp.StatusCode, b), "%s %s failed", method, u.String())
	}
	return b, nil
}

func extractSessionID(resp map[string]interface{}) (string, error) {
	// JsonWire
	if id, ok := resp["sessionId"]; ok {
		sess, ok := id.(string)
		if !ok {
			return "", errors.New("failed to cast sessionId to string")
		}
		return sess, nil
	}

	value, ok := resp["value"].(map[string]interface{})
	if !ok {
		return "", errors.New("wrong response structure")
	}

	sess, ok := value["sessionId"].(string)
	if !ok || sess == "" {
		return "", errors.New("sessionId is missing in response")
	}
	return sess, nil
}
