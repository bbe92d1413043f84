package models

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

type ErrorKind string

const (
	ConfigurationErr   ErrorKind = "configuration error"
	SessionStartErr    ErrorKind = "session start error"
	HeartbeatFailure   ErrorKind = "heartbeat failure"
	TeardownErr        ErrorKind = "teardown error"
	AttachErr          ErrorKind = "attach error"
	DisconnectErr      ErrorKind = "browser disconnected"
	SlotUnavailableErr ErrorKind = "launcher slot unavailable"

	// UnknownErrorCode used when remote end responds with JsonWire or unparseable error
	UnknownErrorCode = "unknown error"
)

type LauncherError struct {
	kind ErrorKind
	err  error
}

func NewLauncherError(kind ErrorKind, err error) *LauncherError {
	return &LauncherError{
		kind: kind,
		err:  err,
	}
}

func NewConfigurationError(err error) *LauncherError {
	return NewLauncherError(ConfigurationErr, err)
}

func NewSessionStartError(err error) *LauncherError {
	return NewLauncherError(SessionStartErr, err)
}

func NewHeartbeatFailure(err error) *LauncherError {
	return NewLauncherError(HeartbeatFailure, err)
}

func NewTeardownError(err error) *LauncherError {
	return NewLauncherError(TeardownErr, err)
}

func NewAttachError(err error) *LauncherError {
	return NewLauncherError(AttachErr, err)
}

func NewDisconnectError(err error) *LauncherError {
	return NewLauncherError(DisconnectErr, err)
}

func NewSlotUnavailableError(err error) *LauncherError {
	return NewLauncherError(SlotUnavailableErr, err)
}

func (e *LauncherError) Kind() ErrorKind {
	return e.kind
}

func (e *LauncherError) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.err.Error())
}

func (e *LauncherError) Unwrap() error {
	return e.err
}

// IsKind reports whether any error in err's chain is a LauncherError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var e *LauncherError
	return errors.As(err, &e) && e.kind == kind
}

// DiagnosticError is implemented by errors carrying additional payload returned by the remote end
type DiagnosticError interface {
	error
	Data() string
}

// FormatError returns primary error message followed by the diagnostic payload (if any)
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	var d DiagnosticError
	if errors.As(err, &d) {
		if data := d.Data(); data != "" {
			msg += "\n  " + data
		}
	}
	return msg
}

// W3CError error returned by remote WebDriver end
// see details at https://www.w3.org/TR/webdriver2/#errors
type W3CError struct {
	code  int
	Value ErrorBody `json:"value"`
}

type ErrorBody struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StackTrace string `json:"stacktrace,omitempty"`
	Data       any    `json:"data,omitempty"`
}

func NewW3CErr(code int, body ErrorBody) *W3CError {
	if body.Error == "" {
		body.Error = UnknownErrorCode
	}
	return &W3CError{
		code:  code,
		Value: body,
	}
}

// ParseW3CError builds W3CError from response body, falling back to raw body text when it's not a W3C error
func ParseW3CError(code int, raw []byte) *W3CError {
	var w W3CError
	if err := json.Unmarshal(raw, &w); err != nil || w.Value.Message == "" {
		return NewW3CErr(code, ErrorBody{Message: string(raw)})
	}
	return NewW3CErr(code, w.Value)
}

func (w *W3CError) Error() string {
	return fmt.Sprintf("%s (HTTP %d): %s", w.Value.Error, w.code, w.Value.Message)
}

func (w *W3CError) Code() int {
	return w.code
}

func (w *W3CError) Data() string {
	if w.Value.Data != nil {
		if b, err := json.Marshal(w.Value.Data); err == nil {
			return string(b)
		}
	}
	return w.Value.StackTrace
}
