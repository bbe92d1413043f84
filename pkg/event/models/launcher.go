package models

import (
	"github.com/selebrow/wdlauncher/pkg/models"
)

const (
	BrowserCapturedEventType       = "BrowserCaptured"
	BrowserCompleteEventType       = "BrowserComplete"
	BrowserProcessFailureEventType = "BrowserProcessFailure"
	BrowserDoneEventType           = "BrowserDone"
)

// BrowserCaptured browser session is active and the capture page is loaded
type BrowserCaptured struct {
	LauncherID  string
	BrowserName string
	SessionID   string
}

// BrowserComplete capture page reported that it has finished
type BrowserComplete struct {
	LauncherID string
}

// BrowserProcessFailure browser session ended abnormally
type BrowserProcessFailure struct {
	LauncherID  string
	BrowserName string
	Spec        models.CapabilitySpec
	Error       error
}

// BrowserDone browser session reached its final state, published once per launcher
type BrowserDone struct {
	LauncherID  string
	BrowserName string
	Error       error
}

func NewBrowserCapturedEvent(e BrowserCaptured) *Event[BrowserCaptured] {
	return NewEvent(BrowserCapturedEventType, e.LauncherID, now(), e)
}

func NewBrowserCompleteEvent(e BrowserComplete) *Event[BrowserComplete] {
	return NewEvent(BrowserCompleteEventType, e.LauncherID, now(), e)
}

func NewBrowserProcessFailureEvent(e BrowserProcessFailure) *Event[BrowserProcessFailure] {
	return NewEvent(BrowserProcessFailureEventType, e.LauncherID, now(), e)
}

func NewBrowserDoneEvent(e BrowserDone) *Event[BrowserDone] {
	return NewEvent(BrowserDoneEventType, e.LauncherID, now(), e)
}
