package controllers

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/selebrow/wdlauncher/internal/common/ws"
	"github.com/selebrow/wdlauncher/pkg/models"
)

const (
	StaticRoot  = "/static/"
	CapturePath = "/"
	SocketPath  = "/socket"

	captureTemplate = "capture.tmpl"
)

type captureData struct {
	Title           string
	Ref             string
	SocketURL       string
	CompleteMessage string
}

// CaptureController renders the page browsers are navigated to.
// Page title is the sentinel checked by the heartbeat.
type CaptureController struct {
	title string
}

func NewCaptureController(title string) *CaptureController {
	return &CaptureController{title: title}
}

func (cc *CaptureController) Capture(c echo.Context) error {
	ref := c.QueryParam(models.SessionRefParam)
	if ref == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing id query parameter")
	}

	q := make(url.Values)
	q.Set(models.SessionRefParam, ref)
	return c.Render(http.StatusOK, captureTemplate, &captureData{
		Title:           cc.title,
		Ref:             ref,
		SocketURL:       SocketPath + "?" + q.Encode(),
		CompleteMessage: ws.CompleteMessage,
	})
}
