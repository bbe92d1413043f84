package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/selebrow/wdlauncher/internal/common/ws"
	"github.com/selebrow/wdlauncher/pkg/models"
)

type RefRegistry interface {
	Known(ref string) bool
}

type SocketController struct {
	listener ws.Listener
	reg      RefRegistry
}

func NewSocketController(listener ws.Listener, reg RefRegistry) *SocketController {
	return &SocketController{listener: listener, reg: reg}
}

func (s *SocketController) Socket(c echo.Context) error {
	ref := c.QueryParam(models.SessionRefParam)
	if ref == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing id query parameter")
	}
	if !s.reg.Known(ref) {
		return echo.NewHTTPError(http.StatusNotFound, "unknown browser reference "+ref)
	}

	s.listener.Handler(ref).ServeHTTP(c.Response(), c.Request())
	return nil
}
