package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/selebrow/wdlauncher/internal/launcher"
	"github.com/selebrow/wdlauncher/pkg/dto"
	"github.com/selebrow/wdlauncher/pkg/models"
	"github.com/selebrow/wdlauncher/pkg/quota"
)

type LauncherRegistry interface {
	Launchers() []*launcher.Launcher
}

type StatusController struct {
	reg LauncherRegistry
	qa  quota.SlotAuthorizer
}

func NewStatusController(reg LauncherRegistry, qa quota.SlotAuthorizer) *StatusController {
	return &StatusController{reg: reg, qa: qa}
}

func (s *StatusController) Status(c echo.Context) error {
	lns := s.reg.Launchers()
	resp := &dto.Status{
		Total:     len(lns),
		Launchers: make([]dto.LauncherStatus, 0, len(lns)),
	}
	if s.qa.Enabled() {
		resp.Slots = &dto.SlotsStatus{
			Allocated: s.qa.Allocated(),
			Limit:     s.qa.Limit(),
			Queued:    s.qa.QueueSize(),
		}
	}
	for _, ln := range lns {
		st := dto.LauncherStatus{
			ID:        ln.ID(),
			Name:      ln.Name(),
			State:     ln.State().String(),
			SessionID: ln.SessionID(),
			URL:       ln.URL(),
		}
		if err := ln.Err(); err != nil {
			st.Error = models.FormatError(err)
		}
		resp.Launchers = append(resp.Launchers, st)
	}
	return c.JSON(http.StatusOK, resp)
}
