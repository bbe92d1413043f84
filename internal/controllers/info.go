package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/selebrow/wdlauncher/pkg/dto"
)

type InfoController struct {
	name    string
	gitRef  string
	gitSha  string
	started time.Time
	now     func() time.Time
}

func NewInfoController(name, gitRef, gitSha string) *InfoController {
	return &InfoController{
		name:    name,
		gitRef:  gitRef,
		gitSha:  gitSha,
		started: time.Now(),
		now:     time.Now,
	}
}

func (i *InfoController) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, &dto.AppInfo{
		Name:      i.name,
		GitRef:    i.gitRef,
		GitSha:    i.gitSha,
		StartedAt: i.started.UTC(),
		Uptime:    i.now().Sub(i.started).Truncate(time.Second).String(),
	})
}
