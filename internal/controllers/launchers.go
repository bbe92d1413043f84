package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/selebrow/wdlauncher/pkg/dto"
	"github.com/selebrow/wdlauncher/pkg/launchers"
)

type LaunchersController struct {
	cat launchers.LaunchersCatalog
}

func NewLaunchersController(cat launchers.LaunchersCatalog) *LaunchersController {
	return &LaunchersController{cat: cat}
}

func (lc *LaunchersController) Launchers(c echo.Context) error {
	names := lc.cat.Names()
	if names == nil {
		names = []string{}
	}
	return c.JSON(http.StatusOK, &dto.Launchers{Names: names})
}
