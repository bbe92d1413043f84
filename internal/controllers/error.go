package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/wdlauncher/pkg/models"
)

var kindCodes = []struct {
	kind models.ErrorKind
	code int
}{
	{models.ConfigurationErr, http.StatusBadRequest},
	{models.SlotUnavailableErr, http.StatusServiceUnavailable},
}

// NewErrorHandler renders remote W3C errors as is and launcher errors as plain text
func NewErrorHandler(l *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		httpErr := &echo.HTTPError{}
		if errors.As(err, &httpErr) {
			c.Echo().DefaultHTTPErrorHandler(err, c)
			return
		}

		if c.Response().Committed {
			return
		}

		w3cErr := &models.W3CError{}
		if errors.As(err, &w3cErr) {
			_ = c.JSON(w3cErr.Code(), w3cErr)
			return
		}

		code := http.StatusInternalServerError
		for _, kc := range kindCodes {
			if models.IsKind(err, kc.kind) {
				code = kc.code
				break
			}
		}
		if code >= http.StatusInternalServerError {
			l.Error("request failed", zap.String("uri", c.Request().RequestURI), zap.String("error", models.FormatError(err)))
		}
		_ = c.String(code, models.FormatError(err))
	}
}
