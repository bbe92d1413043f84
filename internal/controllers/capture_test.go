package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/gomega"

	"github.com/selebrow/wdlauncher/html"
)

func newRenderingEcho(t *testing.T) *echo.Echo {
	r, err := html.NewPageRenderer(html.Assets(false), false)
	NewWithT(t).Expect(err).ToNot(HaveOccurred())
	e := echo.New()
	e.Renderer = r
	return e
}

func TestCaptureController_Capture(t *testing.T) {
	g := NewWithT(t)
	e := newRenderingEcho(t)
	req := httptest.NewRequest(http.MethodGet, "/?id=l1", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	cc := NewCaptureController("Karma")
	err := cc.Capture(c)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))

	body := rec.Body.String()
	g.Expect(body).To(ContainSubstring("<title>Karma</title>"))
	g.Expect(body).To(ContainSubstring(`data-socket="/socket?id=l1"`))
	g.Expect(body).To(ContainSubstring(`data-complete="complete"`))
	g.Expect(body).To(ContainSubstring("<code>l1</code>"))
}

func TestCaptureController_Capture_NoRef(t *testing.T) {
	g := NewWithT(t)
	e := newRenderingEcho(t)
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewCaptureController("Karma").Capture(c)
	httpErr := &echo.HTTPError{}
	g.Expect(err).To(BeAssignableToTypeOf(httpErr))
	g.Expect(err.(*echo.HTTPError).Code).To(Equal(http.StatusBadRequest))
}
