package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/gomega"

	"github.com/selebrow/wdlauncher/pkg/dto"
)

func TestInfoController_Info(t *testing.T) {
	g := NewWithT(t)

	started := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	ic := NewInfoController("wdlauncher", "v1.2.0", "deadbeef")
	ic.started = started
	ic.now = func() time.Time {
		return started.Add(90*time.Second + 300*time.Millisecond)
	}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/info", http.NoBody), rec)

	g.Expect(ic.Info(c)).To(Succeed())
	g.Expect(rec).To(HaveHTTPStatus(http.StatusOK))

	var got dto.AppInfo
	g.Expect(json.NewDecoder(rec.Body).Decode(&got)).To(Succeed())
	g.Expect(got).To(Equal(dto.AppInfo{
		Name:      "wdlauncher",
		GitRef:    "v1.2.0",
		GitSha:    "deadbeef",
		StartedAt: started,
		Uptime:    "1m30s",
	}))
}
