package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// The rejection paths below fail during request parsing, before any service
// call, so a handler without services is enough to exercise them.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(nil, nil, zerolog.Nop(), "test")

	r := gin.New()
	handler.Register(r, func(c *gin.Context) { c.Next() })
	return r
}

func TestGetReportsRejectsBadDates(t *testing.T) {
	r := newTestRouter()

	testCases := []struct {
		name string
		url  string
	}{
		{name: "bad startDate", url: "/api/reports?type=inspections&startDate=not-a-date"},
		{name: "bad endDate", url: "/api/reports?type=seizures&endDate=01/03/2026"},
		{name: "partial timestamp", url: "/api/reports?startDate=2026-03"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)

			r.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestGetDashboardStatsRejectsBadPeriod(t *testing.T) {
	r := newTestRouter()

	for _, period := range []string{"abc", "-7", "0"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard-stats?period="+period, nil)

		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("period %q: status = %d, want 400", period, w.Code)
		}
	}
}

func TestListInspectionsRejectsBadUserID(t *testing.T) {
	r := newTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/inspections?userId=not-a-uuid", nil)

	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetInspectionRejectsBadID(t *testing.T) {
	r := newTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/inspections/not-a-uuid", nil)

	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
