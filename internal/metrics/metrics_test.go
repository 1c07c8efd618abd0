package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareRecordsRequests(t *testing.T) {
	m := New()
	e := echo.New()

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/accounts")

	if err := m.Middleware()(handler)(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/v1/accounts", "200"))
	if got != 1 {
		t.Errorf("Expected 1 recorded request, got %v", got)
	}

	if count := testutil.CollectAndCount(m.HTTPDuration); count == 0 {
		t.Error("Expected duration histogram to have observations")
	}
}
