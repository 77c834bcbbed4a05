package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_BusinessMetrics(t *testing.T) {
	r := NewRecorder()

	r.ObserveGeocode("static", "ok", 20*time.Millisecond)
	r.ObserveGeocode("static", "ok", 30*time.Millisecond)
	r.ObserveGeocode("google", "no_results", time.Second)
	r.ResolutionDiscarded("address")
	r.EligibilityEvaluated(true, 3.2)
	r.EligibilityEvaluated(false, 8.5)
	r.EligibilityEvaluated(false, 12)
	r.SessionsActive(4)

	assert.InDelta(t, 2, testutil.ToFloat64(r.geocodeRequests.WithLabelValues("static", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.geocodeRequests.WithLabelValues("google", "no_results")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.resolutionDiscarded.WithLabelValues("address")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.eligibilityTotal.WithLabelValues("true")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(r.eligibilityTotal.WithLabelValues("false")), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(r.sessionsActive), 0)
}

func TestRecorder_MiddlewareAndHandler(t *testing.T) {
	r := NewRecorder()
	e := echo.New()
	e.Use(r.Middleware)
	e.GET("/api/v1/sessions/:id/eligibility", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/metrics", echo.WrapHandler(r.Handler()))

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+id+"/eligibility", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.InDelta(t, 2, testutil.ToFloat64(
		r.httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/sessions/:id/eligibility", "200"),
	), 0)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "http_requests_total"))
	assert.True(t, strings.Contains(body, "eligibility_sessions_active"))
}
