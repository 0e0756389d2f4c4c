package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRouteLabel(t *testing.T) {
	tests := map[string]string{
		"/api/package/65f0c0ffee0000000000abcd": "/api/package",
		"/api/packages":                         "/api/packages",
		"/health":                               "/health",
		"/seed":                                 "/seed",
		"/css/site.css":                         "/css",
		"":                                      "/",
	}
	for in, want := range tests {
		assert.Equal(t, want, RouteLabel(in), in)
	}
}

func TestMiddleware_CountsRequests(t *testing.T) {
	before := testutil.ToFloat64(RequestTotal.WithLabelValues(http.MethodGet, "/api/locations", "418"))

	h := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/locations", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	after := testutil.ToFloat64(RequestTotal.WithLabelValues(http.MethodGet, "/api/locations", "418"))
	assert.Equal(t, before+1, after)
}

func TestHandler_ExposesRegistry(t *testing.T) {
	BookingsCreated.Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tourenzo_bookings_created_total")
}
