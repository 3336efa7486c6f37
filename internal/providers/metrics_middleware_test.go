package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type mockMetrics struct {
	requests        map[string]int
	requestEndpoint string
	requestStatus   int
	requestCalls    int
	durationCalls   int
}

func (m *mockMetrics) IncRequestsTotal(endpoint string, status int) {
	if m.requests == nil {
		m.requests = make(map[string]int)
	}
	m.requests[endpoint]++
	m.requestEndpoint = endpoint
	m.requestStatus = status
	m.requestCalls++
}
func (m *mockMetrics) ObserveRequestDuration(_ string, _ time.Duration) { m.durationCalls++ }
func (m *mockMetrics) IncCacheHits()                                    {}
func (m *mockMetrics) IncCacheMisses()                                  {}
func (m *mockMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (m *mockMetrics) SetRecordsTotal(_ string, _ int)                  {}
func (m *mockMetrics) IncCallsTotal(_, _ string)                        {}

func instrumentedRouter(metrics *mockMetrics) http.Handler {
	rp := NewRouterProvider()
	rp.Post("/call", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	rp.Get("/weather", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	return MetricsMiddleware(metrics, rp.Handler())
}

func TestMetricsMiddleware_LabelsByRoute(t *testing.T) {
	metrics := &mockMetrics{}
	mw := instrumentedRouter(metrics)

	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/call", nil))

	assert.Equal(t, 1, metrics.requestCalls)
	assert.Equal(t, "/call", metrics.requestEndpoint)
	assert.Equal(t, http.StatusForbidden, metrics.requestStatus)
	assert.Equal(t, 1, metrics.durationCalls)
}

func TestMetricsMiddleware_DefaultStatus200(t *testing.T) {
	metrics := &mockMetrics{}
	mw := instrumentedRouter(metrics)

	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/weather?location=Oslo&timestamp=1", nil))

	assert.Equal(t, "/weather", metrics.requestEndpoint)
	assert.Equal(t, http.StatusOK, metrics.requestStatus)
}

func TestMetricsMiddleware_UnknownPathsShareOneLabel(t *testing.T) {
	metrics := &mockMetrics{}
	mw := instrumentedRouter(metrics)

	for _, path := range []string{"/foo123", "/x/y", "/call/extra", "/weather2"} {
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	}

	assert.Equal(t, map[string]int{UnmatchedEndpoint: 4}, metrics.requests)
}

func TestMetricsMiddleware_WrongMethodKeepsRouteLabel(t *testing.T) {
	metrics := &mockMetrics{}
	mw := instrumentedRouter(metrics)

	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/call", nil))

	assert.Equal(t, "/call", metrics.requestEndpoint)
	assert.Equal(t, http.StatusMethodNotAllowed, metrics.requestStatus)
}

func TestMetricsMiddleware_UnroutedHandlerIsOther(t *testing.T) {
	metrics := &mockMetrics{}
	mw := MetricsMiddleware(metrics, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/anything", nil))

	assert.Equal(t, UnmatchedEndpoint, metrics.requestEndpoint)
	assert.Equal(t, http.StatusCreated, metrics.requestStatus)
}

func TestStatusWriter_WriteHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rr, status: http.StatusOK}

	sw.WriteHeader(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, sw.status)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
