package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"wxledger/internal/contract"
	"wxledger/internal/controllers"
	"wxledger/internal/providers"
	"wxledger/internal/services"
	"wxledger/internal/structures"
	"wxledger/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScheduler struct {
	restoreErr error
	initErr    error
	inits      int
	stops      int
	persists   int
	closes     int
}

func (s *stubScheduler) Init() error    { s.inits++; return s.initErr }
func (s *stubScheduler) Stop()          { s.stops++ }
func (s *stubScheduler) Restore() error { return s.restoreErr }
func (s *stubScheduler) Persist() error { s.persists++; return nil }
func (s *stubScheduler) Close()         { s.closes++ }

func testConfig() *structures.Config {
	return &structures.Config{
		AppName:   "test",
		WebServer: structures.Server{Host: "127.0.0.1", Port: 0},
		Ledger:    structures.LedgerConfig{Owner: "CONTRACT_OWNER", GenesisHeight: 100, BlockInterval: time.Second},
	}
}

func newTestController(conf *structures.Config) (*controllers.ContractController, services.LedgerInterface) {
	ledger := services.NewLedger(conf)
	logger := &testutil.MockLogger{}
	dispatcher := contract.NewDispatcher(ledger, logger, &testutil.MockMetrics{})
	return controllers.NewContractController(logger, dispatcher, testutil.NewMockCache(), providers.NewSenderProvider(conf)), ledger
}

func TestInitRoutes_RegistersContractRoutes(t *testing.T) {
	cc, _ := newTestController(testConfig())
	routes := InitRoutes(cc).GetRoutes()

	require.Len(t, routes, 5)

	urls := make([]string, len(routes))
	for i, r := range routes {
		urls[i] = r.Url
	}

	assert.Contains(t, urls, "/call")
	assert.Contains(t, urls, "/accuracy/user")
	assert.Contains(t, urls, "/accuracy/location")
	assert.Contains(t, urls, "/weather")
	assert.Contains(t, urls, "/oracle")
}

func TestInitRoutes_MethodEnforcement(t *testing.T) {
	cc, _ := newTestController(testConfig())
	mux := InitRoutes(cc).Handler()

	req := httptest.NewRequest(http.MethodGet, "/call", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	req = httptest.NewRequest(http.MethodPost, "/weather", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestNewHandler_EndToEnd(t *testing.T) {
	conf := testConfig()
	cc, ledger := newTestController(conf)
	handler := NewHandler(controllers.NewHealthController(ledger), conf, InitRoutes(cc), &testutil.MockMetrics{})

	srv := httptest.NewServer(handler)
	defer srv.Close()

	post := func(sender, body string) *http.Response {
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/call", strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set(providers.SenderHeader, sender)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	resp := post("CONTRACT_OWNER", `{"method":"authorize-oracle","args":["oracle1"]}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(providers.RequestIDHeader))

	resp = post("oracle1", `{"method":"add-weather-data","args":["New York",25,60,10,0]}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err := http.Get(srv.URL + "/weather?location=New%20York&timestamp=100")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	health, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	health.Body.Close()
	assert.Equal(t, http.StatusOK, health.StatusCode)
}

func TestNewHandler_MetricsDisabled(t *testing.T) {
	conf := testConfig()
	cc, ledger := newTestController(conf)
	handler := NewHandler(controllers.NewHealthController(ledger), conf, InitRoutes(cc), &testutil.MockMetrics{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestNewApp_RestoreError(t *testing.T) {
	conf := testConfig()
	cc, ledger := newTestController(conf)
	sched := &stubScheduler{restoreErr: assert.AnError}

	_, err := NewApp(controllers.NewHealthController(ledger), sched, conf, &testutil.MockLogger{}, InitRoutes(cc), &testutil.MockMetrics{})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestApp_RunStopsOnContextCancel(t *testing.T) {
	conf := testConfig()
	cc, ledger := newTestController(conf)
	sched := &stubScheduler{}

	app, err := NewApp(controllers.NewHealthController(ledger), sched, conf, &testutil.MockLogger{}, InitRoutes(cc), &testutil.MockMetrics{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
	assert.Equal(t, 1, sched.inits)
	assert.Equal(t, 1, sched.stops)
	assert.Equal(t, 1, sched.persists)
	assert.Equal(t, 1, sched.closes)
}

func TestApp_RunReleasesResourcesWhenInitFails(t *testing.T) {
	conf := testConfig()
	cc, ledger := newTestController(conf)
	sched := &stubScheduler{initErr: assert.AnError}
	logger := &testutil.MockLogger{}

	app, err := NewApp(controllers.NewHealthController(ledger), sched, conf, logger, InitRoutes(cc), &testutil.MockMetrics{})
	require.NoError(t, err)

	err = app.Run(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, sched.closes)
	assert.Equal(t, 0, sched.persists)
	assert.Equal(t, 1, logger.Count("error"))
	assert.True(t, logger.Closed)
}

func TestNewHandler_RequestLabelsStayBounded(t *testing.T) {
	conf := testConfig()
	cc, ledger := newTestController(conf)
	metrics := &testutil.MockMetrics{}
	handler := NewHandler(controllers.NewHealthController(ledger), conf, InitRoutes(cc), metrics)

	for _, path := range []string{"/oracle?id=oracle1", "/foo123", "/x/y", "/oracle/extra"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, map[string]int{"/oracle": 1, providers.UnmatchedEndpoint: 3}, metrics.Requests)
}
