package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/flight-itinerary/internal/config"
	"github.com/deppfellow/flight-itinerary/internal/errs"
	"github.com/deppfellow/flight-itinerary/internal/model"
	"github.com/deppfellow/flight-itinerary/internal/server"
	"github.com/deppfellow/flight-itinerary/internal/service"
)

func testConfig() *config.Config {
	return &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Name:               "itinerary-test",
			Port:               "0",
			CORSAllowedOrigins: []string{"*"},
		},
		RateLimit:     config.DefaultRateLimitConfig(),
		Observability: config.DefaultObservabilityConfig(),
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *server.Server {
	t.Helper()

	s, err := server.New(cfg, nil, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		if s.Redis != nil {
			_ = s.Redis.Close()
		}
	})
	return s
}

func newJSONContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/compute", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestComputeItinerary(t *testing.T) {
	s := newTestServer(t, testConfig())
	h := NewItineraryHandler(s, service.NewItineraryService(s))
	compute := h.ComputeItinerary()
	e := echo.New()

	c, rec := newJSONContext(e, `{"flightPaths":[["MYS","SGP"],["GBB","BKK"],["GSO","MYS"],["BKK","GSO"]]}`)
	require.NoError(t, compute(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body model.ComputeItineraryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"GBB", "SGP"}, body.Itinerary)
}

func TestComputeItineraryErrors(t *testing.T) {
	s := newTestServer(t, testConfig())
	h := NewItineraryHandler(s, service.NewItineraryService(s))
	compute := h.ComputeItinerary()
	e := echo.New()

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"empty", `{"flightPaths":[]}`, "EMPTY_FLIGHT_PATHS"},
		{"self loop", `{"flightPaths":[["A","a"]]}`, "INVALID_FLIGHT_PATH"},
		{"cycle", `{"flightPaths":[["A","B"],["B","A"]]}`, "NO_STARTING_AIRPORT_DISCOVERED"},
		{"two endings", `{"flightPaths":[["A","B"],["A","C"]]}`, "NO_ENDING_AIRPORT_DISCOVERED"},
		{"short pair", `{"flightPaths":[["A"]]}`, "BAD_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newJSONContext(e, tt.body)

			err := compute(c)
			require.Error(t, err)
			assert.Zero(t, rec.Body.Len(), "errors are written by the global error handler")

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}

func TestComputeItineraryFreshRequestPerCall(t *testing.T) {
	s := newTestServer(t, testConfig())
	compute := NewItineraryHandler(s, service.NewItineraryService(s)).ComputeItinerary()
	e := echo.New()

	c, _ := newJSONContext(e, `{"flightPaths":[["A","B"],["C","D"]]}`)
	require.Error(t, compute(c))

	// A payload left over from the previous call would make this fail.
	c, rec := newJSONContext(e, `{"flightPaths":[["X","Y"]]}`)
	require.NoError(t, compute(c))

	var body model.ComputeItineraryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"X", "Y"}, body.Itinerary)
}

func TestCheckHealth(t *testing.T) {
	e := echo.New()

	t.Run("healthy without redis", func(t *testing.T) {
		h := NewHealthHandler(newTestServer(t, testConfig()))

		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)
		require.NoError(t, h.CheckHealth(c))

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "test", body["environment"])
		assert.Empty(t, body["checks"])
	})

	t.Run("unreachable redis", func(t *testing.T) {
		cfg := testConfig()
		cfg.Redis.Address = "127.0.0.1:1"
		cfg.Observability.HealthChecks = config.HealthChecksConfig{
			Enabled: true,
			Timeout: time.Second,
			Checks:  []string{"redis"},
		}
		h := NewHealthHandler(newTestServer(t, cfg))

		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)
		require.NoError(t, h.CheckHealth(c))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "unhealthy", body["status"])

		checks, ok := body["checks"].(map[string]any)
		require.True(t, ok)
		redisCheck, ok := checks["redis"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "unhealthy", redisCheck["status"])
	})

	t.Run("redis check not listed", func(t *testing.T) {
		cfg := testConfig()
		cfg.Redis.Address = "127.0.0.1:1"
		cfg.Observability.HealthChecks = config.HealthChecksConfig{Enabled: true}
		h := NewHealthHandler(newTestServer(t, cfg))

		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)
		require.NoError(t, h.CheckHealth(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestServeOpenAPIUI(t *testing.T) {
	h := NewOpenAPIHandler(newTestServer(t, testConfig()))

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/docs", nil), rec)
	require.NoError(t, h.ServeOpenAPIUI(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Flight Itinerary API</title>")
}
