package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/flight-itinerary/internal/config"
	"github.com/deppfellow/flight-itinerary/internal/itinerary"
	"github.com/deppfellow/flight-itinerary/internal/server"
)

func newTestService(t *testing.T, buf *bytes.Buffer) *ItineraryService {
	t.Helper()

	logger := zerolog.New(buf)
	cfg := &config.Config{
		Primary:       config.Primary{Env: "test"},
		Server:        config.ServerConfig{Name: "itinerary-test", Host: "127.0.0.1", Port: "0"},
		Observability: config.DefaultObservabilityConfig(),
	}

	s, err := server.New(cfg, &logger, nil)
	require.NoError(t, err)

	return NewItineraryService(s)
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}
	return lines
}

func TestCalculateSuccess(t *testing.T) {
	var buf bytes.Buffer
	svc := newTestService(t, &buf)

	paths := itinerary.FlightPathSet{
		{Origin: "MYS", Destination: "SGP"},
		{Origin: "GBB", Destination: "BKK"},
		{Origin: "GSO", Destination: "MYS"},
		{Origin: "BKK", Destination: "GSO"},
	}

	got, err := svc.Calculate(context.Background(), paths)
	require.NoError(t, err)
	assert.Equal(t, []string{"GBB", "SGP"}, got)

	lines := logLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "received request to calculate flight itinerary", lines[0]["message"])
	assert.EqualValues(t, 4, lines[0]["edge_count"])

	assert.Equal(t, "info", lines[1]["level"])
	assert.Equal(t, "GBB", lines[1]["origin"])
	assert.Equal(t, "SGP", lines[1]["destination"])
}

func TestCalculateFailure(t *testing.T) {
	var buf bytes.Buffer
	svc := newTestService(t, &buf)

	got, err := svc.Calculate(context.Background(), itinerary.FlightPathSet{})
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, itinerary.ErrEmptyFlightPaths))

	lines := logLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "warn", lines[1]["level"])
	assert.Equal(t, string(itinerary.KindEmptyFlightPaths), lines[1]["error_kind"])
	assert.Equal(t, err.Error(), lines[1]["error_message"])
}

func TestCalculateUsesContextLogger(t *testing.T) {
	var serviceBuf, requestBuf bytes.Buffer
	svc := newTestService(t, &serviceBuf)

	requestLogger := zerolog.New(&requestBuf).With().Str("request_id", "req-1").Logger()
	ctx := requestLogger.WithContext(context.Background())

	_, err := svc.Calculate(ctx, itinerary.FlightPathSet{{Origin: "GBB", Destination: "SGP"}})
	require.NoError(t, err)

	assert.Empty(t, serviceBuf.String())

	lines := logLines(t, &requestBuf)
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, "req-1", line["request_id"])
	}
}

func TestNewServices(t *testing.T) {
	var buf bytes.Buffer
	svc := newTestService(t, &buf)

	services, err := NewServices(svc.server)
	require.NoError(t, err)
	assert.NotNil(t, services.Itinerary)
}
