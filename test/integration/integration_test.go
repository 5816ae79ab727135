package integration

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steuerkit/rechner/internal/calculation"
	"github.com/steuerkit/rechner/internal/config"
	"github.com/steuerkit/rechner/internal/domain"
	"github.com/steuerkit/rechner/internal/server"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

// TestServerMatchesEngine posts the same request files the CLI reads and checks the API agrees with the engine.
func TestServerMatchesEngine(t *testing.T) {
	parser := config.NewInputParser()
	engine := calculation.NewEngine2026()
	srv := httptest.NewServer(server.New(server.Config{Engine: engine, Registry: prometheus.NewRegistry()}).Router())
	defer srv.Close()

	var fine domain.SpeedingInput
	require.NoError(t, parser.LoadRequest("../testdata/bussgeld.json", &fine))
	want, err := engine.SpeedingFine(fine)
	require.NoError(t, err)

	body, err := json.Marshal(fine)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+"/api/v1/bussgeld", "application/json", strings.NewReader(string(body)))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got domain.SpeedingResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.True(t, want.Total.Equal(got.Total), "want %s, got %s", want.Total, got.Total)
	assert.Equal(t, want.Points, got.Points)
	assert.Equal(t, want.Ban, got.Ban)
	assert.NotEmpty(t, resp.Header.Get(server.RequestIDHeader))
}

func TestServerWithRulesOverride(t *testing.T) {
	rules, err := config.NewInputParser().LoadRules("../testdata/rules-override.yaml")
	require.NoError(t, err)

	srv := httptest.NewServer(server.New(server.Config{Engine: calculation.NewEngine(rules)}).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	var health map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.EqualValues(t, 2027, health["year"])
}

func TestServerMetricsCountCalculations(t *testing.T) {
	registry := prometheus.NewRegistry()
	srv := httptest.NewServer(server.New(server.Config{Registry: registry}).Router())
	defer srv.Close()

	for _, body := range []string{
		`{"monthly_gross": 3000, "weekly_hours": 40, "overtime_hours": 10}`,
		`{"monthly_gross": 3000, "weekly_hours": 0, "overtime_hours": 10}`,
	} {
		resp, err := http.Post(srv.URL+"/api/v1/ueberstunden", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
	}

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	exposition := string(data)
	assert.Contains(t, exposition, `rechner_calculations_total{calculator="ueberstunden",outcome="ok"} 1`)
	assert.Contains(t, exposition, `rechner_calculations_total{calculator="ueberstunden",outcome="indeterminate"} 1`)
}
