package microblog_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check endpoint.
func TestLivezEndpoint(t *testing.T) {
	c := setupContainer(t)

	health, err := c.newClient().GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

// TestReadyzEndpoint verifies the readiness check reports the database.
func TestReadyzEndpoint(t *testing.T) {
	c := setupContainer(t)

	health, err := c.newClient().GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
}

// TestMetricsEndpoint verifies request metrics are exported.
func TestMetricsEndpoint(t *testing.T) {
	c := setupContainer(t)

	_, err := c.newClient().GetLiveness(t.Context())
	require.NoError(t, err)

	resp, err := http.Get(c.BaseURL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "microblog_http_requests_total")
}
