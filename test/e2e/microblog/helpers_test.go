package microblog_test

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"os/exec"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/microblog/pkg/blogsdk"
)

/*
 * Common constants and helper functions for microblog end-to-end tests.
 * This includes container setup, account helpers and assertions.
 */

const (
	testImageName = "microblog-test:latest"

	testPassword = "password123"
	testBaseURL  = "https://blog.example.test"
)

// baseEnv is the container environment shared by every test. No MAIL_SERVER
// is set, so reset emails end up in the container log.
var baseEnv = map[string]string{
	"ENV":           "test",
	"LOG_LEVEL":     "info",
	"LOG_FORMAT":    "json",
	"BASE_URL":      testBaseURL,
	"DATABASE_FILE": "/data/microblog.db",
	"PEPPER_FILE":   "/data/pepper",
}

// relaxedLimits keep rapid test traffic clear of the production limits.
var relaxedLimits = map[string]string{
	"RATELIMIT_STRICT_REQUESTS":   "1000",
	"RATELIMIT_STRICT_BURST":      "1000",
	"RATELIMIT_MODERATE_REQUESTS": "1000",
	"RATELIMIT_MODERATE_BURST":    "1000",
	"RATELIMIT_LENIENT_REQUESTS":  "1000",
	"RATELIMIT_LENIENT_BURST":     "1000",
}

// TestMain builds the Docker image once before all tests and removes it
// after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Microblog Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Microblog Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/microblog/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// microblogContainer is a running service under test.
type microblogContainer struct {
	testcontainers.Container
	BaseURL string
}

// setupContainer starts the service with relaxed rate limits.
func setupContainer(t *testing.T) *microblogContainer {
	t.Helper()
	env := maps.Clone(baseEnv)
	maps.Copy(env, relaxedLimits)
	return startContainer(t, env)
}

// setupContainerWithDefaultRateLimits starts the service with the production
// rate limits. Only rate limit tests should need it.
func setupContainerWithDefaultRateLimits(t *testing.T) *microblogContainer {
	t.Helper()
	return startContainer(t, maps.Clone(baseEnv))
}

func startContainer(t *testing.T, env map[string]string) *microblogContainer {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/readyz").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return &microblogContainer{
		Container: container,
		BaseURL:   fmt.Sprintf("http://%s:%s", host, mappedPort.Port()),
	}
}

// newClient returns a logged out client with its own cookie jar.
func (c *microblogContainer) newClient() *blogsdk.Client {
	return blogsdk.NewClient(c.BaseURL)
}

// signup registers username with testPassword and logs a fresh client in.
func (c *microblogContainer) signup(t *testing.T, username string) *blogsdk.Client {
	t.Helper()
	client := c.newClient()

	_, err := client.Register(t.Context(), blogsdk.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)

	_, err = client.Login(t.Context(), blogsdk.LoginRequest{Username: username, Password: testPassword})
	require.NoError(t, err)
	return client
}

var resetLinkPattern = regexp.MustCompile(regexp.QuoteMeta(testBaseURL+"/reset_password/") + `([A-Za-z0-9_\-.]+)`)

// lastResetToken polls the container log for the most recent reset link.
// Mail is delivered asynchronously, so the line may lag the API response.
func (c *microblogContainer) lastResetToken(t *testing.T) string {
	t.Helper()

	var token string
	require.Eventually(t, func() bool {
		logs, err := c.Logs(context.Background())
		if err != nil {
			return false
		}
		defer logs.Close()

		raw, err := io.ReadAll(logs)
		if err != nil {
			return false
		}

		matches := resetLinkPattern.FindAllSubmatch(raw, -1)
		if len(matches) == 0 {
			return false
		}
		token = string(matches[len(matches)-1][1])
		return true
	}, 10*time.Second, 200*time.Millisecond, "no reset link in container logs")

	return token
}

// requireAPIError asserts err is an API error with the given status and code.
func requireAPIError(t *testing.T, err error, status int, code string) *blogsdk.APIError {
	t.Helper()
	var apiErr *blogsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode, "unexpected status: %v", err)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}

func assertHealthy(t *testing.T, health *blogsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Uptime)
	require.NotEmpty(t, health.Version)
}

func postBodies(page *blogsdk.PostPage) []string {
	out := make([]string, 0, len(page.Posts))
	for _, p := range page.Posts {
		out = append(out, p.Body)
	}
	return out
}
