package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/microblog/pkg/blogsdk"
	"github.com/aussiebroadwan/microblog/pkg/cryptox"
	"github.com/aussiebroadwan/microblog/pkg/httpx"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom(t.Context(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, DriverSQLite, cfg.StoreDriver)
	require.Equal(t, 30*time.Minute, cfg.ResetTokenTTL)
	require.Equal(t, 720*time.Hour, cfg.SessionMaxAge)
	require.Equal(t, 25, cfg.PostsPerPage)
	require.Equal(t, time.Minute, cfg.LastSeenInterval)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, 25, cfg.Mail.Port)
	require.Equal(t, 2, cfg.Mail.Workers)
	require.Equal(t, 64, cfg.Mail.QueueSize)
	require.Empty(t, cfg.Mail.Server)
	require.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoadConfigOverrides(t *testing.T) {
	strict := httpx.StrictLimit
	t.Cleanup(func() { httpx.StrictLimit = strict })

	cfg, err := LoadConfigFrom(t.Context(), envconfig.MapLookuper(map[string]string{
		"PORT":                      "9000",
		"STORE_DRIVER":              "memory",
		"RESET_TOKEN_TTL":           "5m",
		"POSTS_PER_PAGE":            "3",
		"CORS_ALLOWED_ORIGINS":      "https://a.example.com,https://b.example.com",
		"MAIL_SERVER":               "smtp.example.com",
		"MAIL_PORT":                 "587",
		"MAIL_SENDER":               "blog@example.com",
		"RATELIMIT_STRICT_REQUESTS": "2",
	}))
	require.NoError(t, err)

	require.Equal(t, 9000, cfg.Port)
	require.Equal(t, DriverMemory, cfg.StoreDriver)
	require.Equal(t, 5*time.Minute, cfg.ResetTokenTTL)
	require.Equal(t, 3, cfg.PostsPerPage)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	require.Equal(t, "smtp.example.com", cfg.Mail.Server)
	require.Equal(t, 587, cfg.Mail.Port)
	require.Equal(t, "blog@example.com", cfg.Mail.Sender)
	require.Equal(t, 2, httpx.StrictLimit.RequestsPerWindow)
}

func TestLoadConfigRejects(t *testing.T) {
	for name, env := range map[string]map[string]string{
		"unknown driver": {"STORE_DRIVER": "postgres"},
		"short secret":   {"SECRET_KEY": "too-short"},
		"bad block key":  {"SESSION_BLOCK_KEY": "abc"},
		"zero page size": {"POSTS_PER_PAGE": "0"},
		"bad duration":   {"RESET_TOKEN_TTL": "soon"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfigFrom(t.Context(), envconfig.MapLookuper(env))
			require.Error(t, err)
		})
	}
}

func TestLoadSecretsGeneratesMissingKeys(t *testing.T) {
	keys, err := loadSecrets(Config{SecretKey: strings.Repeat("k", 32)}, discardLogger())
	require.NoError(t, err)

	require.Equal(t, []byte(strings.Repeat("k", 32)), keys.resetKey)
	require.Len(t, keys.sessionHashKey, cryptox.TokenSize512)
	require.Len(t, keys.sessionBlockKey, cryptox.TokenSize256)
}

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg, err := LoadConfigFrom(t.Context(), envconfig.MapLookuper(map[string]string{
		"STORE_DRIVER":          "memory",
		"SHUTDOWN_GRACE_PERIOD": "2s",
		"PORT":                  "0",
	}))
	require.NoError(t, err)
	cfg.PepperFile = filepath.Join(t.TempDir(), "pepper")
	return cfg
}

func TestApplicationServesAPI(t *testing.T) {
	params := cryptox.DefaultParams
	cryptox.DefaultParams = cryptox.Params{Memory: 64, Iterations: 1, Parallelism: 1, KeyLength: 32, SaltLength: 16}
	t.Cleanup(func() { cryptox.DefaultParams = params })

	app, err := NewWithLogger(t.Context(), testConfig(t), discardLogger())
	require.NoError(t, err)

	ts := httptest.NewServer(app.Handler())
	t.Cleanup(ts.Close)

	ctx := t.Context()
	c := blogsdk.NewClient(ts.URL)

	ready, err := c.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)

	_, err = c.Register(ctx, blogsdk.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "password1"})
	require.NoError(t, err)
	_, err = c.Login(ctx, blogsdk.LoginRequest{Username: "alice", Password: "password1"})
	require.NoError(t, err)

	post, err := c.CreatePost(ctx, "first post")
	require.NoError(t, err)
	require.Equal(t, "first post", post.Body)

	resp, err := http.Get(ts.URL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestApplicationSQLiteStore(t *testing.T) {
	cfg := testConfig(t)
	cfg.StoreDriver = DriverSQLite
	cfg.DatabaseFile = filepath.Join(t.TempDir(), "microblog.db")

	app, err := NewWithLogger(t.Context(), cfg, discardLogger())
	require.NoError(t, err)
	require.NoError(t, app.db.Ping(t.Context()))
	require.NoError(t, app.db.Close())
}

func TestRunStopsWhenContextEnds(t *testing.T) {
	app, err := NewWithLogger(t.Context(), testConfig(t), discardLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
