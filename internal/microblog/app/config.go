package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/aussiebroadwan/microblog/pkg/cryptox"
	"github.com/aussiebroadwan/microblog/pkg/httpx"
	"github.com/aussiebroadwan/microblog/pkg/jwtx"
)

// Store drivers selectable with STORE_DRIVER.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

type Config struct {
	Env       string `env:"ENV, default=dev"`         // dev, staging, prod
	LogLevel  string `env:"LOG_LEVEL, default=info"`  // debug, info, warn, error
	LogFormat string `env:"LOG_FORMAT, default=json"` // json, text
	Port      int    `env:"PORT, default=8080"`

	// BaseURL is where users reach the site; password reset links point here.
	BaseURL string `env:"BASE_URL, default=http://localhost:8080"`

	StoreDriver  string `env:"STORE_DRIVER, default=sqlite"`
	DatabaseFile string `env:"DATABASE_FILE, default=microblog.db"`
	PepperFile   string `env:"PEPPER_FILE, default=pepper"`

	// SecretKey signs password reset tokens. Generated when empty.
	SecretKey     string        `env:"SECRET_KEY"`
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL, default=30m"`

	// Session keys are generated when empty, which logs everybody out on
	// restart. The block key must be 16, 24 or 32 bytes.
	SessionHashKey  string        `env:"SESSION_HASH_KEY"`
	SessionBlockKey string        `env:"SESSION_BLOCK_KEY"`
	SessionMaxAge   time.Duration `env:"SESSION_MAX_AGE, default=720h"`
	HTTPSCookies    bool          `env:"HTTPS_COOKIES, default=false"`

	PostsPerPage        int           `env:"POSTS_PER_PAGE, default=25"`
	LastSeenInterval    time.Duration `env:"LAST_SEEN_INTERVAL, default=1m"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD, default=10s"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS"`

	Mail MailConfig `env:", prefix=MAIL_"`
}

type MailConfig struct {
	// Server is the SMTP host. Without it mail is only logged.
	Server    string `env:"SERVER"`
	Port      int    `env:"PORT, default=25"`
	Username  string `env:"USERNAME"`
	Password  string `env:"PASSWORD"`
	Sender    string `env:"SENDER, default=noreply@localhost"`
	Workers   int    `env:"WORKERS, default=2"`
	QueueSize int    `env:"QUEUE_SIZE, default=64"`
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig(ctx context.Context) (Config, error) {
	return LoadConfigFrom(ctx, envconfig.OsLookuper())
}

// LoadConfigFrom reads the configuration through l. The httpx rate limit
// profiles are overridden from the same source.
func LoadConfigFrom(ctx context.Context, l envconfig.Lookuper) (Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	if err := httpx.LoadRateLimits(ctx, l); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StoreDriver {
	case DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverSQLite, DriverMemory, c.StoreDriver)
	}

	if c.SecretKey != "" && len(c.SecretKey) < jwtx.MinKeySize {
		return fmt.Errorf("SECRET_KEY must be at least %d bytes", jwtx.MinKeySize)
	}

	switch len(c.SessionBlockKey) {
	case 0, 16, 24, 32:
	default:
		return fmt.Errorf("SESSION_BLOCK_KEY must be 16, 24 or 32 bytes, got %d", len(c.SessionBlockKey))
	}

	if c.PostsPerPage < 1 {
		return fmt.Errorf("POSTS_PER_PAGE must be positive, got %d", c.PostsPerPage)
	}
	return nil
}

// secrets are the keys the process signs with.
type secrets struct {
	resetKey        []byte
	sessionHashKey  []byte
	sessionBlockKey []byte
}

// loadSecrets returns the configured keys, generating any that are missing.
func loadSecrets(cfg Config, logger *slog.Logger) (secrets, error) {
	var s secrets
	var err error

	if s.resetKey, err = keyOrGenerate(cfg.SecretKey, cryptox.TokenSize256, "SECRET_KEY", logger); err != nil {
		return secrets{}, err
	}
	if s.sessionHashKey, err = keyOrGenerate(cfg.SessionHashKey, cryptox.TokenSize512, "SESSION_HASH_KEY", logger); err != nil {
		return secrets{}, err
	}
	if s.sessionBlockKey, err = keyOrGenerate(cfg.SessionBlockKey, cryptox.TokenSize256, "SESSION_BLOCK_KEY", logger); err != nil {
		return secrets{}, err
	}
	return s, nil
}

func keyOrGenerate(configured string, size int, name string, logger *slog.Logger) ([]byte, error) {
	if configured != "" {
		return []byte(configured), nil
	}

	key, err := cryptox.GenerateKey(size)
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", name, err)
	}
	logger.Warn("no key configured, generated an ephemeral one",
		slog.String("key", name),
		slog.String("effect", "issued tokens and sessions do not survive a restart"),
	)
	return key, nil
}
