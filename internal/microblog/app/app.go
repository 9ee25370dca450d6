package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/sethvargo/go-retry"

	httpapi "github.com/aussiebroadwan/microblog/internal/microblog/http"
	"github.com/aussiebroadwan/microblog/internal/microblog/mail"
	"github.com/aussiebroadwan/microblog/internal/microblog/service"
	"github.com/aussiebroadwan/microblog/internal/microblog/store"
	"github.com/aussiebroadwan/microblog/internal/microblog/store/drivers/memory"
	"github.com/aussiebroadwan/microblog/internal/microblog/store/drivers/sqlite"
	"github.com/aussiebroadwan/microblog/pkg/cryptox"
	"github.com/aussiebroadwan/microblog/pkg/httpx"
	"github.com/aussiebroadwan/microblog/pkg/jwtx"
	"github.com/aussiebroadwan/microblog/pkg/slogx"
)

// BuildVersion is overridden at build time with -ldflags "-X ...app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// tokenIssuer is the iss claim of password reset tokens.
const tokenIssuer = "microblog"

// Store open attempts at startup, spaced on a fibonacci backoff.
const (
	storeOpenAttempts = 5
	storeOpenBackoff  = 500 * time.Millisecond
)

// Application encapsulates the microblog service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db         store.Store
	sessions   *httpx.Sessions
	dispatcher *mail.Dispatcher

	// Services
	userService          *service.UserService
	followService        *service.FollowService
	feedService          *service.FeedService
	postService          *service.PostService
	passwordResetService *service.PasswordResetService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized. Nothing
// listens or sends mail until Run.
func New(ctx context.Context, cfg Config) (*Application, error) {
	return NewWithLogger(ctx, cfg, slogx.New(slogx.Config{
		Service: "microblog",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	}))
}

// NewWithLogger is New with a caller supplied logger.
func NewWithLogger(ctx context.Context, cfg Config, logger *slog.Logger) (*Application, error) {
	app := &Application{cfg: cfg, logger: logger}

	if err := cryptox.LoadPepper(cfg.PepperFile); err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	keys, err := loadSecrets(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := app.initStore(ctx); err != nil {
		return nil, err
	}

	if err := app.initServices(keys); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler is the fully wired HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run serves HTTP and delivers mail until ctx ends, the process receives
// SIGINT or SIGTERM, or the server fails. It then drains in-flight requests,
// flushes queued mail and closes the store.
func (app *Application) Run(ctx context.Context) error {
	var g run.Group

	g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))

	// Interrupts run in the order actors were added, so the server is drained
	// before the dispatcher stops accepting mail.
	g.Add(func() error {
		app.logger.Info("microblog starting", "port", app.cfg.Port, "version", BuildVersion)
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	}, func(error) {
		app.shutdownServer()
	})

	stopMail := make(chan struct{})
	g.Add(func() error {
		app.dispatcher.Start(context.Background())
		<-stopMail

		ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
		defer cancel()
		return app.dispatcher.Shutdown(ctx)
	}, func(error) {
		close(stopMail)
	})

	err := g.Run()

	var sig run.SignalError
	switch {
	case errors.As(err, &sig):
		app.logger.Info("shutdown signal received", "signal", sig.Signal)
		err = nil
	case errors.Is(err, context.Canceled):
		err = nil
	}

	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error("error closing database", "error", cerr)
		err = errors.Join(err, cerr)
	}

	app.logger.Info("microblog stopped")
	return err
}

// shutdownServer gives outstanding requests the grace period to complete.
func (app *Application) shutdownServer() {
	app.logger.Info("shutting down http server...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}
}

// initStore opens the configured store and applies migrations. Opening the
// sqlite file is retried since another process may briefly hold a lock on it.
func (app *Application) initStore(ctx context.Context) error {
	if app.cfg.StoreDriver == DriverMemory {
		app.db = memory.NewStore()
		app.logger.Warn("using in-memory store, data is lost on exit")
		return nil
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", app.cfg.DatabaseFile)
	backoff := retry.WithMaxRetries(storeOpenAttempts-1, retry.NewFibonacci(storeOpenBackoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		db, err := sqlite.NewStore(dsn)
		if err != nil {
			app.logger.Warn("failed to open database, retrying", "error", err)
			return retry.RetryableError(err)
		}

		if err := db.ApplyMigrations(); err != nil {
			_ = db.Close()
			app.logger.Warn("failed to apply database migrations, retrying", "error", err)
			return retry.RetryableError(err)
		}

		app.db = db
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices(keys secrets) error {
	codec, err := jwtx.NewHS256(keys.resetKey, tokenIssuer)
	if err != nil {
		return fmt.Errorf("failed to initialize reset token codec: %w", err)
	}

	app.sessions = httpx.NewSessions(keys.sessionHashKey, keys.sessionBlockKey, app.cfg.SessionMaxAge)
	app.sessions.Secure = app.cfg.HTTPSCookies

	var sender mail.Sender = mail.LogSender{Logger: app.logger}
	if app.cfg.Mail.Server != "" {
		sender = mail.NewSMTPSender(mail.SMTPConfig{
			Host:     app.cfg.Mail.Server,
			Port:     app.cfg.Mail.Port,
			Username: app.cfg.Mail.Username,
			Password: app.cfg.Mail.Password,
		})
	} else {
		app.logger.Warn("MAIL_SERVER not set, emails will only be logged")
	}
	app.dispatcher = mail.NewDispatcher(sender, app.logger, mail.DispatcherConfig{
		Workers:   app.cfg.Mail.Workers,
		QueueSize: app.cfg.Mail.QueueSize,
	})

	app.userService = service.NewUserService(app.db, app.cfg.LastSeenInterval)
	app.followService = &service.FollowService{Store: app.db}
	app.feedService = &service.FeedService{Store: app.db, PerPage: app.cfg.PostsPerPage}
	app.postService = &service.PostService{Store: app.db}
	app.passwordResetService = &service.PasswordResetService{
		Users:   app.userService,
		Tokens:  &service.ResetTokenService{Codec: codec, Store: app.db},
		Mailer:  app.dispatcher,
		BaseURL: app.cfg.BaseURL,
		Sender:  app.cfg.Mail.Sender,
		TTL:     app.cfg.ResetTokenTTL,
	}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.sessions, app.logger)
	router.EnableCORS(app.cfg.CORSAllowedOrigins)

	router.UserService = app.userService
	router.FollowService = app.followService
	router.FeedService = app.feedService
	router.PostService = app.postService
	router.PasswordResetService = app.passwordResetService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
