package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/handlers"

	"github.com/aussiebroadwan/microblog/internal/microblog/service"
	"github.com/aussiebroadwan/microblog/internal/microblog/store"
	"github.com/aussiebroadwan/microblog/pkg/httpx"
	"github.com/aussiebroadwan/microblog/pkg/slogx"

	_ "github.com/aussiebroadwan/microblog/api/microblog" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store
	sessions     *httpx.Sessions

	UserService          *service.UserService
	FollowService        *service.FollowService
	FeedService          *service.FeedService
	PostService          *service.PostService
	PasswordResetService *service.PasswordResetService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	sessions *httpx.Sessions,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		sessions:     sessions,
		logger:       logger,
	}

	// Metrics must stay last so it wraps the mux directly
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		handlers.RecoveryHandler(
			handlers.RecoveryLogger(slogx.RecoveryLogger{Logger: r.logger}),
			handlers.PrintRecoveryStack(true),
		),
		httpx.MetricsMiddleware(),
	}

	return r
}

// EnableCORS lets browsers on origins call the API with credentials.
func (r *Router) EnableCORS(origins []string) {
	if len(origins) == 0 {
		return
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type", slogx.RequestIDHeader}),
		handlers.AllowCredentials(),
	)
	// Outermost, so preflight requests never reach the session checks
	r.middlewares = append([]httpx.Middleware{cors}, r.middlewares...)
}

func (r *Router) ApplyRoutes() {
	r.registerAccount()
	r.registerPosts()
	r.registerUsers()
	r.registerPassword()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Microblog API
//	@version		0.1.0
//	@description	A small social blogging service: accounts, short posts, follows and a timeline.
//	@description
//	@description	Authentication is a session cookie set by POST /v1/login.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/microblog
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						microblog_session
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authenticated requires a session, records activity and limits per user.
func (r *Router) authenticated(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.RequireSession(r.sessions, r.touch),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) touch(ctx context.Context, userID int64) {
	if err := r.UserService.Touch(ctx, userID); err != nil {
		slogx.FromContext(ctx).Warn("failed to update last seen", slog.String("error", err.Error()))
	}
}

func (r *Router) registerAccount() {
	h := &AccountHandler{UserService: r.UserService, Sessions: r.sessions}

	// Credential endpoints - strict, login keyed by IP and username against brute force
	r.Mux.Handle("POST /v1/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)
	r.Mux.Handle("POST /v1/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /v1/me", r.authenticated(h.HandleMe, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/me", r.authenticated(h.HandleUpdate, httpx.ModerateLimit))
}

func (r *Router) registerPosts() {
	h := &PostsHandler{
		UserService: r.UserService,
		PostService: r.PostService,
		FeedService: r.FeedService,
	}

	r.Mux.Handle("POST /v1/posts", r.authenticated(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/feed", r.authenticated(h.HandleFeed, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/explore", r.authenticated(h.HandleExplore, httpx.LenientLimit))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{
		UserService:   r.UserService,
		FollowService: r.FollowService,
		FeedService:   r.FeedService,
	}

	r.Mux.Handle("GET /v1/users/{username}", r.authenticated(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/users/{username}/posts", r.authenticated(h.HandlePosts, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/users/{username}/followers", r.authenticated(h.HandleFollowers, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/users/{username}/following", r.authenticated(h.HandleFollowing, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/users/{username}/follow", r.authenticated(h.HandleFollow, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/users/{username}/follow", r.authenticated(h.HandleUnfollow, httpx.ModerateLimit))
}

func (r *Router) registerPassword() {
	h := &PasswordHandler{PasswordResetService: r.PasswordResetService}

	// Keyed by email as well so one client cannot flood a single inbox
	r.Mux.Handle("POST /v1/password/reset-request",
		httpx.Chain(http.HandlerFunc(h.HandleRequest),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("GET /v1/password/reset/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleCheck),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/password/reset",
		httpx.Chain(http.HandlerFunc(h.HandleComplete),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Probes and scrapes - monitoring systems may poll frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /metrics",
		httpx.Chain(httpx.MetricsHandler(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
