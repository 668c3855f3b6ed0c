package rest

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ricmershon/dwellio-sub005/internal/config"
	"github.com/ricmershon/dwellio-sub005/internal/transport/dataloader"
	"github.com/ricmershon/dwellio-sub005/internal/transport/middleware"
)

// RouterConfig wires handlers and middleware dependencies into one server
// handler.
type RouterConfig struct {
	Logger      *slog.Logger
	Health      *HealthHandler
	Auth        *AuthHandler
	User        *UserHandler
	Property    *PropertyHandler
	Message     *MessageHandler
	Validator   middleware.TokenValidator
	Loaders     *dataloader.Repos
	RateLimiter *middleware.RateLimiter
	RateLimit   config.RateLimitConfig
	CORS        config.CORSConfig
	TrustProxy  bool
}

// NewRouter registers every route and wraps the mux in the middleware chain:
// Recovery, RequestID, ClientIP, Logger, Metrics, CORS, Auth and DataLoaders.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	authLimit := cfg.RateLimiter.Limit("auth", cfg.RateLimit.AuthPerMinute)

	mux.HandleFunc("GET /live", cfg.Health.Live)
	mux.HandleFunc("GET /ready", cfg.Health.Ready)
	mux.HandleFunc("GET /health", cfg.Health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.Handle("POST /auth/register", authLimit.Then(cfg.Auth.Register))
	mux.Handle("POST /auth/login/password", authLimit.Then(cfg.Auth.LoginWithPassword))
	mux.Handle("POST /auth/login/google", authLimit.Then(cfg.Auth.LoginWithGoogle))
	mux.HandleFunc("GET /auth/me", cfg.Auth.Me)

	mux.HandleFunc("GET /users/me", cfg.User.Profile)
	mux.HandleFunc("PATCH /users/me", cfg.User.UpdateProfile)
	mux.HandleFunc("GET /users/me/properties", cfg.Property.ListMine)
	mux.HandleFunc("GET /users/me/bookmarks", cfg.Property.ListBookmarks)

	mux.HandleFunc("GET /properties", cfg.Property.Search)
	mux.HandleFunc("POST /properties", cfg.Property.Create)
	mux.HandleFunc("GET /properties/{id}", cfg.Property.Get)
	mux.HandleFunc("DELETE /properties/{id}", cfg.Property.Delete)
	mux.HandleFunc("POST /properties/{id}/bookmark", cfg.Property.ToggleBookmark)
	mux.HandleFunc("GET /properties/{id}/bookmark", cfg.Property.BookmarkStatus)

	mux.HandleFunc("POST /messages", cfg.Message.Send)
	mux.HandleFunc("GET /messages", cfg.Message.List)
	mux.HandleFunc("GET /messages/unread-count", cfg.Message.UnreadCount)
	mux.HandleFunc("PATCH /messages/{id}/read", cfg.Message.ToggleRead)
	mux.HandleFunc("DELETE /messages/{id}", cfg.Message.Delete)

	chain := middleware.Chain(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.ClientIP(cfg.TrustProxy),
		middleware.Logger(cfg.Logger),
		middleware.Metrics(mux),
		middleware.CORS(cfg.CORS),
		middleware.Auth(cfg.Validator),
		dataloader.Middleware(cfg.Loaders),
	)
	return chain(mux)
}
