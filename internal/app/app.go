package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/ricmershon/dwellio-sub005/internal/adapter/postgres"
	bookmarkrepo "github.com/ricmershon/dwellio-sub005/internal/adapter/postgres/bookmark"
	messagerepo "github.com/ricmershon/dwellio-sub005/internal/adapter/postgres/message"
	propertyrepo "github.com/ricmershon/dwellio-sub005/internal/adapter/postgres/property"
	userrepo "github.com/ricmershon/dwellio-sub005/internal/adapter/postgres/user"
	"github.com/ricmershon/dwellio-sub005/internal/adapter/provider/google"
	"github.com/ricmershon/dwellio-sub005/internal/auth"
	"github.com/ricmershon/dwellio-sub005/internal/config"
	authservice "github.com/ricmershon/dwellio-sub005/internal/service/auth"
	"github.com/ricmershon/dwellio-sub005/internal/service/message"
	"github.com/ricmershon/dwellio-sub005/internal/service/property"
	"github.com/ricmershon/dwellio-sub005/internal/service/user"
	"github.com/ricmershon/dwellio-sub005/internal/transport/dataloader"
	"github.com/ricmershon/dwellio-sub005/internal/transport/middleware"
	"github.com/ricmershon/dwellio-sub005/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("app: migrate: %w", err)
		}
	}

	// Repositories
	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	properties := propertyrepo.New(pool)
	bookmarks := bookmarkrepo.New(pool)
	messages := messagerepo.New(pool)

	// Services
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)
	sessions := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)

	var authSvc *authservice.Service
	if cfg.Auth.IsProviderAllowed("google") {
		verifier := google.NewVerifier(google.Config{
			ClientID:     cfg.Auth.GoogleClientID,
			ClientSecret: cfg.Auth.GoogleClientSecret,
			RedirectURI:  cfg.Auth.GoogleRedirectURI,
		}, logger)
		authSvc = authservice.NewService(logger, users, txm, hasher, verifier, sessions)
	} else {
		logger.Warn("google sign-in disabled: client credentials not configured")
		authSvc = authservice.NewService(logger, users, txm, hasher, nil, sessions)
	}

	userSvc := user.NewService(logger, users, txm)
	propertySvc := property.NewService(logger, properties, bookmarks, messages, txm, property.Paging{
		DefaultPageSize: cfg.Listings.DefaultPageSize,
		MaxPageSize:     cfg.Listings.MaxPageSize,
	})
	messageSvc := message.NewService(logger, messages, properties)

	// Transport
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.RouterConfig{
		Logger:      logger,
		Health:      rest.NewHealthHandler(pool, Version),
		Auth:        rest.NewAuthHandler(authSvc, logger),
		User:        rest.NewUserHandler(userSvc, logger),
		Property:    rest.NewPropertyHandler(propertySvc, logger),
		Message:     rest.NewMessageHandler(messageSvc, logger),
		Validator:   authSvc,
		Loaders:     &dataloader.Repos{User: users, Property: properties},
		RateLimiter: limiter,
		RateLimit:   cfg.RateLimit,
		CORS:        cfg.CORS,
		TrustProxy:  cfg.Server.TrustProxy,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then drains in-flight requests for at
// most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app: http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	return <-errCh
}
