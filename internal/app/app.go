// Package app wires configuration, storage, services, and the HTTP server
// into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/flashdeck/flashdeck-backend/internal/adapter/postgres"
	cardrepo "github.com/flashdeck/flashdeck-backend/internal/adapter/postgres/card"
	deckrepo "github.com/flashdeck/flashdeck-backend/internal/adapter/postgres/deck"
	reviewlogrepo "github.com/flashdeck/flashdeck-backend/internal/adapter/postgres/reviewlog"
	tokenrepo "github.com/flashdeck/flashdeck-backend/internal/adapter/postgres/token"
	userrepo "github.com/flashdeck/flashdeck-backend/internal/adapter/postgres/user"
	userdocrepo "github.com/flashdeck/flashdeck-backend/internal/adapter/postgres/userdoc"
	"github.com/flashdeck/flashdeck-backend/internal/auth"
	"github.com/flashdeck/flashdeck-backend/internal/config"
	authsvc "github.com/flashdeck/flashdeck-backend/internal/service/auth"
	statssvc "github.com/flashdeck/flashdeck-backend/internal/service/stats"
	syncsvc "github.com/flashdeck/flashdeck-backend/internal/service/sync"
	"github.com/flashdeck/flashdeck-backend/internal/transport/middleware"
	"github.com/flashdeck/flashdeck-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, runs migrations, wires the services, and serves HTTP until
// the context is cancelled by a termination signal.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	decks := deckrepo.New(pool)
	cards := cardrepo.New(pool)
	reviews := reviewlogrepo.New(pool)
	docs := userdocrepo.New(pool)
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	syncService := syncsvc.NewService(logger, decks, cards, reviews, docs, txManager)
	authService := authsvc.NewService(logger, users, tokens, jwtManager, cfg.Auth)
	statsService := statssvc.NewService(logger, reviews, decks, cards)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Sync:      rest.NewSyncHandler(syncService, cfg.Sync, logger),
		Auth:      rest.NewAuthHandler(authService, logger),
		Stats:     rest.NewStatsHandler(statsService, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Tokens:    authService,
		Limiter:   limiter,
		Logger:    logger,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
