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

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/prize2pride-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prize2pride-backend/internal/adapter/postgres/example"
	"github.com/heartmarshall/prize2pride-backend/internal/auth"
	"github.com/heartmarshall/prize2pride-backend/internal/config"
	"github.com/heartmarshall/prize2pride-backend/internal/service/review"
	"github.com/heartmarshall/prize2pride-backend/internal/transport/middleware"
	"github.com/heartmarshall/prize2pride-backend/internal/transport/rest"
)

// rateLimitCleanup is how often idle rate limit buckets are dropped.
const rateLimitCleanup = 5 * time.Minute

// Run starts the review API server and blocks until ctx is cancelled or the
// server fails. In-flight requests get cfg.Server.ShutdownTimeout to finish.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateServer(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := NewLogger(cfg.Log, ServiceAPI)
	logger.Info("starting review api",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, postgres.AppReviewAPI)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	defer limiter.Stop()

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	examples := example.New(pool)
	reviewSvc := review.NewService(logger, examples, cfg.Review)

	router := rest.Router{
		Health: rest.NewHealthHandler(pool, examples, BuildVersion()),
		Review: rest.NewReviewHandler(reviewSvc, logger),
		Global: []middleware.Middleware{
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
			middleware.Auth(jwt),
			limiter.Limit(cfg.Server.RateLimit),
		},
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
