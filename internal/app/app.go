package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/scriptbook-backend/internal/adapter/postgres"
	scriptrepo "github.com/heartmarshall/scriptbook-backend/internal/adapter/postgres/script"
	"github.com/heartmarshall/scriptbook-backend/internal/config"
	scriptsvc "github.com/heartmarshall/scriptbook-backend/internal/service/script"
	"github.com/heartmarshall/scriptbook-backend/internal/transport/rest"
)

// Run is the API server entry point. It loads configuration, connects to
// PostgreSQL, applies migrations when enabled, and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	pool, err := postgres.Open(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	handler := NewHandler(cfg, logger, pool)

	ln, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.Addr(), err)
	}

	return Serve(ctx, logger, NewHTTPServer(cfg.Server, handler), ln, cfg.Server.ShutdownTimeout)
}

// NewHandler wires repository, service and transport on top of pool.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) http.Handler {
	repo := scriptrepo.New(pool, postgres.NewTxManager(pool))
	svc := scriptsvc.NewService(logger, repo)

	return rest.NewRouter(rest.RouterDeps{
		Scripts: rest.NewScriptHandler(svc, logger),
		Health:  rest.NewHealthHandler(BuildVersion(), rest.Check{Name: "database", Ping: pool.Ping}),
		CORS:    cfg.CORS,
		Logger:  logger,
	})
}

// NewHTTPServer applies the configured transport timeouts to handler.
func NewHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// Serve runs srv on ln until ctx is done, then drains in-flight requests
// for at most shutdownTimeout. A listener failure stops the group early.
func Serve(ctx context.Context, logger *slog.Logger, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("http server stopped")
	return nil
}
