// Package app provides the top-level application lifecycle for the multi
// builder backend. It wires the dataset, the optional cache, the services,
// and the HTTP server, and blocks until the process is told to stop.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/config"
	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/server"
	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/server/handler"
	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/service"
)

// Version is reported by the root endpoint.
const Version = "1.0.0"

// shutdownTimeout bounds how long in-flight requests may run after the stop
// signal.
const shutdownTimeout = 10 * time.Second

// App is the root application object. It owns the configuration, logger,
// and a list of cleanup functions called in reverse order on shutdown.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	closers []func()
}

// New creates a new App from the given configuration and logger.
func New(cfg *config.Config, logger *slog.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "app")),
	}
}

// Run wires all dependencies, starts the HTTP server, and blocks until the
// context is cancelled or the server fails. The dataset load acts as the
// startup barrier: no request is accepted before it completes, and a load
// failure aborts the process instead of serving partial data.
func (a *App) Run(ctx context.Context) error {
	deps, cleanup, err := Wire(ctx, a.cfg, a.logger)
	if err != nil {
		return fmt.Errorf("app: wire dependencies: %w", err)
	}
	a.closers = append(a.closers, cleanup)

	recSvc := service.NewRecommendationService(deps.Dataset, deps.RecommendationCache, a.logger)
	multiSvc := service.NewMultiBetService(a.logger)
	statsSvc := service.NewStatsService(deps.Dataset, a.logger)

	fixtures := make([]handler.Fixture, 0, len(a.cfg.Matches))
	for _, m := range a.cfg.Matches {
		fixtures = append(fixtures, handler.Fixture{Home: m.Home, Away: m.Away})
	}

	handlers := server.Handlers{
		Meta:            handler.NewMetaHandler(Version, deps.Dataset, a.logger),
		Teams:           handler.NewTeamsHandler(a.cfg.Teams, fixtures, a.logger),
		Stats:           handler.NewStatsHandler(statsSvc, a.logger),
		Recommendations: handler.NewRecommendationHandler(recSvc, deps.Dataset, a.logger),
		MultiBet:        handler.NewMultiBetHandler(multiSvc, a.logger),
	}

	srv := server.NewServer(server.Config{
		Port:        a.cfg.Server.Port,
		CORSOrigins: a.cfg.Server.CORSOrigins,
	}, handlers, a.logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Close tears down all resources in reverse registration order. Safe to
// call multiple times; subsequent calls are no-ops.
func (a *App) Close() {
	a.logger.Info("shutting down application")
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
