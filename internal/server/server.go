// Package server assembles the HTTP API: routing, middleware, and server
// lifecycle.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/server/handler"
	"github.com/mayurdhage31/BBL-MultiBuilder-backend/internal/server/middleware"
)

// Config holds the HTTP server configuration.
type Config struct {
	Port        int
	CORSOrigins []string
}

// Handlers aggregates every HTTP handler the server registers.
type Handlers struct {
	Meta            *handler.MetaHandler
	Teams           *handler.TeamsHandler
	Stats           *handler.StatsHandler
	Recommendations *handler.RecommendationHandler
	MultiBet        *handler.MultiBetHandler
}

// Server is the HTTP API server for the multi builder backend.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a Server with all routes registered and the middleware
// chain (request logging, CORS) applied.
func NewServer(cfg Config, handlers Handlers, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handlers.Meta.Root)
	mux.HandleFunc("GET /health", handlers.Meta.Health)

	mux.HandleFunc("GET /teams", handlers.Teams.ListTeams)
	mux.HandleFunc("GET /matches", handlers.Teams.ListMatches)

	mux.HandleFunc("GET /players/{team}", handlers.Stats.TeamPlayers)
	mux.HandleFunc("GET /player-stats/{player_name}", handlers.Stats.PlayerStats)
	mux.HandleFunc("GET /team-stats/{team_name}", handlers.Stats.TeamStats)
	mux.HandleFunc("GET /matchups", handlers.Stats.ListMatchups)
	mux.HandleFunc("GET /matchup-players", handlers.Stats.MatchupPlayers)

	mux.HandleFunc("POST /recommendations", handlers.Recommendations.Recommend)
	mux.HandleFunc("POST /build-multi", handlers.MultiBet.BuildMulti)

	var h http.Handler = mux
	h = middleware.Logging(logger)(h)
	h = middleware.CORS(cfg.CORSOrigins)(h)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: srv,
		logger:     logger,
	}
}

// Handler returns the fully assembled handler chain, for tests that drive
// the mux directly.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for HTTP requests. It blocks until the server
// encounters an error or is shut down.
func (s *Server) Start() error {
	s.logger.Info("server: starting",
		slog.String("addr", s.httpServer.Addr),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: listen: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// to complete within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server: shutting down")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
