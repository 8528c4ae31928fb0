package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-be/internal/auth"
	"github.com/bistroboss/bistro-be/internal/config"
	"github.com/bistroboss/bistro-be/internal/http/handlers"
	"github.com/bistroboss/bistro-be/internal/middleware"
	"github.com/bistroboss/bistro-be/internal/processor"
	"github.com/bistroboss/bistro-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires the guard, handlers, and middleware, and returns a ready server.
func New(cfg config.Config, store storage.Store, intents processor.IntentCreator, log zerolog.Logger) *Server {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	guard := auth.NewGuard(tokens, store, log)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewTokenHandler(tokens, log).Register(mux)
	handlers.NewUsersHandler(store, guard, log).Register(mux)
	handlers.NewMenuHandler(store, guard, log).Register(mux)
	handlers.NewReviewsHandler(store, log).Register(mux)
	handlers.NewCartsHandler(store, guard, log).Register(mux)
	handlers.NewPaymentsHandler(store, store, intents, guard, log).Register(mux)
	handlers.NewStatsHandler(store, store, store, guard, log).Register(mux)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(log, mux))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
