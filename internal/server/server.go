package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"ybbus/internal/config"
	"ybbus/internal/handler"
)

// Server is the HTTP server for the itinerary API.
type Server struct {
	mux     *http.ServeMux
	cfg     *config.Config
	logger  *slog.Logger
	handler *handler.Handler
	ready   chan struct{} // closed when the network snapshot is loaded
}

// New creates a new Server with all routes registered.
func New(cfg *config.Config, h *handler.Handler, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/search", h.Search)
	mux.HandleFunc("POST /api/query", h.Query)
	mux.HandleFunc("GET /api/stops/nearest", h.Nearest)
	mux.HandleFunc("GET /api/stops", h.StopList)
	mux.HandleFunc("GET /api/routes", h.RouteList)

	return &Server{
		mux:     mux,
		cfg:     cfg,
		logger:  logger,
		handler: h,
		ready:   make(chan struct{}),
	}
}

// SetReady signals that the snapshot is loaded and the API can serve.
func (s *Server) SetReady() {
	select {
	case <-s.ready:
		// already closed
	default:
		close(s.ready)
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.logger.Info("server starting", "addr", addr)
	return http.ListenAndServe(addr, withMiddleware(s.mux, s.logger, s.ready))
}
