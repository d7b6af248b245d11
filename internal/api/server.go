package api

import (
	"context"
	"net/http"
	"time"

	"hexbot-palette/internal/ui"
)

// Server wraps the HTTP server for the palette API
type Server struct {
	server *http.Server
}

func NewServer(addr string, handler http.Handler) *Server {
	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Addr returns the listen address.
func (s *Server) Addr() string { return s.server.Addr }

// Start begins serving the API (non-blocking)
func (s *Server) Start() {
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			ui.LogStatus("error", "API server error: "+err.Error())
		}
	}()
}

// Shutdown gracefully stops the API server
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
