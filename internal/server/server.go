// Package server exposes the balance book, aggregation, and advisor over a
// REST API.
package server

import (
	"net/http"

	"github.com/varlikapp/varlik/internal/app"
	"github.com/varlikapp/varlik/internal/common"
)

// Server handles REST API requests.
type Server struct {
	app    *app.App
	logger *common.Logger
}

// New creates a new REST server on top of the app core.
func New(a *app.App) *Server {
	return &Server{app: a, logger: a.Logger}
}

// Handler builds the full handler chain: routes wrapped in auth, logging,
// CORS, and panic recovery.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.registerRoutes(mux)

	var h http.Handler = mux
	h = s.authMiddleware(h)
	h = loggingMiddleware(s.logger)(h)
	h = corsMiddleware(h)
	h = recoveryMiddleware(s.logger)(h)
	return h
}
