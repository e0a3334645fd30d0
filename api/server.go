// Package api serves the demo estimate and sales endpoints.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kriskaras/realtech-arv-v1/storage"
	"github.com/kriskaras/realtech-arv-v1/utils"
)

// Server wires the HTTP routes to the sale store.
type Server struct {
	store      storage.SaleReader
	logger     *utils.Logger
	salesLimit int
	router     *chi.Mux
}

// NewServer builds the router. salesLimit caps how many recent sales the
// listing endpoint returns.
func NewServer(store storage.SaleReader, logger *utils.Logger, salesLimit int) *Server {
	s := &Server{
		store:      store,
		logger:     logger,
		salesLimit: salesLimit,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/api/estimate", s.handleEstimate)
	r.Get("/api/sales", s.handleSales)

	s.router = r
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving HTTP on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("[api] Listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
