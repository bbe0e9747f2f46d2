package web

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes() {
	// Form
	s.App.Get("/", s.Index)
	s.App.Post("/", s.Submit)

	// JSON
	s.App.Get("/api/query", s.Query)
	s.App.Get("/healthz", s.Health)

	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{})))
}
