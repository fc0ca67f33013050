// Package health runs the operational HTTP endpoint: liveness,
// readiness and prometheus metrics.
package health

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server is the operational HTTP server.
type Server struct {
	app    *fiber.App
	ready  func() error
	logger *zap.Logger
}

// NewServer creates the server. ready is consulted by /ready and
// should report whether the bot can reach its collaborators.
func NewServer(ready func() error, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
		IdleTimeout:           60 * time.Second,
		DisableStartupMessage: true,
	})

	s := &Server{app: app, ready: ready, logger: logger}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/ready", s.readyHandler)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return s
}

// Start listens on the given port and blocks until shutdown.
func (s *Server) Start(port string) error {
	s.logger.Info("health server listening", zap.String("port", port))
	return s.app.Listen(":" + port)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) readyHandler(c *fiber.Ctx) error {
	if err := s.ready(); err != nil {
		s.logger.Warn("readiness check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).SendString("not ready")
	}
	return c.SendString("ready")
}
