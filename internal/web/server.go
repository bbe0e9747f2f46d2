package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/template/html/v3"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bastiangx/wordglob/internal/logger"
	"github.com/bastiangx/wordglob/internal/metrics"
	"github.com/bastiangx/wordglob/pkg/config"
	"github.com/bastiangx/wordglob/pkg/dictionary"
)

//go:embed views
var viewsFS embed.FS

// Server wraps the Fiber app and configuration.
type Server struct {
	App *fiber.App
	Cfg *config.Config

	dict    *dictionary.Dictionary
	metrics *metrics.Metrics
	reg     *prometheus.Registry
	log     *log.Logger
}

// New creates a new server with middleware and routes configured.
// Metrics are registered on reg and served from it at /metrics.
func New(cfg *config.Config, dict *dictionary.Dictionary, reg *prometheus.Registry) (*Server, error) {
	views, err := fs.Sub(viewsFS, "views")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded views: %w", err)
	}
	engine := html.NewFileSystem(http.FS(views), ".html")
	engine.AddFunc("join", strings.Join)

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}

			return c.Status(code).Render("error", fiber.Map{
				"Title":     "Error",
				"SiteTitle": cfg.Web.Title,
				"Code":      code,
				"Message":   message,
			})
		},
	})

	app.Use(recover.New())
	if cfg.Web.AccessLog {
		app.Use(fiberlogger.New())
	}

	// Per IP, over a one minute window. Zero disables limiting.
	if cfg.Web.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.Web.RateLimit,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return jsonError(c, fiber.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			},
		}))
	}

	m := metrics.New(reg)
	m.SetDictionarySize(dict.Len())

	s := &Server{
		App:     app,
		Cfg:     cfg,
		dict:    dict,
		metrics: m,
		reg:     reg,
		log:     logger.New("web"),
	}
	s.RegisterRoutes()
	return s, nil
}

// Start listens on the configured address.
func (s *Server) Start() error {
	s.log.Infof("Starting server on %s", s.Cfg.Web.Addr)
	return s.App.Listen(s.Cfg.Web.Addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}
