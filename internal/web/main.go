// Package web implements the preview server hosting the generated navbar.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/go-bsnav/internal/config"
	accesslog "github.com/GoPowerDNS-Admin/go-bsnav/internal/logger/adapter/fiber"
	"github.com/GoPowerDNS-Admin/go-bsnav/internal/web/handler"
	"github.com/GoPowerDNS-Admin/go-bsnav/internal/web/handler/preview"
	"github.com/GoPowerDNS-Admin/go-bsnav/navbar"
)

// devTemplateDir is read instead of the embedded templates in dev mode.
const devTemplateDir = "./internal/web/templates"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address and blocks until it stops.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan error, 1)

	s.alive.Store(true)

	go func() {
		err := s.App.Listen(addr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Str("addr", addr).Msg("fiber listen error")
		}

		doneFiber <- err
	}()

	// wait for fiber to stop
	if err := <-doneFiber; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err //nolint:wrapcheck
	}

	return nil
}

// Alive reports whether the service accepts traffic.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the server down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown lets load balancers drop the instance, then stops the http server.
func (s *Service) Shutdown() {
	// checkalive answers 503 from now on
	s.alive.Store(false)

	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this instance from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates the preview web service for the given navbar.
func New(cfg *config.Config, nav *navbar.Renderer) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if nav == nil {
		panic("navbar cannot be nil")
	}

	templateEngine := html.NewFileSystem(http.FS(templatesFS()), ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New(devTemplateDir, ".gohtml")
		templateEngine.Reload(true)

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	app := fiber.New(
		fiber.Config{
			AppName:               cfg.Title,
			CaseSensitive:         true,
			Immutable:             true,
			DisableStartupMessage: true,
			Views:                 templateEngine,
		},
	)

	service := &Service{
		cfg: cfg,
		App: app,
	}

	app.Use(accesslog.New(accesslog.Config{
		Config:    cfg.Log,
		SkipPaths: []string{handler.MetricsPath, handler.CheckAlivePath},
	}))

	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     false,
			},
		),
	)

	app.Get(handler.CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.Alive() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})

	app.Get(handler.MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// catch-all preview route, registered last
	preview.Handler.Init(app, cfg, nav)

	return service
}
