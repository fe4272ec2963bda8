// Package daemon wires the logger, the configured navbar and the preview server.
package daemon

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/go-bsnav/internal/config"
	"github.com/GoPowerDNS-Admin/go-bsnav/internal/logger"
	"github.com/GoPowerDNS-Admin/go-bsnav/internal/web"
	"github.com/GoPowerDNS-Admin/go-bsnav/navbar"
)

// ErrNilConfig is returned when the daemon is created without configuration.
var ErrNilConfig = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	nav        *navbar.Renderer
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until it is shut down.
func (d *Daemon) Start() error {
	addr := ":" + strconv.Itoa(d.cfg.Webserver.Port)

	go d.webService.WaitShutdown()

	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting navbar preview server")

	return d.webService.Start(addr)
}

// Navbar returns the navbar built from the configuration.
func (d *Daemon) Navbar() *navbar.Renderer {
	return d.nav
}

// New creates a new Daemon instance with the provided configuration.
// The logger is initialized before the navbar is built so configuration
// diagnostics reach the configured outputs.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if err := logger.Init(cfg.Log); err != nil {
		return nil, errors.Wrap(err, "can't initialize logger")
	}

	nav := cfg.Navbar.Build()

	return &Daemon{
		cfg:        cfg,
		nav:        nav,
		webService: web.New(cfg, nav),
	}, nil
}
