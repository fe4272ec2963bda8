// Package preview serves pages showing the configured navbar for any path.
package preview

import (
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/go-bsnav/internal/config"
	"github.com/GoPowerDNS-Admin/go-bsnav/internal/web/handler"
	"github.com/GoPowerDNS-Admin/go-bsnav/internal/web/navigation"
	"github.com/GoPowerDNS-Admin/go-bsnav/navbar"
)

const (
	// TemplateName is the name of the preview page template.
	TemplateName = "preview/index"

	// PathQuery is the query parameter overriding the active path of the fragment.
	PathQuery = "path"

	cacheControlEnabled  = "public, max-age=60"
	cacheControlDisabled = "no-store"

	routePage     = "page"
	routeFragment = "fragment"
)

// renders counts rendered navbars per route.
var renders = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Namespace: "bsnav",
		Name:      "navbar_renders_total",
		Help:      "Number of rendered navbars, differentiated by route.",
	},
	[]string{"route"},
)

// Service is the preview handler service.
type Service struct {
	cfg *config.Config
	nav *navbar.Renderer
}

// Handler is the preview handler.
var Handler = Service{}

var _ handler.Service = (*Service)(nil)

// Init registers the fragment and the catch-all preview page. Every app gets
// its own service bound to cfg and nav, the receiver is left untouched.
func (*Service) Init(app *fiber.App, cfg *config.Config, nav *navbar.Renderer) {
	if app == nil || cfg == nil || nav == nil {
		log.Fatal().Msg(handler.ErrNilFatalLogMsg)
		return
	}

	s := &Service{cfg: cfg, nav: nav}

	app.Get(handler.FragmentPath, s.Fragment)
	app.Get("/*", s.Get)
}

// forRequest returns a copy of the navbar whose active path is the request path.
func (s *Service) forRequest(c *fiber.Ctx) *navbar.Renderer {
	return s.nav.ForPath(func() string {
		return c.Path()
	})
}

// Get renders the preview page for the requested path.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := s.forRequest(c)
	ctx := navigation.FromMenu(s.cfg.Title, nav)

	renders.WithLabelValues(routePage).Inc()
	s.setCacheControl(c)

	return c.Render(TemplateName, fiber.Map{
		"Title":  s.cfg.Title,
		"Nav":    ctx,
		"Navbar": template.HTML(nav.Render()), //nolint:gosec // user input is escaped by the renderer
	}, handler.BaseLayout)
}

// Fragment returns the bare navbar markup. The active path is taken from the
// path query parameter, or left empty.
func (s *Service) Fragment(c *fiber.Ctx) error {
	path := c.Query(PathQuery)
	nav := s.nav.ForPath(func() string {
		return path
	})

	renders.WithLabelValues(routeFragment).Inc()
	s.setCacheControl(c)
	c.Type("html", "utf-8")

	_, err := nav.WriteTo(c)

	return err
}

func (s *Service) setCacheControl(c *fiber.Ctx) {
	if s.cfg.Webserver.CacheEnabled {
		c.Set(fiber.HeaderCacheControl, cacheControlEnabled)
		return
	}

	c.Set(fiber.HeaderCacheControl, cacheControlDisabled)
}
