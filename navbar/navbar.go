package navbar

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// PathProvider returns the path component of the request being served.
type PathProvider func() string

// RequestPath returns a PathProvider reading the path of r.
// A nil request yields an empty path.
func RequestPath(r *http.Request) PathProvider {
	return func() string {
		if r == nil || r.URL == nil {
			return ""
		}

		return r.URL.Path
	}
}

// Renderer builds the markup of one navbar.
//
// Render, IsActive, WriteTo and Component only read the configuration and are
// safe for concurrent use as long as no setter runs at the same time. Use
// Clone to derive a per-request copy instead of mutating a shared Renderer.
type Renderer struct {
	brand      Brand
	theme      Theme
	fixed      Position
	container  ContainerWidth
	breakpoint Breakpoint
	items      []MenuItem
	classes    []string
	search     *SearchForm
	activePath string
	collapseID string

	positionalIDs bool

	paths  PathProvider
	logger zerolog.Logger
}

// Option configures a Renderer at construction time.
type Option func(*Renderer)

// WithPathProvider sets the source of the default active path.
func WithPathProvider(p PathProvider) Option {
	return func(r *Renderer) {
		r.paths = p
	}
}

// WithLogger sets the logger receiving configuration diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Renderer) {
		r.logger = l
	}
}

// WithCollapseID overrides the id of the collapsible panel.
// Needed when more than one navbar is placed on the same page.
func WithCollapseID(id string) Option {
	return func(r *Renderer) {
		if id != "" {
			r.collapseID = id
		}
	}
}

// WithPositionalIDs disables the random dropdown ids. Dropdowns without an
// explicit ID are then named after their position in the tree, e.g.
// navbarDropdown-0-1, so the same configuration always renders the same bytes.
func WithPositionalIDs() Option {
	return func(r *Renderer) {
		r.positionalIDs = true
	}
}

// New creates a Renderer with the default configuration: light theme, not fixed,
// fluid container, expanded from lg, no brand, no items and no search form.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		brand:      Brand{URL: DefaultBrandURL},
		theme:      ThemeLight,
		fixed:      PositionNone,
		container:  ContainerFluid,
		breakpoint: BreakpointLG,
		collapseID: DefaultCollapseID,
		logger:     log.Logger,
	}

	for _, opt := range opts {
		opt(r)
	}

	r.ResetActivePath()

	return r
}

// Clone returns an independent copy of the renderer.
func (r *Renderer) Clone() *Renderer {
	c := *r
	c.items = cloneItems(r.items)
	c.classes = append([]string(nil), r.classes...)

	if r.search != nil {
		s := *r.search
		c.search = &s
	}

	return &c
}

// ForPath returns a copy of the renderer whose active path comes from p.
func (r *Renderer) ForPath(p PathProvider) *Renderer {
	c := r.Clone()
	c.paths = p
	c.ResetActivePath()

	return c
}

// resolvePath asks the provider for the current path.
// A missing provider, or one that panics outside of a request, yields "".
func (r *Renderer) resolvePath() (path string) {
	if r.paths == nil {
		return ""
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Debug().Interface("panic", rec).Msg("navbar: path provider unavailable, using empty active path")

			path = ""
		}
	}()

	return r.paths()
}
