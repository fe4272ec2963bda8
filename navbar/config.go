package navbar

import (
	"github.com/GoPowerDNS-Admin/go-bsnav/internal/uniuri"
)

// SetBrand sets the brand block. An empty url is stored as "#".
// With neither name nor image the brand is not rendered.
func (r *Renderer) SetBrand(name, url, image string) {
	if url == "" {
		url = DefaultBrandURL
	}

	r.brand = Brand{Name: name, URL: url, Image: image}
}

// SetTheme sets the color theme. Values other than "light" and "dark" fall back
// to light and are reported as a warning.
func (r *Renderer) SetTheme(theme string) {
	t, ok := validThemes[theme]
	if !ok {
		r.logger.Warn().
			Str("theme", theme).
			Str("fallback", string(ThemeLight)).
			Msg("navbar: invalid theme, defaulting to light")

		t = ThemeLight
	}

	r.theme = t
}

// SetFixed pins the navbar to "top" or "bottom". Any other value, the empty
// string included, is reported as a warning and leaves the navbar unpinned.
func (r *Renderer) SetFixed(position string) {
	p, ok := validPositions[position]
	if !ok {
		r.logger.Warn().
			Str("position", position).
			Str("fallback", "none").
			Msg("navbar: invalid fixed position, navbar will not be fixed")

		p = PositionNone
	}

	r.fixed = p
}

// SetContainerWidth selects the container class. Unknown widths silently fall
// back to fluid.
func (r *Renderer) SetContainerWidth(width string) {
	c, ok := validContainers[width]
	if !ok {
		c = ContainerFluid
	}

	r.container = c
}

// SetExpandBreakpoint selects the breakpoint from which the menu is expanded.
// Unknown breakpoints silently fall back to lg.
func (r *Renderer) SetExpandBreakpoint(bp string) {
	b, ok := validBreakpoints[bp]
	if !ok {
		b = BreakpointLG
	}

	r.breakpoint = b
}

// AddMenuItem appends a top level item.
func (r *Renderer) AddMenuItem(label, url string, opts ...ItemOption) {
	item := MenuItem{Label: label, URL: url}
	for _, opt := range opts {
		opt(&item)
	}

	r.AddItem(item)
}

// AddItem appends prebuilt top level items. The items are copied, dropdowns
// without an ID get a generated one unless WithPositionalIDs is set.
func (r *Renderer) AddItem(items ...MenuItem) {
	for _, item := range items {
		c := item.clone()
		if !r.positionalIDs {
			assignIDs(&c)
		}

		r.items = append(r.items, c)
	}
}

// assignIDs gives every dropdown in the tree an id unless it already has one.
func assignIDs(item *MenuItem) {
	if !item.HasSubmenu() {
		return
	}

	if item.ID == "" {
		item.ID = dropdownIDPrefix + uniuri.NewLen(dropdownIDLen)
	}

	for i := range item.Submenu {
		assignIDs(&item.Submenu[i])
	}
}

// AddSearchForm enables the search form. Empty texts default to "Search".
func (r *Renderer) AddSearchForm(placeholder, buttonText string) {
	if placeholder == "" {
		placeholder = DefaultSearchText
	}

	if buttonText == "" {
		buttonText = DefaultSearchText
	}

	r.search = &SearchForm{Placeholder: placeholder, ButtonText: buttonText}
}

// AddCustomClass appends a class to the nav element.
func (r *Renderer) AddCustomClass(class string) {
	r.classes = append(r.classes, class)
}

// SetActivePath overrides the path used to highlight the active link.
func (r *Renderer) SetActivePath(path string) {
	r.activePath = path
}

// ResetActivePath derives the active path from the path provider again.
func (r *Renderer) ResetActivePath() {
	r.activePath = r.resolvePath()
}

// Brand returns the brand configuration.
func (r *Renderer) Brand() Brand {
	return r.brand
}

// Theme returns the effective theme.
func (r *Renderer) Theme() Theme {
	return r.theme
}

// Fixed returns the effective fixed position, PositionNone when not fixed.
func (r *Renderer) Fixed() Position {
	return r.fixed
}

// ContainerClass returns the css class of the container element.
func (r *Renderer) ContainerClass() string {
	return "container-" + string(r.container)
}

// ExpandClass returns the navbar-expand class for the configured breakpoint.
func (r *Renderer) ExpandClass() string {
	return "navbar-expand-" + string(r.breakpoint)
}

// ActivePath returns the path used for active link matching.
func (r *Renderer) ActivePath() string {
	return r.activePath
}

// MenuItems returns a copy of the top level items.
func (r *Renderer) MenuItems() []MenuItem {
	return cloneItems(r.items)
}

// SearchForm returns the search form configuration, nil when none was added.
func (r *Renderer) SearchForm() *SearchForm {
	if r.search == nil {
		return nil
	}

	s := *r.search

	return &s
}
