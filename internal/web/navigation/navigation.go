// Package navigation derives page titles and breadcrumbs from the navbar menu.
package navigation

import (
	"github.com/GoPowerDNS-Admin/go-bsnav/navbar"
)

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string // empty for dropdown toggles that do not navigate
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	PageTitle   string
	ActivePath  string
	Breadcrumbs []BreadcrumbItem
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activePath string) *Context {
	return &Context{
		PageTitle:   pageTitle,
		ActivePath:  activePath,
		Breadcrumbs: make([]BreadcrumbItem, 0),
	}
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// Current returns the last breadcrumb, the page being viewed.
func (c *Context) Current() (BreadcrumbItem, bool) {
	if len(c.Breadcrumbs) == 0 {
		return BreadcrumbItem{}, false
	}

	return c.Breadcrumbs[len(c.Breadcrumbs)-1], true
}

// FromMenu builds the context for the renderer's active path. The breadcrumbs
// follow the menu tree down to the most specific active entry; when nothing
// matches, the trail is empty and title is used as page title.
func FromMenu(title string, nav *navbar.Renderer) *Context {
	ctx := NewContext(title, nav.ActivePath())

	trail := activeTrail(nav, nav.MenuItems(), nil, nil)
	for i, item := range trail {
		url := item.URL
		if item.HasSubmenu() && url == "#" {
			url = ""
		}

		ctx.AddBreadcrumb(item.Label, url, i == len(trail)-1)
	}

	if current, ok := ctx.Current(); ok {
		ctx.PageTitle = current.Title
	}

	return ctx
}

// activeTrail walks the tree depth first and returns the path to the active
// entry with the longest url. Earlier entries win ties.
func activeTrail(nav *navbar.Renderer, items []navbar.MenuItem, prefix, best []navbar.MenuItem) []navbar.MenuItem {
	for _, item := range items {
		trail := append(append([]navbar.MenuItem(nil), prefix...), item)

		if item.URL != "#" && nav.IsActive(item.URL) && longer(trail, best) {
			best = trail
		}

		if item.HasSubmenu() {
			best = activeTrail(nav, item.Submenu, trail, best)
		}
	}

	return best
}

func longer(trail, best []navbar.MenuItem) bool {
	if len(best) == 0 {
		return true
	}

	return len(trail[len(trail)-1].URL) > len(best[len(best)-1].URL)
}
