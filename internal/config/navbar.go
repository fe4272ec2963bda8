package config

import (
	"github.com/GoPowerDNS-Admin/go-bsnav/navbar"
)

// Build creates a renderer from the navbar description.
// Empty enum values keep the renderer defaults instead of triggering a fallback warning.
func (n *Navbar) Build(opts ...navbar.Option) *navbar.Renderer {
	nav := navbar.New(append([]navbar.Option{navbar.WithCollapseID(n.CollapseID)}, opts...)...)

	nav.SetBrand(n.Brand.Name, n.Brand.URL, n.Brand.Image)

	if n.Theme != "" {
		nav.SetTheme(n.Theme)
	}

	if n.Fixed != "" {
		nav.SetFixed(n.Fixed)
	}

	if n.Container != "" {
		nav.SetContainerWidth(n.Container)
	}

	if n.Breakpoint != "" {
		nav.SetExpandBreakpoint(n.Breakpoint)
	}

	for _, class := range n.Classes {
		nav.AddCustomClass(class)
	}

	if n.Search != nil {
		nav.AddSearchForm(n.Search.Placeholder, n.Search.ButtonText)
	}

	nav.AddItem(menuItems(n.Items)...)

	if n.ActivePath != "" {
		nav.SetActivePath(n.ActivePath)
	}

	return nav
}

func menuItems(items []MenuItem) []navbar.MenuItem {
	if len(items) == 0 {
		return nil
	}

	out := make([]navbar.MenuItem, 0, len(items))
	for _, item := range items {
		out = append(out, navbar.MenuItem{
			ID:          item.ID,
			Label:       item.Label,
			URL:         item.URL,
			Icon:        item.Icon,
			CustomClass: item.CustomClass,
			Submenu:     menuItems(item.Submenu),
		})
	}

	return out
}
