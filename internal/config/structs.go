package config

import (
	"github.com/GoPowerDNS-Admin/go-bsnav/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool       `toml:"devMode"` // reload preview templates from disk
	Title     string     `toml:"title"`
	Log       logger.Log `toml:"log"`
	Webserver Webserver  `toml:"webserver"`
	Navbar    Navbar     `toml:"navbar"`
}

// Webserver implements the preview server settings.
type Webserver struct {
	CacheEnabled bool   `toml:"cacheEnabled"` // send Cache-Control on preview pages
	Port         int    `toml:"port"`         // listening port
	ShutDownTime int    `toml:"shutDownTime"` // seconds to wait before shutdown
	URL          string `toml:"url"`          // public base url
}

// Navbar is the navbar description as written in the config file.
// Values are applied through the navbar setters, so invalid enum values fall
// back exactly like they do for programmatic use.
type Navbar struct {
	Brand      Brand      `toml:"brand"`
	Theme      string     `toml:"theme"`
	Fixed      string     `toml:"fixed"`
	Container  string     `toml:"container"`
	Breakpoint string     `toml:"breakpoint"`
	CollapseID string     `toml:"collapseId"`
	ActivePath string     `toml:"activePath"`
	Classes    []string   `toml:"classes"`
	Search     *Search    `toml:"search"`
	Items      []MenuItem `toml:"items" validate:"dive"`
}

// Brand of the navbar.
type Brand struct {
	Name  string `toml:"name"`
	URL   string `toml:"url"`
	Image string `toml:"image"`
}

// Search enables the search form.
type Search struct {
	Placeholder string `toml:"placeholder"`
	ButtonText  string `toml:"buttonText"`
}

// MenuItem is one entry of the menu tree. Only the label is required, an
// empty url renders an empty href like the programmatic API does.
type MenuItem struct {
	ID          string     `toml:"id"`
	Label       string     `toml:"label" validate:"required"`
	URL         string     `toml:"url"`
	Icon        string     `toml:"icon"`
	CustomClass string     `toml:"class"`
	Submenu     []MenuItem `toml:"submenu" validate:"dive"`
}
