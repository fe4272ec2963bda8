package navbar

// Theme is the navbar color scheme.
type Theme string

const (
	// ThemeLight renders navbar-light bg-light.
	ThemeLight Theme = "light"
	// ThemeDark renders navbar-dark bg-dark.
	ThemeDark Theme = "dark"
)

// Position is the fixed placement of the navbar.
type Position string

const (
	// PositionNone leaves the navbar in the document flow.
	PositionNone Position = ""
	// PositionTop pins the navbar to the top of the viewport.
	PositionTop Position = "top"
	// PositionBottom pins the navbar to the bottom of the viewport.
	PositionBottom Position = "bottom"
)

// ContainerWidth selects the container class wrapping the navbar content.
type ContainerWidth string

// Container widths.
const (
	ContainerFluid ContainerWidth = "fluid"
	ContainerSM    ContainerWidth = "sm"
	ContainerMD    ContainerWidth = "md"
	ContainerLG    ContainerWidth = "lg"
	ContainerXL    ContainerWidth = "xl"
	ContainerXXL   ContainerWidth = "xxl"
)

// Breakpoint is the responsive width above which the menu is expanded.
type Breakpoint string

// Breakpoints.
const (
	BreakpointSM  Breakpoint = "sm"
	BreakpointMD  Breakpoint = "md"
	BreakpointLG  Breakpoint = "lg"
	BreakpointXL  Breakpoint = "xl"
	BreakpointXXL Breakpoint = "xxl"
)

const (
	// DefaultBrandURL is used when SetBrand receives an empty url.
	DefaultBrandURL = "#"

	// DefaultSearchText is the placeholder and button text of a search form
	// added with empty values.
	DefaultSearchText = "Search"

	// DefaultCollapseID is the id of the collapsible panel the toggler controls.
	DefaultCollapseID = "navbarContent"

	// dropdownIDPrefix prefixes every generated dropdown toggle id.
	dropdownIDPrefix = "navbarDropdown-"

	// dropdownIDLen is the length of the random part of a dropdown id.
	dropdownIDLen = 8
)

var (
	validThemes = map[string]Theme{
		string(ThemeLight): ThemeLight,
		string(ThemeDark):  ThemeDark,
	}

	validPositions = map[string]Position{
		string(PositionTop):    PositionTop,
		string(PositionBottom): PositionBottom,
	}

	validContainers = map[string]ContainerWidth{
		string(ContainerFluid): ContainerFluid,
		string(ContainerSM):    ContainerSM,
		string(ContainerMD):    ContainerMD,
		string(ContainerLG):    ContainerLG,
		string(ContainerXL):    ContainerXL,
		string(ContainerXXL):   ContainerXXL,
	}

	validBreakpoints = map[string]Breakpoint{
		string(BreakpointSM):  BreakpointSM,
		string(BreakpointMD):  BreakpointMD,
		string(BreakpointLG):  BreakpointLG,
		string(BreakpointXL):  BreakpointXL,
		string(BreakpointXXL): BreakpointXXL,
	}
)

// Brand is the logo/name block on the left of the navbar.
type Brand struct {
	Name  string
	URL   string
	Image string
}

// SearchForm holds the texts of the optional search form.
type SearchForm struct {
	Placeholder string
	ButtonText  string
}

// MenuItem is a node of the menu tree.
// An item with an empty Submenu is rendered as a plain link, otherwise as a dropdown.
type MenuItem struct {
	// ID identifies the dropdown toggle. Generated when empty.
	ID string `json:"id,omitempty"`

	// Label is the display text.
	Label string `json:"label"`

	// URL is the link target, "#" for dropdown triggers that do not navigate.
	URL string `json:"url"`

	// Icon is an optional icon css class, e.g. "bi bi-house".
	Icon string `json:"icon,omitempty"`

	// CustomClass is appended to the class list of the item's list element.
	CustomClass string `json:"customClass,omitempty"`

	// Submenu holds the nested items. Items may nest to any depth.
	Submenu []MenuItem `json:"submenu,omitempty"`
}

// HasSubmenu reports whether the item renders as a dropdown.
func (m MenuItem) HasSubmenu() bool {
	return len(m.Submenu) > 0
}

// clone returns a deep copy of the item.
func (m MenuItem) clone() MenuItem {
	c := m
	if m.Submenu != nil {
		c.Submenu = cloneItems(m.Submenu)
	}

	return c
}

func cloneItems(items []MenuItem) []MenuItem {
	out := make([]MenuItem, len(items))
	for i := range items {
		out[i] = items[i].clone()
	}

	return out
}

// ItemOption configures a MenuItem added with AddMenuItem.
type ItemOption func(*MenuItem)

// WithSubmenu sets the nested items, turning the item into a dropdown.
func WithSubmenu(items ...MenuItem) ItemOption {
	return func(m *MenuItem) {
		m.Submenu = append(m.Submenu, items...)
	}
}

// WithIcon sets the icon css class.
func WithIcon(icon string) ItemOption {
	return func(m *MenuItem) {
		m.Icon = icon
	}
}

// WithCustomClass sets the class appended to the item's list element.
func WithCustomClass(class string) ItemOption {
	return func(m *MenuItem) {
		m.CustomClass = class
	}
}

// WithID sets a fixed dropdown id instead of a generated one.
func WithID(id string) ItemOption {
	return func(m *MenuItem) {
		m.ID = id
	}
}
