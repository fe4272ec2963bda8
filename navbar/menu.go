package navbar

import (
	"strconv"
	"strings"
)

func (r *Renderer) writeMenuItems(b *strings.Builder) {
	for i := range r.items {
		item := &r.items[i]
		key := strconv.Itoa(i)

		if item.HasSubmenu() {
			r.writeDropdown(b, item, key)
		} else {
			r.writeNavItem(b, item)
		}
	}
}

// writeNavItem renders a top level link.
func (r *Renderer) writeNavItem(b *strings.Builder, item *MenuItem) {
	b.WriteString(`<li class="nav-item`)
	writeExtraClass(b, item.CustomClass)
	b.WriteString("\">\n")

	r.writeLink(b, "nav-link", item)

	b.WriteString("</li>\n")
}

// writeDropdown renders a top level dropdown and its nested list.
func (r *Renderer) writeDropdown(b *strings.Builder, item *MenuItem, key string) {
	b.WriteString(`<li class="nav-item dropdown`)
	writeExtraClass(b, item.CustomClass)
	b.WriteString("\">\n")

	r.writeToggle(b, "nav-link dropdown-toggle", item, key)
	r.writeSubmenu(b, item, key)

	b.WriteString("</li>\n")
}

// writeSubmenuEntry renders one entry of a dropdown list. Entries carrying their
// own submenu recurse into another dropdown-submenu block.
func (r *Renderer) writeSubmenuEntry(b *strings.Builder, item *MenuItem, key string) {
	if item.HasSubmenu() {
		b.WriteString(`<li class="dropdown-submenu`)
		writeExtraClass(b, item.CustomClass)
		b.WriteString("\">\n")

		r.writeToggle(b, "dropdown-item dropdown-toggle", item, key)
		r.writeSubmenu(b, item, key)

		b.WriteString("</li>\n")

		return
	}

	if item.CustomClass != "" {
		b.WriteString(`<li class="`)
		b.WriteString(esc(item.CustomClass))
		b.WriteString(`">`)
	} else {
		b.WriteString("<li>")
	}

	r.writeLink(b, "dropdown-item", item)

	b.WriteString("</li>\n")
}

func (r *Renderer) writeSubmenu(b *strings.Builder, item *MenuItem, key string) {
	b.WriteString(`<ul class="dropdown-menu" aria-labelledby="`)
	b.WriteString(esc(dropdownID(item, key)))
	b.WriteString("\">\n")

	for i := range item.Submenu {
		r.writeSubmenuEntry(b, &item.Submenu[i], key+"-"+strconv.Itoa(i))
	}

	b.WriteString("</ul>\n")
}

// writeLink renders a navigating anchor.
func (r *Renderer) writeLink(b *strings.Builder, class string, item *MenuItem) {
	active := r.IsActive(item.URL)

	b.WriteString(`<a class="`)
	b.WriteString(class)

	if active {
		b.WriteString(" active")
	}

	b.WriteString(`" href="`)
	b.WriteString(esc(item.URL))
	b.WriteString(`"`)

	if active {
		b.WriteString(` aria-current="page"`)
	}

	b.WriteString(">")
	writeLabel(b, item)
	b.WriteString("</a>\n")
}

// writeToggle renders the non navigating anchor opening a dropdown.
func (r *Renderer) writeToggle(b *strings.Builder, class string, item *MenuItem, key string) {
	b.WriteString(`<a class="`)
	b.WriteString(class)

	if r.IsActive(item.URL) {
		b.WriteString(" active")
	}

	b.WriteString(`" href="#" id="`)
	b.WriteString(esc(dropdownID(item, key)))
	b.WriteString(`" role="button" data-bs-toggle="dropdown" aria-expanded="false">`)
	writeLabel(b, item)
	b.WriteString("</a>\n")
}

func writeLabel(b *strings.Builder, item *MenuItem) {
	if item.Icon != "" {
		b.WriteString(`<i class="`)
		b.WriteString(esc(item.Icon))
		b.WriteString(` me-1"></i>`)
	}

	b.WriteString(esc(item.Label))
}

func writeExtraClass(b *strings.Builder, class string) {
	if class == "" {
		return
	}

	b.WriteString(" ")
	b.WriteString(esc(class))
}

// dropdownID returns the item's id, or one derived from its position in the
// tree for items that never went through the adders.
func dropdownID(item *MenuItem, key string) string {
	if item.ID != "" {
		return item.ID
	}

	return dropdownIDPrefix + key
}
