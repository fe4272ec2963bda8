package navbar

import (
	"html"
	"io"
	"strings"
)

// esc escapes user supplied text for use in element content and quoted attributes.
var esc = html.EscapeString

// Render returns the navbar markup fragment for the current configuration.
func (r *Renderer) Render() string {
	var b strings.Builder

	r.writeNav(&b)

	return b.String()
}

// WriteTo writes the rendered navbar to w.
func (r *Renderer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.Render())

	return int64(n), err
}

// NavClasses returns the class list of the nav element, empty entries removed.
func (r *Renderer) NavClasses() []string {
	classes := []string{
		"navbar",
		r.ExpandClass(),
		"navbar-" + string(r.theme),
		"bg-" + string(r.theme),
	}

	if r.fixed != PositionNone {
		classes = append(classes, "fixed-"+string(r.fixed))
	}

	for _, c := range r.classes {
		if c != "" {
			classes = append(classes, c)
		}
	}

	return classes
}

func (r *Renderer) writeNav(b *strings.Builder) {
	collapseID := esc(r.collapseID)

	b.WriteString(`<nav class="`)
	b.WriteString(esc(strings.Join(r.NavClasses(), " ")))
	b.WriteString("\">\n")

	b.WriteString(`<div class="`)
	b.WriteString(r.ContainerClass())
	b.WriteString("\">\n")

	r.writeBrand(b)

	b.WriteString(`<button class="navbar-toggler" type="button" data-bs-toggle="collapse" data-bs-target="#`)
	b.WriteString(collapseID)
	b.WriteString(`" aria-controls="`)
	b.WriteString(collapseID)
	b.WriteString(`" aria-expanded="false" aria-label="Toggle navigation">` + "\n")
	b.WriteString(`<span class="navbar-toggler-icon"></span>` + "\n")
	b.WriteString("</button>\n")

	b.WriteString(`<div class="collapse navbar-collapse" id="`)
	b.WriteString(collapseID)
	b.WriteString("\">\n")

	b.WriteString(`<ul class="navbar-nav me-auto mb-2 mb-`)
	b.WriteString(string(r.breakpoint))
	b.WriteString("-0\">\n")
	r.writeMenuItems(b)
	b.WriteString("</ul>\n")

	r.writeSearchForm(b)

	b.WriteString("</div>\n")
	b.WriteString("</div>\n")
	b.WriteString("</nav>")
}

func (r *Renderer) writeBrand(b *strings.Builder) {
	if r.brand.Name == "" && r.brand.Image == "" {
		return
	}

	b.WriteString(`<a class="navbar-brand" href="`)
	b.WriteString(esc(r.brand.URL))
	b.WriteString(`">`)

	if r.brand.Image != "" {
		b.WriteString(`<img src="`)
		b.WriteString(esc(r.brand.Image))
		b.WriteString(`" alt="`)
		b.WriteString(esc(r.brand.Name))
		b.WriteString(`" height="30" class="d-inline-block align-top me-2">`)
	}

	b.WriteString(esc(r.brand.Name))
	b.WriteString("</a>\n")
}

func (r *Renderer) writeSearchForm(b *strings.Builder) {
	if r.search == nil {
		return
	}

	b.WriteString(`<form class="d-flex" role="search">` + "\n")
	b.WriteString(`<input class="form-control me-2" type="search" placeholder="`)
	b.WriteString(esc(r.search.Placeholder))
	b.WriteString(`" aria-label="Search">` + "\n")
	b.WriteString(`<button class="btn btn-outline-success" type="submit">`)
	b.WriteString(esc(r.search.ButtonText))
	b.WriteString("</button>\n")
	b.WriteString("</form>\n")
}
