package navbar

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Component adapts the renderer to a templ.Component so the navbar can be
// embedded in templ layouts with @nav.Component().
func (r *Renderer) Component() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := r.WriteTo(w)

		return err
	})
}
