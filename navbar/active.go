package navbar

import "strings"

// rootPath only matches itself, otherwise every link would be active on every page.
const rootPath = "/"

// IsActive reports whether url belongs to the page being viewed: it equals the
// active path, or it is a literal prefix of the active path and not the root.
// Matching is case sensitive and does no normalization.
func (r *Renderer) IsActive(url string) bool {
	if url == r.activePath {
		return true
	}

	return url != rootPath && strings.HasPrefix(r.activePath, url)
}
