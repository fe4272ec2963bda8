package navbar

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// newTestRenderer returns a renderer logging into the returned buffer.
func newTestRenderer(opts ...Option) (*Renderer, *bytes.Buffer) {
	var buf bytes.Buffer

	opts = append([]Option{WithLogger(zerolog.New(&buf))}, opts...)

	return New(opts...), &buf
}

// logLines counts the events written to a test logger buffer.
func logLines(buf *bytes.Buffer) int {
	return strings.Count(buf.String(), "\n")
}

func parse(t *testing.T, markup string) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)

	return doc
}

// findAll returns the matching descendants of n, n itself excluded.
func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var (
		found    []*html.Node
		traverse func(*html.Node)
	)

	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			found = append(found, n)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		traverse(c)
	}

	return found
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}

	return "", false
}

func hasClass(n *html.Node, class string) bool {
	v, _ := attr(n, "class")

	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}

	return false
}

func tag(name string, classes ...string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Data != name {
			return false
		}

		for _, c := range classes {
			if !hasClass(n, c) {
				return false
			}
		}

		return true
	}
}

// children returns the element children of n with the given tag.
func children(n *html.Node, name string) []*html.Node {
	var out []*html.Node

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == name {
			out = append(out, c)
		}
	}

	return out
}

func text(n *html.Node) string {
	var b strings.Builder

	for _, t := range findText(n) {
		b.WriteString(t)
	}

	return strings.TrimSpace(b.String())
}

func findText(n *html.Node) []string {
	if n.Type == html.TextNode {
		return []string{n.Data}
	}

	var out []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, findText(c)...)
	}

	return out
}
