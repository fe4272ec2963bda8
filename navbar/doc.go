// Package navbar renders Bootstrap navigation bars from a declarative description.
//
// A Renderer owns one navbar configuration. It is filled through setters and
// adders and turned into a markup fragment by Render. Invalid theme and fixed
// position values are replaced by safe defaults and reported as warnings on the
// configured zerolog logger; invalid container widths and breakpoints are
// replaced silently.
//
// The page currently being viewed is supplied by an injected PathProvider,
// the renderer never reaches into request state on its own.
package navbar
