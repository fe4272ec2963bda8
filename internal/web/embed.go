package web

import (
	"embed"
	"io/fs"
)

var (
	//go:embed static/*
	embeddedStaticFiles embed.FS

	//go:embed templates/*
	embeddedTemplates embed.FS
)

// templatesFS returns the embedded templates rooted at the templates directory,
// so template names match the ones used in dev mode from disk.
func templatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic("web: embedded templates missing: " + err.Error())
	}

	return sub
}
