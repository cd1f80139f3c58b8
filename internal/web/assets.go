// Package web serves the embedded browser assets.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Static returns the embedded static file tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// FileServer serves the embedded static files.
func FileServer() http.Handler {
	return http.FileServer(http.FS(Static()))
}
