package assets

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Static returns the bundled front-end files rooted at static/, so
// "js/script.js" is served as /static/js/script.js.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("assets: static directory missing from build: " + err.Error())
	}

	return sub
}
