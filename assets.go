package bootform

import (
	"embed"
	"io/fs"
)

//go:embed assets/*.css
var embeddedAssets embed.FS

// AssetsFS exposes the stylesheet that complements the rendered markup
// (required label markers, plaintext focus) so applications can serve it:
//
//	mux.Handle("/bootform/",
//	  http.StripPrefix("/bootform/",
//	    http.FileServerFS(bootform.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

// Stylesheet returns the embedded stylesheet contents.
func Stylesheet() string {
	data, err := fs.ReadFile(embeddedAssets, "assets/bootform.css")
	if err != nil {
		return ""
	}
	return string(data)
}
