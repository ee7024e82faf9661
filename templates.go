package bootform

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// Template names resolved by RenderDefinition.
const (
	TemplateForm     = "form"
	TemplateDocument = "document"
)

// EmbeddedTemplates exposes the built-in form and document layouts so
// callers can copy or extend them.
func EmbeddedTemplates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
