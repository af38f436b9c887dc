package template

import (
	"embed"
	"io/fs"
)

//go:embed templates/run.py
var runScript string

//go:embed templates/gitignore
var gitIgnore string

//go:embed templates/*.tmpl
var embeddedFS embed.FS

// NextStepsTemplate is the name of the post-generation instructions template.
const NextStepsTemplate = "next_steps.md.tmpl"

// EmbeddedTemplates returns the renderable templates rooted at templates/.
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embeddedFS, "templates")
}
