package template

import "io"

// TemplateRenderer executes a named template from the renderer's bundle.
// The output is returned and also copied into every writer supplied.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
}
