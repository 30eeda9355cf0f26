package template

import (
	"io"
)

// TemplateRenderer is the compile-and-render contract the templated benchmark
// path depends on.
type TemplateRenderer interface {
	// Render executes a named template, or treats name as inline template
	// content when it carries template markup.
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	// Compile locates and parses a template without executing it so that
	// missing or broken templates surface before any timing starts.
	Compile(name string) error
}
