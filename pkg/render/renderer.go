package render

import (
	"github.com/goliatone/go-tplbench/pkg/table"
)

// ContentTypeHTML is reported by every HTML table renderer.
const ContentTypeHTML = "text/html; charset=utf-8"

// Renderer turns a table into its HTML form. Implementations must return a
// freshly built string on every call; the benchmark measures that rebuild.
type Renderer interface {
	Name() string
	ContentType() string
	Render(tbl table.Table) (string, error)
}

// Preparer is implemented by renderers that need one-off setup (locating and
// compiling a template) before they can be timed.
type Preparer interface {
	Prepare() error
}

// Prepare runs r's setup when it has any.
func Prepare(r Renderer) error {
	if p, ok := r.(Preparer); ok {
		return p.Prepare()
	}
	return nil
}
