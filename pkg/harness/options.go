package harness

import (
	"io/fs"
	"log/slog"
	"strings"

	"github.com/goliatone/go-tplbench/pkg/render"
	"github.com/goliatone/go-tplbench/pkg/table"
)

// Option customises the harness configuration.
type Option func(*Harness)

// WithRows sets the number of rows in the generated table.
func WithRows(n int) Option {
	return func(h *Harness) {
		h.rows = n
	}
}

// WithColumns sets the number of generated columns (keys a, b, ... with
// values 1..n). Ignored when WithColumnSpec is also given.
func WithColumns(n int) Option {
	return func(h *Harness) {
		h.columns = n
	}
}

// WithColumnSpec supplies an explicit column spec.
func WithColumnSpec(columns []table.Column) Option {
	return func(h *Harness) {
		h.columnSpec = append([]table.Column(nil), columns...)
	}
}

// WithIterations sets the timed calls per renderer.
func WithIterations(n int) Option {
	return func(h *Harness) {
		h.iterations = n
	}
}

// WithWarmup sets the untimed calls per renderer made before timing.
func WithWarmup(n int) Option {
	return func(h *Harness) {
		h.warmup = n
	}
}

// WithTemplate identifies the template artifact: a bundled template name, a
// path to a template file on disk, or inline template content.
func WithTemplate(identifier string) Option {
	return func(h *Harness) {
		h.template = strings.TrimSpace(identifier)
	}
}

// WithTemplatesFS replaces the bundled template set used for named templates.
func WithTemplatesFS(files fs.FS) Option {
	return func(h *Harness) {
		h.templatesFS = files
	}
}

// WithRenderers selects which registered renderers run, in order.
func WithRenderers(names ...string) Option {
	return func(h *Harness) {
		var cleaned []string
		for _, name := range names {
			if name = strings.TrimSpace(name); name != "" {
				cleaned = append(cleaned, name)
			}
		}
		if len(cleaned) > 0 {
			h.renderers = cleaned
		}
	}
}

// WithVerify toggles the pre-timing check that all selected renderers produce
// the same cells for a small fixture.
func WithVerify(enabled bool) Option {
	return func(h *Harness) {
		h.verify = enabled
	}
}

// WithLogger routes harness and driver logging.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// WithRegistry injects a renderer registry. No built-in renderers are added
// to an injected registry.
func WithRegistry(registry *render.Registry) Option {
	return func(h *Harness) {
		h.registry = registry
	}
}
