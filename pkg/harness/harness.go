package harness

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goliatone/go-tplbench/pkg/bench"
	"github.com/goliatone/go-tplbench/pkg/bencherr"
	"github.com/goliatone/go-tplbench/pkg/render"
	"github.com/goliatone/go-tplbench/pkg/render/template/gotemplate"
	"github.com/goliatone/go-tplbench/pkg/renderers/direct"
	"github.com/goliatone/go-tplbench/pkg/renderers/templated"
	"github.com/goliatone/go-tplbench/pkg/table"
)

const (
	DefaultRows    = 1000
	DefaultColumns = 10
)

// DefaultRenderers is the renderer selection used when none is given.
var DefaultRenderers = []string{direct.StrategyBuilder.Name(), templated.Name}

// Harness coordinates a benchmark run. It applies defaults for anything not
// configured so a bare New() reproduces the classic benchmark.
type Harness struct {
	rows        int
	columns     int
	columnSpec  []table.Column
	iterations  int
	warmup      int
	template    string
	templatesFS fs.FS
	renderers   []string
	verify      bool
	logger      *slog.Logger
	registry    *render.Registry
}

// New constructs a Harness applying any provided options.
func New(options ...Option) *Harness {
	h := &Harness{
		rows:       DefaultRows,
		columns:    DefaultColumns,
		iterations: bench.DefaultIterations,
		warmup:     bench.DefaultWarmup,
		template:   templated.DefaultTemplate,
		renderers:  append([]string(nil), DefaultRenderers...),
		verify:     true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(h)
	}
	h.applyDefaults()
	return h
}

func (h *Harness) applyDefaults() {
	if h.logger == nil {
		h.logger = slog.Default()
	}
	if h.template == "" {
		h.template = templated.DefaultTemplate
	}
	if h.registry == nil {
		h.registry = render.NewRegistry()
		for _, r := range direct.All() {
			h.registry.MustRegister(r)
		}
		h.registry.MustRegister(h.templatedRenderer(templated.Name, templated.EnginePongo2, templated.DefaultTemplate))
		h.registry.MustRegister(h.templatedRenderer(templated.NameUnescaped, templated.EnginePongo2, templated.UnescapedTemplate))
		h.registry.MustRegister(h.templatedRenderer(templated.NameGoTemplate, templated.EngineGoTemplate, templated.NumericTemplate))
	}
}

// templatedRenderer builds a template-backed renderer. bundled is the
// template it runs while the default template is configured; any other
// template identifier applies to every templated renderer. Construction
// failures are deferred to Prepare so they only matter when the renderer is
// actually selected.
func (h *Harness) templatedRenderer(name string, engine templated.Engine, bundled string) render.Renderer {
	opts := []templated.Option{templated.WithName(name), templated.WithEngine(engine)}
	opts = append(opts, h.templateOptions(bundled)...)

	r, err := templated.New(opts...)
	if err != nil {
		return unavailable{name: name, err: err}
	}
	return r
}

func (h *Harness) templateOptions(bundled string) []templated.Option {
	id := h.template
	if id == templated.DefaultTemplate {
		id = bundled
	}
	if !gotemplate.IsTemplateContent(id) {
		if info, err := os.Stat(id); err == nil && info.Mode().IsRegular() {
			opts := []templated.Option{
				templated.WithTemplatesDir(filepath.Dir(id)),
				templated.WithTemplateName(filepath.Base(id)),
			}
			if ext := filepath.Ext(id); ext != "" {
				opts = append(opts, templated.WithExtension(ext))
			} else {
				opts = append(opts, templated.WithoutExtension())
			}
			return opts
		}
	}
	opts := []templated.Option{templated.WithTemplateName(id)}
	if h.templatesFS != nil {
		opts = append(opts, templated.WithTemplatesFS(h.templatesFS))
	}
	return opts
}

// Renderers lists the registered renderer names.
func (h *Harness) Renderers() []string {
	return h.registry.List()
}

// Run validates the configuration, generates the table once and benchmarks
// the selected renderers in order.
func (h *Harness) Run() ([]bench.Result, error) {
	if h.rows <= 0 {
		return nil, bencherr.InvalidArgument("harness: rows must be positive, got %d", h.rows)
	}
	if h.columnSpec == nil && h.columns < 0 {
		return nil, bencherr.InvalidArgument("harness: columns must not be negative, got %d", h.columns)
	}

	renderers, err := h.registry.Select(h.renderers...)
	if err != nil {
		return nil, err
	}

	tbl, err := table.Generate(h.rows, h.columnSpecOrDefault())
	if err != nil {
		return nil, err
	}

	entries := make([]bench.Entry, 0, len(renderers))
	for _, r := range renderers {
		entries = append(entries, entryFor(r, tbl))
	}

	opts := []bench.Option{
		bench.WithIterations(h.iterations),
		bench.WithWarmup(h.warmup),
		bench.WithLogger(h.logger),
	}
	if h.verify {
		opts = append(opts, bench.WithPreflight(func() error {
			return verifyRenderers(renderers, tbl)
		}))
	}

	h.logger.Debug("running benchmark",
		"rows", len(tbl),
		"columns", len(h.columnSpecOrDefault()),
		"iterations", h.iterations,
		"warmup", h.warmup,
		"renderers", h.renderers,
		"template", displayTemplate(h.template),
	)

	return bench.Run(entries, opts...)
}

func (h *Harness) columnSpecOrDefault() []table.Column {
	if h.columnSpec != nil {
		return h.columnSpec
	}
	return table.DefaultColumns(h.columns)
}

func entryFor(r render.Renderer, tbl table.Table) bench.Entry {
	return bench.Entry{
		Label: r.Name(),
		Setup: func() error {
			return render.Prepare(r)
		},
		Render: func() (string, error) {
			return r.Render(tbl)
		},
	}
}

func displayTemplate(id string) string {
	if gotemplate.IsTemplateContent(id) {
		return "<inline>"
	}
	return id
}

// unavailable stands in for a renderer that could not be constructed.
type unavailable struct {
	name string
	err  error
}

func (u unavailable) Name() string        { return u.name }
func (u unavailable) ContentType() string { return render.ContentTypeHTML }
func (u unavailable) Prepare() error      { return u.err }
func (u unavailable) Render(table.Table) (string, error) {
	return "", u.err
}
