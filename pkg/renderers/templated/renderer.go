// Package templated renders tables through a template engine. The engine is
// reached only through rendertemplate.TemplateRenderer so any compile and
// render capable engine can be benchmarked; the pongo2 adapter is the default.
package templated

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-tplbench/pkg/bencherr"
	"github.com/goliatone/go-tplbench/pkg/render"
	rendertemplate "github.com/goliatone/go-tplbench/pkg/render/template"
	"github.com/goliatone/go-tplbench/pkg/render/template/gotemplate"
	"github.com/goliatone/go-tplbench/pkg/render/template/gotmpl"
	"github.com/goliatone/go-tplbench/pkg/table"
)

const (
	// Name is the registry name of the templated renderer.
	Name = "template"
	// NameUnescaped runs the bundled template with autoescaping off.
	NameUnescaped = "template-unescaped"
	// NameGoTemplate runs through the go-template engine.
	NameGoTemplate = "template-gotemplate"
	// DefaultContextKey is the context key the table is bound to.
	DefaultContextKey = "tab"
)

// Engine selects which template engine adapter New builds.
type Engine string

const (
	EnginePongo2     Engine = "pongo2"
	EngineGoTemplate Engine = "go-template"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateDir      string
	templateRenderer rendertemplate.TemplateRenderer
	templateName     string
	contextKey       string
	extension        string
	engine           Engine
	name             string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk instead of the
// bundled set.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templateDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTemplateName selects the template to execute. Inline template content
// is accepted as well.
func WithTemplateName(name string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(name) != "" {
			cfg.templateName = name
		}
	}
}

// WithExtension sets the file extension appended to template names that
// lack one. Defaults to ".tmpl".
func WithExtension(ext string) Option {
	return func(cfg *config) {
		if ext = strings.TrimSpace(ext); ext != "" {
			cfg.extension = ext
		}
	}
}

// WithoutExtension uses the template name as the exact file name, for
// template files that have no extension.
func WithoutExtension() Option {
	return func(cfg *config) {
		cfg.extension = ""
	}
}

// WithEngine selects the engine adapter used when no renderer is injected.
func WithEngine(engine Engine) Option {
	return func(cfg *config) {
		if engine != "" {
			cfg.engine = engine
		}
	}
}

// WithName overrides the registry name, so several templated renderers can
// be registered side by side.
func WithName(name string) Option {
	return func(cfg *config) {
		if name = strings.TrimSpace(name); name != "" {
			cfg.name = name
		}
	}
}

// WithContextKey changes the key the table is bound to in the template
// context.
func WithContextKey(key string) Option {
	return func(cfg *config) {
		if key = strings.TrimSpace(key); key != "" {
			cfg.contextKey = key
		}
	}
}

// Renderer is a render.Renderer backed by a template engine.
type Renderer struct {
	id         string
	templates  rendertemplate.TemplateRenderer
	name       string
	contextKey string
}

var (
	_ render.Renderer = (*Renderer)(nil)
	_ render.Preparer = (*Renderer)(nil)
)

// New constructs the templated renderer. Engine construction failures are
// configuration errors.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:   TemplatesFS(),
		templateName: DefaultTemplate,
		contextKey:   DefaultContextKey,
		extension:    ".tmpl",
		engine:       EnginePongo2,
		name:         Name,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := newEngine(cfg)
		if err != nil {
			return nil, bencherr.Configuration(err, "templated: configure %s template renderer", cfg.engine)
		}
		renderer = engine
	}

	return &Renderer{
		id:         cfg.name,
		templates:  renderer,
		name:       cfg.templateName,
		contextKey: cfg.contextKey,
	}, nil
}

func (r *Renderer) Name() string {
	return r.id
}

func (r *Renderer) ContentType() string {
	return render.ContentTypeHTML
}

// Template returns the template identifier this renderer executes.
func (r *Renderer) Template() string {
	return r.name
}

// Prepare locates and compiles the template once, ahead of any timing.
func (r *Renderer) Prepare() error {
	if r.templates == nil {
		return bencherr.Configuration(nil, "templated: template renderer is nil")
	}
	if err := r.templates.Compile(r.name); err != nil {
		return bencherr.Configuration(err, "templated: compile template %q", shortName(r.name))
	}
	return nil
}

// Render binds the table under the context key and executes the template.
func (r *Renderer) Render(tbl table.Table) (string, error) {
	if r.templates == nil {
		return "", fmt.Errorf("templated: template renderer is nil")
	}

	result, err := r.templates.Render(r.name, map[string]any{
		r.contextKey: tbl,
	})
	if err != nil {
		return "", fmt.Errorf("templated: render template %q: %w", shortName(r.name), err)
	}
	return result, nil
}

func newEngine(cfg config) (rendertemplate.TemplateRenderer, error) {
	switch cfg.engine {
	case EnginePongo2:
		opts := []gotemplate.Option{gotemplate.WithExtension(cfg.extension)}
		if cfg.extension == "" {
			opts = append(opts, gotemplate.WithoutExtension())
		}
		if cfg.templateDir != "" {
			opts = append(opts, gotemplate.WithBaseDir(cfg.templateDir))
		} else {
			opts = append(opts, gotemplate.WithFS(cfg.templateFS))
		}
		return gotemplate.New(opts...)
	case EngineGoTemplate:
		opts := []gotmpl.Option{gotmpl.WithExtension(cfg.extension)}
		if cfg.extension == "" {
			opts = append(opts, gotmpl.WithoutExtension())
		}
		if cfg.templateDir != "" {
			opts = append(opts, gotmpl.WithBaseDir(cfg.templateDir))
		} else {
			opts = append(opts, gotmpl.WithFS(cfg.templateFS))
		}
		return gotmpl.New(opts...)
	default:
		return nil, fmt.Errorf("templated: unknown engine %q", cfg.engine)
	}
}

// shortName keeps error messages readable when the identifier is inline
// template content.
func shortName(name string) string {
	if gotemplate.IsTemplateContent(name) {
		return "<inline>"
	}
	return name
}
