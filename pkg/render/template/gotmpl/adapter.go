// Package gotmpl adapts github.com/goliatone/go-template to the
// template.TemplateRenderer seam so it can be benchmarked next to the bare
// pongo2 adapter in package gotemplate.
package gotmpl

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-tplbench/pkg/render/template"
	"github.com/goliatone/go-tplbench/pkg/render/template/gotemplate"
)

const defaultExtension = ".tmpl"

// Option configures the go-template adapter before construction.
type Option func(*config)

type config struct {
	baseDir   string
	templates fs.FS
	extension string
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the extension appended to bare template names.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithoutExtension uses template names exactly as given. go-template always
// appends an extension, so such files are read by the adapter and rendered
// as template content.
func WithoutExtension() Option {
	return func(cfg *config) {
		cfg.extension = ""
	}
}

// renderer is the subset of the go-template engine the adapter drives.
type renderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}

// Engine satisfies template.TemplateRenderer on top of go-template.
type Engine struct {
	renderer renderer

	files fs.FS
	mu    sync.RWMutex
	raw   map[string]string
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs the go-template engine for the configured template source.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: defaultExtension}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("gotmpl: need to provide either base dir or fs.FS")
	}

	var opts []gotemplatepkg.Option
	if cfg.baseDir != "" {
		opts = append(opts, gotemplatepkg.WithBaseDir(cfg.baseDir))
	}
	if cfg.templates != nil {
		opts = append(opts, gotemplatepkg.WithFS(cfg.templates))
	}
	if cfg.extension != "" {
		opts = append(opts, gotemplatepkg.WithExtension(cfg.extension))
	}

	r, err := gotemplatepkg.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("gotmpl: create renderer: %w", err)
	}

	engine := &Engine{renderer: r}
	if cfg.extension == "" {
		engine.raw = make(map[string]string)
		if cfg.templates != nil {
			engine.files = cfg.templates
		} else {
			engine.files = os.DirFS(cfg.baseDir)
		}
	}
	return engine, nil
}

// Render dispatches to RenderString for inline content and to RenderTemplate
// otherwise.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if gotemplate.IsTemplateContent(name) {
		return e.RenderString(name, data, out...)
	}
	return e.RenderTemplate(name, data, out...)
}

// RenderTemplate executes a named template.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.renderer == nil {
		return "", errors.New("gotmpl: engine is nil")
	}
	if e.raw != nil {
		content, err := e.rawTemplate(name)
		if err != nil {
			return "", err
		}
		return e.renderer.RenderString(content, data, out...)
	}
	return e.renderer.RenderTemplate(strings.TrimSpace(name), data, out...)
}

// RenderString executes inline template content.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.renderer == nil {
		return "", errors.New("gotmpl: engine is nil")
	}
	return e.renderer.RenderString(templateContent, data, out...)
}

// Compile performs the first load of a template by executing it once with an
// empty context, which leaves it in go-template's cache.
func (e *Engine) Compile(name string) error {
	if _, err := e.Render(name, map[string]any{}); err != nil {
		return fmt.Errorf("gotmpl: load template %q: %w", name, err)
	}
	return nil
}

func (e *Engine) rawTemplate(name string) (string, error) {
	name = strings.TrimSpace(name)

	e.mu.RLock()
	content, ok := e.raw[name]
	e.mu.RUnlock()
	if ok {
		return content, nil
	}

	data, err := fs.ReadFile(e.files, name)
	if err != nil {
		return "", fmt.Errorf("gotmpl: read template %q: %w", name, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.raw[name] = string(data)
	return string(data), nil
}
