package template_test

import (
	"embed"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-tplbench/pkg/render/template/gotemplate"
	"github.com/goliatone/go-tplbench/pkg/testsupport"
)

//go:embed testdata/templates/*.tmpl
var embeddedTemplates embed.FS

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "<Ada>"}, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "hello.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_RendersTableRows(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.Render("rows", map[string]any{"tab": testsupport.SmallTable()})
	if err != nil {
		t.Fatalf("render rows: %v", err)
	}

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "rows.golden"))
	if result != want {
		t.Fatalf("render rows mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_RenderInlineContent(t *testing.T) {
	engine := newEngine(t)
	inline := "{% for row in tab %}{{ row.Cells|length }},{% endfor %}"

	for i := 0; i < 2; i++ {
		result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
			return engine.Render(inline, map[string]any{"tab": testsupport.SmallTable()}, w)
		})
		if result != "3,3," || written != result {
			t.Fatalf("call %d: unexpected inline output %q (written %q)", i, result, written)
		}
	}
}

func TestGoTemplateEngine_GlobalData(t *testing.T) {
	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	engine, err := gotemplate.New(
		gotemplate.WithFS(templatesFS),
		gotemplate.WithGlobalData(map[string]any{" env ": "staging"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	result, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "env=staging" {
		t.Fatalf("expected global value, got %q", result)
	}
}

func TestGoTemplateEngine_CompileFailures(t *testing.T) {
	engine := newEngine(t)

	if err := engine.Compile("hello"); err != nil {
		t.Fatalf("compile hello: %v", err)
	}
	if err := engine.Compile("hello.tmpl"); err != nil {
		t.Fatalf("compile with extension: %v", err)
	}

	err := engine.Compile("missing")
	if err == nil || !strings.Contains(err.Error(), "missing.tmpl") {
		t.Fatalf("expected load error naming missing.tmpl, got %v", err)
	}
	if err := engine.Compile("broken"); err == nil {
		t.Fatalf("expected parse error for broken template")
	}
	if err := engine.Compile("{% if %}"); err == nil {
		t.Fatalf("expected parse error for broken inline template")
	}
}

func TestGoTemplateEngine_RejectsUnsupportedContext(t *testing.T) {
	engine := newEngine(t)

	_, err := engine.RenderTemplate("hello", struct{ Name string }{Name: "Ada"})
	if err == nil || !strings.Contains(err.Error(), "unsupported context type") {
		t.Fatalf("expected unsupported context error, got %v", err)
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func TestGoTemplateEngine_BaseDir(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithBaseDir(filepath.Join("testdata", "templates")))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	result, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hello Ada!" {
		t.Fatalf("unexpected output %q", result)
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
