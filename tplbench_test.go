package tplbench_test

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	tplbench "github.com/goliatone/go-tplbench"
	"github.com/goliatone/go-tplbench/pkg/bench"
	"github.com/goliatone/go-tplbench/pkg/bencherr"
	"github.com/goliatone/go-tplbench/pkg/harness"
)

var reportLine = regexp.MustCompile(`^(direct|template): \d+\.\d{3} ms$`)

func TestRunAndReport_TextLines(t *testing.T) {
	var buf bytes.Buffer
	err := tplbench.RunAndReport(&buf, bench.FormatText,
		harness.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		harness.WithRows(100),
		harness.WithIterations(2),
	)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two report lines, got %q", buf.String())
	}
	for _, line := range lines {
		if !reportLine.MatchString(line) {
			t.Fatalf("unexpected report line %q", line)
		}
	}
	if !strings.HasPrefix(lines[0], "direct: ") || !strings.HasPrefix(lines[1], "template: ") {
		t.Fatalf("unexpected order: %q", lines)
	}
}

func TestRunAndReport_NothingWrittenOnFailure(t *testing.T) {
	var buf bytes.Buffer
	err := tplbench.RunAndReport(&buf, bench.FormatText,
		harness.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		harness.WithIterations(0),
	)
	if !errors.Is(err, bencherr.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	data, err := fs.ReadFile(tplbench.EmbeddedTemplates(), "bigtable.tmpl")
	if err != nil {
		t.Fatalf("read bundled template: %v", err)
	}
	if !strings.Contains(string(data), "{% for row in tab %}") {
		t.Fatalf("unexpected bundled template:\n%s", data)
	}
}
