package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-tplbench/pkg/bencherr"
)

// Format selects how results are written.
type Format string

const (
	// FormatText writes one "<label>: <mean> ms" line per result.
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format. Empty defaults to FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", bencherr.InvalidArgument("bench: unknown report format %q (expected text|json|yaml)", s)
	}
}

// FormatLine renders a single text report line.
func FormatLine(r Result) string {
	return fmt.Sprintf("%s: %.3f ms", r.Label, r.MeanMillis)
}

// WriteReport writes results to w in the requested format.
func WriteReport(w io.Writer, results []Result, format Format) error {
	switch format {
	case FormatText, "":
		for _, r := range results {
			if _, err := fmt.Fprintln(w, FormatLine(r)); err != nil {
				return fmt.Errorf("bench: write report: %w", err)
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("bench: encode json report: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("bench: encode yaml report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("bench: encode yaml report: %w", err)
		}
		return nil
	default:
		return bencherr.InvalidArgument("bench: unknown report format %q", format)
	}
}
