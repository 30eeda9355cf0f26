package templated

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

const (
	// DefaultTemplate names the bundled table template.
	DefaultTemplate = "bigtable"
	// UnescapedTemplate is DefaultTemplate with autoescaping turned off.
	UnescapedTemplate = "bigtable-unescaped"
	// NumericTemplate formats cells through floatformat, for engines that
	// hand numbers to pongo2 as float64 after a JSON round trip.
	NumericTemplate = "bigtable-numeric"
)

// TemplatesFS exposes the bundled templates rooted at the templates directory.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
