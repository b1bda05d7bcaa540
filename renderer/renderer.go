// Package renderer turns valuation results into markdown reports.
// The core computes, this package formats; nothing here touches the backend.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderValuation renders the Valuation view to a markdown string.
func RenderValuation(v *Valuation) string {
	partials := map[string]string{
		"valuation_title":    "valuation_title.md",
		"valuation_rows":     "valuation_rows.md",
		"valuation_failures": "valuation_failures.md",
	}
	return renderTemplate("valuation", "valuation.md", partials, v)
}

// RenderDividends renders the Dividends view to a markdown string.
func RenderDividends(d *Dividends) string {
	partials := map[string]string{
		"dividends_title":    "dividends_title.md",
		"dividends_rows":     "dividends_rows.md",
		"valuation_failures": "valuation_failures.md",
	}
	return renderTemplate("dividends", "dividends.md", partials, d)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, "templates/"+file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
