package output

import (
	"bytes"
	"embed"
	"html/template"
	"path/filepath"

	"github.com/jenian/i18ngrd/internal/analyzer"
	"github.com/jenian/i18ngrd/internal/localefile"
	"github.com/jenian/i18ngrd/internal/suggest"
)

//go:embed templates/*
var templatesFS embed.FS

type htmlOccurrence struct {
	File    string
	Line    int
	Dialect string
}

type htmlMissingKey struct {
	Key         string
	Occurrences []htmlOccurrence
	Suggestion  *suggest.Suggestion
}

type htmlUnusedKey struct {
	Key         string
	Definitions []localefile.Definition
}

type htmlReport struct {
	Missing      []htmlMissingKey
	Unused       []htmlUnusedKey
	FixRequested bool
}

// dialectLabel maps a source file extension to a display name for the
// HTML report.
func dialectLabel(path string) string {
	switch filepath.Ext(path) {
	case ".py":
		return "Python"
	case ".js":
		return "JavaScript"
	case ".ts":
		return "TypeScript"
	case ".vue":
		return "Vue"
	default:
		return ""
	}
}

// RenderHTML formats the reconciliation results as an HTML document
// covering the same information set as the text report: one table per
// section, a preformatted suggestion block per missing key, and an
// explicit none-found element replacing an empty table.
func RenderHTML(result analyzer.ScanResult, suggestions map[string]suggest.Suggestion, fix bool) (string, error) {
	report := htmlReport{FixRequested: fix}

	for _, key := range result.MissingKeys() {
		entry := htmlMissingKey{Key: key}
		for _, usage := range result.Missing[key] {
			entry.Occurrences = append(entry.Occurrences, htmlOccurrence{
				File:    usage.File,
				Line:    usage.Line,
				Dialect: dialectLabel(usage.File),
			})
		}
		if fix {
			if sug, ok := suggestions[key]; ok {
				s := sug
				entry.Suggestion = &s
			}
		}
		report.Missing = append(report.Missing, entry)
	}

	for _, key := range result.Unused {
		report.Unused = append(report.Unused, htmlUnusedKey{
			Key:         key,
			Definitions: result.Definitions[key],
		})
	}

	tmpl, err := template.ParseFS(templatesFS, "templates/report.html.tmpl")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, report); err != nil {
		return "", err
	}
	return buf.String(), nil
}
