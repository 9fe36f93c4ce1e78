package output

import (
	"fmt"
	"strings"

	"github.com/jenian/i18ngrd/internal/analyzer"
	"github.com/jenian/i18ngrd/internal/suggest"
)

const (
	reportBanner = "======================================================\n" +
		"          i18n INTERNATIONALIZATION REPORT\n" +
		"======================================================\n\n"
	sectionRule = "------------------------------------------------------\n"
)

// RenderText formats the reconciliation results as a plain-text report.
// Keys are listed in sorted order in both sections; empty sections get
// an explicit sentinel line. Suggestions are included per missing key
// when fix was requested and a suggestion exists.
func RenderText(result analyzer.ScanResult, suggestions map[string]suggest.Suggestion, fix bool) string {
	var b strings.Builder
	b.WriteString(reportBanner)

	b.WriteString("MISSING KEYS (Used in Code but Not in JSON):\n")
	b.WriteString(sectionRule)
	missingKeys := result.MissingKeys()
	if len(missingKeys) == 0 {
		b.WriteString("No missing keys found!\n\n")
	}
	for _, key := range missingKeys {
		fmt.Fprintf(&b, "Missing Key: %s\n", key)
		b.WriteString("   Used in:\n")
		for _, usage := range result.Missing[key] {
			fmt.Fprintf(&b, "   - %s:%d -> %s\n", usage.File, usage.Line, usage.Snippet)
		}
		if fix {
			if sug, ok := suggestions[key]; ok {
				b.WriteString("\n   Suggestion to fix:\n")
				fmt.Fprintf(&b, "   Add to %s:\n%s\n", sug.TargetFile, sug.JSON)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("UNUSED KEYS (Present in JSON but Not Used in Code):\n")
	b.WriteString(sectionRule)
	if len(result.Unused) == 0 {
		b.WriteString("No unused keys found!\n\n")
	}
	for _, key := range result.Unused {
		fmt.Fprintf(&b, "Unused Key: %s\n", key)
		b.WriteString("   Defined in:\n")
		for _, def := range result.Definitions[key] {
			fmt.Fprintf(&b, "   - %s (%s)\n", def.File, def.Language)
		}
		b.WriteString("\n")
	}

	return b.String()
}
