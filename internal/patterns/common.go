// Package patterns holds the per-dialect tables of match rules that
// define what counts as a localization key reference. Each dialect is an
// ordered list of regular expressions applied line by line; this is a
// deliberate scope limit, not full-language parsing. The quoted-literal
// classes stop at the first closing quote, so a literal containing an
// escaped quote truncates the match.
package patterns

import "regexp"

// ForDialect returns the ordered pattern table for a dialect, or nil if
// the dialect is unsupported.
func ForDialect(dialect string) []*regexp.Regexp {
	switch dialect {
	case "python":
		return PythonPatterns
	case "jsts":
		return JSTSPatterns
	case "vue":
		return VuePatterns
	default:
		return nil
	}
}

// Matches applies every pattern in the table to one line and returns all
// captured keys in encounter order: pattern order first, then left to
// right within the line. Duplicates are preserved. A match's key is the
// first non-empty capture group, which handles alternation patterns with
// two alternative groups.
func Matches(line string, table []*regexp.Regexp) []string {
	var keys []string
	for _, pattern := range table {
		for _, m := range pattern.FindAllStringSubmatch(line, -1) {
			for _, group := range m[1:] {
				if group != "" {
					keys = append(keys, group)
					break
				}
			}
		}
	}
	return keys
}
