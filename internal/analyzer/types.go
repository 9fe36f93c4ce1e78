package analyzer

import "github.com/jenian/i18ngrd/internal/localefile"

// KeyUsage represents a single reference to a localization key in code
type KeyUsage struct {
	Key           string // The dot/bracket key path
	File          string // File path where it's referenced
	Line          int    // 1-based line number
	Snippet       string // Trimmed source line where it's referenced
	InIgnoredPath bool   // True if this usage is in a folder that should be ignored
}

// ScanResult contains the complete reconciliation results
type ScanResult struct {
	Usages             map[string][]KeyUsage              // All key usages found in code, grouped by key in scan order
	Definitions        map[string][]localefile.Definition // All keys declared in translation files
	Missing            map[string][]KeyUsage              // Keys used in code but absent from translations
	Unused             []string                           // Keys declared in translations but never referenced, sorted
	IgnoredMissing     int                                // Count of missing keys that were ignored via config
	IgnoredFromFolders int                                // Count of unique keys found only in ignored folders
}

// MissingKeys returns the missing key set in sorted order for
// deterministic report iteration.
func (r *ScanResult) MissingKeys() []string {
	return sortedKeys(r.Missing)
}
