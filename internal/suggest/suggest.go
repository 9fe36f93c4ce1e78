// Package suggest builds placeholder JSON fragments for missing keys.
// The fragments are advisory text for a human to splice into a
// translation file; nothing is ever written into the files themselves.
package suggest

import (
	"encoding/json"
	"path/filepath"
	"strings"
)

// Suggestion proposes a JSON fragment to add to a target translation
// file for one missing key.
type Suggestion struct {
	TargetFile string // Translation file the fragment should be merged into
	JSON       string // Pretty-printed nested-object fragment, 2-space indent
}

// Build chooses a target translation file and synthesizes the
// placeholder fragment for a missing key. Target selection is an
// ordered preference list: a file whose basename equals baseFilename
// (the default/base-language convention, normally en.json), then the
// first discovered translation file, then none. With no translation
// files at all there is no suggestion and ok is false.
func Build(key string, translationFiles []string, baseFilename string) (Suggestion, bool) {
	var target string
	for _, file := range translationFiles {
		if filepath.Base(file) == baseFilename {
			target = file
			break
		}
	}
	if target == "" && len(translationFiles) > 0 {
		target = translationFiles[0]
	}
	if target == "" {
		return Suggestion{}, false
	}

	// Nest the placeholder along the dot path; a single-segment key
	// degenerates to a flat object.
	var value interface{} = "MISSING: " + key
	parts := strings.Split(key, ".")
	for i := len(parts) - 1; i >= 0; i-- {
		value = map[string]interface{}{parts[i]: value}
	}

	fragment, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return Suggestion{}, false
	}

	return Suggestion{TargetFile: target, JSON: string(fragment)}, true
}
