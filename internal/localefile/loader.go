package localefile

import (
	"encoding/json"
	"fmt"
	"os"
)

// Definition records where a key is declared in a translation file.
type Definition struct {
	File     string // Translation file path
	Language string // Language tag inferred from the path
}

// ExtractKeys parses one JSON translation file and returns its flattened
// key set in emission order. A read or parse failure is returned to the
// caller; the file then contributes zero keys.
func ExtractKeys(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var parsed interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}

	return Flatten(parsed, ""), nil
}

// BuildIndex runs key extraction and language inference over every
// translation file and inverts the per-file key sets into a shared
// index from key to its definition sites. A key defined in N files
// yields N entries, ordered by file discovery order then intra-file
// emission order. Malformed files are reported through warnf and
// contribute nothing; the index build continues.
func BuildIndex(files []string, warnf func(format string, a ...interface{})) map[string][]Definition {
	index := make(map[string][]Definition)

	for _, path := range files {
		keys, err := ExtractKeys(path)
		if err != nil {
			warnf("Warning: %v. Skipping...", err)
			continue
		}
		language := InferLanguage(path)
		for _, key := range keys {
			index[key] = append(index[key], Definition{File: path, Language: language})
		}
	}

	return index
}
