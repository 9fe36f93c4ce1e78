package analyzer

import (
	"sort"

	"github.com/jenian/i18ngrd/internal/config"
	"github.com/jenian/i18ngrd/internal/localefile"
)

// Analyze reconciles the code-usage key universe with the
// translation-definition key universe.
//
// missing = used − defined, unused = defined − used; both are exact set
// differences with no fuzzy matching. A key that is both used and
// defined contributes to neither set. Keys listed in the config's
// ignore list are excluded from the missing report and counted instead,
// as are keys whose every usage sits in an ignored folder.
func Analyze(codeUsages []KeyUsage, definitions map[string][]localefile.Definition, cfg *config.Config) ScanResult {
	result := ScanResult{
		Usages:      make(map[string][]KeyUsage),
		Definitions: definitions,
		Missing:     make(map[string][]KeyUsage),
		Unused:      []string{},
	}

	for _, usage := range codeUsages {
		result.Usages[usage.Key] = append(result.Usages[usage.Key], usage)
	}

	// Unique keys seen only in ignored folders that would have been missing
	ignoredFolderKeys := make(map[string]bool)

	for key, usages := range result.Usages {
		if _, defined := definitions[key]; defined {
			continue
		}

		allInIgnoredFolders := true
		hasIgnoredFolderUsage := false
		for _, usage := range usages {
			if usage.InIgnoredPath {
				hasIgnoredFolderUsage = true
			} else {
				allInIgnoredFolders = false
			}
		}
		if allInIgnoredFolders && hasIgnoredFolderUsage {
			ignoredFolderKeys[key] = true
			continue
		}

		if cfg != nil && cfg.ShouldIgnoreMissing(key) {
			result.IgnoredMissing++
			continue
		}

		var reported []KeyUsage
		for _, usage := range usages {
			if !usage.InIgnoredPath {
				reported = append(reported, usage)
			}
		}
		if len(reported) > 0 {
			result.Missing[key] = reported
		}
	}

	result.IgnoredFromFolders = len(ignoredFolderKeys)

	for key := range definitions {
		if _, used := result.Usages[key]; !used {
			result.Unused = append(result.Unused, key)
		}
	}
	sort.Strings(result.Unused)

	return result
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
