// Package checker drives a full reconciliation run: file discovery,
// both key universes, the set diff, and optional fix suggestions. It is
// the programmatic "scan a directory" entry point; rendering lives in
// the output package.
package checker

import (
	"fmt"
	"os"

	"github.com/jenian/i18ngrd/internal/analyzer"
	"github.com/jenian/i18ngrd/internal/config"
	"github.com/jenian/i18ngrd/internal/extract"
	"github.com/jenian/i18ngrd/internal/localefile"
	"github.com/jenian/i18ngrd/internal/scanner"
	"github.com/jenian/i18ngrd/internal/suggest"
)

// Options controls a scan run.
type Options struct {
	Fix    bool           // Build fix suggestions for missing keys
	Config *config.Config // Ignore rules and base-language override; nil means defaults
	// Warnf receives per-file warnings (malformed JSON, unreadable
	// sources). Defaults to stderr. Per-file errors never abort the run.
	Warnf func(format string, a ...interface{})
}

// Result is the computed output of one run: the reconciliation, the
// translation files that were discovered, and any suggestions. All data
// is rebuilt from scratch each run; nothing persists.
type Result struct {
	analyzer.ScanResult
	TranslationFiles []string
	CodeFileCount    int
	Suggestions      map[string]suggest.Suggestion // Keyed by missing key; nil unless Fix was set
}

// Scan walks root, builds the code-usage and translation-definition key
// universes, and reconciles them. The caller is responsible for
// validating that root exists.
func Scan(root string, opts Options) (*Result, error) {
	warnf := opts.Warnf
	if warnf == nil {
		warnf = func(format string, a ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", a...)
		}
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	fileScanner := scanner.NewScanner()
	if len(cfg.Ignores.Folders) > 0 {
		fileScanner.AddIgnoredFolders(cfg.Ignores.Folders)
	}

	codeFiles, translationFiles, err := fileScanner.Scan(root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	definitions := localefile.BuildIndex(translationFiles, warnf)

	var usages []analyzer.KeyUsage
	for _, file := range codeFiles {
		fileUsages, err := extract.File(file.Path, string(file.Dialect))
		if err != nil {
			warnf("Warning: %v", err)
			continue
		}
		if file.InIgnoredPath {
			for i := range fileUsages {
				fileUsages[i].InIgnoredPath = true
			}
		}
		usages = append(usages, fileUsages...)
	}

	result := &Result{
		ScanResult:       analyzer.Analyze(usages, definitions, cfg),
		TranslationFiles: translationFiles,
		CodeFileCount:    len(codeFiles),
	}

	if opts.Fix {
		result.Suggestions = make(map[string]suggest.Suggestion)
		for key := range result.Missing {
			if sug, ok := suggest.Build(key, translationFiles, cfg.BaseFilename()); ok {
				result.Suggestions[key] = sug
			}
		}
	}

	return result, nil
}
