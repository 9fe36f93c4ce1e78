// Package extract applies the per-dialect pattern tables to source
// files line by line and records every key occurrence with its
// location.
package extract

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jenian/i18ngrd/internal/analyzer"
	"github.com/jenian/i18ngrd/internal/patterns"
)

// File scans a single source file with the given dialect's pattern
// table and returns every key occurrence in encounter order, with
// 1-based line numbers and the trimmed line text. Duplicate keys on the
// same line produce separate occurrences.
func File(path string, dialect string) ([]analyzer.KeyUsage, error) {
	table := patterns.ForDialect(dialect)
	if table == nil {
		return nil, fmt.Errorf("unsupported dialect: %s", dialect)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	var usages []analyzer.KeyUsage
	sc := bufio.NewScanner(f)
	// Generated and minified sources can exceed the default token size
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		for _, key := range patterns.Matches(line, table) {
			usages = append(usages, analyzer.KeyUsage{
				Key:     key,
				File:    path,
				Line:    lineNum,
				Snippet: strings.TrimSpace(line),
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return usages, nil
}
