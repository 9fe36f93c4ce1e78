package scanner

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectDialect(t *testing.T) {
	tests := []struct {
		path     string
		expected Dialect
	}{
		{"test.py", DialectPython},
		{"test.js", DialectJSTS},
		{"test.ts", DialectJSTS},
		{"test.vue", DialectVue},
		{"test.rb", DialectUnknown},
		{"test", DialectUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := detectDialect(tt.path); got != tt.expected {
				t.Errorf("detectDialect(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestScanner_Scan(t *testing.T) {
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(tmpDir, "src", "app.py"), "greeting = _('greeting')")
	writeFile(t, filepath.Join(tmpDir, "src", "api.js"), "t('nav.home')")
	writeFile(t, filepath.Join(tmpDir, "src", "widget.vue"), "<template></template>")
	writeFile(t, filepath.Join(tmpDir, "locales", "en.json"), `{"greeting": "hi"}`)
	writeFile(t, filepath.Join(tmpDir, "README.md"), "readme")
	writeFile(t, filepath.Join(tmpDir, "node_modules", "lib.js"), "module.exports = {};")

	scanner := NewScanner()
	codeFiles, translationFiles, err := scanner.Scan(tmpDir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(codeFiles) != 3 {
		t.Errorf("Expected 3 code files, got %d: %v", len(codeFiles), codeFiles)
	}
	for _, file := range codeFiles {
		if filepath.Base(filepath.Dir(file.Path)) == "node_modules" {
			t.Errorf("node_modules should be excluded: %v", file)
		}
	}

	if len(translationFiles) != 1 {
		t.Fatalf("Expected 1 translation file, got %v", translationFiles)
	}
	if filepath.Base(translationFiles[0]) != "en.json" {
		t.Errorf("Translation file = %q, want en.json", translationFiles[0])
	}
}

func TestScanner_IgnoredFolders(t *testing.T) {
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(tmpDir, "src", "app.py"), "x")
	writeFile(t, filepath.Join(tmpDir, "fixtures", "data.py"), "x")
	writeFile(t, filepath.Join(tmpDir, "src", "generated", "gen.py"), "x")

	scanner := NewScanner()
	scanner.AddIgnoredFolders([]string{"fixtures", "src/generated"})

	codeFiles, _, err := scanner.Scan(tmpDir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	// Ignored folders are still scanned, but their files are marked
	if len(codeFiles) != 3 {
		t.Fatalf("Expected 3 code files, got %d", len(codeFiles))
	}
	for _, file := range codeFiles {
		rel, _ := filepath.Rel(tmpDir, file.Path)
		switch filepath.ToSlash(rel) {
		case "src/app.py":
			if file.InIgnoredPath {
				t.Errorf("%s should not be marked ignored", rel)
			}
		case "fixtures/data.py", "src/generated/gen.py":
			if !file.InIgnoredPath {
				t.Errorf("%s should be marked ignored", rel)
			}
		}
	}
}

func TestScanner_EmptyDirectory(t *testing.T) {
	codeFiles, translationFiles, err := NewScanner().Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(codeFiles) != 0 || len(translationFiles) != 0 {
		t.Errorf("Expected empty results, got %v and %v", codeFiles, translationFiles)
	}
}
