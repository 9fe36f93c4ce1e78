package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Dialect identifies the source-code syntax family of a code file.
type Dialect string

const (
	DialectPython  Dialect = "python"
	DialectJSTS    Dialect = "jsts"
	DialectVue     Dialect = "vue"
	DialectUnknown Dialect = "unknown"
)

// FileInfo contains information about a code file to be scanned
type FileInfo struct {
	Path          string
	Dialect       Dialect
	InIgnoredPath bool // True if this file is in a folder that should be ignored
}

// Scanner handles file discovery and classification
type Scanner struct {
	excludeDirs map[string]bool // Directory names to skip entirely (e.g., "node_modules")
	ignoreDirs  map[string]bool // Directory names whose files are scanned but marked ignored
	ignorePaths []string        // Path patterns whose files are scanned but marked ignored
	scanRoot    string          // Root path being scanned (for relative path matching)
}

// NewScanner creates a new scanner with default exclusions
func NewScanner() *Scanner {
	return &Scanner{
		excludeDirs: map[string]bool{
			"node_modules": true,
			"vendor":       true,
			".git":         true,
			"build":        true,
			"dist":         true,
			"bin":          true,
			"out":          true,
			".next":        true,
			".cache":       true,
		},
		ignoreDirs: map[string]bool{},
	}
}

// AddIgnoredFolders adds folders whose files are still scanned so their
// keys can be counted, but whose usages are excluded from the missing
// report. Accepts directory names (e.g., "fixtures") or paths relative
// to the scan root (e.g., "src/fixtures").
func (s *Scanner) AddIgnoredFolders(dirs []string) {
	for _, dir := range dirs {
		if strings.Contains(dir, "/") || strings.Contains(dir, "\\") {
			s.ignorePaths = append(s.ignorePaths, dir)
		} else {
			s.ignoreDirs[dir] = true
		}
	}
}

// detectDialect determines the source dialect from the file extension
func detectDialect(path string) Dialect {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return DialectPython
	case ".js", ".ts":
		return DialectJSTS
	case ".vue":
		return DialectVue
	default:
		return DialectUnknown
	}
}

// isInIgnoredPath checks if a file path is within an ignored folder
func (s *Scanner) isInIgnoredPath(filePath string) bool {
	if s.scanRoot == "" || (len(s.ignorePaths) == 0 && len(s.ignoreDirs) == 0) {
		return false
	}

	relPath, err := filepath.Rel(s.scanRoot, filePath)
	if err != nil {
		return false
	}
	relPathNormalized := filepath.ToSlash(relPath)

	segments := strings.Split(relPathNormalized, "/")
	for _, segment := range segments[:len(segments)-1] {
		if s.ignoreDirs[segment] {
			return true
		}
	}

	for _, ignorePath := range s.ignorePaths {
		ignorePathNormalized := filepath.ToSlash(ignorePath)
		if relPathNormalized == ignorePathNormalized {
			return true
		}
		if strings.HasPrefix(relPathNormalized, ignorePathNormalized+"/") {
			return true
		}
	}

	return false
}

// Scan recursively walks a directory and returns the code files to parse
// plus the translation files found. Unreadable subtrees are skipped, not
// fatal. Ordering beyond the natural traversal order is not guaranteed;
// report rendering sorts keys itself.
func (s *Scanner) Scan(rootPath string) ([]FileInfo, []string, error) {
	var codeFiles []FileInfo
	var translationFiles []string

	s.scanRoot = rootPath

	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip unreadable entries instead of failing the scan
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if s.excludeDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(d.Name(), ".json") {
			translationFiles = append(translationFiles, path)
			return nil
		}

		dialect := detectDialect(path)
		if dialect == DialectUnknown {
			return nil
		}

		// Files in ignored paths are still parsed so their keys can be
		// counted; they are excluded from the missing report later.
		codeFiles = append(codeFiles, FileInfo{
			Path:          path,
			Dialect:       dialect,
			InIgnoredPath: s.isInIgnoredPath(path),
		})

		return nil
	})

	return codeFiles, translationFiles, err
}
