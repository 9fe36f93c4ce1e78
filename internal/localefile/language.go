package localefile

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// Filenames like en.json, fr.json, en_US.json
	fileLangPattern = regexp.MustCompile(`^([a-z]{2})(_[A-Z]{2})?\.`)
	// Path segments like "en", "pt_BR"
	segmentLangPattern = regexp.MustCompile(`^[a-z]{2}(_[A-Z]{2})?$`)
)

// InferLanguage derives a best-effort language tag from a translation
// file's path. The filename pattern wins over directory names; when the
// filename matches, only the two-letter code is returned (en_US.json
// yields "en"). A matching directory segment is returned whole. Falls
// back to "unknown".
//
// This is purely path-based, not content-based: a mislabelled file gets
// a wrong tag.
func InferLanguage(path string) string {
	base := filepath.Base(path)
	if m := fileLangPattern.FindStringSubmatch(base); m != nil {
		return m[1]
	}

	dir := filepath.Dir(path)
	parts := strings.Split(filepath.ToSlash(dir), "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if segmentLangPattern.MatchString(parts[i]) {
			return parts[i]
		}
	}

	return "unknown"
}
