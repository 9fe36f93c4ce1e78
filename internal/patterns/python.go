package patterns

import "regexp"

// PythonPatterns matches gettext-style lookups: _("key"), _('key'),
// gettext("key"), gettext('key'). The alternation captures the key in
// whichever group matched.
var PythonPatterns = []*regexp.Regexp{
	regexp.MustCompile(`_\(["']([^"']+)["']\)|gettext\(["']([^"']+)["']\)`),
}
