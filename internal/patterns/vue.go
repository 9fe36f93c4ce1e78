package patterns

import "regexp"

// VuePatterns matches translation lookups in Vue single-file components:
//   - $t("key") or $t('key')
//   - t("key") or t('key')
//   - i18n.t("key")
var VuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$t\(["']([^"']+)["']\)`),
	regexp.MustCompile(`t\(["']([^"']+)["']\)`),
	regexp.MustCompile(`i18n\.t\(["']([^"']+)["']\)`),
}
