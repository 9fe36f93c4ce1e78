package patterns

import "regexp"

// JSTSPatterns matches JavaScript/TypeScript translation lookups:
//   - t("key") or t('key')
//   - t.namespace("key") for any identifier after t.
//   - t({ key: "value" }) object-literal form, capturing the key field;
//     the key field name may be bare or quoted
//   - this.$t("key"), the Vue-style call reachable from plain JS/TS
var JSTSPatterns = []*regexp.Regexp{
	regexp.MustCompile(`t\(["']([^"']+)["']\)`),
	regexp.MustCompile(`t\.\w+\(["']([^"']+)["']\)`),
	regexp.MustCompile(`t\(\{.*?["']?key["']?:\s*["']([^"']+)["'].*?\}\)`),
	regexp.MustCompile(`this\.\$t\(["']([^"']+)["']\)`),
}
