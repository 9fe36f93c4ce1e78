package localefile

import (
	"fmt"
	"sort"
)

// Flatten walks a parsed JSON value and returns every key path reachable
// from the root, in dot notation with bracket-indexed array segments.
// Both intermediate container paths and leaf paths are emitted, so a
// document {"user": {"name": "x"}} yields both "user" and "user.name".
// Object members are visited in sorted key order so the emission order
// is deterministic.
func Flatten(value interface{}, parentKey string) []string {
	var keys []string

	switch v := value.(type) {
	case map[string]interface{}:
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fullKey := name
			if parentKey != "" {
				fullKey = parentKey + "." + name
			}
			keys = append(keys, fullKey)
			keys = append(keys, Flatten(v[name], fullKey)...)
		}
	case []interface{}:
		for i, item := range v {
			fullKey := fmt.Sprintf("%s[%d]", parentKey, i)
			keys = append(keys, fullKey)
			keys = append(keys, Flatten(item, fullKey)...)
		}
	}
	// Scalars terminate the recursion; the path that reached them was
	// already emitted by the enclosing container.

	return keys
}
