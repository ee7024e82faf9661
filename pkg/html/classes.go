package html

import "strings"

// MergeClasses joins class lists, keeping the first occurrence of each class.
// Each argument may hold several space separated classes; empty entries are
// ignored.
func MergeClasses(lists ...string) string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(lists)*2)
	for _, list := range lists {
		for _, class := range strings.Fields(list) {
			if _, exists := seen[class]; exists {
				continue
			}
			seen[class] = struct{}{}
			out = append(out, class)
		}
	}
	return strings.Join(out, " ")
}

// HasClass reports whether class appears in the space separated list.
func HasClass(list, class string) bool {
	for _, candidate := range strings.Fields(list) {
		if candidate == class {
			return true
		}
	}
	return false
}
