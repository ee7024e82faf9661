package model

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)
	titleCaser        = cases.Title(language.Und)
)

// Humanize converts an attribute or object name into a label: words are split
// on underscores, dashes and camelCase boundaries, lower cased, and only the
// first word is capitalised. A trailing "_id" is dropped, so "author_id"
// becomes "Author".
func Humanize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.HasSuffix(name, "_id") && len(name) > 3 {
		name = strings.TrimSuffix(name, "_id")
	}

	var words []string
	for _, chunk := range splitWordsPattern.Split(name, -1) {
		if chunk == "" {
			continue
		}
		for _, word := range strings.Fields(splitCamel(chunk)) {
			words = append(words, strings.ToLower(word))
		}
	}
	if len(words) == 0 {
		return ""
	}
	words[0] = titleCaser.String(words[0])
	return strings.Join(words, " ")
}

// SnakeCase converts a Go identifier into its snake_case form
// ("FirstName" -> "first_name", "UserID" -> "user_id").
func SnakeCase(name string) string {
	runes := []rune(strings.TrimSpace(name))
	var out strings.Builder
	for i, r := range runes {
		if r == '-' || r == ' ' {
			r = '_'
		}
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				out.WriteByte('_')
			}
		}
		out.WriteRune(unicode.ToLower(r))
	}
	return out.String()
}

// ObjectNameFor derives the parameter key for a type name: snake cased and
// singular ("AdminUsers" -> "admin_user").
func ObjectNameFor(typeName string) string {
	snake := SnakeCase(typeName)
	if snake == "" {
		return ""
	}
	parts := strings.Split(snake, "_")
	last := len(parts) - 1
	parts[last] = inflection.Singular(parts[last])
	return strings.Join(parts, "_")
}

func splitCamel(input string) string {
	var out strings.Builder
	runes := []rune(input)
	for i, r := range runes {
		if i > 0 && isBoundary(runes[i-1], r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(prev, r rune) bool {
	return unicode.IsLower(prev) && unicode.IsUpper(r)
}
