package bootstrap

import (
	"regexp"
	"strings"
)

var unsafeIDChars = regexp.MustCompile(`\]\[|[^-a-zA-Z0-9:.]`)

// FieldID returns the element id for field on object ("user", "email" ->
// "user_email"). Only the object part is sanitized; the field loses a trailing
// "?" and is otherwise kept as is. An empty field yields the placeholder
// "user_".
func FieldID(object, field string) string {
	object = sanitizeIDPart(object)
	field = strings.TrimSuffix(field, "?")
	if object == "" {
		return field
	}
	return object + "_" + field
}

// FieldName returns the parameter name for field on object ("user[email]").
// An empty field yields the placeholder "user[]".
func FieldName(object, field string) string {
	if object == "" {
		return field
	}
	return object + "[" + field + "]"
}

func sanitizeIDPart(value string) string {
	value = unsafeIDChars.ReplaceAllString(value, "_")
	return strings.TrimSuffix(value, "_")
}
