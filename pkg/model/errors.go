package model

import (
	"strconv"
	"strings"
)

// ErrorMapping splits an error payload into attribute messages and
// form-level messages.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

var wrapperSegments = map[string]struct{}{
	"body":       {},
	"request":    {},
	"payload":    {},
	"data":       {},
	"attributes": {},
}

// MapErrors resolves the keys of a server error payload to attributes of
// objectName. Keys may be plain names ("email"), parameter names
// ("user[email]"), dotted paths ("body.user.email") or JSON pointers
// ("/data/email"). Keys that name no known attribute become form-level
// messages so nothing is lost.
func MapErrors(objectName string, attributes []string, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{}
	if len(payload) == 0 {
		return mapping
	}

	known := make(map[string]struct{}, len(attributes))
	for _, attribute := range attributes {
		if attribute = strings.TrimSpace(attribute); attribute != "" {
			known[attribute] = struct{}{}
		}
	}

	for rawPath, messages := range payload {
		messages = NormalizeMessages(messages)
		if len(messages) == 0 {
			continue
		}
		attribute, ok := mapErrorPath(objectName, rawPath, known)
		if !ok {
			mapping.Form = append(mapping.Form, messages...)
			continue
		}
		if mapping.Fields == nil {
			mapping.Fields = make(map[string][]string)
		}
		mapping.Fields[attribute] = append(mapping.Fields[attribute], messages...)
	}
	mapping.Form = NormalizeMessages(mapping.Form)
	return mapping
}

// MergeFormErrors concatenates message slices, trimming whitespace and
// dropping duplicates while keeping order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return NormalizeMessages(combined)
}

// NormalizeMessages trims messages and drops blanks and duplicates.
func NormalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func mapErrorPath(objectName, raw string, known map[string]struct{}) (string, bool) {
	if isFormLevelKey(raw) {
		return "", false
	}
	segments := stripNumericSegments(parsePathSegments(raw))
	for len(segments) > 0 {
		head := segments[0]
		_, wrapper := wrapperSegments[strings.ToLower(head)]
		if !wrapper && head != objectName {
			break
		}
		segments = segments[1:]
	}
	if len(segments) == 0 {
		return "", false
	}
	if _, ok := known[segments[0]]; ok {
		return segments[0], true
	}
	return "", false
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	for strings.HasPrefix(clean, "#") || strings.HasPrefix(clean, "/") || strings.HasPrefix(clean, ".") || strings.HasPrefix(clean, "$") {
		clean = clean[1:]
	}

	replacer := strings.NewReplacer("[", ".", "]", "", "//", "/")
	clean = strings.Trim(replacer.Replace(clean), "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func stripNumericSegments(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		out = append(out, segment)
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
