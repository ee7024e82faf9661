package bootstrap

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// Options carries per-call settings. Keys named by the Opt* constants are
// consumed by the builder; every other key becomes an HTML attribute.
type Options map[string]any

// Recognised option keys.
const (
	OptLabel          = "label"
	OptValue          = "value"
	OptID             = "id"
	OptName           = "name"
	OptControlClass   = "control_class"
	OptExtraClass     = "extra_class"
	OptClass          = "class"
	OptRenderAsButton = "render_as_button"
	OptHideLabel      = "hide_label"
	OptSkipLabel      = "skip_label"
	OptLabelClass     = "label_class"
	OptLabelCol       = "label_col"
	OptControlCol     = "control_col"
	OptLayout         = "layout"
	OptWrapperClass   = "wrapper_class"
	OptHelp           = "help"
)

// Pairs builds Options from alternating key/value arguments, the shape used
// by template helpers: Pairs("id", "custom", "extra", "x").
func Pairs(pairs ...any) (Options, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("bootstrap: options need key/value pairs, got %d arguments", len(pairs))
	}
	opts := make(Options, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("bootstrap: option key at position %d must be a non-empty string", i)
		}
		opts[key] = pairs[i+1]
	}
	return opts, nil
}

// Clone returns a shallow copy so helpers can consume keys without touching
// the caller's map.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	for key, value := range o {
		out[key] = value
	}
	return out
}

// Has reports whether key was supplied, even with a nil value.
func (o Options) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// take removes key and returns its value.
func (o Options) take(key string) (any, bool) {
	value, ok := o[key]
	if ok {
		delete(o, key)
	}
	return value, ok
}

func (o Options) takeString(key string) string {
	value, ok := o.take(key)
	if !ok {
		return ""
	}
	text, _ := stringify(value)
	return strings.TrimSpace(text)
}

func (o Options) takeBool(key string) bool {
	value, ok := o.take(key)
	if !ok {
		return false
	}
	return truthy(value)
}

func truthy(value any) bool {
	switch typed := value.(type) {
	case nil:
		return false
	case bool:
		return typed
	case string:
		switch strings.ToLower(strings.TrimSpace(typed)) {
		case "", "0", "false", "no", "off":
			return false
		}
		return true
	case int:
		return typed != 0
	default:
		return true
	}
}

// stringify renders an option or model value as attribute text. The second
// result is false when the value should be omitted.
func stringify(value any) (string, bool) {
	switch typed := value.(type) {
	case nil:
		return "", false
	case string:
		return typed, true
	case template.HTML:
		return string(typed), true
	case []byte:
		return string(typed), true
	case time.Time:
		if typed.IsZero() {
			return "", true
		}
		return typed.Format(time.RFC3339), true
	case *time.Time:
		if typed == nil {
			return "", false
		}
		return stringify(*typed)
	case *string:
		if typed == nil {
			return "", false
		}
		return *typed, true
	case fmt.Stringer:
		return typed.String(), true
	default:
		return fmt.Sprint(typed), true
	}
}

// attributeValue converts a pass-through option into an attribute value.
// Booleans follow the HTML convention: true renders key="key", false omits.
func attributeValue(key string, value any) (string, bool) {
	if flag, ok := value.(bool); ok {
		if !flag {
			return "", false
		}
		return key, true
	}
	return stringify(value)
}
