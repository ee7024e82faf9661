package i18n

import (
	"fmt"
	"reflect"
	"strings"
)

// TemplateConfig configures the template translation helpers.
type TemplateConfig struct {
	// LocaleKey selects the key used to read the locale when templates pass a
	// map or struct instead of a locale string. Defaults to "locale".
	LocaleKey string
	// FuncName names the translation helper. Defaults to "translate".
	FuncName string
	// OnMissing controls the string returned for missing translations.
	OnMissing MissingTranslationHandler
}

// TemplateFuncs returns helpers for html/template FuncMaps and the pongo2
// engine:
//
//	translate(localeSrc, key, ...args) string
//	current_locale(localeSrc) string
func TemplateFuncs(t Translator, cfg TemplateConfig) map[string]any {
	localeKey := strings.TrimSpace(cfg.LocaleKey)
	if localeKey == "" {
		localeKey = "locale"
	}
	funcName := strings.TrimSpace(cfg.FuncName)
	if funcName == "" {
		funcName = "translate"
	}
	onMissing := cfg.OnMissing
	if onMissing == nil {
		onMissing = DefaultMissing
	}

	return map[string]any{
		funcName: func(localeSrc any, key string, args ...any) string {
			key = strings.TrimSpace(key)
			if key == "" {
				return ""
			}
			locale := resolveLocale(localeSrc, localeKey)
			if t == nil {
				return onMissing(locale, key, args, ErrMissingTranslator)
			}
			msg, err := t.Translate(locale, key, args...)
			if err != nil || strings.TrimSpace(msg) == "" {
				return onMissing(locale, key, args, err)
			}
			return msg
		},
		"current_locale": func(localeSrc any) string {
			return resolveLocale(localeSrc, localeKey)
		},
	}
}

func resolveLocale(src any, key string) string {
	switch data := src.(type) {
	case nil:
		return ""
	case string:
		return data
	case map[string]string:
		return data[key]
	case map[string]any:
		if v, ok := data[key]; ok && v != nil {
			return strings.TrimSpace(fmt.Sprint(v))
		}
		return ""
	}

	value := reflect.ValueOf(src)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}
	if value.Kind() == reflect.Struct {
		field := value.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, key)
		})
		if field.IsValid() && field.Kind() == reflect.String {
			return field.String()
		}
	}
	return ""
}
