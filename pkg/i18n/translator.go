package i18n

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var (
	// ErrMissingTranslator is reported when a lookup runs without a translator.
	ErrMissingTranslator = errors.New("i18n: translator not configured")
	// ErrMissingTranslation is reported when no message exists for a key.
	ErrMissingTranslation = errors.New("i18n: missing translation")
)

// Translator resolves a message key for a locale. Args are applied to the
// message with fmt verbs.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function into a Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate calls the underlying function.
func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return fn(locale, key, args...)
}

// MissingTranslationHandler returns the string used when key cannot be
// translated. Args carry a map with a "default" entry when the caller has a
// fallback.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// DefaultMissing returns the caller supplied default, or the key itself.
func DefaultMissing(_ string, key string, args []any, _ error) string {
	if fallback, ok := defaultFromArgs(args); ok {
		return fallback
	}
	return key
}

// LogMissing wraps next and records every miss at debug level.
func LogMissing(logger *slog.Logger, next MissingTranslationHandler) MissingTranslationHandler {
	if next == nil {
		next = DefaultMissing
	}
	if logger == nil {
		return next
	}
	return func(locale, key string, args []any, err error) string {
		logger.Debug("missing translation", "locale", locale, "key", key, "error", err)
		return next(locale, key, args, err)
	}
}

// Lookup tries keys in order and returns the first translation found. When
// none resolves, onMissing receives the first key and the fallback formatted
// with args.
func Lookup(t Translator, locale string, keys []string, fallback string, onMissing MissingTranslationHandler, args ...any) string {
	if onMissing == nil {
		onMissing = DefaultMissing
	}
	if len(args) > 0 && strings.Contains(fallback, "%") {
		fallback = fmt.Sprintf(fallback, args...)
	}

	err := ErrMissingTranslator
	first := ""
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if first == "" {
			first = key
		}
		if t == nil {
			break
		}
		msg, lookupErr := t.Translate(locale, key, args...)
		if lookupErr == nil && strings.TrimSpace(msg) != "" {
			return msg
		}
		err = lookupErr
		if err == nil {
			err = ErrMissingTranslation
		}
	}
	if first == "" {
		return fallback
	}
	return onMissing(locale, first, []any{map[string]any{"default": fallback}}, err)
}

func defaultFromArgs(args []any) (string, bool) {
	for _, arg := range args {
		values, ok := arg.(map[string]any)
		if !ok {
			continue
		}
		if fallback, ok := values["default"].(string); ok && strings.TrimSpace(fallback) != "" {
			return fallback, true
		}
	}
	return "", false
}
