package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
)

// Catalog is a Translator backed by gettext PO files.
//
// Locales are normalised with BCP 47 rules, so "pt_br" and "pt-BR" address the
// same catalog. A lookup for a regional locale falls back to its base
// language and then to the default locale.
type Catalog struct {
	mu            sync.RWMutex
	locales       map[string]*gotext.Po
	defaultLocale string
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithDefaultLocale sets the locale consulted after the requested one.
func WithDefaultLocale(locale string) CatalogOption {
	return func(c *Catalog) {
		c.defaultLocale = NormalizeLocale(locale)
	}
}

// NewCatalog returns an empty catalog.
func NewCatalog(opts ...CatalogOption) *Catalog {
	catalog := &Catalog{locales: make(map[string]*gotext.Po)}
	for _, opt := range opts {
		if opt != nil {
			opt(catalog)
		}
	}
	return catalog
}

// AddPo parses PO data and registers it for locale, replacing any previous
// catalog for the same locale.
func (c *Catalog) AddPo(locale string, data []byte) error {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return fmt.Errorf("i18n: invalid locale %q", locale)
	}
	po := gotext.NewPo()
	po.Parse(data)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.locales[normalized] = po
	return nil
}

// LoadFS registers every file matching pattern. The locale is taken from the
// file name without its extension ("locales/es.po" -> "es").
func (c *Catalog) LoadFS(fsys fs.FS, pattern string) error {
	if fsys == nil {
		return fmt.Errorf("i18n: filesystem is nil")
	}
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.po"
	}
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return fmt.Errorf("i18n: glob %q: %w", pattern, err)
	}
	for _, match := range matches {
		data, err := fs.ReadFile(fsys, match)
		if err != nil {
			return fmt.Errorf("i18n: read %s: %w", match, err)
		}
		locale := strings.TrimSuffix(path.Base(match), path.Ext(match))
		if err := c.AddPo(locale, data); err != nil {
			return fmt.Errorf("i18n: load %s: %w", match, err)
		}
	}
	return nil
}

// Locales lists the registered locales in sorted order.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.locales))
	for locale := range c.locales {
		out = append(out, locale)
	}
	slices.Sort(out)
	return out
}

// Translate implements Translator.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	if c == nil {
		return "", ErrMissingTranslator
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, candidate := range c.candidates(locale) {
		po, ok := c.locales[candidate]
		if !ok {
			continue
		}
		// gotext echoes the key back when it has no entry for it.
		raw := po.Get(key)
		if raw == key || raw == "" {
			continue
		}
		return formatMessage(raw, args), nil
	}
	return "", fmt.Errorf("%w: %s (%s)", ErrMissingTranslation, key, locale)
}

func formatMessage(msg string, args []any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

func (c *Catalog) candidates(locale string) []string {
	out := make([]string, 0, 3)
	add := func(value string) {
		if value != "" && !slices.Contains(out, value) {
			out = append(out, value)
		}
	}
	normalized := NormalizeLocale(locale)
	add(normalized)
	if tag, err := language.Parse(normalized); err == nil {
		if base, confidence := tag.Base(); confidence != language.No {
			add(base.String())
		}
	}
	add(c.defaultLocale)
	return out
}

// NormalizeLocale returns the canonical BCP 47 form of locale, or "" when it
// cannot be parsed.
func NormalizeLocale(locale string) string {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return ""
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	return tag.String()
}
