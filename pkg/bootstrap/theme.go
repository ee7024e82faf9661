package bootstrap

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	theme "github.com/goliatone/go-theme"
)

const themeTokenPrefix = "bootform."

// ErrNoThemeSelection is returned when a selector resolves nothing.
var ErrNoThemeSelection = errors.New("bootstrap: theme selector returned no selection")

// ResolveTheme selects name/variant through selector and flattens the
// selection into a renderer config: manifest tokens, templates and assets
// overlaid with the chosen variant.
func ResolveTheme(selector theme.ThemeSelector, name, variant string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, errors.New("bootstrap: theme selector is nil")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, ErrNoThemeSelection
	}
	return ThemeConfig(selection), nil
}

// ThemeConfig flattens a theme selection into a renderer config. Class
// tokens (bootform.*) are not exported as CSS variables.
func ThemeConfig(selection *theme.Selection) *theme.RendererConfig {
	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: map[string]string{},
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
	}
	manifest := selection.Manifest
	if manifest == nil {
		cfg.AssetURL = func(string) string { return "" }
		return cfg
	}
	if cfg.Theme == "" {
		cfg.Theme = manifest.Name
	}

	maps.Copy(cfg.Tokens, manifest.Tokens)
	maps.Copy(cfg.Partials, manifest.Templates)
	prefix := manifest.Assets.Prefix
	files := maps.Clone(manifest.Assets.Files)
	if files == nil {
		files = map[string]string{}
	}
	if v, ok := manifest.Variants[selection.Variant]; ok {
		maps.Copy(cfg.Tokens, v.Tokens)
		maps.Copy(cfg.Partials, v.Templates)
		maps.Copy(files, v.Assets.Files)
		if v.Assets.Prefix != "" {
			prefix = v.Assets.Prefix
		}
	}
	for key, value := range cfg.Tokens {
		if strings.HasPrefix(key, themeTokenPrefix) {
			continue
		}
		cfg.CSSVars["--"+strings.ReplaceAll(key, ".", "-")] = value
	}
	cfg.AssetURL = assetResolver(prefix, files)
	return cfg
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	prefix = strings.TrimRight(prefix, "/")
	return func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
			return file
		}
		if prefix == "" {
			return file
		}
		return prefix + "/" + file
	}
}

// WithTheme applies the bootform.* tokens of a resolved theme over the
// builder classes ("bootform.button": "btn btn-dark").
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(b *Builder) {
		if cfg == nil {
			return
		}
		tokens := make(map[string]string)
		for key, value := range cfg.Tokens {
			if strings.HasPrefix(key, themeTokenPrefix) {
				tokens[key] = value
			}
		}
		b.classes = b.classes.Apply(tokens)
	}
}

// CSSVarsStyle renders CSS variables as a :root rule with sorted keys.
func CSSVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(vars[key])
		sb.WriteString(";\n")
	}
	sb.WriteString("}")
	return sb.String()
}
