package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseConfig decodes a builder configuration document.
func ParseConfig(data []byte, source string) (Config, error) {
	var cfg Config
	if err := decode(data, source, &cfg); err != nil {
		return Config{}, err
	}
	cfg.Layout = strings.ToLower(strings.TrimSpace(cfg.Layout))
	cfg.Locale = strings.TrimSpace(cfg.Locale)
	cfg.DefaultLocale = strings.TrimSpace(cfg.DefaultLocale)
	cfg.Translations = strings.TrimSpace(cfg.Translations)
	return cfg, nil
}

// LoadConfig reads and decodes the configuration file at path.
func LoadConfig(fsys fs.FS, path string) (Config, error) {
	data, err := readFile(fsys, path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(data, path)
}

// ParseDefinition decodes and validates a form definition.
func ParseDefinition(data []byte, source string) (Definition, error) {
	var def Definition
	if err := decode(data, source, &def); err != nil {
		return Definition{}, err
	}
	def.Source = source
	return normaliseDefinition(def)
}

// LoadDefinition reads and decodes the definition file at path.
func LoadDefinition(fsys fs.FS, path string) (Definition, error) {
	data, err := readFile(fsys, path)
	if err != nil {
		return Definition{}, err
	}
	return ParseDefinition(data, path)
}

// LoadDefinitionsFS walks fsys and parses every JSON/YAML definition, keyed
// by object name. Two files defining the same object are rejected.
func LoadDefinitionsFS(fsys fs.FS) (map[string]Definition, error) {
	out := make(map[string]Definition)
	if fsys == nil {
		return out, nil
	}
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDocument(path) {
			return nil
		}
		def, err := LoadDefinition(fsys, path)
		if err != nil {
			return err
		}
		if previous, exists := out[def.Object]; exists {
			return fmt.Errorf("config: duplicate object %q (files %s, %s)", def.Object, previous.Source, path)
		}
		out[def.Object] = def
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Objects returns the keys of a definition set in sorted order.
func Objects(defs map[string]Definition) []string {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func readFile(fsys fs.FS, path string) ([]byte, error) {
	if fsys == nil {
		return nil, fmt.Errorf("config: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return data, nil
}

func decode(data []byte, source string, target any) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return fmt.Errorf("config: file %s is empty", source)
	}
	if err := json.Unmarshal(data, target); err == nil {
		return nil
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("config: parse %s: %w", source, err)
	}
	return nil
}

func normaliseDefinition(def Definition) (Definition, error) {
	def.Object = strings.TrimSpace(def.Object)
	def.Action = strings.ToLower(strings.TrimSpace(def.Action))
	def.Layout = strings.ToLower(strings.TrimSpace(def.Layout))
	switch def.Action {
	case "", "create", "update", "submit":
	default:
		return Definition{}, fmt.Errorf("config: %s: unknown action %q", def.Source, def.Action)
	}

	if ref := def.Schema; ref != nil {
		ref.Document = strings.TrimSpace(ref.Document)
		ref.Name = strings.TrimSpace(ref.Name)
		ref.Operation = strings.TrimSpace(ref.Operation)
		if ref.Document == "" {
			return Definition{}, fmt.Errorf("config: %s: schema document is required", def.Source)
		}
		if (ref.Name == "") == (ref.Operation == "") {
			return Definition{}, fmt.Errorf("config: %s: schema needs exactly one of name or operation", def.Source)
		}
	}

	controls := make([]Control, 0, len(def.Controls))
	for idx, control := range def.Controls {
		control.Kind = strings.ToLower(strings.TrimSpace(control.Kind))
		control.Field = strings.TrimSpace(control.Field)
		switch control.Kind {
		case KindStatic, KindCustom, KindSubmit, KindPrimary, KindButton:
		case "":
			return Definition{}, fmt.Errorf("config: %s: control %d has no kind", def.Source, idx)
		default:
			return Definition{}, fmt.Errorf("config: %s: control %d has unknown kind %q", def.Source, idx, control.Kind)
		}
		control.Options = normaliseOptions(control.Options)
		controls = append(controls, control)
	}
	def.Controls = controls

	required := make([]string, 0, len(def.Required))
	for _, name := range def.Required {
		if name = strings.TrimSpace(name); name != "" {
			required = append(required, name)
		}
	}
	def.Required = required
	def.Values = normaliseOptions(def.Values)
	return def, nil
}

// normaliseOptions converts nested YAML maps into map[string]any so values
// stringify predictably.
func normaliseOptions(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[strings.TrimSpace(key)] = normaliseValue(value)
	}
	return out
}

func normaliseValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return normaliseOptions(typed)
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[fmt.Sprint(key)] = normaliseValue(item)
		}
		return out
	case float64:
		if typed == float64(int64(typed)) {
			return int64(typed)
		}
		return typed
	default:
		return value
	}
}

func isDocument(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
