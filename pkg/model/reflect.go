package model

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

const (
	tagForm     = "form"
	tagValidate = "validate"
	tagLabel    = "label"
)

// Persister is implemented by records that know whether they were stored.
type Persister interface {
	Persisted() bool
}

// ErrorReporter is implemented by records that carry validation messages.
type ErrorReporter interface {
	FormErrors() map[string][]string
}

// ObjectNamer lets a record choose its parameter key.
type ObjectNamer interface {
	FormObjectName() string
}

// StructSubject exposes a struct through the Subject interface.
//
// Attribute names come from the `form` tag, falling back to the snake cased
// field name; `form:"-"` hides a field. A `validate` tag containing the
// `required` rule marks the attribute as required and a `label` tag supplies a
// literal label.
type StructSubject struct {
	objectName string
	humanName  string
	action     Action
	value      reflect.Value
	fields     map[string]structField
	errors     map[string][]string
}

type structField struct {
	index    []int
	required bool
	label    string
}

// Reflect builds a StructSubject for a struct or a non-nil struct pointer.
func Reflect(record any, opts ...Option) (*StructSubject, error) {
	if record == nil {
		return nil, errors.New("model: record is nil")
	}
	value := reflect.ValueOf(record)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, fmt.Errorf("model: record %T is a nil pointer", record)
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model: record must be a struct, got %T", record)
	}

	cfg := applyOptions(opts)
	subject := &StructSubject{
		objectName: cfg.objectName,
		humanName:  cfg.humanName,
		action:     cfg.action,
		value:      value,
		fields:     collectFields(value.Type()),
	}

	if subject.objectName == "" {
		if namer, ok := record.(ObjectNamer); ok {
			subject.objectName = strings.TrimSpace(namer.FormObjectName())
		}
	}
	if subject.objectName == "" {
		subject.objectName = ObjectNameFor(value.Type().Name())
	}
	if subject.humanName == "" {
		subject.humanName = Humanize(subject.objectName)
	}
	if subject.action == "" {
		subject.action = ActionCreate
		if persister, ok := record.(Persister); ok && persister.Persisted() {
			subject.action = ActionUpdate
		}
	}

	for _, name := range cfg.required {
		field, ok := subject.fields[name]
		if !ok {
			return nil, unknownAttribute(subject.objectName, name)
		}
		field.required = true
		subject.fields[name] = field
	}
	for name, label := range cfg.labels {
		if field, ok := subject.fields[name]; ok {
			field.label = label
			subject.fields[name] = field
		}
	}

	subject.errors = cfg.errors
	if reporter, ok := record.(ErrorReporter); ok {
		subject.errors = mergeErrors(subject.errors, reporter.FormErrors())
	}

	return subject, nil
}

// ObjectName implements Subject.
func (s *StructSubject) ObjectName() string { return s.objectName }

// HumanName implements Subject.
func (s *StructSubject) HumanName() string { return s.humanName }

// Action implements Subject.
func (s *StructSubject) Action() Action { return s.action }

// Value implements Subject.
func (s *StructSubject) Value(attribute string) (any, error) {
	if attribute == "" {
		return nil, nil
	}
	field, ok := s.fields[attribute]
	if !ok {
		return nil, unknownAttribute(s.objectName, attribute)
	}
	value, err := s.value.FieldByIndexErr(field.index)
	if err != nil {
		// nil embedded pointer on the path
		return nil, nil
	}
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return nil, nil
		}
		value = value.Elem()
	}
	return value.Interface(), nil
}

// Required implements Subject.
func (s *StructSubject) Required(attribute string) bool {
	return s.fields[attribute].required
}

// AttributeLabel implements AttributeLabeler.
func (s *StructSubject) AttributeLabel(attribute string) (string, bool) {
	field, ok := s.fields[attribute]
	if !ok || field.label == "" {
		return "", false
	}
	return field.label, true
}

// AttributeErrors implements ErrorSource.
func (s *StructSubject) AttributeErrors(attribute string) []string {
	return s.errors[attribute]
}

// Attributes returns the attribute names in sorted order.
func (s *StructSubject) Attributes() []string {
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func collectFields(typ reflect.Type) map[string]structField {
	fields := make(map[string]structField)
	for _, field := range reflect.VisibleFields(typ) {
		if !field.IsExported() || field.Anonymous {
			continue
		}
		name := SnakeCase(field.Name)
		if tag, ok := field.Tag.Lookup(tagForm); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			tagName = strings.TrimSpace(tagName)
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		fields[name] = structField{
			index:    field.Index,
			required: hasRule(field.Tag.Get(tagValidate), "required"),
			label:    strings.TrimSpace(field.Tag.Get(tagLabel)),
		}
	}
	return fields
}

func hasRule(tag, rule string) bool {
	for _, candidate := range strings.Split(tag, ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(candidate), "=")
		if name == rule {
			return true
		}
	}
	return false
}

func mergeErrors(dst map[string][]string, src map[string][]string) map[string][]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string][]string, len(src))
	}
	for key, messages := range src {
		dst[key] = append(dst[key], messages...)
	}
	return dst
}
