package model

import (
	"maps"
	"slices"
	"strings"
)

// MapSubject is a Subject backed by a value map. It suits forms built from
// decoded documents where no Go type describes the record.
type MapSubject struct {
	objectName string
	humanName  string
	action     Action
	strict     bool
	values     map[string]any
	required   map[string]struct{}
	labels     map[string]string
	errors     map[string][]string
}

// NewMapSubject builds a subject named objectName holding values. Unknown
// attributes resolve to nil unless Strict(true) is supplied.
func NewMapSubject(objectName string, values map[string]any, opts ...Option) *MapSubject {
	cfg := applyOptions(opts)

	subject := &MapSubject{
		objectName: strings.TrimSpace(objectName),
		humanName:  cfg.humanName,
		action:     cfg.action,
		values:     maps.Clone(values),
		required:   make(map[string]struct{}, len(cfg.required)),
		labels:     cfg.labels,
		errors:     cfg.errors,
	}
	if cfg.objectName != "" {
		subject.objectName = cfg.objectName
	}
	if subject.humanName == "" {
		subject.humanName = Humanize(subject.objectName)
	}
	if subject.action == "" {
		subject.action = ActionCreate
	}
	if cfg.strict != nil {
		subject.strict = *cfg.strict
	}
	for _, name := range cfg.required {
		subject.required[name] = struct{}{}
	}
	return subject
}

// Anonymous returns a subject for forms that are not backed by a record.
// Submit buttons use the "Save" wording and every attribute is empty.
func Anonymous(objectName string) *MapSubject {
	return NewMapSubject(objectName, nil, WithAction(ActionSubmit))
}

// ObjectName implements Subject.
func (s *MapSubject) ObjectName() string { return s.objectName }

// HumanName implements Subject.
func (s *MapSubject) HumanName() string { return s.humanName }

// Action implements Subject.
func (s *MapSubject) Action() Action { return s.action }

// Value implements Subject.
func (s *MapSubject) Value(attribute string) (any, error) {
	if attribute == "" {
		return nil, nil
	}
	value, ok := s.values[attribute]
	if !ok && s.strict && !s.known(attribute) {
		return nil, unknownAttribute(s.objectName, attribute)
	}
	return value, nil
}

// Required implements Subject.
func (s *MapSubject) Required(attribute string) bool {
	_, ok := s.required[attribute]
	return ok
}

// AttributeLabel implements AttributeLabeler.
func (s *MapSubject) AttributeLabel(attribute string) (string, bool) {
	label, ok := s.labels[attribute]
	if !ok || strings.TrimSpace(label) == "" {
		return "", false
	}
	return label, true
}

// AttributeErrors implements ErrorSource.
func (s *MapSubject) AttributeErrors(attribute string) []string {
	return s.errors[attribute]
}

// Attributes returns every attribute the subject knows about, sorted.
func (s *MapSubject) Attributes() []string {
	set := make(map[string]struct{}, len(s.values)+len(s.required)+len(s.labels))
	for name := range s.values {
		set[name] = struct{}{}
	}
	for name := range s.required {
		set[name] = struct{}{}
	}
	for name := range s.labels {
		set[name] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

// Set replaces the value of attribute.
func (s *MapSubject) Set(attribute string, value any) {
	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[attribute] = value
}

func (s *MapSubject) known(attribute string) bool {
	if _, ok := s.required[attribute]; ok {
		return true
	}
	_, ok := s.labels[attribute]
	return ok
}
