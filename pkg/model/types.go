package model

import (
	"errors"
	"fmt"
)

// Action identifies what submitting the form does to the subject.
type Action string

const (
	// ActionCreate is used for subjects that have not been stored yet.
	ActionCreate Action = "create"
	// ActionUpdate is used for persisted subjects.
	ActionUpdate Action = "update"
	// ActionSubmit is used when the form is not backed by a record.
	ActionSubmit Action = "submit"
)

// Subject exposes the attribute metadata the form builder needs.
type Subject interface {
	// ObjectName is the parameter key used for ids and names ("user").
	ObjectName() string
	// HumanName is the display name used in button labels ("User").
	HumanName() string
	// Action reports which submit label applies to the subject.
	Action() Action
	// Value returns the current value of attribute. An empty attribute name
	// returns a nil value.
	Value(attribute string) (any, error)
	// Required reports whether validation metadata marks attribute as
	// required.
	Required(attribute string) bool
}

// AttributeLabeler is implemented by subjects that carry literal labels.
type AttributeLabeler interface {
	AttributeLabel(attribute string) (string, bool)
}

// ErrorSource is implemented by subjects that carry validation messages.
type ErrorSource interface {
	AttributeErrors(attribute string) []string
}

// ErrUnknownAttribute is returned when a subject has no such attribute.
var ErrUnknownAttribute = errors.New("unknown attribute")

// AttributeError reports a failed attribute lookup.
type AttributeError struct {
	Object    string
	Attribute string
	Err       error
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("model: %s %q for %s", e.Err, e.Attribute, e.Object)
}

func (e *AttributeError) Unwrap() error {
	return e.Err
}

func unknownAttribute(object, attribute string) error {
	return &AttributeError{Object: object, Attribute: attribute, Err: ErrUnknownAttribute}
}
