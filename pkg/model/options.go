package model

import "strings"

// Option customises subjects built by this package.
type Option func(*options)

type options struct {
	objectName string
	humanName  string
	action     Action
	required   []string
	labels     map[string]string
	errors     map[string][]string
	strict     *bool
}

// WithObjectName overrides the derived object name.
func WithObjectName(name string) Option {
	return func(o *options) {
		o.objectName = strings.TrimSpace(name)
	}
}

// WithHumanName overrides the derived human name.
func WithHumanName(name string) Option {
	return func(o *options) {
		o.humanName = strings.TrimSpace(name)
	}
}

// WithAction forces the subject action.
func WithAction(action Action) Option {
	return func(o *options) {
		o.action = action
	}
}

// WithRequired marks additional attributes as required.
func WithRequired(attributes ...string) Option {
	return func(o *options) {
		for _, attribute := range attributes {
			if attribute = strings.TrimSpace(attribute); attribute != "" {
				o.required = append(o.required, attribute)
			}
		}
	}
}

// WithLabels supplies literal attribute labels.
func WithLabels(labels map[string]string) Option {
	return func(o *options) {
		if len(labels) == 0 {
			return
		}
		if o.labels == nil {
			o.labels = make(map[string]string, len(labels))
		}
		for key, value := range labels {
			o.labels[key] = value
		}
	}
}

// WithErrors attaches validation messages keyed by attribute.
func WithErrors(errs map[string][]string) Option {
	return func(o *options) {
		if len(errs) == 0 {
			return
		}
		if o.errors == nil {
			o.errors = make(map[string][]string, len(errs))
		}
		for key, messages := range errs {
			o.errors[key] = append(o.errors[key], messages...)
		}
	}
}

// Strict makes map backed subjects reject attributes they do not hold.
func Strict(enabled bool) Option {
	return func(o *options) {
		o.strict = &enabled
	}
}

func applyOptions(opts []Option) options {
	var cfg options
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
