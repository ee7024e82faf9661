package bootstrap

import (
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-bootform/pkg/i18n"
	"github.com/goliatone/go-bootform/pkg/logging"
	"github.com/goliatone/go-bootform/pkg/model"
)

// Option configures a Builder.
type Option func(*Builder)

// Builder renders Bootstrap form markup for one subject. It is immutable after
// New returns and safe for concurrent use.
type Builder struct {
	subject    model.Subject
	layout     Layout
	classes    Classes
	translator i18n.Translator
	locale     string
	onMissing  i18n.MissingTranslationHandler
	logger     *slog.Logger
	policy     *bluemonday.Policy
}

// WithLayout sets the default layout for every control.
func WithLayout(layout Layout) Option {
	return func(b *Builder) {
		if layout != "" {
			b.layout = layout
		}
	}
}

// WithLabelCol overrides the horizontal label column classes.
func WithLabelCol(classes string) Option {
	return func(b *Builder) {
		if classes = strings.TrimSpace(classes); classes != "" {
			b.classes.LabelCol = classes
		}
	}
}

// WithControlCol overrides the horizontal control column classes.
func WithControlCol(classes string) Option {
	return func(b *Builder) {
		if classes = strings.TrimSpace(classes); classes != "" {
			b.classes.ControlCol = classes
		}
	}
}

// WithClasses replaces the whole class set.
func WithClasses(classes Classes) Option {
	return func(b *Builder) {
		b.classes = classes
	}
}

// WithClassTokens overrides individual classes by token name.
func WithClassTokens(tokens map[string]string) Option {
	return func(b *Builder) {
		b.classes = b.classes.Apply(tokens)
	}
}

// WithTranslator enables i18n lookups for labels and button values.
func WithTranslator(t i18n.Translator) Option {
	return func(b *Builder) {
		b.translator = t
	}
}

// WithLocale sets the locale passed to the translator.
func WithLocale(locale string) Option {
	return func(b *Builder) {
		b.locale = strings.TrimSpace(locale)
	}
}

// WithOnMissing sets the handler used when a translation is missing.
func WithOnMissing(handler i18n.MissingTranslationHandler) Option {
	return func(b *Builder) {
		b.onMissing = handler
	}
}

// WithLogger sets the logger. Missing translations are logged at debug
// level unless WithOnMissing installs another handler.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithContentPolicy filters trusted block content through policy.
func WithContentPolicy(policy *bluemonday.Policy) Option {
	return func(b *Builder) {
		b.policy = policy
	}
}

// DefaultContentPolicy allows the inline markup commonly placed in custom
// controls and buttons while stripping scripts and event handlers.
func DefaultContentPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Globally()
	return policy
}

// New returns a builder for subject. A nil subject behaves like a form that
// is not backed by a record.
func New(subject model.Subject, opts ...Option) *Builder {
	if subject == nil {
		subject = model.Anonymous("")
	}
	b := &Builder{
		subject: subject,
		layout:  LayoutVertical,
		classes: DefaultClasses(),
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	if b.onMissing == nil {
		b.onMissing = i18n.LogMissing(b.logger, i18n.DefaultMissing)
	}
	return b
}

// Subject returns the subject the builder renders.
func (b *Builder) Subject() model.Subject {
	return b.subject
}

// Layout returns the default layout.
func (b *Builder) Layout() Layout {
	return b.layout
}

// Classes returns the effective class set.
func (b *Builder) Classes() Classes {
	return b.classes
}

// Locale returns the configured locale.
func (b *Builder) Locale() string {
	return b.locale
}

func (b *Builder) translate(keys []string, fallback string, args ...any) string {
	return i18n.Lookup(b.translator, b.locale, keys, fallback, b.onMissing, args...)
}
