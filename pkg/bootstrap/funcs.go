package bootstrap

import (
	"html/template"
)

// FuncMap exposes the builder helpers to html/template. Options are passed
// as trailing key/value pairs:
//
//	{{ static_control "email" "control_class" "lead" }}
//	{{ custom_control "avatar" .AvatarHTML "label" "Picture" }}
//	{{ primary "Save" "render_as_button" true }}
func FuncMap(b *Builder) template.FuncMap {
	return template.FuncMap{
		"static_control": func(field string, pairs ...any) (template.HTML, error) {
			opts, err := Pairs(pairs...)
			if err != nil {
				return "", err
			}
			return b.StaticControl(field, opts)
		},
		"custom_control": func(field string, content any, pairs ...any) (template.HTML, error) {
			opts, err := Pairs(pairs...)
			if err != nil {
				return "", err
			}
			return b.CustomControl(field, opts, constant(content))
		},
		"submit": func(label string, pairs ...any) (template.HTML, error) {
			opts, err := Pairs(pairs...)
			if err != nil {
				return "", err
			}
			return b.Submit(label, opts), nil
		},
		"primary": func(label any, pairs ...any) (template.HTML, error) {
			opts, err := Pairs(pairs...)
			if err != nil {
				return "", err
			}
			return b.Primary(label, opts, nil), nil
		},
		"button": func(label any, pairs ...any) (template.HTML, error) {
			opts, err := Pairs(pairs...)
			if err != nil {
				return "", err
			}
			return b.Button(label, opts, nil), nil
		},
		"error_summary": b.ErrorSummary,
		"field_id":      b.fieldID,
		"field_name":    b.fieldName,
		"submit_label":  b.SubmitLabel,
	}
}

// TemplateFuncs exposes the builder helpers to pongo2 style engines that
// take plain functions. Helpers return markup strings, so templates pipe
// them through the safe filter:
//
//	{{ static_control("email", "extra", "x")|safe }}
//
// Render errors are logged and produce an empty string.
func TemplateFuncs(b *Builder) map[string]any {
	return map[string]any{
		"static_control": func(field string, pairs ...any) string {
			opts, err := Pairs(pairs...)
			if err != nil {
				return b.fail("static_control", err)
			}
			out, err := b.StaticControl(field, opts)
			if err != nil {
				return b.fail("static_control", err)
			}
			return string(out)
		},
		"custom_control": func(field string, content any, pairs ...any) string {
			opts, err := Pairs(pairs...)
			if err != nil {
				return b.fail("custom_control", err)
			}
			out, err := b.CustomControl(field, opts, constant(content))
			if err != nil {
				return b.fail("custom_control", err)
			}
			return string(out)
		},
		"submit": func(label string, pairs ...any) string {
			opts, err := Pairs(pairs...)
			if err != nil {
				return b.fail("submit", err)
			}
			return string(b.Submit(label, opts))
		},
		"primary": func(label any, pairs ...any) string {
			opts, err := Pairs(pairs...)
			if err != nil {
				return b.fail("primary", err)
			}
			return string(b.Primary(label, opts, nil))
		},
		"button": func(label any, pairs ...any) string {
			opts, err := Pairs(pairs...)
			if err != nil {
				return b.fail("button", err)
			}
			return string(b.Button(label, opts, nil))
		},
		"error_summary": func(messages []string) string {
			return string(b.ErrorSummary(messages))
		},
		"field_id":     b.fieldID,
		"field_name":   b.fieldName,
		"submit_label": b.SubmitLabel,
	}
}

func (b *Builder) fieldID(field string) string {
	return FieldID(b.subject.ObjectName(), field)
}

func (b *Builder) fieldName(field string) string {
	return FieldName(b.subject.ObjectName(), field)
}

func (b *Builder) fail(helper string, err error) string {
	b.logger.Error("bootstrap helper failed", "helper", helper, "error", err)
	return ""
}

func constant(value any) Block {
	if value == nil {
		return nil
	}
	return func() any { return value }
}
