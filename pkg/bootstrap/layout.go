package bootstrap

import (
	"strings"
)

// Layout selects how labels and controls are arranged.
type Layout string

const (
	LayoutVertical   Layout = "vertical"
	LayoutHorizontal Layout = "horizontal"
	LayoutInline     Layout = "inline"
)

// ParseLayout maps a layout name to a Layout, defaulting to vertical.
func ParseLayout(value string) Layout {
	switch Layout(strings.ToLower(strings.TrimSpace(value))) {
	case LayoutHorizontal:
		return LayoutHorizontal
	case LayoutInline:
		return LayoutInline
	default:
		return LayoutVertical
	}
}

// Classes holds the CSS classes the builder emits. Zero values are not
// replaced with defaults; start from DefaultClasses and override.
type Classes struct {
	Group           string
	HorizontalGroup string
	InlineGroup     string
	Label           string
	HorizontalLabel string
	HiddenLabel     string
	RequiredLabel   string
	LabelCol        string
	ControlCol      string
	Plaintext       string
	Invalid         string
	Feedback        string
	Help            string
	Button          string
	PrimaryButton   string
	Alert           string
}

// DefaultClasses returns the Bootstrap 5 class set.
func DefaultClasses() Classes {
	return Classes{
		Group:           "mb-3",
		HorizontalGroup: "mb-3 row",
		InlineGroup:     "col",
		Label:           "form-label",
		HorizontalLabel: "col-form-label",
		HiddenLabel:     "visually-hidden",
		RequiredLabel:   "required",
		LabelCol:        "col-sm-2",
		ControlCol:      "col-sm-10",
		Plaintext:       "form-control-plaintext",
		Invalid:         "is-invalid",
		Feedback:        "invalid-feedback",
		Help:            "form-text text-muted",
		Button:          "btn btn-secondary",
		PrimaryButton:   "btn btn-primary",
		Alert:           "alert alert-danger",
	}
}

// Token names accepted by Classes.Apply, theme tokens and config files.
const (
	TokenGroup           = "group"
	TokenHorizontalGroup = "horizontal_group"
	TokenInlineGroup     = "inline_group"
	TokenLabel           = "label"
	TokenHorizontalLabel = "horizontal_label"
	TokenHiddenLabel     = "hidden_label"
	TokenRequiredLabel   = "required_label"
	TokenLabelCol        = "label_col"
	TokenControlCol      = "control_col"
	TokenPlaintext       = "plaintext"
	TokenInvalid         = "invalid"
	TokenFeedback        = "feedback"
	TokenHelp            = "help"
	TokenButton          = "button"
	TokenPrimary         = "primary"
	TokenAlert           = "alert"
)

// Apply overrides classes from a token map. Keys may carry the "bootform."
// prefix used by theme manifests. Unknown keys are ignored.
func (c Classes) Apply(tokens map[string]string) Classes {
	for key, value := range tokens {
		key = strings.TrimPrefix(strings.TrimSpace(key), themeTokenPrefix)
		if target := c.field(key); target != nil {
			*target = strings.TrimSpace(value)
		}
	}
	return c
}

func (c *Classes) field(token string) *string {
	switch token {
	case TokenGroup:
		return &c.Group
	case TokenHorizontalGroup:
		return &c.HorizontalGroup
	case TokenInlineGroup:
		return &c.InlineGroup
	case TokenLabel:
		return &c.Label
	case TokenHorizontalLabel:
		return &c.HorizontalLabel
	case TokenHiddenLabel:
		return &c.HiddenLabel
	case TokenRequiredLabel:
		return &c.RequiredLabel
	case TokenLabelCol:
		return &c.LabelCol
	case TokenControlCol:
		return &c.ControlCol
	case TokenPlaintext:
		return &c.Plaintext
	case TokenInvalid:
		return &c.Invalid
	case TokenFeedback:
		return &c.Feedback
	case TokenHelp:
		return &c.Help
	case TokenButton:
		return &c.Button
	case TokenPrimary:
		return &c.PrimaryButton
	case TokenAlert:
		return &c.Alert
	default:
		return nil
	}
}

// offsetClasses turns column classes into the matching offsets
// ("col-sm-2" -> "offset-sm-2").
func offsetClasses(labelCol string) string {
	var out []string
	for _, class := range strings.Fields(labelCol) {
		if strings.HasPrefix(class, "col-") {
			out = append(out, "offset-"+strings.TrimPrefix(class, "col-"))
		}
	}
	return strings.Join(out, " ")
}
