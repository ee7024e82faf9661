package bootstrap

import (
	"testing"

	"github.com/goliatone/go-bootform/pkg/model"
)

type user struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password"`
	Comments string `form:"comments"`
	Misc     string `form:"misc" label:"Miscellaneous"`
}

func newUser(t *testing.T, opts ...model.Option) model.Subject {
	t.Helper()
	subject, err := model.Reflect(&user{Email: "steve@example.com"}, opts...)
	if err != nil {
		t.Fatalf("reflect user: %v", err)
	}
	return subject
}

func newBuilder(t *testing.T, opts ...Option) *Builder {
	t.Helper()
	return New(newUser(t), opts...)
}

func newHorizontalBuilder(t *testing.T, opts ...Option) *Builder {
	t.Helper()
	return New(newUser(t), append([]Option{WithLayout(LayoutHorizontal)}, opts...)...)
}

func text(value string) Block {
	return func() any { return value }
}
