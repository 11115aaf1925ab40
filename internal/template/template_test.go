package template_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/uric/internal/errorutil"
	"github.com/ghettovoice/uric/internal/template"
)

func TestExpand_Named(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		str     string
		vars    map[string]any
		want    string
		wantErr error
	}{
		{"no placeholders", "/foo/bar", nil, "/foo/bar", nil},
		{"single", "/{foo}", map[string]any{"foo": "bar"}, "/bar", nil},
		{"repeated name", "{a}-{a}", map[string]any{"a": 1}, "1-1", nil},
		{"regex suffix ignored", "/{id:[0-9]+}", map[string]any{"id": 42}, "/42", nil},
		{"regex with quantifier braces", "/{id:\\d{2}}", map[string]any{"id": 42}, "/42", nil},
		{"nil value", "/{foo}", map[string]any{"foo": nil}, "/", nil},
		{"raw insert", "/{foo}", map[string]any{"foo": "a b"}, "/a b", nil},
		{"missing", "/{foo}", map[string]any{"bar": 1}, "", errorutil.ErrMissingVariable},
		{"unbalanced", "/{foo", map[string]any{"foo": 1}, "", errorutil.ErrInvalidArgument},
		{"empty name", "/{}", map[string]any{}, "", errorutil.ErrInvalidArgument},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := template.Expand(c.str, template.MapResolver(c.vars))
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("template.Expand(%q) error = %v, want %v", c.str, err, c.wantErr)
			}
			if got != c.want {
				t.Errorf("template.Expand(%q) = %q, want %q", c.str, got, c.want)
			}
		})
	}
}

func TestExpand_Positional(t *testing.T) {
	t.Parallel()

	t.Run("consumes in order", func(t *testing.T) {
		t.Parallel()

		r := template.NewListResolver("a", 2, "c")
		for _, c := range []struct{ str, want string }{
			{"/{x}", "/a"},
			{"808{digit}", "8082"},
			{"{y}", "c"},
		} {
			got, err := template.Expand(c.str, r)
			if err != nil {
				t.Fatalf("template.Expand(%q) error = %v, want nil", c.str, err)
			}
			if got != c.want {
				t.Errorf("template.Expand(%q) = %q, want %q", c.str, got, c.want)
			}
		}
	})

	t.Run("exhausted", func(t *testing.T) {
		t.Parallel()

		r := template.NewListResolver("only")
		if _, err := template.Expand("/{a}/{b}", r); !errors.Is(err, errorutil.ErrMissingVariable) {
			t.Errorf("template.Expand() error = %v, want %v", err, errorutil.ErrMissingVariable)
		}
	})
}
