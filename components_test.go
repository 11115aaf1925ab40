package uric_test

import (
	"testing"

	"github.com/ghettovoice/uric"
)

func TestComponents_Equal(t *testing.T) {
	t.Parallel()

	mustParse := func(t *testing.T, uri string) uric.Components {
		t.Helper()
		cm, err := uric.Parse(uri)
		if err != nil {
			t.Fatalf("uric.Parse(%q) error = %v, want nil", uri, err)
		}
		return cm
	}

	t.Run("same fields", func(t *testing.T) {
		t.Parallel()

		c1 := mustParse(t, "https://example.com/a?q=1#f")
		c2 := mustParse(t, "https://example.com/a?q=1#f")
		if !c1.Equal(c2) {
			t.Errorf("c1.Equal(c2) = false, want true")
		}
	})

	t.Run("clone", func(t *testing.T) {
		t.Parallel()

		c1 := mustParse(t, "https://example.com/hotels/{hotel}?q={q}")
		if c2 := c1.Clone(); !c1.Equal(c2) || !c2.Equal(c1) {
			t.Errorf("c1.Equal(c1.Clone()) = false, want true")
		}
	})

	t.Run("different query order", func(t *testing.T) {
		t.Parallel()

		c1 := mustParse(t, "https://example.com/a?x=1&y=2")
		c2 := mustParse(t, "https://example.com/a?y=2&x=1")
		if c1.Equal(c2) {
			t.Errorf("c1.Equal(c2) = true, want false")
		}
	})

	t.Run("no value vs empty value", func(t *testing.T) {
		t.Parallel()

		c1 := mustParse(t, "https://example.com/a?q")
		c2 := mustParse(t, "https://example.com/a?q=")
		if c1.Equal(c2) {
			t.Errorf("c1.Equal(c2) = true, want false")
		}
	})

	t.Run("raw vs encoded flag", func(t *testing.T) {
		t.Parallel()

		b := func() *uric.Builder { return uric.NewBuilder().Scheme("https").Host("example.com").Path("/a") }
		c1, err := b().Build()
		if err != nil {
			t.Fatalf("b.Build() error = %v, want nil", err)
		}
		c2, err := b().BuildEncoded()
		if err != nil {
			t.Fatalf("b.BuildEncoded() error = %v, want nil", err)
		}
		if c1.Equal(c2) {
			t.Errorf("c1.Equal(c2) = true, want false")
		}
	})

	t.Run("hierarchical never equals opaque", func(t *testing.T) {
		t.Parallel()

		h, err := uric.NewBuilder().Scheme("mailto").Path("user@example.com").Build()
		if err != nil {
			t.Fatalf("b.Build() error = %v, want nil", err)
		}
		o := mustParse(t, "mailto:user@example.com")
		// both render to the same string
		if h.String() != o.String() {
			t.Fatalf("h.String() = %q, o.String() = %q, want equal strings", h.String(), o.String())
		}
		if h.Equal(o) || o.Equal(h) {
			t.Errorf("cross-variant Equal = true, want false")
		}
	})
}

func TestComponents_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		uri  string
		want bool
	}{
		{"hierarchical", "https://example.com:8080/a", true},
		{"relative", "/a/b", true},
		{"templates", "{scheme}://{host}/a", true},
		{"opaque", "mailto:user@example.com", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			cm, err := uric.Parse(c.uri)
			if err != nil {
				t.Fatalf("uric.Parse(%q) error = %v, want nil", c.uri, err)
			}
			if got := cm.IsValid(); got != c.want {
				t.Errorf("cm.IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}
