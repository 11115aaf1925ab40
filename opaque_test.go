package uric_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/uric"
)

func TestOpaque_Components(t *testing.T) {
	t.Parallel()

	cm, err := uric.Parse("mailto:user@example.com#top")
	if err != nil {
		t.Fatalf("uric.Parse() error = %v, want nil", err)
	}
	o, ok := cm.(*uric.Opaque)
	if !ok {
		t.Fatalf("uric.Parse() = %T, want *uric.Opaque", cm)
	}

	if got, want := o.Scheme(), "mailto"; got != want {
		t.Errorf("o.Scheme() = %q, want %q", got, want)
	}
	if got, want := o.SchemeSpecificPart(), "user@example.com"; got != want {
		t.Errorf("o.SchemeSpecificPart() = %q, want %q", got, want)
	}
	if got, want := o.Fragment(), "top"; got != want {
		t.Errorf("o.Fragment() = %q, want %q", got, want)
	}
	if !o.IsValid() {
		t.Errorf("o.IsValid() = false, want true")
	}
}

func TestOpaque_Encode(t *testing.T) {
	t.Parallel()

	cm, err := uric.NewBuilder().
		Scheme("mailto").
		SchemeSpecificPart("user name@example.com").
		Fragment("fr ag").
		Build()
	if err != nil {
		t.Fatalf("b.Build() error = %v, want nil", err)
	}

	// the scheme-specific part has no component structure and stays raw
	if got, want := cm.Encode().String(), "mailto:user name@example.com#fr%20ag"; got != want {
		t.Errorf("cm.Encode().String() = %q, want %q", got, want)
	}
}

func TestOpaque_Expand(t *testing.T) {
	t.Parallel()

	cm, err := uric.Parse("mailto:{user}@example.com#{frag}")
	if err != nil {
		t.Fatalf("uric.Parse() error = %v, want nil", err)
	}

	t.Run("named", func(t *testing.T) {
		t.Parallel()

		cm2, err := cm.ExpandNamed(map[string]any{"user": "bob", "frag": "top"})
		if err != nil {
			t.Fatalf("cm.ExpandNamed() error = %v, want nil", err)
		}
		if got, want := cm2.String(), "mailto:bob@example.com#top"; got != want {
			t.Errorf("cm2.String() = %q, want %q", got, want)
		}
	})

	t.Run("positional", func(t *testing.T) {
		t.Parallel()

		cm2, err := cm.Expand("bob", "top")
		if err != nil {
			t.Fatalf("cm.Expand() error = %v, want nil", err)
		}
		if got, want := cm2.String(), "mailto:bob@example.com#top"; got != want {
			t.Errorf("cm2.String() = %q, want %q", got, want)
		}
	})

	t.Run("missing variable", func(t *testing.T) {
		t.Parallel()

		if _, err := cm.ExpandNamed(map[string]any{"user": "bob"}); !errors.Is(err, uric.ErrMissingVariable) {
			t.Errorf("cm.ExpandNamed() error = %v, want %v", err, uric.ErrMissingVariable)
		}
	})
}

func TestOpaque_Normalize(t *testing.T) {
	t.Parallel()

	cm, err := uric.Parse("mailto:user@example.com")
	if err != nil {
		t.Fatalf("uric.Parse() error = %v, want nil", err)
	}

	cm2 := cm.Normalize()
	if !cm2.Equal(cm) {
		t.Errorf("cm.Normalize() = %q, want equal to %q", cm2.String(), cm.String())
	}
}

func TestOpaque_URI(t *testing.T) {
	t.Parallel()

	cm, err := uric.Parse("mailto:user@example.com#top")
	if err != nil {
		t.Fatalf("uric.Parse() error = %v, want nil", err)
	}

	u, err := cm.URI()
	if err != nil {
		t.Fatalf("cm.URI() error = %v, want nil", err)
	}
	if got, want := u.Opaque, "user@example.com"; got != want {
		t.Errorf("u.Opaque = %q, want %q", got, want)
	}
	if got, want := u.String(), "mailto:user@example.com#top"; got != want {
		t.Errorf("u.String() = %q, want %q", got, want)
	}
}

func TestOpaque_TextMarshalling(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		src, err := uric.Parse("mailto:user@example.com#top")
		if err != nil {
			t.Fatalf("uric.Parse() error = %v, want nil", err)
		}
		text, err := src.(*uric.Opaque).MarshalText()
		if err != nil {
			t.Fatalf("src.MarshalText() error = %v, want nil", err)
		}

		var dst uric.Opaque
		if err = dst.UnmarshalText(text); err != nil {
			t.Fatalf("dst.UnmarshalText(%q) error = %v, want nil", text, err)
		}
		if !dst.Equal(src) {
			t.Errorf("dst.Equal(src) = false, want true, dst = %q", dst.String())
		}
	})

	t.Run("hierarchical input rejected", func(t *testing.T) {
		t.Parallel()

		var dst uric.Opaque
		err := dst.UnmarshalText([]byte("https://example.com/a"))
		if !errors.Is(err, uric.ErrInvalidArgument) {
			t.Errorf("dst.UnmarshalText() error = %v, want %v", err, uric.ErrInvalidArgument)
		}
	})
}
