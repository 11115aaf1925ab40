package uric

import (
	"fmt"
	"net/url"

	"github.com/ghettovoice/uric/internal/types"
)

// Components is an immutable URI value. It comes in two variants:
// [Hierarchical] for URIs with an authority/path/query structure and
// [Opaque] for URIs whose scheme is followed directly by a non-"/"
// scheme-specific part (like "mailto:user@host").
//
// Every transformation returns a new value, so instances may be freely
// shared once built.
type Components interface {
	types.Renderer
	types.Cloneable[Components]
	types.Equalable
	types.ValidFlag
	fmt.Stringer

	// Scheme returns the URI scheme, or an empty string when absent.
	Scheme() string
	// Fragment returns the URI fragment, or an empty string when absent.
	Fragment() string
	// Encode returns a new value with every component percent-encoded per its
	// own RFC 3986 allowed character set. Encoding is idempotent: valid "%XX"
	// triplets already present are passed through unchanged.
	Encode() Components
	// Expand substitutes template placeholders positionally, one value per
	// placeholder occurrence in component order: scheme, userinfo, host,
	// port, path, query parameters, fragment.
	Expand(vals ...any) (Components, error)
	// ExpandNamed substitutes template placeholders by name.
	ExpandNamed(vars map[string]any) (Components, error)
	// Normalize returns a new value with "." and ".." path segments removed
	// per RFC 3986 section 5.2.4. Other components stay untouched.
	Normalize() Components
	// URI converts the value into a net/url URL.
	URI() (*url.URL, error)
	// CopyToBuilder copies every component into the target builder.
	CopyToBuilder(b *Builder)
}

var (
	_ Components = (*Hierarchical)(nil)
	_ Components = (*Opaque)(nil)
)
