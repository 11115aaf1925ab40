package uric

import (
	"fmt"
	"io"
	"net/url"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uric/internal/errorutil"
	"github.com/ghettovoice/uric/internal/grammar"
	"github.com/ghettovoice/uric/internal/ioutil"
	"github.com/ghettovoice/uric/internal/template"
	"github.com/ghettovoice/uric/internal/util"
)

// Opaque is a URI whose scheme is followed directly by a non-"/"
// scheme-specific part, like "mailto:user@host" or "http:example.com/foo".
// Opaque URIs are not decomposed any further: the scheme-specific part is
// kept as a single raw string and [Opaque.Encode] leaves it untouched.
type Opaque struct {
	scheme   string
	ssp      string
	fragment string
}

// Scheme returns the URI scheme.
func (c *Opaque) Scheme() string {
	if c == nil {
		return ""
	}
	return c.scheme
}

// SchemeSpecificPart returns the raw scheme-specific part.
func (c *Opaque) SchemeSpecificPart() string {
	if c == nil {
		return ""
	}
	return c.ssp
}

// Fragment returns the URI fragment.
func (c *Opaque) Fragment() string {
	if c == nil {
		return ""
	}
	return c.fragment
}

// Encode returns the value unchanged apart from the fragment: an opaque URI
// has no component structure to encode.
func (c *Opaque) Encode() Components {
	if c == nil {
		return nil
	}
	c2 := *c
	c2.fragment = grammar.Escape(c.fragment, shouldEscapeFragmentChar)
	return &c2
}

// Expand substitutes template placeholders positionally in scheme,
// scheme-specific part and fragment order.
func (c *Opaque) Expand(vals ...any) (Components, error) {
	return errtrace.Wrap2(c.expand(template.NewListResolver(vals...)))
}

// ExpandNamed substitutes template placeholders by name.
func (c *Opaque) ExpandNamed(vars map[string]any) (Components, error) {
	return errtrace.Wrap2(c.expand(template.MapResolver(vars)))
}

func (c *Opaque) expand(r template.Resolver) (Components, error) {
	if c == nil {
		return nil, nil
	}

	c2 := &Opaque{}
	var err error
	if c2.scheme, err = template.Expand(c.scheme, r); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if c2.ssp, err = template.Expand(c.ssp, r); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if c2.fragment, err = template.Expand(c.fragment, r); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return c2, nil
}

// Normalize returns the value unchanged: an opaque URI has no path to normalize.
func (c *Opaque) Normalize() Components {
	if c == nil {
		return nil
	}
	c2 := *c
	return &c2
}

// URI converts the value into a net/url URL.
func (c *Opaque) URI() (*url.URL, error) {
	if c == nil {
		return nil, nil
	}
	return &url.URL{Scheme: c.scheme, Opaque: c.ssp, Fragment: c.fragment}, nil
}

// RenderTo writes the "scheme:ssp#fragment" form to the provided writer.
func (c *Opaque) RenderTo(w io.Writer) (int, error) {
	if c == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if c.scheme != "" {
		cw.Fprint(c.scheme, ":") //nolint:errcheck
	}
	cw.WriteString(c.ssp) //nolint:errcheck
	if c.fragment != "" {
		cw.Fprint("#", c.fragment) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the canonical string form of the URI.
func (c *Opaque) String() string {
	if c == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	c.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (c *Opaque) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			c.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, c.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(c.String()))
		return
	default:
		type hideMethods Opaque
		type Opaque hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Opaque)(c))
		return
	}
}

// Clone returns a copy of the value.
func (c *Opaque) Clone() Components {
	if c == nil {
		return nil
	}
	c2 := *c
	return &c2
}

// Equal compares this value with another for structural equality.
// An Opaque value is never equal to a [Hierarchical] one, even when both
// render to the same string.
func (c *Opaque) Equal(val any) bool {
	var other *Opaque
	switch v := val.(type) {
	case Opaque:
		other = &v
	case *Opaque:
		other = v
	default:
		return false
	}

	if c == other {
		return true
	} else if c == nil || other == nil {
		return false
	}

	return c.scheme == other.scheme &&
		c.ssp == other.ssp &&
		c.fragment == other.fragment
}

// IsValid checks whether the URI components are syntactically valid.
func (c *Opaque) IsValid() bool {
	return c != nil && grammar.IsScheme(c.scheme) && c.ssp != ""
}

// CopyToBuilder copies every component into the target builder.
func (c *Opaque) CopyToBuilder(b *Builder) {
	if c == nil || b == nil {
		return
	}
	if c.scheme != "" {
		b.Scheme(c.scheme)
	}
	b.SchemeSpecificPart(c.ssp)
	if c.fragment != "" {
		b.Fragment(c.fragment)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (c *Opaque) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Opaque) UnmarshalText(text []byte) error {
	b, err := FromURIString(string(text))
	if err != nil {
		*c = Opaque{}
		return errtrace.Wrap(err)
	}
	cm, err := b.Build()
	if err != nil {
		*c = Opaque{}
		return errtrace.Wrap(err)
	}
	o, ok := cm.(*Opaque)
	if !ok {
		*c = Opaque{}
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("%q is not an opaque URI", string(text)))
	}
	*c = *o
	return nil
}
