package uric

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uric/internal/errorutil"
	"github.com/ghettovoice/uric/internal/grammar"
	"github.com/ghettovoice/uric/internal/ioutil"
	"github.com/ghettovoice/uric/internal/template"
	"github.com/ghettovoice/uric/internal/util"
)

// Hierarchical is a URI with an authority/path/query structure:
// "scheme://userinfo@host:port/path?query#fragment".
//
// Instances are immutable and created only by [Builder.Build],
// [Builder.BuildEncoded] or one of the transformation methods.
type Hierarchical struct {
	scheme   string
	userInfo string
	host     string
	hasHost  bool
	portText string
	pth      pathComponent
	params   Params
	fragment string
	encoded  bool
}

// Scheme returns the URI scheme.
func (c *Hierarchical) Scheme() string {
	if c == nil {
		return ""
	}
	return c.scheme
}

// UserInfo returns the userinfo part of the authority.
func (c *Hierarchical) UserInfo() string {
	if c == nil {
		return ""
	}
	return c.userInfo
}

// Host returns the host part of the authority.
func (c *Hierarchical) Host() string {
	if c == nil {
		return ""
	}
	return c.host
}

// PortText returns the raw port text, possibly holding a template
// placeholder like "{port}" or "808{digit}".
func (c *Hierarchical) PortText() string {
	if c == nil {
		return ""
	}
	return c.portText
}

// Port resolves the port to its numeric value. It returns -1 without error
// when no port is set and fails with [ErrIllegalState] when the port text
// still holds an unresolved template placeholder.
func (c *Hierarchical) Port() (int, error) {
	if c == nil || c.portText == "" {
		return -1, nil
	}
	if grammar.HasTemplate(c.portText) {
		return -1, errtrace.Wrap(errorutil.NewIllegalStateError("port %q contains a template placeholder", c.portText))
	}
	port, err := strconv.Atoi(c.portText)
	if err != nil {
		return -1, errtrace.Wrap(errorutil.NewIllegalStateError("port %q is not numeric", c.portText))
	}
	return port, nil
}

// Path returns the full path string.
func (c *Hierarchical) Path() string {
	if c == nil || c.pth == nil {
		return ""
	}
	return c.pth.path()
}

// PathSegments returns the path split into its segments, separators excluded.
func (c *Hierarchical) PathSegments() []string {
	if c == nil || c.pth == nil {
		return nil
	}
	return c.pth.pathSegments()
}

// Query returns the query string form of the parameters, without the leading "?".
func (c *Hierarchical) Query() string {
	if c == nil {
		return ""
	}
	return c.params.String()
}

// QueryParams returns a copy of the query parameters.
func (c *Hierarchical) QueryParams() Params {
	if c == nil {
		return nil
	}
	return c.params.Clone()
}

// Fragment returns the URI fragment.
func (c *Hierarchical) Fragment() string {
	if c == nil {
		return ""
	}
	return c.fragment
}

// Encoded reports whether the value already carries percent-encoded components.
func (c *Hierarchical) Encoded() bool { return c != nil && c.encoded }

// Encode returns a new value with every component percent-encoded per its own
// allowed character set. Valid "%XX" triplets are passed through unchanged, so
// encoding an already encoded value does not double-escape. Template
// placeholders left in any component get their braces escaped: expansion is
// no longer possible afterwards.
func (c *Hierarchical) Encode() Components {
	if c == nil {
		return nil
	}

	host := c.host
	if !strings.HasPrefix(host, "[") {
		// bracketed IPv6 literals pass verbatim
		host = grammar.Escape(host, shouldEscapeHostChar)
	}
	var pth pathComponent
	if c.pth != nil {
		pth = c.pth.escape()
	}
	return &Hierarchical{
		scheme:   grammar.Escape(c.scheme, shouldEscapeSchemeChar),
		userInfo: grammar.Escape(c.userInfo, shouldEscapeUserInfoChar),
		host:     host,
		hasHost:  c.hasHost,
		portText: grammar.Escape(c.portText, shouldEscapePortChar),
		pth:      pth,
		params:   c.params.escape(),
		fragment: grammar.Escape(c.fragment, shouldEscapeFragmentChar),
		encoded:  true,
	}
}

// Expand substitutes template placeholders positionally, consuming one value
// per placeholder occurrence in component order: scheme, userinfo, host,
// port, path, query parameters (name then value, in list order), fragment.
func (c *Hierarchical) Expand(vals ...any) (Components, error) {
	return errtrace.Wrap2(c.expand(template.NewListResolver(vals...)))
}

// ExpandNamed substitutes template placeholders by name.
func (c *Hierarchical) ExpandNamed(vars map[string]any) (Components, error) {
	return errtrace.Wrap2(c.expand(template.MapResolver(vars)))
}

func (c *Hierarchical) expand(r template.Resolver) (Components, error) {
	if c == nil {
		return nil, nil
	}
	if c.encoded {
		// a substituted value could itself contain "%XX" text that a second
		// encoding pass would corrupt, so this ordering is rejected outright
		return nil, errtrace.Wrap(errorutil.NewIllegalStateError("expand on an already encoded URI"))
	}

	c2 := &Hierarchical{hasHost: c.hasHost}
	var err error
	if c2.scheme, err = template.Expand(c.scheme, r); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if c2.userInfo, err = template.Expand(c.userInfo, r); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if c2.host, err = template.Expand(c.host, r); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if c2.portText, err = template.Expand(c.portText, r); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if c.pth != nil {
		if c2.pth, err = c.pth.expand(r); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	if c2.params, err = c.params.expand(r); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if c2.fragment, err = template.Expand(c.fragment, r); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return c2, nil
}

// Normalize returns a new value with "." and ".." path segments removed per
// RFC 3986 section 5.2.4. Excess ".." segments at the root are discarded.
// Scheme, host and query stay untouched.
func (c *Hierarchical) Normalize() Components {
	if c == nil {
		return nil
	}
	c2 := *c
	if c.pth != nil {
		c2.pth = fullPath(removeDotSegments(c.Path()))
	}
	return &c2
}

// URI converts the value into a net/url URL. An encoded value is parsed from
// its rendered form without re-escaping; a raw value is assembled field-wise
// so net/url escapes each component exactly once.
func (c *Hierarchical) URI() (*url.URL, error) {
	if c == nil {
		return nil, nil
	}
	if c.encoded {
		return errtrace.Wrap2(url.Parse(c.String()))
	}

	port, err := c.Port()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	u := &url.URL{
		Scheme:   c.scheme,
		Path:     c.Path(),
		RawQuery: c.params.escape().String(),
		Fragment: c.fragment,
	}
	if c.hasHost || c.host != "" {
		u.Host = c.host
		if port >= 0 {
			u.Host += ":" + strconv.Itoa(port)
		}
		if c.userInfo != "" {
			if name, passwd, ok := strings.Cut(c.userInfo, ":"); ok {
				u.User = url.UserPassword(name, passwd)
			} else {
				u.User = url.User(c.userInfo)
			}
		}
	}
	return u, nil
}

// RenderTo writes the canonical string form to the provided writer, omitting
// every absent component together with its separator.
func (c *Hierarchical) RenderTo(w io.Writer) (int, error) {
	if c == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if c.scheme != "" {
		cw.Fprint(c.scheme, ":") //nolint:errcheck
	}
	if c.hasHost || c.host != "" {
		cw.WriteString("//") //nolint:errcheck
		if c.userInfo != "" {
			cw.Fprint(c.userInfo, "@") //nolint:errcheck
		}
		cw.WriteString(c.host) //nolint:errcheck
		if c.portText != "" {
			cw.Fprint(":", c.portText) //nolint:errcheck
		}
	}
	cw.WriteString(c.Path()) //nolint:errcheck
	if len(c.params) > 0 {
		cw.WriteString("?")     //nolint:errcheck
		cw.Call(c.params.RenderTo) //nolint:errcheck
	}
	if c.fragment != "" {
		cw.Fprint("#", c.fragment) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the canonical string form of the URI.
func (c *Hierarchical) String() string {
	if c == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	c.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (c *Hierarchical) Format(f fmt.State, verb rune) {
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
		type hideMethods Hierarchical
		type Hierarchical hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Hierarchical)(c))
		return
	}
}

// Clone returns a deep copy of the value.
func (c *Hierarchical) Clone() Components {
	if c == nil {
		return nil
	}
	c2 := *c
	c2.params = c.params.Clone()
	return &c2
}

// Equal compares this value with another for structural equality over the
// current representation: every field must match exactly, unencoded templates
// included. A Hierarchical value is never equal to an [Opaque] one.
func (c *Hierarchical) Equal(val any) bool {
	var other *Hierarchical
	switch v := val.(type) {
	case Hierarchical:
		other = &v
	case *Hierarchical:
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
		c.userInfo == other.userInfo &&
		c.host == other.host &&
		c.hasHost == other.hasHost &&
		c.portText == other.portText &&
		pathComponentsEqual(c.pth, other.pth) &&
		c.params.Equal(other.params) &&
		c.fragment == other.fragment &&
		c.encoded == other.encoded
}

func pathComponentsEqual(p1, p2 pathComponent) bool {
	if p1 == nil || p2 == nil {
		return p1 == nil && p2 == nil
	}
	return p1.equal(p2)
}

// IsValid checks whether the URI components are syntactically valid.
func (c *Hierarchical) IsValid() bool {
	return c != nil &&
		(c.scheme == "" || grammar.IsScheme(c.scheme)) &&
		(c.host == "" || grammar.IsHost(c.host)) &&
		(c.portText == "" || grammar.IsPort(c.portText))
}

// CopyToBuilder copies every component into the target builder, enabling
// reuse of a parsed value, templates included, as a construction seed.
func (c *Hierarchical) CopyToBuilder(b *Builder) {
	if c == nil || b == nil {
		return
	}
	if c.scheme != "" {
		b.Scheme(c.scheme)
	}
	if c.userInfo != "" {
		b.UserInfo(c.userInfo)
	}
	if c.hasHost || c.host != "" {
		b.host = c.host
		b.hasHost = true
	}
	if c.portText != "" {
		b.PortText(c.portText)
	}
	if c.pth != nil {
		c.pth.copyTo(b)
	}
	if len(c.params) > 0 {
		b.QueryParams(c.params)
	}
	if c.fragment != "" {
		b.Fragment(c.fragment)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (c *Hierarchical) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Hierarchical) UnmarshalText(text []byte) error {
	b, err := FromURIString(string(text))
	if err != nil {
		*c = Hierarchical{}
		return errtrace.Wrap(err)
	}
	cm, err := b.Build()
	if err != nil {
		*c = Hierarchical{}
		return errtrace.Wrap(err)
	}
	h, ok := cm.(*Hierarchical)
	if !ok {
		*c = Hierarchical{}
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("%q is not a hierarchical URI", string(text)))
	}
	*c = *h
	return nil
}
