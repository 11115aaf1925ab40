package uric

import (
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uric/internal/errorutil"
	"github.com/ghettovoice/uric/internal/grammar"
	"github.com/ghettovoice/uric/internal/log"
)

// Builder is a mutable accumulator of URI components with a fluent API.
// It is a write-once staging object: populate it from a URI string or with
// the individual setters, then produce an immutable [Components] value with
// [Builder.Build] or [Builder.BuildEncoded]. A builder instance belongs to a
// single construction sequence and is not meant to be shared across goroutines.
type Builder struct {
	scheme   string
	ssp      string
	sspSet   bool
	userInfo string
	host     string
	hasHost  bool
	portText string
	pieces   compositePath
	params   Params
	fragment string
}

// NewBuilder creates an empty builder for composing a URI piecewise.
func NewBuilder() *Builder { return &Builder{} }

// FromURIString creates a builder seeded from the given URI string s
// (string or []byte). The string may contain template placeholders in any
// component. The URI is split per the RFC 3986 appendix B grammar: it is
// opaque when the scheme is followed by a non-"/" character ("mailto:",
// "http:example.com"), hierarchical otherwise.
func FromURIString[T ~string | ~[]byte](s T) (*Builder, error) {
	parts, err := grammar.SplitURI(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	b := NewBuilder()
	b.scheme = parts.Scheme
	if parts.Opaque {
		b.SchemeSpecificPart(parts.SSP)
	} else {
		b.userInfo = parts.UserInfo
		b.host = parts.Host
		b.hasHost = parts.HasHost
		b.portText = parts.Port
		if parts.Path != "" {
			b.Path(parts.Path)
		}
		b.Query(parts.Query)
	}
	b.fragment = parts.Fragment

	logger().Debug("URI string parsed",
		slog.Any("uri", log.StringValue(s)),
		slog.Bool("opaque", parts.Opaque),
	)
	return b, nil
}

// FromPath creates a builder seeded with the path only.
func FromPath(p string) *Builder {
	return NewBuilder().Path(p)
}

// FromURI creates a builder seeded from a net/url URL.
func FromURI(u *url.URL) *Builder {
	b := NewBuilder()
	if u == nil {
		return b
	}
	b.Scheme(u.Scheme)
	if u.Opaque != "" {
		b.SchemeSpecificPart(u.Opaque)
		return b.Fragment(u.Fragment)
	}
	if u.User != nil {
		b.UserInfo(u.User.String())
	}
	if host := u.Hostname(); host != "" {
		if strings.Contains(host, ":") {
			host = "[" + host + "]"
		}
		b.Host(host)
	}
	b.PortText(u.Port())
	if u.Path != "" {
		b.Path(u.Path)
	}
	return b.Query(u.RawQuery).Fragment(u.Fragment)
}

// Scheme sets the URI scheme.
func (b *Builder) Scheme(scheme string) *Builder {
	b.scheme = scheme
	return b
}

// SchemeSpecificPart sets the raw scheme-specific part, turning the pending
// URI opaque: authority, path and query setters are ignored on build.
func (b *Builder) SchemeSpecificPart(ssp string) *Builder {
	b.ssp = ssp
	b.sspSet = true
	return b
}

// UserInfo sets the userinfo part of the authority.
func (b *Builder) UserInfo(userInfo string) *Builder {
	b.userInfo = userInfo
	return b
}

// Host sets the host part of the authority.
func (b *Builder) Host(host string) *Builder {
	b.host = host
	b.hasHost = host != ""
	return b
}

// Port sets the numeric port. A negative value clears it.
func (b *Builder) Port(port int) *Builder {
	if port < 0 {
		b.portText = ""
		return b
	}
	b.portText = strconv.Itoa(port)
	return b
}

// PortText sets the port as text, possibly holding a template placeholder
// like "{port}" or "808{digit}". The text resolves to a number only after
// expansion.
func (b *Builder) PortText(port string) *Builder {
	b.portText = port
	return b
}

// Path appends a full-path piece to the pending path.
func (b *Builder) Path(p string) *Builder {
	if p != "" {
		b.pieces = append(b.pieces, fullPath(p))
	}
	return b
}

// ReplacePath drops the pending path and seeds it again from p.
func (b *Builder) ReplacePath(p string) *Builder {
	b.pieces = nil
	return b.Path(p)
}

// PathSegment appends each argument as one path segment. A "/" inside a
// segment is data, not a separator: it gets escaped on encoding.
func (b *Builder) PathSegment(segments ...string) *Builder {
	if len(segments) > 0 {
		b.pieces = append(b.pieces, segmentsPath(segments))
	}
	return b
}

// queryParamRx splits a raw query string into "name", "name=" and
// "name=value" parameters.
var queryParamRx = regexp.MustCompile(`([^&=]+)(=?)([^&]*)`)

// Query parses the given raw query string and appends the resulting
// parameters. Template placeholders are kept verbatim.
func (b *Builder) Query(query string) *Builder {
	for _, m := range queryParamRx.FindAllStringSubmatch(query, -1) {
		if m[2] == "=" {
			b.params = b.params.Append(m[1], m[3])
		} else {
			b.params = b.params.Append(m[1])
		}
	}
	return b
}

// ReplaceQuery drops the pending query parameters and seeds them again from
// the given raw query string.
func (b *Builder) ReplaceQuery(query string) *Builder {
	b.params = nil
	return b.Query(query)
}

// QueryParam appends one parameter per value, formatted with fmt.Sprint.
// Called without values it appends a single no-value parameter.
func (b *Builder) QueryParam(name string, values ...any) *Builder {
	if len(values) == 0 {
		b.params = b.params.Append(name)
		return b
	}
	for _, v := range values {
		b.params = b.params.Append(name, fmt.Sprint(v))
	}
	return b
}

// ReplaceQueryParam drops all parameters with the given name, then appends
// one parameter per value.
func (b *Builder) ReplaceQueryParam(name string, values ...any) *Builder {
	b.params = b.params.Del(name)
	return b.QueryParam(name, values...)
}

// QueryParams appends a copy of the given parameter list.
func (b *Builder) QueryParams(ps Params) *Builder {
	b.params = append(b.params, ps...)
	return b
}

// Fragment sets the URI fragment.
func (b *Builder) Fragment(fragment string) *Builder {
	b.fragment = fragment
	return b
}

// URIComponents copies every component of c into the builder.
func (b *Builder) URIComponents(c Components) *Builder {
	if c != nil {
		c.CopyToBuilder(b)
	}
	return b
}

// Build produces an immutable raw (unencoded) [Components] value. It fails
// with [ErrInvalidArgument] when a component holds a character illegal even
// in unencoded form: a malformed scheme or port, a host outside the loose
// hostname/IPv4/bracketed-IPv6 grammar, or a control character. Literal
// "{"/"}" pass here since they denote templates, and percent sequences are
// not examined at this stage.
func (b *Builder) Build() (Components, error) {
	return errtrace.Wrap2(b.build(false))
}

// BuildEncoded produces an immutable [Components] value marked as encoded,
// for callers who supply pre-encoded input and want it trusted verbatim.
// Every component is validated to be properly percent-encoded: an invalid
// hex sequence, a raw space or a literal "{"/"}" fails with
// [ErrInvalidArgument]. Already-escaped IPv6 literal hosts in bracket form
// pass unchanged.
func (b *Builder) BuildEncoded() (Components, error) {
	return errtrace.Wrap2(b.build(true))
}

func (b *Builder) build(encoded bool) (Components, error) {
	if b.scheme != "" && !grammar.IsScheme(b.scheme) {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("bad scheme %q", b.scheme))
	}
	// IsScheme lets template placeholders through for later expansion, but an
	// encoded value can never be expanded, so the placeholder would be stuck
	if encoded && grammar.HasTemplate(b.scheme) {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("template placeholder in scheme %q", b.scheme))
	}

	var (
		c   Components
		err error
	)
	if b.sspSet {
		c, err = b.buildOpaque(encoded)
	} else {
		c, err = b.buildHierarchical(encoded)
	}
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	logger().Debug("URI components built",
		slog.Any("components", log.FmtValue(c, false)),
		slog.Bool("encoded", encoded),
	)
	return c, nil
}

func (b *Builder) buildOpaque(encoded bool) (Components, error) {
	if err := verifyRawComponent("scheme-specific part", b.ssp); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if err := verifyRawComponent("fragment", b.fragment); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if encoded {
		if err := grammar.VerifyEncoded(b.fragment, grammar.IsFragmentChar); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return &Opaque{scheme: b.scheme, ssp: b.ssp, fragment: b.fragment}, nil
}

func (b *Builder) buildHierarchical(encoded bool) (Components, error) {
	if b.host != "" && !grammar.IsHost(b.host) {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("bad host %q", b.host))
	}
	if b.portText != "" && !grammar.IsPort(b.portText) {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("bad port %q", b.portText))
	}
	var pth pathComponent
	switch len(b.pieces) {
	case 0:
	case 1:
		pth = b.pieces[0]
	default:
		pth = append(compositePath(nil), b.pieces...)
	}

	c := &Hierarchical{
		scheme:   b.scheme,
		userInfo: b.userInfo,
		host:     b.host,
		hasHost:  b.hasHost,
		portText: b.portText,
		pth:      pth,
		params:   b.params.Clone(),
		fragment: b.fragment,
		encoded:  encoded,
	}

	for _, comp := range []struct{ name, val string }{
		{"userinfo", c.userInfo},
		{"path", c.Path()},
		{"query", c.Query()},
		{"fragment", c.fragment},
	} {
		if err := verifyRawComponent(comp.name, comp.val); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	if !encoded {
		return c, nil
	}

	if err := grammar.VerifyEncoded(c.userInfo, grammar.IsUserinfoChar); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if c.host != "" && !strings.HasPrefix(c.host, "[") {
		if err := grammar.VerifyEncoded(c.host, grammar.IsHostChar); err != nil {
			return nil, errtrace.Wrap(err)
		}
	} else if grammar.HasTemplate(c.host) {
		// bracketed hosts skip VerifyEncoded, catch a stuck placeholder here
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("template placeholder in host %q", c.host))
	}
	if err := grammar.VerifyEncoded(c.portText, grammar.IsPortChar); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if c.pth != nil {
		if err := c.pth.verifyEncoded(); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	if err := c.params.verifyEncoded(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if err := grammar.VerifyEncoded(c.fragment, grammar.IsFragmentChar); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return c, nil
}

func verifyRawComponent(name, s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7F {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError("control char in %s at offset %d", name, i))
		}
	}
	return nil
}
