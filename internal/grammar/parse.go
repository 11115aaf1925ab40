package grammar

import (
	"regexp"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uric/internal/errorutil"
)

// Error is a grammar-level error kind. Every error built from it also wraps
// [errorutil.ErrInvalidArgument], so callers can match on either sentinel.
type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput      Error = "empty input"
	ErrMalformedInput  Error = "malformed input"
	ErrInvalidEncoding Error = "invalid percent encoding"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewInvalidArgumentError(errorutil.NewWrapperError(ErrMalformedInput, args...)) //errtrace:skip
}

func newInvalidEncodingErr(args ...any) error {
	return errorutil.NewInvalidArgumentError(errorutil.NewWrapperError(ErrInvalidEncoding, args...)) //errtrace:skip
}

// Parts holds the raw substrings of a URI split by [SplitURI].
// Nothing is unescaped and template placeholders are kept verbatim.
type Parts struct {
	Scheme   string
	Opaque   bool
	SSP      string // scheme-specific part, only for opaque URIs
	UserInfo string
	Host     string
	HasHost  bool // authority section present, even with an empty host
	Port     string
	Path     string
	Query    string
	Fragment string
}

// uriRx splits a URI string into scheme, authority (userinfo, host, port),
// path, query and fragment. Template placeholders survive in any component
// since none of the delimiter classes exclude curly braces.
var uriRx = regexp.MustCompile(`^(([^:/?#]+):)?(//(([^@\[/?#]*)@)?(\[[^\]]*\]|[^\[/?#:]*)(:([^/?#]*))?)?([^?#]*)(\?([^#]*))?(#(.*))?$`)

// SplitURI splits the given URI string into its raw components per the
// RFC 3986 appendix B grammar. A URI is opaque when its scheme is followed
// by anything but a "/": in that case only Scheme, SSP and Fragment are set.
func SplitURI[T ~string | ~[]byte](s T) (Parts, error) {
	if len(s) == 0 {
		return Parts{}, errtrace.Wrap(errorutil.NewInvalidArgumentError(ErrEmptyInput))
	}

	src := string(s)
	m := uriRx.FindStringSubmatch(src)
	if m == nil {
		return Parts{}, errtrace.Wrap(newMalformedInputErr("%q", src))
	}

	p := Parts{
		Scheme:   m[2],
		UserInfo: m[5],
		Host:     m[6],
		HasHost:  m[3] != "",
		Port:     m[8],
		Path:     m[9],
		Query:    m[11],
		Fragment: m[13],
	}
	if p.Scheme != "" {
		rest := src[len(p.Scheme):]
		if !strings.HasPrefix(rest, ":/") {
			ssp := src[len(p.Scheme)+1:]
			// trim on the "#" group, the fragment itself may be empty
			if m[12] != "" {
				ssp = ssp[:len(ssp)-len(p.Fragment)-1]
			}
			return Parts{Scheme: p.Scheme, Opaque: true, SSP: ssp, Fragment: p.Fragment}, nil
		}
		if !IsScheme(p.Scheme) {
			return Parts{}, errtrace.Wrap(newMalformedInputErr("bad scheme in %q", src))
		}
	}
	return p, nil
}

// HasTemplate reports whether s contains a template placeholder opener.
func HasTemplate(s string) bool { return strings.IndexByte(s, '{') >= 0 }

// IsScheme checks s against the scheme rule: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
// A string holding a template placeholder passes, it is checked again after expansion.
func IsScheme(s string) bool {
	if s == "" {
		return false
	}
	if HasTemplate(s) {
		return true
	}
	if !IsAlphanumChar(s[0]) || IsDigitChar(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !IsSchemeChar(s[i]) {
			return false
		}
	}
	return true
}

// IsPort checks s against the port rule. Template placeholders pass.
func IsPort(s string) bool {
	if s == "" {
		return false
	}
	if HasTemplate(s) {
		return true
	}
	for i := 0; i < len(s); i++ {
		if !IsPortChar(s[i]) {
			return false
		}
	}
	return true
}

// ipv6Rx loosely matches a bracketed IPv6 literal, optionally with a zone.
var ipv6Rx = regexp.MustCompile(`^\[[0-9A-Fa-f:.]*(%25[0-9A-Za-z]+|%[0-9A-Za-z]+)?\]$`)

// IsHost checks s against a loose host grammar: a reg-name (hostname or
// IPv4 literal, percent-encoded bytes allowed) or a bracketed IPv6 literal.
// Template placeholders pass.
func IsHost(s string) bool {
	if s == "" {
		return false
	}
	if HasTemplate(s) {
		return true
	}
	if s[0] == '[' {
		return ipv6Rx.MatchString(s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			i += 2
			continue
		}
		if !IsHostChar(s[i]) {
			return false
		}
	}
	return true
}
