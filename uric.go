// Package uric implements an RFC 3986 URI component model and builder.
//
// A URI string, or a set of individual components, is parsed into an
// immutable [Components] value through the mutable [Builder]. The value
// supports deferred template-variable substitution ("{name}", "{name:regex}"),
// per-component percent-encoding, path normalization and canonical
// serialization back to a string or a net/url URL:
//
//	b, err := uric.FromURIString("https://example.com/hotels/{hotel}?q={q}")
//	c, err := b.Build()
//	c, err = c.Expand("Rest & Relax", "stay")
//	u, err := c.Encode().URI()
//
// Expansion inserts raw values, so run it before [Components.Encode]:
// encoding first escapes the placeholder braces themselves, and expanding an
// already encoded value fails with [ErrIllegalState].
package uric

//go:generate go tool errtrace -w .

import (
	"log/slog"
	"sync/atomic"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uric/internal/log"
)

// Parse parses the given URI string s (string or []byte) into a raw
// (unencoded) [Components] value. It is a shorthand for
// [FromURIString] followed by [Builder.Build].
func Parse[T ~string | ~[]byte](s T) (Components, error) {
	b, err := FromURIString(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(b.Build())
}

var modLogger atomic.Pointer[slog.Logger]

func init() {
	modLogger.Store(log.Noop)
}

// SetLogger replaces the module logger used for debug traces of parse and
// build operations. Passing nil restores the no-op logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = log.Noop
	}
	modLogger.Store(l)
}

func logger() *slog.Logger { return modLogger.Load() }
