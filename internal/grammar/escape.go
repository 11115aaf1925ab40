package grammar

//go:generate go tool errtrace -w .

import (
	"bytes"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uric/internal/constraints"
)

// Unescape unescapes s by converting each 3-byte encoded substring of the form
// "% HEXDIG HEXDIG" into the hex-decoded byte. Malformed sequences are kept as is.
func Unescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Decode is a strict variant of [Unescape]: a '%' not followed by exactly
// two hex digits fails with [ErrInvalidEncoding].
func Decode[T constraints.Byteseq](s T) (T, error) {
	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' {
			if i+2 >= len(s) || !ishex(s[i+1]) || !ishex(s[i+2]) {
				var zero T
				return zero, errtrace.Wrap(newInvalidEncodingErr("at offset %d in %q", i, string(s)))
			}
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes()), nil
}

// Escape escapes s by replacing each char matched by the shouldEscape callback
// with the hex form "% HEXDIG HEXDIG". Valid "%XX" triplets already present in
// s are passed through unchanged, so escaping an escaped string is a no-op as
// long as the unescaped chars of s are accepted by shouldEscape.
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsUnreservedChar(c) }
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]):
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
			b.WriteByte(s[i+2])
			i += 2
		case shouldEscape(s[i]):
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		default:
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// VerifyEncoded checks that s is a properly percent-encoded rendering of a
// single URI component: every byte is either accepted by the allowed callback
// or belongs to a valid "%XX" triplet.
func VerifyEncoded(s string, allowed func(c byte) bool) error {
	for i := 0; i < len(s); i++ {
		if s[i] == '%' {
			if i+2 >= len(s) || !ishex(s[i+1]) || !ishex(s[i+2]) {
				return errtrace.Wrap(newInvalidEncodingErr("at offset %d in %q", i, s))
			}
			i += 2
			continue
		}
		if !allowed(s[i]) {
			return errtrace.Wrap(newInvalidEncodingErr("char %q at offset %d in %q", s[i], i, s))
		}
	}
	return nil
}

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
