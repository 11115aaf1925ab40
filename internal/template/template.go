// Package template implements substitution of URI template placeholders of
// the form "{name}" or "{name:regex}". Only the name takes part in the
// lookup: the regex suffix is validation metadata carried by the template
// author and is not enforced during substitution.
package template

//go:generate go tool errtrace -w .

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uric/internal/errorutil"
	"github.com/ghettovoice/uric/internal/util"
)

// Resolver supplies values for template placeholders.
type Resolver interface {
	// Resolve returns the value for the placeholder with the given name.
	// A placeholder never resolves to "absent": when no value can be
	// supplied the resolver fails with [errorutil.ErrMissingVariable].
	Resolve(name string) (any, error)
}

// MapResolver resolves placeholders by name.
type MapResolver map[string]any

func (r MapResolver) Resolve(name string) (any, error) {
	v, ok := r[name]
	if !ok {
		return nil, errtrace.Wrap(errorutil.NewMissingVariableError("%q", name))
	}
	return v, nil
}

// ListResolver resolves placeholders positionally, consuming one value per
// occurrence in scan order. A single instance is shared across all components
// of a URI so the consumption order spans the whole value.
type ListResolver struct {
	vals []any
	pos  int
}

// NewListResolver creates a ListResolver over the given values.
func NewListResolver(vals ...any) *ListResolver {
	return &ListResolver{vals: vals}
}

func (r *ListResolver) Resolve(name string) (any, error) {
	if r.pos >= len(r.vals) {
		return nil, errtrace.Wrap(errorutil.NewMissingVariableError("no positional value left for %q", name))
	}
	v := r.vals[r.pos]
	r.pos++
	return v, nil
}

// Expand scans s left to right and substitutes every "{name}" or
// "{name:regex}" placeholder with the value supplied by r, inserted literally
// in its fmt.Sprint form. A nil value inserts an empty string. An unbalanced
// "{" fails with [errorutil.ErrInvalidArgument].
func Expand(s string, r Resolver) (string, error) {
	if strings.IndexByte(s, '{') < 0 {
		return s, nil
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i := 0; i < len(s); i++ {
		if s[i] != '{' {
			sb.WriteByte(s[i])
			continue
		}

		end := matchBrace(s, i)
		if end < 0 {
			return "", errtrace.Wrap(errorutil.NewInvalidArgumentError("unbalanced '{' at offset %d in %q", i, s))
		}

		name := s[i+1 : end]
		// the regex suffix may itself contain ':', split on the first one only
		if j := strings.IndexByte(name, ':'); j >= 0 {
			name = name[:j]
		}
		if name == "" {
			return "", errtrace.Wrap(errorutil.NewInvalidArgumentError("empty placeholder name at offset %d in %q", i, s))
		}

		val, err := r.Resolve(name)
		if err != nil {
			return "", errtrace.Wrap(err)
		}
		if val != nil {
			fmt.Fprint(sb, val)
		}
		i = end
	}
	return sb.String(), nil
}

// matchBrace returns the offset of the '}' closing the '{' at open,
// or -1 when there is none. Nested braces, like the "{2}" quantifier
// inside a regex suffix, are balanced.
func matchBrace(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
