package uric

import (
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uric/internal/grammar"
	"github.com/ghettovoice/uric/internal/ioutil"
	"github.com/ghettovoice/uric/internal/template"
	"github.com/ghettovoice/uric/internal/util"
)

// Param is a single query parameter. A parameter may carry no value at all:
// "?a" and "?a=" render differently and stay distinct ("a" has HasValue false,
// "a=" has an empty value).
type Param struct {
	Name     string
	Value    string
	HasValue bool
}

// Params is an ordered multimap of query parameters. Insertion order is
// preserved through every transformation and names are case-sensitive,
// per the RFC 3986 query grammar.
type Params []Param

// Get returns all values associated with the given name, in order.
// Parameters without a value contribute an empty string.
func (ps Params) Get(name string) []string {
	var vals []string
	for _, p := range ps {
		if p.Name == name {
			vals = append(vals, p.Value)
		}
	}
	return vals
}

// First returns the first value associated with the given name.
func (ps Params) First(name string) (string, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Last returns the last value associated with the given name.
func (ps Params) Last(name string) (string, bool) {
	for i := len(ps) - 1; i >= 0; i-- {
		if ps[i].Name == name {
			return ps[i].Value, true
		}
	}
	return "", false
}

// Has checks whether a parameter with the given name is present.
func (ps Params) Has(name string) bool {
	_, ok := ps.First(name)
	return ok
}

// Append adds one parameter per value at the end of the list.
// Called without values it adds a single no-value parameter.
func (ps Params) Append(name string, values ...string) Params {
	if len(values) == 0 {
		return append(ps, Param{Name: name})
	}
	for _, v := range values {
		ps = append(ps, Param{Name: name, Value: v, HasValue: true})
	}
	return ps
}

// Set replaces all parameters with the given name.
func (ps Params) Set(name string, values ...string) Params {
	return ps.Del(name).Append(name, values...)
}

// Del removes all parameters with the given name.
func (ps Params) Del(name string) Params {
	return slices.DeleteFunc(ps, func(p Param) bool { return p.Name == name })
}

// Clone returns a copy of the list.
func (ps Params) Clone() Params {
	return slices.Clone(ps)
}

// Equal compares this list with another for equality, order included.
func (ps Params) Equal(val any) bool {
	var other Params
	switch v := val.(type) {
	case Params:
		other = v
	case *Params:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.Equal(ps, other)
}

// RenderTo writes the query string form "name=value&name2&name3=" to w,
// without any escaping.
func (ps Params) RenderTo(w io.Writer) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i, p := range ps {
		if i > 0 {
			cw.WriteString("&") //nolint:errcheck
		}
		cw.WriteString(p.Name) //nolint:errcheck
		if p.HasValue {
			cw.Fprint("=", p.Value) //nolint:errcheck
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the query string form of the list.
func (ps Params) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	ps.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

func (ps Params) escape() Params {
	ps2 := make(Params, len(ps))
	for i, p := range ps {
		ps2[i] = Param{
			Name:     grammar.Escape(p.Name, shouldEscapeQueryParamChar),
			Value:    grammar.Escape(p.Value, shouldEscapeQueryParamChar),
			HasValue: p.HasValue,
		}
	}
	return ps2
}

func (ps Params) expand(r template.Resolver) (Params, error) {
	ps2 := make(Params, len(ps))
	for i, p := range ps {
		name, err := template.Expand(p.Name, r)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		value, err := template.Expand(p.Value, r)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		ps2[i] = Param{Name: name, Value: value, HasValue: p.HasValue}
	}
	return ps2, nil
}

func (ps Params) verifyEncoded() error {
	for _, p := range ps {
		if err := grammar.VerifyEncoded(p.Name, grammar.IsQueryParamChar); err != nil {
			return errtrace.Wrap(err)
		}
		if err := grammar.VerifyEncoded(p.Value, grammar.IsQueryParamChar); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}
