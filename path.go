package uric

import (
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uric/internal/grammar"
	"github.com/ghettovoice/uric/internal/template"
	"github.com/ghettovoice/uric/internal/util"
)

// pathComponent models the path of a hierarchical URI: either a raw path
// string, a list of individual segments, or a composition of both. The
// distinction matters on encoding: a raw path keeps its "/" separators while
// a segment escapes any "/" it contains.
type pathComponent interface {
	path() string
	pathSegments() []string
	escape() pathComponent
	expand(r template.Resolver) (pathComponent, error)
	verifyEncoded() error
	copyTo(b *Builder)
	equal(o pathComponent) bool
}

type fullPath string

func (p fullPath) path() string { return string(p) }

func (p fullPath) pathSegments() []string {
	var segs []string
	for _, s := range strings.Split(string(p), "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

func (p fullPath) escape() pathComponent {
	return fullPath(grammar.Escape(string(p), shouldEscapePathChar))
}

func (p fullPath) expand(r template.Resolver) (pathComponent, error) {
	s, err := template.Expand(string(p), r)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return fullPath(s), nil
}

func (p fullPath) verifyEncoded() error {
	return errtrace.Wrap(grammar.VerifyEncoded(string(p), grammar.IsPathChar))
}

func (p fullPath) copyTo(b *Builder) { b.Path(string(p)) }

func (p fullPath) equal(o pathComponent) bool {
	o2, ok := o.(fullPath)
	return ok && p == o2
}

type segmentsPath []string

func (p segmentsPath) path() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for _, s := range p {
		sb.WriteString("/")
		sb.WriteString(s)
	}
	return sb.String()
}

func (p segmentsPath) pathSegments() []string { return slices.Clone(p) }

func (p segmentsPath) escape() pathComponent {
	p2 := make(segmentsPath, len(p))
	for i, s := range p {
		p2[i] = grammar.Escape(s, shouldEscapeSegmentChar)
	}
	return p2
}

func (p segmentsPath) expand(r template.Resolver) (pathComponent, error) {
	p2 := make(segmentsPath, len(p))
	for i, s := range p {
		s2, err := template.Expand(s, r)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		p2[i] = s2
	}
	return p2, nil
}

func (p segmentsPath) verifyEncoded() error {
	for _, s := range p {
		if err := grammar.VerifyEncoded(s, grammar.IsSegmentChar); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

func (p segmentsPath) copyTo(b *Builder) { b.PathSegment(p...) }

func (p segmentsPath) equal(o pathComponent) bool {
	o2, ok := o.(segmentsPath)
	return ok && slices.Equal(p, o2)
}

type compositePath []pathComponent

func (p compositePath) path() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for _, part := range p {
		pp := part.path()
		if pp == "" {
			continue
		}
		// collapse the doubled separator on piece boundaries
		if s := sb.String(); strings.HasSuffix(s, "/") && pp[0] == '/' {
			pp = pp[1:]
		}
		sb.WriteString(pp)
	}
	return sb.String()
}

func (p compositePath) pathSegments() []string {
	var segs []string
	for _, part := range p {
		segs = append(segs, part.pathSegments()...)
	}
	return segs
}

func (p compositePath) escape() pathComponent {
	p2 := make(compositePath, len(p))
	for i, part := range p {
		p2[i] = part.escape()
	}
	return p2
}

func (p compositePath) expand(r template.Resolver) (pathComponent, error) {
	p2 := make(compositePath, len(p))
	for i, part := range p {
		part2, err := part.expand(r)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		p2[i] = part2
	}
	return p2, nil
}

func (p compositePath) verifyEncoded() error {
	for _, part := range p {
		if err := part.verifyEncoded(); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

func (p compositePath) copyTo(b *Builder) {
	for _, part := range p {
		part.copyTo(b)
	}
}

func (p compositePath) equal(o pathComponent) bool {
	o2, ok := o.(compositePath)
	if !ok || len(p) != len(o2) {
		return false
	}
	for i := range p {
		if !p[i].equal(o2[i]) {
			return false
		}
	}
	return true
}

// removeDotSegments implements the RFC 3986 section 5.2.4 algorithm.
// Excess ".." segments at the root are discarded rather than rejected.
func removeDotSegments(p string) string {
	if p == "" {
		return p
	}

	var out []string
	in := p
	for in != "" {
		switch {
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		case strings.HasPrefix(in, "/./"):
			in = in[2:]
		case in == "/.":
			in = "/"
		case strings.HasPrefix(in, "/../"):
			in = in[3:]
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case in == "/..":
			in = "/"
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case in == "." || in == "..":
			in = ""
		default:
			i := 0
			if in[0] == '/' {
				i = 1
			}
			if j := strings.IndexByte(in[i:], '/'); j >= 0 {
				out = append(out, in[:i+j])
				in = in[i+j:]
			} else {
				out = append(out, in)
				in = ""
			}
		}
	}
	return strings.Join(out, "")
}
