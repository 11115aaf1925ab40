package grammar_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/uric/internal/errorutil"
	"github.com/ghettovoice/uric/internal/grammar"
)

func TestSplitURI(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		uri     string
		want    grammar.Parts
		wantErr error
	}{
		{"empty", "", grammar.Parts{}, errorutil.ErrInvalidArgument},
		{
			"full hierarchical",
			"https://user:pw@example.com:8080/foo/bar?a=1&b#frag",
			grammar.Parts{
				Scheme:   "https",
				UserInfo: "user:pw",
				Host:     "example.com",
				HasHost:  true,
				Port:     "8080",
				Path:     "/foo/bar",
				Query:    "a=1&b",
				Fragment: "frag",
			},
			nil,
		},
		{
			"path only",
			"/hotel list",
			grammar.Parts{Path: "/hotel list"},
			nil,
		},
		{
			"empty host authority",
			"file:///etc/hosts",
			grammar.Parts{Scheme: "file", HasHost: true, Path: "/etc/hosts"},
			nil,
		},
		{
			"ipv6 host",
			"https://[2001:db8::1]:443/x",
			grammar.Parts{Scheme: "https", Host: "[2001:db8::1]", HasHost: true, Port: "443", Path: "/x"},
			nil,
		},
		{
			"templates",
			"{scheme}://{host}:{port}/{seg}?q={q}#{f}",
			grammar.Parts{
				Scheme:   "{scheme}",
				Host:     "{host}",
				HasHost:  true,
				Port:     "{port}",
				Path:     "/{seg}",
				Query:    "q={q}",
				Fragment: "{f}",
			},
			nil,
		},
		{
			"opaque mailto",
			"mailto:user@example.com?subject=hi#sig",
			grammar.Parts{Scheme: "mailto", Opaque: true, SSP: "user@example.com?subject=hi", Fragment: "sig"},
			nil,
		},
		{
			"opaque empty fragment",
			"mailto:a#",
			grammar.Parts{Scheme: "mailto", Opaque: true, SSP: "a"},
			nil,
		},
		{
			"opaque http without slashes",
			"http:example.com/foo/bar",
			grammar.Parts{Scheme: "http", Opaque: true, SSP: "example.com/foo/bar"},
			nil,
		},
		{"bad scheme", "1http://example.com", grammar.Parts{}, errorutil.ErrInvalidArgument},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := grammar.SplitURI(c.uri)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("grammar.SplitURI(%q) error = %v, want %v", c.uri, err, c.wantErr)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("grammar.SplitURI(%q) mismatch (-want +got):\n%s", c.uri, diff)
			}
		})
	}
}

func TestIsScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want bool
	}{
		{"", false},
		{"http", true},
		{"HTTP", true},
		{"x-proto+v1.2", true},
		{"1http", false},
		{"ht tp", false},
		{"{scheme}", true},
	}

	for _, c := range cases {
		t.Run(c.str, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsScheme(c.str); got != c.want {
				t.Errorf("grammar.IsScheme(%q) = %v, want %v", c.str, got, c.want)
			}
		})
	}
}

func TestIsHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want bool
	}{
		{"", false},
		{"example.com", true},
		{"192.168.0.1", true},
		{"[2001:db8::1]", true},
		{"[2001:db8::1", false},
		{"ex ample.com", false},
		{"ex%20ample", true},
		{"{host}", true},
	}

	for _, c := range cases {
		t.Run(c.str, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsHost(c.str); got != c.want {
				t.Errorf("grammar.IsHost(%q) = %v, want %v", c.str, got, c.want)
			}
		})
	}
}

func TestIsPort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want bool
	}{
		{"", false},
		{"8080", true},
		{"80a", false},
		{"{port}", true},
		{"808{digit}", true},
	}

	for _, c := range cases {
		t.Run(c.str, func(t *testing.T) {
			t.Parallel()

			if got := grammar.IsPort(c.str); got != c.want {
				t.Errorf("grammar.IsPort(%q) = %v, want %v", c.str, got, c.want)
			}
		})
	}
}
