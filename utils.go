package uric

import "github.com/ghettovoice/uric/internal/grammar"

// shouldEscapeSchemeChar reports whether the given byte of a scheme needs escaping.
func shouldEscapeSchemeChar(c byte) bool { return !grammar.IsSchemeChar(c) }

// shouldEscapeUserInfoChar reports whether the given byte of a userinfo needs escaping.
func shouldEscapeUserInfoChar(c byte) bool { return !grammar.IsUserinfoChar(c) }

// shouldEscapeHostChar reports whether the given byte of a registered-name host needs escaping.
func shouldEscapeHostChar(c byte) bool { return !grammar.IsHostChar(c) }

// shouldEscapePortChar reports whether the given byte of a port needs escaping.
func shouldEscapePortChar(c byte) bool { return !grammar.IsPortChar(c) }

// shouldEscapePathChar reports whether the given byte of a full path needs escaping.
func shouldEscapePathChar(c byte) bool { return !grammar.IsPathChar(c) }

// shouldEscapeSegmentChar reports whether the given byte of a single path segment needs escaping.
func shouldEscapeSegmentChar(c byte) bool { return !grammar.IsSegmentChar(c) }

// shouldEscapeQueryParamChar reports whether the given byte of a query parameter name or value needs escaping.
func shouldEscapeQueryParamChar(c byte) bool { return !grammar.IsQueryParamChar(c) }

// shouldEscapeFragmentChar reports whether the given byte of a fragment needs escaping.
func shouldEscapeFragmentChar(c byte) bool { return !grammar.IsFragmentChar(c) }
