package grammar

// Character predicates for the RFC 3986 component grammars. Each Is*Char
// reports whether a byte may appear unescaped in that component. None of the
// sets contain '%' ("%XX" triplets are recognized by the codec itself) and
// none contain '{' or '}', so unexpanded template placeholders always get
// escaped when encoding runs before expansion.

// IsAlphanumChar checks the ALPHA / DIGIT rule.
func IsAlphanumChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// IsDigitChar checks the DIGIT rule.
func IsDigitChar(c byte) bool { return '0' <= c && c <= '9' }

var unreservedChars = map[byte]bool{
	'-': true,
	'.': true,
	'_': true,
	'~': true,
}

// IsUnreservedChar checks the unreserved rule.
func IsUnreservedChar(c byte) bool {
	return unreservedChars[c] || IsAlphanumChar(c)
}

var subDelimChars = map[byte]bool{
	'!':  true,
	'$':  true,
	'&':  true,
	'\'': true,
	'(':  true,
	')':  true,
	'*':  true,
	'+':  true,
	',':  true,
	';':  true,
	'=':  true,
}

// IsSubDelimChar checks the sub-delims rule.
func IsSubDelimChar(c byte) bool { return subDelimChars[c] }

// IsSchemeChar checks a non-first char of the scheme rule.
func IsSchemeChar(c byte) bool {
	return IsAlphanumChar(c) || c == '+' || c == '-' || c == '.'
}

// IsUserinfoChar checks the userinfo rule: unreserved / sub-delims / ":".
func IsUserinfoChar(c byte) bool {
	return IsUnreservedChar(c) || IsSubDelimChar(c) || c == ':'
}

// IsHostChar checks the reg-name rule: unreserved / sub-delims.
// IPv6 literals in bracket form are handled apart, see [IsHost].
func IsHostChar(c byte) bool {
	return IsUnreservedChar(c) || IsSubDelimChar(c)
}

// IsPortChar checks the port rule.
func IsPortChar(c byte) bool { return IsDigitChar(c) }

// IsPcharChar checks the pchar rule: unreserved / sub-delims / ":" / "@".
func IsPcharChar(c byte) bool {
	return IsUnreservedChar(c) || IsSubDelimChar(c) || c == ':' || c == '@'
}

// IsPathChar checks the path rule: pchar plus the "/" separator.
func IsPathChar(c byte) bool { return IsPcharChar(c) || c == '/' }

// IsSegmentChar checks the segment rule: pchar without the "/" separator.
func IsSegmentChar(c byte) bool { return IsPcharChar(c) }

// IsQueryChar checks the query rule: pchar / "/" / "?".
func IsQueryChar(c byte) bool { return IsPcharChar(c) || c == '/' || c == '?' }

// IsQueryParamChar checks a single query parameter name or value:
// the query rule minus the "&" and "=" delimiters.
func IsQueryParamChar(c byte) bool {
	if c == '&' || c == '=' {
		return false
	}
	return IsQueryChar(c)
}

// IsFragmentChar checks the fragment rule: pchar / "/" / "?".
func IsFragmentChar(c byte) bool { return IsPcharChar(c) || c == '/' || c == '?' }
