// Package parsehelper holds small lexical helpers shared by the parser,
// the object model and the utility packages.
package parsehelper

import (
	"regexp"
	"strconv"
	"strings"
)

// URLEscapeChar quotes characters inside CSS URLs and strings.
const URLEscapeChar = '\\'

// ExtractStringValue removes matching surrounding quotes from s, if any.
func ExtractStringValue(s string) string {
	if len(s) < 2 {
		return s
	}
	first := s[0]
	if (first == '"' || first == '\'') && s[len(s)-1] == first {
		return s[1 : len(s)-1]
	}
	return s
}

// TrimURL extracts the payload of a "url(...)" value: the wrapper, the
// surrounding whitespace and optional quotes are removed and escape
// sequences resolved. Values not wrapped in url() are returned trimmed.
func TrimURL(s string) string {
	v := strings.TrimSpace(s)
	if len(v) >= 5 && strings.EqualFold(v[:4], "url(") && strings.HasSuffix(v, ")") {
		v = strings.TrimSpace(v[4 : len(v)-1])
	}
	return UnescapeURL(ExtractStringValue(v))
}

// UnescapeURL resolves backslash escapes in a URL payload.
func UnescapeURL(s string) string {
	if !strings.ContainsRune(s, URLEscapeChar) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != URLEscapeChar || i+1 == len(s) {
			sb.WriteByte(c)
			continue
		}
		next := s[i+1]
		if next == '\n' {
			// Escaped newline, string continuation.
			i++
			continue
		}
		if isHexByte(next) {
			j := i + 1
			for j < len(s) && j <= i+6 && isHexByte(s[j]) {
				j++
			}
			if code, err := strconv.ParseInt(s[i+1:j], 16, 32); err == nil {
				sb.WriteRune(rune(code))
				if j < len(s) && (s[j] == ' ' || s[j] == '\t') {
					j++
				}
				i = j - 1
				continue
			}
		}
		sb.WriteByte(next)
		i++
	}
	return sb.String()
}

func isHexByte(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

var splitNumberRegex = regexp.MustCompile(`^([0-9]*\.[0-9]+([eE][+-]?[0-9]+)?|[0-9]+([eE][+-]?[0-9]+)?)`)

// SplitNumber returns the leading numeric part of s, "" when s does not
// start with a number.
func SplitNumber(s string) string {
	return splitNumberRegex.FindString(s)
}
