package cssutil

import (
	"strings"

	"github.com/csskit/csskit/ast"
	"github.com/csskit/csskit/parsehelper"
)

// IsURLValue reports whether s is wrapped in url(...).
func IsURLValue(s string) bool {
	t := strings.TrimSpace(s)
	return len(t) >= 5 && strings.EqualFold(t[:4], "url(") && strings.HasSuffix(t, ")")
}

// ExtractURL returns the bare payload of a url(...) value with quotes
// removed and escapes resolved. Values not wrapped in url() come back
// trimmed.
func ExtractURL(s string) string {
	return parsehelper.TrimURL(s)
}

// AsCSSURL wraps a bare URL in url(...), quoting when needed or forced.
func AsCSSURL(url string, forceQuotes bool) string {
	return ast.WrapInCSSURL(url, forceQuotes)
}

// IsDataURL reports whether the bare URL is an inline data: URL.
func IsDataURL(url string) bool {
	return len(url) >= 5 && strings.EqualFold(url[:5], "data:")
}
