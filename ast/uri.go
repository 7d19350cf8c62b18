package ast

import (
	"strings"

	"github.com/csskit/csskit"
	"github.com/csskit/csskit/parsehelper"
)

// URI wraps the payload of a url(...) value. The stored URL is the bare
// payload without the url() wrapper or quotes.
type URI struct {
	sourceLocated
	url string
}

// NewURI returns a URI for the bare URL payload.
func NewURI(url string) *URI { return &URI{url: url} }

// NewURIFromCSS returns a URI extracted from a raw CSS url(...) value.
func NewURIFromCSS(cssValue string) *URI {
	return &URI{url: parsehelper.TrimURL(cssValue)}
}

// URL returns the bare payload.
func (u *URI) URL() string { return u.url }

// SetURL replaces the payload.
func (u *URI) SetURL(url string) { u.url = url }

// IsDataURL reports whether the payload is an inline data: URL.
func (u *URI) IsDataURL() bool {
	return len(u.url) >= 5 && strings.EqualFold(u.url[:5], "data:")
}

func (u *URI) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	return WrapInCSSURL(u.url, ws.QuoteURLs), nil
}

func (u *URI) MinimumVersion() csskit.Version { return csskit.CSS21 }

func (u *URI) Equal(o *URI) bool { return o != nil && u.url == o.url }

func (u *URI) Hash() uint64 {
	h := newHasher("uri")
	h.str(u.url)
	return h.sum()
}

// isValidURLChar reports whether c may appear unquoted inside url().
func isValidURLChar(c rune) bool {
	return c == '!' || c == '#' || c == '$' || c == '%' || c == '&' ||
		c >= '*' && c <= '[' ||
		c >= ']' && c <= '~' ||
		c >= 0x80
}

func urlRequiresQuotes(url string) bool {
	for _, c := range url {
		if !isValidURLChar(c) {
			return true
		}
	}
	return false
}

// escapeURL quotes the quote character and the escape character.
func escapeURL(url string, quote byte) string {
	if !strings.ContainsRune(url, rune(quote)) && !strings.ContainsRune(url, parsehelper.URLEscapeChar) {
		return url
	}
	var sb strings.Builder
	sb.Grow(len(url) * 2)
	for i := 0; i < len(url); i++ {
		c := url[i]
		if c == quote || c == parsehelper.URLEscapeChar {
			sb.WriteByte(parsehelper.URLEscapeChar)
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// WrapInCSSURL surrounds a bare URL with url(...). Quotes are added when
// forced or when the URL contains characters that require them; the
// quote character is chosen to minimize escaping.
func WrapInCSSURL(url string, forceQuotes bool) string {
	var sb strings.Builder
	sb.WriteString("url(")
	if forceQuotes || urlRequiresQuotes(url) {
		quote := byte('\'')
		if strings.IndexByte(url, '\'') >= 0 && strings.IndexByte(url, '"') < 0 {
			quote = '"'
		}
		sb.WriteByte(quote)
		sb.WriteString(escapeURL(url, quote))
		sb.WriteByte(quote)
	} else {
		sb.WriteString(url)
	}
	sb.WriteByte(')')
	return sb.String()
}
