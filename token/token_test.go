package token

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestKindString(t *testing.T) {
	test.String(t, Ident.String(), "<IDENT>")
	test.String(t, Dimension.String(), "<DIMENSION>")
	test.String(t, Semicolon.String(), `";"`)
	test.String(t, Includes.String(), `"~="`)
	test.String(t, Kind(99).String(), "Kind(99)")
}

func TestTokenPosition(t *testing.T) {
	tok := &Token{Kind: Ident, Image: "color", BeginLine: 2, BeginColumn: 3}
	test.String(t, tok.String(), "color")
	test.String(t, tok.Position(), "2:3")
}
