// Package token defines the lexical tokens of CSS and their source
// positions. Tokens are produced as a forward-linked chain by the scanner
// and are immutable afterwards.
package token

import "fmt"

// Kind classifies a token.
type Kind int

const (
	EOF Kind = iota
	Whitespace
	Comment
	Ident
	AtKeyword
	String
	Hash
	Number
	Percentage
	Dimension
	URL
	Function
	CDO
	CDC
	Includes       // ~=
	DashMatch      // |=
	PrefixMatch    // ^=
	SuffixMatch    // $=
	SubstringMatch // *=
	Colon
	Semicolon
	Comma
	LBrace
	RBrace
	LParen
	RParen
	LBracket
	RBracket
	Delim
)

var kindNames = map[Kind]string{
	EOF:            "<EOF>",
	Whitespace:     "<S>",
	Comment:        "<COMMENT>",
	Ident:          "<IDENT>",
	AtKeyword:      "<AT>",
	String:         "<STRING>",
	Hash:           "<HASH>",
	Number:         "<NUMBER>",
	Percentage:     "<PERCENTAGE>",
	Dimension:      "<DIMENSION>",
	URL:            "<URL>",
	Function:       "<FUNCTION>",
	CDO:            "<CDO>",
	CDC:            "<CDC>",
	Includes:       "\"~=\"",
	DashMatch:      "\"|=\"",
	PrefixMatch:    "\"^=\"",
	SuffixMatch:    "\"$=\"",
	SubstringMatch: "\"*=\"",
	Colon:          "\":\"",
	Semicolon:      "\";\"",
	Comma:          "\",\"",
	LBrace:         "\"{\"",
	RBrace:         "\"}\"",
	LParen:         "\"(\"",
	RParen:         "\")\"",
	LBracket:       "\"[\"",
	RBracket:       "\"]\"",
	Delim:          "<DELIM>",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexical token with its raw source text and position.
type Token struct {
	Kind  Kind
	Image string

	BeginLine   int
	BeginColumn int
	EndLine     int
	EndColumn   int

	// Next links to the following token in the chain, nil after EOF.
	Next *Token
}

func (t *Token) String() string { return t.Image }

// Position renders the begin position as "line:column".
func (t *Token) Position() string {
	return fmt.Sprintf("%d:%d", t.BeginLine, t.BeginColumn)
}
