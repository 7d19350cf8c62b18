// Package scanner tokenizes CSS source text. It recognizes the CSS 2.1
// and CSS 3.0 token sets, differing in the constructs only CSS 3.0 knows
// (substring attribute matchers, scientific notation). Tokens come out as
// a forward-linked chain terminated by an EOF token.
package scanner

import (
	"io"
	"unicode"

	"github.com/tdewolff/parse/v2"

	"github.com/csskit/csskit"
	"github.com/csskit/csskit/token"
)

// Scanner reads CSS tokens from an input stream. Illegal characters are
// signalled through the OnIllegalCharacter callback and skipped,
// tokenization continues.
type Scanner struct {
	z       *parse.Input
	version csskit.Version

	line, col         int
	lastLine, lastCol int

	onIllegal func(r rune)
}

// New returns a scanner for r using the passed grammar version.
func New(r io.Reader, version csskit.Version) *Scanner {
	return &Scanner{
		z:       parse.NewInput(r),
		version: version,
		line:    1,
		col:     1,
	}
}

// NewString returns a scanner over a string.
func NewString(src string, version csskit.Version) *Scanner {
	return &Scanner{
		z:       parse.NewInputString(src),
		version: version,
		line:    1,
		col:     1,
	}
}

// OnIllegalCharacter installs the callback invoked for characters that
// cannot start any token. The default is to skip silently.
func (s *Scanner) OnIllegalCharacter(f func(r rune)) { s.onIllegal = f }

// Err returns the input error, io.EOF when the input was fully consumed.
func (s *Scanner) Err() error { return s.z.Err() }

// Tokenize scans the whole input into a linked token chain and returns
// its head. The chain always ends in an EOF token.
func (s *Scanner) Tokenize() *token.Token {
	head := s.Next()
	t := head
	for t.Kind != token.EOF {
		next := s.Next()
		t.Next = next
		t = next
	}
	return head
}

// Next returns the next token. After the input is exhausted it returns
// EOF tokens forever.
func (s *Scanner) Next() *token.Token {
	for {
		beginLine, beginCol := s.line, s.col
		r, w := s.z.PeekRune(0)
		if r == 0 {
			return s.emit(token.EOF, beginLine, beginCol)
		}

		switch {
		case isWhitespace(r):
			s.consumeWhitespace()
			return s.emit(token.Whitespace, beginLine, beginCol)
		case r == '/' && s.z.Peek(1) == '*':
			s.consumeComment()
			return s.emit(token.Comment, beginLine, beginCol)
		case r == '"' || r == '\'':
			s.consumeString(r)
			return s.emit(token.String, beginLine, beginCol)
		case isDigit(r):
			return s.emit(s.consumeNumeric(), beginLine, beginCol)
		case r == '.' && isDigit(rune(s.z.Peek(1))):
			return s.emit(s.consumeNumeric(), beginLine, beginCol)
		case (r == '+' || r == '-') && s.startsNumber():
			s.move(r, w)
			return s.emit(s.consumeNumeric(), beginLine, beginCol)
		case r == '<' && s.z.Peek(1) == '!' && s.z.Peek(2) == '-' && s.z.Peek(3) == '-':
			s.moveASCII(4)
			return s.emit(token.CDO, beginLine, beginCol)
		case r == '-' && s.z.Peek(1) == '-' && s.z.Peek(2) == '>':
			s.moveASCII(3)
			return s.emit(token.CDC, beginLine, beginCol)
		case isIdentStart(r) || r == '\\' || r == '-' && s.startsIdent(1):
			return s.emit(s.consumeIdentLike(), beginLine, beginCol)
		case r == '@':
			if s.startsIdent(1) {
				s.move(r, w)
				s.consumeName()
				return s.emit(token.AtKeyword, beginLine, beginCol)
			}
			s.move(r, w)
			return s.emit(token.Delim, beginLine, beginCol)
		case r == '#':
			if c := rune(s.z.Peek(1)); isNameChar(c) || c == '\\' || s.z.Peek(1) >= 0x80 {
				s.move(r, w)
				s.consumeName()
				return s.emit(token.Hash, beginLine, beginCol)
			}
			s.move(r, w)
			return s.emit(token.Delim, beginLine, beginCol)
		case r == '~' && s.z.Peek(1) == '=':
			s.moveASCII(2)
			return s.emit(token.Includes, beginLine, beginCol)
		case r == '|' && s.z.Peek(1) == '=':
			s.moveASCII(2)
			return s.emit(token.DashMatch, beginLine, beginCol)
		case r == '^' && s.z.Peek(1) == '=' && s.version.AtLeast(csskit.CSS30):
			s.moveASCII(2)
			return s.emit(token.PrefixMatch, beginLine, beginCol)
		case r == '$' && s.z.Peek(1) == '=' && s.version.AtLeast(csskit.CSS30):
			s.moveASCII(2)
			return s.emit(token.SuffixMatch, beginLine, beginCol)
		case r == '*' && s.z.Peek(1) == '=' && s.version.AtLeast(csskit.CSS30):
			s.moveASCII(2)
			return s.emit(token.SubstringMatch, beginLine, beginCol)
		case r == ':':
			s.move(r, w)
			return s.emit(token.Colon, beginLine, beginCol)
		case r == ';':
			s.move(r, w)
			return s.emit(token.Semicolon, beginLine, beginCol)
		case r == ',':
			s.move(r, w)
			return s.emit(token.Comma, beginLine, beginCol)
		case r == '{':
			s.move(r, w)
			return s.emit(token.LBrace, beginLine, beginCol)
		case r == '}':
			s.move(r, w)
			return s.emit(token.RBrace, beginLine, beginCol)
		case r == '(':
			s.move(r, w)
			return s.emit(token.LParen, beginLine, beginCol)
		case r == ')':
			s.move(r, w)
			return s.emit(token.RParen, beginLine, beginCol)
		case r == '[':
			s.move(r, w)
			return s.emit(token.LBracket, beginLine, beginCol)
		case r == ']':
			s.move(r, w)
			return s.emit(token.RBracket, beginLine, beginCol)
		case isDelim(r):
			s.move(r, w)
			return s.emit(token.Delim, beginLine, beginCol)
		default:
			// Not a start of any token. Signal and resume after it.
			s.move(r, w)
			s.z.Shift()
			if s.onIllegal != nil {
				s.onIllegal(r)
			}
		}
	}
}

func (s *Scanner) emit(kind token.Kind, beginLine, beginCol int) *token.Token {
	return &token.Token{
		Kind:        kind,
		Image:       string(s.z.Shift()),
		BeginLine:   beginLine,
		BeginColumn: beginCol,
		EndLine:     s.lastLine,
		EndColumn:   s.lastCol,
	}
}

// move consumes the rune r of byte width w and tracks line/column.
func (s *Scanner) move(r rune, w int) {
	s.lastLine, s.lastCol = s.line, s.col
	s.z.Move(w)
	if r == '\n' || r == '\r' && s.z.Peek(0) != '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
}

// moveASCII consumes n single-byte characters that are known not to be
// newlines.
func (s *Scanner) moveASCII(n int) {
	s.z.Move(n)
	s.lastLine = s.line
	s.lastCol = s.col + n - 1
	s.col += n
}

func (s *Scanner) consumeWhitespace() {
	for {
		r, w := s.z.PeekRune(0)
		if r == 0 || !isWhitespace(r) {
			return
		}
		s.move(r, w)
	}
}

func (s *Scanner) consumeComment() {
	s.moveASCII(2) // "/*"
	for {
		r, w := s.z.PeekRune(0)
		if r == 0 {
			return
		}
		if r == '*' && s.z.Peek(1) == '/' {
			s.moveASCII(2)
			return
		}
		s.move(r, w)
	}
}

// consumeString consumes a quoted string including both quotes. Escaped
// newlines continue the string; a raw newline is tolerated and kept in
// the image, matching lenient real-world tokenizers.
func (s *Scanner) consumeString(quote rune) {
	s.move(quote, 1)
	for {
		r, w := s.z.PeekRune(0)
		if r == 0 {
			return
		}
		if r == quote {
			s.move(r, w)
			return
		}
		if r == '\\' {
			s.consumeEscape()
			continue
		}
		s.move(r, w)
	}
}

// consumeEscape consumes a backslash escape: either up to six hex digits
// followed by optional whitespace, or any single character.
func (s *Scanner) consumeEscape() {
	s.move('\\', 1)
	r, w := s.z.PeekRune(0)
	if r == 0 {
		return
	}
	if isHexDigit(r) {
		for i := 0; i < 6; i++ {
			h, hw := s.z.PeekRune(0)
			if h == 0 || !isHexDigit(h) {
				break
			}
			s.move(h, hw)
		}
		if ws, wsw := s.z.PeekRune(0); ws != 0 && isWhitespace(ws) {
			s.move(ws, wsw)
		}
		return
	}
	s.move(r, w)
}

// startsNumber reports whether a sign at offset 0 is followed by a digit
// or a dot and a digit.
func (s *Scanner) startsNumber() bool {
	c := rune(s.z.Peek(1))
	if isDigit(c) {
		return true
	}
	return c == '.' && isDigit(rune(s.z.Peek(2)))
}

// startsIdent reports whether an identifier starts at byte offset off.
func (s *Scanner) startsIdent(off int) bool {
	r, _ := s.z.PeekRune(off)
	if r == 0 {
		return false
	}
	if r == '-' {
		r2, _ := s.z.PeekRune(off + 1)
		return r2 != 0 && (isIdentStart(r2) || r2 == '\\' || r2 == '-')
	}
	return isIdentStart(r) || r == '\\'
}

// consumeNumeric consumes a number with the sign already consumed and
// classifies it as Number, Percentage or Dimension.
func (s *Scanner) consumeNumeric() token.Kind {
	s.consumeDigits()
	if r, _ := s.z.PeekRune(0); r == '.' && isDigit(rune(s.z.Peek(1))) {
		s.move('.', 1)
		s.consumeDigits()
	}
	// Scientific notation is a CSS 3.0 construct.
	if s.version.AtLeast(csskit.CSS30) {
		if r, _ := s.z.PeekRune(0); r == 'e' || r == 'E' {
			c1 := rune(s.z.Peek(1))
			c2 := rune(s.z.Peek(2))
			if isDigit(c1) || (c1 == '+' || c1 == '-') && isDigit(c2) {
				s.move(r, 1)
				if c1 == '+' || c1 == '-' {
					s.move(c1, 1)
				}
				s.consumeDigits()
			}
		}
	}
	if r, w := s.z.PeekRune(0); r == '%' {
		s.move(r, w)
		return token.Percentage
	}
	if s.startsIdent(0) {
		s.consumeName()
		return token.Dimension
	}
	return token.Number
}

func (s *Scanner) consumeDigits() {
	for {
		r, w := s.z.PeekRune(0)
		if !isDigit(r) {
			return
		}
		s.move(r, w)
	}
}

// consumeName consumes name characters and escapes.
func (s *Scanner) consumeName() {
	for {
		r, w := s.z.PeekRune(0)
		if r == 0 {
			return
		}
		if r == '\\' {
			s.consumeEscape()
			continue
		}
		if !isNameChar(r) {
			return
		}
		s.move(r, w)
	}
}

// consumeIdentLike consumes an identifier and upgrades it to a Function
// or URL token when a "(" follows directly.
func (s *Scanner) consumeIdentLike() token.Kind {
	start := s.z.Pos()
	if r, w := s.z.PeekRune(0); r == '-' {
		s.move(r, w)
	}
	if r, w := s.z.PeekRune(0); r == '\\' {
		s.consumeEscape()
	} else if r != 0 && isNameChar(r) {
		s.move(r, w)
	}
	s.consumeName()
	name := string(s.z.Lexeme()[start:])
	if r, _ := s.z.PeekRune(0); r == '(' {
		s.move('(', 1)
		if isURLName(name) {
			s.consumeURL()
			return token.URL
		}
		return token.Function
	}
	return token.Ident
}

// consumeURL consumes the remainder of "url(" up to the balancing ")".
// Quoted and unquoted forms are supported; unquoted URLs may contain
// balanced parentheses.
func (s *Scanner) consumeURL() {
	s.consumeWhitespace()
	if r, _ := s.z.PeekRune(0); r == '"' || r == '\'' {
		s.consumeString(r)
		s.consumeWhitespace()
		if r2, w2 := s.z.PeekRune(0); r2 == ')' {
			s.move(r2, w2)
		}
		return
	}
	depth := 0
	for {
		r, w := s.z.PeekRune(0)
		if r == 0 {
			return
		}
		switch {
		case r == ')' && depth == 0:
			s.move(r, w)
			return
		case r == ')':
			depth--
			s.move(r, w)
		case r == '(':
			depth++
			s.move(r, w)
		case r == '\\':
			s.consumeEscape()
		default:
			s.move(r, w)
		}
	}
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}

// isIdentStart reports whether r may start an identifier. Any Unicode
// letter qualifies, so non-ASCII identifiers work.
func isIdentStart(r rune) bool {
	return r == '_' || r >= 0x80 || unicode.IsLetter(r)
}

func isNameChar(r rune) bool {
	return isIdentStart(r) || isDigit(r) || r == '-'
}

// isDelim lists the single characters emitted as Delim tokens. Everything
// else that reaches the default branch is an illegal character.
func isDelim(r rune) bool {
	switch r {
	case '*', '+', '-', '>', '~', '.', '=', '|', '/', '!', '$', '^', '<', '%', '&', '?', '_':
		return true
	}
	return false
}

func isURLName(name string) bool {
	return len(name) == 3 &&
		(name[0] == 'u' || name[0] == 'U') &&
		(name[1] == 'r' || name[1] == 'R') &&
		(name[2] == 'l' || name[2] == 'L')
}
