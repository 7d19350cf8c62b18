// Package reader is the high-level entry point for turning CSS source
// text into the object model. It sniffs the source encoding, tokenizes,
// parses, and routes all faults through the configured error handler.
package reader

import (
	"bytes"
	"io"
	"log"
	"os"
	"strings"

	"github.com/csskit/csskit"
	"github.com/csskit/csskit/ast"
	"github.com/csskit/csskit/errorhandler"
	"github.com/csskit/csskit/parser"
	"github.com/csskit/csskit/scanner"
	"github.com/csskit/csskit/token"
)

// Settings configures a read. The zero value is not usable, use
// NewSettings.
type Settings struct {
	// Version selects the grammar, CSS 2.1 or CSS 3.0.
	Version csskit.Version
	// BrowserCompliant switches the parser to the lenient mode browsers
	// use instead of strict grammar checking.
	BrowserCompliant bool
	// FallbackCharset names the charset assumed when neither a BOM nor an
	// @charset rule determines one. Defaults to utf-8.
	FallbackCharset string
	// ErrorHandler decides what happens on malformed input. Defaults to a
	// logging handler that recovers from everything.
	ErrorHandler errorhandler.Handler
	// InterpretHandler receives advisory semantic-level problems.
	InterpretHandler errorhandler.InterpretHandler
}

// NewSettings returns settings for the passed grammar version with the
// logging error handler.
func NewSettings(version csskit.Version) *Settings {
	return &Settings{
		Version:         version,
		FallbackCharset: "utf-8",
	}
}

func (s *Settings) handler() errorhandler.Handler {
	if s.ErrorHandler != nil {
		return s.ErrorHandler
	}
	return errorhandler.NewLogging(log.Default())
}

// Parse reads a stylesheet from r. On abort it returns nil and the
// triggering error; recovered faults only reach the error handler.
func Parse(r io.Reader, s *Settings) (*ast.CascadingStyleSheet, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseBytes(src, s)
}

// FromString reads a stylesheet from a string.
func FromString(src string, s *Settings) (*ast.CascadingStyleSheet, error) {
	return parseBytes([]byte(src), s)
}

// FromFile reads a stylesheet from the file at path.
func FromFile(path string, s *Settings) (*ast.CascadingStyleSheet, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseBytes(src, s)
}

// DeclarationList reads a bare declaration block as found in HTML style
// attributes.
func DeclarationList(src string, s *Settings) (*ast.DeclarationList, error) {
	head, err := tokenize(src, s)
	if err != nil {
		return nil, err
	}
	return newParser(s).ParseDeclarationList(head)
}

// IsValid reports whether src parses without any fault under the passed
// grammar version.
func IsValid(src string, version csskit.Version) bool {
	s := NewSettings(version)
	s.ErrorHandler = errorhandler.NewThrowing()
	sheet, err := FromString(src, s)
	return err == nil && sheet != nil
}

func parseBytes(src []byte, s *Settings) (*ast.CascadingStyleSheet, error) {
	head, err := tokenize(decode(src, s), s)
	if err != nil {
		return nil, err
	}
	return newParser(s).ParseStyleSheet(head)
}

func newParser(s *Settings) *parser.Parser {
	p := parser.New(s.Version, s.handler())
	p.SetBrowserCompliant(s.BrowserCompliant)
	p.SetInterpretHandler(s.InterpretHandler)
	return p
}

// tokenize scans the whole source, routing illegal characters through
// the error handler. An aborting decision fails the read.
func tokenize(src string, s *Settings) (*token.Token, error) {
	handler := s.handler()
	var illegalErr error
	sc := scanner.NewString(src, s.Version)
	sc.OnIllegalCharacter(func(r rune) {
		if handler.OnIllegalCharacter(r) == errorhandler.Abort && illegalErr == nil {
			illegalErr = &errorhandler.SyntaxError{Message: "illegal character " + string(r)}
		}
	})
	head := sc.Tokenize()
	if illegalErr != nil {
		return nil, illegalErr
	}
	if err := sc.Err(); err != nil && err != io.EOF {
		return nil, err
	}
	return head, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decode determines the source charset from the BOM or a leading
// @charset rule and returns the text to parse. Only UTF-8 and its ASCII
// subsets are decoded directly; anything else raises an advisory
// warning and is read as-is.
func decode(src []byte, s *Settings) string {
	src = bytes.TrimPrefix(src, utf8BOM)
	charset := s.FallbackCharset
	if name, ok := sniffCharsetRule(src); ok {
		charset = name
	}
	if !isUTF8Compatible(charset) && s.InterpretHandler != nil {
		s.InterpretHandler.OnInterpretationWarning("unsupported charset " + charset + ", reading as utf-8")
	}
	return string(src)
}

// sniffCharsetRule extracts the charset name from a leading
// `@charset "name";` without consuming it; the parser skips the rule
// later.
func sniffCharsetRule(src []byte) (string, bool) {
	const prefix = `@charset "`
	if len(src) < len(prefix) || !strings.EqualFold(string(src[:len(prefix)]), prefix) {
		return "", false
	}
	rest := src[len(prefix):]
	end := bytes.IndexByte(rest, '"')
	if end < 0 {
		return "", false
	}
	return string(rest[:end]), true
}

func isUTF8Compatible(charset string) bool {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8", "us-ascii", "ascii":
		return true
	}
	return false
}

// ExtractCharset returns the charset a stylesheet declares, or the
// fallback when it declares none.
func ExtractCharset(src string, fallback string) string {
	if name, ok := sniffCharsetRule([]byte(strings.TrimPrefix(src, string(utf8BOM)))); ok {
		return name
	}
	return fallback
}
