// Package errorhandler defines the recovery protocol used while parsing.
// The parser routes every fault through an injected Handler and acts on
// the returned Decision, so the caller decides whether malformed input is
// fatal, recorded or ignored.
package errorhandler

import (
	"fmt"
	"strings"

	"github.com/csskit/csskit/token"
)

// Decision tells the parser how to proceed after a fault.
type Decision int

const (
	// Continue resumes parsing at the current position.
	Continue Decision = iota
	// SkipAndResume discards input up to the next resynchronization
	// point and resumes there.
	SkipAndResume
	// Abort gives up on the whole parse; the caller gets no result.
	Abort
)

// SyntaxError describes a grammar violation. LastValidToken is the last
// token successfully consumed; Expected lists the token kinds that would
// have been valid at the failure point.
type SyntaxError struct {
	LastValidToken *token.Token
	Expected       []string
	Message        string
}

func (e *SyntaxError) Error() string {
	var sb strings.Builder
	sb.WriteString("parse error")
	if e.LastValidToken != nil {
		fmt.Fprintf(&sb, " at %s after %q", e.LastValidToken.Position(), e.LastValidToken.Image)
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if len(e.Expected) > 0 {
		sb.WriteString("; expected ")
		sb.WriteString(strings.Join(e.Expected, " or "))
	}
	return sb.String()
}

// Handler is invoked by the parser at the four fault points.
type Handler interface {
	// OnParseError reports a grammar-level syntax error. lastSkipped is
	// the last token of the span the parser would discard on resume, nil
	// when recovery has not determined it yet.
	OnParseError(err *SyntaxError, lastSkipped *token.Token) Decision

	// OnUnexpectedRule reports a structurally valid rule in a position a
	// higher-level invariant disallows, e.g. @import after a style rule.
	OnUnexpectedRule(tok *token.Token, rule, msg string) Decision

	// OnBrowserCompliantSkip reports a span that browser-compliant mode
	// discarded instead of failing.
	OnBrowserCompliantSkip(err *SyntaxError, from, to *token.Token) Decision

	// OnIllegalCharacter reports a character no token can start with.
	OnIllegalCharacter(ch rune) Decision
}

// InterpretHandler is the advisory channel for semantic-level problems
// found while building the object model. It never aborts parsing.
type InterpretHandler interface {
	OnInterpretationError(msg string)
	OnInterpretationWarning(msg string)
}

// Position describes a token position in a recorded error, decoupled
// from the live token chain.
type Position struct {
	Line   int
	Column int
	Image  string
}

func newPosition(t *token.Token) *Position {
	if t == nil {
		return nil
	}
	return &Position{Line: t.BeginLine, Column: t.BeginColumn, Image: t.Image}
}

func (p *Position) String() string {
	return fmt.Sprintf("%d:%d %q", p.Line, p.Column, p.Image)
}

// ParseError is one recorded recoverable fault.
type ParseError struct {
	LastValidToken    *Position
	ExpectedTokens    string
	FirstSkippedToken *Position
	LastSkippedToken  *Position
	Message           string
}

func (e *ParseError) String() string { return e.Message }

func newParseError(err *SyntaxError, lastSkipped *token.Token) *ParseError {
	pe := &ParseError{
		ExpectedTokens: strings.Join(err.Expected, ", "),
		Message:        renderParseError(err, lastSkipped),
	}
	if err.LastValidToken != nil {
		pe.LastValidToken = newPosition(err.LastValidToken)
		pe.FirstSkippedToken = newPosition(err.LastValidToken.Next)
	}
	pe.LastSkippedToken = newPosition(lastSkipped)
	return pe
}

func renderParseError(err *SyntaxError, lastSkipped *token.Token) string {
	var sb strings.Builder
	sb.WriteString(err.Error())
	if lastSkipped != nil {
		fmt.Fprintf(&sb, "; skipped until %s %q", lastSkipped.Position(), lastSkipped.Image)
	}
	return sb.String()
}

func renderUnexpectedRule(tok *token.Token, rule, msg string) string {
	return fmt.Sprintf("unexpected rule %q at %s: %s", rule, tok.Position(), msg)
}

func renderBrowserCompliantSkip(err *SyntaxError, from, to *token.Token) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "browser compliant mode skipped CSS from %s %q to %s %q",
		from.Position(), from.Image, to.Position(), to.Image)
	if err != nil {
		sb.WriteString(": ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func renderIllegalCharacter(ch rune) string {
	return fmt.Sprintf("illegal character %q (%U)", ch, ch)
}
