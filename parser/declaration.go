package parser

import (
	"strconv"
	"strings"

	"github.com/csskit/csskit"
	"github.com/csskit/csskit/ast"
	"github.com/csskit/csskit/errorhandler"
	"github.com/csskit/csskit/token"
)

// parseDeclarationBlockInto parses declarations up to and including the
// closing brace. The opening brace must already be consumed.
func (p *Parser) parseDeclarationBlockInto(list *ast.DeclarationList, inWhat string) {
	for !p.aborted {
		p.skipIgnorable()
		switch p.cur.Kind {
		case token.RBrace:
			p.next()
			return
		case token.EOF:
			p.fail(p.syntaxError("unclosed "+inWhat, token.RBrace.String()), false)
			return
		case token.Semicolon:
			p.next()
		default:
			if d := p.parseDeclaration(); d != nil {
				list.Add(d)
			}
		}
	}
}

func (p *Parser) parseDeclaration() *ast.Declaration {
	p.skipIgnorable()
	first := p.cur
	prop := ""
	// Star and dollar property hacks attach to the name.
	if p.cur.Kind == token.Delim && (p.cur.Image == "*" || p.cur.Image == "$") {
		prop = p.cur.Image
		p.next()
	}
	if p.cur.Kind != token.Ident {
		p.fail(p.syntaxError("in declaration", token.Ident.String()), true)
		return nil
	}
	prop += p.cur.Image
	p.next()
	p.skipIgnorable()
	if p.cur.Kind != token.Colon {
		p.fail(p.syntaxError("in declaration of "+strconv.Quote(prop), token.Colon.String()), true)
		return nil
	}
	p.next()
	expr, serr := p.parseExpression(false)
	if serr != nil {
		p.fail(serr, true)
		return nil
	}
	important := false
	if p.cur.Kind == token.Delim && p.cur.Image == "!" {
		p.next()
		p.skipIgnorable()
		if p.cur.Kind != token.Ident || !strings.EqualFold(p.cur.Image, "important") {
			p.fail(p.syntaxError("after \"!\"", "\"important\""), true)
			return nil
		}
		important = true
		p.next()
	}
	if len(expr.Members) == 0 {
		p.warn("dropping declaration " + strconv.Quote(prop) + " with empty value")
		return nil
	}
	d := ast.NewDeclaration(prop, expr, important)
	p.locate(d, first)
	return d
}

// parseDeclarationUntilParen parses "property: value" as found in an
// @supports declaration test, stopping in front of the closing
// parenthesis.
func (p *Parser) parseDeclarationUntilParen() *ast.Declaration {
	p.skipIgnorable()
	first := p.cur
	if p.cur.Kind != token.Ident {
		p.fail(p.syntaxError("in @supports declaration", token.Ident.String()), false)
		return nil
	}
	prop := p.cur.Image
	p.next()
	p.skipIgnorable()
	if p.cur.Kind != token.Colon {
		p.fail(p.syntaxError("in @supports declaration of "+strconv.Quote(prop), token.Colon.String()), false)
		return nil
	}
	p.next()
	expr, serr := p.parseExpression(true)
	if serr != nil {
		p.fail(serr, false)
		return nil
	}
	d := ast.NewDeclaration(prop, expr, false)
	p.locate(d, first)
	return d
}

// parseExpression parses a declaration value. With inFunc it parses
// function arguments and stops in front of the closing parenthesis,
// otherwise it stops at ";", "}" or "!".
func (p *Parser) parseExpression(inFunc bool) (*ast.Expression, *errorhandler.SyntaxError) {
	e := ast.NewExpression()
	for {
		p.skipIgnorable()
		switch p.cur.Kind {
		case token.Semicolon, token.RBrace, token.EOF:
			if inFunc {
				return nil, p.syntaxError("unclosed function arguments", token.RParen.String())
			}
			return e, nil
		case token.RParen:
			if inFunc {
				return e, nil
			}
			return nil, p.syntaxError("unexpected \")\" in expression")
		case token.Comma:
			e.AddMember(ast.OperatorComma)
			p.next()
		case token.Number, token.Percentage, token.Dimension, token.String, token.Ident, token.Hash:
			first := p.cur
			value := p.cur.Image
			if p.cur.Kind == token.Ident && strings.EqualFold(value, "u") {
				value = p.mergeUnicodeRange()
			}
			t := ast.NewTermSimple(value)
			t.SetSourceLocation(csskit.NewSourceLocation(area(first), area(p.cur)))
			e.AddMember(t)
			p.next()
		case token.URL:
			e.AddMember(ast.NewTermURI(ast.NewURIFromCSS(p.cur.Image)))
			p.next()
		case token.Function:
			name := strings.TrimSuffix(p.cur.Image, "(")
			if strings.EqualFold(name, "calc") && p.version.AtLeast(csskit.CSS30) {
				m, serr := p.parseCalc()
				if serr != nil {
					return nil, serr
				}
				e.AddMember(m)
				continue
			}
			p.next()
			args, serr := p.parseExpression(true)
			if serr != nil {
				return nil, serr
			}
			if p.cur.Kind != token.RParen {
				return nil, p.syntaxError("in arguments of "+name+"()", token.RParen.String())
			}
			p.next()
			e.AddMember(ast.NewMemberFunction(name, args))
		case token.Delim:
			switch p.cur.Image {
			case "/":
				e.AddMember(ast.OperatorSlash)
				p.next()
			case "!":
				if inFunc {
					return nil, p.syntaxError("unexpected \"!\" in function arguments")
				}
				return e, nil
			default:
				return nil, p.syntaxError("unexpected " + strconv.Quote(p.cur.Image) + " in expression")
			}
		default:
			return nil, p.syntaxError("in expression")
		}
	}
}

// mergeUnicodeRange reassembles a unicode-range literal such as
// "u+0025-00FF" or "U+00??" that splinters into several adjacent tokens.
// The current token is the leading "u" ident; on a merge the cursor is
// left on the last merged token.
func (p *Parser) mergeUnicodeRange() string {
	next := p.cur.Next
	if next == nil || !touches(p.cur, next) ||
		!strings.HasPrefix(next.Image, "+") || !unicodeRangePart(next) {
		return p.cur.Image
	}
	if next.Kind == token.Delim {
		after := next.Next
		if after == nil || !touches(next, after) || !unicodeRangePart(after) ||
			after.Image == "+" || after.Image == "-" {
			return p.cur.Image
		}
	}
	var sb strings.Builder
	sb.WriteString(p.cur.Image)
	for next != nil && touches(p.cur, next) && unicodeRangePart(next) {
		sb.WriteString(next.Image)
		p.next()
		next = p.cur.Next
	}
	return sb.String()
}

// touches reports whether b starts directly after a with nothing in
// between.
func touches(a, b *token.Token) bool {
	return a.EndLine == b.BeginLine && a.EndColumn+1 == b.BeginColumn
}

// unicodeRangePart accepts the token shapes a unicode-range splinters
// into after the leading ident: hex runs lexed as numbers, dimensions or
// idents, "?" wildcards and the "+" and "-" separators.
func unicodeRangePart(t *token.Token) bool {
	switch t.Kind {
	case token.Number, token.Dimension, token.Ident:
	case token.Delim:
		if t.Image != "?" && t.Image != "+" && t.Image != "-" {
			return false
		}
	default:
		return false
	}
	for _, c := range t.Image {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F',
			c == '+', c == '-', c == '?':
		default:
			return false
		}
	}
	return true
}

// parseCalc parses a calc() term. The current token must be the calc
// function token.
func (p *Parser) parseCalc() (*ast.MemberMath, *errorhandler.SyntaxError) {
	p.next() // calc(
	m := ast.NewMemberMath()
	for {
		member, done, serr := p.parseMathMember("calc()")
		if serr != nil {
			return nil, serr
		}
		if done {
			return m, nil
		}
		m.AddMember(member)
	}
}

func (p *Parser) parseMathProduct() (*ast.MathProduct, *errorhandler.SyntaxError) {
	p.next() // (
	prod := ast.NewMathProduct()
	for {
		member, done, serr := p.parseMathMember("parenthesized calc() group")
		if serr != nil {
			return nil, serr
		}
		if done {
			return prod, nil
		}
		prod.AddMember(member)
	}
}

// parseMathMember parses one calc() element. done is set when the
// closing parenthesis was consumed.
func (p *Parser) parseMathMember(inWhat string) (ast.MathMember, bool, *errorhandler.SyntaxError) {
	p.skipIgnorable()
	switch p.cur.Kind {
	case token.RParen:
		p.next()
		return nil, true, nil
	case token.EOF:
		return nil, false, p.syntaxError("unclosed "+inWhat, token.RParen.String())
	case token.Number, token.Percentage, token.Dimension, token.Ident:
		v := ast.NewMathValue(p.cur.Image)
		p.next()
		return v, false, nil
	case token.LParen:
		prod, serr := p.parseMathProduct()
		if serr != nil {
			return nil, false, serr
		}
		return prod, false, nil
	case token.Function:
		raw, serr := p.rawFunctionText()
		if serr != nil {
			return nil, false, serr
		}
		return ast.NewMathValue(raw), false, nil
	case token.Delim:
		switch p.cur.Image {
		case "+", "-", "*", "/":
			op := ast.MathOperator(p.cur.Image)
			p.next()
			return op, false, nil
		}
	}
	return nil, false, p.syntaxError("in " + inWhat)
}

// rawFunctionText collects a function call verbatim including the
// closing parenthesis. The current token must be the function token.
func (p *Parser) rawFunctionText() (string, *errorhandler.SyntaxError) {
	var sb strings.Builder
	sb.WriteString(p.cur.Image)
	p.next()
	depth := 0
	for {
		switch p.cur.Kind {
		case token.EOF:
			return "", p.syntaxError("unclosed function", token.RParen.String())
		case token.Function, token.LParen:
			depth++
		case token.RParen:
			if depth == 0 {
				sb.WriteByte(')')
				p.next()
				return sb.String(), nil
			}
			depth--
		}
		sb.WriteString(p.cur.Image)
		p.next()
	}
}
