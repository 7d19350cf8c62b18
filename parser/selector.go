package parser

import (
	"strings"

	"github.com/csskit/csskit"
	"github.com/csskit/csskit/ast"
	"github.com/csskit/csskit/errorhandler"
	"github.com/csskit/csskit/token"
)

func (p *Parser) parseStyleRule() *ast.StyleRule {
	p.skipIgnorable()
	first := p.cur
	r := ast.NewStyleRule()
	for {
		sel, serr := p.parseSelector()
		if serr != nil {
			p.failStyleRule(serr, first)
			return nil
		}
		r.AddSelector(sel)
		p.skipIgnorable()
		if p.cur.Kind == token.Comma {
			p.next()
			continue
		}
		break
	}
	if p.cur.Kind != token.LBrace {
		p.failStyleRule(p.syntaxError("in style rule", token.LBrace.String()), first)
		return nil
	}
	p.next()
	p.parseDeclarationBlockInto(r.Declarations, "style rule")
	p.locate(r, first)
	return r
}

// failStyleRule reports a broken selector part. Browser-compliant mode
// skips the whole rule the way browsers do; strict mode goes through the
// regular parse error protocol.
func (p *Parser) failStyleRule(err *errorhandler.SyntaxError, first *token.Token) {
	if p.browserCompliant {
		lastSkipped := p.skipToResync(true)
		to := lastSkipped
		if to == nil {
			to = first
		}
		if p.handler.OnBrowserCompliantSkip(err, first, to) == errorhandler.Abort {
			p.abort(err)
		}
		return
	}
	p.fail(err, true)
}

func (p *Parser) parseSelector() (*ast.Selector, *errorhandler.SyntaxError) {
	p.skipIgnorable()
	first := p.cur
	sel := ast.NewSelector()
	sawWS := false
	for {
		switch p.cur.Kind {
		case token.Comma, token.LBrace, token.RBrace, token.RParen, token.EOF:
			if len(sel.Members) == 0 {
				return nil, p.syntaxError("empty selector")
			}
			p.locate(sel, first)
			return sel, nil
		}
		m, serr := p.parseSelectorMember()
		if serr != nil {
			return nil, serr
		}
		// Whitespace between two non-combinator members is the descendant
		// combinator.
		if _, isComb := m.(ast.SelectorCombinator); !isComb && sawWS && len(sel.Members) > 0 {
			if _, prevComb := sel.Members[len(sel.Members)-1].(ast.SelectorCombinator); !prevComb {
				sel.AddMember(ast.CombinatorDescendant)
			}
		}
		sel.AddMember(m)
		sawWS = p.skipIgnorable()
	}
}

func (p *Parser) parseSelectorMember() (ast.SelectorMember, *errorhandler.SyntaxError) {
	switch p.cur.Kind {
	case token.Ident:
		v := p.cur.Image
		p.next()
		return p.finishNamespacedName(v)
	case token.Hash:
		m := ast.NewSelectorSimpleMember(p.cur.Image)
		p.next()
		return m, nil
	case token.Colon:
		return p.parsePseudo()
	case token.LBracket:
		return p.parseAttributeSelector()
	case token.Delim:
		switch p.cur.Image {
		case "*":
			p.next()
			return p.finishNamespacedName("*")
		case ".":
			p.next()
			if p.cur.Kind != token.Ident {
				return nil, p.syntaxError("after \".\" in selector", token.Ident.String())
			}
			m := ast.NewSelectorSimpleMember("." + p.cur.Image)
			p.next()
			return m, nil
		case ">":
			p.next()
			return ast.CombinatorChild, nil
		case "+":
			p.next()
			return ast.CombinatorAdjacent, nil
		case "~":
			if !p.version.AtLeast(csskit.CSS30) {
				return nil, p.syntaxError("general sibling combinator \"~\" requires CSS 3.0")
			}
			p.next()
			return ast.CombinatorGeneral, nil
		case "|":
			p.next()
			if p.cur.Kind != token.Ident {
				return nil, p.syntaxError("after namespace separator", token.Ident.String())
			}
			m := ast.NewSelectorSimpleMember("|" + p.cur.Image)
			p.next()
			return m, nil
		}
	}
	return nil, p.syntaxError("in selector")
}

// finishNamespacedName attaches "|name" to an element name or "*" when
// a namespace separator follows directly.
func (p *Parser) finishNamespacedName(v string) (ast.SelectorMember, *errorhandler.SyntaxError) {
	if p.cur.Kind == token.Delim && p.cur.Image == "|" {
		p.next()
		switch {
		case p.cur.Kind == token.Ident:
			v += "|" + p.cur.Image
			p.next()
		case p.cur.Kind == token.Delim && p.cur.Image == "*":
			v += "|*"
			p.next()
		default:
			return nil, p.syntaxError("after namespace separator", token.Ident.String(), "\"*\"")
		}
	}
	return ast.NewSelectorSimpleMember(v), nil
}

func (p *Parser) parsePseudo() (ast.SelectorMember, *errorhandler.SyntaxError) {
	prefix := ":"
	p.next()
	if p.cur.Kind == token.Colon {
		prefix = "::"
		p.next()
	}
	switch p.cur.Kind {
	case token.Ident:
		m := ast.NewSelectorSimpleMember(prefix + p.cur.Image)
		p.next()
		return m, nil
	case token.Function:
		image := p.cur.Image
		switch strings.ToLower(strings.TrimSuffix(image, "(")) {
		case "not", "is", "has", "host", "where":
			if !p.version.AtLeast(csskit.CSS30) {
				return nil, p.syntaxError(prefix + image + ") requires CSS 3.0")
			}
			p.next()
			return p.parseSelectorFunction(prefix + image)
		}
		// Pseudo-classes with non-selector arguments, e.g. :nth-child(2n+1),
		// keep their raw argument text.
		raw, serr := p.rawFunctionText()
		if serr != nil {
			return nil, serr
		}
		return ast.NewSelectorSimpleMember(prefix + raw), nil
	default:
		return nil, p.syntaxError("after \""+prefix+"\" in selector",
			token.Ident.String(), token.Function.String())
	}
}

// parseSelectorFunction parses the selector-list argument of :not() and
// friends up to the closing parenthesis.
func (p *Parser) parseSelectorFunction(functionName string) (ast.SelectorMember, *errorhandler.SyntaxError) {
	m := &ast.SelectorMemberFunctionLike{FunctionName: functionName}
	for {
		sel, serr := p.parseSelector()
		if serr != nil {
			return nil, serr
		}
		m.Selectors = append(m.Selectors, sel)
		p.skipIgnorable()
		if p.cur.Kind == token.Comma {
			p.next()
			continue
		}
		break
	}
	if p.cur.Kind != token.RParen {
		return nil, p.syntaxError("in "+functionName+")", token.RParen.String())
	}
	p.next()
	return m, nil
}

func (p *Parser) parseAttributeSelector() (ast.SelectorMember, *errorhandler.SyntaxError) {
	first := p.cur
	p.next() // [
	p.skipIgnorable()
	ns, attr := "", ""
	switch {
	case p.cur.Kind == token.Delim && p.cur.Image == "|":
		ns = "|"
		p.next()
	case p.cur.Kind == token.Ident, p.cur.Kind == token.Delim && p.cur.Image == "*":
		name := p.cur.Image
		p.next()
		if p.cur.Kind == token.Delim && p.cur.Image == "|" {
			ns = name + "|"
			p.next()
		} else {
			attr = name
		}
	}
	if attr == "" {
		if p.cur.Kind != token.Ident {
			return nil, p.syntaxError("in attribute selector", token.Ident.String())
		}
		attr = p.cur.Image
		p.next()
	}
	a := ast.NewSelectorAttribute(ns, attr)
	p.skipIgnorable()
	var op ast.AttributeOperator
	switch p.cur.Kind {
	case token.Delim:
		if p.cur.Image == "=" {
			op = ast.AttrEquals
		}
	case token.Includes:
		op = ast.AttrIncludes
	case token.DashMatch:
		op = ast.AttrDashMatch
	case token.PrefixMatch:
		op = ast.AttrPrefixMatch
	case token.SuffixMatch:
		op = ast.AttrSuffixMatch
	case token.SubstringMatch:
		op = ast.AttrSubstringMatch
	}
	if op != "" {
		p.next()
		p.skipIgnorable()
		if p.cur.Kind != token.Ident && p.cur.Kind != token.String {
			return nil, p.syntaxError("in attribute selector value",
				token.Ident.String(), token.String.String())
		}
		a.Operator = op
		a.Value = p.cur.Image
		p.next()
		p.skipIgnorable()
	}
	if p.cur.Kind == token.Ident && p.version.AtLeast(csskit.CSS30) {
		switch strings.ToLower(p.cur.Image) {
		case "i", "s":
			a.CaseFlag = p.cur.Image
			p.next()
			p.skipIgnorable()
		}
	}
	if p.cur.Kind != token.RBracket {
		return nil, p.syntaxError("in attribute selector", token.RBracket.String())
	}
	p.next()
	p.locate(a, first)
	return a, nil
}
