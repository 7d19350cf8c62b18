// Package parser builds the object model from a token chain. It is a
// hand-written recursive-descent parser parameterized by grammar
// version. Faults are routed through an errorhandler.Handler whose
// Decision drives recovery: resynchronization points are the next ";"
// or the brace closing the current block.
package parser

import (
	"strings"

	"github.com/csskit/csskit"
	"github.com/csskit/csskit/ast"
	"github.com/csskit/csskit/errorhandler"
	"github.com/csskit/csskit/parsehelper"
	"github.com/csskit/csskit/token"
)

// Parser consumes a token chain and produces AST nodes. A Parser is
// single-use per chain but may be reused for sequential parses.
type Parser struct {
	version          csskit.Version
	browserCompliant bool
	handler          errorhandler.Handler
	interpret        errorhandler.InterpretHandler

	cur      *token.Token
	last     *token.Token
	aborted  bool
	abortErr error
}

// New returns a parser for the passed grammar version. A nil handler
// aborts on the first fault.
func New(version csskit.Version, handler errorhandler.Handler) *Parser {
	if handler == nil {
		handler = errorhandler.NewThrowing()
	}
	return &Parser{version: version, handler: handler}
}

// SetBrowserCompliant switches between strict mode and the lenient mode
// browsers use: malformed style rules are skipped as a whole and unknown
// at-rules nested in group rules are kept verbatim.
func (p *Parser) SetBrowserCompliant(on bool) { p.browserCompliant = on }

// SetInterpretHandler installs the advisory channel for semantic-level
// problems. nil discards them.
func (p *Parser) SetInterpretHandler(h errorhandler.InterpretHandler) { p.interpret = h }

// ParseStyleSheet parses a complete stylesheet from the chain starting
// at head. On abort it returns nil and the triggering error; recovered
// faults only reach the error handler.
func (p *Parser) ParseStyleSheet(head *token.Token) (*ast.CascadingStyleSheet, error) {
	p.reset(head)
	sheet := ast.NewCascadingStyleSheet()
	for !p.aborted {
		p.skipIgnorable()
		switch p.cur.Kind {
		case token.EOF:
			return p.finish(sheet)
		case token.CDO, token.CDC:
			p.next()
		case token.AtKeyword:
			p.parseTopLevelAtRule(sheet)
		case token.Semicolon:
			p.next()
		default:
			before := p.cur
			if r := p.parseStyleRule(); r != nil {
				sheet.AddRule(r)
			}
			// Recovery may stop in front of a stray "}"; force progress.
			if p.cur == before {
				p.next()
			}
		}
	}
	return p.finish(sheet)
}

// ParseDeclarationList parses a bare declaration block as found in HTML
// style attributes.
func (p *Parser) ParseDeclarationList(head *token.Token) (*ast.DeclarationList, error) {
	p.reset(head)
	list := ast.NewDeclarationList()
	for !p.aborted {
		p.skipIgnorable()
		switch p.cur.Kind {
		case token.EOF:
			if p.aborted {
				return nil, p.abortErr
			}
			return list, nil
		case token.Semicolon:
			p.next()
		default:
			before := p.cur
			if d := p.parseDeclaration(); d != nil {
				list.Add(d)
			}
			if p.cur == before {
				p.next()
			}
		}
	}
	return nil, p.abortErr
}

func (p *Parser) reset(head *token.Token) {
	p.cur = head
	p.last = nil
	p.aborted = false
	p.abortErr = nil
}

func (p *Parser) finish(sheet *ast.CascadingStyleSheet) (*ast.CascadingStyleSheet, error) {
	if p.aborted {
		return nil, p.abortErr
	}
	return sheet, nil
}

// next advances to the following token. The EOF token is terminal.
func (p *Parser) next() {
	if p.cur.Kind != token.EOF {
		p.last = p.cur
		p.cur = p.cur.Next
	}
}

// skipIgnorable advances past whitespace and comments and reports
// whether any was crossed. The report drives descendant combinators.
func (p *Parser) skipIgnorable() bool {
	crossed := false
	for p.cur.Kind == token.Whitespace || p.cur.Kind == token.Comment {
		crossed = true
		p.next()
	}
	return crossed
}

func (p *Parser) abort(err error) {
	p.aborted = true
	if p.abortErr == nil {
		p.abortErr = err
	}
}

func (p *Parser) syntaxError(msg string, expected ...string) *errorhandler.SyntaxError {
	return &errorhandler.SyntaxError{LastValidToken: p.last, Expected: expected, Message: msg}
}

// expect consumes a token of kind k or raises a syntax error. It reports
// whether the token was present.
func (p *Parser) expect(k token.Kind, inWhat string) bool {
	p.skipIgnorable()
	if p.cur.Kind != k {
		p.fail(p.syntaxError("in "+inWhat, k.String()), true)
		return false
	}
	p.next()
	return true
}

// fail routes a syntax error through the handler after skipping to the
// resynchronization point. nested keeps the skip inside the current
// block by stopping before its closing brace.
func (p *Parser) fail(err *errorhandler.SyntaxError, nested bool) {
	lastSkipped := p.skipToResync(nested)
	if p.handler.OnParseError(err, lastSkipped) == errorhandler.Abort {
		p.abort(err)
	}
}

// skipToResync discards tokens up to and including the next ";" at
// depth 0 or the brace closing the current construct. With nested it
// stops in front of a "}" at depth 0 instead of consuming it.
func (p *Parser) skipToResync(nested bool) *token.Token {
	depth := 0
	var lastSkipped *token.Token
	for p.cur.Kind != token.EOF {
		if nested && depth == 0 && p.cur.Kind == token.RBrace {
			return lastSkipped
		}
		t := p.cur
		p.next()
		lastSkipped = t
		switch t.Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			if depth > 0 {
				depth--
			}
			if depth == 0 {
				return lastSkipped
			}
		case token.Semicolon:
			if depth == 0 {
				return lastSkipped
			}
		}
	}
	return lastSkipped
}

func (p *Parser) warn(msg string) {
	if p.interpret != nil {
		p.interpret.OnInterpretationWarning(msg)
	}
}

func area(t *token.Token) csskit.SourceArea {
	return csskit.SourceArea{
		BeginLine:   t.BeginLine,
		BeginColumn: t.BeginColumn,
		EndLine:     t.EndLine,
		EndColumn:   t.EndColumn,
	}
}

// locate attaches the source span from first to the last consumed token.
func (p *Parser) locate(n csskit.SourceLocationAware, first *token.Token) {
	if first == nil || p.last == nil {
		return
	}
	n.SetSourceLocation(csskit.NewSourceLocation(area(first), area(p.last)))
}

// atRuleBase strips "@" and any vendor prefix and lowercases, so
// "@-webkit-keyframes" classifies as "keyframes".
func atRuleBase(image string) string {
	name := strings.ToLower(strings.TrimPrefix(image, "@"))
	for _, prefix := range ast.VendorPrefixes {
		if len(prefix) > 1 && strings.HasPrefix(name, prefix) {
			return name[len(prefix):]
		}
	}
	return name
}

func (p *Parser) parseTopLevelAtRule(sheet *ast.CascadingStyleSheet) {
	at := p.cur
	switch base := atRuleBase(at.Image); base {
	case "charset":
		// The byte-level charset sniffing already happened in the reader.
		p.next()
		p.skipIgnorable()
		if p.cur.Kind == token.String {
			p.next()
		}
		p.expect(token.Semicolon, "@charset")
		if sheet.RuleCount() > 0 || len(sheet.ImportRules) > 0 {
			p.warn("@charset after other rules has no effect")
		}
	case "import":
		misplaced := sheet.RuleCount() > 0 || len(sheet.NamespaceRules) > 0
		r := p.parseImportRule()
		if r == nil {
			return
		}
		if misplaced {
			switch p.handler.OnUnexpectedRule(at, "@import", "@import must precede all other rules") {
			case errorhandler.Abort:
				p.abort(p.syntaxError("@import must precede all other rules"))
				return
			case errorhandler.SkipAndResume:
				return
			}
		}
		sheet.AddImportRule(r)
	case "namespace":
		if !p.version.AtLeast(csskit.CSS30) {
			p.parseUnknownRuleInto(sheet)
			return
		}
		misplaced := sheet.RuleCount() > 0
		r := p.parseNamespaceRule()
		if r == nil {
			return
		}
		if misplaced {
			switch p.handler.OnUnexpectedRule(at, "@namespace", "@namespace must precede all style rules") {
			case errorhandler.Abort:
				p.abort(p.syntaxError("@namespace must precede all style rules"))
				return
			case errorhandler.SkipAndResume:
				return
			}
		}
		sheet.AddNamespaceRule(r)
	default:
		if r := p.parseConditionalOrAtRule(base); r != nil {
			sheet.AddRule(r)
		}
	}
}

// parseConditionalOrAtRule dispatches at-rules that may appear at the
// top level or nested in group rules. Constructs the grammar version
// does not know fall through to the unknown-rule form.
func (p *Parser) parseConditionalOrAtRule(base string) ast.TopLevelRule {
	switch base {
	case "media":
		return p.parseMediaRule()
	case "page":
		return p.parsePageRule()
	case "font-face":
		return p.parseFontFaceRule()
	case "keyframes":
		if p.version.AtLeast(csskit.CSS30) {
			return p.parseKeyframesRule()
		}
	case "viewport":
		if p.version.AtLeast(csskit.CSS30) {
			return p.parseViewportRule()
		}
	case "supports":
		if p.version.AtLeast(csskit.CSS30) {
			return p.parseSupportsRule()
		}
	case "layer":
		if p.version.AtLeast(csskit.CSS30) {
			return p.parseLayerRule()
		}
	}
	return p.parseUnknownRule()
}

func (p *Parser) parseImportRule() *ast.ImportRule {
	first := p.cur
	p.next() // @import
	p.skipIgnorable()
	var r *ast.ImportRule
	switch p.cur.Kind {
	case token.URL:
		r = ast.NewImportRule(ast.NewURIFromCSS(p.cur.Image).URL())
		p.next()
	case token.String:
		r = ast.NewImportRule(parsehelper.ExtractStringValue(p.cur.Image))
		p.next()
	default:
		p.fail(p.syntaxError("in @import", token.URL.String(), token.String.String()), false)
		return nil
	}
	p.skipIgnorable()
	for p.cur.Kind != token.Semicolon && p.cur.Kind != token.EOF {
		q := p.parseMediaQuery()
		if q == nil {
			return nil
		}
		r.AddMediaQuery(q)
		p.skipIgnorable()
		if p.cur.Kind == token.Comma {
			p.next()
			continue
		}
		break
	}
	if !p.expect(token.Semicolon, "@import") {
		return nil
	}
	p.locate(r, first)
	return r
}

func (p *Parser) parseNamespaceRule() *ast.NamespaceRule {
	first := p.cur
	p.next() // @namespace
	p.skipIgnorable()
	prefix := ""
	if p.cur.Kind == token.Ident {
		prefix = p.cur.Image
		p.next()
		p.skipIgnorable()
	}
	if p.cur.Kind != token.URL && p.cur.Kind != token.String {
		p.fail(p.syntaxError("in @namespace", token.URL.String(), token.String.String()), false)
		return nil
	}
	url := p.cur.Image
	p.next()
	if !p.expect(token.Semicolon, "@namespace") {
		return nil
	}
	r := ast.NewNamespaceRule(prefix, url)
	p.locate(r, first)
	return r
}

func (p *Parser) parseMediaRule() *ast.MediaRule {
	first := p.cur
	p.next() // @media
	r := ast.NewMediaRule()
	for {
		q := p.parseMediaQuery()
		if q == nil {
			return nil
		}
		r.AddMediaQuery(q)
		p.skipIgnorable()
		if p.cur.Kind == token.Comma {
			p.next()
			continue
		}
		break
	}
	if !p.expect(token.LBrace, "@media") {
		return nil
	}
	p.parseNestedRulesInto(func(rule ast.TopLevelRule) { r.AddRule(rule) }, "@media")
	p.locate(r, first)
	return r
}

// parseNestedRulesInto parses the rule list of a group rule up to and
// including the closing brace.
func (p *Parser) parseNestedRulesInto(add func(ast.TopLevelRule), inWhat string) {
	for !p.aborted {
		p.skipIgnorable()
		switch p.cur.Kind {
		case token.RBrace:
			p.next()
			return
		case token.EOF:
			p.fail(p.syntaxError("unclosed "+inWhat, token.RBrace.String()), false)
			return
		case token.AtKeyword:
			base := atRuleBase(p.cur.Image)
			if known := p.knownNestedAtRule(base); !known && !p.browserCompliant {
				// Strict mode rejects at-rules the group does not allow.
				p.fail(p.syntaxError("unknown at-rule "+p.cur.Image+" in "+inWhat), true)
				continue
			}
			if rule := p.parseConditionalOrAtRule(base); rule != nil {
				add(rule)
			}
		case token.Semicolon:
			p.next()
		default:
			before := p.cur
			if rule := p.parseStyleRule(); rule != nil {
				add(rule)
			}
			if p.cur == before {
				p.next()
			}
		}
	}
}

func (p *Parser) knownNestedAtRule(base string) bool {
	switch base {
	case "media", "page", "font-face":
		return true
	case "keyframes", "viewport", "supports", "layer":
		return p.version.AtLeast(csskit.CSS30)
	}
	return false
}

func (p *Parser) parseMediaQuery() *ast.MediaQuery {
	p.skipIgnorable()
	q := ast.NewMediaQuery("")
	if p.cur.Kind == token.Ident {
		switch strings.ToLower(p.cur.Image) {
		case "not":
			q.Modifier = ast.ModifierNot
			p.next()
			p.skipIgnorable()
		case "only":
			q.Modifier = ast.ModifierOnly
			p.next()
			p.skipIgnorable()
		}
	}
	if p.cur.Kind == token.Ident {
		q.Medium = p.cur.Image
		p.next()
	}
	for {
		p.skipIgnorable()
		if p.cur.Kind == token.Ident && strings.EqualFold(p.cur.Image, "and") {
			p.next()
			p.skipIgnorable()
		} else if q.Medium != "" || len(q.Expressions) > 0 {
			return q
		}
		if p.cur.Kind != token.LParen {
			if q.Medium == "" && len(q.Expressions) == 0 {
				p.fail(p.syntaxError("in media query", token.Ident.String(), token.LParen.String()), false)
				return nil
			}
			p.fail(p.syntaxError("in media query after \"and\"", token.LParen.String()), false)
			return nil
		}
		e := p.parseMediaExpression()
		if e == nil {
			return nil
		}
		q.AddExpression(e)
	}
}

func (p *Parser) parseMediaExpression() *ast.MediaExpression {
	first := p.cur
	p.next() // (
	p.skipIgnorable()
	if p.cur.Kind != token.Ident {
		p.fail(p.syntaxError("in media expression", token.Ident.String()), false)
		return nil
	}
	e := ast.NewMediaExpression(p.cur.Image)
	p.next()
	p.skipIgnorable()
	if p.cur.Kind == token.Colon {
		p.next()
		expr, err := p.parseExpression(true)
		if err != nil {
			p.fail(err, false)
			return nil
		}
		e.Value = expr
	}
	if !p.expect(token.RParen, "media expression") {
		return nil
	}
	p.locate(e, first)
	return e
}

func (p *Parser) parsePageRule() *ast.PageRule {
	first := p.cur
	p.next() // @page
	r := ast.NewPageRule()
	for {
		p.skipIgnorable()
		sel := ""
		if p.cur.Kind == token.Ident {
			sel = p.cur.Image
			p.next()
		}
		if p.cur.Kind == token.Colon {
			p.next()
			if p.cur.Kind != token.Ident {
				p.fail(p.syntaxError("in @page pseudo-page", token.Ident.String()), false)
				return nil
			}
			sel += ":" + p.cur.Image
			p.next()
		}
		if sel != "" {
			r.Selectors = append(r.Selectors, sel)
		}
		p.skipIgnorable()
		if p.cur.Kind == token.Comma {
			p.next()
			continue
		}
		break
	}
	if !p.expect(token.LBrace, "@page") {
		return nil
	}
	for !p.aborted {
		p.skipIgnorable()
		switch p.cur.Kind {
		case token.RBrace:
			p.next()
			p.locate(r, first)
			return r
		case token.EOF:
			p.fail(p.syntaxError("unclosed @page", token.RBrace.String()), false)
			return nil
		case token.Semicolon:
			p.next()
		case token.AtKeyword:
			if b := p.parsePageMarginBlock(); b != nil {
				r.AddMember(b)
			}
		default:
			if d := p.parseDeclaration(); d != nil {
				r.AddMember(d)
			}
		}
	}
	return nil
}

func (p *Parser) parsePageMarginBlock() *ast.PageMarginBlock {
	first := p.cur
	if !p.version.AtLeast(csskit.CSS30) {
		p.fail(p.syntaxError("margin box "+p.cur.Image+" in @page"), true)
		return nil
	}
	b := ast.NewPageMarginBlock(p.cur.Image)
	p.next()
	if !p.expect(token.LBrace, b.MarginBox) {
		return nil
	}
	p.parseDeclarationBlockInto(b.Declarations, b.MarginBox)
	p.locate(b, first)
	return b
}

func (p *Parser) parseFontFaceRule() *ast.FontFaceRule {
	first := p.cur
	r := ast.NewFontFaceRule()
	r.Declaration = p.cur.Image
	p.next()
	if !p.expect(token.LBrace, r.Declaration) {
		return nil
	}
	p.parseDeclarationBlockInto(r.Declarations, r.Declaration)
	p.locate(r, first)
	return r
}

func (p *Parser) parseViewportRule() *ast.ViewportRule {
	first := p.cur
	r := ast.NewViewportRule(p.cur.Image)
	p.next()
	if !p.expect(token.LBrace, r.Declaration) {
		return nil
	}
	p.parseDeclarationBlockInto(r.Declarations, r.Declaration)
	p.locate(r, first)
	return r
}

func (p *Parser) parseKeyframesRule() *ast.KeyframesRule {
	first := p.cur
	decl := p.cur.Image
	p.next()
	p.skipIgnorable()
	if p.cur.Kind != token.Ident && p.cur.Kind != token.String {
		p.fail(p.syntaxError("in "+decl, token.Ident.String(), token.String.String()), false)
		return nil
	}
	r := ast.NewKeyframesRule(decl, p.cur.Image)
	p.next()
	if !p.expect(token.LBrace, decl) {
		return nil
	}
	for !p.aborted {
		p.skipIgnorable()
		switch p.cur.Kind {
		case token.RBrace:
			p.next()
			p.locate(r, first)
			return r
		case token.EOF:
			p.fail(p.syntaxError("unclosed "+decl, token.RBrace.String()), false)
			return nil
		default:
			if b := p.parseKeyframesBlock(decl); b != nil {
				r.AddBlock(b)
			}
		}
	}
	return nil
}

func (p *Parser) parseKeyframesBlock(inWhat string) *ast.KeyframesBlock {
	first := p.cur
	b := ast.NewKeyframesBlock()
	for {
		p.skipIgnorable()
		switch p.cur.Kind {
		case token.Ident, token.Percentage:
			b.Selectors = append(b.Selectors, p.cur.Image)
			p.next()
		default:
			p.fail(p.syntaxError("in "+inWhat+" block selector",
				token.Ident.String(), token.Percentage.String()), true)
			return nil
		}
		p.skipIgnorable()
		if p.cur.Kind == token.Comma {
			p.next()
			continue
		}
		break
	}
	if !p.expect(token.LBrace, inWhat+" block") {
		return nil
	}
	p.parseDeclarationBlockInto(b.Declarations, inWhat+" block")
	p.locate(b, first)
	return b
}

func (p *Parser) parseSupportsRule() *ast.SupportsRule {
	first := p.cur
	p.next() // @supports
	r := ast.NewSupportsRule()
	for {
		p.skipIgnorable()
		if p.cur.Kind == token.LBrace {
			break
		}
		m := p.parseSupportsConditionMember()
		if m == nil {
			return nil
		}
		r.AddConditionMember(m)
	}
	if len(r.ConditionMembers) == 0 {
		p.fail(p.syntaxError("empty @supports condition"), false)
		return nil
	}
	p.next() // {
	p.parseNestedRulesInto(func(rule ast.TopLevelRule) { r.AddRule(rule) }, "@supports")
	p.locate(r, first)
	return r
}

func (p *Parser) parseSupportsConditionMember() ast.SupportsConditionMember {
	p.skipIgnorable()
	switch p.cur.Kind {
	case token.Ident:
		switch strings.ToLower(p.cur.Image) {
		case "not":
			p.next()
			inner := p.parseSupportsConditionMember()
			if inner == nil {
				return nil
			}
			return ast.NewSupportsConditionNegation(inner)
		case "and":
			p.next()
			return ast.SupportsAnd
		case "or":
			p.next()
			return ast.SupportsOr
		}
		p.fail(p.syntaxError("in @supports condition", "\"not\"", "\"and\"", "\"or\"", token.LParen.String()), false)
		return nil
	case token.LParen:
		return p.parseSupportsInParens()
	default:
		p.fail(p.syntaxError("in @supports condition", token.LParen.String()), false)
		return nil
	}
}

// parseSupportsInParens handles "(...)": either a declaration test or a
// nested condition.
func (p *Parser) parseSupportsInParens() ast.SupportsConditionMember {
	first := p.cur
	p.next() // (
	p.skipIgnorable()
	if p.cur.Kind == token.Ident && !isSupportsKeyword(p.cur.Image) {
		d := p.parseDeclarationUntilParen()
		if d == nil {
			return nil
		}
		if !p.expect(token.RParen, "@supports declaration") {
			return nil
		}
		c := ast.NewSupportsConditionDeclaration(d)
		p.locate(c, first)
		return c
	}
	nested := ast.NewSupportsConditionNested()
	for {
		p.skipIgnorable()
		if p.cur.Kind == token.RParen {
			p.next()
			p.locate(nested, first)
			return nested
		}
		if p.cur.Kind == token.EOF {
			p.fail(p.syntaxError("unclosed @supports condition", token.RParen.String()), false)
			return nil
		}
		m := p.parseSupportsConditionMember()
		if m == nil {
			return nil
		}
		nested.AddMember(m)
	}
}

func isSupportsKeyword(image string) bool {
	switch strings.ToLower(image) {
	case "not", "and", "or":
		return true
	}
	return false
}

func (p *Parser) parseLayerRule() ast.TopLevelRule {
	first := p.cur
	p.next() // @layer
	var names []string
	for {
		p.skipIgnorable()
		if p.cur.Kind != token.Ident {
			break
		}
		name := p.cur.Image
		p.next()
		// Dotted sub-layer names attach without whitespace.
		for p.cur.Kind == token.Delim && p.cur.Image == "." {
			p.next()
			if p.cur.Kind != token.Ident {
				p.fail(p.syntaxError("in @layer name", token.Ident.String()), false)
				return nil
			}
			name += "." + p.cur.Image
			p.next()
		}
		names = append(names, name)
		p.skipIgnorable()
		if p.cur.Kind == token.Comma {
			p.next()
			continue
		}
		break
	}
	p.skipIgnorable()
	switch p.cur.Kind {
	case token.Semicolon:
		p.next()
		if len(names) == 0 {
			p.warn("@layer statement without layer names")
		}
		r := ast.NewLayerStatement(names...)
		p.locate(r, first)
		return r
	case token.LBrace:
		if len(names) > 1 {
			p.fail(p.syntaxError("@layer block form allows at most one name"), false)
			return nil
		}
		name := ""
		if len(names) == 1 {
			name = names[0]
		}
		r := ast.NewLayerBlock(name)
		p.next()
		p.parseNestedRulesInto(func(rule ast.TopLevelRule) { r.AddRule(rule) }, "@layer")
		p.locate(r, first)
		return r
	default:
		p.fail(p.syntaxError("in @layer", token.Semicolon.String(), token.LBrace.String()), false)
		return nil
	}
}

func (p *Parser) parseUnknownRuleInto(sheet *ast.CascadingStyleSheet) {
	if r := p.parseUnknownRule(); r != nil {
		sheet.AddRule(r)
	}
}

// parseUnknownRule keeps an unrecognized at-rule verbatim: raw parameter
// text up to the body or ";", and the raw body between balanced braces.
func (p *Parser) parseUnknownRule() *ast.UnknownRule {
	first := p.cur
	r := ast.NewUnknownRule(p.cur.Image)
	p.next()
	var params strings.Builder
	depth := 0
	for {
		switch p.cur.Kind {
		case token.EOF:
			p.fail(p.syntaxError("unterminated at-rule "+r.Declaration,
				token.Semicolon.String(), token.LBrace.String()), false)
			return nil
		case token.Semicolon:
			if depth == 0 {
				p.next()
				r.ParameterList = params.String()
				r.Statement = true
				p.locate(r, first)
				return r
			}
		case token.LBrace:
			if depth == 0 {
				p.next()
				r.ParameterList = params.String()
				r.Body = p.rawUntilCloseBrace(r.Declaration)
				p.locate(r, first)
				return r
			}
		case token.LParen, token.Function, token.LBracket:
			depth++
		case token.RParen, token.RBracket:
			if depth > 0 {
				depth--
			}
		}
		params.WriteString(p.cur.Image)
		p.next()
	}
}

// rawUntilCloseBrace collects raw text up to the brace matching an
// already consumed "{". The closing brace is consumed but not included.
func (p *Parser) rawUntilCloseBrace(inWhat string) string {
	var body strings.Builder
	depth := 0
	for {
		switch p.cur.Kind {
		case token.EOF:
			p.fail(p.syntaxError("unclosed body of "+inWhat, token.RBrace.String()), false)
			return body.String()
		case token.LBrace:
			depth++
		case token.RBrace:
			if depth == 0 {
				p.next()
				return body.String()
			}
			depth--
		}
		body.WriteString(p.cur.Image)
		p.next()
	}
}
