package parser

import (
	"testing"

	"github.com/tdewolff/test"

	"github.com/csskit/csskit"
	"github.com/csskit/csskit/ast"
	"github.com/csskit/csskit/errorhandler"
	"github.com/csskit/csskit/scanner"
)

func parse(t *testing.T, src string, version csskit.Version) *ast.CascadingStyleSheet {
	t.Helper()
	p := New(version, errorhandler.NewThrowing())
	sheet, err := p.ParseStyleSheet(scanner.NewString(src, version).Tokenize())
	test.Error(t, err)
	return sheet
}

func parseCollecting(src string, version csskit.Version, browserCompliant bool) (*ast.CascadingStyleSheet, *errorhandler.Collecting) {
	h := errorhandler.NewCollecting()
	p := New(version, h)
	p.SetBrowserCompliant(browserCompliant)
	sheet, _ := p.ParseStyleSheet(scanner.NewString(src, version).Tokenize())
	return sheet, h
}

func minified(t *testing.T, w csskit.Writable) string {
	t.Helper()
	s, err := w.AsCSSString(csskit.NewOptimizedWriterSettings(csskit.CSS30), 0)
	test.Error(t, err)
	return s
}

func TestUnicodeRangeValue(t *testing.T) {
	src := "@font-face{font-family:x;unicode-range:u+0025-00FF,U+00??,u+A5}"
	sheet := parse(t, src, csskit.CSS30)
	test.String(t, minified(t, sheet), src)

	// A spaced-out "u" ident is a plain term, not a range.
	sheet = parse(t, "p{content:u +0025}", csskit.CSS30)
	test.String(t, minified(t, sheet), "p{content:u +0025}")
}

func TestParseStyleRule(t *testing.T) {
	sheet := parse(t, "p { color: red; }", csskit.CSS30)
	test.T(t, sheet.RuleCount(), 1)
	test.String(t, minified(t, sheet), "p{color:red}")
}

func TestParseSelectors(t *testing.T) {
	tests := []struct {
		css, expected string
	}{
		{"div > p{a:b}", "div>p{a:b}"},
		{"ul li{a:b}", "ul li{a:b}"},
		{"a + b ~ c{a:b}", "a+b~c{a:b}"},
		{"h1 , h2{a:b}", "h1,h2{a:b}"},
		{"#id.cls:hover{a:b}", "#id.cls:hover{a:b}"},
		{"svg|rect{a:b}", "svg|rect{a:b}"},
		{"*{a:b}", "*{a:b}"},
		{"li:nth-child(2n+1)::after{a:b}", "li:nth-child(2n+1)::after{a:b}"},
		{":not(.a, .b){a:b}", ":not(.a,.b){a:b}"},
		{`[href^="x"]{a:b}`, `[href^="x"]{a:b}`},
		{"[disabled]{a:b}", "[disabled]{a:b}"},
	}
	for _, tt := range tests {
		t.Run(tt.css, func(t *testing.T) {
			test.String(t, minified(t, parse(t, tt.css, csskit.CSS30)), tt.expected)
		})
	}
}

func TestDescendantCombinatorMembers(t *testing.T) {
	sheet := parse(t, "div p{a:b}", csskit.CSS30)
	sel := sheet.StyleRules()[0].Selectors[0]
	test.T(t, len(sel.Members), 3)
	_, isComb := sel.Members[1].(ast.SelectorCombinator)
	test.T(t, isComb, true)
}

func TestParseDeclarations(t *testing.T) {
	sheet := parse(t, "p{margin:0 auto;color:red !important;*zoom:1}", csskit.CSS30)
	r := sheet.StyleRules()[0]
	test.T(t, r.Declarations.Count(), 3)
	test.T(t, r.Declarations.OfProperty("color").Important, true)
	test.T(t, r.Declarations.OfProperty("margin").Important, false)
	test.That(t, r.Declarations.OfProperty("*zoom") != nil, "star hack property must survive")
	test.String(t, minified(t, sheet), "p{margin:0 auto;color:red!important;*zoom:1}")
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		css, expected string
	}{
		{"p{background:url( 'a b.png' )}", "p{background:url('a b.png')}"},
		{"p{width:calc(100% - 2em)}", "p{width:calc(100% - 2em)}"},
		{"p{width:calc((100% / 3) + 1px)}", "p{width:calc((100% / 3) + 1px)}"},
		{"p{font:12px/30px serif,monospace}", "p{font:12px/30px serif,monospace}"},
		{"p{color:rgb(1, 2, 3)}", "p{color:rgb(1,2,3)}"},
		{"p{margin:0px}", "p{margin:0}"},
	}
	for _, tt := range tests {
		t.Run(tt.css, func(t *testing.T) {
			test.String(t, minified(t, parse(t, tt.css, csskit.CSS30)), tt.expected)
		})
	}
}

func TestParseMediaRule(t *testing.T) {
	sheet := parse(t, "@media only screen and (min-width: 100px), print { p{a:b} }", csskit.CSS30)
	test.T(t, len(sheet.MediaRules()), 1)
	r := sheet.MediaRules()[0]
	test.T(t, len(r.MediaQueries), 2)
	test.T(t, r.MediaQueries[0].Modifier, ast.ModifierOnly)
	test.String(t, r.MediaQueries[0].Medium, "screen")
	test.T(t, len(r.MediaQueries[0].Expressions), 1)
	test.String(t, r.MediaQueries[0].Expressions[0].Feature, "min-width")
	test.String(t, minified(t, sheet), "@media only screen and (min-width:100px),print{p{a:b}}")
}

func TestParseKeyframes(t *testing.T) {
	sheet := parse(t, "@keyframes spin{from{a:b}50%,to{c:d}}", csskit.CSS30)
	test.T(t, len(sheet.KeyframesRules()), 1)
	r := sheet.KeyframesRules()[0]
	test.String(t, r.AnimationName, "spin")
	test.T(t, len(r.Blocks), 2)
	test.T(t, len(r.Blocks[1].Selectors), 2)

	prefixed := parse(t, "@-webkit-keyframes x{from{a:b}}", csskit.CSS30)
	test.String(t, prefixed.KeyframesRules()[0].Declaration, "@-webkit-keyframes")
}

func TestKeyframesDowngradesToUnknown(t *testing.T) {
	sheet := parse(t, "@keyframes spin{from{a:b}}", csskit.CSS21)
	test.T(t, len(sheet.KeyframesRules()), 0)
	test.T(t, len(sheet.UnknownRules()), 1)
	test.String(t, sheet.UnknownRules()[0].Declaration, "@keyframes")
}

func TestParsePageRule(t *testing.T) {
	sheet := parse(t, "@page :first{margin:1in;@top-center{content:'x'}}", csskit.CSS30)
	r := sheet.PageRules()[0]
	test.T(t, len(r.Selectors), 1)
	test.String(t, r.Selectors[0], ":first")
	test.T(t, len(r.Declarations()), 1)
	test.T(t, len(r.MarginBlocks()), 1)
	test.String(t, r.MarginBlocks()[0].MarginBox, "@top-center")
}

func TestPageMarginBlockRejectedForCSS21(t *testing.T) {
	sheet, h := parseCollecting("@page{margin:1in;@top-center{content:'x'}}", csskit.CSS21, false)
	r := sheet.PageRules()[0]
	test.T(t, len(r.Declarations()), 1)
	test.T(t, len(r.MarginBlocks()), 0)
	test.T(t, h.ParseErrorCount(), 1)
}

func TestParseSupportsRule(t *testing.T) {
	sheet := parse(t, "@supports (display: flex) and (not (display: grid)){div{display:flex}}", csskit.CSS30)
	r := sheet.SupportsRules()[0]
	test.T(t, len(r.ConditionMembers), 3)
	test.T(t, r.RuleCount(), 1)
	test.String(t, minified(t, sheet), "@supports (display:flex) and (not (display:grid)){div{display:flex}}")
}

func TestParseLayerRule(t *testing.T) {
	sheet := parse(t, "@layer base, theme.dark;@layer base{p{a:b}}", csskit.CSS30)
	test.T(t, len(sheet.LayerRules()), 2)
	stmt := sheet.LayerRules()[0]
	test.T(t, stmt.HasBody, false)
	test.T(t, len(stmt.Names), 2)
	test.String(t, stmt.Names[1], "theme.dark")
	block := sheet.LayerRules()[1]
	test.T(t, block.HasBody, true)
	test.T(t, len(block.Rules), 1)
}

func TestParseViewportRule(t *testing.T) {
	sheet := parse(t, "@viewport{width:device-width}", csskit.CSS30)
	test.T(t, len(sheet.ViewportRules()), 1)
	test.String(t, minified(t, sheet), "@viewport{width:device-width}")
}

func TestParseFontFaceRule(t *testing.T) {
	sheet := parse(t, "@font-face{font-family:'Mine';src:url(mine.woff2)}", csskit.CSS30)
	test.T(t, len(sheet.FontFaceRules()), 1)
	test.T(t, sheet.FontFaceRules()[0].Declarations.Count(), 2)
}

func TestParseImportAndNamespace(t *testing.T) {
	sheet := parse(t, "@import url(a.css) screen;@namespace svg url(http://www.w3.org/2000/svg);p{a:b}", csskit.CSS30)
	test.T(t, len(sheet.ImportRules), 1)
	test.String(t, sheet.ImportRules[0].Location.URL(), "a.css")
	test.T(t, len(sheet.ImportRules[0].MediaQueries), 1)
	test.T(t, len(sheet.NamespaceRules), 1)
	test.String(t, sheet.NamespaceRules[0].Prefix, "svg")
	test.T(t, sheet.RuleCount(), 1)
}

func TestMisplacedImport(t *testing.T) {
	sheet, h := parseCollecting("p{a:b}@import 'late.css';", csskit.CSS30, false)
	test.T(t, len(sheet.ImportRules), 1)
	test.T(t, h.ParseErrorCount(), 1)

	p := New(csskit.CSS30, errorhandler.NewThrowing())
	_, err := p.ParseStyleSheet(scanner.NewString("p{a:b}@import 'late.css';", csskit.CSS30).Tokenize())
	test.That(t, err != nil, "strict handler must abort on misplaced @import")
}

func TestCharsetIsConsumed(t *testing.T) {
	sheet := parse(t, "@charset \"utf-8\";p{a:b}", csskit.CSS30)
	test.T(t, sheet.RuleCount(), 1)
	test.T(t, len(sheet.UnknownRules()), 0)
}

func TestDeclarationRecovery(t *testing.T) {
	sheet, h := parseCollecting("p { color red; margin:0 }", csskit.CSS30, false)
	test.T(t, sheet.RuleCount(), 1)
	test.T(t, h.ParseErrorCount(), 1)
	test.String(t, minified(t, sheet), "p{margin:0}")
}

func TestStrayCloseBrace(t *testing.T) {
	sheet, h := parseCollecting("}p{a:b}", csskit.CSS30, false)
	test.T(t, sheet.RuleCount(), 1)
	test.T(t, h.ParseErrorCount(), 1)
	test.String(t, minified(t, sheet), "p{a:b}")
}

func TestUnknownNestedAtRule(t *testing.T) {
	src := "@media screen{.a{x:y}@unknown{z:1}}.b{c:d}"

	sheet, h := parseCollecting(src, csskit.CSS30, true)
	test.T(t, sheet.RuleCount(), 2)
	media := sheet.MediaRules()[0]
	test.T(t, media.RuleCount(), 2)
	test.T(t, len(media.UnknownRules()), 1)
	test.T(t, h.ParseErrorCount(), 0)

	sheet, h = parseCollecting(src, csskit.CSS30, false)
	test.T(t, sheet.RuleCount(), 2)
	test.T(t, sheet.MediaRules()[0].RuleCount(), 1)
	test.T(t, h.ParseErrorCount(), 1)
}

func TestBrowserCompliantStyleRuleSkip(t *testing.T) {
	sheet, h := parseCollecting(".a ##bad {x:y} .b{c:d}", csskit.CSS30, true)
	test.T(t, sheet.RuleCount(), 1)
	test.String(t, minified(t, sheet), ".b{c:d}")
	test.T(t, h.ParseErrorCount(), 1)
}

func TestUnknownTopLevelAtRule(t *testing.T) {
	sheet := parse(t, "@font-feature-values Font{@styleset{s:1}}@custom thing;", csskit.CSS30)
	unknowns := sheet.UnknownRules()
	test.T(t, len(unknowns), 2)
	test.T(t, unknowns[0].Statement, false)
	test.String(t, minified(t, unknowns[0]), "@font-feature-values Font{@styleset{s:1}}")
	test.T(t, unknowns[1].Statement, true)
	test.String(t, minified(t, unknowns[1]), "@custom thing;")
}

func TestGeneralSiblingRequiresCSS30(t *testing.T) {
	_, h := parseCollecting("a ~ b{c:d}", csskit.CSS21, false)
	test.T(t, h.ParseErrorCount(), 1)

	sheet := parse(t, "a ~ b{c:d}", csskit.CSS30)
	test.T(t, sheet.RuleCount(), 1)
}

func TestParseDeclarationList(t *testing.T) {
	p := New(csskit.CSS30, errorhandler.NewThrowing())
	list, err := p.ParseDeclarationList(scanner.NewString("color:red;margin:0 auto;", csskit.CSS30).Tokenize())
	test.Error(t, err)
	test.T(t, list.Count(), 2)
	test.That(t, list.OfProperty("color") != nil, "color must be present")
}

func TestSourceLocations(t *testing.T) {
	sheet := parse(t, "p {\n  color: red;\n}", csskit.CSS30)
	r := sheet.StyleRules()[0]
	loc := r.SourceLocation()
	test.That(t, loc != nil, "style rule must carry a source location")
	test.T(t, loc.FirstTokenBeginLine(), 1)
	test.T(t, loc.FirstTokenBeginColumn(), 1)
	test.T(t, loc.LastTokenEndLine(), 3)

	d := r.Declarations.OfProperty("color")
	dloc := d.SourceLocation()
	test.That(t, dloc != nil, "declaration must carry a source location")
	test.T(t, dloc.FirstTokenBeginLine(), 2)
	test.T(t, dloc.FirstTokenBeginColumn(), 3)
}

func TestEmptyValueDropped(t *testing.T) {
	sheet := parse(t, "p{color:;margin:0}", csskit.CSS30)
	test.T(t, sheet.StyleRules()[0].Declarations.Count(), 1)
}

func TestUnclosedBlock(t *testing.T) {
	sheet, h := parseCollecting("p{color:red", csskit.CSS30, false)
	test.T(t, sheet.RuleCount(), 1)
	test.T(t, h.ParseErrorCount(), 1)
	test.String(t, minified(t, sheet), "p{color:red}")
}
