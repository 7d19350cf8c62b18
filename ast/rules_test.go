package ast

import (
	"testing"

	"github.com/tdewolff/test"

	"github.com/csskit/csskit"
)

func styleRule(sel, prop, value string) *StyleRule {
	r := NewStyleRule()
	r.AddSelector(NewSelector().AddMember(NewSelectorSimpleMember(sel)))
	r.AddDeclaration(NewDeclaration(prop, NewTermExpression(value), false))
	return r
}

func TestMediaQueryRendering(t *testing.T) {
	q := NewMediaQuery("screen")
	q.Modifier = ModifierOnly
	q.AddExpression(NewMediaExpressionValue("min-width", NewTermExpression("100px")))
	test.String(t, render(t, q, pretty), "only screen and (min-width: 100px)")
	test.String(t, render(t, q, optimized), "only screen and (min-width:100px)")
	test.T(t, q.MinimumVersion(), csskit.CSS30)

	plain := NewMediaQuery("print")
	test.String(t, render(t, plain, pretty), "print")
	test.T(t, plain.MinimumVersion(), csskit.CSS21)

	clone := q.Clone()
	test.T(t, q.Equal(clone), true)
	test.T(t, q.Hash(), clone.Hash())
}

func TestMediaRuleRendering(t *testing.T) {
	r := NewMediaRule().
		AddMediaQuery(NewMediaQuery("print")).
		AddRule(styleRule("body", "font-size", "10pt"))
	test.String(t, render(t, r, optimized), "@media print{body{font-size:10pt}}")
	test.String(t, render(t, r, pretty), "@media print {\n  body {\n    font-size:10pt;\n  }\n}")
}

func TestImportRuleRendering(t *testing.T) {
	r := NewImportRule("base.css").AddMediaQuery(NewMediaQuery("screen"))
	test.String(t, render(t, r, optimized), "@import url(base.css) screen;")
	test.T(t, r.MinimumVersion(), csskit.CSS21)

	clone := r.Clone()
	test.T(t, r.Equal(clone), true)
}

func TestNamespaceRuleRendering(t *testing.T) {
	r := NewNamespaceRule("svg", "url(http://www.w3.org/2000/svg)")
	test.String(t, render(t, r, pretty), "@namespace svg url(http://www.w3.org/2000/svg);")
	test.T(t, r.MinimumVersion(), csskit.CSS30)

	anon := NewNamespaceRule("", `"http://example.org"`)
	test.String(t, render(t, anon, pretty), `@namespace "http://example.org";`)
}

func TestUnknownRuleRendering(t *testing.T) {
	r := NewUnknownRule("@foo")
	r.ParameterList = " bar "
	r.Statement = true
	test.String(t, render(t, r, optimized), "@foo bar;")

	r = NewUnknownRule("@-moz-document")
	r.ParameterList = " url-prefix()"
	r.Body = " .a { color: red } "
	test.String(t, render(t, r, optimized), "@-moz-document url-prefix(){.a { color: red }}")

	empty := NewUnknownRule("@empty")
	test.String(t, render(t, empty, pretty), "@empty{}")

	clone := r.Clone()
	test.T(t, r.Equal(clone), true)
	test.T(t, r.Hash(), clone.Hash())
}

func TestPageRuleRendering(t *testing.T) {
	r := NewPageRule(":first")
	r.AddMember(NewDeclaration("margin", NewTermExpression("1in"), false))
	b := NewPageMarginBlock("@top-center")
	b.AddDeclaration(NewDeclaration("content", NewTermExpression(`"Draft"`), false))
	r.AddMember(b)

	test.T(t, len(r.Declarations()), 1)
	test.T(t, len(r.MarginBlocks()), 1)
	test.String(t, render(t, r, optimized), `@page :first{margin:1in;@top-center{content:"Draft"}}`)
	test.T(t, r.MinimumVersion(), csskit.CSS30)

	plain := NewPageRule()
	plain.AddMember(NewDeclaration("margin", NewTermExpression("1in"), false))
	test.T(t, plain.MinimumVersion(), csskit.CSS21)
	test.String(t, render(t, plain, optimized), "@page{margin:1in}")
}

func TestFontFaceRuleRendering(t *testing.T) {
	r := NewFontFaceRule()
	r.AddDeclaration(NewDeclaration("font-family", NewTermExpression(`"Mine"`), false))
	test.String(t, render(t, r, optimized), `@font-face{font-family:"Mine"}`)
	test.T(t, r.MinimumVersion(), csskit.CSS21)
}

func TestKeyframesRuleRendering(t *testing.T) {
	r := NewKeyframesRule("@keyframes", "bounce")
	from := NewKeyframesBlock("from")
	from.AddDeclaration(NewDeclaration("opacity", NewTermExpression("0"), false))
	to := NewKeyframesBlock("50%", "to")
	to.AddDeclaration(NewDeclaration("opacity", NewTermExpression("1"), false))
	r.AddBlock(from).AddBlock(to)

	test.String(t, render(t, r, optimized), "@keyframes bounce{from{opacity:0}50%,to{opacity:1}}")
	test.T(t, r.MinimumVersion(), csskit.CSS30)

	clone := r.Clone()
	test.T(t, r.Equal(clone), true)
	test.T(t, r.Hash(), clone.Hash())
}

func TestViewportRuleRendering(t *testing.T) {
	r := NewViewportRule("@viewport")
	r.AddDeclaration(NewDeclaration("width", NewTermExpression("device-width"), false))
	test.String(t, render(t, r, optimized), "@viewport{width:device-width}")
	test.T(t, r.MinimumVersion(), csskit.CSS30)
}

func TestSupportsRuleRendering(t *testing.T) {
	r := NewSupportsRule()
	r.AddConditionMember(NewSupportsConditionDeclaration(
		NewDeclaration("display", NewTermExpression("flex"), false)))
	r.AddConditionMember(SupportsAnd)
	r.AddConditionMember(NewSupportsConditionNested().AddMember(
		NewSupportsConditionNegation(NewSupportsConditionDeclaration(
			NewDeclaration("display", NewTermExpression("grid"), false)))))
	r.AddRule(styleRule("div", "display", "flex"))

	test.String(t, render(t, r, optimized),
		"@supports (display:flex) and (not (display:grid)){div{display:flex}}")
	test.T(t, r.MinimumVersion(), csskit.CSS30)
}

func TestLayerRuleRendering(t *testing.T) {
	stmt := NewLayerStatement("base", "theme.dark")
	test.String(t, render(t, stmt, optimized), "@layer base,theme.dark;")
	test.String(t, render(t, stmt, pretty), "@layer base, theme.dark;")

	block := NewLayerBlock("base")
	block.AddRule(styleRule("p", "margin", "0"))
	test.String(t, render(t, block, optimized), "@layer base{p{margin:0}}")

	anon := NewLayerBlock("")
	test.String(t, render(t, anon, optimized), "@layer{}")
}

func TestColorRendering(t *testing.T) {
	test.String(t, render(t, NewRGB("255", "0", "0"), pretty), "rgb(255, 0, 0)")
	test.String(t, render(t, NewRGB("255", "0", "0"), optimized), "rgb(255,0,0)")
	test.String(t, render(t, NewRGBA("0", "0", "0", "0.5"), optimized), "rgba(0,0,0,0.5)")
	test.String(t, render(t, NewHSL("120", "50%", "50%"), optimized), "hsl(120,50%,50%)")
	test.String(t, render(t, NewHSLA("120", "50%", "50%", "1"), optimized), "hsla(120,50%,50%,1)")

	test.T(t, NewRGB("1", "2", "3").MinimumVersion(), csskit.CSS21)
	test.T(t, NewRGBA("1", "2", "3", "4").MinimumVersion(), csskit.CSS30)
	_, err := NewHSL("0", "0%", "0%").AsCSSString(pretty21, 0)
	test.That(t, err != nil, "hsl() must not render as CSS 2.1")
}

func TestColorEmptyComponents(t *testing.T) {
	test.String(t, render(t, NewRGB("", "10", " "), optimized), "rgb(0,10,0)")
	test.String(t, render(t, NewRGBA("1", "2", "3", ""), optimized), "rgba(1,2,3,1)")
	test.String(t, render(t, NewHSL("", "", ""), optimized), "hsl(0,0,0)")
	test.String(t, render(t, NewHSLA("120", "", "50%", ""), optimized), "hsla(120,0,50%,1)")
}

func TestStyleSheet(t *testing.T) {
	sheet := NewCascadingStyleSheet().
		AddImportRule(NewImportRule("base.css")).
		AddNamespaceRule(NewNamespaceRule("svg", "url(http://www.w3.org/2000/svg)")).
		AddRule(styleRule("a", "color", "red")).
		AddRule(NewMediaRule().
			AddMediaQuery(NewMediaQuery("print")).
			AddRule(styleRule("body", "font-size", "10pt"))).
		AddRule(NewFontFaceRule())

	test.T(t, sheet.RuleCount(), 3)
	test.T(t, len(sheet.StyleRules()), 1)
	test.T(t, len(sheet.MediaRules()), 1)
	test.T(t, len(sheet.FontFaceRules()), 1)
	test.T(t, len(sheet.KeyframesRules()), 0)
	test.T(t, sheet.MinimumVersion(), csskit.CSS30)

	test.String(t, render(t, sheet, optimized),
		"@import url(base.css);"+
			"@namespace svg url(http://www.w3.org/2000/svg);"+
			"a{color:red}"+
			"@media print{body{font-size:10pt}}"+
			"@font-face{}")

	test.T(t, sheet.RemoveRule(2), true)
	test.T(t, sheet.RuleCount(), 2)
	test.T(t, sheet.RemoveRule(9), false)
}
