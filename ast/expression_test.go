package ast

import (
	"testing"

	"github.com/tdewolff/test"

	"github.com/csskit/csskit"
)

var (
	pretty    = csskit.NewWriterSettings(csskit.CSS30)
	optimized = csskit.NewOptimizedWriterSettings(csskit.CSS30)
	pretty21  = csskit.NewWriterSettings(csskit.CSS21)
)

func render(t *testing.T, w csskit.Writable, ws *csskit.WriterSettings) string {
	t.Helper()
	s, err := w.AsCSSString(ws, 0)
	test.Error(t, err)
	return s
}

func TestOptimizedValue(t *testing.T) {
	test.String(t, OptimizedValue("0em"), "0")
	test.String(t, OptimizedValue("0px"), "0")
	test.String(t, OptimizedValue("#aabbcc"), "#abc")
	test.String(t, OptimizedValue("#aabbcd"), "#aabbcd")
	test.String(t, OptimizedValue("#abc"), "#abc")
	test.String(t, OptimizedValue("12px"), "12px")
	test.String(t, OptimizedValue("red"), "red")
}

func TestTermSimpleEquality(t *testing.T) {
	// Zero with any unit compares equal.
	a, b := NewTermSimple("0em"), NewTermSimple("0px")
	test.T(t, a.Equal(b), true)
	test.T(t, a.Hash(), b.Hash())

	c := NewTermSimple("#aabbcc")
	d := NewTermSimple("#abc")
	test.T(t, c.Equal(d), true)
	test.T(t, c.Hash(), d.Hash())

	test.T(t, NewTermSimple("1px").Equal(NewTermSimple("2px")), false)

	// The literal form survives pretty output, the optimized form backs
	// minified output.
	test.String(t, render(t, c, pretty), "#aabbcc")
	test.String(t, render(t, c, optimized), "#abc")
	test.String(t, render(t, a, optimized), "0")
}

func TestExpressionRendering(t *testing.T) {
	e := NewExpression().AddTermSimple("1px").AddTermSimple("solid").AddTermSimple("red")
	test.String(t, render(t, e, pretty), "1px solid red")
	test.String(t, render(t, e, optimized), "1px solid red")

	e = NewExpression().AddTermSimple("serif")
	e.AddMember(OperatorComma)
	e.AddTermSimple("monospace")
	test.String(t, render(t, e, pretty), "serif,monospace")

	e = NewExpression().AddTermSimple("12px")
	e.AddMember(OperatorSlash)
	e.AddTermSimple("30px")
	test.String(t, render(t, e, optimized), "12px/30px")
}

func TestExpressionEquality(t *testing.T) {
	a := NewExpression().AddTermSimple("0px").AddTermSimple("auto")
	b := NewExpression().AddTermSimple("0em").AddTermSimple("auto")
	test.T(t, a.Equal(b), true)
	test.T(t, a.Hash(), b.Hash())
	test.T(t, a.Equal(NewExpression().AddTermSimple("auto")), false)

	clone := a.Clone()
	test.T(t, a.Equal(clone), true)
}

func TestExpressionEqualityAcrossMemberTypes(t *testing.T) {
	// Members of different concrete types never compare equal, even when
	// they render identically.
	a := NewExpression().AddMember(NewMemberFunction("var", NewTermExpression("--x")))
	b := NewExpression().AddTermSimple("var(--x)")
	test.T(t, a.Equal(b), false)

	u := NewExpression().AddTermURI("a.png")
	test.T(t, u.Equal(NewExpression().AddTermSimple("url(a.png)")), false)
	test.T(t, u.Equal(NewExpression().AddTermURI("a.png")), true)

	m := NewExpression().AddMember(NewMemberMath().AddMember(NewMathValue("1px")))
	test.T(t, m.Equal(NewExpression().AddTermSimple("calc(1px)")), false)
	test.T(t, m.Equal(NewExpression().AddMember(NewMemberMath().AddMember(NewMathValue("1px")))), true)
}

func TestMemberFunction(t *testing.T) {
	args := NewExpression().AddTermSimple("1")
	args.AddMember(OperatorComma)
	args.AddTermSimple("2")
	f := NewMemberFunction("rgb", args)
	test.String(t, render(t, f, optimized), "rgb(1,2)")

	empty := NewMemberFunction("noop", nil)
	test.String(t, render(t, empty, pretty), "noop()")
}

func TestCalc(t *testing.T) {
	m := NewMemberMath().
		AddMember(NewMathValue("100%")).
		AddMember(MathMinus).
		AddMember(NewMathValue("2em"))
	test.String(t, render(t, m, pretty), "calc(100% - 2em)")
	test.T(t, m.MinimumVersion(), csskit.CSS30)

	_, err := m.AsCSSString(pretty21, 0)
	test.That(t, err != nil, "calc() must not render as CSS 2.1")
	_, ok := err.(*csskit.VersionError)
	test.T(t, ok, true)

	grouped := NewMemberMath().
		AddMember(NewMathProduct().
			AddMember(NewMathValue("100%")).
			AddMember(MathDivide).
			AddMember(NewMathValue("3"))).
		AddMember(MathPlus).
		AddMember(NewMathValue("1px"))
	test.String(t, render(t, grouped, pretty), "calc((100% / 3) + 1px)")
}

func TestDeclarationRendering(t *testing.T) {
	d := NewDeclaration("color", NewTermExpression("red"), false)
	test.String(t, render(t, d, pretty), "color:red")
	test.String(t, render(t, d, optimized), "color:red")

	d = NewDeclaration("margin", NewTermExpression("0px"), true)
	test.String(t, render(t, d, pretty), "margin:0px !important")
	test.String(t, render(t, d, optimized), "margin:0!important")
}

func TestDeclarationList(t *testing.T) {
	l := NewDeclarationList().
		Add(NewDeclaration("color", NewTermExpression("red"), false)).
		Add(NewDeclaration("Color", NewTermExpression("blue"), false)).
		Add(NewDeclaration("margin", NewTermExpression("0"), false))
	test.T(t, l.Count(), 3)
	test.String(t, render(t, l.OfProperty("COLOR").Expression, pretty), "red")
	test.T(t, len(l.AllOfProperty("color")), 2)
	test.That(t, l.OfProperty("padding") == nil, "missing property must be nil")

	clone := l.Clone()
	test.T(t, l.Equal(clone), true)
	test.T(t, l.Hash(), clone.Hash())
}

func TestVendorPrefix(t *testing.T) {
	test.String(t, VendorPrefixOf("-moz-border-radius"), "-moz-")
	test.String(t, VendorPrefixOf("*zoom"), "*")
	test.String(t, VendorPrefixOf("color"), "")
	test.T(t, NewDeclaration("-webkit-appearance", NewTermExpression("none"), false).HasVendorPrefix(), true)
}
