package ast

import (
	"testing"

	"github.com/tdewolff/test"

	"github.com/csskit/csskit"
)

func TestSelectorRendering(t *testing.T) {
	s := NewSelector().
		AddMember(NewSelectorSimpleMember("div")).
		AddMember(CombinatorChild).
		AddMember(NewSelectorSimpleMember("p"))
	test.String(t, render(t, s, pretty), "div > p")
	test.String(t, render(t, s, optimized), "div>p")

	s = NewSelector().
		AddMember(NewSelectorSimpleMember("ul")).
		AddMember(CombinatorDescendant).
		AddMember(NewSelectorSimpleMember("li"))
	test.String(t, render(t, s, pretty), "ul li")
	test.String(t, render(t, s, optimized), "ul li")
}

func TestSelectorSimpleMemberKinds(t *testing.T) {
	test.T(t, NewSelectorSimpleMember(".cls").IsClass(), true)
	test.T(t, NewSelectorSimpleMember("#id").IsHash(), true)
	test.T(t, NewSelectorSimpleMember(":hover").IsPseudo(), true)
	test.T(t, NewSelectorSimpleMember("::after").IsPseudo(), true)
	test.T(t, NewSelectorSimpleMember("div").IsElementName(), true)
	test.T(t, NewSelectorSimpleMember(".cls").IsElementName(), false)
}

func TestCombinatorVersions(t *testing.T) {
	test.T(t, CombinatorChild.MinimumVersion(), csskit.CSS21)
	test.T(t, CombinatorAdjacent.MinimumVersion(), csskit.CSS21)
	test.T(t, CombinatorGeneral.MinimumVersion(), csskit.CSS30)
}

func TestSelectorAttribute(t *testing.T) {
	a := NewSelectorAttribute("", "disabled")
	test.String(t, render(t, a, pretty), "[disabled]")
	test.T(t, a.MinimumVersion(), csskit.CSS21)

	a = NewSelectorAttributeValue("", "href", AttrPrefixMatch, `"https://"`)
	test.String(t, render(t, a, optimized), `[href^="https://"]`)
	test.T(t, a.MinimumVersion(), csskit.CSS30)
	_, err := a.AsCSSString(pretty21, 0)
	test.That(t, err != nil, "substring matcher must not render as CSS 2.1")

	a = NewSelectorAttributeValue("svg|", "width", AttrEquals, "full")
	a.CaseFlag = "i"
	test.String(t, render(t, a, pretty), "[svg|width=full i]")
	test.T(t, a.MinimumVersion(), csskit.CSS30)
}

func TestSelectorFunctionLike(t *testing.T) {
	not := NewSelectorNot(
		NewSelector().AddMember(NewSelectorSimpleMember(".bar")),
		NewSelector().AddMember(NewSelectorSimpleMember("#baz")),
	)
	test.String(t, render(t, not, pretty), ":not(.bar, #baz)")
	test.String(t, render(t, not, optimized), ":not(.bar,#baz)")
	test.T(t, not.MinimumVersion(), csskit.CSS30)

	_, err := not.AsCSSString(pretty21, 0)
	test.That(t, err != nil, ":not() must not render as CSS 2.1")

	clone := not.Clone()
	test.T(t, not.Equal(clone), true)
	test.T(t, not.Hash(), clone.Hash())
}

func TestSelectorEquality(t *testing.T) {
	a := NewSelector().
		AddMember(NewSelectorSimpleMember("a")).
		AddMember(NewSelectorSimpleMember(":hover"))
	b := a.Clone()
	test.T(t, a.Equal(b), true)
	test.T(t, a.Hash(), b.Hash())

	b.AddMember(NewSelectorSimpleMember(".extra"))
	test.T(t, a.Equal(b), false)

	// A member of another concrete type is never equal.
	c := NewSelector().
		AddMember(NewSelectorSimpleMember("a")).
		AddMember(CombinatorChild)
	test.T(t, a.Equal(c), false)
}

func TestStyleRuleRendering(t *testing.T) {
	r := NewStyleRule()
	r.AddSelector(NewSelector().AddMember(NewSelectorSimpleMember("h1")))
	r.AddSelector(NewSelector().AddMember(NewSelectorSimpleMember("h2")))
	r.AddDeclaration(NewDeclaration("color", NewTermExpression("#aabbcc"), false))
	r.AddDeclaration(NewDeclaration("margin", NewTermExpression("0px"), false))

	test.String(t, render(t, r, optimized), "h1,h2{color:#abc;margin:0}")
	test.String(t, render(t, r, pretty), "h1, h2 {\n  color:#aabbcc;\n  margin:0px;\n}")
}

func TestStyleRuleRemoveUnnecessaryCode(t *testing.T) {
	ws := csskit.NewOptimizedWriterSettings(csskit.CSS30)
	ws.RemoveUnnecessaryCode = true
	empty := NewStyleRule()
	empty.AddSelector(NewSelector().AddMember(NewSelectorSimpleMember("a")))
	test.String(t, render(t, empty, ws), "")
}
