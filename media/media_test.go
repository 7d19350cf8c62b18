package media

import (
	"testing"

	"github.com/tdewolff/test"

	"github.com/csskit/csskit"
	"github.com/csskit/csskit/ast"
	"github.com/csskit/csskit/errorhandler"
	"github.com/csskit/csskit/reader"
)

func TestIsKnown(t *testing.T) {
	test.T(t, IsKnown("print"), true)
	test.T(t, IsKnown("SCREEN"), true)
	test.T(t, IsKnown("tty"), true)
	test.T(t, IsKnown("holodeck"), false)
}

func TestList(t *testing.T) {
	l := NewList(Screen, Print, Screen)
	test.T(t, l.Count(), 2)
	test.T(t, l.Contains(Screen), true)
	test.T(t, l.Contains(TV), false)
	test.String(t, l.String(), "screen, print")

	test.T(t, l.Add(TV), true)
	test.T(t, l.Add(TV), false)
	test.T(t, l.Remove(Print), true)
	test.T(t, l.Remove(Print), false)
	test.T(t, l.Count(), 2)
}

func TestContainsOrAll(t *testing.T) {
	test.T(t, (&List{}).ContainsOrAll(Print), true)
	test.T(t, NewList(All).ContainsOrAll(Print), true)
	test.T(t, NewList(Screen).ContainsOrAll(Print), false)
	test.T(t, NewList(Screen).ContainsOrAll(Screen), true)
}

func parseSheet(t *testing.T, src string) *ast.CascadingStyleSheet {
	t.Helper()
	s := reader.NewSettings(csskit.CSS30)
	s.ErrorHandler = errorhandler.NewThrowing()
	sheet, err := reader.FromString(src, s)
	test.Error(t, err)
	return sheet
}

func TestWrapInMediaQuery(t *testing.T) {
	sheet := parseSheet(t, "@import url(base.css);a{color:red}h1{margin:0}")
	wrapped := WrapInMediaQuery(sheet, ast.NewMediaQuery("print"))

	test.T(t, wrapped.RuleCount(), 1)
	test.T(t, len(wrapped.MediaRules()), 1)
	test.T(t, wrapped.MediaRules()[0].RuleCount(), 2)
	test.T(t, len(wrapped.ImportRules[0].MediaQueries), 1)

	out, err := wrapped.AsCSSString(csskit.NewOptimizedWriterSettings(csskit.CSS30), 0)
	test.Error(t, err)
	test.String(t, out, "@import url(base.css) print;@media print{a{color:red}h1{margin:0}}")
}

func TestCanBeWrappedInMediaQuery(t *testing.T) {
	test.T(t, CanBeWrappedInMediaQuery(parseSheet(t, "a{color:red}")), true)
	test.T(t, CanBeWrappedInMediaQuery(parseSheet(t, "@namespace svg url(x);a{color:red}")), false)
}
