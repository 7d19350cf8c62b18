package csskit

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestVersion(t *testing.T) {
	test.T(t, CSS30.After(CSS21), true)
	test.T(t, CSS21.After(CSS30), false)
	test.T(t, CSS30.AtLeast(CSS30), true)
	test.T(t, CSS21.AtLeast(CSS30), false)
	test.T(t, Latest, CSS30)
	test.String(t, CSS21.String(), "CSS 2.1")
	test.String(t, CSS30.String(), "CSS 3.0")
}

func TestUnits(t *testing.T) {
	test.String(t, UnitByName("px").Name, "px")
	test.T(t, UnitByName("px").Since, CSS21)
	test.T(t, UnitByName("rem").Since, CSS30)
	test.T(t, UnitByName("%").Since, CSS21)
	test.That(t, UnitByName("nope") == nil, "unknown unit must be nil")

	test.T(t, IsZeroUnitValue("0px"), true)
	test.T(t, IsZeroUnitValue("0em"), true)
	test.T(t, IsZeroUnitValue("0%"), true)
	test.T(t, IsZeroUnitValue("0"), false)
	test.T(t, IsZeroUnitValue("1px"), false)
}

func TestWriterSettings(t *testing.T) {
	ws := NewWriterSettings(CSS30)
	test.String(t, ws.Indent(0), "")
	test.String(t, ws.Indent(2), "    ")
	test.String(t, ws.NewLine(), "\n")
	test.T(t, ws.WriteMediaRules, true)

	ws.NewLineMode = NewLineWindows
	test.String(t, ws.NewLine(), "\r\n")

	opt := NewOptimizedWriterSettings(CSS30)
	test.T(t, opt.OptimizedOutput, true)
	test.String(t, opt.Indent(3), "")
	test.String(t, opt.NewLine(), "")
}

func TestCheckVersion(t *testing.T) {
	ws := NewWriterSettings(CSS21)
	err := ws.CheckVersion(CSS30, "calc()")
	test.That(t, err != nil, "CSS 3.0 construct must fail for CSS 2.1 output")
	verr, ok := err.(*VersionError)
	test.T(t, ok, true)
	test.T(t, verr.Required, CSS30)
	test.T(t, verr.Target, CSS21)
	test.That(t, strings.Contains(err.Error(), "calc()"), err.Error())

	test.Error(t, ws.CheckVersion(CSS21, "plain"))
	test.Error(t, NewWriterSettings(CSS30).CheckVersion(CSS30, "calc()"))
}

func TestSourceLocation(t *testing.T) {
	loc := NewSourceLocation(
		SourceArea{BeginLine: 1, BeginColumn: 2, EndLine: 1, EndColumn: 3},
		SourceArea{BeginLine: 4, BeginColumn: 1, EndLine: 4, EndColumn: 7},
	)
	test.T(t, loc.FirstTokenBeginLine(), 1)
	test.T(t, loc.FirstTokenBeginColumn(), 2)
	test.T(t, loc.LastTokenEndLine(), 4)
	test.T(t, loc.LastTokenEndColumn(), 7)
	test.String(t, loc.String(), "1:2/1:3-4:1/4:7")
}
