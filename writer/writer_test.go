package writer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tdewolff/test"

	"github.com/csskit/csskit"
	"github.com/csskit/csskit/ast"
	"github.com/csskit/csskit/errorhandler"
	"github.com/csskit/csskit/reader"
)

func sheetOf(t *testing.T, src string) *ast.CascadingStyleSheet {
	t.Helper()
	s := reader.NewSettings(csskit.CSS30)
	s.ErrorHandler = errorhandler.NewThrowing()
	sheet, err := reader.FromString(src, s)
	test.Error(t, err)
	return sheet
}

func TestWriterPrologues(t *testing.T) {
	w := New(csskit.NewOptimizedWriterSettings(csskit.CSS30))
	w.Charset = "utf-8"
	w.Header = "banner"

	out, err := w.CSSAsString(sheetOf(t, "p { color: red; }"))
	test.Error(t, err)
	test.String(t, out, "@charset \"utf-8\";\n/* banner */\np{color:red}")
}

func TestWriteCSS(t *testing.T) {
	var buf bytes.Buffer
	w := New(csskit.NewOptimizedWriterSettings(csskit.CSS30))
	test.Error(t, w.WriteCSS(&buf, sheetOf(t, "p{color:red}")))
	test.String(t, buf.String(), "p{color:red}")
}

func TestSuppressedRuleKinds(t *testing.T) {
	sheet := sheetOf(t, "@media print{a{b:c}}p{color:red}")

	ws := csskit.NewOptimizedWriterSettings(csskit.CSS30)
	ws.WriteMediaRules = false
	w := New(ws)
	out, err := w.CSSAsString(sheet)
	test.Error(t, err)
	test.String(t, out, "p{color:red}")
}

func TestRemoveUnnecessaryCode(t *testing.T) {
	sheet := sheetOf(t, "a{}@media print{}p{color:red}")

	ws := csskit.NewOptimizedWriterSettings(csskit.CSS30)
	ws.RemoveUnnecessaryCode = true
	out, err := New(ws).CSSAsString(sheet)
	test.Error(t, err)
	test.String(t, out, "p{color:red}")
}

func TestVersionedOutput(t *testing.T) {
	sheet := sheetOf(t, "p{width:calc(100% - 2em)}")
	_, err := New(csskit.NewWriterSettings(csskit.CSS21)).CSSAsString(sheet)
	test.That(t, err != nil, "calc() must not render as CSS 2.1")
	_, ok := err.(*csskit.VersionError)
	test.T(t, ok, true)
}

func TestCompressString(t *testing.T) {
	c := NewCompressor()
	out, err := c.CompressString("p { margin: 0px ; }")
	test.Error(t, err)
	test.String(t, out, "p{margin:0}")
	test.T(t, c.Errors.ParseErrorCount(), 0)
}

func TestCompressRecovers(t *testing.T) {
	c := NewCompressor()
	out, err := c.CompressString("p{color:red")
	test.Error(t, err)
	test.String(t, out, "p{color:red}")
	test.T(t, c.Errors.ParseErrorCount(), 1)
}

func TestCompress(t *testing.T) {
	var buf bytes.Buffer
	c := NewCompressor()
	test.Error(t, c.Compress(&buf, strings.NewReader("h1 , h2 { color : #aabbcc }")))
	test.String(t, buf.String(), "h1,h2{color:#abc}")
}
