package visit

import (
	"testing"

	"github.com/tdewolff/test"

	"github.com/csskit/csskit"
	"github.com/csskit/csskit/ast"
	"github.com/csskit/csskit/errorhandler"
	"github.com/csskit/csskit/reader"
)

func parseSheet(t *testing.T, src string) *ast.CascadingStyleSheet {
	t.Helper()
	s := reader.NewSettings(csskit.CSS30)
	s.ErrorHandler = errorhandler.NewThrowing()
	sheet, err := reader.FromString(src, s)
	test.Error(t, err)
	return sheet
}

func TestStyleSheetWalk(t *testing.T) {
	s := reader.NewSettings(csskit.CSS30)
	s.BrowserCompliant = true
	s.ErrorHandler = errorhandler.NewSilent()
	sheet, err := reader.FromString(`
@import url(base.css);
a { color: red; }
@media print {
  h1 { margin: 0; font-size: 10pt; }
  @unknown-thing { x: 1; }
}
@font-face { src: url(f.woff2); }
@keyframes spin { from { opacity: 0; } }
`, s)
	test.Error(t, err)

	var imports, styles, selectors, decls, medias, unknowns, fontFaces, keyframes int
	StyleSheet(sheet, &Visitor{
		Import:         func(*ast.ImportRule) { imports++ },
		StyleRuleBegin: func(*ast.StyleRule) { styles++ },
		Selector:       func(*ast.Selector) { selectors++ },
		Declaration:    func(*ast.Declaration) { decls++ },
		MediaRuleBegin: func(*ast.MediaRule) { medias++ },
		UnknownRule:    func(*ast.UnknownRule) { unknowns++ },
		FontFaceRule:   func(*ast.FontFaceRule) { fontFaces++ },
		KeyframesRule:  func(*ast.KeyframesRule) { keyframes++ },
	})

	test.T(t, imports, 1)
	test.T(t, styles, 2)
	test.T(t, selectors, 2)
	test.T(t, medias, 1)
	test.T(t, unknowns, 1)
	test.T(t, fontFaces, 1)
	test.T(t, keyframes, 1)
	// color, margin, font-size, src, opacity
	test.T(t, decls, 5)
}

func TestNilCallbacksAreSkipped(t *testing.T) {
	StyleSheet(parseSheet(t, "a{color:red}"), &Visitor{})
}

func TestAllURLsRewrite(t *testing.T) {
	sheet := parseSheet(t, "@import url(base.css);p{background:url(a.png) no-repeat;list-style:outer(url(b.png))}")

	var seen []string
	AllURLs(sheet, func(u *ast.URI) {
		seen = append(seen, u.URL())
		u.SetURL("https://cdn.example.com/" + u.URL())
	})
	test.T(t, len(seen), 3)
	test.String(t, seen[0], "base.css")

	out, err := sheet.AsCSSString(csskit.NewOptimizedWriterSettings(csskit.CSS30), 0)
	test.Error(t, err)
	test.String(t, out,
		"@import url(https://cdn.example.com/base.css);"+
			"p{background:url(https://cdn.example.com/a.png) no-repeat;"+
			"list-style:outer(url(https://cdn.example.com/b.png))}")
}
