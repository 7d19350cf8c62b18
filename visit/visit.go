// Package visit walks the object model. Callbacks are optional; nil
// entries are skipped.
package visit

import "github.com/csskit/csskit/ast"

// Visitor holds the callbacks invoked while walking a stylesheet.
// Group rules recurse, so nested rules fire the same callbacks.
type Visitor struct {
	Import    func(*ast.ImportRule)
	Namespace func(*ast.NamespaceRule)

	StyleRuleBegin func(*ast.StyleRule)
	Selector       func(*ast.Selector)
	Declaration    func(*ast.Declaration)
	StyleRuleEnd   func(*ast.StyleRule)

	MediaRuleBegin func(*ast.MediaRule)
	MediaRuleEnd   func(*ast.MediaRule)

	SupportsRuleBegin func(*ast.SupportsRule)
	SupportsRuleEnd   func(*ast.SupportsRule)

	LayerRuleBegin func(*ast.LayerRule)
	LayerRuleEnd   func(*ast.LayerRule)

	FontFaceRule  func(*ast.FontFaceRule)
	KeyframesRule func(*ast.KeyframesRule)
	PageRule      func(*ast.PageRule)
	ViewportRule  func(*ast.ViewportRule)
	UnknownRule   func(*ast.UnknownRule)
}

// StyleSheet walks the whole sheet in source order.
func StyleSheet(sheet *ast.CascadingStyleSheet, v *Visitor) {
	for _, r := range sheet.ImportRules {
		if v.Import != nil {
			v.Import(r)
		}
	}
	for _, r := range sheet.NamespaceRules {
		if v.Namespace != nil {
			v.Namespace(r)
		}
	}
	Rules(sheet.Rules, v)
}

// Rules walks a rule list, recursing into group rules.
func Rules(rules []ast.TopLevelRule, v *Visitor) {
	for _, r := range rules {
		Rule(r, v)
	}
}

// Rule walks a single rule.
func Rule(rule ast.TopLevelRule, v *Visitor) {
	switch r := rule.(type) {
	case *ast.StyleRule:
		if v.StyleRuleBegin != nil {
			v.StyleRuleBegin(r)
		}
		if v.Selector != nil {
			for _, sel := range r.Selectors {
				v.Selector(sel)
			}
		}
		declarations(r.Declarations, v)
		if v.StyleRuleEnd != nil {
			v.StyleRuleEnd(r)
		}
	case *ast.MediaRule:
		if v.MediaRuleBegin != nil {
			v.MediaRuleBegin(r)
		}
		Rules(r.Rules, v)
		if v.MediaRuleEnd != nil {
			v.MediaRuleEnd(r)
		}
	case *ast.SupportsRule:
		if v.SupportsRuleBegin != nil {
			v.SupportsRuleBegin(r)
		}
		Rules(r.Rules, v)
		if v.SupportsRuleEnd != nil {
			v.SupportsRuleEnd(r)
		}
	case *ast.LayerRule:
		if v.LayerRuleBegin != nil {
			v.LayerRuleBegin(r)
		}
		Rules(r.Rules, v)
		if v.LayerRuleEnd != nil {
			v.LayerRuleEnd(r)
		}
	case *ast.FontFaceRule:
		if v.FontFaceRule != nil {
			v.FontFaceRule(r)
		}
		declarations(r.Declarations, v)
	case *ast.KeyframesRule:
		if v.KeyframesRule != nil {
			v.KeyframesRule(r)
		}
		for _, b := range r.Blocks {
			declarations(b.Declarations, v)
		}
	case *ast.PageRule:
		if v.PageRule != nil {
			v.PageRule(r)
		}
		for _, m := range r.Members {
			switch pm := m.(type) {
			case *ast.Declaration:
				if v.Declaration != nil {
					v.Declaration(pm)
				}
			case *ast.PageMarginBlock:
				declarations(pm.Declarations, v)
			}
		}
	case *ast.ViewportRule:
		if v.ViewportRule != nil {
			v.ViewportRule(r)
		}
		declarations(r.Declarations, v)
	case *ast.UnknownRule:
		if v.UnknownRule != nil {
			v.UnknownRule(r)
		}
	}
}

func declarations(list *ast.DeclarationList, v *Visitor) {
	if v.Declaration == nil || list == nil {
		return
	}
	for _, d := range list.Declarations {
		v.Declaration(d)
	}
}

// AllURLs invokes fn for every URI in the sheet: @import locations and
// url() terms in declaration values, nested function arguments included.
// Rewriting through URI.SetURL mutates the sheet in place.
func AllURLs(sheet *ast.CascadingStyleSheet, fn func(*ast.URI)) {
	for _, imp := range sheet.ImportRules {
		if imp.Location != nil {
			fn(imp.Location)
		}
	}
	Rules(sheet.Rules, &Visitor{
		Declaration: func(d *ast.Declaration) {
			expressionURLs(d.Expression, fn)
		},
	})
}

func expressionURLs(e *ast.Expression, fn func(*ast.URI)) {
	if e == nil {
		return
	}
	for _, m := range e.Members {
		switch t := m.(type) {
		case *ast.TermURI:
			fn(t.URI)
		case *ast.MemberFunction:
			expressionURLs(t.Expression, fn)
		}
	}
}
