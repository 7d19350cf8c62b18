package ast

import (
	"strings"

	"github.com/csskit/csskit"
)

// CascadingStyleSheet is the root of the object model: the @import and
// @namespace rules followed by all other top-level rules, in source
// order.
type CascadingStyleSheet struct {
	sourceLocated
	ImportRules    []*ImportRule
	NamespaceRules []*NamespaceRule
	Rules          []TopLevelRule
}

// NewCascadingStyleSheet returns an empty stylesheet.
func NewCascadingStyleSheet() *CascadingStyleSheet {
	return &CascadingStyleSheet{}
}

// AddImportRule appends r and returns the sheet for chaining.
func (css *CascadingStyleSheet) AddImportRule(r *ImportRule) *CascadingStyleSheet {
	css.ImportRules = append(css.ImportRules, r)
	return css
}

// AddNamespaceRule appends r and returns the sheet for chaining.
func (css *CascadingStyleSheet) AddNamespaceRule(r *NamespaceRule) *CascadingStyleSheet {
	css.NamespaceRules = append(css.NamespaceRules, r)
	return css
}

// AddRule appends a top-level rule and returns the sheet for chaining.
func (css *CascadingStyleSheet) AddRule(r TopLevelRule) *CascadingStyleSheet {
	css.Rules = append(css.Rules, r)
	return css
}

// RemoveRule removes the rule at index i. It reports whether an element
// was removed.
func (css *CascadingStyleSheet) RemoveRule(i int) bool {
	if i < 0 || i >= len(css.Rules) {
		return false
	}
	css.Rules = append(css.Rules[:i], css.Rules[i+1:]...)
	return true
}

// RuleCount returns the number of top-level rules, excluding @import and
// @namespace.
func (css *CascadingStyleSheet) RuleCount() int { return len(css.Rules) }

// StyleRules returns the top-level style rules.
func (css *CascadingStyleSheet) StyleRules() []*StyleRule {
	return rulesOfType[*StyleRule](css.Rules)
}

// MediaRules returns the top-level @media rules.
func (css *CascadingStyleSheet) MediaRules() []*MediaRule {
	return rulesOfType[*MediaRule](css.Rules)
}

// FontFaceRules returns the top-level @font-face rules.
func (css *CascadingStyleSheet) FontFaceRules() []*FontFaceRule {
	return rulesOfType[*FontFaceRule](css.Rules)
}

// KeyframesRules returns the top-level @keyframes rules.
func (css *CascadingStyleSheet) KeyframesRules() []*KeyframesRule {
	return rulesOfType[*KeyframesRule](css.Rules)
}

// PageRules returns the top-level @page rules.
func (css *CascadingStyleSheet) PageRules() []*PageRule {
	return rulesOfType[*PageRule](css.Rules)
}

// ViewportRules returns the top-level @viewport rules.
func (css *CascadingStyleSheet) ViewportRules() []*ViewportRule {
	return rulesOfType[*ViewportRule](css.Rules)
}

// SupportsRules returns the top-level @supports rules.
func (css *CascadingStyleSheet) SupportsRules() []*SupportsRule {
	return rulesOfType[*SupportsRule](css.Rules)
}

// LayerRules returns the top-level @layer rules.
func (css *CascadingStyleSheet) LayerRules() []*LayerRule {
	return rulesOfType[*LayerRule](css.Rules)
}

// UnknownRules returns the top-level unknown at-rules.
func (css *CascadingStyleSheet) UnknownRules() []*UnknownRule {
	return rulesOfType[*UnknownRule](css.Rules)
}

func rulesOfType[T TopLevelRule](rules []TopLevelRule) []T {
	var out []T
	for _, r := range rules {
		if t, ok := r.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

func (css *CascadingStyleSheet) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	var sb strings.Builder
	writeRule := func(s string) {
		if s == "" {
			return
		}
		sb.WriteString(s)
		sb.WriteString(ws.NewLine())
	}
	for _, r := range css.ImportRules {
		s, err := r.AsCSSString(ws, indentLevel)
		if err != nil {
			return "", err
		}
		writeRule(s)
	}
	for _, r := range css.NamespaceRules {
		s, err := r.AsCSSString(ws, indentLevel)
		if err != nil {
			return "", err
		}
		writeRule(s)
	}
	for _, r := range css.Rules {
		s, err := r.AsCSSString(ws, indentLevel)
		if err != nil {
			return "", err
		}
		writeRule(s)
	}
	return sb.String(), nil
}

func (css *CascadingStyleSheet) MinimumVersion() csskit.Version {
	v := csskit.CSS21
	for _, r := range css.ImportRules {
		if rv := r.MinimumVersion(); rv.After(v) {
			v = rv
		}
	}
	if len(css.NamespaceRules) > 0 {
		v = csskit.CSS30
	}
	for _, r := range css.Rules {
		if rv := r.MinimumVersion(); rv.After(v) {
			v = rv
		}
	}
	return v
}

func (css *CascadingStyleSheet) Equal(o *CascadingStyleSheet) bool {
	if o == nil || len(css.ImportRules) != len(o.ImportRules) ||
		len(css.NamespaceRules) != len(o.NamespaceRules) || len(css.Rules) != len(o.Rules) {
		return false
	}
	for i, r := range css.ImportRules {
		if !r.Equal(o.ImportRules[i]) {
			return false
		}
	}
	for i, r := range css.NamespaceRules {
		if !r.Equal(o.NamespaceRules[i]) {
			return false
		}
	}
	for i, r := range css.Rules {
		if !equalRule(r, o.Rules[i]) {
			return false
		}
	}
	return true
}

func (css *CascadingStyleSheet) Hash() uint64 {
	h := newHasher("stylesheet")
	for _, r := range css.ImportRules {
		h.u64(r.Hash())
	}
	for _, r := range css.NamespaceRules {
		h.u64(r.Hash())
	}
	for _, r := range css.Rules {
		h.u64(r.Hash())
	}
	return h.sum()
}
