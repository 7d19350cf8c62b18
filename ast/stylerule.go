package ast

import (
	"strings"

	"github.com/csskit/csskit"
)

// StyleRule is a plain "selector-list { declarations }" rule.
type StyleRule struct {
	sourceLocated
	Selectors    []*Selector
	Declarations *DeclarationList
}

// NewStyleRule returns an empty style rule.
func NewStyleRule() *StyleRule {
	return &StyleRule{Declarations: NewDeclarationList()}
}

// AddSelector appends s and returns the rule for chaining.
func (r *StyleRule) AddSelector(s *Selector) *StyleRule {
	r.Selectors = append(r.Selectors, s)
	return r
}

// AddDeclaration appends d and returns the rule for chaining.
func (r *StyleRule) AddDeclaration(d *Declaration) *StyleRule {
	r.Declarations.Add(d)
	return r
}

// SelectorsAsCSSString renders only the selector list.
func (r *StyleRule) SelectorsAsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	var sb strings.Builder
	for i, sel := range r.Selectors {
		if i > 0 {
			sb.WriteByte(',')
			if !ws.OptimizedOutput {
				sb.WriteByte(' ')
			}
		}
		s, err := sel.AsCSSString(ws, indentLevel)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

func (r *StyleRule) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if ws.RemoveUnnecessaryCode && r.Declarations.Count() == 0 {
		return "", nil
	}
	sels, err := r.SelectorsAsCSSString(ws, indentLevel)
	if err != nil {
		return "", err
	}
	block, err := renderDeclarationBlock(r.Declarations.Declarations, ws, indentLevel)
	if err != nil {
		return "", err
	}
	if ws.OptimizedOutput {
		return sels + block, nil
	}
	return sels + " " + block, nil
}

func (r *StyleRule) MinimumVersion() csskit.Version {
	v := r.Declarations.MinimumVersion()
	for _, sel := range r.Selectors {
		if sv := sel.MinimumVersion(); sv.After(v) {
			v = sv
		}
	}
	return v
}

func (r *StyleRule) Equal(o *StyleRule) bool {
	if o == nil || len(r.Selectors) != len(o.Selectors) {
		return false
	}
	for i, sel := range r.Selectors {
		if !sel.Equal(o.Selectors[i]) {
			return false
		}
	}
	return r.Declarations.Equal(o.Declarations)
}

func (r *StyleRule) Hash() uint64 {
	h := newHasher("style-rule")
	for _, sel := range r.Selectors {
		h.u64(sel.Hash())
	}
	h.u64(r.Declarations.Hash())
	return h.sum()
}

// Clone returns a deep copy without source locations.
func (r *StyleRule) Clone() *StyleRule {
	c := NewStyleRule()
	for _, sel := range r.Selectors {
		c.AddSelector(sel.Clone())
	}
	c.Declarations = r.Declarations.Clone()
	return c
}

func (r *StyleRule) topLevelRule() {}
