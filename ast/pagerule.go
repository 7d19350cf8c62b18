package ast

import (
	"strings"

	"github.com/csskit/csskit"
)

// PageRule is "@page selectors { members }". Members are declarations
// and, for CSS 3.0, nested margin-box blocks like "@top-center {...}".
type PageRule struct {
	sourceLocated
	Selectors []string
	Members   []PageRuleMember
}

// NewPageRule returns a page rule with optional pseudo-page selectors,
// e.g. ":first" or "LandscapeTable".
func NewPageRule(selectors ...string) *PageRule {
	return &PageRule{Selectors: selectors}
}

// AddMember appends m and returns the rule for chaining.
func (r *PageRule) AddMember(m PageRuleMember) *PageRule {
	r.Members = append(r.Members, m)
	return r
}

// MemberCount returns the number of members.
func (r *PageRule) MemberCount() int { return len(r.Members) }

// Declarations returns only the plain declaration members.
func (r *PageRule) Declarations() []*Declaration {
	var out []*Declaration
	for _, m := range r.Members {
		if d, ok := m.(*Declaration); ok {
			out = append(out, d)
		}
	}
	return out
}

// MarginBlocks returns only the nested margin-box members.
func (r *PageRule) MarginBlocks() []*PageMarginBlock {
	var out []*PageMarginBlock
	for _, m := range r.Members {
		if b, ok := m.(*PageMarginBlock); ok {
			out = append(out, b)
		}
	}
	return out
}

func (r *PageRule) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if !ws.WritePageRules {
		return "", nil
	}
	if ws.RemoveUnnecessaryCode && len(r.Members) == 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.WriteString("@page")
	if len(r.Selectors) > 0 {
		sb.WriteByte(' ')
		for i, sel := range r.Selectors {
			if i > 0 {
				sb.WriteByte(',')
				if !ws.OptimizedOutput {
					sb.WriteByte(' ')
				}
			}
			sb.WriteString(sel)
		}
	}
	if ws.OptimizedOutput {
		sb.WriteByte('{')
	} else {
		sb.WriteString(" {")
		sb.WriteString(ws.NewLine())
	}
	for i, m := range r.Members {
		s, err := m.AsCSSString(ws, indentLevel+1)
		if err != nil {
			return "", err
		}
		if ws.OptimizedOutput {
			if i > 0 {
				sb.WriteByte(';')
			}
			sb.WriteString(s)
		} else {
			sb.WriteString(ws.Indent(indentLevel + 1))
			sb.WriteString(s)
			if _, isDecl := m.(*Declaration); isDecl {
				sb.WriteByte(';')
			}
			sb.WriteString(ws.NewLine())
		}
	}
	sb.WriteString(ws.Indent(indentLevel))
	sb.WriteByte('}')
	return sb.String(), nil
}

func (r *PageRule) MinimumVersion() csskit.Version {
	v := csskit.CSS21
	for _, m := range r.Members {
		if mv := m.MinimumVersion(); mv.After(v) {
			v = mv
		}
	}
	return v
}

func (r *PageRule) Equal(o *PageRule) bool {
	if o == nil || len(r.Selectors) != len(o.Selectors) || len(r.Members) != len(o.Members) {
		return false
	}
	for i, sel := range r.Selectors {
		if sel != o.Selectors[i] {
			return false
		}
	}
	for i, m := range r.Members {
		if !equalPageRuleMember(m, o.Members[i]) {
			return false
		}
	}
	return true
}

func (r *PageRule) Hash() uint64 {
	h := newHasher("page-rule")
	for _, sel := range r.Selectors {
		h.str(sel)
	}
	for _, m := range r.Members {
		h.u64(m.Hash())
	}
	return h.sum()
}

// Clone returns a deep copy without source locations.
func (r *PageRule) Clone() *PageRule {
	c := NewPageRule(append([]string(nil), r.Selectors...)...)
	for _, m := range r.Members {
		switch t := m.(type) {
		case *Declaration:
			c.AddMember(t.Clone())
		case *PageMarginBlock:
			c.AddMember(t.Clone())
		default:
			c.AddMember(m)
		}
	}
	return c
}

func (r *PageRule) topLevelRule() {}

// PageMarginBlock is a margin-box block nested inside @page, like
// "@top-center { content: ... }". Requires CSS 3.0.
type PageMarginBlock struct {
	sourceLocated
	// MarginBox is the at-keyword including "@", e.g. "@top-center".
	MarginBox    string
	Declarations *DeclarationList
}

// NewPageMarginBlock returns an empty margin-box block.
func NewPageMarginBlock(marginBox string) *PageMarginBlock {
	return &PageMarginBlock{MarginBox: marginBox, Declarations: NewDeclarationList()}
}

// AddDeclaration appends d and returns the block for chaining.
func (b *PageMarginBlock) AddDeclaration(d *Declaration) *PageMarginBlock {
	b.Declarations.Add(d)
	return b
}

func (b *PageMarginBlock) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if err := ws.CheckVersion(csskit.CSS30, b.MarginBox); err != nil {
		return "", err
	}
	block, err := renderDeclarationBlock(b.Declarations.Declarations, ws, indentLevel)
	if err != nil {
		return "", err
	}
	if ws.OptimizedOutput {
		return b.MarginBox + block, nil
	}
	return b.MarginBox + " " + block, nil
}

func (b *PageMarginBlock) MinimumVersion() csskit.Version { return csskit.CSS30 }

func (b *PageMarginBlock) Equal(o *PageMarginBlock) bool {
	return o != nil && b.MarginBox == o.MarginBox && b.Declarations.Equal(o.Declarations)
}

func (b *PageMarginBlock) Hash() uint64 {
	h := newHasher("page-margin")
	h.str(b.MarginBox)
	h.u64(b.Declarations.Hash())
	return h.sum()
}

// Clone returns a deep copy without source locations.
func (b *PageMarginBlock) Clone() *PageMarginBlock {
	c := NewPageMarginBlock(b.MarginBox)
	c.Declarations = b.Declarations.Clone()
	return c
}

func (b *PageMarginBlock) pageRuleMember() {}
