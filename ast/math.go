package ast

import (
	"strings"

	"github.com/csskit/csskit"
)

// MemberMath is a calc() expression term. calc() is a CSS 3.0 construct.
type MemberMath struct {
	sourceLocated
	Members []MathMember
}

// NewMemberMath returns an empty calc() term.
func NewMemberMath() *MemberMath { return &MemberMath{} }

// AddMember appends m and returns the term for chaining.
func (m *MemberMath) AddMember(member MathMember) *MemberMath {
	m.Members = append(m.Members, member)
	return m
}

func (m *MemberMath) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if err := ws.CheckVersion(csskit.CSS30, "calc()"); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString("calc(")
	for i, member := range m.Members {
		if i > 0 {
			sb.WriteByte(' ')
		}
		s, err := member.AsCSSString(ws, indentLevel)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	sb.WriteByte(')')
	return sb.String(), nil
}

func (m *MemberMath) MinimumVersion() csskit.Version { return csskit.CSS30 }

func (m *MemberMath) Equal(o *MemberMath) bool {
	if o == nil || len(m.Members) != len(o.Members) {
		return false
	}
	for i, member := range m.Members {
		if !equalMathMember(member, o.Members[i]) {
			return false
		}
	}
	return true
}

func (m *MemberMath) Hash() uint64 {
	h := newHasher("math")
	for _, member := range m.Members {
		h.u64(member.Hash())
	}
	return h.sum()
}

// Clone returns a deep copy without source locations.
func (m *MemberMath) Clone() *MemberMath {
	c := NewMemberMath()
	for _, member := range m.Members {
		switch t := member.(type) {
		case *MathValue:
			c.AddMember(NewMathValue(t.Value()))
		case MathOperator:
			c.AddMember(t)
		case *MathProduct:
			c.AddMember(t.Clone())
		}
	}
	return c
}

func (m *MemberMath) expressionMember() {}

// MathValue is a single operand inside calc(), kept as written, with the
// zero-unit optimization applied for minified output and equality.
type MathValue struct {
	sourceLocated
	value     string
	optimized string
}

// NewMathValue returns an operand for the passed literal value.
func NewMathValue(value string) *MathValue {
	v := &MathValue{}
	v.SetValue(value)
	return v
}

// SetValue replaces the literal value.
func (v *MathValue) SetValue(value string) {
	v.value = value
	v.optimized = OptimizedValue(value)
}

// Value returns the literal value as written.
func (v *MathValue) Value() string { return v.value }

func (v *MathValue) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if ws.OptimizedOutput {
		return v.optimized, nil
	}
	return v.value, nil
}

func (v *MathValue) MinimumVersion() csskit.Version { return csskit.CSS30 }

func (v *MathValue) Equal(o *MathValue) bool {
	return o != nil && v.optimized == o.optimized
}

func (v *MathValue) Hash() uint64 {
	h := newHasher("math-value")
	h.str(v.optimized)
	return h.sum()
}

func (v *MathValue) mathMember() {}

// MathProduct groups operands in a parenthesized subexpression.
type MathProduct struct {
	sourceLocated
	Members []MathMember
}

// NewMathProduct returns an empty parenthesized group.
func NewMathProduct() *MathProduct { return &MathProduct{} }

// AddMember appends m and returns the product for chaining.
func (p *MathProduct) AddMember(member MathMember) *MathProduct {
	p.Members = append(p.Members, member)
	return p
}

func (p *MathProduct) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, member := range p.Members {
		if i > 0 {
			sb.WriteByte(' ')
		}
		s, err := member.AsCSSString(ws, indentLevel)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	sb.WriteByte(')')
	return sb.String(), nil
}

func (p *MathProduct) MinimumVersion() csskit.Version { return csskit.CSS30 }

func (p *MathProduct) Equal(o *MathProduct) bool {
	if o == nil || len(p.Members) != len(o.Members) {
		return false
	}
	for i, member := range p.Members {
		if !equalMathMember(member, o.Members[i]) {
			return false
		}
	}
	return true
}

func (p *MathProduct) Hash() uint64 {
	h := newHasher("math-product")
	for _, member := range p.Members {
		h.u64(member.Hash())
	}
	return h.sum()
}

// Clone returns a deep copy without source locations.
func (p *MathProduct) Clone() *MathProduct {
	c := NewMathProduct()
	for _, member := range p.Members {
		switch t := member.(type) {
		case *MathValue:
			c.AddMember(NewMathValue(t.Value()))
		case MathOperator:
			c.AddMember(t)
		case *MathProduct:
			c.AddMember(t.Clone())
		}
	}
	return c
}

func (p *MathProduct) mathMember() {}

// MathOperator is one of + - * / inside calc().
type MathOperator string

const (
	MathPlus     MathOperator = "+"
	MathMinus    MathOperator = "-"
	MathMultiply MathOperator = "*"
	MathDivide   MathOperator = "/"
)

func (op MathOperator) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	return string(op), nil
}

func (op MathOperator) MinimumVersion() csskit.Version { return csskit.CSS30 }

func (op MathOperator) Hash() uint64 {
	h := newHasher("math-op")
	h.str(string(op))
	return h.sum()
}

func (op MathOperator) mathMember() {}
