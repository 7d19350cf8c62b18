package ast

import (
	"strings"

	"github.com/csskit/csskit"
)

// SupportsOperator joins supports condition members.
type SupportsOperator string

const (
	SupportsAnd SupportsOperator = "and"
	SupportsOr  SupportsOperator = "or"
)

func (op SupportsOperator) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	return string(op), nil
}

func (op SupportsOperator) MinimumVersion() csskit.Version { return csskit.CSS30 }

func (op SupportsOperator) Hash() uint64 {
	h := newHasher("supports-op")
	h.str(string(op))
	return h.sum()
}

func (op SupportsOperator) supportsConditionMember() {}

// SupportsConditionDeclaration is a parenthesized declaration test like
// "(display: flex)".
type SupportsConditionDeclaration struct {
	sourceLocated
	Declaration *Declaration
}

// NewSupportsConditionDeclaration returns a declaration test.
func NewSupportsConditionDeclaration(d *Declaration) *SupportsConditionDeclaration {
	return &SupportsConditionDeclaration{Declaration: d}
}

func (c *SupportsConditionDeclaration) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	s, err := c.Declaration.AsCSSString(ws, indentLevel)
	if err != nil {
		return "", err
	}
	return "(" + s + ")", nil
}

func (c *SupportsConditionDeclaration) MinimumVersion() csskit.Version { return csskit.CSS30 }

func (c *SupportsConditionDeclaration) Equal(o *SupportsConditionDeclaration) bool {
	return o != nil && c.Declaration.Equal(o.Declaration)
}

func (c *SupportsConditionDeclaration) Hash() uint64 {
	h := newHasher("supports-decl")
	h.u64(c.Declaration.Hash())
	return h.sum()
}

// Clone returns a deep copy without source locations.
func (c *SupportsConditionDeclaration) Clone() *SupportsConditionDeclaration {
	return NewSupportsConditionDeclaration(c.Declaration.Clone())
}

func (c *SupportsConditionDeclaration) supportsConditionMember() {}

// SupportsConditionNegation is "not member".
type SupportsConditionNegation struct {
	sourceLocated
	Member SupportsConditionMember
}

// NewSupportsConditionNegation returns the negation of m.
func NewSupportsConditionNegation(m SupportsConditionMember) *SupportsConditionNegation {
	return &SupportsConditionNegation{Member: m}
}

func (c *SupportsConditionNegation) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	s, err := c.Member.AsCSSString(ws, indentLevel)
	if err != nil {
		return "", err
	}
	return "not " + s, nil
}

func (c *SupportsConditionNegation) MinimumVersion() csskit.Version { return csskit.CSS30 }

func (c *SupportsConditionNegation) Equal(o *SupportsConditionNegation) bool {
	return o != nil && equalSupportsConditionMember(c.Member, o.Member)
}

func (c *SupportsConditionNegation) Hash() uint64 {
	h := newHasher("supports-not")
	h.u64(c.Member.Hash())
	return h.sum()
}

func (c *SupportsConditionNegation) supportsConditionMember() {}

// SupportsConditionNested is a parenthesized group of condition members.
type SupportsConditionNested struct {
	sourceLocated
	Members []SupportsConditionMember
}

// NewSupportsConditionNested returns an empty group.
func NewSupportsConditionNested() *SupportsConditionNested {
	return &SupportsConditionNested{}
}

// AddMember appends m and returns the group for chaining.
func (c *SupportsConditionNested) AddMember(m SupportsConditionMember) *SupportsConditionNested {
	c.Members = append(c.Members, m)
	return c
}

func (c *SupportsConditionNested) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, m := range c.Members {
		if i > 0 {
			sb.WriteByte(' ')
		}
		s, err := m.AsCSSString(ws, indentLevel)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	sb.WriteByte(')')
	return sb.String(), nil
}

func (c *SupportsConditionNested) MinimumVersion() csskit.Version { return csskit.CSS30 }

func (c *SupportsConditionNested) Equal(o *SupportsConditionNested) bool {
	if o == nil || len(c.Members) != len(o.Members) {
		return false
	}
	for i, m := range c.Members {
		if !equalSupportsConditionMember(m, o.Members[i]) {
			return false
		}
	}
	return true
}

func (c *SupportsConditionNested) Hash() uint64 {
	h := newHasher("supports-nested")
	for _, m := range c.Members {
		h.u64(m.Hash())
	}
	return h.sum()
}

func (c *SupportsConditionNested) supportsConditionMember() {}

// SupportsRule is "@supports condition { rules }". Requires CSS 3.0.
type SupportsRule struct {
	sourceLocated
	ConditionMembers []SupportsConditionMember
	Rules            []TopLevelRule
}

// NewSupportsRule returns an empty supports rule.
func NewSupportsRule() *SupportsRule { return &SupportsRule{} }

// AddConditionMember appends m and returns the rule for chaining.
func (r *SupportsRule) AddConditionMember(m SupportsConditionMember) *SupportsRule {
	r.ConditionMembers = append(r.ConditionMembers, m)
	return r
}

// AddRule appends a nested rule and returns the rule for chaining.
func (r *SupportsRule) AddRule(rule TopLevelRule) *SupportsRule {
	r.Rules = append(r.Rules, rule)
	return r
}

// RuleCount returns the number of nested rules.
func (r *SupportsRule) RuleCount() int { return len(r.Rules) }

func (r *SupportsRule) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if !ws.WriteSupportsRules {
		return "", nil
	}
	if err := ws.CheckVersion(csskit.CSS30, "@supports"); err != nil {
		return "", err
	}
	if ws.RemoveUnnecessaryCode && len(r.Rules) == 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.WriteString("@supports ")
	for i, m := range r.ConditionMembers {
		if i > 0 {
			sb.WriteByte(' ')
		}
		s, err := m.AsCSSString(ws, indentLevel)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	if ws.OptimizedOutput {
		sb.WriteByte('{')
	} else {
		sb.WriteString(" {")
		sb.WriteString(ws.NewLine())
	}
	if err := writeRuleList(&sb, r.Rules, ws, indentLevel); err != nil {
		return "", err
	}
	sb.WriteString(ws.Indent(indentLevel))
	sb.WriteByte('}')
	return sb.String(), nil
}

func (r *SupportsRule) MinimumVersion() csskit.Version { return csskit.CSS30 }

func (r *SupportsRule) Equal(o *SupportsRule) bool {
	if o == nil || len(r.ConditionMembers) != len(o.ConditionMembers) || len(r.Rules) != len(o.Rules) {
		return false
	}
	for i, m := range r.ConditionMembers {
		if !equalSupportsConditionMember(m, o.ConditionMembers[i]) {
			return false
		}
	}
	for i, rule := range r.Rules {
		if !equalRule(rule, o.Rules[i]) {
			return false
		}
	}
	return true
}

func (r *SupportsRule) Hash() uint64 {
	h := newHasher("supports-rule")
	for _, m := range r.ConditionMembers {
		h.u64(m.Hash())
	}
	for _, rule := range r.Rules {
		h.u64(rule.Hash())
	}
	return h.sum()
}

func (r *SupportsRule) topLevelRule() {}
