package ast

import (
	"strings"

	"github.com/csskit/csskit"
)

// Selector is an ordered sequence of selector members, e.g.
// "div.main > a:hover".
type Selector struct {
	sourceLocated
	Members []SelectorMember
}

// NewSelector returns an empty selector.
func NewSelector() *Selector { return &Selector{} }

// AddMember appends m and returns the selector for chaining.
func (s *Selector) AddMember(m SelectorMember) *Selector {
	s.Members = append(s.Members, m)
	return s
}

func (s *Selector) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	var sb strings.Builder
	for _, m := range s.Members {
		part, err := m.AsCSSString(ws, indentLevel)
		if err != nil {
			return "", err
		}
		sb.WriteString(part)
	}
	return sb.String(), nil
}

func (s *Selector) MinimumVersion() csskit.Version {
	v := csskit.CSS21
	for _, m := range s.Members {
		if mv := m.MinimumVersion(); mv.After(v) {
			v = mv
		}
	}
	return v
}

func (s *Selector) Equal(o *Selector) bool {
	if o == nil || len(s.Members) != len(o.Members) {
		return false
	}
	for i, m := range s.Members {
		if !equalSelectorMember(m, o.Members[i]) {
			return false
		}
	}
	return true
}

func (s *Selector) Hash() uint64 {
	h := newHasher("selector")
	for _, m := range s.Members {
		h.u64(m.Hash())
	}
	return h.sum()
}

// Clone returns a deep copy without source locations.
func (s *Selector) Clone() *Selector {
	c := NewSelector()
	for _, m := range s.Members {
		switch t := m.(type) {
		case *SelectorSimpleMember:
			c.AddMember(NewSelectorSimpleMember(t.Value))
		case *SelectorAttribute:
			attr := *t
			attr.loc = nil
			c.AddMember(&attr)
		case SelectorCombinator:
			c.AddMember(t)
		case *SelectorMemberFunctionLike:
			c.AddMember(t.Clone())
		default:
			c.AddMember(m)
		}
	}
	return c
}

// SelectorSimpleMember is a plain selector part: an element name, a
// class, a hash/ID, a pseudo-class or pseudo-element.
type SelectorSimpleMember struct {
	sourceLocated
	Value string
}

// NewSelectorSimpleMember returns a simple member with the raw text v.
func NewSelectorSimpleMember(v string) *SelectorSimpleMember {
	return &SelectorSimpleMember{Value: v}
}

// IsClass reports whether the member is a class selector.
func (m *SelectorSimpleMember) IsClass() bool { return strings.HasPrefix(m.Value, ".") }

// IsHash reports whether the member is an ID selector.
func (m *SelectorSimpleMember) IsHash() bool { return strings.HasPrefix(m.Value, "#") }

// IsPseudo reports whether the member is a pseudo-class or
// pseudo-element.
func (m *SelectorSimpleMember) IsPseudo() bool { return strings.HasPrefix(m.Value, ":") }

// IsElementName reports whether the member is a plain element name.
func (m *SelectorSimpleMember) IsElementName() bool {
	return !m.IsClass() && !m.IsHash() && !m.IsPseudo()
}

func (m *SelectorSimpleMember) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	return m.Value, nil
}

func (m *SelectorSimpleMember) MinimumVersion() csskit.Version { return csskit.CSS21 }

func (m *SelectorSimpleMember) Equal(o *SelectorSimpleMember) bool {
	return o != nil && m.Value == o.Value
}

func (m *SelectorSimpleMember) Hash() uint64 {
	h := newHasher("sel-simple")
	h.str(m.Value)
	return h.sum()
}

func (m *SelectorSimpleMember) selectorMember() {}

// AttributeOperator compares an attribute against a value.
type AttributeOperator string

const (
	AttrEquals         AttributeOperator = "="
	AttrIncludes       AttributeOperator = "~="
	AttrDashMatch      AttributeOperator = "|="
	AttrPrefixMatch    AttributeOperator = "^="
	AttrSuffixMatch    AttributeOperator = "$="
	AttrSubstringMatch AttributeOperator = "*="
)

// MinimumVersion returns CSS30 for the substring matchers.
func (op AttributeOperator) MinimumVersion() csskit.Version {
	switch op {
	case AttrPrefixMatch, AttrSuffixMatch, AttrSubstringMatch:
		return csskit.CSS30
	}
	return csskit.CSS21
}

// SelectorAttribute is "[ns|attr op value flag]". Namespace, Operator,
// Value and CaseFlag are optional; a present namespace must end in "|".
type SelectorAttribute struct {
	sourceLocated
	Namespace string
	Attribute string
	Operator  AttributeOperator
	Value     string
	// CaseFlag is the optional trailing case-sensitivity flag "i" or "s".
	CaseFlag string
}

// NewSelectorAttribute returns an existence test "[attr]".
func NewSelectorAttribute(namespace, attribute string) *SelectorAttribute {
	return &SelectorAttribute{Namespace: namespace, Attribute: attribute}
}

// NewSelectorAttributeValue returns a comparing attribute selector.
func NewSelectorAttributeValue(namespace, attribute string, op AttributeOperator, value string) *SelectorAttribute {
	return &SelectorAttribute{Namespace: namespace, Attribute: attribute, Operator: op, Value: value}
}

func (a *SelectorAttribute) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if err := ws.CheckVersion(a.MinimumVersion(), "attribute selector"); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(a.Namespace)
	sb.WriteString(a.Attribute)
	if a.Operator != "" {
		sb.WriteString(string(a.Operator))
		sb.WriteString(a.Value)
	}
	if a.CaseFlag != "" {
		sb.WriteByte(' ')
		sb.WriteString(a.CaseFlag)
	}
	sb.WriteByte(']')
	return sb.String(), nil
}

func (a *SelectorAttribute) MinimumVersion() csskit.Version {
	v := csskit.CSS21
	if a.Operator != "" {
		v = a.Operator.MinimumVersion()
	}
	if a.CaseFlag != "" {
		v = csskit.CSS30
	}
	return v
}

func (a *SelectorAttribute) Equal(o *SelectorAttribute) bool {
	return o != nil && a.Namespace == o.Namespace && a.Attribute == o.Attribute &&
		a.Operator == o.Operator && a.Value == o.Value && a.CaseFlag == o.CaseFlag
}

func (a *SelectorAttribute) Hash() uint64 {
	h := newHasher("sel-attr")
	h.str(a.Namespace)
	h.str(a.Attribute)
	h.str(string(a.Operator))
	h.str(a.Value)
	h.str(a.CaseFlag)
	return h.sum()
}

func (a *SelectorAttribute) selectorMember() {}

// SelectorCombinator joins two selector parts.
type SelectorCombinator string

const (
	CombinatorChild      SelectorCombinator = ">"
	CombinatorAdjacent   SelectorCombinator = "+"
	CombinatorGeneral    SelectorCombinator = "~"
	CombinatorDescendant SelectorCombinator = " "
)

func (c SelectorCombinator) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if c == CombinatorDescendant || ws.OptimizedOutput {
		return string(c), nil
	}
	return " " + string(c) + " ", nil
}

// MinimumVersion returns CSS30 for the general sibling combinator.
func (c SelectorCombinator) MinimumVersion() csskit.Version {
	if c == CombinatorGeneral {
		return csskit.CSS30
	}
	return csskit.CSS21
}

func (c SelectorCombinator) Hash() uint64 {
	h := newHasher("sel-comb")
	h.str(string(c))
	return h.sum()
}

func (c SelectorCombinator) selectorMember() {}

// SelectorMemberFunctionLike is a functional pseudo-class whose argument
// is a selector list: :not(), :is(), :host(), :has(). These require
// CSS 3.0.
type SelectorMemberFunctionLike struct {
	sourceLocated
	// FunctionName includes the leading colon and the opening
	// parenthesis, e.g. ":not(".
	FunctionName string
	Selectors    []*Selector
}

func newFunctionLike(name string, selectors []*Selector) *SelectorMemberFunctionLike {
	return &SelectorMemberFunctionLike{FunctionName: name, Selectors: selectors}
}

// NewSelectorNot returns a ":not(...)" member.
func NewSelectorNot(selectors ...*Selector) *SelectorMemberFunctionLike {
	return newFunctionLike(":not(", selectors)
}

// NewSelectorIs returns an ":is(...)" member.
func NewSelectorIs(selectors ...*Selector) *SelectorMemberFunctionLike {
	return newFunctionLike(":is(", selectors)
}

// NewSelectorHost returns a ":host(...)" member.
func NewSelectorHost(selectors ...*Selector) *SelectorMemberFunctionLike {
	return newFunctionLike(":host(", selectors)
}

// NewSelectorHas returns a ":has(...)" member.
func NewSelectorHas(selectors ...*Selector) *SelectorMemberFunctionLike {
	return newFunctionLike(":has(", selectors)
}

func (f *SelectorMemberFunctionLike) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if err := ws.CheckVersion(csskit.CSS30, f.FunctionName+")"); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(f.FunctionName)
	for i, sel := range f.Selectors {
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
	sb.WriteByte(')')
	return sb.String(), nil
}

func (f *SelectorMemberFunctionLike) MinimumVersion() csskit.Version { return csskit.CSS30 }

func (f *SelectorMemberFunctionLike) Equal(o *SelectorMemberFunctionLike) bool {
	if o == nil || f.FunctionName != o.FunctionName || len(f.Selectors) != len(o.Selectors) {
		return false
	}
	for i, sel := range f.Selectors {
		if !sel.Equal(o.Selectors[i]) {
			return false
		}
	}
	return true
}

func (f *SelectorMemberFunctionLike) Hash() uint64 {
	h := newHasher("sel-func")
	h.str(f.FunctionName)
	for _, sel := range f.Selectors {
		h.u64(sel.Hash())
	}
	return h.sum()
}

// Clone returns a deep copy without source locations.
func (f *SelectorMemberFunctionLike) Clone() *SelectorMemberFunctionLike {
	selectors := make([]*Selector, len(f.Selectors))
	for i, sel := range f.Selectors {
		selectors[i] = sel.Clone()
	}
	return newFunctionLike(f.FunctionName, selectors)
}

func (f *SelectorMemberFunctionLike) selectorMember() {}
