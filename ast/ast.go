// Package ast is the CSS object model: a mutable tree of rules,
// selectors, declarations and expression terms that can be built by the
// parser or programmatically, and rendered back to CSS text. Nodes are
// not safe for concurrent mutation; a fully built tree may be shared
// read-only.
package ast

import (
	"hash"
	"hash/fnv"
	"io"
	"strings"

	"github.com/csskit/csskit"
)

// TopLevelRule is any rule that may appear directly inside a stylesheet
// or inside a conditional group rule (@media, @supports, @layer).
// @import and @namespace are tracked separately on the stylesheet.
type TopLevelRule interface {
	csskit.Writable
	csskit.SourceLocationAware
	// Hash is consistent with Equal on the concrete type.
	Hash() uint64
	topLevelRule()
}

// SelectorMember is one element of a selector: a simple part, an
// attribute, a combinator or a functional pseudo-class.
type SelectorMember interface {
	csskit.Writable
	Hash() uint64
	selectorMember()
}

// ExpressionMember is one element of a declaration value: a simple term,
// a function call, a calc() term, a URI term or an operator.
type ExpressionMember interface {
	csskit.Writable
	Hash() uint64
	expressionMember()
}

// MathMember is one element inside calc().
type MathMember interface {
	csskit.Writable
	Hash() uint64
	mathMember()
}

// PageRuleMember is either a declaration or a nested margin-box block
// inside @page.
type PageRuleMember interface {
	csskit.Writable
	Hash() uint64
	pageRuleMember()
}

// SupportsConditionMember is one element of an @supports condition.
type SupportsConditionMember interface {
	csskit.Writable
	Hash() uint64
	supportsConditionMember()
}

// sourceLocated is embedded by nodes carrying source metadata.
type sourceLocated struct {
	loc *csskit.SourceLocation
}

func (s *sourceLocated) SourceLocation() *csskit.SourceLocation     { return s.loc }
func (s *sourceLocated) SetSourceLocation(l *csskit.SourceLocation) { s.loc = l }

// hasher builds FNV-1a hashes over the same fields equality compares.
type hasher struct {
	h hash.Hash64
}

func newHasher(tag string) *hasher {
	h := &hasher{h: fnv.New64a()}
	h.str(tag)
	return h
}

func (h *hasher) str(s string) {
	io.WriteString(h.h, s)
	h.h.Write([]byte{0})
}

func (h *hasher) bool(b bool) {
	if b {
		h.h.Write([]byte{1})
	} else {
		h.h.Write([]byte{0})
	}
}

func (h *hasher) u64(v uint64) {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	h.h.Write(b[:])
}

func (h *hasher) sum() uint64 { return h.h.Sum64() }

// equalRule matches on the concrete rule type and compares structurally.
func equalRule(a, b TopLevelRule) bool {
	switch t := a.(type) {
	case *StyleRule:
		o, ok := b.(*StyleRule)
		return ok && t.Equal(o)
	case *MediaRule:
		o, ok := b.(*MediaRule)
		return ok && t.Equal(o)
	case *PageRule:
		o, ok := b.(*PageRule)
		return ok && t.Equal(o)
	case *FontFaceRule:
		o, ok := b.(*FontFaceRule)
		return ok && t.Equal(o)
	case *KeyframesRule:
		o, ok := b.(*KeyframesRule)
		return ok && t.Equal(o)
	case *ViewportRule:
		o, ok := b.(*ViewportRule)
		return ok && t.Equal(o)
	case *SupportsRule:
		o, ok := b.(*SupportsRule)
		return ok && t.Equal(o)
	case *LayerRule:
		o, ok := b.(*LayerRule)
		return ok && t.Equal(o)
	case *UnknownRule:
		o, ok := b.(*UnknownRule)
		return ok && t.Equal(o)
	}
	return false
}

func equalSelectorMember(a, b SelectorMember) bool {
	switch t := a.(type) {
	case *SelectorSimpleMember:
		o, ok := b.(*SelectorSimpleMember)
		return ok && t.Equal(o)
	case *SelectorAttribute:
		o, ok := b.(*SelectorAttribute)
		return ok && t.Equal(o)
	case SelectorCombinator:
		o, ok := b.(SelectorCombinator)
		return ok && t == o
	case *SelectorMemberFunctionLike:
		o, ok := b.(*SelectorMemberFunctionLike)
		return ok && t.Equal(o)
	}
	return false
}

func equalExpressionMember(a, b ExpressionMember) bool {
	switch t := a.(type) {
	case *TermSimple:
		o, ok := b.(*TermSimple)
		return ok && t.Equal(o)
	case *TermURI:
		o, ok := b.(*TermURI)
		return ok && t.Equal(o)
	case *MemberFunction:
		o, ok := b.(*MemberFunction)
		return ok && t.Equal(o)
	case *MemberMath:
		o, ok := b.(*MemberMath)
		return ok && t.Equal(o)
	case ExpressionOperator:
		o, ok := b.(ExpressionOperator)
		return ok && t == o
	}
	return false
}

func equalMathMember(a, b MathMember) bool {
	switch t := a.(type) {
	case *MathValue:
		o, ok := b.(*MathValue)
		return ok && t.Equal(o)
	case *MathProduct:
		o, ok := b.(*MathProduct)
		return ok && t.Equal(o)
	case MathOperator:
		o, ok := b.(MathOperator)
		return ok && t == o
	}
	return false
}

func equalPageRuleMember(a, b PageRuleMember) bool {
	switch t := a.(type) {
	case *Declaration:
		o, ok := b.(*Declaration)
		return ok && t.Equal(o)
	case *PageMarginBlock:
		o, ok := b.(*PageMarginBlock)
		return ok && t.Equal(o)
	}
	return false
}

func equalSupportsConditionMember(a, b SupportsConditionMember) bool {
	switch t := a.(type) {
	case SupportsOperator:
		o, ok := b.(SupportsOperator)
		return ok && t == o
	case *SupportsConditionDeclaration:
		o, ok := b.(*SupportsConditionDeclaration)
		return ok && t.Equal(o)
	case *SupportsConditionNegation:
		o, ok := b.(*SupportsConditionNegation)
		return ok && t.Equal(o)
	case *SupportsConditionNested:
		o, ok := b.(*SupportsConditionNested)
		return ok && t.Equal(o)
	}
	return false
}

// writeRuleList renders rules indented one level deeper, used by the
// group rules.
func writeRuleList(sb *strings.Builder, rules []TopLevelRule, ws *csskit.WriterSettings, indentLevel int) error {
	for _, r := range rules {
		s, err := r.AsCSSString(ws, indentLevel+1)
		if err != nil {
			return err
		}
		if s == "" {
			continue
		}
		if !ws.OptimizedOutput {
			sb.WriteString(ws.Indent(indentLevel + 1))
		}
		sb.WriteString(s)
		sb.WriteString(ws.NewLine())
	}
	return nil
}
