package ast

import (
	"strings"

	"github.com/csskit/csskit"
)

// KeyframesBlock is one "selector-list { declarations }" entry inside
// @keyframes. Selectors are "from", "to" or percentages.
type KeyframesBlock struct {
	sourceLocated
	Selectors    []string
	Declarations *DeclarationList
}

// NewKeyframesBlock returns an empty block for the passed selectors.
func NewKeyframesBlock(selectors ...string) *KeyframesBlock {
	return &KeyframesBlock{Selectors: selectors, Declarations: NewDeclarationList()}
}

// AddDeclaration appends d and returns the block for chaining.
func (b *KeyframesBlock) AddDeclaration(d *Declaration) *KeyframesBlock {
	b.Declarations.Add(d)
	return b
}

func (b *KeyframesBlock) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	var sb strings.Builder
	for i, sel := range b.Selectors {
		if i > 0 {
			sb.WriteByte(',')
			if !ws.OptimizedOutput {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(sel)
	}
	block, err := renderDeclarationBlock(b.Declarations.Declarations, ws, indentLevel)
	if err != nil {
		return "", err
	}
	if !ws.OptimizedOutput {
		sb.WriteByte(' ')
	}
	sb.WriteString(block)
	return sb.String(), nil
}

func (b *KeyframesBlock) MinimumVersion() csskit.Version { return csskit.CSS30 }

func (b *KeyframesBlock) Equal(o *KeyframesBlock) bool {
	if o == nil || len(b.Selectors) != len(o.Selectors) {
		return false
	}
	for i, sel := range b.Selectors {
		if sel != o.Selectors[i] {
			return false
		}
	}
	return b.Declarations.Equal(o.Declarations)
}

func (b *KeyframesBlock) Hash() uint64 {
	h := newHasher("keyframes-block")
	for _, sel := range b.Selectors {
		h.str(sel)
	}
	h.u64(b.Declarations.Hash())
	return h.sum()
}

// Clone returns a deep copy without source locations.
func (b *KeyframesBlock) Clone() *KeyframesBlock {
	c := NewKeyframesBlock(append([]string(nil), b.Selectors...)...)
	c.Declarations = b.Declarations.Clone()
	return c
}

// KeyframesRule is "@keyframes name { blocks }". The declaration keeps
// vendor prefixed forms like "@-webkit-keyframes". Requires CSS 3.0.
type KeyframesRule struct {
	sourceLocated
	// Declaration is the at-keyword including "@".
	Declaration   string
	AnimationName string
	Blocks        []*KeyframesBlock
}

// NewKeyframesRule returns an empty keyframes rule. declaration is the
// at-keyword including "@", e.g. "@keyframes".
func NewKeyframesRule(declaration, animationName string) *KeyframesRule {
	return &KeyframesRule{Declaration: declaration, AnimationName: animationName}
}

// AddBlock appends b and returns the rule for chaining.
func (r *KeyframesRule) AddBlock(b *KeyframesBlock) *KeyframesRule {
	r.Blocks = append(r.Blocks, b)
	return r
}

func (r *KeyframesRule) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if !ws.WriteKeyframesRules {
		return "", nil
	}
	if err := ws.CheckVersion(csskit.CSS30, r.Declaration); err != nil {
		return "", err
	}
	if ws.RemoveUnnecessaryCode && len(r.Blocks) == 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.WriteString(r.Declaration)
	sb.WriteByte(' ')
	sb.WriteString(r.AnimationName)
	if ws.OptimizedOutput {
		sb.WriteByte('{')
	} else {
		sb.WriteString(" {")
		sb.WriteString(ws.NewLine())
	}
	for _, b := range r.Blocks {
		s, err := b.AsCSSString(ws, indentLevel+1)
		if err != nil {
			return "", err
		}
		if !ws.OptimizedOutput {
			sb.WriteString(ws.Indent(indentLevel + 1))
		}
		sb.WriteString(s)
		sb.WriteString(ws.NewLine())
	}
	sb.WriteString(ws.Indent(indentLevel))
	sb.WriteByte('}')
	return sb.String(), nil
}

func (r *KeyframesRule) MinimumVersion() csskit.Version { return csskit.CSS30 }

func (r *KeyframesRule) Equal(o *KeyframesRule) bool {
	if o == nil || r.Declaration != o.Declaration || r.AnimationName != o.AnimationName ||
		len(r.Blocks) != len(o.Blocks) {
		return false
	}
	for i, b := range r.Blocks {
		if !b.Equal(o.Blocks[i]) {
			return false
		}
	}
	return true
}

func (r *KeyframesRule) Hash() uint64 {
	h := newHasher("keyframes")
	h.str(r.Declaration)
	h.str(r.AnimationName)
	for _, b := range r.Blocks {
		h.u64(b.Hash())
	}
	return h.sum()
}

// Clone returns a deep copy without source locations.
func (r *KeyframesRule) Clone() *KeyframesRule {
	c := NewKeyframesRule(r.Declaration, r.AnimationName)
	for _, b := range r.Blocks {
		c.AddBlock(b.Clone())
	}
	return c
}

func (r *KeyframesRule) topLevelRule() {}
