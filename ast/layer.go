package ast

import (
	"strings"

	"github.com/csskit/csskit"
)

// LayerRule is "@layer". Two forms exist: a statement listing layer
// names ("@layer base, theme;") and a block form with an optional single
// name and nested rules. Requires CSS 3.0.
type LayerRule struct {
	sourceLocated
	Names []string
	// HasBody distinguishes "@layer a;" from "@layer a {}".
	HasBody bool
	Rules   []TopLevelRule
}

// NewLayerStatement returns the statement form listing layer names.
func NewLayerStatement(names ...string) *LayerRule {
	return &LayerRule{Names: names}
}

// NewLayerBlock returns the block form; name may be empty for an
// anonymous layer.
func NewLayerBlock(name string) *LayerRule {
	r := &LayerRule{HasBody: true}
	if name != "" {
		r.Names = []string{name}
	}
	return r
}

// AddRule appends a nested rule and returns the rule for chaining.
func (r *LayerRule) AddRule(rule TopLevelRule) *LayerRule {
	r.Rules = append(r.Rules, rule)
	return r
}

func (r *LayerRule) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if err := ws.CheckVersion(csskit.CSS30, "@layer"); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString("@layer")
	for i, name := range r.Names {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteByte(',')
			if !ws.OptimizedOutput {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(name)
	}
	if !r.HasBody {
		sb.WriteByte(';')
		return sb.String(), nil
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

func (r *LayerRule) MinimumVersion() csskit.Version { return csskit.CSS30 }

func (r *LayerRule) Equal(o *LayerRule) bool {
	if o == nil || r.HasBody != o.HasBody || len(r.Names) != len(o.Names) ||
		len(r.Rules) != len(o.Rules) {
		return false
	}
	for i, name := range r.Names {
		if name != o.Names[i] {
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

func (r *LayerRule) Hash() uint64 {
	h := newHasher("layer")
	h.bool(r.HasBody)
	for _, name := range r.Names {
		h.str(name)
	}
	for _, rule := range r.Rules {
		h.u64(rule.Hash())
	}
	return h.sum()
}

func (r *LayerRule) topLevelRule() {}
