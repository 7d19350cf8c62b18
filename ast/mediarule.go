package ast

import (
	"strings"

	"github.com/csskit/csskit"
)

// MediaQueryModifier is the optional leading "not"/"only" of a media
// query.
type MediaQueryModifier string

const (
	ModifierNone MediaQueryModifier = ""
	ModifierNot  MediaQueryModifier = "not"
	ModifierOnly MediaQueryModifier = "only"
)

// MediaExpression is "(feature)" or "(feature: value)".
type MediaExpression struct {
	sourceLocated
	Feature string
	Value   *Expression
}

// NewMediaExpression returns a feature test without a value.
func NewMediaExpression(feature string) *MediaExpression {
	return &MediaExpression{Feature: feature}
}

// NewMediaExpressionValue returns a feature test against a value.
func NewMediaExpressionValue(feature string, value *Expression) *MediaExpression {
	return &MediaExpression{Feature: feature, Value: value}
}

func (e *MediaExpression) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if err := ws.CheckVersion(csskit.CSS30, "media expression"); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(e.Feature)
	if e.Value != nil {
		sb.WriteByte(':')
		if !ws.OptimizedOutput {
			sb.WriteByte(' ')
		}
		s, err := e.Value.AsCSSString(ws, indentLevel)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	sb.WriteByte(')')
	return sb.String(), nil
}

func (e *MediaExpression) MinimumVersion() csskit.Version { return csskit.CSS30 }

func (e *MediaExpression) Equal(o *MediaExpression) bool {
	if o == nil || e.Feature != o.Feature {
		return false
	}
	if (e.Value == nil) != (o.Value == nil) {
		return false
	}
	return e.Value == nil || e.Value.Equal(o.Value)
}

func (e *MediaExpression) Hash() uint64 {
	h := newHasher("media-expr")
	h.str(e.Feature)
	if e.Value != nil {
		h.u64(e.Value.Hash())
	}
	return h.sum()
}

// Clone returns a deep copy without source locations.
func (e *MediaExpression) Clone() *MediaExpression {
	c := NewMediaExpression(e.Feature)
	if e.Value != nil {
		c.Value = e.Value.Clone()
	}
	return c
}

// MediaQuery is one comma-separated entry of a media-query list:
// modifier, medium and feature expressions joined by "and".
type MediaQuery struct {
	sourceLocated
	Modifier    MediaQueryModifier
	Medium      string
	Expressions []*MediaExpression
}

// NewMediaQuery returns a query for the passed medium, e.g. "screen".
func NewMediaQuery(medium string) *MediaQuery {
	return &MediaQuery{Medium: medium}
}

// AddExpression appends e and returns the query for chaining.
func (q *MediaQuery) AddExpression(e *MediaExpression) *MediaQuery {
	q.Expressions = append(q.Expressions, e)
	return q
}

func (q *MediaQuery) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	var sb strings.Builder
	if q.Modifier != ModifierNone {
		sb.WriteString(string(q.Modifier))
		sb.WriteByte(' ')
	}
	first := true
	if q.Medium != "" {
		sb.WriteString(q.Medium)
		first = false
	}
	for _, e := range q.Expressions {
		if !first {
			sb.WriteString(" and ")
		}
		first = false
		s, err := e.AsCSSString(ws, indentLevel)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

func (q *MediaQuery) MinimumVersion() csskit.Version {
	if q.Modifier != ModifierNone || len(q.Expressions) > 0 {
		return csskit.CSS30
	}
	return csskit.CSS21
}

func (q *MediaQuery) Equal(o *MediaQuery) bool {
	if o == nil || q.Modifier != o.Modifier || q.Medium != o.Medium ||
		len(q.Expressions) != len(o.Expressions) {
		return false
	}
	for i, e := range q.Expressions {
		if !e.Equal(o.Expressions[i]) {
			return false
		}
	}
	return true
}

func (q *MediaQuery) Hash() uint64 {
	h := newHasher("media-query")
	h.str(string(q.Modifier))
	h.str(q.Medium)
	for _, e := range q.Expressions {
		h.u64(e.Hash())
	}
	return h.sum()
}

// Clone returns a deep copy without source locations.
func (q *MediaQuery) Clone() *MediaQuery {
	c := NewMediaQuery(q.Medium)
	c.Modifier = q.Modifier
	for _, e := range q.Expressions {
		c.AddExpression(e.Clone())
	}
	return c
}

// MediaRule is "@media query-list { rules }", a recursive container for
// top-level rules.
type MediaRule struct {
	sourceLocated
	MediaQueries []*MediaQuery
	Rules        []TopLevelRule
}

// NewMediaRule returns an empty media rule.
func NewMediaRule() *MediaRule { return &MediaRule{} }

// AddMediaQuery appends q and returns the rule for chaining.
func (r *MediaRule) AddMediaQuery(q *MediaQuery) *MediaRule {
	r.MediaQueries = append(r.MediaQueries, q)
	return r
}

// AddRule appends a nested rule and returns the rule for chaining.
func (r *MediaRule) AddRule(rule TopLevelRule) *MediaRule {
	r.Rules = append(r.Rules, rule)
	return r
}

// RuleCount returns the number of nested rules.
func (r *MediaRule) RuleCount() int { return len(r.Rules) }

// UnknownRules returns the nested unknown at-rules.
func (r *MediaRule) UnknownRules() []*UnknownRule {
	var out []*UnknownRule
	for _, rule := range r.Rules {
		if u, ok := rule.(*UnknownRule); ok {
			out = append(out, u)
		}
	}
	return out
}

func (r *MediaRule) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if !ws.WriteMediaRules {
		return "", nil
	}
	if ws.RemoveUnnecessaryCode && len(r.Rules) == 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.WriteString("@media ")
	for i, q := range r.MediaQueries {
		if i > 0 {
			sb.WriteByte(',')
			if !ws.OptimizedOutput {
				sb.WriteByte(' ')
			}
		}
		s, err := q.AsCSSString(ws, indentLevel)
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

func (r *MediaRule) MinimumVersion() csskit.Version {
	v := csskit.CSS21
	for _, q := range r.MediaQueries {
		if qv := q.MinimumVersion(); qv.After(v) {
			v = qv
		}
	}
	for _, rule := range r.Rules {
		if rv := rule.MinimumVersion(); rv.After(v) {
			v = rv
		}
	}
	return v
}

func (r *MediaRule) Equal(o *MediaRule) bool {
	if o == nil || len(r.MediaQueries) != len(o.MediaQueries) || len(r.Rules) != len(o.Rules) {
		return false
	}
	for i, q := range r.MediaQueries {
		if !q.Equal(o.MediaQueries[i]) {
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

func (r *MediaRule) Hash() uint64 {
	h := newHasher("media-rule")
	for _, q := range r.MediaQueries {
		h.u64(q.Hash())
	}
	for _, rule := range r.Rules {
		h.u64(rule.Hash())
	}
	return h.sum()
}

func (r *MediaRule) topLevelRule() {}
