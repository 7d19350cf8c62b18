package ast

import (
	"strings"

	"github.com/csskit/csskit"
)

// OptimizedValue canonicalizes a simple term value for comparison and
// minified output: zero with any unit becomes "0" and six-digit hex
// colors with pairwise equal digits collapse to three digits.
func OptimizedValue(value string) string {
	if csskit.IsZeroUnitValue(value) {
		return "0"
	}
	if len(value) == 7 && value[0] == '#' &&
		value[1] == value[2] && value[3] == value[4] && value[5] == value[6] {
		return "#" + string(value[1]) + string(value[3]) + string(value[5])
	}
	return value
}

// Expression is an ordered sequence of expression members, the value
// side of a declaration.
type Expression struct {
	sourceLocated
	Members []ExpressionMember
}

// NewExpression returns an empty expression.
func NewExpression() *Expression { return &Expression{} }

// NewTermExpression returns an expression holding a single simple term.
func NewTermExpression(value string) *Expression {
	e := NewExpression()
	e.AddMember(NewTermSimple(value))
	return e
}

// AddMember appends m and returns the expression for chaining.
func (e *Expression) AddMember(m ExpressionMember) *Expression {
	e.Members = append(e.Members, m)
	return e
}

// AddTermSimple appends a simple term with the passed value.
func (e *Expression) AddTermSimple(value string) *Expression {
	return e.AddMember(NewTermSimple(value))
}

// AddTermURI appends a URI term for the passed URL.
func (e *Expression) AddTermURI(url string) *Expression {
	return e.AddMember(NewTermURI(NewURI(url)))
}

func (e *Expression) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	var sb strings.Builder
	prevWasOperator := false
	for i, m := range e.Members {
		_, isOperator := m.(ExpressionOperator)
		if i > 0 && !isOperator && !prevWasOperator {
			sb.WriteByte(' ')
		}
		s, err := m.AsCSSString(ws, indentLevel)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
		prevWasOperator = isOperator
	}
	return sb.String(), nil
}

func (e *Expression) MinimumVersion() csskit.Version {
	v := csskit.CSS21
	for _, m := range e.Members {
		if mv := m.MinimumVersion(); mv.After(v) {
			v = mv
		}
	}
	return v
}

// Equal compares structurally, simple terms by optimized value.
func (e *Expression) Equal(o *Expression) bool {
	if e == nil || o == nil {
		return e == o
	}
	if len(e.Members) != len(o.Members) {
		return false
	}
	for i, m := range e.Members {
		if !equalExpressionMember(m, o.Members[i]) {
			return false
		}
	}
	return true
}

func (e *Expression) Hash() uint64 {
	h := newHasher("expr")
	for _, m := range e.Members {
		h.u64(m.Hash())
	}
	return h.sum()
}

// Clone returns a deep copy without source locations.
func (e *Expression) Clone() *Expression {
	c := NewExpression()
	for _, m := range e.Members {
		c.AddMember(cloneExpressionMember(m))
	}
	return c
}

func cloneExpressionMember(m ExpressionMember) ExpressionMember {
	switch t := m.(type) {
	case *TermSimple:
		return NewTermSimple(t.Value())
	case *TermURI:
		return NewTermURI(NewURI(t.URI.URL()))
	case *MemberFunction:
		return NewMemberFunction(t.FunctionName, t.Expression.Clone())
	case *MemberMath:
		return t.Clone()
	case ExpressionOperator:
		return t
	}
	return m
}

// TermSimple is a literal value term. The raw text is preserved for
// rendering; the optimized form backs equality and minified output.
type TermSimple struct {
	sourceLocated
	value     string
	optimized string
}

// NewTermSimple returns a term for the passed literal value.
func NewTermSimple(value string) *TermSimple {
	t := &TermSimple{}
	t.SetValue(value)
	return t
}

// SetValue replaces the literal value and recomputes the optimized form.
func (t *TermSimple) SetValue(value string) {
	t.value = value
	t.optimized = OptimizedValue(value)
}

// Value returns the literal value as written.
func (t *TermSimple) Value() string { return t.value }

// OptimizedValue returns the canonicalized form used for equality.
func (t *TermSimple) OptimizedValue() string { return t.optimized }

func (t *TermSimple) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if ws.OptimizedOutput {
		return t.optimized, nil
	}
	return t.value, nil
}

func (t *TermSimple) MinimumVersion() csskit.Version { return csskit.CSS21 }

// Equal compares the optimized values, so "0em" equals "0px".
func (t *TermSimple) Equal(o *TermSimple) bool {
	return o != nil && t.optimized == o.optimized
}

func (t *TermSimple) Hash() uint64 {
	h := newHasher("term")
	h.str(t.optimized)
	return h.sum()
}

func (t *TermSimple) expressionMember() {}

// TermURI is a url(...) term.
type TermURI struct {
	sourceLocated
	URI *URI
}

// NewTermURI returns a URI term.
func NewTermURI(uri *URI) *TermURI { return &TermURI{URI: uri} }

func (t *TermURI) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	return t.URI.AsCSSString(ws, indentLevel)
}

func (t *TermURI) MinimumVersion() csskit.Version { return t.URI.MinimumVersion() }

func (t *TermURI) Equal(o *TermURI) bool {
	return o != nil && t.URI.Equal(o.URI)
}

func (t *TermURI) Hash() uint64 {
	h := newHasher("term-uri")
	h.u64(t.URI.Hash())
	return h.sum()
}

func (t *TermURI) expressionMember() {}

// MemberFunction is a function-call term like linear-gradient(...). The
// function name is stored without the opening parenthesis.
type MemberFunction struct {
	sourceLocated
	FunctionName string
	Expression   *Expression
}

// NewMemberFunction returns a function term; expr may be nil for an
// empty argument list.
func NewMemberFunction(name string, expr *Expression) *MemberFunction {
	return &MemberFunction{FunctionName: name, Expression: expr}
}

func (f *MemberFunction) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	var sb strings.Builder
	sb.WriteString(f.FunctionName)
	sb.WriteByte('(')
	if f.Expression != nil {
		s, err := f.Expression.AsCSSString(ws, indentLevel)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	sb.WriteByte(')')
	return sb.String(), nil
}

func (f *MemberFunction) MinimumVersion() csskit.Version {
	if f.Expression != nil {
		return f.Expression.MinimumVersion()
	}
	return csskit.CSS21
}

func (f *MemberFunction) Equal(o *MemberFunction) bool {
	return o != nil && f.FunctionName == o.FunctionName && f.Expression.Equal(o.Expression)
}

func (f *MemberFunction) Hash() uint64 {
	h := newHasher("func")
	h.str(f.FunctionName)
	if f.Expression != nil {
		h.u64(f.Expression.Hash())
	}
	return h.sum()
}

func (f *MemberFunction) expressionMember() {}

// ExpressionOperator separates terms without surrounding blanks.
type ExpressionOperator string

const (
	OperatorComma ExpressionOperator = ","
	OperatorSlash ExpressionOperator = "/"
)

func (op ExpressionOperator) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	return string(op), nil
}

func (op ExpressionOperator) MinimumVersion() csskit.Version { return csskit.CSS21 }

func (op ExpressionOperator) Hash() uint64 {
	h := newHasher("op")
	h.str(string(op))
	return h.sum()
}

func (op ExpressionOperator) expressionMember() {}
