package ast

import (
	"strings"

	"github.com/csskit/csskit"
)

// UnknownRule keeps an at-rule the grammar does not know, verbatim. The
// parameter list is the raw text between the at-keyword and the body;
// the body is the raw text between the braces, or "" for the statement
// form ending in ";".
type UnknownRule struct {
	sourceLocated
	// Declaration is the at-keyword including "@", e.g. "@-moz-document".
	Declaration   string
	ParameterList string
	Body          string
	// Statement marks the ";" form without a body.
	Statement bool
}

// NewUnknownRule returns an unknown rule for the passed at-keyword.
func NewUnknownRule(declaration string) *UnknownRule {
	return &UnknownRule{Declaration: declaration}
}

func (r *UnknownRule) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if !ws.WriteUnknownRules {
		return "", nil
	}
	var sb strings.Builder
	sb.WriteString(r.Declaration)
	params := strings.TrimSpace(r.ParameterList)
	if params != "" {
		sb.WriteByte(' ')
		sb.WriteString(params)
	}
	if r.Statement {
		sb.WriteByte(';')
		return sb.String(), nil
	}
	body := strings.TrimSpace(r.Body)
	if body == "" {
		sb.WriteString("{}")
	} else {
		sb.WriteByte('{')
		sb.WriteString(body)
		sb.WriteByte('}')
	}
	return sb.String(), nil
}

func (r *UnknownRule) MinimumVersion() csskit.Version { return csskit.CSS21 }

func (r *UnknownRule) Equal(o *UnknownRule) bool {
	return o != nil && r.Declaration == o.Declaration &&
		r.ParameterList == o.ParameterList && r.Body == o.Body &&
		r.Statement == o.Statement
}

func (r *UnknownRule) Hash() uint64 {
	h := newHasher("unknown")
	h.str(r.Declaration)
	h.str(r.ParameterList)
	h.str(r.Body)
	h.bool(r.Statement)
	return h.sum()
}

// Clone returns a copy without source location.
func (r *UnknownRule) Clone() *UnknownRule {
	c := NewUnknownRule(r.Declaration)
	c.ParameterList = r.ParameterList
	c.Body = r.Body
	c.Statement = r.Statement
	return c
}

func (r *UnknownRule) topLevelRule() {}
