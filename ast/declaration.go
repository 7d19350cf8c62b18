package ast

import (
	"strings"

	"github.com/csskit/csskit"
)

// VendorPrefixes lists the known vendor prefixes of property names,
// including the legacy single-character browser hacks.
var VendorPrefixes = []string{
	"-epub-",
	"-moz-",
	"-ms-",
	"-o-",
	"-webkit-",
	"*",
	"_",
	"$",
}

// VendorPrefixOf returns the vendor prefix of a property name, "" when
// it has none.
func VendorPrefixOf(property string) string {
	for _, p := range VendorPrefixes {
		if strings.HasPrefix(property, p) {
			return p
		}
	}
	return ""
}

// Declaration is "property: expression" with an optional !important
// marker.
type Declaration struct {
	sourceLocated
	Property   string
	Expression *Expression
	Important  bool
}

// NewDeclaration returns a declaration for the passed property.
func NewDeclaration(property string, expr *Expression, important bool) *Declaration {
	return &Declaration{Property: property, Expression: expr, Important: important}
}

// HasVendorPrefix reports whether the property name is vendor prefixed.
func (d *Declaration) HasVendorPrefix() bool { return VendorPrefixOf(d.Property) != "" }

// VendorPrefix returns the property's vendor prefix, "" when none.
func (d *Declaration) VendorPrefix() string { return VendorPrefixOf(d.Property) }

func (d *Declaration) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	var sb strings.Builder
	sb.WriteString(d.Property)
	sb.WriteByte(':')
	expr, err := d.Expression.AsCSSString(ws, indentLevel)
	if err != nil {
		return "", err
	}
	sb.WriteString(expr)
	if d.Important {
		if ws.OptimizedOutput {
			sb.WriteString("!important")
		} else {
			sb.WriteString(" !important")
		}
	}
	return sb.String(), nil
}

func (d *Declaration) MinimumVersion() csskit.Version {
	return d.Expression.MinimumVersion()
}

func (d *Declaration) Equal(o *Declaration) bool {
	return o != nil && d.Property == o.Property && d.Important == o.Important &&
		d.Expression.Equal(o.Expression)
}

func (d *Declaration) Hash() uint64 {
	h := newHasher("decl")
	h.str(d.Property)
	h.bool(d.Important)
	if d.Expression != nil {
		h.u64(d.Expression.Hash())
	}
	return h.sum()
}

// Clone returns a deep copy without source locations.
func (d *Declaration) Clone() *Declaration {
	return NewDeclaration(d.Property, d.Expression.Clone(), d.Important)
}

func (d *Declaration) pageRuleMember() {}

// DeclarationList is an ordered list of declarations, also the result of
// parsing a bare declaration block as found in style="" attributes.
type DeclarationList struct {
	sourceLocated
	Declarations []*Declaration
}

// NewDeclarationList returns an empty declaration list.
func NewDeclarationList() *DeclarationList { return &DeclarationList{} }

// Add appends d and returns the list for chaining.
func (l *DeclarationList) Add(d *Declaration) *DeclarationList {
	l.Declarations = append(l.Declarations, d)
	return l
}

// Count returns the number of declarations.
func (l *DeclarationList) Count() int { return len(l.Declarations) }

// OfProperty returns the first declaration of the passed property name,
// compared case-insensitively, or nil.
func (l *DeclarationList) OfProperty(property string) *Declaration {
	for _, d := range l.Declarations {
		if strings.EqualFold(d.Property, property) {
			return d
		}
	}
	return nil
}

// AllOfProperty returns all declarations of the passed property name.
func (l *DeclarationList) AllOfProperty(property string) []*Declaration {
	var out []*Declaration
	for _, d := range l.Declarations {
		if strings.EqualFold(d.Property, property) {
			out = append(out, d)
		}
	}
	return out
}

// AsCSSString renders the block between braces, without the braces.
func (l *DeclarationList) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	return renderDeclarations(l.Declarations, ws, indentLevel)
}

func (l *DeclarationList) MinimumVersion() csskit.Version {
	v := csskit.CSS21
	for _, d := range l.Declarations {
		if dv := d.MinimumVersion(); dv.After(v) {
			v = dv
		}
	}
	return v
}

func (l *DeclarationList) Equal(o *DeclarationList) bool {
	if o == nil || len(l.Declarations) != len(o.Declarations) {
		return false
	}
	for i, d := range l.Declarations {
		if !d.Equal(o.Declarations[i]) {
			return false
		}
	}
	return true
}

func (l *DeclarationList) Hash() uint64 {
	h := newHasher("decl-list")
	for _, d := range l.Declarations {
		h.u64(d.Hash())
	}
	return h.sum()
}

// Clone returns a deep copy without source locations.
func (l *DeclarationList) Clone() *DeclarationList {
	c := NewDeclarationList()
	for _, d := range l.Declarations {
		c.Add(d.Clone())
	}
	return c
}

// renderDeclarations renders a declaration block body. Optimized output
// joins with ";" and drops the trailing semicolon; pretty output puts
// every declaration on its own indented line.
func renderDeclarations(decls []*Declaration, ws *csskit.WriterSettings, indentLevel int) (string, error) {
	var sb strings.Builder
	for i, d := range decls {
		s, err := d.AsCSSString(ws, indentLevel)
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
			sb.WriteByte(';')
			sb.WriteString(ws.NewLine())
		}
	}
	return sb.String(), nil
}

// renderDeclarationBlock renders "{ ... }" including the braces.
func renderDeclarationBlock(decls []*Declaration, ws *csskit.WriterSettings, indentLevel int) (string, error) {
	body, err := renderDeclarations(decls, ws, indentLevel)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if ws.OptimizedOutput {
		sb.WriteByte('{')
		sb.WriteString(body)
		sb.WriteByte('}')
		return sb.String(), nil
	}
	sb.WriteByte('{')
	sb.WriteString(ws.NewLine())
	sb.WriteString(body)
	sb.WriteString(ws.Indent(indentLevel))
	sb.WriteByte('}')
	return sb.String(), nil
}
