package ast

import "github.com/csskit/csskit"

// FontFaceRule is "@font-face { declarations }". The declaration part
// keeps whatever the source said, including a vendor prefixed at-keyword
// like "@-ms-font-face".
type FontFaceRule struct {
	sourceLocated
	// Declaration is the at-keyword including "@".
	Declaration  string
	Declarations *DeclarationList
}

// NewFontFaceRule returns an empty "@font-face" rule.
func NewFontFaceRule() *FontFaceRule {
	return &FontFaceRule{Declaration: "@font-face", Declarations: NewDeclarationList()}
}

// AddDeclaration appends d and returns the rule for chaining.
func (r *FontFaceRule) AddDeclaration(d *Declaration) *FontFaceRule {
	r.Declarations.Add(d)
	return r
}

func (r *FontFaceRule) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if !ws.WriteFontFaceRules {
		return "", nil
	}
	if ws.RemoveUnnecessaryCode && r.Declarations.Count() == 0 {
		return "", nil
	}
	block, err := renderDeclarationBlock(r.Declarations.Declarations, ws, indentLevel)
	if err != nil {
		return "", err
	}
	if ws.OptimizedOutput {
		return r.Declaration + block, nil
	}
	return r.Declaration + " " + block, nil
}

func (r *FontFaceRule) MinimumVersion() csskit.Version { return csskit.CSS21 }

func (r *FontFaceRule) Equal(o *FontFaceRule) bool {
	return o != nil && r.Declaration == o.Declaration && r.Declarations.Equal(o.Declarations)
}

func (r *FontFaceRule) Hash() uint64 {
	h := newHasher("font-face")
	h.str(r.Declaration)
	h.u64(r.Declarations.Hash())
	return h.sum()
}

// Clone returns a deep copy without source locations.
func (r *FontFaceRule) Clone() *FontFaceRule {
	c := NewFontFaceRule()
	c.Declaration = r.Declaration
	c.Declarations = r.Declarations.Clone()
	return c
}

func (r *FontFaceRule) topLevelRule() {}
