package ast

import "github.com/csskit/csskit"

// ViewportRule is "@viewport { declarations }". The declaration keeps
// vendor prefixed forms like "@-ms-viewport". Requires CSS 3.0.
type ViewportRule struct {
	sourceLocated
	// Declaration is the at-keyword including "@".
	Declaration  string
	Declarations *DeclarationList
}

// NewViewportRule returns an empty viewport rule. declaration is the
// at-keyword including "@", e.g. "@viewport".
func NewViewportRule(declaration string) *ViewportRule {
	return &ViewportRule{Declaration: declaration, Declarations: NewDeclarationList()}
}

// AddDeclaration appends d and returns the rule for chaining.
func (r *ViewportRule) AddDeclaration(d *Declaration) *ViewportRule {
	r.Declarations.Add(d)
	return r
}

func (r *ViewportRule) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if !ws.WriteViewportRules {
		return "", nil
	}
	if err := ws.CheckVersion(csskit.CSS30, r.Declaration); err != nil {
		return "", err
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

func (r *ViewportRule) MinimumVersion() csskit.Version { return csskit.CSS30 }

func (r *ViewportRule) Equal(o *ViewportRule) bool {
	return o != nil && r.Declaration == o.Declaration && r.Declarations.Equal(o.Declarations)
}

func (r *ViewportRule) Hash() uint64 {
	h := newHasher("viewport")
	h.str(r.Declaration)
	h.u64(r.Declarations.Hash())
	return h.sum()
}

// Clone returns a deep copy without source locations.
func (r *ViewportRule) Clone() *ViewportRule {
	c := NewViewportRule(r.Declaration)
	c.Declarations = r.Declarations.Clone()
	return c
}

func (r *ViewportRule) topLevelRule() {}
