package ast

import (
	"strings"

	"github.com/csskit/csskit"
)

// ImportRule is "@import url(...) media-query-list;". Only the location
// is recorded, nothing is fetched.
type ImportRule struct {
	sourceLocated
	Location     *URI
	MediaQueries []*MediaQuery
}

// NewImportRule returns an import rule for the passed bare URL.
func NewImportRule(url string) *ImportRule {
	return &ImportRule{Location: NewURI(url)}
}

// AddMediaQuery appends q and returns the rule for chaining.
func (r *ImportRule) AddMediaQuery(q *MediaQuery) *ImportRule {
	r.MediaQueries = append(r.MediaQueries, q)
	return r
}

func (r *ImportRule) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	var sb strings.Builder
	sb.WriteString("@import ")
	loc, err := r.Location.AsCSSString(ws, indentLevel)
	if err != nil {
		return "", err
	}
	sb.WriteString(loc)
	for i, q := range r.MediaQueries {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
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
	sb.WriteByte(';')
	return sb.String(), nil
}

func (r *ImportRule) MinimumVersion() csskit.Version {
	v := csskit.CSS21
	for _, q := range r.MediaQueries {
		if qv := q.MinimumVersion(); qv.After(v) {
			v = qv
		}
	}
	return v
}

func (r *ImportRule) Equal(o *ImportRule) bool {
	if o == nil || !r.Location.Equal(o.Location) || len(r.MediaQueries) != len(o.MediaQueries) {
		return false
	}
	for i, q := range r.MediaQueries {
		if !q.Equal(o.MediaQueries[i]) {
			return false
		}
	}
	return true
}

func (r *ImportRule) Hash() uint64 {
	h := newHasher("import")
	h.u64(r.Location.Hash())
	for _, q := range r.MediaQueries {
		h.u64(q.Hash())
	}
	return h.sum()
}

// Clone returns a deep copy without source locations.
func (r *ImportRule) Clone() *ImportRule {
	c := NewImportRule(r.Location.URL())
	for _, q := range r.MediaQueries {
		c.AddMediaQuery(q.Clone())
	}
	return c
}

// NamespaceRule is "@namespace prefix url;". The URL keeps the raw form
// it was written in (quoted string or url()).
type NamespaceRule struct {
	sourceLocated
	Prefix string
	URL    string
}

// NewNamespaceRule returns a namespace rule; prefix may be empty for the
// default namespace.
func NewNamespaceRule(prefix, url string) *NamespaceRule {
	return &NamespaceRule{Prefix: prefix, URL: url}
}

func (r *NamespaceRule) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if !ws.WriteNamespaceRules {
		return "", nil
	}
	var sb strings.Builder
	sb.WriteString("@namespace ")
	if r.Prefix != "" {
		sb.WriteString(r.Prefix)
		sb.WriteByte(' ')
	}
	sb.WriteString(r.URL)
	sb.WriteByte(';')
	return sb.String(), nil
}

func (r *NamespaceRule) MinimumVersion() csskit.Version { return csskit.CSS30 }

func (r *NamespaceRule) Equal(o *NamespaceRule) bool {
	return o != nil && r.Prefix == o.Prefix && r.URL == o.URL
}

func (r *NamespaceRule) Hash() uint64 {
	h := newHasher("namespace")
	h.str(r.Prefix)
	h.str(r.URL)
	return h.sum()
}

// Clone returns a copy without source location.
func (r *NamespaceRule) Clone() *NamespaceRule {
	return NewNamespaceRule(r.Prefix, r.URL)
}
