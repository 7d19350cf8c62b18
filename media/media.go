// Package media models CSS media targets and helps wrapping whole
// stylesheets into @media rules.
package media

import (
	"strings"

	"github.com/csskit/csskit/ast"
)

// Medium is a CSS media type name.
type Medium string

const (
	All    Medium = "all"
	Print  Medium = "print"
	Screen Medium = "screen"
	Speech Medium = "speech"

	// Deprecated media types of CSS 2.1, still seen in the wild.
	Aural      Medium = "aural"
	Braille    Medium = "braille"
	Embossed   Medium = "embossed"
	Handheld   Medium = "handheld"
	Projection Medium = "projection"
	TTY        Medium = "tty"
	TV         Medium = "tv"
)

// KnownMedia lists all media type names this package knows.
var KnownMedia = []Medium{
	All, Print, Screen, Speech,
	Aural, Braille, Embossed, Handheld, Projection, TTY, TV,
}

// IsKnown reports whether name is a known media type, compared
// case-insensitively.
func IsKnown(name string) bool {
	for _, m := range KnownMedia {
		if strings.EqualFold(string(m), name) {
			return true
		}
	}
	return false
}

// List is an ordered set of media type names. The zero value is usable
// and means "unspecified", which clients usually treat as "all".
type List struct {
	media []Medium
}

// NewList returns a list holding the passed media in order, duplicates
// removed.
func NewList(media ...Medium) *List {
	l := &List{}
	for _, m := range media {
		l.Add(m)
	}
	return l
}

// Add appends m unless already present. It reports whether the list
// changed.
func (l *List) Add(m Medium) bool {
	if l.Contains(m) {
		return false
	}
	l.media = append(l.media, m)
	return true
}

// Remove deletes m. It reports whether the list changed.
func (l *List) Remove(m Medium) bool {
	for i, x := range l.media {
		if x == m {
			l.media = append(l.media[:i], l.media[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether m is in the list.
func (l *List) Contains(m Medium) bool {
	for _, x := range l.media {
		if x == m {
			return true
		}
	}
	return false
}

// ContainsOrAll reports whether m is in the list, or the list targets
// everything by being empty or containing "all".
func (l *List) ContainsOrAll(m Medium) bool {
	return l.Count() == 0 || l.Contains(All) || l.Contains(m)
}

// Count returns the number of media in the list.
func (l *List) Count() int { return len(l.media) }

// Media returns a copy of the list in insertion order.
func (l *List) Media() []Medium {
	out := make([]Medium, len(l.media))
	copy(out, l.media)
	return out
}

// String renders the list the way a media-query list is written.
func (l *List) String() string {
	parts := make([]string, len(l.media))
	for i, m := range l.media {
		parts[i] = string(m)
	}
	return strings.Join(parts, ", ")
}

// WrapInMediaQuery returns a new stylesheet whose rules are the passed
// sheet's rules nested in a single @media rule targeting the passed
// queries. @import rules get the queries attached instead; @namespace
// rules stay top-level because CSS does not allow them nested.
func WrapInMediaQuery(sheet *ast.CascadingStyleSheet, queries ...*ast.MediaQuery) *ast.CascadingStyleSheet {
	wrapped := ast.NewCascadingStyleSheet()
	for _, imp := range sheet.ImportRules {
		ic := imp.Clone()
		for _, q := range queries {
			ic.AddMediaQuery(q.Clone())
		}
		wrapped.AddImportRule(ic)
	}
	for _, ns := range sheet.NamespaceRules {
		wrapped.AddNamespaceRule(ns.Clone())
	}
	if len(sheet.Rules) > 0 {
		mr := ast.NewMediaRule()
		for _, q := range queries {
			mr.AddMediaQuery(q)
		}
		for _, r := range sheet.Rules {
			mr.AddRule(r)
		}
		wrapped.AddRule(mr)
	}
	return wrapped
}

// CanBeWrappedInMediaQuery reports whether wrapping is lossless: a sheet
// with @namespace rules cannot be represented inside @media.
func CanBeWrappedInMediaQuery(sheet *ast.CascadingStyleSheet) bool {
	return len(sheet.NamespaceRules) == 0
}
