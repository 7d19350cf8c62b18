// Package csskit provides a CSS 2.1/3.0 parser, an in-memory object model
// and a serializer. CSS source text is read into a mutable
// CascadingStyleSheet tree that can be inspected, modified or built from
// scratch, and rendered back to CSS text, optionally optimized.
//
// The subpackages split the work by concern: scanner tokenizes, parser
// builds the tree, errorhandler decides what happens on malformed input,
// ast holds the domain model, reader and writer are the entry points.
package csskit

import (
	"fmt"
)

// Writable is implemented by every node of the object model. AsCSSString
// renders the node as CSS text using the passed settings and indentation
// level. It fails with a *VersionError when the settings target a CSS
// version older than what the node requires.
type Writable interface {
	AsCSSString(ws *WriterSettings, indentLevel int) (string, error)
	MinimumVersion() Version
}

// SourceLocationAware is implemented by nodes that carry the source
// position they were parsed from. The location is set once by the parser
// right after the node is constructed and is nil for nodes built
// programmatically.
type SourceLocationAware interface {
	SourceLocation() *SourceLocation
	SetSourceLocation(loc *SourceLocation)
}

// VersionError is returned when a node requires a newer CSS version than
// the writer settings target.
type VersionError struct {
	Construct string
	Required  Version
	Target    Version
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%s requires %v but output version is %v", e.Construct, e.Required, e.Target)
}

// SourceArea is the textual span of a single token.
type SourceArea struct {
	BeginLine   int
	BeginColumn int
	EndLine     int
	EndColumn   int
}

func (a *SourceArea) String() string {
	return fmt.Sprintf("%d:%d/%d:%d", a.BeginLine, a.BeginColumn, a.EndLine, a.EndColumn)
}

// SourceLocation spans from the first to the last token of a construct.
type SourceLocation struct {
	First SourceArea
	Last  SourceArea
}

// NewSourceLocation returns a location spanning from first to last.
func NewSourceLocation(first, last SourceArea) *SourceLocation {
	return &SourceLocation{First: first, Last: last}
}

// FirstTokenBeginLine returns the line the construct starts on.
func (l *SourceLocation) FirstTokenBeginLine() int { return l.First.BeginLine }

// FirstTokenBeginColumn returns the column the construct starts on.
func (l *SourceLocation) FirstTokenBeginColumn() int { return l.First.BeginColumn }

// LastTokenEndLine returns the line the construct ends on.
func (l *SourceLocation) LastTokenEndLine() int { return l.Last.EndLine }

// LastTokenEndColumn returns the column the construct ends on.
func (l *SourceLocation) LastTokenEndColumn() int { return l.Last.EndColumn }

func (l *SourceLocation) String() string {
	return l.First.String() + "-" + l.Last.String()
}
