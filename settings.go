package csskit

import "strings"

// NewLineMode selects the newline style emitted between rules.
type NewLineMode int

const (
	// NewLineUnix emits "\n".
	NewLineUnix NewLineMode = iota
	// NewLineWindows emits "\r\n".
	NewLineWindows
	// NewLineMac emits "\r".
	NewLineMac
)

func (m NewLineMode) String() string {
	switch m {
	case NewLineWindows:
		return "\r\n"
	case NewLineMac:
		return "\r"
	}
	return "\n"
}

// WriterSettings controls how the object model is rendered back to CSS
// text. The zero value is not usable, use NewWriterSettings.
type WriterSettings struct {
	// Version is the CSS version to emit. Nodes requiring a newer
	// version make AsCSSString fail with a *VersionError.
	Version Version
	// OptimizedOutput removes all optional whitespace and newlines.
	OptimizedOutput bool
	// RemoveUnnecessaryCode drops empty rules and other content that has
	// no effect.
	RemoveUnnecessaryCode bool
	// NewLineMode is the newline style for non-optimized output.
	NewLineMode NewLineMode
	// IndentString is the per-level indentation for non-optimized output.
	IndentString string
	// QuoteURLs forces quotes around url(...) values.
	QuoteURLs bool

	WriteNamespaceRules bool
	WriteFontFaceRules  bool
	WriteKeyframesRules bool
	WriteMediaRules     bool
	WritePageRules      bool
	WriteViewportRules  bool
	WriteSupportsRules  bool
	WriteUnknownRules   bool
}

// NewWriterSettings returns settings for the passed version with
// non-optimized output and all rule categories enabled.
func NewWriterSettings(version Version) *WriterSettings {
	return &WriterSettings{
		Version:             version,
		NewLineMode:         NewLineUnix,
		IndentString:        "  ",
		WriteNamespaceRules: true,
		WriteFontFaceRules:  true,
		WriteKeyframesRules: true,
		WriteMediaRules:     true,
		WritePageRules:      true,
		WriteViewportRules:  true,
		WriteSupportsRules:  true,
		WriteUnknownRules:   true,
	}
}

// NewOptimizedWriterSettings returns settings producing minified output.
func NewOptimizedWriterSettings(version Version) *WriterSettings {
	ws := NewWriterSettings(version)
	ws.OptimizedOutput = true
	return ws
}

// Indent returns the indentation prefix for the passed level. Optimized
// output is never indented.
func (ws *WriterSettings) Indent(level int) string {
	if ws.OptimizedOutput || level <= 0 {
		return ""
	}
	return strings.Repeat(ws.IndentString, level)
}

// NewLine returns the configured newline, or "" for optimized output.
func (ws *WriterSettings) NewLine() string {
	if ws.OptimizedOutput {
		return ""
	}
	return ws.NewLineMode.String()
}

// CheckVersion returns a *VersionError when required is newer than the
// configured output version.
func (ws *WriterSettings) CheckVersion(required Version, construct string) error {
	if required.After(ws.Version) {
		return &VersionError{Construct: construct, Required: required, Target: ws.Version}
	}
	return nil
}
