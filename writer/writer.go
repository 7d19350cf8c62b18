// Package writer serializes the object model back to CSS text.
package writer

import (
	"io"
	"strings"

	"github.com/csskit/csskit"
	"github.com/csskit/csskit/ast"
	"github.com/csskit/csskit/errorhandler"
	"github.com/csskit/csskit/reader"
)

// Writer renders a stylesheet with optional charset and header
// prologues.
type Writer struct {
	Settings *csskit.WriterSettings
	// Charset, when set, is emitted as a leading @charset rule.
	Charset string
	// Header, when set, is emitted as a leading comment. It must not
	// contain a comment terminator.
	Header string
}

// New returns a writer using the passed settings.
func New(ws *csskit.WriterSettings) *Writer {
	return &Writer{Settings: ws}
}

// CSSAsString renders the whole stylesheet to a string.
func (w *Writer) CSSAsString(sheet *ast.CascadingStyleSheet) (string, error) {
	var sb strings.Builder
	if err := w.write(&sb, sheet); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteCSS renders the whole stylesheet to dst.
func (w *Writer) WriteCSS(dst io.Writer, sheet *ast.CascadingStyleSheet) error {
	var sb strings.Builder
	if err := w.write(&sb, sheet); err != nil {
		return err
	}
	_, err := io.WriteString(dst, sb.String())
	return err
}

func (w *Writer) write(sb *strings.Builder, sheet *ast.CascadingStyleSheet) error {
	nl := w.Settings.NewLine()
	if nl == "" {
		nl = "\n"
	}
	if w.Charset != "" {
		sb.WriteString(`@charset "` + w.Charset + `";`)
		sb.WriteString(nl)
	}
	if w.Header != "" {
		sb.WriteString("/* " + w.Header + " */")
		sb.WriteString(nl)
	}
	s, err := sheet.AsCSSString(w.Settings, 0)
	if err != nil {
		return err
	}
	sb.WriteString(s)
	return nil
}

// Compressor minifies CSS text: it parses the source leniently and
// rewrites it with optimized output settings.
type Compressor struct {
	// Version is the grammar and output version, Latest when zero.
	Version csskit.Version
	// BrowserCompliant parses the way browsers do instead of strictly.
	BrowserCompliant bool
	// Errors collects the faults recovered during the last Compress.
	Errors *errorhandler.Collecting
}

// NewCompressor returns a compressor for the latest CSS version.
func NewCompressor() *Compressor {
	return &Compressor{Version: csskit.Latest, BrowserCompliant: true}
}

// CompressString minifies a CSS string.
func (c *Compressor) CompressString(src string) (string, error) {
	version := c.Version
	if version == 0 {
		version = csskit.Latest
	}
	c.Errors = errorhandler.NewCollecting()
	s := reader.NewSettings(version)
	s.BrowserCompliant = c.BrowserCompliant
	s.ErrorHandler = c.Errors
	sheet, err := reader.FromString(src, s)
	if err != nil {
		return "", err
	}
	return sheet.AsCSSString(csskit.NewOptimizedWriterSettings(version), 0)
}

// Compress minifies everything read from src into dst.
func (c *Compressor) Compress(dst io.Writer, src io.Reader) error {
	b, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	out, err := c.CompressString(string(b))
	if err != nil {
		return err
	}
	_, err = io.WriteString(dst, out)
	return err
}
