package ast

import (
	"strings"

	"github.com/csskit/csskit"
)

// RGB is an "rgb(r,g,b)" color. Components are kept as the source text,
// so percentages and out-of-range values survive a round trip.
type RGB struct {
	sourceLocated
	Red, Green, Blue string
}

// NewRGB returns an rgb() color from raw component text. Empty
// components become "0".
func NewRGB(red, green, blue string) *RGB {
	return &RGB{Red: colorComponent(red, "0"), Green: colorComponent(green, "0"),
		Blue: colorComponent(blue, "0")}
}

func (c *RGB) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	return renderColorFunc(ws, "rgb", c.Red, c.Green, c.Blue), nil
}

func (c *RGB) MinimumVersion() csskit.Version { return csskit.CSS21 }

func (c *RGB) Equal(o *RGB) bool {
	return o != nil && c.Red == o.Red && c.Green == o.Green && c.Blue == o.Blue
}

func (c *RGB) Hash() uint64 {
	h := newHasher("rgb")
	h.str(c.Red)
	h.str(c.Green)
	h.str(c.Blue)
	return h.sum()
}

// Clone returns a copy without source location.
func (c *RGB) Clone() *RGB { return NewRGB(c.Red, c.Green, c.Blue) }

// RGBA is an "rgba(r,g,b,a)" color. Requires CSS 3.0.
type RGBA struct {
	sourceLocated
	Red, Green, Blue, Opacity string
}

// NewRGBA returns an rgba() color from raw component text. Empty
// components become "0", an empty opacity becomes "1".
func NewRGBA(red, green, blue, opacity string) *RGBA {
	return &RGBA{Red: colorComponent(red, "0"), Green: colorComponent(green, "0"),
		Blue: colorComponent(blue, "0"), Opacity: colorComponent(opacity, "1")}
}

func (c *RGBA) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if err := ws.CheckVersion(csskit.CSS30, "rgba()"); err != nil {
		return "", err
	}
	return renderColorFunc(ws, "rgba", c.Red, c.Green, c.Blue, c.Opacity), nil
}

func (c *RGBA) MinimumVersion() csskit.Version { return csskit.CSS30 }

func (c *RGBA) Equal(o *RGBA) bool {
	return o != nil && c.Red == o.Red && c.Green == o.Green && c.Blue == o.Blue &&
		c.Opacity == o.Opacity
}

func (c *RGBA) Hash() uint64 {
	h := newHasher("rgba")
	h.str(c.Red)
	h.str(c.Green)
	h.str(c.Blue)
	h.str(c.Opacity)
	return h.sum()
}

// Clone returns a copy without source location.
func (c *RGBA) Clone() *RGBA { return NewRGBA(c.Red, c.Green, c.Blue, c.Opacity) }

// HSL is an "hsl(h,s,l)" color. Requires CSS 3.0.
type HSL struct {
	sourceLocated
	Hue, Saturation, Lightness string
}

// NewHSL returns an hsl() color from raw component text. Empty
// components become "0".
func NewHSL(hue, saturation, lightness string) *HSL {
	return &HSL{Hue: colorComponent(hue, "0"), Saturation: colorComponent(saturation, "0"),
		Lightness: colorComponent(lightness, "0")}
}

func (c *HSL) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if err := ws.CheckVersion(csskit.CSS30, "hsl()"); err != nil {
		return "", err
	}
	return renderColorFunc(ws, "hsl", c.Hue, c.Saturation, c.Lightness), nil
}

func (c *HSL) MinimumVersion() csskit.Version { return csskit.CSS30 }

func (c *HSL) Equal(o *HSL) bool {
	return o != nil && c.Hue == o.Hue && c.Saturation == o.Saturation &&
		c.Lightness == o.Lightness
}

func (c *HSL) Hash() uint64 {
	h := newHasher("hsl")
	h.str(c.Hue)
	h.str(c.Saturation)
	h.str(c.Lightness)
	return h.sum()
}

// Clone returns a copy without source location.
func (c *HSL) Clone() *HSL { return NewHSL(c.Hue, c.Saturation, c.Lightness) }

// HSLA is an "hsla(h,s,l,a)" color. Requires CSS 3.0.
type HSLA struct {
	sourceLocated
	Hue, Saturation, Lightness, Opacity string
}

// NewHSLA returns an hsla() color from raw component text. Empty
// components become "0", an empty opacity becomes "1".
func NewHSLA(hue, saturation, lightness, opacity string) *HSLA {
	return &HSLA{Hue: colorComponent(hue, "0"), Saturation: colorComponent(saturation, "0"),
		Lightness: colorComponent(lightness, "0"), Opacity: colorComponent(opacity, "1")}
}

func (c *HSLA) AsCSSString(ws *csskit.WriterSettings, indentLevel int) (string, error) {
	if err := ws.CheckVersion(csskit.CSS30, "hsla()"); err != nil {
		return "", err
	}
	return renderColorFunc(ws, "hsla", c.Hue, c.Saturation, c.Lightness, c.Opacity), nil
}

func (c *HSLA) MinimumVersion() csskit.Version { return csskit.CSS30 }

func (c *HSLA) Equal(o *HSLA) bool {
	return o != nil && c.Hue == o.Hue && c.Saturation == o.Saturation &&
		c.Lightness == o.Lightness && c.Opacity == o.Opacity
}

func (c *HSLA) Hash() uint64 {
	h := newHasher("hsla")
	h.str(c.Hue)
	h.str(c.Saturation)
	h.str(c.Lightness)
	h.str(c.Opacity)
	return h.sum()
}

// Clone returns a copy without source location.
func (c *HSLA) Clone() *HSLA { return NewHSLA(c.Hue, c.Saturation, c.Lightness, c.Opacity) }

// colorComponent falls back to def for blank component text, so a
// constructed color always renders as a well-formed function.
func colorComponent(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func renderColorFunc(ws *csskit.WriterSettings, name string, components ...string) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, comp := range components {
		if i > 0 {
			sb.WriteByte(',')
			if !ws.OptimizedOutput {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(comp)
	}
	sb.WriteByte(')')
	return sb.String()
}
