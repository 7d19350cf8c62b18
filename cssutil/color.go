// Package cssutil has helpers for interpreting common CSS value shapes:
// colors, numeric values with units, and url() values.
package cssutil

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/csskit/csskit/ast"
)

const (
	// RGBRange is the number of discrete values per RGB component.
	RGBRange = 256
	// HSLHueRange is the number of degrees on the hue circle.
	HSLHueRange = 360
)

var (
	hexColorPattern  = regexp.MustCompile(`^#[0-9a-fA-F]{3}(?:[0-9a-fA-F]{3})?$`)
	numPart          = `\s*(-?[0-9]+(?:\.[0-9]+)?%?)\s*`
	rgbColorPattern  = regexp.MustCompile(`^rgb\(` + numPart + `,` + numPart + `,` + numPart + `\)$`)
	rgbaColorPattern = regexp.MustCompile(`^rgba\(` + numPart + `,` + numPart + `,` + numPart + `,` + numPart + `\)$`)
	hslColorPattern  = regexp.MustCompile(`^hsl\(` + numPart + `,` + numPart + `,` + numPart + `\)$`)
	hslaColorPattern = regexp.MustCompile(`^hsla\(` + numPart + `,` + numPart + `,` + numPart + `,` + numPart + `\)$`)
)

// IsHexColorValue reports whether s is a "#rgb" or "#rrggbb" color.
func IsHexColorValue(s string) bool {
	return hexColorPattern.MatchString(strings.TrimSpace(s))
}

// IsRGBColorValue reports whether s is an "rgb(...)" color.
func IsRGBColorValue(s string) bool {
	return rgbColorPattern.MatchString(strings.TrimSpace(s))
}

// IsRGBAColorValue reports whether s is an "rgba(...)" color.
func IsRGBAColorValue(s string) bool {
	return rgbaColorPattern.MatchString(strings.TrimSpace(s))
}

// IsHSLColorValue reports whether s is an "hsl(...)" color.
func IsHSLColorValue(s string) bool {
	return hslColorPattern.MatchString(strings.TrimSpace(s))
}

// IsHSLAColorValue reports whether s is an "hsla(...)" color.
func IsHSLAColorValue(s string) bool {
	return hslaColorPattern.MatchString(strings.TrimSpace(s))
}

// IsColorValue reports whether s is a color in any supported notation.
func IsColorValue(s string) bool {
	return IsHexColorValue(s) || IsRGBColorValue(s) || IsRGBAColorValue(s) ||
		IsHSLColorValue(s) || IsHSLAColorValue(s)
}

// ParseRGB interprets an "rgb(...)" value. ok is false when s does not
// match the notation.
func ParseRGB(s string) (c *ast.RGB, ok bool) {
	m := rgbColorPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil, false
	}
	return ast.NewRGB(m[1], m[2], m[3]), true
}

// ParseRGBA interprets an "rgba(...)" value.
func ParseRGBA(s string) (c *ast.RGBA, ok bool) {
	m := rgbaColorPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil, false
	}
	return ast.NewRGBA(m[1], m[2], m[3], m[4]), true
}

// ParseHSL interprets an "hsl(...)" value.
func ParseHSL(s string) (c *ast.HSL, ok bool) {
	m := hslColorPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil, false
	}
	return ast.NewHSL(m[1], m[2], m[3]), true
}

// ParseHSLA interprets an "hsla(...)" value.
func ParseHSLA(s string) (c *ast.HSLA, ok bool) {
	m := hslaColorPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil, false
	}
	return ast.NewHSLA(m[1], m[2], m[3], m[4]), true
}

// RGBToHex renders components as a "#rrggbb" value. Components are
// clamped to 0..255.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clampRGB(r), clampRGB(g), clampRGB(b))
}

// RGBToHSL converts RGB components to hue (degrees), saturation and
// lightness (percent).
func RGBToHSL(r, g, b int) (h, s, l float64) {
	nr := float64(clampRGB(r)) / 255
	ng := float64(clampRGB(g)) / 255
	nb := float64(clampRGB(b)) / 255
	max := math.Max(nr, math.Max(ng, nb))
	min := math.Min(nr, math.Min(ng, nb))
	delta := max - min

	l = (max + min) / 2
	if delta != 0 {
		if l <= 0.5 {
			s = delta / (max + min)
		} else {
			s = delta / (2 - max - min)
		}
		switch max {
		case nr:
			h = 60 * math.Mod((ng-nb)/delta, 6)
		case ng:
			h = 60*(nb-nr)/delta + 120
		default:
			h = 60*(nr-ng)/delta + 240
		}
		if h < 0 {
			h += HSLHueRange
		}
	}
	return h, s * 100, l * 100
}

// HSLToRGB converts hue (degrees), saturation and lightness (percent)
// to RGB components in 0..255.
func HSLToRGB(h, s, l float64) (r, g, b int) {
	h = math.Mod(math.Mod(h, HSLHueRange)+HSLHueRange, HSLHueRange) / HSLHueRange
	s = math.Min(math.Max(s/100, 0), 1)
	l = math.Min(math.Max(l/100, 0), 1)
	if s == 0 {
		v := round255(l)
		return v, v, v
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return round255(hueToRGB(p, q, h+1.0/3)),
		round255(hueToRGB(p, q, h)),
		round255(hueToRGB(p, q, h-1.0/3))
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func round255(v float64) int {
	return clampRGB(int(math.Floor(v*255 + 0.5)))
}

func clampRGB(v int) int {
	if v < 0 {
		return 0
	}
	if v >= RGBRange {
		return RGBRange - 1
	}
	return v
}
