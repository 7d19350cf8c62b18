package cssutil

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestColorPredicates(t *testing.T) {
	test.T(t, IsHexColorValue("#abc"), true)
	test.T(t, IsHexColorValue("#aabbcc"), true)
	test.T(t, IsHexColorValue("#abcd"), false)
	test.T(t, IsHexColorValue("abc"), false)

	test.T(t, IsRGBColorValue("rgb(1, 2, 3)"), true)
	test.T(t, IsRGBColorValue("rgb(1,2)"), false)
	test.T(t, IsRGBAColorValue("rgba(1, 2, 3, 0.5)"), true)
	test.T(t, IsHSLColorValue("hsl(120, 50%, 50%)"), true)
	test.T(t, IsHSLAColorValue("hsla(120, 50%, 50%, 1)"), true)

	test.T(t, IsColorValue("#fff"), true)
	test.T(t, IsColorValue("rgb(0, 0, 0)"), true)
	test.T(t, IsColorValue("red"), false)
}

func TestParseColors(t *testing.T) {
	rgb, ok := ParseRGB(" rgb(1, 2, 3) ")
	test.T(t, ok, true)
	test.String(t, rgb.Red, "1")
	test.String(t, rgb.Green, "2")
	test.String(t, rgb.Blue, "3")

	rgba, ok := ParseRGBA("rgba(1,2,3,0.5)")
	test.T(t, ok, true)
	test.String(t, rgba.Opacity, "0.5")

	hsl, ok := ParseHSL("hsl(120, 50%, 50%)")
	test.T(t, ok, true)
	test.String(t, hsl.Hue, "120")
	test.String(t, hsl.Saturation, "50%")

	hsla, ok := ParseHSLA("hsla(120, 50%, 50%, 1)")
	test.T(t, ok, true)
	test.String(t, hsla.Lightness, "50%")

	_, ok = ParseRGB("rgb(1,2)")
	test.T(t, ok, false)
}

func TestRGBToHex(t *testing.T) {
	test.String(t, RGBToHex(255, 0, 0), "#ff0000")
	test.String(t, RGBToHex(0, 128, 255), "#0080ff")
	test.String(t, RGBToHex(300, -5, 0), "#ff0000")
}

func TestRGBToHSL(t *testing.T) {
	h, s, l := RGBToHSL(255, 0, 0)
	test.T(t, h, 0.0)
	test.T(t, s, 100.0)
	test.T(t, l, 50.0)

	h, s, l = RGBToHSL(0, 128, 0)
	test.T(t, h, 120.0)
	test.T(t, s, 100.0)
	test.That(t, math.Abs(l-25.098) < 0.01, "lightness of green")

	h, s, _ = RGBToHSL(128, 128, 128)
	test.T(t, h, 0.0)
	test.T(t, s, 0.0)
}

func TestHSLToRGB(t *testing.T) {
	r, g, b := HSLToRGB(0, 100, 50)
	test.T(t, r, 255)
	test.T(t, g, 0)
	test.T(t, b, 0)

	r, g, b = HSLToRGB(120, 100, 25)
	test.T(t, r, 0)
	test.T(t, g, 128)
	test.T(t, b, 0)

	r, g, b = HSLToRGB(0, 0, 50)
	test.T(t, r, 128)
	test.T(t, g, 128)
	test.T(t, b, 128)

	// Hue wraps around the circle.
	r1, g1, b1 := HSLToRGB(-240, 100, 50)
	r2, g2, b2 := HSLToRGB(120, 100, 50)
	test.T(t, r1, r2)
	test.T(t, g1, g2)
	test.T(t, b1, b2)
}

func TestColorRoundTrip(t *testing.T) {
	for _, c := range [][3]int{{12, 34, 56}, {255, 0, 0}, {0, 128, 0}, {17, 17, 17}, {200, 100, 50}} {
		h, s, l := RGBToHSL(c[0], c[1], c[2])
		r, g, b := HSLToRGB(h, s, l)
		test.T(t, r, c[0])
		test.T(t, g, c[1])
		test.T(t, b, c[2])
	}
}
