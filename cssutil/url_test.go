package cssutil

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestIsURLValue(t *testing.T) {
	test.T(t, IsURLValue("url(a.png)"), true)
	test.T(t, IsURLValue(" URL('a.png') "), true)
	test.T(t, IsURLValue("a.png"), false)
	test.T(t, IsURLValue("url("), false)
}

func TestExtractURL(t *testing.T) {
	test.String(t, ExtractURL("url(a.png)"), "a.png")
	test.String(t, ExtractURL("url( 'a b.png' )"), "a b.png")
	test.String(t, ExtractURL("  bare.css  "), "bare.css")
}

func TestAsCSSURL(t *testing.T) {
	test.String(t, AsCSSURL("a.png", false), "url(a.png)")
	test.String(t, AsCSSURL("a b.png", false), "url('a b.png')")
	test.String(t, AsCSSURL("a.png", true), "url('a.png')")
}

func TestIsDataURL(t *testing.T) {
	test.T(t, IsDataURL("data:image/png;base64,AAAA"), true)
	test.T(t, IsDataURL("image.png"), false)
}
