package ast

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestURIFromCSS(t *testing.T) {
	test.String(t, NewURIFromCSS("url(a.png)").URL(), "a.png")
	test.String(t, NewURIFromCSS("url( 'a b.png' )").URL(), "a b.png")
	test.String(t, NewURIFromCSS(`URL("x.gif")`).URL(), "x.gif")
	test.String(t, NewURIFromCSS("bare.css").URL(), "bare.css")
}

func TestWrapInCSSURL(t *testing.T) {
	test.String(t, WrapInCSSURL("a.png", false), "url(a.png)")
	test.String(t, WrapInCSSURL("a b.png", false), "url('a b.png')")
	test.String(t, WrapInCSSURL("it's", false), `url("it's")`)
	test.String(t, WrapInCSSURL("a.png", true), "url('a.png')")
	test.String(t, WrapInCSSURL(`mixed'"`, false), `url('mixed\'"')`)
}

func TestURIDataURL(t *testing.T) {
	test.T(t, NewURI("data:image/png;base64,AAAA").IsDataURL(), true)
	test.T(t, NewURI("DATA:text/plain,hi").IsDataURL(), true)
	test.T(t, NewURI("image.png").IsDataURL(), false)
}

func TestURIEquality(t *testing.T) {
	a, b := NewURI("a.png"), NewURI("a.png")
	test.T(t, a.Equal(b), true)
	test.T(t, a.Hash(), b.Hash())

	b.SetURL("b.png")
	test.T(t, a.Equal(b), false)
	test.String(t, b.URL(), "b.png")
}
