package parsehelper

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestExtractStringValue(t *testing.T) {
	test.String(t, ExtractStringValue(`'a'`), "a")
	test.String(t, ExtractStringValue(`"a b"`), "a b")
	test.String(t, ExtractStringValue("plain"), "plain")
	test.String(t, ExtractStringValue(`'mismatch"`), `'mismatch"`)
	test.String(t, ExtractStringValue(""), "")
}

func TestTrimURL(t *testing.T) {
	test.String(t, TrimURL("url(a.png)"), "a.png")
	test.String(t, TrimURL("url( 'a b.png' )"), "a b.png")
	test.String(t, TrimURL(`url("x")`), "x")
	test.String(t, TrimURL("URL(a.png)"), "a.png")
	test.String(t, TrimURL("a.png"), "a.png")
	test.String(t, TrimURL("  url(a.png)  "), "a.png")
}

func TestUnescapeURL(t *testing.T) {
	test.String(t, UnescapeURL(`a\(b`), "a(b")
	test.String(t, UnescapeURL(`a\62 c`), "abc")
	test.String(t, UnescapeURL("no escapes"), "no escapes")
	test.String(t, UnescapeURL(`trailing\`), `trailing\`)
}

func TestSplitNumber(t *testing.T) {
	test.String(t, SplitNumber("17.5px"), "17.5")
	test.String(t, SplitNumber("17"), "17")
	test.String(t, SplitNumber(".5em"), ".5")
	test.String(t, SplitNumber("1e3x"), "1e3")
	test.String(t, SplitNumber("2.5E-2"), "2.5E-2")
	test.String(t, SplitNumber("px"), "")
	test.String(t, SplitNumber(""), "")
}
