package csskit

// Version selects the CSS grammar to parse or emit.
type Version int

const (
	// CSS21 is the CSS 2.1 grammar.
	CSS21 Version = iota + 1
	// CSS30 is the CSS 3.0 grammar.
	CSS30
)

// Latest is the most recent supported version.
const Latest = CSS30

func (v Version) String() string {
	switch v {
	case CSS21:
		return "CSS 2.1"
	case CSS30:
		return "CSS 3.0"
	}
	return "unknown"
}

// After reports whether v is newer than o.
func (v Version) After(o Version) bool { return v > o }

// AtLeast reports whether v supports constructs that require o.
func (v Version) AtLeast(o Version) bool { return v >= o }
