package cssutil

import (
	"strconv"
	"strings"

	"github.com/csskit/csskit"
	"github.com/csskit/csskit/parsehelper"
)

// ValueWithUnit is a numeric value split from its unit.
type ValueWithUnit struct {
	Value float64
	Unit  *csskit.Unit
}

// String renders the value with its unit attached, "0" stays bare.
func (v ValueWithUnit) String() string {
	s := strconv.FormatFloat(v.Value, 'f', -1, 64)
	if v.Unit == nil {
		return s
	}
	return s + v.Unit.Name
}

// IsNumberValue reports whether s is a plain number with no unit.
func IsNumberValue(s string) bool {
	t := strings.TrimSpace(s)
	n := parsehelper.SplitNumber(stripSign(t))
	return n != "" && n == stripSign(t)
}

// IsValueWithUnit reports whether s is a number followed by a known
// unit, percentage included.
func IsValueWithUnit(s string) bool {
	_, ok := SplitValueWithUnit(s)
	return ok
}

// IsValueWithNonPercentageUnit is IsValueWithUnit excluding "%".
func IsValueWithNonPercentageUnit(s string) bool {
	v, ok := SplitValueWithUnit(s)
	return ok && v.Unit.Name != "%"
}

// SplitValueWithUnit splits "17.5px" into value and unit. ok is false
// when the text is not a number directly followed by a known unit.
func SplitValueWithUnit(s string) (v ValueWithUnit, ok bool) {
	t := strings.TrimSpace(s)
	sign := 1.0
	if strings.HasPrefix(t, "+") {
		t = t[1:]
	} else if strings.HasPrefix(t, "-") {
		sign = -1
		t = t[1:]
	}
	num := parsehelper.SplitNumber(t)
	if num == "" {
		return ValueWithUnit{}, false
	}
	unit := csskit.UnitByName(strings.TrimSpace(t[len(num):]))
	if unit == nil {
		return ValueWithUnit{}, false
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return ValueWithUnit{}, false
	}
	return ValueWithUnit{Value: sign * f, Unit: unit}, true
}

func stripSign(s string) string {
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return s[1:]
	}
	return s
}
