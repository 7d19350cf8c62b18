package csskit

// Unit is a CSS dimension unit with the version that introduced it.
type Unit struct {
	Name  string
	Since Version
}

// Units lists all known units, longest names first so that suffix
// matching finds "rem" before "em".
var Units = []Unit{
	{"dpcm", CSS30},
	{"dppx", CSS30},
	{"grad", CSS21},
	{"turn", CSS30},
	{"vmin", CSS30},
	{"deg", CSS21},
	{"dpi", CSS30},
	{"khz", CSS21},
	{"rad", CSS21},
	{"rem", CSS30},
	{"ch", CSS30},
	{"cm", CSS21},
	{"em", CSS21},
	{"ex", CSS21},
	{"fr", CSS30},
	{"hz", CSS21},
	{"in", CSS21},
	{"mm", CSS21},
	{"ms", CSS21},
	{"pc", CSS21},
	{"pt", CSS21},
	{"px", CSS21},
	{"vh", CSS30},
	{"vw", CSS30},
	{"s", CSS21},
	{"%", CSS21},
}

// UnitByName returns the unit with the passed name, or nil.
func UnitByName(name string) *Unit {
	for i := range Units {
		if Units[i].Name == name {
			return &Units[i]
		}
	}
	return nil
}

// zeroUnitValues holds "0" formatted with every unit, e.g. "0px", "0em".
var zeroUnitValues = func() map[string]bool {
	m := make(map[string]bool, len(Units))
	for _, u := range Units {
		m["0"+u.Name] = true
	}
	return m
}()

// IsZeroUnitValue reports whether v is zero with any unit suffix.
func IsZeroUnitValue(v string) bool { return zeroUnitValues[v] }
