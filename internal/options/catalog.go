package options

// Family identifies one of the three repeatable record families. Each
// family has a set- and an add- variant; the two are mutually exclusive.
type Family int

const (
	FamilyNone Family = iota
	FamilyMonitor
	FamilyListen
	FamilyDevice
)

// String returns the family name as used in user-facing messages.
func (f Family) String() string {
	switch f {
	case FamilyMonitor:
		return "monitor"
	case FamilyListen:
		return "listen"
	case FamilyDevice:
		return "device"
	default:
		return "none"
	}
}

type optKind int

const (
	kindFlag   optKind = iota // no arguments, boolean presence
	kindScalar                // exactly one argument, at most one occurrence
	kindTuple                 // repeatable, fixed arity range per occurrence
)

// descriptor makes the option catalog executable as data: one entry per
// recognized double-dashed name instead of a chain of string comparisons.
type descriptor struct {
	kind    optKind
	family  Family
	keep    bool // the add- variant of a tuple family
	minArgs int
	maxArgs int
	enum    []string // allowed values, scalar options only
}

// Modes accepted by the --mode option.
var validModes = []string{"standalone", "netserver", "netclient", "controlled", "manual", "none"}

var catalog = map[string]descriptor{
	"help":          {kind: kindFlag},
	"autoconfigure": {kind: kindFlag},
	"is-configured": {kind: kindFlag},
	"system":        {kind: kindFlag},
	"local":         {kind: kindScalar, minArgs: 1, maxArgs: 1},
	"mode":          {kind: kindScalar, minArgs: 1, maxArgs: 1, enum: validModes},
	"set-monitor":   {kind: kindTuple, family: FamilyMonitor, minArgs: 6, maxArgs: 6},
	"add-monitor":   {kind: kindTuple, family: FamilyMonitor, keep: true, minArgs: 6, maxArgs: 6},
	"set-listen":    {kind: kindTuple, family: FamilyListen, minArgs: 1, maxArgs: 2},
	"add-listen":    {kind: kindTuple, family: FamilyListen, keep: true, minArgs: 1, maxArgs: 2},
	"set-device":    {kind: kindTuple, family: FamilyDevice, minArgs: 3, maxArgs: 4},
	"add-device":    {kind: kindTuple, family: FamilyDevice, keep: true, minArgs: 3, maxArgs: 4},
}

// catalogNames lists the catalog keys in a stable order, for suggestion
// lookups and usage rendering.
var catalogNames = []string{
	"help",
	"autoconfigure",
	"is-configured",
	"local",
	"system",
	"mode",
	"set-monitor",
	"add-monitor",
	"set-listen",
	"add-listen",
	"set-device",
	"add-device",
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
