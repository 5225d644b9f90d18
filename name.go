package argparse

import "strconv"

// NameKind tells which form a [Name] was written in.
type NameKind int

const (
	// NameShort is a single character introduced by one dash, like -v.
	NameShort NameKind = iota + 1
	// NameLong is a word introduced by two dashes, like --verbose.
	NameLong
)

func (k NameKind) String() string {
	switch k {
	case NameShort:
		return "short"
	case NameLong:
		return "long"
	default:
		return "NameKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Name is the name of a flag or option as it appeared on the command line. Exactly one of Short
// and Long is meaningful, depending on Kind. Names are compared by value.
type Name struct {
	Kind  NameKind
	Short rune
	Long  string
}

// ShortName returns the name of a single-character argument.
func ShortName(c rune) Name {
	return Name{Kind: NameShort, Short: c}
}

// LongName returns the name of a long argument. The name is given without leading dashes.
func LongName(s string) Name {
	return Name{Kind: NameLong, Long: s}
}

// IsShort reports whether n is a short name.
func (n Name) IsShort() bool { return n.Kind == NameShort }

// IsLong reports whether n is a long name.
func (n Name) IsLong() bool { return n.Kind == NameLong }

// String returns the name the way it is typed: "-v" or "--verbose".
func (n Name) String() string {
	switch n.Kind {
	case NameShort:
		return "-" + string(n.Short)
	case NameLong:
		return "--" + n.Long
	default:
		return ""
	}
}
