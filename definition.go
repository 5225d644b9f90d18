package argparse

import (
	"strings"
	"unicode/utf8"
)

// Definition declares an argument a program accepts. It has a short form, a long form, or both, in
// which case the two forms refer to the same logical argument. A zero Short means no short form, an
// empty Long means no long form.
type Definition struct {
	Short rune
	Long  string
}

// Short declares an argument that only has a short form, like -v.
func Short(c rune) Definition {
	return Definition{Short: c}
}

// Long declares an argument that only has a long form, like --verbose. The name is given without
// leading dashes.
func Long(name string) Definition {
	return Definition{Long: name}
}

// ShortAndLong declares an argument reachable as both -c and --name.
func ShortAndLong(c rune, name string) Definition {
	return Definition{Short: c, Long: name}
}

// HasShort reports whether d has a short form.
func (d Definition) HasShort() bool { return d.Short != 0 }

// HasLong reports whether d has a long form.
func (d Definition) HasLong() bool { return d.Long != "" }

// Matches reports whether the name n refers to d, in either of its forms.
func (d Definition) Matches(n Name) bool {
	switch n.Kind {
	case NameShort:
		return d.HasShort() && d.Short == n.Short
	case NameLong:
		return d.HasLong() && d.Long == n.Long
	default:
		return false
	}
}

// Names returns the names d can be written as, short form first.
func (d Definition) Names() []Name {
	var names []Name
	if d.HasShort() {
		names = append(names, ShortName(d.Short))
	}
	if d.HasLong() {
		names = append(names, LongName(d.Long))
	}
	return names
}

// String renders d the way help output usually does, for example "-v, --verbose".
func (d Definition) String() string {
	names := d.Names()
	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, n.String())
	}
	return strings.Join(parts, ", ")
}

// validate reports why d could never match a parsed name, or "" if it can.
func (d Definition) validate() string {
	if !d.HasShort() && !d.HasLong() {
		return "definition has neither a short nor a long form"
	}
	if d.HasShort() {
		switch {
		case d.Short == '-' || d.Short == '=':
			return "short name " + string(d.Short) + " is reserved"
		case d.Short == utf8.RuneError || !utf8.ValidRune(d.Short):
			return "short name is not a valid character"
		}
	}
	if d.HasLong() {
		switch {
		case strings.HasPrefix(d.Long, "-"):
			return "long name " + d.Long + " must be given without leading dashes"
		case strings.Contains(d.Long, "="):
			return "long name " + d.Long + " must not contain '='"
		}
	}
	return ""
}
