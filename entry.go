package argparse

import (
	"strconv"
	"strings"
)

// Kind is the shape of a parsed [Entry].
type Kind int

const (
	// KindPositional is a value that is not a flag or option name.
	KindPositional Kind = iota + 1
	// KindFlag is a name without a value.
	KindFlag
	// KindOption is a name with a value, given inline (--name=value) or as the next token.
	KindOption
)

func (k Kind) String() string {
	switch k {
	case KindPositional:
		return "positional"
	case KindFlag:
		return "flag"
	case KindOption:
		return "option"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Entry is one parsed argument. Positional entries only carry a Value, flags only a Name, and
// options both. Value may be empty for options given as --name=.
type Entry struct {
	Kind  Kind
	Name  Name
	Value string
}

// Positional returns a positional entry.
func Positional(value string) Entry {
	return Entry{Kind: KindPositional, Value: value}
}

// Flag returns a flag entry.
func Flag(name Name) Entry {
	return Entry{Kind: KindFlag, Name: name}
}

// Option returns an option entry.
func Option(name Name, value string) Entry {
	return Entry{Kind: KindOption, Name: name, Value: value}
}

// IsNamed reports whether e is a flag or an option.
func (e Entry) IsNamed() bool {
	return e.Kind == KindFlag || e.Kind == KindOption
}

func (e Entry) String() string {
	switch e.Kind {
	case KindPositional:
		return strconv.Quote(e.Value)
	case KindFlag:
		return e.Name.String()
	case KindOption:
		var b strings.Builder
		b.WriteString(e.Name.String())
		b.WriteByte('=')
		b.WriteString(strconv.Quote(e.Value))
		return b.String()
	default:
		return ""
	}
}
