package argparse

import (
	"flag"
	"fmt"
	"iter"
	"slices"
)

// Arguments is the result of a successful parse: the entries in the order their tokens appeared.
type Arguments struct {
	entries []Entry
}

// Len returns the number of entries. A cluster like -abc contributes one entry per character.
func (a *Arguments) Len() int {
	if a == nil {
		return 0
	}
	return len(a.entries)
}

// At returns the i-th entry. It panics if i is out of range.
func (a *Arguments) At(i int) Entry {
	return a.entries[i]
}

// All returns an iterator over the entries and their positions.
func (a *Arguments) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		if a == nil {
			return
		}
		for i, e := range a.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Entries returns the entries themselves, not a copy. Changes made through the returned slice are
// visible to every later call on a.
func (a *Arguments) Entries() []Entry {
	if a == nil {
		return nil
	}
	return a.entries
}

// Clone returns a copy of a that shares no entries with it.
func (a *Arguments) Clone() *Arguments {
	if a == nil {
		return nil
	}
	return &Arguments{entries: slices.Clone(a.entries)}
}

// Has reports whether a flag or option matching def was given.
func (a *Arguments) Has(def Definition) bool {
	return slices.ContainsFunc(a.Entries(), func(e Entry) bool {
		return e.IsNamed() && def.Matches(e.Name)
	})
}

// Positionals returns the values of all positional entries, in order.
func (a *Arguments) Positionals() []string {
	var values []string
	for _, e := range a.Entries() {
		if e.Kind == KindPositional {
			values = append(values, e.Value)
		}
	}
	return values
}

// Values returns the values of all options matching def, in order. Flags matching def are skipped.
func (a *Arguments) Values(def Definition) []string {
	var values []string
	for _, e := range a.Entries() {
		if e.Kind == KindOption && def.Matches(e.Name) {
			values = append(values, e.Value)
		}
	}
	return values
}

// Bind calls v.Set for every entry matching def, in order. Options pass their value. Flags pass
// "true" if v is a boolean value (it has an IsBoolFlag method returning true, like the values
// created by [flag.Bool]); otherwise Bind returns an error wrapping [ErrMissingValue].
//
// Bind works with any [flag.Value], including the ones in package flagtype:
//
//	tags := flagtype.StringSlice()
//	if err := parsed.Bind(argparse.ShortAndLong('t', "tag"), tags); err != nil {
//	    return err
//	}
func (a *Arguments) Bind(def Definition, v flag.Value) error {
	for _, e := range a.Entries() {
		if !e.IsNamed() || !def.Matches(e.Name) {
			continue
		}
		value := e.Value
		if e.Kind == KindFlag {
			if !isBoolValue(v) {
				return fmt.Errorf("%s: %w", e.Name, ErrMissingValue)
			}
			value = "true"
		}
		if err := v.Set(value); err != nil {
			return fmt.Errorf("invalid value %q for %s: %w", value, e.Name, err)
		}
	}
	return nil
}

func isBoolValue(v flag.Value) bool {
	b, ok := v.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
