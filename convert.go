package argparse

// Converter is implemented by pointers to the typed views of an [Entry]: [*PositionalArg],
// [*FlagArg] and [*OptionArg]. FromEntry fills the receiver from e and reports whether e has the
// right shape. Programs may add their own views by implementing it.
type Converter[T any] interface {
	*T
	FromEntry(e Entry) bool
}

// PositionalArg is the typed view of a positional entry.
type PositionalArg struct {
	Value string
}

// FromEntry implements [Converter].
func (p *PositionalArg) FromEntry(e Entry) bool {
	if e.Kind != KindPositional {
		return false
	}
	p.Value = e.Value
	return true
}

// FlagArg is the typed view of a flag entry.
type FlagArg struct {
	Name Name
}

// FromEntry implements [Converter].
func (f *FlagArg) FromEntry(e Entry) bool {
	if e.Kind != KindFlag {
		return false
	}
	f.Name = e.Name
	return true
}

// OptionArg is the typed view of an option entry.
type OptionArg struct {
	Name  Name
	Value string
}

// FromEntry implements [Converter].
func (o *OptionArg) FromEntry(e Entry) bool {
	if e.Kind != KindOption {
		return false
	}
	o.Name = e.Name
	o.Value = e.Value
	return true
}

// FindAll returns every entry of a that converts to T, in order:
//
//	files := argparse.FindAll[argparse.PositionalArg](parsed)
func FindAll[T any, PT Converter[T]](a *Arguments) []T {
	var found []T
	for _, e := range a.Entries() {
		var v T
		if PT(&v).FromEntry(e) {
			found = append(found, v)
		}
	}
	return found
}

// Find returns the first flag or option matching def that converts to T. Use [OptionArg] to look
// for a value and [FlagArg] to look for a bare flag.
func Find[T any, PT Converter[T]](a *Arguments, def Definition) (T, bool) {
	for _, e := range a.Entries() {
		if !e.IsNamed() || !def.Matches(e.Name) {
			continue
		}
		var v T
		if PT(&v).FromEntry(e) {
			return v, true
		}
	}
	var zero T
	return zero, false
}
