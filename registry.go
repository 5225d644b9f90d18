package argparse

import (
	"fmt"
	"slices"
)

// Registry holds the argument definitions a program accepts and answers whether a name is known in
// constant time. Every short and long name is unique across all definitions.
//
// A Registry is built before parsing starts. Any number of goroutines may parse against the same
// Registry, but Register must not be called while a parse using it is in flight.
type Registry struct {
	defs  []Definition
	short map[rune]int
	long  map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		short: make(map[rune]int),
		long:  make(map[string]int),
	}
}

// Build returns a registry holding defs, registered in order. It stops at the first definition
// that cannot be registered and returns its error.
func Build(defs ...Definition) (*Registry, error) {
	r := NewRegistry()
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustBuild is like [Build] but panics if a definition cannot be registered. It is intended for
// definitions fixed at compile time, where a conflict is a programming error.
func MustBuild(defs ...Definition) *Registry {
	r, err := Build(defs...)
	if err != nil {
		panic(fmt.Sprintf("argparse: %v", err))
	}
	return r
}

// Register adds def to the registry. It returns a [*ConflictError] wrapping [ErrDuplicateShort] or
// [ErrDuplicateLong] if one of its names is already taken, and [ErrInvalidDefinition] if def has
// no usable name. On error the registry is left untouched, so a definition with both forms that
// conflicts on either of them registers neither.
func (r *Registry) Register(def Definition) error {
	if reason := def.validate(); reason != "" {
		return &ConflictError{Definition: def, Err: ErrInvalidDefinition, reason: reason}
	}
	if def.HasShort() {
		if _, ok := r.short[def.Short]; ok {
			return &ConflictError{Definition: def, Name: ShortName(def.Short), Err: ErrDuplicateShort}
		}
	}
	if def.HasLong() {
		if _, ok := r.long[def.Long]; ok {
			return &ConflictError{Definition: def, Name: LongName(def.Long), Err: ErrDuplicateLong}
		}
	}

	if r.short == nil {
		r.short = make(map[rune]int)
	}
	if r.long == nil {
		r.long = make(map[string]int)
	}
	index := len(r.defs)
	if def.HasShort() {
		r.short[def.Short] = index
	}
	if def.HasLong() {
		r.long[def.Long] = index
	}
	r.defs = append(r.defs, def)
	return nil
}

// ContainsShort reports whether a definition with the short name c is registered.
func (r *Registry) ContainsShort(c rune) bool {
	_, ok := r.short[c]
	return ok
}

// ContainsLong reports whether a definition with the long name s is registered.
func (r *Registry) ContainsLong(s string) bool {
	_, ok := r.long[s]
	return ok
}

// Contains reports whether n is registered.
func (r *Registry) Contains(n Name) bool {
	_, ok := r.Index(n)
	return ok
}

// Index returns the registration index of the definition n refers to.
func (r *Registry) Index(n Name) (int, bool) {
	var (
		i  int
		ok bool
	)
	switch n.Kind {
	case NameShort:
		i, ok = r.short[n.Short]
	case NameLong:
		i, ok = r.long[n.Long]
	}
	return i, ok
}

// Lookup returns the definition n refers to. A short name resolves to the same definition as its
// long counterpart when both were registered together.
func (r *Registry) Lookup(n Name) (Definition, bool) {
	i, ok := r.Index(n)
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// Definitions returns the registered definitions in registration order.
func (r *Registry) Definitions() []Definition {
	return slices.Clone(r.defs)
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}
