package argparse

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedArgument is returned for tokens that cannot be classified, such as a bare "-" or
	// "--=value".
	ErrMalformedArgument = errors.New("malformed argument")

	// ErrUnknownLong is returned by [ParseWithRegistry] for a long name missing from the registry.
	ErrUnknownLong = errors.New("unknown long argument")

	// ErrUnknownShort is returned by [ParseWithRegistry] for a short name missing from the registry.
	ErrUnknownShort = errors.New("unknown short argument")

	// ErrDuplicateShort is returned when registering a short name that is already taken.
	ErrDuplicateShort = errors.New("short argument already defined")

	// ErrDuplicateLong is returned when registering a long name that is already taken.
	ErrDuplicateLong = errors.New("long argument already defined")

	// ErrInvalidDefinition is returned when registering a definition no token could ever match.
	ErrInvalidDefinition = errors.New("invalid definition")

	// ErrMissingValue is returned by [Arguments.Bind] when a flag without a value is bound to a
	// value that is not a boolean.
	ErrMissingValue = errors.New("missing value")
)

// ParseError describes the token that stopped a parse. Err is one of [ErrMalformedArgument],
// [ErrUnknownLong] or [ErrUnknownShort].
type ParseError struct {
	// Index is the position of the offending token in the input.
	Index int
	// Token is the offending token, verbatim.
	Token string
	// Name is the unknown name, set for ErrUnknownLong and ErrUnknownShort.
	Name Name
	Err  error
}

func (e *ParseError) Error() string {
	if e.Name.Kind != 0 {
		return fmt.Sprintf("argument %d %q: %v: %s", e.Index, e.Token, e.Err, e.Name)
	}
	return fmt.Sprintf("argument %d %q: %v", e.Index, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ConflictError describes a definition the [Registry] refused. Err is one of [ErrDuplicateShort],
// [ErrDuplicateLong] or [ErrInvalidDefinition].
type ConflictError struct {
	Definition Definition
	// Name is the name already taken. It is the zero Name for ErrInvalidDefinition.
	Name   Name
	Err    error
	reason string
}

func (e *ConflictError) Error() string {
	if e.reason != "" {
		return fmt.Sprintf("register %q: %v: %s", e.Definition, e.Err, e.reason)
	}
	return fmt.Sprintf("register %q: %v: %s", e.Definition, e.Err, e.Name)
}

func (e *ConflictError) Unwrap() error { return e.Err }
