package flagtype

import (
	"flag"
	"fmt"
	"slices"
	"strings"
)

type enumValue struct {
	val     string
	allowed []string
}

// Enum returns a [flag.Value] that only accepts one of the allowed values. Setting any other value
// fails with an error listing the allowed ones. When the option is repeated the last value wins.
// Get returns string.
func Enum(allowed ...string) flag.Value {
	return &enumValue{allowed: allowed}
}

// EnumDefault is like [Enum] but starts out holding defaultVal, which must be one of the allowed
// values; EnumDefault panics otherwise.
func EnumDefault(defaultVal string, allowed []string) flag.Value {
	if !slices.Contains(allowed, defaultVal) {
		panic(fmt.Sprintf("flagtype: default %q is not one of: %s", defaultVal, strings.Join(allowed, ", ")))
	}
	return &enumValue{val: defaultVal, allowed: allowed}
}

func (v *enumValue) String() string {
	return v.val
}

func (v *enumValue) Set(s string) error {
	if !slices.Contains(v.allowed, s) {
		return fmt.Errorf("must be one of: %s", strings.Join(v.allowed, ", "))
	}
	v.val = s
	return nil
}

func (v *enumValue) Get() any {
	return v.val
}
