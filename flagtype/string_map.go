package flagtype

import (
	"flag"
	"fmt"
	"maps"
	"slices"
	"strings"
)

type stringMapValue struct {
	m map[string]string
}

// StringMap returns a [flag.Value] that reads key=value pairs into a map, one pair per value, as in
// --label env=prod -l tier=web. The pair is split at its first "=", so values may contain "=".
// A later pair replaces an earlier one with the same key. Get returns map[string]string.
func StringMap() flag.Value {
	return &stringMapValue{}
}

func (v *stringMapValue) String() string {
	keys := slices.Sorted(maps.Keys(v.m))
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+v.m[k])
	}
	return strings.Join(pairs, ",")
}

func (v *stringMapValue) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	switch {
	case !ok:
		return fmt.Errorf("%q is not a key=value pair", s)
	case key == "":
		return fmt.Errorf("%q has an empty key", s)
	}
	if v.m == nil {
		v.m = make(map[string]string)
	}
	v.m[key] = value
	return nil
}

func (v *stringMapValue) Get() any {
	return v.m
}
