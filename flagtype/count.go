package flagtype

import (
	"flag"
	"fmt"
	"strconv"
)

type countValue struct {
	n int
}

// Count returns a boolean [flag.Value] that counts how often it is set, so -v -v or the cluster -vv
// count 2. An explicit "false" resets the count and "true" adds one. Get returns int.
func Count() flag.Value {
	return &countValue{}
}

func (v *countValue) String() string {
	return strconv.Itoa(v.n)
}

func (v *countValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("%q is not a boolean", s)
	}
	if b {
		v.n++
	} else {
		v.n = 0
	}
	return nil
}

func (v *countValue) IsBoolFlag() bool { return true }

func (v *countValue) Get() any {
	return v.n
}
