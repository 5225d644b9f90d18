package flagtype

import (
	"flag"
	"fmt"
	"net/url"
)

type urlValue struct {
	u *url.URL
}

// URL returns a [flag.Value] that parses its value as an absolute URL with both a scheme and a host.
// Get returns *url.URL, nil until a value is set.
func URL() flag.Value {
	return &urlValue{}
}

func (v *urlValue) String() string {
	if v.u == nil {
		return ""
	}
	return v.u.String()
}

func (v *urlValue) Set(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("URL %q needs a scheme and a host", s)
	}
	v.u = u
	return nil
}

func (v *urlValue) Get() any {
	return v.u
}
