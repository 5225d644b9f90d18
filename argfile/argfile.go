// Package argfile loads argument definitions from YAML or TOML files, so a program can declare the
// arguments it accepts in configuration instead of code. A file lists one definition per entry:
//
//	arguments:
//	  - short: v
//	    long: verbose
//	  - long: output
//	  - short: n
//
// or, in TOML:
//
//	[[arguments]]
//	short = "v"
//	long = "verbose"
//
//	[[arguments]]
//	long = "output"
//
// Unlike [argparse.MustBuild], conflicting definitions are reported as errors: a file is runtime
// input, not a programming mistake.
package argfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/pressly/argparse"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a definitions file.
type Format int

const (
	YAML Format = iota + 1
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from the file extension: .yaml, .yml or .toml.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("unsupported definitions file extension %q, must be .yaml, .yml or .toml", ext)
	}
}

type document struct {
	Arguments []entry `yaml:"arguments" toml:"arguments"`
}

type entry struct {
	Short string `yaml:"short" toml:"short"`
	Long  string `yaml:"long" toml:"long"`
}

// Decode reads definitions from r. Unknown keys are rejected. An empty document yields no
// definitions.
func Decode(r io.Reader, f Format) ([]argparse.Definition, error) {
	var doc document
	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode yaml: %w", err)
		}
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("failed to decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to decode toml: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("unknown format %v", f)
	}

	defs := make([]argparse.Definition, 0, len(doc.Arguments))
	for i, e := range doc.Arguments {
		def, err := e.definition()
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (e entry) definition() (argparse.Definition, error) {
	var def argparse.Definition
	if e.Short != "" {
		c, size := utf8.DecodeRuneInString(e.Short)
		if size != len(e.Short) {
			return def, fmt.Errorf("short name %q must be a single character", e.Short)
		}
		def.Short = c
	}
	def.Long = e.Long
	return def, nil
}

// Registry decodes definitions from r and registers them in order. A definition that conflicts
// with an earlier one is returned as an error wrapping [argparse.ErrDuplicateShort] or
// [argparse.ErrDuplicateLong].
func Registry(r io.Reader, f Format) (*argparse.Registry, error) {
	defs, err := Decode(r, f)
	if err != nil {
		return nil, err
	}
	reg := argparse.NewRegistry()
	for i, def := range defs {
		if err := reg.Register(def); err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
	}
	return reg, nil
}

// Load reads the definitions file at path, choosing the format by extension, and returns a
// registry holding its definitions.
func Load(path string) (*argparse.Registry, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load definitions: %w", err)
	}
	defer file.Close()

	reg, err := Registry(file, f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return reg, nil
}
