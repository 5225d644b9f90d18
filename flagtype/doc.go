// Package flagtype provides [flag.Value] implementations meant to be filled from parsed arguments
// with [github.com/pressly/argparse.Arguments.Bind]. They also work with [flag.FlagSet.Var].
//
// All types implement [flag.Getter]; Get returns the typed result.
//
// The following types are available:
//   - [StringSlice] - collects every value of a repeated option into []string
//   - [Enum] - restricts values to a predefined set, retrieved as string
//   - [EnumDefault] - like [Enum] but with an initial default value
//   - [StringMap] - parses repeated key=value options into map[string]string
//   - [URL] - parses and validates a URL (must have scheme and host), retrieved as *url.URL
//   - [Regexp] - compiles a regular expression, retrieved as *regexp.Regexp
//   - [Count] - counts how many times a flag was given, retrieved as int
//
// Example:
//
//	parsed, err := argparse.ParseWithRegistry(os.Args[1:], reg)
//	if err != nil {
//	    return err
//	}
//	tags := flagtype.StringSlice()
//	verbosity := flagtype.Count()
//	if err := parsed.Bind(argparse.ShortAndLong('t', "tag"), tags); err != nil {
//	    return err
//	}
//	if err := parsed.Bind(argparse.Short('v'), verbosity); err != nil { // -vvv counts 3
//	    return err
//	}
package flagtype
