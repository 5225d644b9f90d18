// Package argparse turns the raw tokens handed to a process into an ordered list of typed entries:
// positional values, flags and options with a value. It understands long names (--name,
// --name=value, --name value), short names and clusters of short names (-v, -abc, -abc value,
// -o=value) and the "--" terminator after which every token is positional.
//
// Parsing comes in two variants. [Parse] classifies tokens by syntax alone. [ParseWithRegistry]
// additionally requires every name to be declared in a [Registry]:
//
//	reg := argparse.MustBuild(
//	    argparse.ShortAndLong('v', "verbose"),
//	    argparse.Long("output"),
//	)
//	parsed, err := argparse.ParseWithRegistry(os.Args[1:], reg)
//	if err != nil {
//	    return err
//	}
//	verbose := parsed.Has(argparse.ShortAndLong('v', "verbose"))
//	outputs := argparse.FindAll[argparse.OptionArg](parsed)
//
// A token that follows a name without "=" is taken as that name's value unless it starts with "-".
// The check is purely syntactic, so "--offset -5" yields two flags, not an option with a negative
// value. Use "--offset=-5" instead.
//
// Entries never copy input text: names and values are substrings of the tokens passed in.
package argparse
