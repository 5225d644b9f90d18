package argparse

import (
	"errors"
	"strings"
)

// Parse classifies tokens, typically os.Args[1:], by syntax alone and returns the entries in input
// order. It returns a [*ParseError] wrapping [ErrMalformedArgument] for a token it cannot classify;
// no partial result is returned.
//
// Classification rules:
//   - "--" switches to positional-only mode for the rest of the input. The "--" itself and every
//     token after it, including further "--", become positional entries.
//   - "--name=value" is an option; the value is everything after the first "=" and may be empty.
//   - "--name" is an option taking the next token as its value, unless there is no next token or
//     it starts with "-", in which case it is a flag.
//   - "-abc=value" is one option per character, all sharing value.
//   - "-abc" is one flag per character, or one option per character sharing the next token as
//     value, with the same lookahead rule as "--name".
//   - Anything else is positional.
func Parse(tokens []string) (*Arguments, error) {
	p := &parser{tokens: tokens}
	return p.run()
}

// ParseWithRegistry is like [Parse] but also requires every name to be registered in r. The first
// unknown name stops the parse with a [*ParseError] wrapping [ErrUnknownLong] or
// [ErrUnknownShort]. For a cluster like -abc, the error names the first unknown character.
func ParseWithRegistry(tokens []string, r *Registry) (*Arguments, error) {
	if r == nil {
		return nil, errors.New("failed to parse: registry is nil")
	}
	p := &parser{tokens: tokens, registry: r}
	return p.run()
}

type parser struct {
	tokens   []string
	pos      int
	registry *Registry // nil when parsing by syntax alone

	// positionalOnly latches once "--" has been seen.
	positionalOnly bool
	entries        []Entry
}

func (p *parser) run() (*Arguments, error) {
	p.entries = make([]Entry, 0, len(p.tokens))
	for p.pos < len(p.tokens) {
		index := p.pos
		token := p.next()

		var err error
		switch {
		case p.positionalOnly:
			p.emit(Positional(token))
		case token == "--":
			p.positionalOnly = true
			p.emit(Positional(token))
		case strings.HasPrefix(token, "--"):
			err = p.parseLong(index, token)
		case strings.HasPrefix(token, "-"):
			err = p.parseShort(index, token)
		default:
			p.emit(Positional(token))
		}
		if err != nil {
			return nil, err
		}
	}
	return &Arguments{entries: p.entries}, nil
}

func (p *parser) next() string {
	token := p.tokens[p.pos]
	p.pos++
	return token
}

// value consumes the next token as a value. It leaves the input alone when there is no next token
// or when it starts with "-".
func (p *parser) value() (string, bool) {
	if p.pos >= len(p.tokens) || strings.HasPrefix(p.tokens[p.pos], "-") {
		return "", false
	}
	return p.next(), true
}

func (p *parser) emit(e Entry) {
	p.entries = append(p.entries, e)
}

func (p *parser) parseLong(index int, token string) error {
	name, value, hasValue := strings.Cut(token[len("--"):], "=")
	if name == "" {
		return &ParseError{Index: index, Token: token, Err: ErrMalformedArgument}
	}
	if !hasValue {
		value, hasValue = p.value()
	}

	n := LongName(name)
	if p.registry != nil && !p.registry.ContainsLong(name) {
		return &ParseError{Index: index, Token: token, Name: n, Err: ErrUnknownLong}
	}
	if hasValue {
		p.emit(Option(n, value))
	} else {
		p.emit(Flag(n))
	}
	return nil
}

func (p *parser) parseShort(index int, token string) error {
	cluster, value, hasValue := strings.Cut(token[len("-"):], "=")
	if cluster == "" {
		return &ParseError{Index: index, Token: token, Err: ErrMalformedArgument}
	}
	if !hasValue {
		value, hasValue = p.value()
	}

	if p.registry != nil {
		for _, c := range cluster {
			if !p.registry.ContainsShort(c) {
				return &ParseError{Index: index, Token: token, Name: ShortName(c), Err: ErrUnknownShort}
			}
		}
	}
	for _, c := range cluster {
		if hasValue {
			p.emit(Option(ShortName(c), value))
		} else {
			p.emit(Flag(ShortName(c)))
		}
	}
	return nil
}
