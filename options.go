package opgrammar

import "io"

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// Trace the parse to "w".
//
// One line is written per attempted pattern production and per field.
func Trace(w io.Writer) Option {
	return func(p *Parser) error {
		p.trace = w
		return nil
	}
}

// Memoize controls caching of pattern parse results by token position.
//
// It is enabled by default. Every group opener is tried by several productions, so
// without the cache a pattern such as ((((expr1)+)+)+)+ is reparsed once per production
// at every level and parse time grows exponentially with the nesting depth of groups.
// Disable it only for shallow patterns, eg. to compare results.
func Memoize(enabled bool) Option {
	return func(p *Parser) error {
		p.memoize = enabled
		return nil
	}
}

// DisallowDuplicateFields makes an entry that sets the same field twice an error.
//
// By default the last value wins.
func DisallowDuplicateFields() Option {
	return func(p *Parser) error {
		p.disallowDuplicates = true
		return nil
	}
}
