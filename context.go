package opgrammar

import (
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
)

type memoEntry struct {
	pattern Pattern
	end     int
	err     error
}

// Context for a single parse.
//
// All mutable parse state lives here, so a Parser may be shared between goroutines.
type parseContext struct {
	types  *tokenTypes
	text   string
	tokens []lexer.Token
	cursor int

	// Cursors at which the sequence production is currently active.
	sequences map[int]bool
	// Ordered-choice results keyed by starting cursor. Nil when memoisation is disabled.
	memo map[int]memoEntry
	// Furthest failure seen by the pattern parser.
	deepestError error

	disallowDuplicates bool

	trace io.Writer
	depth int
}

func newParseContext(p *Parser, text string, tokens []lexer.Token) *parseContext {
	c := &parseContext{
		types:     p.types,
		text:      text,
		tokens:    tokens,
		sequences: map[int]bool{},
		trace:     p.trace,

		disallowDuplicates: p.disallowDuplicates,
	}
	if p.memoize {
		c.memo = map[int]memoEntry{}
	}
	return c
}

// peek at the next token without consuming it.
func (c *parseContext) peek() lexer.Token {
	return c.tokens[c.cursor]
}

// next consumes and returns the next token. EOF is never consumed.
func (c *parseContext) next() lexer.Token {
	tok := c.tokens[c.cursor]
	if !tok.EOF() {
		c.cursor++
	}
	return tok
}

// checkpoint returns the current cursor, for later use with restore.
func (c *parseContext) checkpoint() int { return c.cursor }

func (c *parseContext) restore(checkpoint int) { c.cursor = checkpoint }

// accept consumes the next token if it has the given type and value.
func (c *parseContext) accept(tt lexer.TokenType, value string) bool {
	tok := c.peek()
	if tok.Type != tt || tok.Value != value {
		return false
	}
	c.next()
	return true
}

// expect consumes the next token, which must have the given type and value.
func (c *parseContext) expect(tt lexer.TokenType, value string) (lexer.Token, error) {
	tok := c.peek()
	if tok.Type != tt || tok.Value != value {
		return tok, c.unexpected(strconv.Quote(value))
	}
	return c.next(), nil
}

func (c *parseContext) unexpected(expected string) error {
	return &UnexpectedTokenError{Unexpected: c.peek(), Expected: expected}
}

// skipSpace skips horizontal whitespace.
func (c *parseContext) skipSpace() {
	for c.peek().Type == c.types.whitespace {
		c.next()
	}
}

// skipTrivia skips whitespace, blank lines and comments.
func (c *parseContext) skipTrivia() {
	for c.types.trivia(c.peek()) {
		c.next()
	}
}

// endOfLine matches optional whitespace, an optional comment, then a newline or the end
// of the input.
func (c *parseContext) endOfLine() error {
	c.skipSpace()
	if c.peek().Type == c.types.comment {
		c.next()
	}
	tok := c.peek()
	if tok.EOF() {
		return nil
	}
	if tok.Type == c.types.newline {
		c.next()
		return nil
	}
	return c.unexpected("end of line")
}

// enterSequence marks the sequence production as active at the current cursor.
//
// It reports false if a sequence is already being parsed at this cursor, in which case
// entering it again could not consume any input. Otherwise the returned function must be
// called to leave the production.
func (c *parseContext) enterSequence() (release func(), ok bool) {
	cursor := c.cursor
	if c.sequences[cursor] {
		return nil, false
	}
	c.sequences[cursor] = true
	return func() { delete(c.sequences, cursor) }, true
}

// recordFailure keeps the furthest of the failures seen so far.
func (c *parseContext) recordFailure(err error) {
	c.deepestError = deeper(c.deepestError, err)
}

// remaining returns the source text from pos onwards.
func (c *parseContext) remaining(pos lexer.Position) string {
	if pos.Offset < 0 || pos.Offset > len(c.text) {
		return ""
	}
	return c.text[pos.Offset:]
}

// fail wraps err as a file level failure.
func (c *parseContext) fail(err error) *ParseError {
	perr := AnnotateError(c.peek().Pos, err)
	return &ParseError{Err: perr, Remaining: c.remaining(perr.Position())}
}

// deeper returns whichever of a and b occurred further into the input.
//
// At the same offset two unexpected-token errors are merged so that the result lists
// everything that could have followed. A more specific error, such as an out of range
// number, beats an unexpected-token error. Otherwise a is preferred.
func deeper(a, b error) error {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	ao, bo := errorOffset(a), errorOffset(b)
	if bo > ao {
		return b
	}
	if bo < ao {
		return a
	}
	ua, aok := a.(*UnexpectedTokenError)
	ub, bok := b.(*UnexpectedTokenError)
	switch {
	case aok && bok:
		return mergeExpected(ua, ub)
	case aok:
		return b
	}
	return a
}

func errorOffset(err error) int {
	if perr, ok := err.(Error); ok {
		return perr.Position().Offset
	}
	return -1
}
