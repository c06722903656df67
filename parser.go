package opgrammar

import (
	"errors"
	"io"

	"github.com/alecthomas/participle/v2/lexer"
)

// A Parser for operator definition files.
//
// A Parser is immutable once built and safe for concurrent use.
type Parser struct {
	lex                *lexer.StatefulDefinition
	types              *tokenTypes
	trace              io.Writer
	memoize            bool
	disallowDuplicates bool
}

// New creates a Parser.
func New(options ...Option) (*Parser, error) {
	p := &Parser{
		lex:     Lexer,
		types:   newTokenTypes(Lexer),
		memoize: true,
	}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustNew calls New and panics on error.
func MustNew(options ...Option) *Parser {
	p, err := New(options...)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse all entries from r.
//
// "filename" is used only in positions and may be empty.
func (p *Parser) Parse(filename string, r io.Reader) ([]*Record, error) {
	if filename == "" {
		filename = lexer.NameOfReader(r)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return p.ParseString(filename, string(data))
}

// ParseBytes parses all entries from text.
func (p *Parser) ParseBytes(filename string, text []byte) ([]*Record, error) {
	return p.ParseString(filename, string(text))
}

// ParseString parses all entries from text.
//
// Errors are returned as *ParseError.
func (p *Parser) ParseString(filename, text string) ([]*Record, error) {
	c, err := p.newContext(filename, text)
	if err != nil {
		return nil, err
	}
	return c.parseFile()
}

// ParseRecord parses the first entry in text, returning it along with the unparsed
// remainder, which starts at the next entry's name field if there is one.
func (p *Parser) ParseRecord(filename, text string) (*Record, string, error) {
	c, err := p.newContext(filename, text)
	if err != nil {
		return nil, text, err
	}
	record, err := c.parseRecord()
	if errors.Is(err, errEndOfInput) {
		err = c.unexpected(`"name" field`)
	}
	if err != nil {
		perr := AnnotateError(c.peek().Pos, err)
		return nil, c.remaining(perr.Position()), perr
	}
	c.skipTrivia()
	return record, c.remaining(c.peek().Pos), nil
}

// ParsePattern parses a single pattern value, as found after "syntax:", "parse:" or
// "fullform:".
func (p *Parser) ParsePattern(filename, text string) (Pattern, error) {
	c, err := p.newContext(filename, text)
	if err != nil {
		return nil, err
	}
	pattern, err := c.parsePatternValue()
	if err != nil {
		return nil, AnnotateError(c.peek().Pos, err)
	}
	c.skipTrivia()
	if !c.peek().EOF() {
		return nil, c.unexpected("end of input")
	}
	return pattern, nil
}

func (p *Parser) newContext(filename, text string) (*parseContext, error) {
	tokens, err := tokenise(p.lex, filename, text)
	if err != nil {
		return nil, AnnotateError(lexer.Position{Filename: filename, Line: 1, Column: 1}, err)
	}
	return newParseContext(p, text, tokens), nil
}

// parseFile assembles records until only whitespace and comments remain.
func (c *parseContext) parseFile() ([]*Record, error) {
	var records []*Record
	for {
		record, err := c.parseRecord()
		if errors.Is(err, errEndOfInput) {
			if len(records) == 0 {
				return nil, c.fail(c.unexpected(`"name" field`))
			}
			return records, nil
		}
		if err != nil {
			return nil, c.fail(err)
		}
		records = append(records, record)
	}
}

// parseRecord assembles one entry: a name field followed by any other fields, up to but
// not including the next name field.
func (c *parseContext) parseRecord() (*Record, error) {
	field, tok, err := c.parseFieldName()
	if err != nil {
		return nil, err
	}
	if field != FieldName {
		return nil, &UnexpectedTokenError{Unexpected: tok, Expected: `"name" field`}
	}
	name, err := c.parseName()
	if err != nil {
		return nil, err
	}
	record := newRecord(tok.Pos, name)
	seen := map[Field]lexer.Position{}
	for {
		checkpoint := c.checkpoint()
		field, tok, err := c.parseFieldName()
		switch {
		case errors.Is(err, errEndOfInput):
			return record, nil
		case err != nil:
			return nil, err
		case field == FieldName:
			// The next entry starts here.
			c.restore(checkpoint)
			return record, nil
		}
		if previous, ok := seen[field]; ok && c.disallowDuplicates {
			return nil, &DuplicateFieldError{Field: field, Pos: tok.Pos, Previous: previous}
		}
		seen[field] = tok.Pos
		if err := c.parseFieldValue(field, record); err != nil {
			return nil, err
		}
	}
}
