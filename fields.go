package opgrammar

import (
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// parseFieldName skips blank lines and comments then reads "<field>:".
//
// errEndOfInput is returned if nothing but whitespace and comments remains.
func (c *parseContext) parseFieldName() (Field, lexer.Token, error) {
	c.skipTrivia()
	tok := c.peek()
	if tok.EOF() {
		return FieldUnknown, tok, errEndOfInput
	}
	if tok.Type != c.types.ident {
		return FieldUnknown, tok, c.unexpected("field name")
	}
	c.next()
	if _, err := c.expect(c.types.punct, ":"); err != nil {
		return FieldUnknown, tok, err
	}
	field := LookupField(tok.Value)
	if field == FieldUnknown {
		return FieldUnknown, tok, &UnknownFieldError{Name: tok.Value, Pos: tok.Pos}
	}
	c.tracef("field %s", field)
	return field, tok, nil
}

// parseFieldValue parses the value of field into the corresponding slot of record.
func (c *parseContext) parseFieldValue(field Field, record *Record) (err error) {
	switch field {
	case FieldAssociativity:
		record.Associativity, err = c.parseAssociativity()
	case FieldPrecedence:
		record.Precedence, err = c.parsePrecedence()
	case FieldMeaningful:
		record.Meaningful, err = c.parseMeaningful()
	case FieldSyntax:
		record.Syntax, err = c.parsePatternValue()
	case FieldParse:
		record.Parse, err = c.parsePatternValue()
	case FieldFullForm:
		record.FullForm, err = c.parsePatternValue()
	default:
		// Names start entries and are handled by the record assembler.
		return c.unexpected("field value")
	}
	return err
}

// parseName parses the operator name of a "name:" field.
func (c *parseContext) parseName() (string, error) {
	c.skipSpace()
	tok := c.peek()
	if tok.Type != c.types.ident || !isLetters(tok.Value) {
		return "", c.unexpected("operator name")
	}
	c.next()
	return tok.Value, c.endOfLine()
}

func (c *parseContext) parseAssociativity() (Associativity, error) {
	c.skipSpace()
	tok := c.peek()
	assoc, ok := LookupAssociativity(tok.Value)
	if tok.Type != c.types.ident || !ok {
		return AssocNon, c.unexpected(`"left", "right", "non", "none" or "full"`)
	}
	c.next()
	return assoc, c.endOfLine()
}

// parsePrecedence parses a number, truncated toward zero and clamped to the range of a
// uint32.
func (c *parseContext) parsePrecedence() (uint32, error) {
	c.skipSpace()
	tok := c.peek()
	if tok.Type != c.types.number {
		return 0, c.unexpected("precedence")
	}
	f, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		return 0, Errorf(tok.Pos, "invalid precedence %q: %s", tok.Value, err)
	}
	c.next()
	var precedence uint32
	switch f = math.Trunc(f); {
	case f <= 0:
		precedence = 0
	case f >= math.MaxUint32:
		precedence = math.MaxUint32
	default:
		precedence = uint32(f)
	}
	return precedence, c.endOfLine()
}

func (c *parseContext) parseMeaningful() (bool, error) {
	c.skipSpace()
	tok := c.peek()
	if tok.Type == c.types.ident {
		switch strings.ToLower(tok.Value) {
		case "true":
			c.next()
			return true, c.endOfLine()
		case "false":
			c.next()
			return false, c.endOfLine()
		}
	}
	return false, c.unexpected(`"true" or "false"`)
}

func isLetters(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return s != ""
}
