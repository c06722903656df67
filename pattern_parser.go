package opgrammar

import (
	"math"
	"strconv"
)

// A production is one alternative of the pattern grammar.
type production struct {
	name  string
	parse func(c *parseContext) (Pattern, error)
}

// patternProductions in priority order. The first to match wins.
var patternProductions []production

func init() {
	patternProductions = []production{
		{"application", parseApplication},
		{"metavariable", parseMetavariable},
		{"literal", parseLiteral},
		{"named character", parseNamedChar},
		{"optional", parseOptional},
		{"alternation", parseAlternation},
		{"number", parseNumber},
		{"delimited one-or-more", parseRepetition("+", true)},
		{"delimited zero-or-more", parseRepetition("*", true)},
		{"one-or-more", parseRepetition("+", false)},
		{"zero-or-more", parseRepetition("*", false)},
		{"skip", parseSkip},
		{"sequence", parseSequence},
	}
}

// parsePattern parses a single pattern by ordered choice.
//
// On failure the cursor is left where it started and the furthest failure of any
// alternative is returned.
func (c *parseContext) parsePattern() (Pattern, error) {
	start := c.cursor
	if c.memo != nil {
		if m, ok := c.memo[start]; ok {
			if m.err != nil {
				c.recordFailure(m.err)
				return nil, m.err
			}
			c.cursor = m.end
			return m.pattern, nil
		}
	}
	var failure error
	for _, prod := range patternProductions {
		p, err := c.traced(prod)
		if err == nil {
			c.remember(start, p, nil)
			return p, nil
		}
		c.restore(start)
		failure = deeper(failure, err)
	}
	c.recordFailure(failure)
	c.remember(start, nil, failure)
	return nil, failure
}

func (c *parseContext) remember(start int, p Pattern, err error) {
	if c.memo == nil {
		return
	}
	c.memo[start] = memoEntry{pattern: p, end: c.cursor, err: err}
}

// parsePatternValue parses the value of a syntax, parse or fullform field: a sequence
// followed by the end of the line.
func (c *parseContext) parsePatternValue() (Pattern, error) {
	c.deepestError = nil
	p, err := parseSequence(c)
	if err != nil {
		return nil, err
	}
	if err := c.endOfLine(); err != nil {
		// A failure past the end of the sequence explains more than the missing newline.
		if errorOffset(c.deepestError) > errorOffset(err) {
			return nil, c.deepestError
		}
		return nil, err
	}
	return p, nil
}

// Head "[" [ pattern { "," pattern } ] "]"
//
// The head must be immediately followed by the bracket.
func parseApplication(c *parseContext) (Pattern, error) {
	head, err := parseMetavariable(c)
	if err != nil {
		return nil, err
	}
	if _, err := c.expect(c.types.punct, "["); err != nil {
		return nil, err
	}
	var args []Pattern
	c.skipSpace()
	if c.accept(c.types.punct, "]") {
		return Application{Head: head, Args: args}, nil
	}
	for {
		arg, err := c.parsePattern()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		c.skipSpace()
		if c.accept(c.types.punct, ",") {
			c.skipSpace()
			continue
		}
		if _, err := c.expect(c.types.punct, "]"); err != nil {
			return nil, err
		}
		return Application{Head: head, Args: args}, nil
	}
}

func parseMetavariable(c *parseContext) (Pattern, error) {
	tok := c.peek()
	switch {
	case tok.Type == c.types.ident:
		c.next()
		if mv, ok := LookupMetavariable(tok.Value); ok {
			return mv, nil
		}
		return Word(tok.Value), nil

	case tok.Type == c.types.negNum:
		c.next()
		return NegNum, nil

	case tok.Type == c.types.punct && tok.Value == ",":
		c.next()
		return Comma, nil
	}
	return nil, c.unexpected("metavariable or word")
}

func parseLiteral(c *parseContext) (Pattern, error) {
	tok := c.peek()
	if tok.Type != c.types.str {
		return nil, c.unexpected("literal")
	}
	c.next()
	return Literal(tok.Value[1 : len(tok.Value)-1]), nil
}

func parseNamedChar(c *parseContext) (Pattern, error) {
	tok := c.peek()
	if tok.Type != c.types.namedChar {
		return nil, c.unexpected("named character")
	}
	c.next()
	return NamedChar(tok.Value[2 : len(tok.Value)-1]), nil
}

func parseNumber(c *parseContext) (Pattern, error) {
	tok := c.peek()
	if tok.Type != c.types.number {
		return nil, c.unexpected("number")
	}
	f, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		return nil, Errorf(tok.Pos, "invalid number %q: %s", tok.Value, err)
	}
	f = math.Trunc(f)
	if f < math.MinInt32 || f > math.MaxInt32 {
		return nil, Errorf(tok.Pos, "number %s out of range", tok.Value)
	}
	c.next()
	return Number(int(f)), nil
}

// "(" sequence ")?"
func parseOptional(c *parseContext) (Pattern, error) {
	if _, err := c.expect(c.types.punct, "("); err != nil {
		return nil, err
	}
	elem, err := parseSequence(c)
	if err != nil {
		return nil, err
	}
	if err := c.closeGroup(")?"); err != nil {
		return nil, err
	}
	return Optional{Elem: elem}, nil
}

// "(" sequence "|" sequence { "|" sequence } ")"
func parseAlternation(c *parseContext) (Pattern, error) {
	if _, err := c.expect(c.types.punct, "("); err != nil {
		return nil, err
	}
	var options Alternation
	for {
		option, err := parseSequence(c)
		if err != nil {
			return nil, err
		}
		options = append(options, option)
		c.skipSpace()
		if !c.accept(c.types.punct, "|") {
			break
		}
	}
	if len(options) < 2 {
		return nil, c.unexpected(`"|"`)
	}
	if err := c.closeGroup(")"); err != nil {
		return nil, err
	}
	return options, nil
}

// parseRepetition builds the four repetition productions:
//
//     "(" pattern pattern ")+"    delimited
//     "(" sequence ")+"           undelimited
//
// and the same with ")*".
func parseRepetition(suffix string, delimited bool) func(c *parseContext) (Pattern, error) {
	return func(c *parseContext) (Pattern, error) {
		if _, err := c.expect(c.types.punct, "("); err != nil {
			return nil, err
		}
		var (
			elem, delim Pattern
			err         error
		)
		if delimited {
			if elem, err = c.parsePattern(); err != nil {
				return nil, err
			}
			if delim, err = c.parsePattern(); err != nil {
				return nil, err
			}
		} else if elem, err = parseSequence(c); err != nil {
			return nil, err
		}
		if err := c.closeGroup(")" + suffix); err != nil {
			return nil, err
		}
		if suffix == "+" {
			return OnePlus{Elem: elem, Delim: delim}, nil
		}
		return ZeroPlus{Elem: elem, Delim: delim}, nil
	}
}

// closeGroup matches optional whitespace followed by the given closing token.
func (c *parseContext) closeGroup(closer string) error {
	c.skipSpace()
	_, err := c.expect(c.types.close, closer)
	return err
}

// Whitespace is discarded before another pattern.
func parseSkip(c *parseContext) (Pattern, error) {
	if c.peek().Type != c.types.whitespace {
		return nil, c.unexpected("")
	}
	c.skipSpace()
	return c.parsePattern()
}

// parseSequence matches one or more adjacent patterns. A single pattern is returned as is.
//
// The production may not be re-entered at the cursor it is already active at: each of its
// elements is itself an ordered choice that ends with this production.
func parseSequence(c *parseContext) (Pattern, error) {
	release, ok := c.enterSequence()
	if !ok {
		return nil, c.unexpected("")
	}
	defer release()
	var seq Sequence
	for {
		start := c.checkpoint()
		p, err := c.parsePattern()
		if err != nil {
			c.restore(start)
			if len(seq) == 0 {
				return nil, err
			}
			break
		}
		seq = append(seq, p)
	}
	if len(seq) == 1 {
		return seq[0], nil
	}
	return seq, nil
}
