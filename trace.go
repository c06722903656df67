package opgrammar

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

func (c *parseContext) tracef(format string, args ...interface{}) {
	if c.trace == nil {
		return
	}
	tok := c.peek()
	fmt.Fprintf(c.trace, "%s%q %s %s\n",
		strings.Repeat(" ", c.depth*2), tokenString(tok), c.types.name(tok), fmt.Sprintf(format, args...))
}

// traced wraps a pattern production so that entering it is reported to the trace writer.
func (c *parseContext) traced(prod production) (Pattern, error) {
	c.tracef("%s", prod.name)
	c.depth++
	defer func() { c.depth-- }()
	return prod.parse(c)
}

func tokenString(tok lexer.Token) string {
	if tok.EOF() {
		return "<EOF>"
	}
	return tok.Value
}
