package opgrammar_test

import (
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/require"

	"github.com/opgrammar/opgrammar"
)

type token struct {
	Type  string
	Value string
}

func lex(t *testing.T, text string) []token {
	t.Helper()
	l, err := opgrammar.Lexer.LexString("", text)
	require.NoError(t, err)
	tokens, err := lexer.ConsumeAll(l)
	require.NoError(t, err)
	names := lexer.SymbolsByRune(opgrammar.Lexer)
	out := []token{}
	for _, tok := range tokens {
		if tok.EOF() {
			break
		}
		out = append(out, token{names[tok.Type], tok.Value})
	}
	return out
}

func TestLexer(t *testing.T) {
	require.Equal(t, []token{
		{"Ident", "syntax"},
		{"Punct", ":"},
		{"Whitespace", " "},
		{"Ident", "expr1"},
		{"String", `"^"`},
		{"Punct", "("},
		{"Ident", "n"},
		{"Whitespace", " "},
		{"String", `","`},
		{"Close", ")*"},
		{"Whitespace", " "},
		{"NegNum", "-n"},
		{"Whitespace", " "},
		{"Number", "-1.5"},
		{"Whitespace", " "},
		{"NamedChar", `\[Alpha]`},
		{"Ident", "Head"},
		{"Punct", "["},
		{"Punct", "]"},
		{"Whitespace", " "},
		{"Comment", "# done"},
		{"Newline", "\n"},
	}, lex(t, `syntax: expr1"^"(n ",")* -n -1.5 \[Alpha]Head[] # done`+"\n"))
}

func TestLexerCloseSuffixes(t *testing.T) {
	require.Equal(t, []token{
		{"Close", ")+"},
		{"Close", ")?"},
		{"Close", ")"},
		{"Close", ")*"},
	}, lex(t, ")+)?))*"))
}

func TestLexerPositions(t *testing.T) {
	l, err := opgrammar.Lexer.LexString("ops.def", "name: A\nprecedence: 1")
	require.NoError(t, err)
	tokens, err := lexer.ConsumeAll(l)
	require.NoError(t, err)
	var precedence lexer.Token
	for _, tok := range tokens {
		if tok.Value == "precedence" {
			precedence = tok
		}
	}
	require.Equal(t, lexer.Position{Filename: "ops.def", Offset: 8, Line: 2, Column: 1}, precedence.Pos)
}
