package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opgrammar/opgrammar"
)

func TestDiagram(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{`expr1 "^" expr2`, `Sequence(NonTerminal("expr1"), Terminal("^"), NonTerminal("expr2"))`},
		{`(expr1 ",")+`, `OneOrMore(NonTerminal("expr1"), Terminal(","))`},
		{`(expr1)*`, `ZeroOrMore(NonTerminal("expr1"))`},
		{`(symb)?`, `Optional(NonTerminal("symb"))`},
		{`("+" | "-" | nospace)`, `Choice(0, Terminal("+"), Terminal("-"), Comment("nospace"))`},
		{`Plus[expr1, n]`, `Sequence(Terminal("Plus"), Terminal("["), NonTerminal("expr1"), Terminal(","), NonTerminal("n"), Terminal("]"))`},
		{`\[Alpha] 7`, `Sequence(Terminal("\\[Alpha]"), Terminal("7"))`},
	}
	parser := opgrammar.MustNew()
	for _, test := range tests {
		t.Run(test.source, func(t *testing.T) {
			p, err := parser.ParsePattern("", test.source)
			require.NoError(t, err)
			require.Equal(t, test.expected, diagram(p))
		})
	}
}

func TestGenerate(t *testing.T) {
	records, err := opgrammar.MustNew().ParseString("", "name: Plus\nsyntax: (expr1 \"+\")+\nname: Box\nparse: Box[expr1]\n")
	require.NoError(t, err)

	html := generate(records, opgrammar.FieldSyntax)
	require.Contains(t, html, `<h1 id="Plus">Plus</h1>`)
	require.Contains(t, html, `Diagram(OneOrMore(NonTerminal("expr1"), Terminal("+"))).addTo();`)
	require.NotContains(t, html, "Box")

	html = generate(records, opgrammar.FieldParse)
	require.Contains(t, html, `<h1 id="Box">Box</h1>`)
	require.NotContains(t, html, `id="Plus"`)
}
