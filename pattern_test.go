package opgrammar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opgrammar/opgrammar"
)

// patternVocabulary holds one or more instances of every pattern variant.
var patternVocabulary = []struct {
	pattern  opgrammar.Pattern
	rendered string
}{
	{opgrammar.Expr1, "expr1"},
	{opgrammar.Expr2, "expr2"},
	{opgrammar.Expr3, "expr3"},
	{opgrammar.Expr4, "expr4"},
	{opgrammar.Num, "n"},
	{opgrammar.NegNum, "-n"},
	{opgrammar.Symbol, "symb"},
	{opgrammar.Comma, ","},
	{opgrammar.NoSpace, "nospace"},
	{opgrammar.Word("Plus"), "Plus"},
	{opgrammar.Literal("^"), `"^"`},
	{opgrammar.Literal(","), `","`},
	{opgrammar.NamedChar("Alpha"), `\[Alpha]`},
	{opgrammar.Number(42), "42"},
	{opgrammar.OnePlus{Elem: opgrammar.Expr1}, "(expr1)+"},
	{opgrammar.OnePlus{Elem: opgrammar.Expr1, Delim: opgrammar.Literal(",")}, `(expr1 ",")+`},
	{opgrammar.ZeroPlus{Elem: opgrammar.Expr1}, "(expr1)*"},
	{opgrammar.ZeroPlus{Elem: opgrammar.Expr1, Delim: opgrammar.Literal(",")}, `(expr1 ",")*`},
	{opgrammar.Optional{Elem: opgrammar.Expr1}, "(expr1)?"},
	{opgrammar.Optional{Elem: opgrammar.Sequence{opgrammar.Literal("^"), opgrammar.Expr2}}, `("^" expr2)?`},
	{opgrammar.OnePlus{Elem: opgrammar.Sequence{opgrammar.Expr1, opgrammar.Literal(",")}}, `((expr1 ","))+`},
	{opgrammar.Application{
		Head: opgrammar.Word("SubsuperscriptBox"),
		Args: []opgrammar.Pattern{opgrammar.Expr1, opgrammar.Expr2, opgrammar.Expr3},
	}, "SubsuperscriptBox[expr1, expr2, expr3]"},
	{opgrammar.Application{Head: opgrammar.Word("Box")}, "Box[]"},
	{opgrammar.Sequence{opgrammar.Expr1, opgrammar.Literal("^"), opgrammar.Expr2}, `expr1 "^" expr2`},
	{opgrammar.Sequence{opgrammar.Expr1, opgrammar.Sequence{opgrammar.Literal("^"), opgrammar.Expr2}}, `expr1 ("^" expr2)`},
	{opgrammar.DelimitedSequence{
		Elems: []opgrammar.Pattern{opgrammar.Expr1, opgrammar.Expr2},
		Delim: opgrammar.Literal(","),
	}, `{expr1 expr2}/","`},
	{opgrammar.Alternation{opgrammar.Literal("a"), opgrammar.Expr1}, `("a" | expr1)`},
	{opgrammar.Alternation{opgrammar.Sequence{opgrammar.Literal("a"), opgrammar.Expr1}, opgrammar.Expr2}, `("a" expr1 | expr2)`},
	{opgrammar.Empty{}, "<empty>"},
}

func TestPatternString(t *testing.T) {
	for _, test := range patternVocabulary {
		t.Run(test.rendered, func(t *testing.T) {
			require.Equal(t, test.rendered, test.pattern.String())
		})
	}
}

func TestPatternRenderingDistinguishesStructure(t *testing.T) {
	for i, a := range patternVocabulary {
		for j, b := range patternVocabulary {
			equal := opgrammar.Equal(a.pattern, b.pattern)
			require.Equal(t, i == j, equal, "%s vs %s", a.rendered, b.rendered)
			require.Equal(t, equal, a.pattern.String() == b.pattern.String(), "%s vs %s", a.rendered, b.rendered)
		}
	}
}

func TestEqual(t *testing.T) {
	seq := func() opgrammar.Pattern {
		return opgrammar.Sequence{opgrammar.Expr1, opgrammar.OnePlus{Elem: opgrammar.Expr2, Delim: opgrammar.Comma}}
	}
	require.True(t, opgrammar.Equal(seq(), seq()))
	require.True(t, opgrammar.Equal(nil, opgrammar.Empty{}))
	require.False(t, opgrammar.Equal(opgrammar.Word("expr1"), opgrammar.Expr1))
	require.False(t, opgrammar.Equal(
		opgrammar.OnePlus{Elem: opgrammar.Expr1},
		opgrammar.OnePlus{Elem: opgrammar.Expr1, Delim: opgrammar.Empty{}},
	))
	require.False(t, opgrammar.Equal(
		opgrammar.Sequence{opgrammar.Expr1},
		opgrammar.Sequence{opgrammar.Expr1, opgrammar.Expr1},
	))
	require.False(t, opgrammar.Equal(
		opgrammar.Sequence{opgrammar.Expr1, opgrammar.Expr2},
		opgrammar.Alternation{opgrammar.Expr1, opgrammar.Expr2},
	))
}

func TestLookupMetavariable(t *testing.T) {
	for _, keyword := range []string{"expr1", "EXPR1", "Expr1"} {
		mv, ok := opgrammar.LookupMetavariable(keyword)
		require.True(t, ok, keyword)
		require.Equal(t, opgrammar.Expr1, mv)
	}
	_, ok := opgrammar.LookupMetavariable("expression")
	require.False(t, ok)
}

func TestMetavariables(t *testing.T) {
	p, err := opgrammar.MustNew().ParsePattern("", `(expr2 | symb) Plus[expr1, (expr2 ",")*, -n] expr1`)
	require.NoError(t, err)
	require.Equal(t, []opgrammar.Metavariable{
		opgrammar.Expr2, opgrammar.Symbol, opgrammar.Expr1, opgrammar.NegNum,
	}, opgrammar.Metavariables(p))
	require.Empty(t, opgrammar.Metavariables(opgrammar.Empty{}))
}

func TestVisitSkipsChildrenUnlessNextIsCalled(t *testing.T) {
	p := opgrammar.Sequence{
		opgrammar.Optional{Elem: opgrammar.Expr1},
		opgrammar.Application{Head: opgrammar.Word("Box"), Args: []opgrammar.Pattern{opgrammar.Expr2}},
	}
	visited := []string{}
	err := opgrammar.Visit(p, func(p opgrammar.Pattern, next func() error) error {
		visited = append(visited, p.String())
		if _, ok := p.(opgrammar.Optional); ok {
			return nil
		}
		return next()
	})
	require.NoError(t, err)
	require.Equal(t, []string{"(expr1)? Box[expr2]", "(expr1)?", "Box[expr2]", "Box", "expr2"}, visited)
}
