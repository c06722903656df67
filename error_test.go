package opgrammar_test

import (
	"errors"
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/require"

	"github.com/opgrammar/opgrammar"
)

func TestErrorReporting(t *testing.T) {
	p := opgrammar.MustNew()
	_, err := p.ParseString("", "name: Op\nsyntax: expr1 )\n")
	require.EqualError(t, err, "2:15: unexpected token \")\" (expected end of line)\nunparsed input:\n)")
	_, err = p.ParseString("", "name: Op\nprecedence: high\n")
	require.EqualError(t, err, "2:13: unexpected token \"high\" (expected precedence)\nunparsed input:\nhigh")
	_, err = p.ParseString("", "name: Op\nsyntax:")
	require.EqualError(t, err, `2:8: unexpected end of input (expected metavariable or word, literal, named character, "(" or number)`)
}

func TestErrorWrap(t *testing.T) {
	pos := lexer.Position{Line: 1, Column: 1}
	expected := errors.New("badbad")
	err := opgrammar.AnnotateError(pos, expected)
	require.Equal(t, "1:1: badbad", err.Error())
	require.Equal(t, "badbad", err.Message())

	errf := opgrammar.Errorf(lexer.Position{Filename: "ops.def", Line: 3, Column: 7}, "bad %s", "thing")
	require.Equal(t, "ops.def:3:7: bad thing", errf.Error())
	require.Equal(t, errf, opgrammar.AnnotateError(pos, errf))
}

func TestParseErrorUnwrap(t *testing.T) {
	_, err := opgrammar.MustNew().ParseString("", "name: Op\nsyntax: expr1\nsideways: yes\n")
	var perr *opgrammar.ParseError
	require.True(t, errors.As(err, &perr))
	var uerr *opgrammar.UnknownFieldError
	require.True(t, errors.As(err, &uerr))
	require.Equal(t, "sideways", uerr.Name)
	require.Equal(t, uerr.Position(), perr.Position())
	require.Equal(t, `unknown field "sideways"`, perr.Message())
	require.Equal(t, "sideways: yes\n", perr.Remaining)
}
