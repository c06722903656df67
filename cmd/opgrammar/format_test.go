package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/pelletier/go-toml"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/opgrammar/opgrammar"
)

func parseTestdata(t *testing.T) []*opgrammar.Record {
	t.Helper()
	fd, err := os.Open("testdata/operators.opg")
	require.NoError(t, err)
	defer fd.Close()
	records, err := opgrammar.MustNew().Parse("testdata/operators.opg", fd)
	require.NoError(t, err)
	require.Len(t, records, 2)
	return records
}

func TestRenderGolden(t *testing.T) {
	records := parseTestdata(t)
	for _, format := range []string{"text", "ebnf"} {
		t.Run(format, func(t *testing.T) {
			w := &bytes.Buffer{}
			err := render(w, format, records)
			require.NoError(t, err)
			g := goldie.New(t)
			g.Assert(t, format, w.Bytes())
		})
	}
}

func TestRenderDocuments(t *testing.T) {
	records := parseTestdata(t)
	expected := []document{
		{
			Name:          "Plus",
			Associativity: "full",
			Precedence:    310,
			Meaningful:    true,
			Syntax:        `(expr1 "+")+`,
			Parse:         "Plus[expr1, expr2]",
		},
		{
			Name:          "SubsuperscriptBox",
			Associativity: "right",
			Precedence:    590,
			Syntax:        `expr1 "^" expr2 "%" expr3`,
			Parse:         "SubsuperscriptBox[expr1, expr2, expr3]",
		},
	}

	t.Run("yaml", func(t *testing.T) {
		w := &bytes.Buffer{}
		require.NoError(t, render(w, "yaml", records))
		require.Contains(t, w.String(), "- name: SubsuperscriptBox\n")
		require.NotContains(t, w.String(), "fullform")
		actual := []document{}
		require.NoError(t, yaml.Unmarshal(w.Bytes(), &actual))
		require.Equal(t, expected, actual)
	})

	t.Run("toml", func(t *testing.T) {
		w := &bytes.Buffer{}
		require.NoError(t, render(w, "toml", records))
		require.Contains(t, w.String(), "[[operator]]")
		actual := tomlDocument{}
		require.NoError(t, toml.Unmarshal(w.Bytes(), &actual))
		require.Equal(t, expected, actual.Operators)
	})
}

func TestRenderRepr(t *testing.T) {
	w := &bytes.Buffer{}
	require.NoError(t, render(w, "repr", parseTestdata(t)))
	require.Contains(t, w.String(), `Name: "SubsuperscriptBox"`)
	require.Contains(t, w.String(), `Precedence: 590`)
}

func TestRenderUnsupportedFormat(t *testing.T) {
	err := render(&bytes.Buffer{}, "xml", nil)
	require.EqualError(t, err, `unsupported format "xml"`)
}
