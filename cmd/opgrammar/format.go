package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/repr"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v2"

	"github.com/opgrammar/opgrammar"
)

// document is the serialised form of a record. Patterns are rendered in the definition
// file notation and omitted when absent.
type document struct {
	Name          string `yaml:"name" toml:"name"`
	Associativity string `yaml:"associativity" toml:"associativity"`
	Precedence    int64  `yaml:"precedence" toml:"precedence"`
	Meaningful    bool   `yaml:"meaningful" toml:"meaningful"`
	Syntax        string `yaml:"syntax,omitempty" toml:"syntax,omitempty"`
	Parse         string `yaml:"parse,omitempty" toml:"parse,omitempty"`
	FullForm      string `yaml:"fullform,omitempty" toml:"fullform,omitempty"`
}

type tomlDocument struct {
	Operators []document `toml:"operator"`
}

func documents(records []*opgrammar.Record) []document {
	out := make([]document, 0, len(records))
	for _, record := range records {
		out = append(out, document{
			Name:          record.Name,
			Associativity: record.Associativity.String(),
			Precedence:    int64(record.Precedence),
			Meaningful:    record.Meaningful,
			Syntax:        patternText(record.Pattern(opgrammar.FieldSyntax)),
			Parse:         patternText(record.Pattern(opgrammar.FieldParse)),
			FullForm:      patternText(record.Pattern(opgrammar.FieldFullForm)),
		})
	}
	return out
}

func patternText(p opgrammar.Pattern) string {
	if _, ok := p.(opgrammar.Empty); ok {
		return ""
	}
	return p.String()
}

// render records to w in the given format.
func render(w io.Writer, format string, records []*opgrammar.Record) error {
	switch format {
	case "text":
		for _, record := range records {
			if _, err := fmt.Fprintln(w, record); err != nil {
				return err
			}
		}
		return nil

	case "repr":
		repr.New(w, repr.Indent("  ")).Println(records)
		return nil

	case "yaml":
		data, err := yaml.Marshal(documents(records))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	case "toml":
		data, err := toml.Marshal(tomlDocument{Operators: documents(records)})
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	case "ebnf":
		if err := opgrammar.VerifyEBNF(records); err != nil {
			return fmt.Errorf("invalid EBNF: %w", err)
		}
		_, err := io.WriteString(w, opgrammar.EBNF(records))
		return err
	}
	return fmt.Errorf("unsupported format %q", format)
}
