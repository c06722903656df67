// Package main generates Railroad Diagrams from the syntax patterns of operator definition files.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/opgrammar/opgrammar"
)

var (
	files  = kingpin.Arg("files", "Operator definition files.").Required().ExistingFiles()
	output = kingpin.Flag("output", "Write the HTML to this file instead of stdout.").Short('o').String()
	field  = kingpin.Flag("field", "Pattern field to draw.").Default("syntax").Enum("syntax", "parse", "fullform")
)

const header = `<!DOCTYPE html>
<style>
body {
	background-color: hsl(30,20%, 95%);
}
h1 {
	font-family: sans-serif;
	font-size: 1em;
}
</style>
<!-- From https://github.com/tabatkins/railroad-diagrams -->
<link rel='stylesheet' href='railroad-diagrams.css'>
<script src='railroad-diagrams.js'></script>
<body>
`

// generate an HTML page with one diagram per record that has a pattern in field.
func generate(records []*opgrammar.Record, field opgrammar.Field) (s string) {
	s += header
	for _, record := range records {
		p := record.Pattern(field)
		if _, ok := p.(opgrammar.Empty); ok {
			continue
		}
		s += `<h1 id="` + record.Name + `">` + record.Name + "</h1>\n"
		s += "<script>\n"
		s += "Diagram(" + diagram(p) + ").addTo();\n"
		s += "</script>\n"
	}
	s += "</body>\n"
	return
}

func diagram(p opgrammar.Pattern) (s string) {
	switch p := p.(type) {
	case opgrammar.Metavariable:
		switch p {
		case opgrammar.Comma:
			s = fmt.Sprintf("Terminal(%q)", p.String())
		case opgrammar.NoSpace:
			s = fmt.Sprintf("Comment(%q)", p.String())
		default:
			s = fmt.Sprintf("NonTerminal(%q)", p.String())
		}

	case opgrammar.Word:
		s = fmt.Sprintf("Terminal(%q)", string(p))

	case opgrammar.Literal:
		s = fmt.Sprintf("Terminal(%q)", string(p))

	case opgrammar.NamedChar, opgrammar.Number:
		s = fmt.Sprintf("Terminal(%q)", p.String())

	case opgrammar.OnePlus:
		s = repetition("OneOrMore", p.Elem, p.Delim)

	case opgrammar.ZeroPlus:
		s = repetition("ZeroOrMore", p.Elem, p.Delim)

	case opgrammar.Optional:
		s = "Optional(" + diagram(p.Elem) + ")"

	case opgrammar.Application:
		terms := []string{diagram(p.Head), `Terminal("[")`}
		for i, arg := range p.Args {
			if i > 0 {
				terms = append(terms, `Terminal(",")`)
			}
			terms = append(terms, diagram(arg))
		}
		s = "Sequence(" + strings.Join(append(terms, `Terminal("]")`), ", ") + ")"

	case opgrammar.Sequence:
		s = "Sequence(" + diagrams(p, "") + ")"

	case opgrammar.DelimitedSequence:
		s = "Sequence(" + diagrams(p.Elems, diagram(p.Delim)) + ")"

	case opgrammar.Alternation:
		s = "Choice(0, " + diagrams(p, "") + ")"

	case opgrammar.Empty:
		s = "Skip()"

	default:
		panic(repr.String(p))
	}
	return
}

func repetition(kind string, elem, delim opgrammar.Pattern) string {
	if delim == nil {
		return kind + "(" + diagram(elem) + ")"
	}
	return kind + "(" + diagram(elem) + ", " + diagram(delim) + ")"
}

// diagrams joins the diagrams of patterns, with sep between each pair if it is not empty.
func diagrams(patterns []opgrammar.Pattern, sep string) string {
	terms := []string{}
	for i, p := range patterns {
		if i > 0 && sep != "" {
			terms = append(terms, sep)
		}
		terms = append(terms, diagram(p))
	}
	return strings.Join(terms, ", ")
}

func main() {
	kingpin.CommandLine.Help = `Generates railroad diagrams from operator definition files.

Copy railroad-diagrams.{css,js} from https://github.com/tabatkins/railroad-diagrams
alongside the generated page.`
	kingpin.Parse()

	parser := opgrammar.MustNew()
	var records []*opgrammar.Record
	for _, name := range *files {
		fd, err := os.Open(name)
		kingpin.FatalIfError(err, "")
		parsed, err := parser.Parse(name, fd)
		_ = fd.Close()
		kingpin.FatalIfError(err, "")
		records = append(records, parsed...)
	}

	html := generate(records, opgrammar.LookupField(*field))
	if *output == "" {
		_, err := io.WriteString(os.Stdout, html)
		kingpin.FatalIfError(err, "")
		return
	}
	err := os.WriteFile(*output, []byte(html), 0600)
	kingpin.FatalIfError(err, "")
}
