package opgrammar

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/ebnf"
)

// EBNFStart is the start production of the grammar produced by EBNF.
const EBNFStart = "Expression"

// Productions referenced by metavariables, in output order.
var ebnfBuiltins = []struct {
	name string
	body string
}{
	{"NegativeNumber", `"-" Number`},
	{"Number", `Digit { Digit }`},
	{"Symbol", `Letter { Letter | Digit }`},
	{"Letter", `"A" … "Z" | "a" … "z"`},
	{"Digit", `"0" … "9"`},
	{"NoSpace", ``},
}

// EBNF renders the syntax patterns of records as an EBNF grammar in the notation of
// golang.org/x/exp/ebnf.
//
// Each record with a syntax pattern becomes a production named after the operator, with
// the first letter upper-cased. The start production, Expression, is any operator, number
// or symbol. The numbered expression metavariables all refer to Expression.
//
// Records without a syntax pattern are omitted, as are later records reusing a name.
func EBNF(records []*Record) string {
	// Number and Symbol are alternatives of the start production and pull in Letter
	// and Digit.
	used := map[string]bool{"Number": true, "Symbol": true, "Letter": true, "Digit": true}
	seen := map[string]bool{}
	for _, builtin := range ebnfBuiltins {
		seen[builtin.name] = true
	}
	seen[EBNFStart] = true
	type rule struct{ name, body string }
	productions := []rule{}
	for _, record := range records {
		syntax := record.Pattern(FieldSyntax)
		if _, ok := syntax.(Empty); ok || record.Name == "" {
			continue
		}
		name := ebnfName(record.Name)
		if seen[name] {
			if seen[name+"Op"] {
				continue
			}
			name += "Op"
		}
		seen[name] = true
		productions = append(productions, rule{name, ebnfExpr(syntax)})
		for _, mv := range Metavariables(syntax) {
			switch mv {
			case NegNum:
				used["NegativeNumber"] = true
			case NoSpace:
				used["NoSpace"] = true
			}
		}
	}

	w := &strings.Builder{}
	alternatives := []string{}
	for _, p := range productions {
		alternatives = append(alternatives, p.name)
	}
	alternatives = append(alternatives, "Number", "Symbol")
	fmt.Fprintf(w, "%s = %s .\n", EBNFStart, strings.Join(alternatives, " | "))
	for _, p := range productions {
		fmt.Fprintf(w, "%s = %s .\n", p.name, p.body)
	}
	for _, builtin := range ebnfBuiltins {
		switch {
		case !used[builtin.name]:
		case builtin.body == "":
			fmt.Fprintf(w, "%s = .\n", builtin.name)
		default:
			fmt.Fprintf(w, "%s = %s .\n", builtin.name, builtin.body)
		}
	}
	return w.String()
}

// VerifyEBNF checks that the grammar produced by EBNF for records parses and is complete:
// every referenced production is defined and every production is reachable.
func VerifyEBNF(records []*Record) error {
	grammar, err := ebnf.Parse("", strings.NewReader(EBNF(records)))
	if err != nil {
		return err
	}
	return ebnf.Verify(grammar, EBNFStart)
}

func ebnfName(name string) string {
	return strings.ToUpper(name[:1]) + name[1:]
}

func ebnfExpr(p Pattern) string {
	switch p := p.(type) {
	case Metavariable:
		switch p {
		case Expr1, Expr2, Expr3, Expr4:
			return EBNFStart
		case Num:
			return "Number"
		case NegNum:
			return "NegativeNumber"
		case Symbol:
			return "Symbol"
		case Comma:
			return strconv.Quote(",")
		case NoSpace:
			// An empty production, so that nospace is a term wherever it appears.
			return "NoSpace"
		}
		return ""

	case Word:
		return strconv.Quote(string(p))

	case Literal:
		return strconv.Quote(string(p))

	case NamedChar:
		return strconv.Quote(p.String())

	case Number:
		return strconv.Quote(p.String())

	case OnePlus:
		elem := ebnfTerm(p.Elem)
		if p.Delim == nil {
			return ebnfJoin(elem, "{", elem, "}")
		}
		return ebnfJoin(elem, "{", ebnfTerm(p.Delim), elem, "}")

	case ZeroPlus:
		elem := ebnfTerm(p.Elem)
		if p.Delim == nil {
			return ebnfJoin("{", elem, "}")
		}
		return ebnfJoin("[", elem, "{", ebnfTerm(p.Delim), elem, "}", "]")

	case Optional:
		return ebnfJoin("[", ebnfExpr(p.Elem), "]")

	case Application:
		parts := []string{ebnfTerm(p.Head), strconv.Quote("[")}
		for i, arg := range p.Args {
			if i > 0 {
				parts = append(parts, strconv.Quote(","))
			}
			parts = append(parts, ebnfTerm(arg))
		}
		return ebnfJoin(append(parts, strconv.Quote("]"))...)

	case Sequence:
		parts := make([]string, len(p))
		for i, elem := range p {
			parts[i] = ebnfTerm(elem)
		}
		return ebnfJoin(parts...)

	case DelimitedSequence:
		parts := []string{}
		for i, elem := range p.Elems {
			if i > 0 {
				parts = append(parts, ebnfTerm(p.Delim))
			}
			parts = append(parts, ebnfTerm(elem))
		}
		return ebnfJoin(parts...)

	case Alternation:
		options := make([]string, len(p))
		for i, option := range p {
			options[i] = ebnfExpr(option)
		}
		return "(" + strings.Join(options, " | ") + ")"
	}
	return ""
}

// term renders p so that it can be juxtaposed with other terms.
func ebnfTerm(p Pattern) string {
	s := ebnfExpr(p)
	switch p.(type) {
	case Sequence, DelimitedSequence, OnePlus, Application:
		if strings.Contains(s, " ") {
			return "(" + s + ")"
		}
	}
	return s
}

func ebnfJoin(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return strings.Join(out, " ")
}
