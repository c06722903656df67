package opgrammar

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Field identifies a field of an entry.
type Field int

// Fields.
const (
	FieldUnknown Field = iota
	FieldName
	FieldAssociativity
	FieldPrecedence
	FieldMeaningful
	FieldSyntax
	FieldParse
	FieldFullForm
)

var fieldKeywords = map[string]Field{
	"name":          FieldName,
	"associativity": FieldAssociativity,
	"precedence":    FieldPrecedence,
	"meaningful":    FieldMeaningful,
	"syntax":        FieldSyntax,
	"grammar":       FieldSyntax,
	"parse":         FieldParse,
	"fullform":      FieldFullForm,
}

// LookupField returns the Field named by name, case-insensitively, or FieldUnknown.
func LookupField(name string) Field {
	return fieldKeywords[strings.ToLower(name)]
}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldAssociativity:
		return "associativity"
	case FieldPrecedence:
		return "precedence"
	case FieldMeaningful:
		return "meaningful"
	case FieldSyntax:
		return "syntax"
	case FieldParse:
		return "parse"
	case FieldFullForm:
		return "fullform"
	}
	return "unknown"
}

// Associativity of an operator.
//
// The zero value, AssocNon, is the default for entries without an associativity field.
type Associativity int

// Associativities.
const (
	AssocNon Associativity = iota
	AssocLeft
	AssocRight
	AssocFull
)

var associativityKeywords = map[string]Associativity{
	"non":   AssocNon,
	"none":  AssocNon,
	"left":  AssocLeft,
	"right": AssocRight,
	"full":  AssocFull,
}

// LookupAssociativity returns the Associativity spelled by keyword, case-insensitively.
func LookupAssociativity(keyword string) (Associativity, bool) {
	a, ok := associativityKeywords[strings.ToLower(keyword)]
	return a, ok
}

func (a Associativity) String() string {
	switch a {
	case AssocLeft:
		return "left"
	case AssocRight:
		return "right"
	case AssocFull:
		return "full"
	}
	return "non"
}

// MarshalText implements encoding.TextMarshaler.
func (a Associativity) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Associativity) UnmarshalText(text []byte) error {
	assoc, ok := LookupAssociativity(string(text))
	if !ok {
		return fmt.Errorf("invalid associativity %q", text)
	}
	*a = assoc
	return nil
}

// A Record describes a single operator.
type Record struct {
	// Pos is the position of the entry's name field.
	Pos lexer.Position

	Name          string
	Associativity Associativity
	Precedence    uint32
	Meaningful    bool
	Syntax        Pattern
	Parse         Pattern
	FullForm      Pattern
}

func newRecord(pos lexer.Position, name string) *Record {
	return &Record{
		Pos:           pos,
		Name:          name,
		Associativity: AssocNon,
		Syntax:        Empty{},
		Parse:         Empty{},
		FullForm:      Empty{},
	}
}

// Pattern returns the pattern held by one of the pattern fields.
func (r *Record) Pattern(field Field) Pattern {
	var p Pattern
	switch field {
	case FieldSyntax:
		p = r.Syntax
	case FieldParse:
		p = r.Parse
	case FieldFullForm:
		p = r.FullForm
	}
	if p == nil {
		return Empty{}
	}
	return p
}

func (r *Record) String() string {
	w := &strings.Builder{}
	fmt.Fprintf(w, "Record{\n")
	fmt.Fprintf(w, "  name: %s\n", r.Name)
	fmt.Fprintf(w, "  associativity: %s\n", r.Associativity)
	fmt.Fprintf(w, "  precedence: %d\n", r.Precedence)
	fmt.Fprintf(w, "  meaningful: %t\n", r.Meaningful)
	fmt.Fprintf(w, "  syntax: %s\n", r.Pattern(FieldSyntax))
	fmt.Fprintf(w, "  parse: %s\n", r.Pattern(FieldParse))
	fmt.Fprintf(w, "  fullform: %s\n", r.Pattern(FieldFullForm))
	fmt.Fprintf(w, "}")
	return w.String()
}
