package opgrammar

import (
	"strconv"
	"strings"
)

// A Pattern is a node in a parsed syntax, parse or fullform expression.
//
// The set of implementations is closed. Patterns are immutable once built and may be
// shared between records.
type Pattern interface {
	// String renders the pattern canonically. Structurally equal patterns render
	// identically.
	String() string
	pattern()
}

// Metavariable is a reserved placeholder standing in for a class of sub-expressions.
type Metavariable int

// Metavariables.
const (
	Expr1 Metavariable = iota + 1
	Expr2
	Expr3
	Expr4
	Num     // n
	NegNum  // -n
	Symbol  // symb
	Comma   // ,
	NoSpace // nospace
)

var metavariableNames = map[Metavariable]string{
	Expr1:   "expr1",
	Expr2:   "expr2",
	Expr3:   "expr3",
	Expr4:   "expr4",
	Num:     "n",
	NegNum:  "-n",
	Symbol:  "symb",
	Comma:   ",",
	NoSpace: "nospace",
}

// Keywords are matched case-insensitively against whole identifiers.
var metavariableKeywords = func() map[string]Metavariable {
	out := make(map[string]Metavariable, len(metavariableNames))
	for mv, name := range metavariableNames {
		out[name] = mv
	}
	return out
}()

// LookupMetavariable returns the metavariable spelled by keyword, if any.
func LookupMetavariable(keyword string) (Metavariable, bool) {
	mv, ok := metavariableKeywords[strings.ToLower(keyword)]
	return mv, ok
}

func (m Metavariable) String() string {
	if name, ok := metavariableNames[m]; ok {
		return name
	}
	return "Metavariable(" + strconv.Itoa(int(m)) + ")"
}

// Word is an identifier that is not a metavariable keyword.
type Word string

func (w Word) String() string { return string(w) }

// Literal text, matched verbatim.
type Literal string

func (l Literal) String() string { return `"` + string(l) + `"` }

// NamedChar is a named character escape, eg. \[Alpha].
type NamedChar string

func (n NamedChar) String() string { return `\[` + string(n) + `]` }

// Number is a bare numeric literal.
type Number int

func (n Number) String() string { return strconv.Itoa(int(n)) }

// OnePlus matches Elem one or more times, separated by Delim if it is not nil.
type OnePlus struct {
	Elem  Pattern
	Delim Pattern
}

func (o OnePlus) String() string { return repetitionString(o.Elem, o.Delim, "+") }

// ZeroPlus matches Elem zero or more times, separated by Delim if it is not nil.
type ZeroPlus struct {
	Elem  Pattern
	Delim Pattern
}

func (z ZeroPlus) String() string { return repetitionString(z.Elem, z.Delim, "*") }

// Optional matches Elem zero or one times.
type Optional struct {
	Elem Pattern
}

func (o Optional) String() string { return "(" + stringOf(o.Elem) + ")?" }

// Application is a head applied to a bracketed argument list, eg. Plus[expr1, expr2].
type Application struct {
	Head Pattern
	Args []Pattern
}

func (a Application) String() string {
	return stringOf(a.Head) + "[" + join(a.Args, ", ") + "]"
}

// Sequence is an ordered concatenation of patterns.
type Sequence []Pattern

func (s Sequence) String() string { return join(s, " ") }

// DelimitedSequence is an ordered concatenation of Elems with Delim between each pair.
type DelimitedSequence struct {
	Elems []Pattern
	Delim Pattern
}

func (d DelimitedSequence) String() string {
	parts := make([]string, len(d.Elems))
	for i, elem := range d.Elems {
		parts[i] = nested(elem)
	}
	return "{" + strings.Join(parts, " ") + "}/" + nested(d.Delim)
}

// Alternation matches exactly one of its options, tried in order.
type Alternation []Pattern

func (a Alternation) String() string { return "(" + join(a, " | ") + ")" }

// Empty denotes a pattern field that was not present.
type Empty struct{}

func (Empty) String() string { return "<empty>" }

func (Metavariable) pattern()      {}
func (Word) pattern()              {}
func (Literal) pattern()           {}
func (NamedChar) pattern()         {}
func (Number) pattern()            {}
func (OnePlus) pattern()           {}
func (ZeroPlus) pattern()          {}
func (Optional) pattern()          {}
func (Application) pattern()       {}
func (Sequence) pattern()          {}
func (DelimitedSequence) pattern() {}
func (Alternation) pattern()       {}
func (Empty) pattern()             {}

func repetitionString(elem, delim Pattern, suffix string) string {
	if delim == nil {
		return "(" + nested(elem) + ")" + suffix
	}
	return "(" + nested(elem) + " " + nested(delim) + ")" + suffix
}

// nested renders a child, parenthesising sequences so that they cannot be confused with
// the element/delimiter pair of a repetition.
func nested(p Pattern) string {
	if seq, ok := p.(Sequence); ok {
		return "(" + seq.String() + ")"
	}
	return stringOf(p)
}

func stringOf(p Pattern) string {
	if p == nil {
		return Empty{}.String()
	}
	return p.String()
}

func join(patterns []Pattern, sep string) string {
	parts := make([]string, len(patterns))
	for i, p := range patterns {
		if seq, ok := p.(Sequence); ok && sep == " " {
			parts[i] = "(" + seq.String() + ")"
			continue
		}
		parts[i] = stringOf(p)
	}
	return strings.Join(parts, sep)
}

// Equal reports whether a and b are structurally equal.
//
// A nil Pattern is equal to Empty.
func Equal(a, b Pattern) bool {
	if a == nil {
		a = Empty{}
	}
	if b == nil {
		b = Empty{}
	}
	switch a := a.(type) {
	case Metavariable, Word, Literal, NamedChar, Number, Empty:
		return a == b

	case OnePlus:
		b, ok := b.(OnePlus)
		return ok && Equal(a.Elem, b.Elem) && optionalEqual(a.Delim, b.Delim)

	case ZeroPlus:
		b, ok := b.(ZeroPlus)
		return ok && Equal(a.Elem, b.Elem) && optionalEqual(a.Delim, b.Delim)

	case Optional:
		b, ok := b.(Optional)
		return ok && Equal(a.Elem, b.Elem)

	case Application:
		b, ok := b.(Application)
		return ok && Equal(a.Head, b.Head) && allEqual(a.Args, b.Args)

	case Sequence:
		b, ok := b.(Sequence)
		return ok && allEqual(a, b)

	case DelimitedSequence:
		b, ok := b.(DelimitedSequence)
		return ok && Equal(a.Delim, b.Delim) && allEqual(a.Elems, b.Elems)

	case Alternation:
		b, ok := b.(Alternation)
		return ok && allEqual(a, b)
	}
	return false
}

// Delimiters distinguish nil (undelimited) from Empty.
func optionalEqual(a, b Pattern) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Equal(a, b)
}

func allEqual(a, b []Pattern) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
