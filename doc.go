// Package opgrammar parses operator definition files.
//
// A definition file is a sequence of entries, each describing how one operator is written,
// parsed and displayed. An entry starts with a "name" field and continues until the next
// "name" field or the end of the input:
//
//     # Comments run to the end of the line.
//     name: SubsuperscriptBox
//     associativity: right
//     precedence: 150
//     meaningful: true
//     syntax: expr1 "^" expr2 "%" expr3
//     parse: SubsuperscriptBox[expr1, expr2, expr3]
//
// Field names are case-insensitive. "grammar" is accepted as a synonym for "syntax".
//
// The syntax, parse and fullform fields hold patterns. The supported pattern forms are:
//
//     - `expr1`..`expr4`, `n`, `-n`, `symb`, `nospace`, `,` Metavariables.
//     - `Word` Any other identifier.
//     - `"..."` Match the literal.
//     - `\[Name]` A named character.
//     - `42` A number.
//     - `Head[p, p, ...]` Application of a head to arguments.
//     - `(p)?` Optional.
//     - `(p | p | ...)` One of the alternatives.
//     - `(p d)+` / `(p d)*` One or more / zero or more p, delimited by d.
//     - `(p)+` / `(p)*` One or more / zero or more p.
//     - `p p ...` Sequence.
//
// Alternatives are tried in the order listed above and the first match wins.
package opgrammar
