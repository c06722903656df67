package opgrammar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Error represents an error while parsing.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() lexer.Position
}

// errEndOfInput is returned when only whitespace and comments remain where a field was
// expected. It marks the end of the last entry and is never returned to callers.
var errEndOfInput = errors.New("end of input")

func formatError(pos lexer.Position, message string) string {
	return fmt.Sprintf("%s: %s", pos, message)
}

// UnexpectedTokenError is returned when the input does not match any expected alternative.
type UnexpectedTokenError struct {
	Unexpected lexer.Token
	Expected   string

	// Distinct alternatives making up Expected, when merged from several failures.
	alternatives []string
}

// expected returns the alternatives described by Expected.
func (u *UnexpectedTokenError) expected() []string {
	if u.alternatives != nil {
		return u.alternatives
	}
	if u.Expected == "" {
		return nil
	}
	return []string{u.Expected}
}

// mergeExpected returns an error at the position of a listing the alternatives of both.
func mergeExpected(a, b *UnexpectedTokenError) *UnexpectedTokenError {
	alternatives := append([]string{}, a.expected()...)
	for _, alt := range b.expected() {
		if !containsString(alternatives, alt) {
			alternatives = append(alternatives, alt)
		}
	}
	if len(alternatives) == len(a.expected()) {
		return a
	}
	return &UnexpectedTokenError{
		Unexpected:   a.Unexpected,
		Expected:     joinAlternatives(alternatives),
		alternatives: alternatives,
	}
}

// joinAlternatives renders a list as `a, b or c`.
func joinAlternatives(alternatives []string) string {
	if len(alternatives) < 2 {
		return strings.Join(alternatives, "")
	}
	last := len(alternatives) - 1
	return strings.Join(alternatives[:last], ", ") + " or " + alternatives[last]
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func (u *UnexpectedTokenError) Error() string { return formatError(u.Unexpected.Pos, u.Message()) }

func (u *UnexpectedTokenError) Message() string { // nolint: golint
	var expected string
	if u.Expected != "" {
		expected = fmt.Sprintf(" (expected %s)", u.Expected)
	}
	if u.Unexpected.EOF() {
		return "unexpected end of input" + expected
	}
	return fmt.Sprintf("unexpected token %q%s", u.Unexpected.Value, expected)
}
func (u *UnexpectedTokenError) Position() lexer.Position { return u.Unexpected.Pos } // nolint: golint

// UnknownFieldError is returned for a field name outside the recognised set.
type UnknownFieldError struct {
	Name string
	Pos  lexer.Position
}

func (u *UnknownFieldError) Error() string { return formatError(u.Pos, u.Message()) }
func (u *UnknownFieldError) Message() string {
	return fmt.Sprintf("unknown field %q", u.Name)
}
func (u *UnknownFieldError) Position() lexer.Position { return u.Pos }

// DuplicateFieldError is returned by parsers built with DisallowDuplicateFields when an
// entry sets a field twice.
type DuplicateFieldError struct {
	Field    Field
	Pos      lexer.Position
	Previous lexer.Position
}

func (d *DuplicateFieldError) Error() string { return formatError(d.Pos, d.Message()) }
func (d *DuplicateFieldError) Message() string {
	return fmt.Sprintf("duplicate field %q (previously set at %s)", d.Field, d.Previous)
}
func (d *DuplicateFieldError) Position() lexer.Position { return d.Pos }

// ParseError is returned when a file cannot be parsed in full.
type ParseError struct {
	// Err is the underlying positioned error.
	Err Error
	// Remaining is the unconsumed input, starting at the position of Err.
	Remaining string
}

func (p *ParseError) Error() string {
	remaining := strings.TrimRight(p.Remaining, "\n")
	if remaining == "" {
		return p.Err.Error()
	}
	return fmt.Sprintf("%s\nunparsed input:\n%s", p.Err.Error(), remaining)
}

func (p *ParseError) Message() string          { return p.Err.Message() }
func (p *ParseError) Position() lexer.Position { return p.Err.Position() }
func (p *ParseError) Unwrap() error            { return p.Err }

type parseError struct {
	Msg string
	Pos lexer.Position
}

func (p *parseError) Error() string            { return formatError(p.Pos, p.Msg) }
func (p *parseError) Message() string          { return p.Msg }
func (p *parseError) Position() lexer.Position { return p.Pos }

// AnnotateError wraps an existing error with a position.
//
// If the existing error is already an Error it will be returned unmodified.
func AnnotateError(pos lexer.Position, err error) Error {
	var perr Error
	if errors.As(err, &perr) {
		return perr
	}
	return &parseError{Msg: err.Error(), Pos: pos}
}

// Errorf creates a new Error at the given position.
func Errorf(pos lexer.Position, format string, args ...interface{}) Error {
	return &parseError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}
