package opgrammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer for operator definition files.
//
// Rules are tried in order. Whitespace, newlines and comments are kept in the token stream
// because the grammar is line oriented and application heads must be immediately
// followed by their opening bracket.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Newline", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t\r\f\v]+`},
	{Name: "String", Pattern: `"[^"\n]+"`},
	{Name: "NamedChar", Pattern: `\\\[[A-Za-z]+\]`},
	{Name: "NegNum", Pattern: `-[nN]\b`},
	{Name: "Number", Pattern: `[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9]*`},
	{Name: "Close", Pattern: `\)[+*?]?`},
	{Name: "Punct", Pattern: `[(\[\]|:,]`},
	{Name: "Char", Pattern: `.`},
})

// tokenTypes resolved from Lexer.Symbols().
type tokenTypes struct {
	names map[lexer.TokenType]string

	comment    lexer.TokenType
	newline    lexer.TokenType
	whitespace lexer.TokenType
	str        lexer.TokenType
	namedChar  lexer.TokenType
	negNum     lexer.TokenType
	number     lexer.TokenType
	ident      lexer.TokenType
	close      lexer.TokenType
	punct      lexer.TokenType
}

func newTokenTypes(def lexer.Definition) *tokenTypes {
	symbols := def.Symbols()
	names := make(map[lexer.TokenType]string, len(symbols))
	for name, tt := range symbols {
		names[tt] = name
	}
	return &tokenTypes{
		names:      names,
		comment:    symbols["Comment"],
		newline:    symbols["Newline"],
		whitespace: symbols["Whitespace"],
		str:        symbols["String"],
		namedChar:  symbols["NamedChar"],
		negNum:     symbols["NegNum"],
		number:     symbols["Number"],
		ident:      symbols["Ident"],
		close:      symbols["Close"],
		punct:      symbols["Punct"],
	}
}

// Trivia separates fields and entries.
func (t *tokenTypes) trivia(tok lexer.Token) bool {
	return tok.Type == t.whitespace || tok.Type == t.newline || tok.Type == t.comment
}

func (t *tokenTypes) name(tok lexer.Token) string {
	if tok.EOF() {
		return "EOF"
	}
	return t.names[tok.Type]
}

// tokenise the whole input. The returned slice always ends with an EOF token.
func tokenise(def *lexer.StatefulDefinition, filename, text string) ([]lexer.Token, error) {
	lex, err := def.LexString(filename, text)
	if err != nil {
		return nil, err
	}
	return lexer.ConsumeAll(lex)
}
