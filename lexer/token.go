package lexer

import (
	"fmt"
)

// Token is a single lexical unit: its type, the exact characters consumed
// for it, and where in the input it started.
type Token struct {
	tt     TokenType
	lexeme string

	line int
	col  int
}

// NewToken builds a token at the given position.
func NewToken(tt TokenType, lexeme string, line int, col int) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		line:   line,
		col:    col,
	}
}

// Type returns the token's type.
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column where the token started, both 1-based.
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Text returns the characters the token was made from.
func (t Token) Text() string {
	return t.lexeme
}

// Is reports whether the token has the given type.
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	if t.lexeme == "" {
		return fmt.Sprintf("<%v %d:%d>", t.tt, t.line, t.col)
	}
	return fmt.Sprintf("<%v %q %d:%d>", t.tt, t.lexeme, t.line, t.col)
}
