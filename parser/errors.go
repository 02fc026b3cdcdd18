package parser

import (
	"errors"
	"fmt"

	"github.com/lisper-lang/lisper/lexer"
)

var (
	// ErrUnexpectedToken means an expression was expected but the current
	// token cannot start one.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnterminatedList means end of input was reached while inside an
	// open list.
	ErrUnterminatedList = errors.New("unterminated list")
)

// SyntaxError is a structured parse failure carrying the offending token.
// It matches ErrUnexpectedToken or ErrUnterminatedList under errors.Is.
type SyntaxError struct {
	Err   error
	Token *lexer.Token
}

func (e *SyntaxError) Error() string {
	if e.Token == nil || e.Token.Is(lexer.TokenEOF) {
		return e.Err.Error()
	}
	line, col := e.Token.Pos()
	return fmt.Sprintf("%v %q at %d:%d", e.Err, e.Token.Text(), line, col)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func syntaxError(err error, tok *lexer.Token) *SyntaxError {
	return &SyntaxError{Err: err, Token: tok}
}
