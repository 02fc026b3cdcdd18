package lexer

import (
	"bytes"
	"io"
	"log"
	"sync"
	"text/scanner"
)

type lexState func(*Lexer) lexState

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	s := &scanner.Scanner{}

	return &Lexer{
		in:     s.Init(r),
		tokens: make(chan Token),
		done:   make(chan struct{}),
		buf:    []rune{},
		line:   1,
		col:    1,
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in *scanner.Scanner

	tokens chan Token

	done     chan struct{}
	stopOnce sync.Once
	lastErr  error

	buf []rune

	line int
	col  int

	tokLine int
	tokCol  int
}

// Tokens returns a channel that is going to receive tokens as soon as they are
// detected.
func (lx *Lexer) Tokens() chan Token {
	return lx.tokens
}

// Stop abandons an in-progress scan, draining any pending tokens so the
// Scan goroutine can terminate. Safe to call more than once, or after Scan
// has already finished.
func (lx *Lexer) Stop() {
	lx.stopOnce.Do(func() {
		close(lx.done)
	})
	for range lx.tokens {
		// drain channel
	}
}

// Scan starts scanning the reader for tokens. The lexer is total: every
// character outside the grammar becomes a TokenUnknown rather than an error.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		select {
		case <-lx.done:
			close(lx.tokens)
			return nil
		default:
			state = state(lx)
		}
	}

	if lx.lastErr == nil {
		lx.emit(TokenEOF)
	}

	close(lx.tokens)

	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType) {
	line, col := lx.tokLine, lx.tokCol
	if len(lx.buf) == 0 {
		line, col = lx.line, lx.col
	}

	lx.tokens <- Token{
		tt:     tt,
		lexeme: string(lx.buf),

		line: line,
		col:  col,
	}

	lx.buf = lx.buf[0:0]
}

// discard drops the buffered characters without emitting a token. Whitespace
// is skipped this way, never surfaced to the parser.
func (lx *Lexer) discard() {
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	if len(lx.buf) == 0 {
		lx.tokLine, lx.tokCol = lx.line, lx.col
	}
	lx.buf = append(lx.buf, r)

	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {

	case isWhitespace(r):
		return lexWhitespace

	case isOpenParen(r):
		return lexEmit(TokenOpenParen)
	case isCloseParen(r):
		return lexEmit(TokenCloseParen)

	case isLetter(r):
		return lexIdentifier
	case isDigit(r):
		return lexNumber

	default:
		return lexEmit(TokenUnknown)

	}
}

func lexWhitespace(lx *Lexer) lexState {
	for isWhitespace(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	lx.discard()
	return lexDefaultState
}

// lexIdentifier greedily consumes letters and digits after the initial
// letter: [a-zA-Z][a-zA-Z0-9]*
func lexIdentifier(lx *Lexer) lexState {
	for p := lx.peek(); isLetter(p) || isDigit(p); p = lx.peek() {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	return lexEmit(TokenIdentifier)
}

// lexNumber consumes a numeric literal: "0" | [1-9][0-9]*. A leading zero
// terminates the literal immediately, so "007" produces three separate
// number tokens.
func lexNumber(lx *Lexer) lexState {
	if lx.buf[0] == '0' {
		return lexEmit(TokenNumber)
	}
	for isDigit(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	return lexEmit(TokenNumber)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return nil
	}
	return func(lx *Lexer) lexState {
		log.Printf("lexer error: %v", err)
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// including the trailing TokenEOF.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}
	done := make(chan struct{})

	lx := New(bytes.NewReader(in))

	go func() {
		for tok := range lx.tokens {
			tokens = append(tokens, tok)
		}
		done <- struct{}{}
	}()

	if err := lx.Scan(); err != nil {
		return nil, err
	}

	<-done
	return tokens, nil
}
