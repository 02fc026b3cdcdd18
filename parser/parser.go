// Package parser builds symbolic expression trees out of the lexer's token
// stream using recursive descent with one token of look-ahead.
package parser

import (
	"bytes"
	"io"
	"strconv"
	"sync"

	"github.com/lisper-lang/lisper/ast"
	"github.com/lisper-lang/lisper/lexer"
)

// TokenEOF is the sentinel returned once the token channel is exhausted.
var TokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0, 0)

// Parser consumes tokens one at a time and produces AST nodes. After a
// failed parse the token cursor stays consistent: the caller may attempt to
// read a fresh top-level expression starting from the next token.
type Parser struct {
	lx *lexer.Lexer

	scanOnce sync.Once
	scanErr  chan error

	nextTok *lexer.Token
}

// New creates a parser that reads characters from r.
func New(r io.Reader) *Parser {
	return &Parser{
		lx:      lexer.New(r),
		scanErr: make(chan error, 1),
	}
}

func (p *Parser) start() {
	p.scanOnce.Do(func() {
		go func() {
			p.scanErr <- p.lx.Scan()
		}()
	})
}

func (p *Parser) read() *lexer.Token {
	tok, ok := <-p.lx.Tokens()
	if ok {
		return &tok
	}
	return TokenEOF
}

func (p *Parser) peek() *lexer.Token {
	if p.nextTok != nil {
		return p.nextTok
	}

	p.nextTok = p.read()
	return p.nextTok
}

func (p *Parser) next() *lexer.Token {
	if p.nextTok != nil {
		tok := p.nextTok
		p.nextTok = nil
		return tok
	}

	return p.read()
}

// Close abandons any remaining input, releasing the scanning goroutine.
// Needed only when a caller stops reading before EOF.
func (p *Parser) Close() {
	p.start()
	p.lx.Stop()
}

// AtEOF returns true once the input has no more expressions.
func (p *Parser) AtEOF() bool {
	p.start()
	return p.peek().Is(lexer.TokenEOF)
}

// ParseExpression reads exactly one expression from the input.
func (p *Parser) ParseExpression() (*ast.Node, error) {
	p.start()
	return p.parseExpression()
}

// Parse reads every top-level expression until end of input and returns
// them as children of a root list node.
func (p *Parser) Parse() (*ast.Node, error) {
	p.start()

	root := ast.NewList(nil)
	for !p.peek().Is(lexer.TokenEOF) {
		node, err := p.parseExpression()
		if err != nil {
			p.lx.Stop()
			return nil, err
		}
		if err := root.Push(node); err != nil {
			return nil, err
		}
	}

	if err := <-p.scanErr; err != nil {
		return nil, err
	}

	return root, nil
}

func (p *Parser) parseExpression() (*ast.Node, error) {
	tok := p.peek()

	switch tok.Type() {
	case lexer.TokenNumber:
		p.next()
		i64, err := strconv.ParseInt(tok.Text(), 10, 64)
		if err != nil {
			return nil, syntaxError(err, tok)
		}
		return ast.NewNumber(tok, i64), nil

	case lexer.TokenIdentifier:
		p.next() // consume the identifier
		return ast.NewIdentifier(tok, tok.Text()), nil

	case lexer.TokenOpenParen:
		return p.parseList()

	default:
		// CloseParen, Unknown or EOF cannot start an expression
		p.next()
		return nil, syntaxError(ErrUnexpectedToken, tok)
	}
}

func (p *Parser) parseList() (*ast.Node, error) {
	open := p.next()
	node := ast.NewList(open)

	for {
		switch p.peek().Type() {
		case lexer.TokenCloseParen:
			p.next()
			return node, nil

		case lexer.TokenEOF:
			return nil, syntaxError(ErrUnterminatedList, open)

		default:
			child, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := node.Push(child); err != nil {
				return nil, err
			}
		}
	}
}

// Parse builds the AST for every top-level expression in the given input.
func Parse(in []byte) (*ast.Node, error) {
	p := New(bytes.NewReader(in))
	return p.Parse()
}
