// Package lisper is the front end of a small Lisp-like language: a lexer
// turning characters into tokens, a recursive-descent parser turning tokens
// into symbolic expression trees, and a capability interface handing those
// trees to a backend.
package lisper

import (
	"io"

	"github.com/lisper-lang/lisper/ast"
	"github.com/lisper-lang/lisper/codegen"
	"github.com/lisper-lang/lisper/parser"
)

// Parse builds the AST for every top-level expression in the given input.
func Parse(in []byte) (*ast.Node, error) {
	return parser.Parse(in)
}

// Session pairs a persistent backend with the parser, so bindings made by
// one read survive into the next. A failed read leaves the session usable.
type Session struct {
	interp *codegen.Interp
}

// NewSession creates an evaluation session. Output from the print builtin
// goes to out.
func NewSession(out io.Writer) *Session {
	return &Session{
		interp: codegen.New(out),
	}
}

// Interp exposes the session's backend.
func (s *Session) Interp() *codegen.Interp {
	return s.interp
}

// Eval parses every top-level expression in the input and evaluates them in
// order, returning the value of the last one. An empty input yields Nil.
func (s *Session) Eval(in []byte) (*codegen.Value, error) {
	root, err := parser.Parse(in)
	if err != nil {
		return nil, err
	}

	last := codegen.Nil
	for _, n := range root.List() {
		if last, err = s.interp.Eval(n); err != nil {
			return nil, err
		}
	}
	return last, nil
}

// EvalString is a convenience wrapper around Eval.
func (s *Session) EvalString(in string) (*codegen.Value, error) {
	return s.Eval([]byte(in))
}
