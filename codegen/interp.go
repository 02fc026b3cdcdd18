// Package codegen is the reference backend collaborator: a small
// tree-walking interpreter implementing the ast.Emitter capability
// interface, with an explicit environment instead of process-wide state.
package codegen

import (
	"fmt"
	"io"

	"github.com/lisper-lang/lisper/ast"
)

// Interp evaluates symbolic expressions against a scope chain.
type Interp struct {
	env *Env
}

// New creates an interpreter whose root scope holds the default builtins.
// Output from the print builtin goes to out.
func New(out io.Writer) *Interp {
	return &Interp{
		env: DefaultEnv(out),
	}
}

// NewWithEnv creates an interpreter over an existing scope.
func NewWithEnv(env *Env) *Interp {
	return &Interp{env: env}
}

// Env returns the interpreter's current scope.
func (in *Interp) Env() *Env {
	return in.env
}

// EmitNumber implements ast.Emitter.
func (in *Interp) EmitNumber(v int64) (ast.Value, error) {
	return NewIntValue(v), nil
}

// ResolveIdentifier implements ast.Emitter. Unbound names fail with
// ErrUnknownIdentifier.
func (in *Interp) ResolveIdentifier(name string) (ast.Value, error) {
	if v, ok := in.env.Get(name); ok {
		return v, nil
	}
	return nil, backendError(ErrUnknownIdentifier, fmt.Sprintf("%q", name))
}

// ComposeList implements ast.Emitter: the head value is applied to the
// remaining values. The empty list composes to Nil.
func (in *Interp) ComposeList(children []ast.Value) (ast.Value, error) {
	if len(children) == 0 {
		return Nil, nil
	}

	head, err := asValue(children[0])
	if err != nil {
		return nil, err
	}
	if head.Type != ValueTypeBuiltin {
		return nil, backendError(ErrNotCallable, head.String())
	}

	args := make([]*Value, 0, len(children)-1)
	for _, c := range children[1:] {
		arg, err := asValue(c)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	return head.Builtin()(args)
}

// Eval receives one completed top-level AST and produces its value. The
// reserved word set is interpreted here as a binding form; the front end
// keeps it an ordinary identifier.
func (in *Interp) Eval(n *ast.Node) (*Value, error) {
	if n.Type() != ast.NodeTypeList {
		v, err := ast.Emit(n, in)
		if err != nil {
			return nil, err
		}
		return asValue(v)
	}

	list := n.List()
	if isSetHead(list) {
		if len(list) != 3 || list[1].Type() != ast.NodeTypeIdentifier {
			return nil, backendError(ErrBadArity, `for "set": want (set name expr)`)
		}
		v, err := in.Eval(list[2])
		if err != nil {
			return nil, err
		}
		in.env.Set(list[1].Name(), v)
		return v, nil
	}

	// walk children through Eval so nested set forms keep working
	children := make([]ast.Value, 0, len(list))
	for i := range list {
		v, err := in.Eval(list[i])
		if err != nil {
			return nil, err
		}
		children = append(children, v)
	}

	v, err := in.ComposeList(children)
	if err != nil {
		return nil, err
	}
	return asValue(v)
}

func isSetHead(list []*ast.Node) bool {
	return len(list) > 0 &&
		list[0].Type() == ast.NodeTypeIdentifier &&
		list[0].Name() == "set"
}

func asValue(v ast.Value) (*Value, error) {
	val, ok := v.(*Value)
	if !ok {
		return nil, backendError(ErrTypeMismatch, fmt.Sprintf("foreign value %v", v))
	}
	return val, nil
}
