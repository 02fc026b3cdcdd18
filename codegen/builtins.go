package codegen

import (
	"fmt"
	"io"
	"strings"
)

// DefaultEnv returns a fresh root scope with the builtin functions bound.
// The print builtin writes to out.
func DefaultEnv(out io.Writer) *Env {
	env := NewEnv(nil)

	env.Set("add", NewBuiltinValue("add", intFold("add", func(a, b int64) (int64, error) {
		return a + b, nil
	})))
	env.Set("sub", NewBuiltinValue("sub", intFold("sub", func(a, b int64) (int64, error) {
		return a - b, nil
	})))
	env.Set("mul", NewBuiltinValue("mul", intFold("mul", func(a, b int64) (int64, error) {
		return a * b, nil
	})))
	env.Set("div", NewBuiltinValue("div", intFold("div", func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, backendError(ErrDivideByZero, "")
		}
		return a / b, nil
	})))

	env.Set("print", NewBuiltinValue("print", func(args []*Value) (*Value, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, arg.String())
		}
		fmt.Fprintln(out, strings.Join(parts, " "))
		return Nil, nil
	}))

	return env
}

// intFold builds a builtin that folds two or more int arguments, left to
// right, with the given operation.
func intFold(name string, op func(a, b int64) (int64, error)) Builtin {
	return func(args []*Value) (*Value, error) {
		if len(args) < 2 {
			return nil, backendError(ErrBadArity, fmt.Sprintf("for %q", name))
		}

		acc, err := intArg(name, args[0])
		if err != nil {
			return nil, err
		}
		for _, arg := range args[1:] {
			v, err := intArg(name, arg)
			if err != nil {
				return nil, err
			}
			if acc, err = op(acc, v); err != nil {
				return nil, err
			}
		}
		return NewIntValue(acc), nil
	}
}

func intArg(name string, v *Value) (int64, error) {
	if v.Type != ValueTypeInt {
		return 0, backendError(ErrTypeMismatch, fmt.Sprintf("%q expects numbers, got %v", name, v))
	}
	return v.Int64(), nil
}
