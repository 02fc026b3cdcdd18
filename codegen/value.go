package codegen

import (
	"fmt"
)

// Builtin is a function value applied by list composition.
type Builtin func(args []*Value) (*Value, error)

// ValueType represents the type of a backend value
type ValueType uint8

// Value types
const (
	ValueTypeNil ValueType = iota
	ValueTypeInt
	ValueTypeBuiltin
)

var valueTypes = map[ValueType]string{
	ValueTypeNil:     "nil",
	ValueTypeInt:     "int",
	ValueTypeBuiltin: "builtin",
}

func (vt ValueType) String() string {
	return valueTypes[vt]
}

// Value is the concrete value handle produced by the reference backend.
type Value struct {
	v    interface{}
	name string

	Type ValueType
}

// Nil is the value of the empty list.
var Nil = &Value{Type: ValueTypeNil}

// NewIntValue creates a value of type int
func NewIntValue(v int64) *Value {
	return &Value{v: v, Type: ValueTypeInt}
}

// NewBuiltinValue creates a named function value
func NewBuiltinValue(name string, fn Builtin) *Value {
	return &Value{v: fn, name: name, Type: ValueTypeBuiltin}
}

// Int64 returns the numeric content of an int value
func (v Value) Int64() int64 {
	return v.v.(int64)
}

// Builtin returns the function content of a builtin value
func (v Value) Builtin() Builtin {
	return v.v.(Builtin)
}

func (v Value) String() string {
	switch v.Type {
	case ValueTypeNil:
		return "()"
	case ValueTypeInt:
		return fmt.Sprintf("%d", v.v.(int64))
	case ValueTypeBuiltin:
		return fmt.Sprintf("<builtin %s>", v.name)
	}
	return fmt.Sprintf("<%v>", v.v)
}
