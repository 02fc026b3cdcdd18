package codegen

// Env is a scoped environment for name bindings. It supports parent-chained
// lookup, so every interpreter owns its own scope chain instead of sharing a
// process-wide table.
type Env struct {
	bindings map[string]*Value
	parent   *Env
}

// NewEnv creates a new environment with an optional parent scope.
func NewEnv(parent *Env) *Env {
	return &Env{
		bindings: make(map[string]*Value),
		parent:   parent,
	}
}

// Child creates a new child scope whose parent is this environment.
func (e *Env) Child() *Env {
	return NewEnv(e)
}

// Get looks up a name, traversing parent scopes.
func (e *Env) Get(name string) (*Value, bool) {
	if val, ok := e.bindings[name]; ok {
		return val, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// Set binds a name in this scope.
func (e *Env) Set(name string, val *Value) {
	e.bindings[name] = val
}

// Has checks whether a name is bound in this scope or any parent.
func (e *Env) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}
