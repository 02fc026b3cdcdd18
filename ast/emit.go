package ast

// Value is an opaque handle produced by a backend. The front end never
// inspects it, only carries it from child emissions into ComposeList.
type Value interface{}

// Emitter is the capability interface a code generation (or evaluation)
// backend must implement to consume the AST. It is the sole extension point
// toward downstream consumers.
type Emitter interface {
	// EmitNumber produces a value for a number literal.
	EmitNumber(v int64) (Value, error)

	// ResolveIdentifier produces a value for a named reference, or fails
	// when the name has no binding.
	ResolveIdentifier(name string) (Value, error)

	// ComposeList combines the already-emitted child values of a list, in
	// source order. What composition means (applying the head, building a
	// data list, emitting a call) is entirely up to the backend.
	ComposeList(children []Value) (Value, error)
}

// Emit dispatches the node over its variant into the given emitter,
// recursing left-to-right through list children. A failure at any depth
// aborts the walk and propagates unchanged.
func Emit(n *Node, em Emitter) (Value, error) {
	switch n.Type() {
	case NodeTypeNumber:
		return em.EmitNumber(n.Int64())

	case NodeTypeIdentifier:
		return em.ResolveIdentifier(n.Name())

	case NodeTypeList:
		list := n.List()
		children := make([]Value, 0, len(list))
		for i := range list {
			v, err := Emit(list[i], em)
			if err != nil {
				return nil, err
			}
			children = append(children, v)
		}
		return em.ComposeList(children)

	default:
		panic("unknown node type")
	}
}
