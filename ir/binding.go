package ir

// Func is a named function callable from a function binding. Call receives
// the evaluation environment, the data tree root, the ambient loop index
// and the already-evaluated arguments.
type Func struct {
	Name string
	Call func(env Env, data *Node, index int, args []*Node) (*Node, error)
}

// Env supplies named functions at evaluation time. Func must never return
// nil: unknown names resolve to a no-op function.
type Env interface {
	Func(name string) *Func
}

// Evaluable is a compiled binding expression carried by a binding-typed
// node. Evaluate never fails: resolution failures degrade to a null node.
type Evaluable interface {
	Evaluate(env Env, data *Node, index int) *Node
	String() string
}
