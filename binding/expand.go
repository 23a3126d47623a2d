package binding

import (
	"github.com/loomui/go-loom/debug"
	"github.com/loomui/go-loom/ir"
)

// Expand rebuilds node with every nested binding replaced by its evaluated
// result, leaving non-binding values untouched. Bindings may appear as
// binding-typed nodes or as strings in @{...} syntax inside objects and
// arrays, so composite literal attributes can embed expressions anywhere.
func Expand(node *ir.Node, env *Env, data *ir.Node, index int) *ir.Node {
	switch node.Type {
	case ir.ObjectType:
		n := len(node.Fields)
		res := ir.Object()
		for i := range n {
			res.SetField(node.Fields[i].String, Expand(node.Values[i], env, data, index))
		}
		return res
	case ir.ArrayType:
		res := ir.Array()
		for _, elt := range node.Values {
			res.Append(Expand(elt, env, data, index))
		}
		return res
	case ir.StringType:
		if !IsBindingSyntax(node.String) {
			return node
		}
		b, err := Compile(node.String, env)
		if err != nil {
			// whitespace-only inner text; keep the literal
			return node
		}
		if debug.Expand() {
			debug.Logf("expand: evaluating %s\n", b)
		}
		return b.Evaluate(env, data, index)
	case ir.PathBindingType, ir.FuncBindingType:
		return node.Binding.Evaluate(env, data, index)
	default:
		return node
	}
}
