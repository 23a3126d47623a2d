package binding

import (
	"github.com/loomui/go-loom/ir"
	"github.com/loomui/go-loom/token"
)

// PathBinding is a compiled data path. It is immutable after construction
// and cached by source text, so two compilations of the same path share
// one instance.
type PathBinding struct {
	tokens []token.Token
}

// CompilePath compiles the inside of a path binding, memoized in env by
// the exact source string.
func CompilePath(path string, env *Env) *PathBinding {
	b, _ := env.Paths.GetOrCompile(path, func() (ir.Evaluable, error) {
		return &PathBinding{tokens: token.SplitPath(path)}, nil
	})
	return b.(*PathBinding)
}

func (b *PathBinding) Tokens() []token.Token {
	return b.tokens
}

// Evaluate resolves the path against data, degrading every resolution
// failure to null.
func (b *PathBinding) Evaluate(_ ir.Env, data *ir.Node, index int) *ir.Node {
	res := Resolve(b.tokens, data, index)
	if res.Kind != Success {
		return ir.Null()
	}
	return res.Value
}

// Assign writes value at the path, creating intermediate containers as
// needed.
func (b *PathBinding) Assign(value, data *ir.Node, index int) error {
	return Assign(b.tokens, value, data, index)
}

// String renders the binding back to @{...} form with tokens dot-joined,
// normalizing any incidental whitespace from the source.
func (b *PathBinding) String() string {
	return bindingPrefix + token.JoinPath(b.tokens) + string(bindingSuffix)
}

// Value wraps the binding as a node, for embedding in composite literals.
func (b *PathBinding) Value() *ir.Node {
	return &ir.Node{Type: ir.PathBindingType, String: b.String(), Binding: b}
}
