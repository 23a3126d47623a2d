package binding

import (
	"strconv"
	"strings"

	"github.com/loomui/go-loom/debug"
	"github.com/loomui/go-loom/ir"
	"github.com/loomui/go-loom/token"
)

// FuncBinding is a compiled fn:name(args) call. The function reference is
// resolved through the registry at compile time, falling back to the no-op
// function for unknown names, and each argument is either a literal
// primitive or a nested compiled expression.
type FuncBinding struct {
	name string
	fn   *ir.Func
	args []*ir.Node
}

// CompileCall compiles a function call from its name and raw argument
// list, memoized in env by the full fn:name(args) text.
func CompileCall(name, args string, env *Env) *FuncBinding {
	key := callPrefix + name + "(" + args + ")"
	b, _ := env.Calls.GetOrCompile(key, func() (ir.Evaluable, error) {
		compiled := &FuncBinding{
			name: name,
			fn:   env.Func(name),
		}
		for _, arg := range token.SplitArgs(args) {
			compiled.args = append(compiled.args, compileArg(arg, env))
		}
		return compiled, nil
	})
	return b.(*FuncBinding)
}

// compileArg applies the same pre-compilation logic as ordinary attribute
// values: quoted text is a string literal, call syntax nests another
// function binding, path-shaped text becomes a path binding, and anything
// else is a literal primitive of the raw text.
func compileArg(arg string, env *Env) *ir.Node {
	if lit, ok := token.Unquote(arg); ok {
		return ir.FromString(lit)
	}
	if name, args, ok := splitCall(arg); ok {
		return CompileCall(name, args, env).Value()
	}
	switch arg {
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	case "null":
		return ir.Null()
	}
	if _, err := strconv.ParseFloat(arg, 64); err == nil {
		return ir.FromNumber(arg)
	}
	if pathLike(arg) {
		return CompilePath(arg, env).Value()
	}
	return ir.FromString(arg)
}

func pathLike(arg string) bool {
	for i := 0; i < len(arg); i++ {
		c := arg[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		case c == '.' || c == '[' || c == ']' || c == '_' || c == '$' || c == '-':
		default:
			return false
		}
	}
	return len(arg) > 0
}

func (b *FuncBinding) Name() string {
	return b.name
}

func (b *FuncBinding) Args() []*ir.Node {
	return b.args
}

// Evaluate evaluates every argument against (data, index), then invokes
// the bound function. A function error or panic is logged and degrades to
// null rather than propagating into rendering.
func (b *FuncBinding) Evaluate(env ir.Env, data *ir.Node, index int) (res *ir.Node) {
	defer func() {
		if r := recover(); r != nil {
			if debug.Call() {
				debug.Logf("call %s: panic: %v\n", b.name, r)
			}
			res = ir.Null()
		}
	}()
	vals := make([]*ir.Node, len(b.args))
	for i, arg := range b.args {
		if arg.Type.IsBinding() {
			vals[i] = arg.Binding.Evaluate(env, data, index)
			continue
		}
		vals[i] = arg
	}
	out, err := b.fn.Call(env, data, index, vals)
	if err != nil {
		if debug.Call() {
			debug.Logf("call %s: %v\n", b.name, err)
		}
		return ir.Null()
	}
	if out == nil {
		return ir.Null()
	}
	return out
}

// String renders the call back to @{fn:name(args)} form, with literal
// string arguments in single-quote style.
func (b *FuncBinding) String() string {
	var sb strings.Builder
	sb.WriteString(bindingPrefix)
	sb.WriteString(callPrefix)
	sb.WriteString(b.name)
	sb.WriteByte('(')
	for i, arg := range b.args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(renderArg(arg))
	}
	sb.WriteByte(')')
	sb.WriteByte(byte(bindingSuffix))
	return sb.String()
}

func renderArg(arg *ir.Node) string {
	switch arg.Type {
	case ir.StringType:
		return "'" + arg.String + "'"
	case ir.PathBindingType, ir.FuncBindingType:
		// the inner expression, without the binding delimiters
		src := arg.Binding.String()
		return src[2 : len(src)-1]
	case ir.NullType:
		return "null"
	case ir.BoolType:
		return strconv.FormatBool(arg.Bool)
	case ir.NumberType:
		return arg.NumberText()
	default:
		return arg.String
	}
}

// Value wraps the binding as a node, for embedding in composite literals.
func (b *FuncBinding) Value() *ir.Node {
	return &ir.Node{Type: ir.FuncBindingType, String: b.String(), Binding: b}
}
