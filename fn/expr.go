package fn

import (
	"fmt"

	"github.com/loomui/go-loom/ir"
	"github.com/loomui/go-loom/token"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Expr evaluates an expr-lang expression against the data tree. The first
// argument is the expression source; the environment is the data tree
// decoded to plain values, plus helpers:
//
//	get(path)     - resolve a dotted path against the data root
//	index()       - the ambient loop index
//	length(path)  - element count at a dotted path
//
// Further arguments are exposed as arg1, arg2, ... so paths and literals
// from the binding grammar can feed the expression.
func Expr() *ir.Func {
	return &ir.Func{
		Name: "expr",
		Call: func(env ir.Env, data *ir.Node, index int, args []*ir.Node) (*ir.Node, error) {
			if len(args) == 0 {
				return nil, fmt.Errorf("expr expects an expression argument")
			}
			src := Text(args[0])
			opts := exprOpts(data, index)
			opts = append(opts, expr.Env(exprEnv(data, index, args)))
			program, err := expr.Compile(src, opts...)
			if err != nil {
				return nil, fmt.Errorf("error compiling %q: %w", src, err)
			}
			out, err := vm.Run(program, exprEnv(data, index, args))
			if err != nil {
				return nil, fmt.Errorf("error evaluating %q: %w", src, err)
			}
			return ir.FromAny(out)
		},
	}
}

func exprEnv(data *ir.Node, index int, args []*ir.Node) map[string]any {
	res := map[string]any{}
	if data != nil && data.Type == ir.ObjectType {
		if m, ok := ir.ToAny(data).(map[string]any); ok {
			res = m
		}
	}
	for i, arg := range args[1:] {
		res[fmt.Sprintf("arg%d", i+1)] = ir.ToAny(arg)
	}
	return res
}

func exprOpts(data *ir.Node, index int) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			path, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("get expects a path string")
			}
			cur := data
			for _, tok := range token.SplitPath(path) {
				if cur == nil || cur.Type != ir.ObjectType {
					return nil, nil
				}
				cur = ir.Get(cur, tok.Text)
			}
			if cur == nil {
				return nil, nil
			}
			return ir.ToAny(cur), nil
		},
			new(func(string) any)),
		expr.Function("index", func(params ...any) (any, error) {
			return index, nil
		},
			new(func() int)),
		expr.Function("length", func(params ...any) (any, error) {
			path, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("length expects a path string")
			}
			cur := data
			for _, tok := range token.SplitPath(path) {
				if cur == nil || cur.Type != ir.ObjectType {
					return 0, nil
				}
				cur = ir.Get(cur, tok.Text)
			}
			if cur == nil {
				return 0, nil
			}
			switch cur.Type {
			case ir.ArrayType:
				return len(cur.Values), nil
			case ir.ObjectType:
				return len(cur.Fields), nil
			default:
				return len(Text(cur)), nil
			}
		},
			new(func(string) int)),
	}
}
