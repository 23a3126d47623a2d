package fn

import (
	"fmt"

	"github.com/loomui/go-loom/ir"
)

// Eq compares scalars by rendered text, except that two numbers compare
// numerically so 1 and 1.0 are equal.
func Eq() *ir.Func {
	return &ir.Func{
		Name: "eq",
		Call: func(_ ir.Env, _ *ir.Node, _ int, args []*ir.Node) (*ir.Node, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("eq expects 2 args, got %d", len(args))
			}
			a, b := args[0], args[1]
			if a.Type == ir.NumberType && b.Type == ir.NumberType {
				af, aok := a.Float()
				bf, bok := b.Float()
				return ir.FromBool(aok && bok && af == bf), nil
			}
			if a.Type != b.Type {
				return ir.FromBool(false), nil
			}
			return ir.FromBool(Text(a) == Text(b)), nil
		},
	}
}

func compare(name string, f func(a, b float64) bool) *ir.Func {
	return &ir.Func{
		Name: name,
		Call: func(_ ir.Env, _ *ir.Node, _ int, args []*ir.Node) (*ir.Node, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("%s expects 2 args, got %d", name, len(args))
			}
			a, err := num(args[0])
			if err != nil {
				return nil, err
			}
			b, err := num(args[1])
			if err != nil {
				return nil, err
			}
			return ir.FromBool(f(a, b)), nil
		},
	}
}

func Lt() *ir.Func {
	return compare("lt", func(a, b float64) bool { return a < b })
}

func Gt() *ir.Func {
	return compare("gt", func(a, b float64) bool { return a > b })
}

func Not() *ir.Func {
	return &ir.Func{
		Name: "not",
		Call: func(_ ir.Env, _ *ir.Node, _ int, args []*ir.Node) (*ir.Node, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("not expects 1 arg, got %d", len(args))
			}
			return ir.FromBool(!ir.Truth(args[0])), nil
		},
	}
}

func And() *ir.Func {
	return &ir.Func{
		Name: "and",
		Call: func(_ ir.Env, _ *ir.Node, _ int, args []*ir.Node) (*ir.Node, error) {
			for _, arg := range args {
				if !ir.Truth(arg) {
					return ir.FromBool(false), nil
				}
			}
			return ir.FromBool(true), nil
		},
	}
}

func Or() *ir.Func {
	return &ir.Func{
		Name: "or",
		Call: func(_ ir.Env, _ *ir.Node, _ int, args []*ir.Node) (*ir.Node, error) {
			for _, arg := range args {
				if ir.Truth(arg) {
					return ir.FromBool(true), nil
				}
			}
			return ir.FromBool(false), nil
		},
	}
}

// Ternary takes (cond, then, else) and selects by the truth of cond. Both
// branches arrive already evaluated; bindings have no lazy arguments.
func Ternary() *ir.Func {
	return &ir.Func{
		Name: "ternary",
		Call: func(_ ir.Env, _ *ir.Node, _ int, args []*ir.Node) (*ir.Node, error) {
			if len(args) != 3 {
				return nil, fmt.Errorf("ternary expects 3 args, got %d", len(args))
			}
			if ir.Truth(args[0]) {
				return args[1], nil
			}
			return args[2], nil
		},
	}
}
