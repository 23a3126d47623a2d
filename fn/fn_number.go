package fn

import (
	"fmt"
	"math"
	"strconv"

	"github.com/loomui/go-loom/ir"
)

// num reads an argument as a float64, accepting numbers and numeric
// strings.
func num(node *ir.Node) (float64, error) {
	switch node.Type {
	case ir.NumberType:
		f, ok := node.Float()
		if !ok {
			return 0, fmt.Errorf("malformed number %q", node.Number)
		}
		return f, nil
	case ir.StringType:
		f, err := strconv.ParseFloat(node.String, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", node.String)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%s is not a number", node.Type)
	}
}

// fromNum renders a result as an int node when it is integral. A
// non-finite result has no JSON representation, so it is an error rather
// than a node.
func fromNum(f float64) (*ir.Node, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, fmt.Errorf("non-finite result %v", f)
	}
	i := int64(f)
	if float64(i) == f {
		return ir.FromInt(i), nil
	}
	return ir.FromFloat(f), nil
}

func fold(name string, f func(acc, v float64) float64) *ir.Func {
	return &ir.Func{
		Name: name,
		Call: func(_ ir.Env, _ *ir.Node, _ int, args []*ir.Node) (*ir.Node, error) {
			if len(args) == 0 {
				return nil, fmt.Errorf("%s expects at least 1 arg", name)
			}
			acc, err := num(args[0])
			if err != nil {
				return nil, err
			}
			for _, arg := range args[1:] {
				v, err := num(arg)
				if err != nil {
					return nil, err
				}
				acc = f(acc, v)
			}
			res, err := fromNum(acc)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			return res, nil
		},
	}
}

func Add() *ir.Func {
	return fold("add", func(acc, v float64) float64 { return acc + v })
}

func Sub() *ir.Func {
	return fold("sub", func(acc, v float64) float64 { return acc - v })
}

func Mul() *ir.Func {
	return fold("mul", func(acc, v float64) float64 { return acc * v })
}

func Div() *ir.Func {
	return fold("div", func(acc, v float64) float64 { return acc / v })
}

func Mod() *ir.Func {
	return fold("mod", math.Mod)
}

func Min() *ir.Func {
	return fold("min", math.Min)
}

func Max() *ir.Func {
	return fold("max", math.Max)
}

// Number parses its argument as a number, so string data can feed numeric
// attributes.
func Number() *ir.Func {
	return &ir.Func{
		Name: "number",
		Call: func(_ ir.Env, _ *ir.Node, _ int, args []*ir.Node) (*ir.Node, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("number expects 1 arg, got %d", len(args))
			}
			f, err := num(args[0])
			if err != nil {
				return nil, err
			}
			res, err := fromNum(f)
			if err != nil {
				return nil, fmt.Errorf("number: %w", err)
			}
			return res, nil
		},
	}
}
