package fn

import (
	"fmt"
	"strings"

	"github.com/loomui/go-loom/ir"
)

func Concat() *ir.Func {
	return &ir.Func{
		Name: "concat",
		Call: func(_ ir.Env, _ *ir.Node, _ int, args []*ir.Node) (*ir.Node, error) {
			var sb strings.Builder
			for _, arg := range args {
				sb.WriteString(Text(arg))
			}
			return ir.FromString(sb.String()), nil
		},
	}
}

// Join joins the elements of an array argument with a separator, which
// defaults to ",".
func Join() *ir.Func {
	return &ir.Func{
		Name: "join",
		Call: func(_ ir.Env, _ *ir.Node, _ int, args []*ir.Node) (*ir.Node, error) {
			if len(args) == 0 {
				return nil, fmt.Errorf("join expects an array argument")
			}
			sep := ","
			if len(args) > 1 {
				sep = Text(args[1])
			}
			arr := args[0]
			if arr.Type != ir.ArrayType {
				return ir.FromString(Text(arr)), nil
			}
			parts := make([]string, len(arr.Values))
			for i, elt := range arr.Values {
				parts[i] = Text(elt)
			}
			return ir.FromString(strings.Join(parts, sep)), nil
		},
	}
}

func Upper() *ir.Func {
	return &ir.Func{
		Name: "upper",
		Call: func(_ ir.Env, _ *ir.Node, _ int, args []*ir.Node) (*ir.Node, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("upper expects 1 arg, got %d", len(args))
			}
			return ir.FromString(strings.ToUpper(Text(args[0]))), nil
		},
	}
}

func Lower() *ir.Func {
	return &ir.Func{
		Name: "lower",
		Call: func(_ ir.Env, _ *ir.Node, _ int, args []*ir.Node) (*ir.Node, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("lower expects 1 arg, got %d", len(args))
			}
			return ir.FromString(strings.ToLower(Text(args[0]))), nil
		},
	}
}

func Trim() *ir.Func {
	return &ir.Func{
		Name: "trim",
		Call: func(_ ir.Env, _ *ir.Node, _ int, args []*ir.Node) (*ir.Node, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("trim expects 1 arg, got %d", len(args))
			}
			return ir.FromString(strings.TrimSpace(Text(args[0]))), nil
		},
	}
}

// Substr takes (value, from[, to]) with byte offsets clamped to the value.
func Substr() *ir.Func {
	return &ir.Func{
		Name: "substr",
		Call: func(_ ir.Env, _ *ir.Node, _ int, args []*ir.Node) (*ir.Node, error) {
			if len(args) < 2 {
				return nil, fmt.Errorf("substr expects (value, from[, to])")
			}
			s := Text(args[0])
			from, ok := args[1].Int()
			if !ok {
				return nil, fmt.Errorf("substr: from is not an integer")
			}
			to := int64(len(s))
			if len(args) > 2 {
				if to, ok = args[2].Int(); !ok {
					return nil, fmt.Errorf("substr: to is not an integer")
				}
			}
			from = clamp(from, int64(len(s)))
			to = clamp(to, int64(len(s)))
			if from > to {
				from = to
			}
			return ir.FromString(s[from:to]), nil
		},
	}
}

func clamp(v, n int64) int64 {
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}
	return v
}

// Len reports the length of an array or object, or the byte length of a
// scalar's text.
func Len() *ir.Func {
	return &ir.Func{
		Name: "length",
		Call: func(_ ir.Env, _ *ir.Node, _ int, args []*ir.Node) (*ir.Node, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("length expects 1 arg, got %d", len(args))
			}
			switch arg := args[0]; arg.Type {
			case ir.ArrayType:
				return ir.FromInt(int64(len(arg.Values))), nil
			case ir.ObjectType:
				return ir.FromInt(int64(len(arg.Fields))), nil
			default:
				return ir.FromInt(int64(len(Text(arg)))), nil
			}
		},
	}
}
