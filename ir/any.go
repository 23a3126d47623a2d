package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// FromAny converts a decoded JSON/YAML value into a node tree. Numbers
// arriving as json.Number keep their unparsed text.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		return FromNumber(fmt.Sprintf("%d", x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		return FromNumber(string(x)), nil
	case map[string]any:
		res := Object()
		for _, key := range slices.Sorted(maps.Keys(x)) {
			cy, err := FromAny(x[key])
			if err != nil {
				return nil, err
			}
			res.SetField(key, cy)
		}
		return res, nil
	case []any:
		res := Array()
		for _, elt := range x {
			cy, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			res.Append(cy)
		}
		return res, nil
	case *Node:
		return x.Clone(), nil
	case []*Node:
		return FromSlice(x), nil
	case map[string]*Node:
		return FromMap(x), nil
	default:
		return nil, fmt.Errorf("cannot represent %T", v)
	}
}

// ToAny converts a node tree to the shape produced by decoding JSON.
// Binding nodes render as their source text.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return json.Number(node.Number)
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	case PathBindingType, FuncBindingType:
		return node.String
	default:
		panic("impossible production")
	}
}

func (y *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToAny(y))
}

func (y *Node) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	node, err := FromAny(v)
	if err != nil {
		return err
	}
	*y = *node
	return nil
}
