package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is a value in a data tree. It works as a recursive tagged union:
// the Type field selects which of the other fields carry the value.
//
// For ObjectType, Fields[i] is the string-typed key for Values[i], so both
// slices always have the same length. Field order is preserved from
// construction and is stable across clones.
//
// For NumberType the value lives in Int64 or Float64 when it has been
// parsed, with Number holding the unparsed text otherwise. Int and Float
// parse the text on demand without mutating the node.
//
// PathBindingType and FuncBindingType nodes carry a compiled binding in
// Binding with its source text in String. They are values like any other so
// that bindings can be embedded inside composite literals.
type Node struct {
	Type Type

	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Int64   *int64
	Float64 *float64

	Binding Evaluable
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Number = y.Number
	dst.Binding = y.Binding
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dst.Fields[i] = yf.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

// FromNumber holds v as unparsed numeric text, parsed on demand by Int or
// Float.
func FromNumber(v string) *Node {
	return &Node{Type: NumberType, Number: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func Object() *Node {
	return &Node{Type: ObjectType}
}

func Array() *Node {
	return &Node{Type: ArrayType}
}

func FromMap(yMap map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, 0, len(yMap))
	res.Values = make([]*Node, 0, len(yMap))
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		res.Fields = append(res.Fields, FromString(key))
		res.Values = append(res.Values, yMap[key])
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	return &Node{Type: ArrayType, Values: ySlice}
}

func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// SetField sets field to v, overwriting an existing value or appending a
// new field.
func (y *Node) SetField(field string, v *Node) {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			y.Values[i] = v
			return
		}
	}
	y.Fields = append(y.Fields, FromString(field))
	y.Values = append(y.Values, v)
}

func (y *Node) Append(v *Node) {
	y.Values = append(y.Values, v)
}

// Int returns the numeric value as an int64, parsing the Number text on
// demand. A float value is reported only if it is integral.
func (y *Node) Int() (int64, bool) {
	if y.Type != NumberType {
		return 0, false
	}
	if y.Int64 != nil {
		return *y.Int64, true
	}
	if y.Float64 != nil {
		f := *y.Float64
		i := int64(f)
		if float64(i) == f {
			return i, true
		}
		return 0, false
	}
	i, err := strconv.ParseInt(y.Number, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Float returns the numeric value as a float64, parsing the Number text on
// demand.
func (y *Node) Float() (float64, bool) {
	if y.Type != NumberType {
		return 0, false
	}
	if y.Float64 != nil {
		return *y.Float64, true
	}
	if y.Int64 != nil {
		return float64(*y.Int64), true
	}
	f, err := strconv.ParseFloat(y.Number, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// NumberText renders the numeric value back to text.
func (y *Node) NumberText() string {
	switch {
	case y.Int64 != nil:
		return strconv.FormatInt(*y.Int64, 10)
	case y.Float64 != nil:
		return strconv.FormatFloat(*y.Float64, 'f', -1, 64)
	default:
		return y.Number
	}
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
