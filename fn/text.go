package fn

import (
	"bytes"
	"encoding/json"

	"github.com/loomui/go-loom/ir"
)

// Text renders an argument the way attribute values display it: scalars as
// their plain text, composites as compact JSON.
func Text(node *ir.Node) string {
	switch node.Type {
	case ir.StringType:
		return node.String
	case ir.NumberType:
		return node.NumberText()
	case ir.BoolType:
		if node.Bool {
			return "true"
		}
		return "false"
	case ir.NullType:
		return ""
	case ir.PathBindingType, ir.FuncBindingType:
		return node.String
	default:
		buf := bytes.NewBuffer(nil)
		enc := json.NewEncoder(buf)
		if err := enc.Encode(ir.ToAny(node)); err != nil {
			return ""
		}
		d := buf.Bytes()
		return string(d[:len(d)-1])
	}
}
