package binding

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/loomui/go-loom/debug"
	"github.com/loomui/go-loom/ir"
	"github.com/loomui/go-loom/token"
)

var ErrAssign = errors.New("invalid assignment")

// Assign walks all tokens but the last like Resolve does, except that
// missing or wrongly shaped intermediate containers are created on demand,
// then writes value at the final token, mutating data in place. Assignment
// is driven by trusted, pre-validated expressions, so structurally
// nonsensical requests fail fast with an error instead of the Result
// taxonomy.
//
// The container created for a missing step is chosen by the next token: an
// array when the next access is an array index, an object otherwise.
// Writing an array index removes the existing element and inserts the new
// value at the same position, preserving array length.
func Assign(toks []token.Token, value, data *ir.Node, index int) error {
	if len(toks) == 0 {
		return fmt.Errorf("%w: empty path", ErrAssign)
	}
	if data == nil {
		return fmt.Errorf("%w: nil data root", ErrAssign)
	}
	cur := data
	for i := 0; i < len(toks)-1; i++ {
		next, err := step(cur, toks[i], toks[i+1], index)
		if err != nil {
			return err
		}
		cur = next
	}
	return write(cur, toks[len(toks)-1], value, index)
}

func step(cur *ir.Node, tok, next token.Token, index int) (*ir.Node, error) {
	wantArray := next.ArrayIndex
	switch cur.Type {
	case ir.ArrayType:
		idx, err := assignIndex(cur, tok, index)
		if err != nil {
			return nil, err
		}
		for len(cur.Values) <= idx {
			cur.Append(container(wantArray))
		}
		child := cur.Values[idx]
		if !shaped(child, wantArray) {
			child = container(wantArray)
			cur.Values[idx] = child
		}
		return child, nil
	case ir.ObjectType:
		child := ir.Get(cur, tok.Text)
		if child == nil || !shaped(child, wantArray) {
			if debug.Assign() {
				debug.Logf("assign: creating %s at %q\n", container(wantArray).Type, tok.Text)
			}
			child = container(wantArray)
			cur.SetField(tok.Text, child)
		}
		return child, nil
	default:
		return nil, fmt.Errorf("%w: cannot descend into %s at %q", ErrAssign, cur.Type, tok.Text)
	}
}

func write(cur *ir.Node, tok token.Token, value *ir.Node, index int) error {
	switch cur.Type {
	case ir.ArrayType:
		idx, err := assignIndex(cur, tok, index)
		if err != nil {
			return err
		}
		for len(cur.Values) < idx {
			cur.Append(ir.Null())
		}
		if idx == len(cur.Values) {
			cur.Append(value)
			return nil
		}
		// remove then reinsert at the same position rather than
		// overwrite; element shapes may be heterogeneous
		cur.Values = slices.Delete(cur.Values, idx, idx+1)
		cur.Values = slices.Insert(cur.Values, idx, value)
		return nil
	case ir.ObjectType:
		cur.SetField(tok.Text, value)
		return nil
	default:
		return fmt.Errorf("%w: cannot write into %s at %q", ErrAssign, cur.Type, tok.Text)
	}
}

// assignIndex reads tok as an array index, substituting the ambient index
// for $index. The other reserved words have no write location.
func assignIndex(cur *ir.Node, tok token.Token, index int) (int, error) {
	switch tok.Text {
	case token.Index:
		if index < 0 {
			return 0, fmt.Errorf("%w: no ambient index", ErrAssign)
		}
		return index, nil
	case token.Length, token.Last:
		return 0, fmt.Errorf("%w: cannot assign to %s", ErrAssign, tok.Text)
	}
	n, err := strconv.Atoi(tok.Text)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: bad array index %q", ErrAssign, tok.Text)
	}
	return n, nil
}

func shaped(child *ir.Node, wantArray bool) bool {
	if wantArray {
		return child.Type == ir.ArrayType
	}
	return child.Type == ir.ObjectType
}

func container(wantArray bool) *ir.Node {
	if wantArray {
		return ir.Array()
	}
	return ir.Object()
}
