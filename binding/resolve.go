package binding

import (
	"strconv"

	"github.com/loomui/go-loom/debug"
	"github.com/loomui/go-loom/ir"
	"github.com/loomui/go-loom/token"
)

// Resolve walks toks left to right starting at data, substituting index
// for $index. It is read-only; the walk is bounded by the token list and
// never fails with an error, only with a Result kind.
func Resolve(toks []token.Token, data *ir.Node, index int) Result {
	cur := data
	for _, tok := range toks {
		if cur == nil {
			return Result{Kind: NullEncountered}
		}
		switch tok.Text {
		case token.Index:
			if cur.Type != ir.ArrayType {
				return fail(InvalidPath, tok, cur)
			}
			if index < 0 || index >= len(cur.Values) {
				return fail(NoSuchPath, tok, cur)
			}
			cur = cur.Values[index]
			continue
		case token.Length:
			if cur.Type != ir.ArrayType {
				return fail(InvalidPath, tok, cur)
			}
			cur = ir.FromInt(int64(len(cur.Values)))
			continue
		case token.Last:
			if cur.Type != ir.ArrayType {
				return fail(InvalidPath, tok, cur)
			}
			if len(cur.Values) == 0 {
				return fail(NoSuchPath, tok, cur)
			}
			cur = cur.Values[len(cur.Values)-1]
			continue
		}
		switch cur.Type {
		case ir.ArrayType:
			n, err := strconv.Atoi(tok.Text)
			if err != nil || n < 0 {
				return fail(InvalidPath, tok, cur)
			}
			if n >= len(cur.Values) {
				return fail(NoSuchPath, tok, cur)
			}
			cur = cur.Values[n]
		case ir.ObjectType:
			v := ir.Get(cur, tok.Text)
			if v == nil {
				return fail(NoSuchPath, tok, cur)
			}
			cur = v
		case ir.NullType:
			return fail(NullEncountered, tok, cur)
		default:
			// a scalar with tokens left to consume
			return fail(InvalidPath, tok, cur)
		}
	}
	if cur == nil || cur.Type == ir.NullType {
		return Result{Kind: NullEncountered}
	}
	return success(cur)
}

func fail(kind ResultKind, tok token.Token, at *ir.Node) Result {
	if debug.Resolve() {
		debug.Logf("resolve: %s at token %q (node type %s)\n", kind, tok.Text, at.Type)
	}
	return Result{Kind: kind}
}
