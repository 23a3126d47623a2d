package binding

import "github.com/loomui/go-loom/ir"

// ResultKind classifies the outcome of resolving a path against a data
// tree. Resolution failures are expected outcomes, not errors: the
// evaluator maps every non-success kind to a null value.
type ResultKind int

const (
	// Success carries the resolved value.
	Success ResultKind = iota
	// NullEncountered reports a null on the walk, including a terminal
	// null: resolving to null and resolving through null are the same
	// "no value" outcome.
	NullEncountered
	// NoSuchPath reports a missing key, an out-of-range index, or $last
	// of an empty array.
	NoSuchPath
	// InvalidPath reports a structurally impossible access, such as a
	// non-numeric index into an array or a walk continuing through a
	// scalar.
	InvalidPath
)

func (k ResultKind) String() string {
	s, ok := map[ResultKind]string{
		Success:         "success",
		NullEncountered: "null encountered",
		NoSuchPath:      "no such path",
		InvalidPath:     "invalid path",
	}[k]
	if ok {
		return s
	}
	return "<unknown result>"
}

type Result struct {
	Kind  ResultKind
	Value *ir.Node
}

func success(v *ir.Node) Result {
	return Result{Kind: Success, Value: v}
}
