package fn

import (
	"fmt"
	"time"

	"github.com/loomui/go-loom/ir"
)

const defaultDateLayout = "2006-01-02 15:04:05"

// Date takes (value[, out[, in]]) and reformats a date. The value is
// either epoch seconds or a string in the in layout, which defaults to
// "2006-01-02 15:04:05"; out defaults to the same layout.
func Date() *ir.Func {
	return &ir.Func{
		Name: "date",
		Call: func(_ ir.Env, _ *ir.Node, _ int, args []*ir.Node) (*ir.Node, error) {
			if len(args) == 0 {
				return nil, fmt.Errorf("date expects (value[, out[, in]])")
			}
			out := defaultDateLayout
			if len(args) > 1 {
				out = Text(args[1])
			}
			in := defaultDateLayout
			if len(args) > 2 {
				in = Text(args[2])
			}
			var (
				t   time.Time
				err error
			)
			if epoch, ok := args[0].Int(); ok && args[0].Type == ir.NumberType {
				t = time.Unix(epoch, 0).UTC()
			} else {
				t, err = time.Parse(in, Text(args[0]))
				if err != nil {
					return nil, fmt.Errorf("date: %w", err)
				}
			}
			return ir.FromString(t.Format(out)), nil
		},
	}
}
