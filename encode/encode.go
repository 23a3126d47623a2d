// Package encode renders ir.Node trees to JSON or YAML, preserving object
// field order and optionally coloring JSON output for terminals.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/loomui/go-loom/format"
	"github.com/loomui/go-loom/ir"

	"github.com/goccy/go-yaml"
)

func Encode(y *ir.Node, w io.Writer, opts ...EncodeOption) error {
	cfg := &config{format: format.JSONFormat}
	for _, opt := range opts {
		opt(cfg)
	}
	switch cfg.format {
	case format.JSONFormat:
		e := &encoder{w: w, cfg: cfg}
		if err := e.encode(y, 0); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case format.YAMLFormat:
		d, err := yaml.Marshal(ir.ToAny(y))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, cfg.format)
	}
}

type encoder struct {
	w   io.Writer
	cfg *config
}

func (e *encoder) encode(y *ir.Node, depth int) error {
	switch y.Type {
	case ir.ObjectType:
		return e.object(y, depth)
	case ir.ArrayType:
		return e.array(y, depth)
	case ir.StringType, ir.PathBindingType, ir.FuncBindingType:
		return e.scalar(y.Type, quote(nodeText(y)))
	case ir.NumberType:
		return e.scalar(y.Type, y.NumberText())
	case ir.BoolType:
		if y.Bool {
			return e.scalar(y.Type, "true")
		}
		return e.scalar(y.Type, "false")
	case ir.NullType:
		return e.scalar(y.Type, "null")
	default:
		return fmt.Errorf("cannot encode %s", y.Type)
	}
}

func (e *encoder) object(y *ir.Node, depth int) error {
	if len(y.Fields) == 0 {
		return e.puts("{}")
	}
	if err := e.puts("{"); err != nil {
		return err
	}
	n := len(y.Fields)
	for i := range n {
		if i > 0 {
			if err := e.puts(","); err != nil {
				return err
			}
		}
		if err := e.newline(depth + 1); err != nil {
			return err
		}
		key := quote(y.Fields[i].String)
		if e.cfg.colors != nil {
			key = e.cfg.colors.Color(ir.ObjectType, FieldColor, key)
		}
		if err := e.puts(key + ":"); err != nil {
			return err
		}
		if e.cfg.indent {
			if err := e.puts(" "); err != nil {
				return err
			}
		}
		if err := e.encode(y.Values[i], depth+1); err != nil {
			return err
		}
	}
	if err := e.newline(depth); err != nil {
		return err
	}
	return e.puts("}")
}

func (e *encoder) array(y *ir.Node, depth int) error {
	if len(y.Values) == 0 {
		return e.puts("[]")
	}
	if err := e.puts("["); err != nil {
		return err
	}
	for i, elt := range y.Values {
		if i > 0 {
			if err := e.puts(","); err != nil {
				return err
			}
		}
		if err := e.newline(depth + 1); err != nil {
			return err
		}
		if err := e.encode(elt, depth+1); err != nil {
			return err
		}
	}
	if err := e.newline(depth); err != nil {
		return err
	}
	return e.puts("]")
}

func (e *encoder) scalar(t ir.Type, s string) error {
	if e.cfg.colors != nil {
		s = e.cfg.colors.Color(t, ValueColor, s)
	}
	return e.puts(s)
}

func (e *encoder) newline(depth int) error {
	if !e.cfg.indent {
		return nil
	}
	return e.puts("\n" + strings.Repeat("  ", depth))
}

func (e *encoder) puts(s string) error {
	_, err := io.WriteString(e.w, s)
	return err
}

func nodeText(y *ir.Node) string {
	return y.String
}

func quote(s string) string {
	d, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(d)
}
