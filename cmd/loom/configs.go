package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/loomui/go-loom/encode"
	"github.com/loomui/go-loom/format"
	"github.com/loomui/go-loom/ir"
	"github.com/loomui/go-loom/parse"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent bool `cli:"name=p aliases=pretty desc='indent output'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{parse.ParseFormat(fmat)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeIndent(cfg.Indent),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type EvalConfig struct {
	*MainConfig

	Data  string `cli:"name=d aliases=data desc='data document file'"`
	Index int    `cli:"name=i aliases=index desc='ambient loop index'"`
	Patch string `cli:"name=patch desc='json patch file applied to data'"`

	Sets []envSet

	Eval *cli.Command
}

type envSet struct {
	path  string
	value *ir.Node
}

// envOpt records a -e path=val override, applied to the data document
// before any expression is evaluated. The value is decoded as yaml so
// plain scalars need no quoting.
func (cfg *EvalConfig) envOpt(_ *cli.Context, a string) (any, error) {
	eq := strings.IndexByte(a, '=')
	if eq == -1 {
		return nil, fmt.Errorf("%w: -e expects path=value", cli.ErrUsage)
	}
	var v any
	if err := yaml.Unmarshal([]byte(a[eq+1:]), &v); err != nil {
		return nil, fmt.Errorf("could not decode value %q: %w", a[eq+1:], err)
	}
	value, err := ir.FromAny(v)
	if err != nil {
		return nil, err
	}
	cfg.Sets = append(cfg.Sets, envSet{path: a[:eq], value: value})
	return nil, nil
}

type GetConfig struct {
	*MainConfig

	Index int `cli:"name=i aliases=index desc='ambient loop index'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Index int `cli:"name=i aliases=index desc='ambient loop index'"`

	Set *cli.Command
}

type FuncsConfig struct {
	*MainConfig

	Funcs *cli.Command
}
