package main

import (
	"fmt"
	"io"
	"os"

	"github.com/loomui/go-loom/binding"
	"github.com/loomui/go-loom/encode"
	"github.com/loomui/go-loom/ir"
	"github.com/loomui/go-loom/parse"
	"github.com/loomui/go-loom/token"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func loomEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no expressions given", cli.ErrUsage)
	}
	data, err := loadData(cfg.MainConfig, cfg.Data)
	if err != nil {
		return err
	}
	for _, set := range cfg.Sets {
		if err := binding.Assign(token.SplitPath(set.path), set.value, data, cfg.Index); err != nil {
			return err
		}
	}
	if cfg.Patch != "" {
		data, err = patchData(data, cfg.Patch)
		if err != nil {
			return err
		}
	}
	env := binding.NewEnv()
	for _, arg := range args {
		res := ir.FromString(arg)
		if binding.IsBindingSyntax(arg) {
			b, err := binding.Compile(arg, env)
			if err != nil {
				return err
			}
			res = b.Evaluate(env, data, cfg.Index)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result for %q: %w", arg, err)
		}
	}
	return nil
}

func loadData(cfg *MainConfig, file string) (*ir.Node, error) {
	if file == "" {
		return ir.Object(), nil
	}
	var r io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", file, err)
	}
	y, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", file, err)
	}
	return y, nil
}

// patchData applies an RFC 6902 JSON patch to the data document before any
// bindings are evaluated.
func patchData(data *ir.Node, patchFile string) (*ir.Node, error) {
	pd, err := os.ReadFile(patchFile)
	if err != nil {
		return nil, fmt.Errorf("could not read patch %q: %w", patchFile, err)
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch %q: %w", patchFile, err)
	}
	d, err := data.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("error applying patch %q: %w", patchFile, err)
	}
	return parse.Parse(out)
}
