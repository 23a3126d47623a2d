package main

import (
	"fmt"

	"github.com/loomui/go-loom/binding"
	"github.com/loomui/go-loom/encode"
	"github.com/loomui/go-loom/ir"
	"github.com/loomui/go-loom/token"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func loomSet(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: expected <path> <value>", cli.ErrUsage)
	}
	var v any
	if err := yaml.Unmarshal([]byte(args[1]), &v); err != nil {
		return fmt.Errorf("could not decode value %q: %w", args[1], err)
	}
	value, err := ir.FromAny(v)
	if err != nil {
		return err
	}
	file := ""
	if len(args) > 2 {
		file = args[2]
	}
	data, err := loadData(cfg.MainConfig, file)
	if err != nil {
		return err
	}
	if err := binding.Assign(token.SplitPath(args[0]), value, data, cfg.Index); err != nil {
		return err
	}
	return encode.Encode(data, cc.Out, cfg.encOpts(cc.Out)...)
}
