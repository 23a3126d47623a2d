package main

import (
	"fmt"

	"github.com/loomui/go-loom/binding"
	"github.com/loomui/go-loom/encode"
	"github.com/loomui/go-loom/token"

	"github.com/scott-cotton/cli"
)

func loomGet(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no path given", cli.ErrUsage)
	}
	toks := token.SplitPath(args[0])
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		data, err := loadData(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		res := binding.Resolve(toks, data, cfg.Index)
		if res.Kind != binding.Success {
			return fmt.Errorf("%s: %s", args[0], res.Kind)
		}
		if err := encode.Encode(res.Value, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
