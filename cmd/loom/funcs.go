package main

import (
	"fmt"

	"github.com/loomui/go-loom/fn"

	"github.com/scott-cotton/cli"
)

func loomFuncs(cfg *FuncsConfig, cc *cli.Context, args []string) error {
	fmt.Fprintf(cc.Out, "available binding functions:\n")
	for _, f := range fn.Default().Funcs() {
		fmt.Fprintf(cc.Out, "\t- %s\n", f.Name)
	}
	return nil
}
