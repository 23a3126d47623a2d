package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "loom").
		WithSynopsis("loom [opts] command [opts]").
		WithDescription("loom evaluates layout binding expressions against data documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return loomMain(cfg, cc, args)
		}).
		WithSubs(
			EvalCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			FuncsCommand(cfg))
}

func loomMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Index: -1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "e",
			Description: "set path=val in the data document",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.envOpt), "(path=val)"),
		})
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-d data] [-i index] [-e path=val]... [-patch file] expr [expr...]").
		WithDescription("Evaluate binding expressions against a data document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return loomEval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg, Index: -1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get [-i index] <path> [files]").
		WithDescription("Resolve a data path in documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return loomGet(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg, Index: -1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithAliases("s", "se").
		WithSynopsis("set [-i index] <path> <value> [file]").
		WithDescription("Assign a value at a data path and print the document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return loomSet(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func FuncsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FuncsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("funcs").
		WithAliases("f", "fn").
		WithSynopsis("funcs").
		WithDescription("List registered binding functions").
		WithRun(func(cc *cli.Context, args []string) error {
			return loomFuncs(cfg, cc, args)
		})
	cfg.Funcs = cmd
	return cmd
}
