package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: text/t, wire/w",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, wire/w",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "bsx").
		WithSynopsis("bsx [opts] command [opts]").
		WithDescription("bsx is a tool for working with binary s-expressions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bsxMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			PackCommand(cfg),
			UnpackCommand(cfg),
			StatsCommand(cfg),
			DiffCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view expression files, prettily and in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func PackCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PackConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("pack").
		WithAliases("p").
		WithSynopsis("pack [files]").
		WithDescription("pack textual expressions into a wire container").
		WithRun(func(cc *cli.Context, args []string) error {
			return pack(cfg, cc, args)
		})
	cfg.Pack = cmd
	return cmd
}

func UnpackCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnpackConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("unpack").
		WithAliases("u").
		WithSynopsis("unpack [files]").
		WithDescription("unpack wire containers into text").
		WithRun(func(cc *cli.Context, args []string) error {
			return unpack(cfg, cc, args)
		})
	cfg.Unpack = cmd
	return cmd
}

func StatsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("stats").
		WithSynopsis("stats [files]").
		WithDescription("show pool statistics of wire containers").
		WithRun(func(cc *cli.Context, args []string) error {
			return stats(cfg, cc, args)
		})
	cfg.Stats = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("diff the rendered forms of two expression files").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
