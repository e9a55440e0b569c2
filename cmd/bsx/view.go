package main

import (
	"fmt"

	"github.com/signadot/bsexp-format/go-bsexp/encode"
	"github.com/signadot/bsexp-format/go-bsexp/format"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		nodes, err := cfg.readTrees(arg, format.TextFormat)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		if err := encode.EncodeAll(nodes, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
