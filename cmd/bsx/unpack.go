package main

import (
	"fmt"

	"github.com/signadot/bsexp-format/go-bsexp/debug"
	"github.com/signadot/bsexp-format/go-bsexp/encode"
	"github.com/signadot/bsexp-format/go-bsexp/format"

	"github.com/scott-cotton/cli"
)

func unpack(cfg *UnpackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unpack.Parse(cc, args)
	if err != nil {
		cfg.Unpack.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		nodes, err := cfg.readTrees(arg, format.WireFormat)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		if debug.Trees() {
			for _, n := range nodes {
				debug.Logf("unpacked %v\n", n)
			}
		}
		if err := encode.EncodeAll(nodes, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
