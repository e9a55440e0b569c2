package main

import (
	"fmt"

	"github.com/signadot/bsexp-format/go-bsexp/debug"
	"github.com/signadot/bsexp-format/go-bsexp/format"
	"github.com/signadot/bsexp-format/go-bsexp/ir"
	"github.com/signadot/bsexp-format/go-bsexp/wire"

	"github.com/scott-cotton/cli"
)

// pack reads textual expressions and writes one wire container
// holding all of them, in input order.
func pack(cfg *PackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pack.Parse(cc, args)
	if err != nil {
		cfg.Pack.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var roots []*ir.Node
	for _, arg := range args {
		nodes, err := cfg.readTrees(arg, format.TextFormat)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		roots = append(roots, nodes...)
	}
	d := wire.Encode(roots)
	if debug.Pool() {
		if st, err := wire.Stat(d); err == nil {
			debug.Logf("packed %d roots: %d atoms, %d nodes, %d bytes\n",
				st.RootCount, st.AtomCount, st.NodeCount, len(d))
		}
	}
	if _, err := cc.Out.Write(d); err != nil {
		return fmt.Errorf("error writing container: %w", err)
	}
	return nil
}
