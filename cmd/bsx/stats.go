package main

import (
	"fmt"

	"github.com/signadot/bsexp-format/go-bsexp/wire"

	"github.com/scott-cotton/cli"
)

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		cfg.Stats.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		st, err := wire.Stat(d)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		if len(args) > 1 {
			fmt.Fprintf(cc.Out, "%s:\n", arg)
		}
		fmt.Fprintf(cc.Out, "atoms: %d entries, %d bytes\n", st.AtomCount, st.AtomBufLen)
		fmt.Fprintf(cc.Out, "roots: %d\n", st.RootCount)
		fmt.Fprintf(cc.Out, "nodes: %d entries, %d bytes\n", st.NodeCount, st.NodeBufLen)
		fmt.Fprintf(cc.Out, "container: %d bytes\n", len(d))
	}
	return nil
}
