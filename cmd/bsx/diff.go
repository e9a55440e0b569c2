package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/bsexp-format/go-bsexp/encode"
	"github.com/signadot/bsexp-format/go-bsexp/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := diffText(cfg, args[0])
	if err != nil {
		return err
	}
	to, err := diffText(cfg, args[1])
	if err != nil {
		return err
	}
	if from == to {
		return nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	if diffColor(cfg, cc) {
		fmt.Fprint(cc.Out, diffCfg.DiffPrettyText(diffs))
	} else {
		for _, d := range diffs {
			switch d.Type {
			case diffpatch.DiffDelete:
				fmt.Fprintf(cc.Out, "[-%s-]", d.Text)
			case diffpatch.DiffInsert:
				fmt.Fprintf(cc.Out, "[+%s+]", d.Text)
			case diffpatch.DiffEqual:
				fmt.Fprint(cc.Out, d.Text)
			}
		}
	}
	return cli.ExitCodeErr(1)
}

// diffText renders one input in the uncolored pretty form so the
// texts compare structurally.
func diffText(cfg *DiffConfig, arg string) (string, error) {
	nodes, err := cfg.readTrees(arg, format.TextFormat)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", arg, err)
	}
	buf := bytes.NewBuffer(nil)
	opts := []encode.EncodeOption{encode.Pretty(!cfg.Flat)}
	if cfg.Width > 0 {
		opts = append(opts, encode.Width(cfg.Width))
	}
	if err := encode.EncodeAll(nodes, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func diffColor(cfg *DiffConfig, cc *cli.Context) bool {
	if cfg.Color {
		return true
	}
	f, ok := cc.Out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
