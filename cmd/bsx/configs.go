package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/bsexp-format/go-bsexp/encode"
	"github.com/signadot/bsexp-format/go-bsexp/format"
	"github.com/signadot/bsexp-format/go-bsexp/ir"
	"github.com/signadot/bsexp-format/go-bsexp/parse"
	"github.com/signadot/bsexp-format/go-bsexp/wire"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Flat  bool `cli:"name=flat desc='render each expression on one line'"`
	Width int  `cli:"name=w aliases=width desc='pretty print width (default 60)'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Pretty(!cfg.Flat),
	}
	if cfg.Width > 0 {
		res = append(res, encode.Width(cfg.Width))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// inFormat resolves the format of an input argument: an explicit -I
// wins, then the file suffix, then def.
func (cfg *MainConfig) inFormat(arg string, def format.Format) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if arg == "-" {
		return def
	}
	return format.FromSuffix(arg)
}

func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}
	return d, nil
}

// readTrees reads one input argument ("-" for stdin) as a sequence
// of expressions.
func (cfg *MainConfig) readTrees(arg string, def format.Format) ([]*ir.Node, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	if cfg.inFormat(arg, def).IsWire() {
		return wire.Decode(d)
	}
	return parse.Parse(d)
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type PackConfig struct {
	*MainConfig

	Pack *cli.Command
}

type UnpackConfig struct {
	*MainConfig

	Unpack *cli.Command
}

type StatsConfig struct {
	*MainConfig

	Stats *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
