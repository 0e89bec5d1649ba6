package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/yaziciahmet/jsonv/encode"
	"github.com/yaziciahmet/jsonv/format"
	"github.com/yaziciahmet/jsonv/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='force color output'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`

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

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
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

func (cfg *MainConfig) colorEnabled(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type CheckConfig struct {
	*MainConfig

	Verbose bool `cli:"name=v desc='report valid inputs too'"`
	Raw     bool `cli:"name=raw desc='arguments are JSON text rather than file names'"`
	Depth   int

	Check *cli.Command
}

func (cfg *CheckConfig) depthOpt(_ *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: -depth wants a positive integer, got %q", cli.ErrUsage, a)
	}
	cfg.Depth = n
	return n, nil
}

func (cfg *CheckConfig) parseOpts() []parse.Option {
	if cfg.Depth > 0 {
		return []parse.Option{parse.MaxDepth(cfg.Depth)}
	}
	return nil
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	OutFormat *format.Format

	Convert *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}
