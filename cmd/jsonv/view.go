package main

import (
	"fmt"
	"io"

	"github.com/yaziciahmet/jsonv/encode"
	"github.com/yaziciahmet/jsonv/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := viewFile(cfg, cc, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, w io.Writer, file string) error {
	in, err := readFileArg(cc, file)
	if err != nil {
		return err
	}
	node, err := parse.Parse(in)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", file, err)
	}
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return nil
}
