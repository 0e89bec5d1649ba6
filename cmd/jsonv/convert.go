package main

import (
	"fmt"

	"github.com/yaziciahmet/jsonv/encode"
	"github.com/yaziciahmet/jsonv/format"
	"github.com/yaziciahmet/jsonv/parse"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	ofmt := format.JSONFormat
	if cfg.OutFormat != nil {
		ofmt = *cfg.OutFormat
	}
	for i, file := range args {
		if err := convertFile(cfg, cc, file, ofmt); err != nil {
			return err
		}
		if ofmt.IsYAML() && i < len(args)-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}

func convertFile(cfg *ConvertConfig, cc *cli.Context, file string, ofmt format.Format) error {
	in, err := readFileArg(cc, file)
	if err != nil {
		return err
	}
	node, err := parse.Parse(in)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", file, err)
	}
	if ofmt.IsJSON() {
		return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
	}
	d, err := yaml.Marshal(node.Interface())
	if err != nil {
		return fmt.Errorf("error encoding %s as yaml: %w", file, err)
	}
	_, err = cc.Out.Write(d)
	return err
}
