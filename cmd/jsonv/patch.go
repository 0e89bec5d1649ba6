package main

import (
	"fmt"

	"github.com/yaziciahmet/jsonv/debug"
	"github.com/yaziciahmet/jsonv/encode"
	"github.com/yaziciahmet/jsonv/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch <patchfile> [files]", cli.ErrUsage)
	}
	patchBytes, err := readFileArg(cc, args[0])
	if err != nil {
		return err
	}
	if err := parse.Validate(patchBytes); err != nil {
		return fmt.Errorf("invalid patch %s: %w", args[0], err)
	}
	ops, err := jsonpatch.DecodePatch(patchBytes)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		if err := patchFile(cfg, cc, ops, file); err != nil {
			return err
		}
	}
	return nil
}

func patchFile(cfg *PatchConfig, cc *cli.Context, ops jsonpatch.Patch, file string) error {
	in, err := readFileArg(cc, file)
	if err != nil {
		return err
	}
	if err := parse.Validate(in); err != nil {
		return fmt.Errorf("invalid document %s: %w", file, err)
	}
	if debug.Patch() {
		debug.Logf("patching %s (%d bytes)\n", file, len(in))
	}
	out, err := ops.Apply(in)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	node, err := parse.Parse(out)
	if err != nil {
		return fmt.Errorf("error reparsing patched %s: %w", file, err)
	}
	if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return nil
}
