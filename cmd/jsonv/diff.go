package main

import (
	"errors"
	"fmt"

	"github.com/yaziciahmet/jsonv/debug"
	"github.com/yaziciahmet/jsonv/encode"
	"github.com/yaziciahmet/jsonv/ir"
	"github.com/yaziciahmet/jsonv/parse"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

var errDiffer = errors.New("documents differ")

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff <a> <b>", cli.ErrUsage)
	}
	from, err := diffInput(cfg, cc, args[0])
	if err != nil {
		return err
	}
	to, err := diffInput(cfg, cc, args[1])
	if err != nil {
		return err
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, true)
	if debug.Diff() {
		debug.Logf("diff %s %s: %d spans\n", args[0], args[1], len(diffs))
	}
	same := true
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			same = false
			break
		}
	}
	if same {
		return nil
	}
	var out string
	if cfg.colorEnabled(cc.Out) {
		out = diffCfg.DiffPrettyText(diffs)
	} else {
		out = diffCfg.PatchToText(diffCfg.PatchMake(from, diffs))
	}
	if _, err := cc.Out.Write([]byte(out)); err != nil {
		return err
	}
	return errDiffer
}

// diffInput parses one document and renders it canonically so the
// textual diff is insensitive to the inputs' whitespace.
func diffInput(cfg *DiffConfig, cc *cli.Context, file string) (string, error) {
	in, err := readFileArg(cc, file)
	if err != nil {
		return "", err
	}
	var node *ir.Node
	if node, err = parse.Parse(in); err != nil {
		return "", fmt.Errorf("error parsing %s: %w", file, err)
	}
	return encode.MustString(node) + "\n", nil
}
