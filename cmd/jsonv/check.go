package main

import (
	"fmt"
	"os"

	"github.com/yaziciahmet/jsonv/debug"
	"github.com/yaziciahmet/jsonv/parse"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		if cfg.Raw {
			return fmt.Errorf("%w: -raw wants at least one argument", cli.ErrUsage)
		}
		args = []string{"-"}
	}
	bad := 0
	for i, arg := range args {
		name := arg
		if cfg.Raw {
			name = fmt.Sprintf("arg %d", i+1)
		}
		if err := checkInput(cfg, cc, name, arg); err != nil {
			bad++
			msg := fmt.Sprintf("%s: %v", name, err)
			if cfg.colorEnabled(os.Stderr) {
				msg = color.RedString("%s", msg)
			}
			fmt.Fprintln(os.Stderr, msg)
			continue
		}
		if cfg.Verbose {
			fmt.Fprintf(cc.Out, "%s: ok\n", name)
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d inputs invalid", bad, len(args))
	}
	return nil
}

// checkInput validates one input: the argument itself under -raw, the
// named file (or stdin for "-") otherwise.
func checkInput(cfg *CheckConfig, cc *cli.Context, name, arg string) error {
	var in []byte
	if cfg.Raw {
		in = []byte(arg)
	} else {
		var err error
		if in, err = readFileArg(cc, arg); err != nil {
			return err
		}
	}
	if debug.Check() {
		debug.Logf("checking %s (%d bytes)\n", name, len(in))
	}
	return parse.Validate(in, cfg.parseOpts()...)
}
