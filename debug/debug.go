// Package debug holds env-gated debug switches for the command layer.
// The token and parse packages never log; errors there are values.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Check bool
	Diff  bool
	Patch bool
	LSP   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Check = boolEnv("JSONV_DEBUG_CHECK")
	d.Diff = boolEnv("JSONV_DEBUG_DIFF")
	d.Patch = boolEnv("JSONV_DEBUG_PATCH")
	d.LSP = boolEnv("JSONV_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Check() bool {
	return d.Check
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func LSP() bool {
	return d.LSP
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
