// Package grokopts parses the Grok CLI surface (spec.md §6) into an
// Options value the core's interp.Config and seed stack can be built from.
// It plays the role vslc's util.Options/util.ParseArgs played for the
// compiler, but built on github.com/spf13/pflag instead of a hand-rolled
// os.Args loop, per SPEC_FULL.md §6.
package grokopts

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"grok/internal/numeric"
)

// Options holds the parsed command-line surface for one Grok execution.
type Options struct {
	Script string // path to a .grk source file; empty if Code was used.
	Code   string // inline program source passed via -c/--code.

	Seed []numeric.Value // pre-stack values, in command-line order.

	Tick       time.Duration // -t/--tick
	AlwaysTick bool          // -a/--always-tick
	Debug      bool          // -e/--debug
}

// Bind registers Grok's flags on fs and returns the Options value they will
// populate once fs.Parse has run.
func Bind(fs *pflag.FlagSet) *Options {
	opt := &Options{}

	fs.StringVarP(&opt.Code, "code", "c", "", "inline Grok program to execute")
	fs.VarP(&stringSeed{seeds: &opt.Seed}, "string", "s", "push each character's code point onto the stack before execution (repeatable)")
	fs.VarP(&valueSeed{seeds: &opt.Seed}, "value", "v", "push one or more whitespace/comma-separated numbers onto the stack before execution (repeatable)")
	fs.DurationVarP(&opt.Tick, "tick", "t", 0, "delay between executed instructions")
	fs.BoolVarP(&opt.AlwaysTick, "always-tick", "a", false, "apply the tick delay on every step, including spaces and skipped cells")
	fs.BoolVarP(&opt.Debug, "debug", "e", false, "show the underlying error instead of the generic message")

	return opt
}

// Validate enforces that exactly one of a positional script path or -c/--code
// was supplied, mirroring PyGrok.py's mutually-exclusive argparse group.
func (o *Options) Validate(args []string) error {
	switch {
	case len(args) == 0 && o.Code == "":
		return fmt.Errorf("expected a script file or -c/--code, got neither")
	case len(args) > 0 && o.Code != "":
		return fmt.Errorf("expected a script file or -c/--code, got both")
	case len(args) > 1:
		return fmt.Errorf("expected a single script file, got %d", len(args))
	}
	if len(args) == 1 {
		o.Script = args[0]
	}
	return nil
}
