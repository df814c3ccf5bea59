// Command grok executes a Grok (><> family) program: a script file, or
// inline code via -c. See SPEC_FULL.md §6 for the full flag surface. This
// is the host glue spec.md §1 carves out as "out of scope" for the core:
// it only turns CLI args and OS stdio into constructor parameters for
// internal/interp.Interpreter and renders its result.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"grok/internal/grokopts"
	"grok/internal/interp"
	"grok/internal/iohost"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCommand builds the cobra command tree for the grok binary. It
// mirrors vslc's src/main.go `run` function's shape (read source, build the
// engine, execute, render the outcome) with cobra/pflag standing in for
// the teacher's hand-rolled util.ParseArgs.
func newRootCommand() *cobra.Command {
	var opt *grokopts.Options

	cmd := &cobra.Command{
		Use:   "grok [script]",
		Short: "Execute a Grok (><> family) esolang program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opt.Validate(args); err != nil {
				return err
			}
			return runGrok(cmd, opt)
		},
	}
	opt = grokopts.Bind(cmd.Flags())
	return cmd
}

// runGrok reads the program source, wires host stdio into the core and
// drives execution to completion.
func runGrok(cmd *cobra.Command, opt *grokopts.Options) error {
	source := opt.Code
	if opt.Script != "" {
		b, err := os.ReadFile(opt.Script)
		if err != nil {
			return fmt.Errorf("could not read source code: %w", err)
		}
		source = string(b)
	}

	out := iohost.NewOutput(os.Stdout)

	var in iohost.Input
	if fi, err := os.Stdin.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) != 0 {
		in = iohost.NewInteractiveInput(int(os.Stdin.Fd()), os.Stdin, out)
	} else {
		in = iohost.NewPipedInput(os.Stdin)
	}

	log := logrus.New()
	if opt.Debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.PanicLevel)
	}

	ip := interp.New(source, opt.Seed, in, out, interp.Config{
		TickDelay:  opt.Tick,
		AlwaysTick: opt.AlwaysTick,
		Debug:      opt.Debug,
		Log:        log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := ip.Run(ctx)

	if ip.TrailingNewline() {
		_ = out.WriteString("\n")
	}
	if runErr != nil {
		fmt.Print(ip.RenderError(runErr) + "\n")
	}
	return nil
}
