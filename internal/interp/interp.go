// Package interp assembles Grid, Stack, Register, IP Walker, Mode
// Controller and Dispatcher into one program execution, and drives the
// step loop the host calls into (spec.md §2 "Data flow per tick"). It is
// the Go-native counterpart of vslc's src/main.go `run` function and
// util/perror.go's cooperative-listener pattern, collapsed from vslc's
// multi-worker error aggregation to the single cooperative-cancellation
// check a single-threaded interpreter needs (spec.md §5).
package interp

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"grok/internal/dispatch"
	"grok/internal/grid"
	"grok/internal/iohost"
	"grok/internal/ipwalker"
	"grok/internal/mode"
	"grok/internal/numeric"
	"grok/internal/register"
	"grok/internal/stack"
)

// Config holds the host-tunable knobs spec.md §6 exposes as CLI flags.
type Config struct {
	// TickDelay is the inter-instruction delay (spec.md §6 `-t`).
	TickDelay time.Duration
	// AlwaysTick applies TickDelay on every step, not just on
	// non-space, non-skipped ones (spec.md §6 `-a`).
	AlwaysTick bool
	// Debug propagates the underlying fault instead of the generic
	// "You don't grok Grok." message (spec.md §6 `-e`, §7).
	Debug bool
	// Log receives per-step tracing when Debug is set. A nil Log
	// disables tracing entirely, even in debug mode.
	Log *logrus.Logger
}

// Interpreter owns one program execution's Grid (read-only, shared-safe)
// plus its exclusive Stack, Register, Mode and Walker (spec.md §3
// "Lifecycle").
type Interpreter struct {
	disp *dispatch.Dispatcher
	out  *iohost.Output
	cfg  Config
}

// New constructs an Interpreter for the given source, with seed pushed
// onto the stack in order before execution starts (spec.md §6 `-s`/`-v`),
// reading `:` input from in and writing output to out.
func New(source string, seed []numeric.Value, in iohost.Input, out *iohost.Output, cfg Config) *Interpreter {
	g := grid.Load(source)
	s := stack.New()
	for _, v := range seed {
		s.Push(v)
	}
	reg := &register.Register{}
	w := ipwalker.New(g)
	m := mode.New()
	d := dispatch.New(s, reg, w, m, out, in)

	if cfg.Log == nil {
		cfg.Log = logrus.New()
		cfg.Log.SetLevel(logrus.PanicLevel) // silent unless caller opts in
	}

	return &Interpreter{disp: d, out: out, cfg: cfg}
}

// Run drives the step loop until termination: `q`, a fault, or ctx being
// done. It returns nil on normal termination (including cancellation),
// matching PyGrok.py's clean exit on both StopExecution and
// KeyboardInterrupt; faults are returned as errors for the host to render
// per the Debug setting (spec.md §7).
func (ip *Interpreter) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		cp, skipped, err := ip.disp.Step(ctx)
		if ip.cfg.Debug {
			ip.cfg.Log.WithFields(logrus.Fields{
				"code_point": cp,
				"skipped":    skipped,
			}).Debug("step")
		}

		if err != nil {
			switch {
			case errors.Is(err, dispatch.ErrQuit):
				return nil
			case errors.Is(err, dispatch.ErrCancelled):
				return nil
			default:
				return err
			}
		}

		if ip.shouldTick(cp, skipped) && ip.cfg.TickDelay > 0 {
			select {
			case <-time.After(ip.cfg.TickDelay):
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// shouldTick reports whether the configured tick delay applies to this
// step: every step if AlwaysTick, otherwise only steps that were dispatched
// (not skipped) against a non-space cell, matching PyGrok.py's
// `if instr and not instr == " " or always_tick` gate.
func (ip *Interpreter) shouldTick(cp int, skipped bool) bool {
	if ip.cfg.AlwaysTick {
		return true
	}
	return !skipped && cp != 0
}

// TrailingNewline reports whether the host should append a cosmetic
// trailing newline on exit: true when output was produced and the last
// emission did not already end in one (spec.md §7).
func (ip *Interpreter) TrailingNewline() bool {
	return ip.out.Wrote() && !ip.out.EndedInNewline()
}

// RenderError renders err for display, collapsing anything that is not a
// quit/cancellation into the generic message unless Debug is set
// (spec.md §7).
func (ip *Interpreter) RenderError(err error) string {
	if err == nil {
		return ""
	}
	if ip.cfg.Debug {
		return fmt.Sprintf("%+v", err)
	}
	return "You don't grok Grok."
}
