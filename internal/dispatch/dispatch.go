// Package dispatch implements the Grok instruction table: given the code
// point at the IP, it mutates the Stack, Register, IP Walker and Mode
// Controller, and performs I/O through host-supplied sinks. This is the
// ~40-operation heart of the interpreter (spec.md §2, §4.5), grounded on
// vslc's ir/validate.go switch-over-enum dispatch style.
package dispatch

import (
	"context"
	"io"
	"math"
	"unicode"

	"github.com/pkg/errors"

	"grok/internal/ipwalker"
	"grok/internal/iohost"
	"grok/internal/mode"
	"grok/internal/numeric"
	"grok/internal/register"
	"grok/internal/stack"
)

// Dispatcher executes one Grok instruction against the components it is
// constructed with. A Dispatcher is created once per program execution and
// shares the lifetime of its Stack/Register/Mode/Walker (spec.md §3
// "Lifecycle").
type Dispatcher struct {
	Stack  *stack.Stack
	Reg    *register.Register
	Walker *ipwalker.Walker
	Mode   *mode.Controller

	Out *iohost.Output
	In  iohost.Input
}

// New returns a Dispatcher wired to the given components and host sinks.
func New(s *stack.Stack, r *register.Register, w *ipwalker.Walker, m *mode.Controller, out *iohost.Output, in iohost.Input) *Dispatcher {
	return &Dispatcher{Stack: s, Reg: r, Walker: w, Mode: m, Out: out, In: in}
}

// Step fetches the code point at the Walker's current position, applies the
// mode-sensitive prelude and, if the prelude did not fully consume the
// instruction, dispatches it through the normal instruction table. It
// returns the fetched code point, whether dispatch was suppressed by the
// skip flag (the host uses this to decide whether a tick delay applies),
// and ErrQuit on `q` or any fault the instruction raised.
func (d *Dispatcher) Step(ctx context.Context) (cp int, skipped bool, err error) {
	cp = d.Walker.Step()
	if d.Mode.ConsumeSkip() {
		return cp, true, nil
	}
	return cp, false, d.dispatch(ctx, cp)
}

// dispatch applies the mode-sensitive prelude (spec.md §4.5) and, if the
// char was not fully consumed by the prelude, the Normal instruction table.
func (d *Dispatcher) dispatch(ctx context.Context, cp int) error {
	ch := rune(cp)

	switch d.Mode.Kind() {
	case mode.Insert:
		if ch != '`' {
			d.Mode.AppendInsert(ch)
			return nil
		}
		d.flushInsert()
		return nil

	case mode.Regin:
		if isDigit(ch) {
			d.Mode.AppendReginDigit(int64(ch - '0'))
			return nil
		}
		if ch == '`' {
			if d.Mode.ReginEntered() {
				d.Reg.Set(numeric.Int(d.Mode.ReginNumber()))
			}
			d.Mode.SetSkip()
			d.Mode.ToNormal()
			return nil
		}
		// Non-digit, non-backtick: finalize and, only if a number was
		// accumulating, fall through to dispatch ch normally. A non-digit
		// as the very first Regin character instead loads its code point
		// directly into the register and is consumed without dispatch
		// (spec.md §9 open question: this asymmetry is intentional).
		entered := d.Mode.ReginEntered()
		if entered {
			d.Reg.Set(numeric.Int(d.Mode.ReginNumber()))
		}
		d.Mode.ToNormal()
		if !entered {
			d.Reg.Set(numeric.Int(int64(ch)))
			return nil
		}
		// fall through to Normal dispatch below.
	}

	if ch == '`' && d.Mode.Kind() == mode.Normal {
		d.Mode.SetSkip()
		return nil
	}

	return d.dispatchNormal(ctx, ch)
}

// flushInsert finalizes the Insert-mode buffer: an all-digit buffer is
// pushed as a single integer, otherwise each code point is pushed in
// reverse so that popping it back in order (e.g. via `w`) reproduces the
// original string.
func (d *Dispatcher) flushInsert() {
	buf := d.Mode.InsertBuffer()
	if allDigits(buf) && len(buf) > 0 {
		d.Stack.Push(numeric.Int(parseDigits(buf)))
	} else {
		for i := len(buf) - 1; i >= 0; i-- {
			d.Stack.Push(numeric.Int(int64(buf[i])))
		}
	}
	d.Mode.ToNormal()
}

// dispatchNormal executes one Normal-mode instruction (spec.md §4.5 table).
func (d *Dispatcher) dispatchNormal(ctx context.Context, ch rune) error {
	switch {
	case ch == 'h':
		d.Walker.SetDirection(ipwalker.Left)
	case ch == 'j':
		d.Walker.SetDirection(ipwalker.Down)
	case ch == 'k':
		d.Walker.SetDirection(ipwalker.Up)
	case ch == 'l':
		d.Walker.SetDirection(ipwalker.Right)

	case isDigit(ch):
		d.Stack.Push(numeric.Int(int64(ch - '0')))

	case ch == '+':
		a, b := d.Stack.Pop(), d.Stack.Pop()
		d.pushArith(b, a, func(x, y float64) float64 { return x + y })
	case ch == '-':
		a, b := d.Stack.Pop(), d.Stack.Pop()
		d.pushArith(b, a, func(x, y float64) float64 { return x - y })
	case ch == '*':
		a, b := d.Stack.Pop(), d.Stack.Pop()
		d.pushArith(b, a, func(x, y float64) float64 { return x * y })
	case ch == '%':
		a, b := d.Stack.Pop(), d.Stack.Pop()
		d.pushArith(b, a, floorMod)
	case ch == '/':
		a, b := d.Stack.Pop(), d.Stack.Pop()
		if a.Float64() == 0 {
			return ErrDivideByZero
		}
		d.Stack.Push(numeric.Float(b.Float64() / a.Float64()))

	case ch == '=':
		a, b := d.Stack.Pop(), d.Stack.Pop()
		d.pushBool(b.Float64() == a.Float64())
	case ch == '>':
		a, b := d.Stack.Pop(), d.Stack.Pop()
		d.pushBool(b.Float64() > a.Float64())
	case ch == '!':
		a := d.Stack.Pop()
		d.pushBool(a.Float64() == 0)

	case ch == 'i':
		d.Mode.EnterInsert()
	case ch == 'I':
		d.Mode.EnterRegin()

	case ch == 'y':
		a := d.Stack.Pop()
		d.Reg.Set(d.Stack.Peek(d.Stack.Size() - 1 - int(a.Int64())))
	case ch == 'Y':
		d.Reg.Set(d.Stack.Peek(d.Stack.Top()))

	case ch == 'p':
		d.Stack.Push(d.Reg.Get())
		d.Reg.Clear()
	case ch == 'P':
		d.Stack.Push(d.Reg.Get())

	case ch == 'x':
		d.Stack.Pop()
	case ch == 'X':
		d.Reg.Clear()

	case ch == 'd':
		a := d.Stack.Pop()
		if a.Int64() != 0 {
			for i := int64(0); i < a.Int64(); i++ {
				d.Stack.Pop()
			}
		} else {
			d.Reg.Set(d.Stack.Pop())
		}

	case ch == '}':
		a := d.Stack.Pop()
		if a.Float64() == 0 {
			d.Walker.SetDirection(rotateClockwise(d.Walker.Direction()))
		}
	case ch == '{':
		a := d.Stack.Pop()
		if a.Float64() == 0 {
			d.Walker.SetDirection(rotateCounterClockwise(d.Walker.Direction()))
		}

	case ch == 'w':
		v := d.Stack.Pop()
		return d.Out.WriteRune(rune(v.Int64()))
	case ch == 'W':
		v := d.Reg.Get()
		d.Reg.Clear()
		return d.Out.WriteRune(rune(v.Int64()))

	case ch == 'z':
		v := d.Stack.Pop()
		return d.Out.WriteString(v.String())
	case ch == 'Z':
		v := d.Reg.Get()
		d.Reg.Clear()
		return d.Out.WriteString(v.String())

	case ch == ':':
		return d.readInput(ctx)

	case ch == 'q':
		return ErrQuit

	case ch == ' ', ch == 0:
		// no-op

	default:
		return invalidInstruction(int(ch))
	}
	return nil
}

// readInput services the `:` instruction: it reads one line and pushes it
// the same way Insert-mode flush does (digits-only becomes one integer,
// otherwise each code point reversed).
func (d *Dispatcher) readInput(ctx context.Context) error {
	line, err := d.In.ReadLine(ctx)
	if err != nil {
		if errors.Is(err, iohost.ErrCancelled) {
			return ErrCancelled
		}
		if errors.Is(err, io.EOF) {
			return ErrInputEOF
		}
		return errors.Wrap(err, "read input")
	}
	runes := []rune(line)
	if allDigits(runes) && len(runes) > 0 {
		d.Stack.Push(numeric.Int(parseDigits(runes)))
	} else {
		for i := len(runes) - 1; i >= 0; i-- {
			d.Stack.Push(numeric.Int(int64(runes[i])))
		}
	}
	return nil
}

// pushArith applies op to the two already-popped values (b, a = the
// second-popped and first-popped operand respectively, matching the
// `a=pop; b=pop; push(b OP a)` order in spec.md §4.5) and pushes the
// result. The result is stored as a float and re-tagged integer on the next
// Pop/Peek (numeric.Value.Normalize), so no normalization is needed here.
func (d *Dispatcher) pushArith(b, a numeric.Value, op func(x, y float64) float64) {
	d.Stack.Push(numeric.Float(op(b.Float64(), a.Float64())))
}

// floorMod computes b % a taking the sign of the divisor a, matching
// Python's native `%` operator (PyGrok.py's `%` instruction is a literal
// `b % a`), unlike math.Mod's C-style truncated remainder which takes the
// sign of the dividend b.
func floorMod(b, a float64) float64 {
	r := math.Mod(b, a)
	if r != 0 && (r < 0) != (a < 0) {
		r += a
	}
	return r
}

func (d *Dispatcher) pushBool(v bool) {
	if v {
		d.Stack.Push(numeric.Int(1))
	} else {
		d.Stack.Push(numeric.Int(0))
	}
}

func rotateClockwise(d ipwalker.Direction) ipwalker.Direction {
	// l -> j -> h -> k -> l
	switch d {
	case ipwalker.Right:
		return ipwalker.Down
	case ipwalker.Down:
		return ipwalker.Left
	case ipwalker.Left:
		return ipwalker.Up
	default: // Up
		return ipwalker.Right
	}
}

func rotateCounterClockwise(d ipwalker.Direction) ipwalker.Direction {
	// l -> k -> h -> j -> l
	switch d {
	case ipwalker.Right:
		return ipwalker.Up
	case ipwalker.Up:
		return ipwalker.Left
	case ipwalker.Left:
		return ipwalker.Down
	default: // Down
		return ipwalker.Right
	}
}

func isDigit(ch rune) bool {
	return unicode.IsDigit(ch) && ch >= '0' && ch <= '9'
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

func parseDigits(runes []rune) int64 {
	var n int64
	for _, r := range runes {
		n = n*10 + int64(r-'0')
	}
	return n
}
