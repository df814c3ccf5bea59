package dispatch

import (
	"github.com/pkg/errors"

	"grok/internal/iohost"
)

// Sentinel errors for the five error kinds spec.md §7 distinguishes.
// ErrQuit and ErrCancelled are clean-exit conditions; the other three are
// faults that the host collapses to a generic message outside debug mode.
var (
	// ErrQuit signals the `q` instruction: normal termination.
	ErrQuit = errors.New("quit")

	// ErrInvalidInstruction signals a cell whose code point maps to no
	// known operation.
	ErrInvalidInstruction = errors.New("invalid instruction")

	// ErrDivideByZero signals a `/` with a zero divisor.
	ErrDivideByZero = errors.New("division by zero")

	// ErrInputEOF signals end-of-input on a required `:` read.
	ErrInputEOF = errors.New("unexpected end of input")

	// ErrCancelled signals host- or user-requested cancellation (including
	// Ctrl-C during an interactive read). It is the same sentinel iohost
	// uses so a single errors.Is check covers cancellation raised from
	// either package.
	ErrCancelled = iohost.ErrCancelled
)

// invalidInstruction wraps ErrInvalidInstruction with the offending code
// point, preserved for the debug-mode error path (spec.md §7).
func invalidInstruction(cp int) error {
	return errors.Wrapf(ErrInvalidInstruction, "code point %d (%q)", cp, rune(cp))
}
