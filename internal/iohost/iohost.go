// Package iohost adapts OS-level stdin/stdout into the streaming sources
// and sinks the interpreter core requires (spec.md §1: "the core only
// needs to accept ... a streaming input source, a streaming output sink").
// It is the Go-native analogue of vslc's util.ReadSource/util.Writer, minus
// the teacher's channel-based fan-in (Grok runs one interpreter per Run
// call, so there is no concurrent writer to multiplex).
package iohost

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// Output wraps an io.Writer and tracks whether the last emitted rune was a
// newline, so a host can decide whether to append a cosmetic trailing
// newline on exit (spec.md §7).
type Output struct {
	w           io.Writer
	endedInLine bool
	wrote       bool
}

// NewOutput wraps w as an Output.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// WriteString emits s verbatim and updates the trailing-newline tracking.
func (o *Output) WriteString(s string) error {
	if s == "" {
		return nil
	}
	o.wrote = true
	o.endedInLine = strings.HasSuffix(s, "\n")
	_, err := io.WriteString(o.w, s)
	return err
}

// WriteRune emits a single rune.
func (o *Output) WriteRune(r rune) error {
	return o.WriteString(string(r))
}

// EndedInNewline reports whether the last emission ended with '\n'.
func (o *Output) EndedInNewline() bool {
	return o.endedInLine
}

// Wrote reports whether any output has been produced at all. A host that
// produced no output should append no trailing newline even if it would
// otherwise (spec.md §7 cosmetic rule).
func (o *Output) Wrote() bool {
	return o.wrote
}

// Input is the `:` instruction's read source. ReadLine blocks until a full
// line is available, ctx is cancelled, or input is exhausted.
type Input interface {
	ReadLine(ctx context.Context) (string, error)
}

// pipedInput reads one line at a time from a non-interactive source (the
// PyGrok.py "input redirected using pipes" branch): an empty read (no data
// left) signals EOF, while a blank line is returned as an empty string.
type pipedInput struct {
	r *bufio.Reader
}

// NewPipedInput wraps r for line-oriented, non-interactive reads.
func NewPipedInput(r io.Reader) Input {
	return &pipedInput{r: bufio.NewReader(r)}
}

func (p *pipedInput) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ErrFromContext(err)
	}
	line, err := p.r.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err == io.EOF {
		if line == "" {
			return "", fmt.Errorf("iohost: %w", io.EOF)
		}
		// Final line with no trailing newline: still usable.
		return line, nil
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

// interactiveInput reads and echoes one rune at a time from a real terminal,
// terminating the line on CR/LF and translating Ctrl-C into cancellation,
// exactly as PyGrok.py's _GetchUnix-backed read_string does.
type interactiveInput struct {
	fd  int
	r   io.Reader
	out *Output
}

// NewInteractiveInput wraps a terminal file descriptor fd (read from r, with
// echoed characters written to out) for raw, echoing, Ctrl-C-aware reads.
func NewInteractiveInput(fd int, r io.Reader, out *Output) Input {
	return &interactiveInput{fd: fd, r: r, out: out}
}

func (in *interactiveInput) ReadLine(ctx context.Context) (string, error) {
	state, err := term.MakeRaw(in.fd)
	if err != nil {
		// Not a real terminal (or unsupported platform): fall back to
		// line-buffered reads rather than failing the whole program.
		return (&pipedInput{r: bufio.NewReader(in.r)}).ReadLine(ctx)
	}
	defer term.Restore(in.fd, state)

	_ = in.out.WriteString("> ")

	var sb strings.Builder
	buf := make([]byte, 1)
	for {
		if err := ctx.Err(); err != nil {
			return "", ErrFromContext(err)
		}
		n, err := in.r.Read(buf)
		if err != nil {
			if sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", fmt.Errorf("iohost: %w", io.EOF)
		}
		if n == 0 {
			continue
		}
		switch buf[0] {
		case 0x03: // Ctrl-C
			_ = in.out.WriteString("^C")
			return "", ErrCancelled
		case '\r', '\n':
			_ = in.out.WriteString("\n")
			return sb.String(), nil
		default:
			sb.WriteByte(buf[0])
			_ = in.out.WriteString(string(buf[0]))
		}
	}
}

// ErrCancelled is the cancellation sentinel. It is declared here rather than
// in dispatch (which would create an import cycle: dispatch consumes
// iohost.Input); dispatch.ErrCancelled is this same value, so an errors.Is
// check against either name matches it. ErrFromContext converts context
// cancellation into it.
var ErrCancelled = fmt.Errorf("iohost: cancelled")

// ErrFromContext converts a context error into ErrCancelled.
func ErrFromContext(err error) error {
	if err == nil {
		return nil
	}
	return ErrCancelled
}
