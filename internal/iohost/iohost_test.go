package iohost

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutputTracksTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput(&buf)
	require.False(t, out.Wrote())
	require.NoError(t, out.WriteString("hi"))
	require.True(t, out.Wrote())
	require.False(t, out.EndedInNewline())
	require.NoError(t, out.WriteString("\n"))
	require.True(t, out.EndedInNewline())
	require.Equal(t, "hi\n", buf.String())
}

func TestPipedInputReturnsLine(t *testing.T) {
	in := NewPipedInput(strings.NewReader("hello\nworld\n"))
	line, err := in.ReadLine(context.Background())
	require.NoError(t, err)
	require.Equal(t, "hello", line)
	line, err = in.ReadLine(context.Background())
	require.NoError(t, err)
	require.Equal(t, "world", line)
}

func TestPipedInputEmptyReaderIsEOF(t *testing.T) {
	in := NewPipedInput(strings.NewReader(""))
	_, err := in.ReadLine(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, io.EOF)
}

func TestPipedInputHonorsCancelledContext(t *testing.T) {
	in := NewPipedInput(strings.NewReader("x\n"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := in.ReadLine(ctx)
	require.ErrorIs(t, err, ErrCancelled)
}
