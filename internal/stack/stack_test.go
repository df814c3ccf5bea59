package stack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"grok/internal/numeric"
)

func TestPopEmptyIsSilentZero(t *testing.T) {
	s := New()
	v := s.Pop()
	require.True(t, v.IsInt())
	require.Equal(t, int64(0), v.Int64())
}

func TestPushPopOrder(t *testing.T) {
	s := New()
	s.Push(numeric.Int(1))
	s.Push(numeric.Int(2))
	require.Equal(t, int64(2), s.Pop().Int64())
	require.Equal(t, int64(1), s.Pop().Int64())
}

func TestPeekDoesNotRemove(t *testing.T) {
	s := New()
	s.Push(numeric.Int(9))
	require.Equal(t, int64(9), s.Peek(s.Top()).Int64())
	require.Equal(t, 1, s.Size())
}

func TestPeekOutOfRangeIsZero(t *testing.T) {
	s := New()
	require.Equal(t, int64(0), s.Peek(3).Int64())
	require.Equal(t, int64(0), s.Peek(-1).Int64())
}

func TestPopNormalizesIntegerValuedFloat(t *testing.T) {
	s := New()
	s.Push(numeric.Float(4.0))
	v := s.Pop()
	require.True(t, v.IsInt())
	require.Equal(t, int64(4), v.Int64())
}

func TestPushAtInsertsAtIndex(t *testing.T) {
	s := New()
	s.Push(numeric.Int(1))
	s.Push(numeric.Int(3))
	s.PushAt(1, numeric.Int(2))
	require.Equal(t, int64(1), s.Peek(0).Int64())
	require.Equal(t, int64(2), s.Peek(1).Int64())
	require.Equal(t, int64(3), s.Peek(2).Int64())
}

func TestPopAtRemovesEntry(t *testing.T) {
	s := New()
	s.Push(numeric.Int(1))
	s.Push(numeric.Int(2))
	s.Push(numeric.Int(3))
	require.Equal(t, int64(2), s.PopAt(1).Int64())
	require.Equal(t, 2, s.Size())
	require.Equal(t, int64(3), s.Peek(1).Int64())
}

func TestPopAtOutOfRangeIsZero(t *testing.T) {
	s := New()
	require.Equal(t, int64(0), s.PopAt(0).Int64())
}
