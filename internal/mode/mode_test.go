package mode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStartsNormal(t *testing.T) {
	c := New()
	require.Equal(t, Normal, c.Kind())
}

func TestInsertAccumulatesAndResets(t *testing.T) {
	c := New()
	c.EnterInsert()
	require.Equal(t, Insert, c.Kind())
	c.AppendInsert('h')
	c.AppendInsert('i')
	require.Equal(t, []rune{'h', 'i'}, c.InsertBuffer())
	c.ToNormal()
	require.Equal(t, Normal, c.Kind())
}

func TestReginAccumulatesMultiDigitNumber(t *testing.T) {
	c := New()
	c.EnterRegin()
	c.AppendReginDigit(1)
	c.AppendReginDigit(2)
	c.AppendReginDigit(3)
	require.True(t, c.ReginEntered())
	require.Equal(t, int64(123), c.ReginNumber())
}

func TestSkipIsOneShot(t *testing.T) {
	c := New()
	require.False(t, c.ConsumeSkip())
	c.SetSkip()
	require.True(t, c.ConsumeSkip())
	require.False(t, c.ConsumeSkip(), "skip must not persist past one consume")
}
