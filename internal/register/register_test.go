package register

import (
	"testing"

	"github.com/stretchr/testify/require"

	"grok/internal/numeric"
)

func TestInitialValueIsZero(t *testing.T) {
	var r Register
	require.Equal(t, int64(0), r.Get().Int64())
}

func TestSetAndClear(t *testing.T) {
	var r Register
	r.Set(numeric.Int(5))
	require.Equal(t, int64(5), r.Get().Int64())
	r.Clear()
	require.Equal(t, int64(0), r.Get().Int64())
}
