package grokopts

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*Options, []string) {
	t.Helper()
	fs := pflag.NewFlagSet("grok", pflag.ContinueOnError)
	opt := Bind(fs)
	require.NoError(t, fs.Parse(args))
	return opt, fs.Args()
}

func TestValidateRequiresExactlyOneSource(t *testing.T) {
	opt := &Options{}
	require.Error(t, opt.Validate(nil))

	opt = &Options{Code: "q"}
	require.NoError(t, opt.Validate(nil))

	opt = &Options{Code: "q"}
	require.Error(t, opt.Validate([]string{"a.grk"}))
}

func TestValidateAcceptsScriptPositional(t *testing.T) {
	opt := &Options{}
	require.NoError(t, opt.Validate([]string{"a.grk"}))
	require.Equal(t, "a.grk", opt.Script)
}

func TestStringAndValueFlagsPreserveOrder(t *testing.T) {
	opt, _ := parse(t, "-v", "1", "-s", "ab", "-v", "2")
	require.Len(t, opt.Seed, 4)
	require.Equal(t, float64(1), opt.Seed[0].Float64())
	require.Equal(t, float64('a'), opt.Seed[1].Float64())
	require.Equal(t, float64('b'), opt.Seed[2].Float64())
	require.Equal(t, float64(2), opt.Seed[3].Float64())
}

func TestValueFlagAcceptsMultipleNumbersPerOccurrence(t *testing.T) {
	// One -v occurrence carrying several whitespace- or comma-separated
	// numbers pushes all of them, matching PyGrok.py's `-v` nargs="+"
	// behavior for a single flag invocation.
	opt, _ := parse(t, "-v", "32 49 50 51")
	require.Len(t, opt.Seed, 4)
	require.Equal(t, float64(32), opt.Seed[0].Float64())
	require.Equal(t, float64(49), opt.Seed[1].Float64())
	require.Equal(t, float64(50), opt.Seed[2].Float64())
	require.Equal(t, float64(51), opt.Seed[3].Float64())

	opt, _ = parse(t, "-v", "1,2,3")
	require.Len(t, opt.Seed, 3)
	require.Equal(t, float64(1), opt.Seed[0].Float64())
	require.Equal(t, float64(2), opt.Seed[1].Float64())
	require.Equal(t, float64(3), opt.Seed[2].Float64())
}

func TestTickAndFlagDefaults(t *testing.T) {
	opt, _ := parse(t)
	require.Equal(t, float64(0), opt.Tick.Seconds())
	require.False(t, opt.AlwaysTick)
	require.False(t, opt.Debug)
}

func TestDebugAndAlwaysTickFlags(t *testing.T) {
	opt, _ := parse(t, "-e", "-a", "-t", "0.5s")
	require.True(t, opt.Debug)
	require.True(t, opt.AlwaysTick)
	require.Equal(t, 0.5, opt.Tick.Seconds())
}
