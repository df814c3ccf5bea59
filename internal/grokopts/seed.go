package grokopts

import (
	"fmt"
	"strconv"
	"strings"

	"grok/internal/numeric"
)

// stringSeed and valueSeed both implement pflag.Value and append onto the
// same underlying *[]numeric.Value. pflag calls Set in command-line order
// regardless of which flag name triggered it, so routing both -s and -v
// through the same backing slice is what preserves their relative order
// (spec.md §6: "-s and -v may interleave and must preserve command-line
// order"). pflag.StringArray cannot do this on its own since it tracks
// each flag's own occurrences independently.
type stringSeed struct{ seeds *[]numeric.Value }

func (s *stringSeed) String() string { return "" }
func (s *stringSeed) Type() string   { return "string" }
func (s *stringSeed) Set(raw string) error {
	for _, r := range raw {
		*s.seeds = append(*s.seeds, numeric.Float(float64(r)))
	}
	return nil
}

// valueSeed accepts one or more numbers per -v/--value occurrence,
// separated by whitespace or commas, matching PyGrok.py's `-v` flag (defined
// with argparse's `nargs="+"`, so a single `-v 32 49 50 51` pushes four
// values). pflag has no nargs="+" equivalent: a flag's Set is called with
// exactly one token per occurrence, so the multi-value form here is spelled
// as one shell-quoted argument, e.g. `-v "32 49 50 51"` or `-v 32,49,50,51`,
// rather than bare unquoted trailing tokens (which pflag would instead treat
// as positional arguments).
func splitValues(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

type valueSeed struct{ seeds *[]numeric.Value }

func (v *valueSeed) String() string { return "" }
func (v *valueSeed) Type() string   { return "floats" }
func (v *valueSeed) Set(raw string) error {
	fields := splitValues(raw)
	if len(fields) == 0 {
		return fmt.Errorf("expected at least one number, got %q", raw)
	}
	values := make([]numeric.Value, 0, len(fields))
	for _, field := range fields {
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return fmt.Errorf("expected a number, got %q: %w", field, err)
		}
		values = append(values, numeric.Float(f))
	}
	*v.seeds = append(*v.seeds, values...)
	return nil
}
