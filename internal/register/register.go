// Package register holds the single numeric slot Grok instructions load and
// clear separately from the value stack.
package register

import "grok/internal/numeric"

// Register is a single numeric slot, initially 0.
type Register struct {
	value numeric.Value
}

// Get returns the register's current value, normalized.
func (r *Register) Get() numeric.Value {
	return r.value.Normalize()
}

// Set stores v in the register.
func (r *Register) Set(v numeric.Value) {
	r.value = v
}

// Clear resets the register to integer 0.
func (r *Register) Clear() {
	r.value = numeric.Int(0)
}
