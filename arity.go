//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/option.go
//

package posixarg

import "fmt"

// Unbounded is the sentinel [Arity.Max] value meaning "no upper bound".
const Unbounded = -1

// Arity bounds how many values an [OptionSpec] or [PositionalSpec] consumes.
//
// Min and Max are both inclusive. Max equal to [Unbounded] means there is
// no upper bound. The zero value of Arity is {0, 0}, the same as [Zero];
// use [NewArity] or one of the named constants for any other range.
type Arity struct {
	// Min is the minimum number of values required.
	Min int

	// Max is the maximum number of values allowed, or [Unbounded].
	Max int
}

// NewArity returns the [Arity] with the given bounds.
//
// Pass [Unbounded] as max for no upper bound. Panics if min is negative,
// if max is neither [Unbounded] nor >= 0, or if max < min.
func NewArity(min, max int) Arity {
	switch {
	case min < 0:
		panic(fmt.Sprintf("posixarg: negative arity minimum: %d", min))
	case max != Unbounded && max < 0:
		panic(fmt.Sprintf("posixarg: invalid arity maximum: %d", max))
	case max != Unbounded && max < min:
		panic(fmt.Sprintf("posixarg: arity maximum %d is less than minimum %d", max, min))
	}
	return Arity{Min: min, Max: max}
}

// Named arity literals, matching the vocabulary conventionally used by
// POSIX/GNU option parsers ("?", nothing, "*", "+").
var (
	// Zero accepts no values; used by flags.
	Zero = NewArity(0, 0)

	// ZeroOrOne ("?") accepts at most one value.
	ZeroOrOne = NewArity(0, 1)

	// ExactlyOne accepts exactly one value.
	ExactlyOne = NewArity(1, 1)

	// ZeroOrMore ("*") accepts any number of values, including none.
	ZeroOrMore = NewArity(0, Unbounded)

	// OneOrMore ("+") accepts at least one value, with no upper bound.
	OneOrMore = NewArity(1, Unbounded)
)

// IsUnbounded returns true if the arity has no upper bound.
func (a Arity) IsUnbounded() bool {
	return a.Max == Unbounded
}

// IsFlag returns true if the arity accepts no values at all.
func (a Arity) IsFlag() bool {
	return a.Min == 0 && a.Max == 0
}

// Accepts returns true if n values satisfy this arity: n is at least
// Min and, unless the arity is unbounded, at most Max.
func (a Arity) Accepts(n int) bool {
	if n < a.Min {
		return false
	}
	return a.IsUnbounded() || n <= a.Max
}

// String returns a human-readable representation, e.g. "1" or "1..*".
func (a Arity) String() string {
	if a.Min == a.Max {
		return fmt.Sprintf("%d", a.Min)
	}
	if a.IsUnbounded() {
		return fmt.Sprintf("%d..*", a.Min)
	}
	return fmt.Sprintf("%d..%d", a.Min, a.Max)
}
