//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package posixarg

// PositionalSpec is an immutable, validated specification of a single
// positional parameter within a [CommandSpec].
//
// Construct with [NewPositionalSpec]; the zero value is not valid.
type PositionalSpec struct {
	name  string
	arity Arity
}

// Name returns the positional's unique name within its command.
func (p *PositionalSpec) Name() string { return p.name }

// Arity returns the positional's arity.
func (p *PositionalSpec) Arity() Arity { return p.arity }

// NewPositionalSpec constructs and validates a [PositionalSpec].
//
// At most one positional in a command may have an unbounded maximum
// arity; that cross-positional invariant is checked by
// [NewCommandSpec], not here.
func NewPositionalSpec(name string, arity Arity) (*PositionalSpec, error) {
	if name == "" {
		return nil, EmptyOptionNameError{}
	}
	return &PositionalSpec{name: name, arity: arity}, nil
}
