//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/option.go
//

package posixarg

import "strings"

// OptionSpec is an immutable, validated specification of a single
// option within a [CommandSpec].
//
// Construct with [NewOptionSpec]; the zero value is not valid.
type OptionSpec struct {
	name             string
	long             []string
	short            []byte
	arity            Arity
	accumulation     AccumulationMode
	isFlag           bool
	negationPrefixes []string
	flagConst        any
	flattenValues    bool
}

// Name returns the option's unique name within its command.
func (o *OptionSpec) Name() string { return o.name }

// LongNames returns the option's configured long names.
func (o *OptionSpec) LongNames() []string { return append([]string(nil), o.long...) }

// ShortNames returns the option's configured short names.
func (o *OptionSpec) ShortNames() []byte { return append([]byte(nil), o.short...) }

// Arity returns the option's arity.
func (o *OptionSpec) Arity() Arity { return o.arity }

// Accumulation returns the option's accumulation mode.
func (o *OptionSpec) Accumulation() AccumulationMode { return o.accumulation }

// IsFlag returns true if the option takes no values.
func (o *OptionSpec) IsFlag() bool { return o.isFlag }

// NegationPrefixes returns the configured negation prefixes, if any.
func (o *OptionSpec) NegationPrefixes() []string { return append([]string(nil), o.negationPrefixes...) }

// FlagConst returns the value recorded when a flag appears without
// `=value`. Meaningless for non-flag options.
func (o *OptionSpec) FlagConst() any { return o.flagConst }

// FlattenValues returns whether a [Collect]-mode option with
// multi-value occurrences flattens the per-occurrence tuples by one
// level.
func (o *OptionSpec) FlattenValues() bool { return o.flattenValues }

// OptionSpecOption configures an [OptionSpec] during construction.
type OptionSpecOption func(*OptionSpec)

// WithLongNames declares one or more long names (e.g. "verbose") for
// the option being constructed, without the leading "--".
func WithLongNames(names ...string) OptionSpecOption {
	return func(o *OptionSpec) { o.long = append(o.long, names...) }
}

// WithShortNames declares one or more single-character short names
// (e.g. 'v') for the option being constructed, without the leading "-".
func WithShortNames(names ...byte) OptionSpecOption {
	return func(o *OptionSpec) { o.short = append(o.short, names...) }
}

// WithArity overrides the default arity ([Zero] for flags, [ExactlyOne]
// otherwise).
func WithArity(arity Arity) OptionSpecOption {
	return func(o *OptionSpec) { o.arity = arity }
}

// WithAccumulation overrides the default accumulation mode
// ([LastWins]).
func WithAccumulation(mode AccumulationMode) OptionSpecOption {
	return func(o *OptionSpec) { o.accumulation = mode }
}

// AsFlag marks the option as a boolean-ish flag: arity [Zero], and
// FlagConst defaulting to true unless overridden by [WithFlagConst].
func AsFlag() OptionSpecOption {
	return func(o *OptionSpec) {
		o.isFlag = true
		o.arity = Zero
		if o.flagConst == nil {
			o.flagConst = true
		}
	}
}

// WithFlagConst sets the value recorded when a flag appears without
// `=value`. Implies [AsFlag].
func WithFlagConst(value any) OptionSpecOption {
	return func(o *OptionSpec) {
		o.isFlag = true
		o.arity = Zero
		o.flagConst = value
	}
}

// WithNegationPrefixes declares prefixes (e.g. "no") which, prepended
// to a dash and the option's long name, invert a flag's value. Implies
// [AsFlag].
func WithNegationPrefixes(prefixes ...string) OptionSpecOption {
	return func(o *OptionSpec) {
		o.isFlag = true
		o.arity = Zero
		if o.flagConst == nil {
			o.flagConst = true
		}
		o.negationPrefixes = append(o.negationPrefixes, prefixes...)
	}
}

// WithFlattenValues enables flattening of per-occurrence value tuples
// by one level for [Collect]-mode options whose arity accepts more
// than one value per occurrence.
func WithFlattenValues() OptionSpecOption {
	return func(o *OptionSpec) { o.flattenValues = true }
}

// NewOptionSpec constructs and validates an [OptionSpec].
//
// The option defaults to arity [ExactlyOne] and accumulation [LastWins];
// use [AsFlag] or [WithFlagConst] to declare a flag (arity [Zero]), and
// [WithArity]/[WithAccumulation] to override the defaults.
//
// Local invariants (those not requiring knowledge of sibling options or
// the owning command) are checked here: at least one of long/short
// names must be present, short names must be single bytes not equal to
// '=' or '-', long names must not contain '=' or start with a dash,
// flags must use an accumulation mode compatible with taking no value,
// and negation prefixes require a boolean FlagConst. Invariants that
// require cross-option context (duplicate names, negation prefixes
// clashing with a sibling's long name) are checked by [NewCommandSpec].
func NewOptionSpec(name string, opts ...OptionSpecOption) (*OptionSpec, error) {
	o := &OptionSpec{
		name:         name,
		arity:        ExactlyOne,
		accumulation: LastWins,
	}
	for _, opt := range opts {
		opt(o)
	}

	if name == "" {
		return nil, EmptyOptionNameError{}
	}
	if len(o.long) == 0 && len(o.short) == 0 {
		return nil, EmptyOptionNameError{Command: name}
	}
	for _, n := range o.long {
		if err := validateLongNameToken(n); err != nil {
			return nil, err
		}
	}
	for _, s := range o.short {
		if s == '=' || s == '-' {
			return nil, InvalidShortNameError{Short: string(s)}
		}
	}

	if o.isFlag {
		if o.arity != Zero {
			return nil, InvalidArityError{Name: name, Arity: o.arity}
		}
		switch o.accumulation {
		case LastWins, FirstWins, ErrorOnDuplicate, Count:
			// ok
		default:
			return nil, FlagAccumulationMismatchError{Name: name, Accumulation: o.accumulation}
		}
		if len(o.negationPrefixes) > 0 {
			if _, ok := o.flagConst.(bool); !ok {
				return nil, NegationOnNonBooleanFlagError{Name: name}
			}
		}
	} else {
		if o.arity.IsFlag() {
			return nil, InvalidArityError{Name: name, Arity: o.arity}
		}
		if o.accumulation == Count {
			return nil, FlagAccumulationMismatchError{Name: name, Accumulation: o.accumulation}
		}
	}

	return o, nil
}

// validateLongNameToken rejects long names that are empty, contain
// '=', or start with a dash (which would collide with the prefix).
func validateLongNameToken(name string) error {
	switch {
	case name == "":
		return EmptyOptionNameError{}
	case strings.Contains(name, "="):
		return InvalidShortNameError{Short: name}
	case strings.HasPrefix(name, "-"):
		return InvalidShortNameError{Short: name}
	}
	return nil
}
