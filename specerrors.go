//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/config.go
//

package posixarg

import "fmt"

// SpecValidationError is implemented by every error raised while
// constructing [OptionSpec], [PositionalSpec], or [CommandSpec] values.
//
// Unlike [ParseError], these errors are never about a parse invocation:
// they are raised once, at spec-construction time, and the resulting
// spec is never usable.
type SpecValidationError interface {
	error

	// Kind returns the machine-readable tag for this error.
	Kind() string
}

// DuplicateOptionNameError indicates that two options in the same
// [CommandSpec] share a name or a long name (a shared short name is
// reported as [DuplicateShortNameError]).
type DuplicateOptionNameError struct {
	// Command is the command in which the collision was found.
	Command string

	// Name is the colliding name.
	Name string
}

var _ SpecValidationError = DuplicateOptionNameError{}

func (e DuplicateOptionNameError) Error() string {
	return fmt.Sprintf("posixarg: command %q: duplicate option name %q", e.Command, e.Name)
}

// Kind implements [SpecValidationError].
func (e DuplicateOptionNameError) Kind() string { return "duplicate-option-name" }

// DuplicateShortNameError indicates that two options in the same
// [CommandSpec] declare the same short name.
type DuplicateShortNameError struct {
	Command string
	Short   byte
}

var _ SpecValidationError = DuplicateShortNameError{}

func (e DuplicateShortNameError) Error() string {
	return fmt.Sprintf("posixarg: command %q: duplicate short name %q", e.Command, string(e.Short))
}

// Kind implements [SpecValidationError].
func (e DuplicateShortNameError) Kind() string { return "duplicate-short-name" }

// DuplicateSubcommandNameError indicates that two subcommands of the
// same [CommandSpec] share a name or alias.
type DuplicateSubcommandNameError struct {
	Command string
	Name    string
}

var _ SpecValidationError = DuplicateSubcommandNameError{}

func (e DuplicateSubcommandNameError) Error() string {
	return fmt.Sprintf("posixarg: command %q: duplicate subcommand name or alias %q", e.Command, e.Name)
}

// Kind implements [SpecValidationError].
func (e DuplicateSubcommandNameError) Kind() string { return "duplicate-subcommand-name" }

// EmptyOptionNameError indicates that an [OptionSpec] or
// [PositionalSpec] has no name, that one of an option's long names is
// empty, or that an option declares neither a long nor a short name.
type EmptyOptionNameError struct {
	Command string
}

var _ SpecValidationError = EmptyOptionNameError{}

func (e EmptyOptionNameError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("posixarg: option %q: must declare at least one long or short name", e.Command)
	}
	return "posixarg: option name cannot be empty"
}

// Kind implements [SpecValidationError].
func (e EmptyOptionNameError) Kind() string { return "empty-option-name" }

// InvalidShortNameError indicates that a short name uses a reserved
// character (`=` or `-`), or that a long name contains `=` or starts
// with a dash.
type InvalidShortNameError struct {
	Command string
	Short   string
}

var _ SpecValidationError = InvalidShortNameError{}

func (e InvalidShortNameError) Error() string {
	return fmt.Sprintf("posixarg: command %q: invalid short name %q", e.Command, e.Short)
}

// Kind implements [SpecValidationError].
func (e InvalidShortNameError) Kind() string { return "invalid-short-name" }

// ConflictingNegationPrefixError indicates that a flag's negation
// prefix, applied to its long name, collides with another configured
// long name.
type ConflictingNegationPrefixError struct {
	Command  string
	Option   string
	Negation string
}

var _ SpecValidationError = ConflictingNegationPrefixError{}

func (e ConflictingNegationPrefixError) Error() string {
	return fmt.Sprintf("posixarg: command %q: negation prefix %q of option %q collides with an existing long name",
		e.Command, e.Negation, e.Option)
}

// Kind implements [SpecValidationError].
func (e ConflictingNegationPrefixError) Kind() string { return "conflicting-negation-prefix" }

// InvalidArityError indicates that an [OptionSpec] was given an arity
// incompatible with its other attributes (a flag with non-zero arity,
// or a non-flag with arity [Zero]).
type InvalidArityError struct {
	Command string
	Name    string
	Arity   Arity
}

var _ SpecValidationError = InvalidArityError{}

func (e InvalidArityError) Error() string {
	return fmt.Sprintf("posixarg: command %q: %q has invalid arity %s", e.Command, e.Name, e.Arity)
}

// Kind implements [SpecValidationError].
func (e InvalidArityError) Kind() string { return "invalid-arity" }

// FlagAccumulationMismatchError indicates that an [OptionSpec] was
// given an [AccumulationMode] that does not fit whether it is a flag:
// a flag may use only [LastWins], [FirstWins], [ErrorOnDuplicate], or
// [Count] ([Collect] requires values), and a non-flag may not use
// [Count].
type FlagAccumulationMismatchError struct {
	Command     string
	Name        string
	Accumulation AccumulationMode
}

var _ SpecValidationError = FlagAccumulationMismatchError{}

func (e FlagAccumulationMismatchError) Error() string {
	return fmt.Sprintf("posixarg: command %q: flag %q cannot use accumulation mode %s",
		e.Command, e.Name, e.Accumulation)
}

// Kind implements [SpecValidationError].
func (e FlagAccumulationMismatchError) Kind() string { return "flag-accumulation-mismatch" }

// MultipleUnboundedPositionalsError indicates that a [CommandSpec]
// declares more than one positional with an unbounded maximum arity.
type MultipleUnboundedPositionalsError struct {
	Command string
	First   string
	Second  string
}

var _ SpecValidationError = MultipleUnboundedPositionalsError{}

func (e MultipleUnboundedPositionalsError) Error() string {
	return fmt.Sprintf("posixarg: command %q: positionals %q and %q both have unbounded arity",
		e.Command, e.First, e.Second)
}

// Kind implements [SpecValidationError].
func (e MultipleUnboundedPositionalsError) Kind() string { return "multiple-unbounded-positionals" }

// NegationOnNonBooleanFlagError indicates that a flag was given
// negation prefixes but its FlagConst is not a boolean, so "negation"
// (logical inversion) is undefined.
type NegationOnNonBooleanFlagError struct {
	Command string
	Name    string
}

var _ SpecValidationError = NegationOnNonBooleanFlagError{}

func (e NegationOnNonBooleanFlagError) Error() string {
	return fmt.Sprintf("posixarg: command %q: option %q has negation prefixes but a non-boolean flag const",
		e.Command, e.Name)
}

// Kind implements [SpecValidationError].
func (e NegationOnNonBooleanFlagError) Kind() string { return "negation-on-non-boolean-flag" }

// ReservedTokenError indicates that a command or subcommand attempted
// to use a reserved token (currently only `--`) as its name or alias.
type ReservedTokenError struct {
	Command string
	Token   string
}

var _ SpecValidationError = ReservedTokenError{}

func (e ReservedTokenError) Error() string {
	return fmt.Sprintf("posixarg: command %q: %q is a reserved token and cannot be used as a name", e.Command, e.Token)
}

// Kind implements [SpecValidationError].
func (e ReservedTokenError) Kind() string { return "reserved-token" }
