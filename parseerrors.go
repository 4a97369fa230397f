//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/doparse.go
//

package posixarg

import (
	"fmt"
	"strings"

	"github.com/bassosimone/textwrap"
)

// ParseError is implemented by every error [Parse] can return.
//
// Tag returns a short machine-readable string a downstream formatter
// can switch on without a type switch across every concrete type; the
// concrete type (obtainable with errors.As) carries the full
// structured context spec.md §7 requires (offending token, index,
// responsible spec names, candidate lists).
type ParseError interface {
	error

	// Tag returns the machine-readable error tag.
	Tag() string

	// TokenIndex returns the index of the offending token in the
	// original token slice passed to [Parse], or -1 if the error is
	// not tied to one token.
	TokenIndex() int
}

// UnknownOptionError indicates that a token was resolved as an option
// but did not match any configured long or short name.
type UnknownOptionError struct {
	Command string
	Token   string
	Index   int
}

var _ ParseError = UnknownOptionError{}

func (e UnknownOptionError) Error() string {
	return fmt.Sprintf("posixarg: command %q: unknown option %q", e.Command, e.Token)
}

// Tag implements [ParseError].
func (e UnknownOptionError) Tag() string { return "unknown-option" }

// TokenIndex implements [ParseError].
func (e UnknownOptionError) TokenIndex() int { return e.Index }

// AmbiguousOptionError indicates that an abbreviation matched more than
// one long name.
type AmbiguousOptionError struct {
	Command    string
	Token      string
	Index      int
	Candidates []string
}

var _ ParseError = AmbiguousOptionError{}

func (e AmbiguousOptionError) Error() string {
	return fmt.Sprintf("posixarg: command %q: option %q is ambiguous, could be:\n%s",
		e.Command, e.Token, textwrap.Do(strings.Join(e.Candidates, ", "), 72, "  "))
}

// Tag implements [ParseError].
func (e AmbiguousOptionError) Tag() string { return "ambiguous-option" }

// TokenIndex implements [ParseError].
func (e AmbiguousOptionError) TokenIndex() int { return e.Index }

// OptionCannotBeSpecifiedMultipleTimesError indicates that an option
// using [ErrorOnDuplicate] accumulation appeared more than once.
type OptionCannotBeSpecifiedMultipleTimesError struct {
	Command string
	Option  string
	Index   int
}

var _ ParseError = OptionCannotBeSpecifiedMultipleTimesError{}

func (e OptionCannotBeSpecifiedMultipleTimesError) Error() string {
	return fmt.Sprintf("posixarg: command %q: option %q cannot be specified multiple times", e.Command, e.Option)
}

// Tag implements [ParseError].
func (e OptionCannotBeSpecifiedMultipleTimesError) Tag() string {
	return "option-cannot-be-specified-multiple-times"
}

// TokenIndex implements [ParseError].
func (e OptionCannotBeSpecifiedMultipleTimesError) TokenIndex() int { return e.Index }

// OptionDoesNotAcceptValueError indicates that a value was supplied
// with "=" to a flag inside a short-option cluster (e.g. "-v=yes").
// A "--flag=value" long form is handled by [FlagWithValueError] and
// [InvalidFlagValueError] instead.
type OptionDoesNotAcceptValueError struct {
	Command string
	Option  string
	Index   int
}

var _ ParseError = OptionDoesNotAcceptValueError{}

func (e OptionDoesNotAcceptValueError) Error() string {
	return fmt.Sprintf("posixarg: command %q: option %q does not accept a value", e.Command, e.Option)
}

// Tag implements [ParseError].
func (e OptionDoesNotAcceptValueError) Tag() string { return "option-does-not-accept-value" }

// TokenIndex implements [ParseError].
func (e OptionDoesNotAcceptValueError) TokenIndex() int { return e.Index }

// FlagWithValueError indicates that "--flag=value" was used against a
// flag option while [ParserConfig.AllowEqualsForFlags] is false.
type FlagWithValueError struct {
	Command string
	Option  string
	Index   int
}

var _ ParseError = FlagWithValueError{}

func (e FlagWithValueError) Error() string {
	return fmt.Sprintf("posixarg: command %q: flag %q does not accept \"=value\"", e.Command, e.Option)
}

// Tag implements [ParseError].
func (e FlagWithValueError) Tag() string { return "flag-with-value" }

// TokenIndex implements [ParseError].
func (e FlagWithValueError) TokenIndex() int { return e.Index }

// InvalidFlagValueError indicates that "--flag=value" was used against
// a flag option but value is not in TruthyValues or FalseyValues.
type InvalidFlagValueError struct {
	Command string
	Option  string
	Value   string
	Index   int
}

var _ ParseError = InvalidFlagValueError{}

func (e InvalidFlagValueError) Error() string {
	return fmt.Sprintf("posixarg: command %q: flag %q got invalid value %q", e.Command, e.Option, e.Value)
}

// Tag implements [ParseError].
func (e InvalidFlagValueError) Tag() string { return "invalid-flag-value" }

// TokenIndex implements [ParseError].
func (e InvalidFlagValueError) TokenIndex() int { return e.Index }

// InsufficientOptionValuesError indicates that fewer values were
// available than an option's arity minimum requires.
type InsufficientOptionValuesError struct {
	Command string
	Option  string
	Want    int
	Got     int
	Index   int
}

var _ ParseError = InsufficientOptionValuesError{}

func (e InsufficientOptionValuesError) Error() string {
	return fmt.Sprintf("posixarg: command %q: option %q requires at least %d value(s), got %d",
		e.Command, e.Option, e.Want, e.Got)
}

// Tag implements [ParseError].
func (e InsufficientOptionValuesError) Tag() string { return "insufficient-option-values" }

// TokenIndex implements [ParseError].
func (e InsufficientOptionValuesError) TokenIndex() int { return e.Index }

// UnknownSubcommandError indicates that a token was expected to
// resolve to a subcommand but did not match any configured name or
// alias.
type UnknownSubcommandError struct {
	Command string
	Token   string
	Index   int
}

var _ ParseError = UnknownSubcommandError{}

func (e UnknownSubcommandError) Error() string {
	return fmt.Sprintf("posixarg: command %q: unknown subcommand %q", e.Command, e.Token)
}

// Tag implements [ParseError].
func (e UnknownSubcommandError) Tag() string { return "unknown-subcommand" }

// TokenIndex implements [ParseError].
func (e UnknownSubcommandError) TokenIndex() int { return e.Index }

// AmbiguousSubcommandError indicates that an abbreviation matched more
// than one subcommand name or alias.
type AmbiguousSubcommandError struct {
	Command    string
	Token      string
	Index      int
	Candidates []string
}

var _ ParseError = AmbiguousSubcommandError{}

func (e AmbiguousSubcommandError) Error() string {
	return fmt.Sprintf("posixarg: command %q: subcommand %q is ambiguous, could be:\n%s",
		e.Command, e.Token, textwrap.Do(strings.Join(e.Candidates, ", "), 72, "  "))
}

// Tag implements [ParseError].
func (e AmbiguousSubcommandError) Tag() string { return "ambiguous-subcommand" }

// TokenIndex implements [ParseError].
func (e AmbiguousSubcommandError) TokenIndex() int { return e.Index }

// InsufficientPositionalArgumentsError indicates that fewer positional
// values were available than the command's positionals require in
// total, identifying the first unsatisfied positional.
type InsufficientPositionalArgumentsError struct {
	Command    string
	Positional string
	Want       int
	Got        int
}

var _ ParseError = InsufficientPositionalArgumentsError{}

func (e InsufficientPositionalArgumentsError) Error() string {
	return fmt.Sprintf("posixarg: command %q: positional %q requires at least %d value(s), got %d",
		e.Command, e.Positional, e.Want, e.Got)
}

// Tag implements [ParseError].
func (e InsufficientPositionalArgumentsError) Tag() string {
	return "insufficient-positional-arguments"
}

// TokenIndex implements [ParseError].
func (e InsufficientPositionalArgumentsError) TokenIndex() int { return -1 }

// UnexpectedPositionalArgumentError indicates that there were more
// positional values than the command's positionals (or implicit
// catch-all) could absorb.
type UnexpectedPositionalArgumentError struct {
	Command string
	Token   string
	Index   int
}

var _ ParseError = UnexpectedPositionalArgumentError{}

func (e UnexpectedPositionalArgumentError) Error() string {
	return fmt.Sprintf("posixarg: command %q: unexpected positional argument %q", e.Command, e.Token)
}

// Tag implements [ParseError].
func (e UnexpectedPositionalArgumentError) Tag() string { return "unexpected-positional-argument" }

// TokenIndex implements [ParseError].
func (e UnexpectedPositionalArgumentError) TokenIndex() int { return e.Index }

// ParserConfigurationError indicates that a [CommandSpec]'s effective,
// inherited configuration proved inconsistent once resolved at parse
// time. It is raised when [ParserConfig.AllowEqualsForFlags] is enabled
// while both TruthyValues and FalseyValues are empty.
type ParserConfigurationError struct {
	Command string
	Reason  string
}

var _ ParseError = ParserConfigurationError{}

func (e ParserConfigurationError) Error() string {
	return fmt.Sprintf("posixarg: command %q: inconsistent parser configuration: %s", e.Command, e.Reason)
}

// Tag implements [ParseError].
func (e ParserConfigurationError) Tag() string { return "parser-configuration-error" }

// TokenIndex implements [ParseError].
func (e ParserConfigurationError) TokenIndex() int { return -1 }
