//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/clip/blob/v0.8.0/pkg/nparser/doc.go
//

/*
Package posixarg implements purely syntactic GNU/POSIX command-line
argument parsing: tokenizing and dispatching argv into options,
positionals, and subcommands, without type coercion, defaulting, help
generation, completion, or environment/config merging.

To parse a command line, you need to:

 1. Build one or more [OptionSpec] values with [NewOptionSpec], and
    [PositionalSpec] values with [NewPositionalSpec].

 2. Build a [CommandSpec] with [NewCommandSpec], passing the options and
    positionals via [WithOptions] and [WithPositionals], plus any nested
    [CommandSpec] subcommands via [WithSubcommands].

 3. Call [Parse] with the command spec and `os.Args[1:]`.

[Parse] returns a [ParseResult] tree: one node per command level,
linked to its invoked subcommand's node (if any) by
[ParseResult.Subcommand].

# Configuration

[ParserConfig] controls abbreviation matching, case sensitivity,
underscore normalization, interleaving of options and positionals,
negative-number disambiguation, and the implicit catch-all positional.
[DefaultConfig] returns the conventional GNU/POSIX defaults. A
subcommand's [CommandSpec] inherits its parent's configuration unless it
sets its own with [WithConfig].

# Options

An [OptionSpec] may declare any number of long names (matched after a
leading `--`) and short names (single bytes matched after a leading
`-`, and stackable into clusters like `-xvz`). Its [Arity] controls how
many values it consumes; [AccumulationMode] controls how repeated
occurrences are reconciled. [AsFlag] and [WithNegationPrefixes] declare
boolean-ish flags, including GNU-style negation (`--no-verbose`).

# Errors

Construction-time mistakes (duplicate names, invalid arities, and so
on) satisfy [SpecValidationError]. Parse-time mistakes (unknown
options, ambiguous abbreviations, insufficient values, and so on)
satisfy [ParseError]. Both interfaces expose a machine-readable tag
alongside the concrete, strongly typed error value.
*/
package posixarg
