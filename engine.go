//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/doparse.go
//

package posixarg

import (
	"io"
	"strings"

	"github.com/bassosimone/flagscanner"
	"github.com/bassosimone/runtimex"
)

// engineDebugWriter is a debug output hook; the engine writes nothing
// to it.
var engineDebugWriter = io.Discard

// occurrence is a single appearance of an option on the command line.
type occurrence struct {
	matchedName string
	tokenIndex  int
	flagValue   any      // meaningful only when the owning option is a flag
	values      []string // meaningful only when the owning option is not a flag
}

// optionAccum collects every occurrence of one option across a single
// command's token stream, pending reconciliation by [buildParsedOption].
type optionAccum struct {
	spec        *OptionSpec
	occurrences []occurrence
}

// parseTokens is the single-pass interpreter: it walks an already
// lexed token stream, dispatching each token per spec.md §4, and
// recurses into a subcommand's own parseTokens call when one is
// resolved.
//
// This plays the role the teacher's doParse plus permute play together,
// generalized from a flat options/positionals pair of output deques to
// the tree-shaped [ParseResult] this package returns, and from the
// teacher's fixed single-arity options to arbitrary [Arity] ranges,
// [AccumulationMode]s, negation, and subcommand recursion.
func parseTokens(cmd *CommandSpec, tokens []flagscanner.Token) (*ParseResult, error) {
	if cmd.config.AllowEqualsForFlags && len(cmd.config.TruthyValues) == 0 && len(cmd.config.FalseyValues) == 0 {
		return nil, ParserConfigurationError{
			Command: cmd.name,
			Reason:  "AllowEqualsForFlags is enabled but no TruthyValues/FalseyValues are configured",
		}
	}

	input := &deque[flagscanner.Token]{values: tokens}

	accums := map[string]*optionAccum{}
	var captures []positionalCapture
	var extras []string
	order := newOrderTracker(cmd.config)

	var subResult *ParseResult
	var subAlias string
	var subHasAlias bool

	capturePositional := func(value string, index int) {
		captures = append(captures, positionalCapture{value: value, index: index})
		order.ObservePositional()
	}

	for !input.Empty() {
		cur, _ := input.Front()
		input.PopFront()

		switch tok := cur.(type) {

		case flagscanner.OptionsArgumentsSeparatorToken:
			for !input.Empty() {
				rest, _ := input.Front()
				input.PopFront()
				extras = append(extras, rest.String())
			}

		case flagscanner.PositionalArgumentToken:
			if order.ForcePositional() {
				capturePositional(tok.Value, tok.Index())
				continue
			}
			if cmd.HasSubcommands() && !order.seenPositional {
				res, ok, err := cmd.resolveSubcommand(tok.Value)
				if err != nil {
					if amb, isAmbiguous := err.(AmbiguousSubcommandError); isAmbiguous {
						amb.Index = tok.Index()
						return nil, amb
					}
					return nil, err
				}
				if ok {
					subAlias = res.alias
					subHasAlias = cmd.normalizeSubcommandName(res.alias) != cmd.normalizeSubcommandName(res.command.name)
					rest := input.values
					input.values = nil
					sub, err := parseTokens(res.command, rest)
					if err != nil {
						return nil, err
					}
					subResult = sub
					continue
				}
				if !cmd.config.StopAtUnknownSubcommand {
					return nil, UnknownSubcommandError{Command: cmd.name, Token: tok.Value, Index: tok.Index()}
				}
			}
			capturePositional(tok.Value, tok.Index())

		case flagscanner.OptionToken:
			if order.ForcePositional() {
				capturePositional(tok.String(), tok.Index())
				continue
			}
			if isLoneDash(tok) {
				capturePositional("-", tok.Index())
				continue
			}
			if tok.Prefix == "-" && negativeNumberWins(cmd, tok.Prefix, tok.Name) {
				capturePositional(tok.Prefix+tok.Name, tok.Index())
				continue
			}
			switch tok.Prefix {
			case "--":
				if err := dispatchLongOption(cmd, tok, input, accums); err != nil {
					return nil, err
				}
			default:
				if err := dispatchShortCluster(cmd, tok, input, accums); err != nil {
					return nil, err
				}
			}
		}
	}
	runtimex.Assert(input.Empty())

	options := make(map[string]*ParsedOption, len(accums))
	for name, acc := range accums {
		po, err := buildParsedOption(cmd, acc)
		if err != nil {
			return nil, err
		}
		options[name] = po
	}

	positionals, err := groupPositionals(cmd, captures)
	if err != nil {
		return nil, err
	}

	result := &ParseResult{
		command:     cmd.name,
		options:     options,
		positionals: positionals,
		extras:      extras,
		spec:        cmd,
	}
	if subResult != nil {
		subResult.alias = subAlias
		subResult.hasAlias = subHasAlias
		result.subcommand = subResult
	}
	return result, nil
}

// dispatchLongOption resolves and consumes a single "--name" or
// "--name=value" token.
func dispatchLongOption(cmd *CommandSpec, tok flagscanner.OptionToken, input *deque[flagscanner.Token], accums map[string]*optionAccum) error {
	raw := tok.Name
	var inline string
	var hasInline bool
	if i := strings.Index(raw, "="); i >= 0 {
		hasInline = true
		inline = raw[i+1:]
		raw = raw[:i]
	}

	res, err := cmd.resolveLongOption(raw)
	if err != nil {
		switch e := err.(type) {
		case UnknownOptionError:
			e.Index = tok.Index()
			return e
		case AmbiguousOptionError:
			e.Index = tok.Index()
			return e
		}
		return err
	}
	opt := res.option
	acc := accumFor(accums, opt)

	if opt.isFlag {
		runtimex.Assert(!res.negated || opt.flagConst != nil)
		value, err := resolveFlagValue(cmd, opt, res.negated, hasInline, inline, tok.Index())
		if err != nil {
			return err
		}
		acc.occurrences = append(acc.occurrences, occurrence{
			matchedName: res.alias, tokenIndex: tok.Index(), flagValue: value,
		})
		return nil
	}

	var values []string
	if hasInline {
		values = append(values, inline)
	}
	values, err = collectValues(cmd, opt, tok.Index(), values, input)
	if err != nil {
		return err
	}
	acc.occurrences = append(acc.occurrences, occurrence{
		matchedName: res.alias, tokenIndex: tok.Index(), values: values,
	})
	return nil
}

// dispatchShortCluster resolves and consumes a "-xvzfFILE"-style
// cluster of short options, grounded on the teacher's
// doParseGroupableOption.
func dispatchShortCluster(cmd *CommandSpec, tok flagscanner.OptionToken, input *deque[flagscanner.Token], accums map[string]*optionAccum) error {
	remainder := tok.Name
	for len(remainder) > 0 {
		ch := remainder[0]
		remainder = remainder[1:]

		opt, ok := cmd.resolveShortOption(ch)
		if !ok {
			return UnknownOptionError{Command: cmd.name, Token: "-" + string(ch), Index: tok.Index()}
		}
		acc := accumFor(accums, opt)

		if opt.isFlag {
			if len(remainder) > 0 && remainder[0] == '=' {
				return OptionDoesNotAcceptValueError{Command: cmd.name, Option: opt.name, Index: tok.Index()}
			}
			value, err := resolveFlagValue(cmd, opt, false, false, "", tok.Index())
			if err != nil {
				return err
			}
			acc.occurrences = append(acc.occurrences, occurrence{
				matchedName: string(ch), tokenIndex: tok.Index(), flagValue: value,
			})
			continue
		}

		var values []string
		if len(remainder) > 0 {
			values = append(values, remainder)
			remainder = ""
		}
		values, err := collectValues(cmd, opt, tok.Index(), values, input)
		if err != nil {
			return err
		}
		acc.occurrences = append(acc.occurrences, occurrence{
			matchedName: string(ch), tokenIndex: tok.Index(), values: values,
		})
	}
	return nil
}

// resolveFlagValue computes the value a single flag occurrence records,
// accounting for a negated (e.g. "--no-verbose") match and an optional
// inline "=value" override gated by [ParserConfig.AllowEqualsForFlags].
func resolveFlagValue(cmd *CommandSpec, opt *OptionSpec, negated, hasInline bool, inline string, index int) (any, error) {
	if hasInline {
		if !cmd.config.AllowEqualsForFlags {
			return nil, FlagWithValueError{Command: cmd.name, Option: opt.name, Index: index}
		}
		var effective bool
		switch {
		case cmd.config.isTruthy(inline):
			effective = true
		case cmd.config.isFalsey(inline):
			effective = false
		default:
			return nil, InvalidFlagValueError{Command: cmd.name, Option: opt.name, Value: inline, Index: index}
		}
		if negated {
			effective = !effective
		}
		return effective, nil
	}
	if negated {
		base, _ := opt.flagConst.(bool)
		return !base, nil
	}
	return opt.flagConst, nil
}

// collectValues appends a first inline value (if any) to values, then
// greedily pulls further tokens from input until arity.Max is reached
// or a boundary token (per [isBoundaryToken]) is found, and validates
// the result against arity.Min.
func collectValues(cmd *CommandSpec, opt *OptionSpec, index int, values []string, input *deque[flagscanner.Token]) ([]string, error) {
	for opt.arity.IsUnbounded() || len(values) < opt.arity.Max {
		if input.Empty() {
			break
		}
		next, _ := input.Front()
		if isBoundaryToken(cmd, next) {
			break
		}
		input.PopFront()
		values = append(values, next.String())
	}
	if len(values) < opt.arity.Min {
		return nil, InsufficientOptionValuesError{
			Command: cmd.name, Option: opt.name, Want: opt.arity.Min, Got: len(values), Index: index,
		}
	}
	return values, nil
}

func accumFor(accums map[string]*optionAccum, opt *OptionSpec) *optionAccum {
	acc, ok := accums[opt.name]
	if !ok {
		acc = &optionAccum{spec: opt}
		accums[opt.name] = acc
	}
	return acc
}

// buildParsedOption reconciles every occurrence of one option into its
// final [ParsedOption], applying [AccumulationMode].
func buildParsedOption(cmd *CommandSpec, acc *optionAccum) (*ParsedOption, error) {
	opt := acc.spec
	occ := acc.occurrences
	n := len(occ)

	switch opt.accumulation {
	case ErrorOnDuplicate:
		if n > 1 {
			return nil, OptionCannotBeSpecifiedMultipleTimesError{
				Command: cmd.name, Option: opt.name, Index: occ[1].tokenIndex,
			}
		}
		return &ParsedOption{name: opt.name, matchedName: occ[0].matchedName, value: pickValue(opt, occ[0]), occurrences: n}, nil

	case FirstWins:
		return &ParsedOption{name: opt.name, matchedName: occ[0].matchedName, value: pickValue(opt, occ[0]), occurrences: n}, nil

	case Count:
		return &ParsedOption{name: opt.name, matchedName: occ[n-1].matchedName, value: n, occurrences: n}, nil

	case Collect:
		if opt.arity.Max == 1 {
			values := make([]string, 0, n)
			for _, o := range occ {
				if len(o.values) > 0 {
					values = append(values, o.values[0])
				}
			}
			return &ParsedOption{name: opt.name, matchedName: occ[n-1].matchedName, value: values, occurrences: n}, nil
		}
		if opt.flattenValues {
			var flat []string
			for _, o := range occ {
				flat = append(flat, o.values...)
			}
			return &ParsedOption{name: opt.name, matchedName: occ[n-1].matchedName, value: flat, occurrences: n}, nil
		}
		tuples := make([][]string, 0, n)
		for _, o := range occ {
			tuples = append(tuples, append([]string(nil), o.values...))
		}
		return &ParsedOption{name: opt.name, matchedName: occ[n-1].matchedName, value: tuples, occurrences: n}, nil

	default: // LastWins
		last := occ[n-1]
		return &ParsedOption{name: opt.name, matchedName: last.matchedName, value: pickValue(opt, last), occurrences: n}, nil
	}
}

// pickValue renders a single occurrence's bound value per
// [ParsedOption.Value]'s documented polymorphism.
func pickValue(opt *OptionSpec, occ occurrence) any {
	if opt.isFlag {
		return occ.flagValue
	}
	if opt.arity.Max == 1 {
		if len(occ.values) == 0 {
			return ""
		}
		return occ.values[0]
	}
	return append([]string(nil), occ.values...)
}
