//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/value.go
//

package posixarg

import (
	"fmt"
	"sort"
)

// ParseResult is one node of the immutable parse tree returned by
// [Parse]. Each subcommand invocation produces its own ParseResult,
// linked from its parent by [ParseResult.Subcommand].
type ParseResult struct {
	command     string
	alias       string
	hasAlias    bool
	options     map[string]*ParsedOption
	positionals map[string]*ParsedPositional
	extras      []string
	subcommand  *ParseResult

	// spec is the command this node was parsed against, kept around
	// only to let [ParseResult.CanonicalTokens] look up each option's
	// long name and arity.
	spec *CommandSpec
}

// Command returns the canonical name of the command this node parsed.
func (r *ParseResult) Command() string { return r.command }

// Alias returns the alias the caller actually typed to reach this
// command, and whether one was used (false at the root, or whenever
// the canonical name itself was typed).
func (r *ParseResult) Alias() (string, bool) { return r.alias, r.hasAlias }

// Options returns the parsed options at this level, keyed by
// [OptionSpec.Name].
func (r *ParseResult) Options() map[string]*ParsedOption {
	out := make(map[string]*ParsedOption, len(r.options))
	for k, v := range r.options {
		out[k] = v
	}
	return out
}

// Option returns the parsed option with the given name, if present.
func (r *ParseResult) Option(name string) (*ParsedOption, bool) {
	o, ok := r.options[name]
	return o, ok
}

// Positionals returns the parsed positionals at this level, keyed by
// [PositionalSpec.Name].
func (r *ParseResult) Positionals() map[string]*ParsedPositional {
	out := make(map[string]*ParsedPositional, len(r.positionals))
	for k, v := range r.positionals {
		out[k] = v
	}
	return out
}

// Positional returns the parsed positional with the given name, if
// present.
func (r *ParseResult) Positional(name string) (*ParsedPositional, bool) {
	p, ok := r.positionals[name]
	return p, ok
}

// Extras returns the tokens captured after the "--" separator at this
// command level, in input order.
func (r *ParseResult) Extras() []string { return append([]string(nil), r.extras...) }

// Subcommand returns the nested result for the subcommand invoked at
// this level, or nil if none was invoked.
func (r *ParseResult) Subcommand() *ParseResult { return r.subcommand }

// CanonicalTokens reconstructs a canonical GNU-style token sequence for
// this result and its subcommand chain: one "--name"/"--name=value"
// group per bound option (sorted by name), positional values in
// declaration order, "--" plus any extras, and finally the invoked
// subcommand's own name and canonical tokens.
//
// Re-[Parse]-ing this sequence against the same [CommandSpec] yields
// the same bound values for scalar and [Collect]-mode scalar options,
// [Count] flags, true-valued flags, and positionals, modulo
// [ParseResult.Alias] and [ParsedOption.MatchedAlias] (which now
// reflect the canonical forms used here) and the original left-to-right
// interleaving of options and positionals, which this tree does not
// retain. It does not reproduce everything: a non-[Count],
// non-[Collect] option is emitted once, so its Occurrences becomes 1; a
// false flag with no negation prefix is omitted; a [Collect]-mode
// optional-value occurrence that bound no value is dropped; and a
// multi-value option's values are emitted as separate tokens ahead of
// the positionals, so re-parsing can bind following positional values
// (or values that start with "-") differently. Positional values that
// start with "-" are emitted as they are and may re-parse as options.
func (r *ParseResult) CanonicalTokens() []string {
	var out []string

	names := make([]string, 0, len(r.options))
	for name := range r.options {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		out = append(out, r.options[name].canonicalTokens(r.spec)...)
	}

	if r.spec != nil {
		for _, p := range r.spec.effectivePositionals() {
			pos, ok := r.positionals[p.name]
			if !ok {
				continue
			}
			switch v := pos.value.(type) {
			case string:
				out = append(out, v)
			case []string:
				out = append(out, v...)
			}
		}
	}

	if len(r.extras) > 0 {
		out = append(out, reservedSeparator)
		out = append(out, r.extras...)
	}

	if r.subcommand != nil {
		out = append(out, r.subcommand.command)
		out = append(out, r.subcommand.CanonicalTokens()...)
	}

	return out
}

// ParsedOption is one option binding recorded in a [ParseResult].
type ParsedOption struct {
	name        string
	matchedName string
	value       any
	occurrences int
}

// Name returns the option's spec name.
func (o *ParsedOption) Name() string { return o.name }

// MatchedAlias returns the long or short alias (or negation form)
// actually used on the command line to reach this option.
func (o *ParsedOption) MatchedAlias() string { return o.matchedName }

// Value returns the bound value. Its concrete type depends on the
// option's arity and accumulation mode:
//
//  1. flags (LastWins/FirstWins/ErrorOnDuplicate): the option's
//     FlagConst (true unless set with [WithFlagConst]), or a bool for a
//     negated occurrence or one given an inline "=value"
//
//  2. flags (Count): int, equal to Occurrences
//
//  3. scalar value options (arity max == 1): string
//
//  4. multi-value options (arity max != 1) under LastWins/FirstWins/
//     ErrorOnDuplicate: []string, the most recent (or first, or only)
//     occurrence's values
//
//  5. Collect-mode scalar options: []string, in occurrence order
//
//  6. Collect-mode multi-value options: [][]string (one slice per
//     occurrence), or []string when FlattenValues is set
func (o *ParsedOption) Value() any { return o.value }

// Occurrences returns how many times the option appeared on the
// command line, including occurrences whose value was discarded by
// FirstWins.
func (o *ParsedOption) Occurrences() int { return o.occurrences }

// ParsedPositional is one positional binding recorded in a
// [ParseResult].
type ParsedPositional struct {
	name  string
	value any
}

// Name returns the positional's spec name.
func (p *ParsedPositional) Name() string { return p.name }

// Value returns the bound value: a string for arity {1,1}, or an
// ordered []string otherwise (including the empty slice for an
// optional positional with zero values).
func (p *ParsedPositional) Value() any { return p.value }

// canonicalTokens renders the full reconciled value of a [ParsedOption]
// back into canonical tokens, used by [ParseResult.CanonicalTokens].
func (o *ParsedOption) canonicalTokens(cmd *CommandSpec) []string {
	if cmd == nil {
		return nil
	}
	spec, ok := cmd.Option(o.name)
	if !ok {
		return nil
	}
	long := spec.name
	if len(spec.long) > 0 {
		long = spec.long[0]
	}

	if spec.isFlag {
		if spec.accumulation == Count {
			n, _ := o.value.(int)
			out := make([]string, 0, n)
			for i := 0; i < n; i++ {
				out = append(out, "--"+long)
			}
			return out
		}
		if b, isBool := o.value.(bool); isBool {
			if b {
				return []string{"--" + long}
			}
			if len(spec.negationPrefixes) > 0 {
				return []string{"--" + spec.negationPrefixes[0] + "-" + long}
			}
			return nil
		}
		return []string{"--" + long}
	}

	switch v := o.value.(type) {
	case string:
		return canonicalOptionTokens(spec, v, true)
	case []string:
		if spec.arity.Max == 1 {
			out := make([]string, 0, len(v))
			for _, s := range v {
				out = append(out, canonicalOptionTokens(spec, s, true)...)
			}
			return out
		}
		return append([]string{"--" + long}, v...)
	case [][]string:
		var out []string
		for _, tuple := range v {
			out = append(out, "--"+long)
			out = append(out, tuple...)
		}
		return out
	}
	return nil
}

// canonicalOptionTokens renders a single option occurrence as one
// canonical long-form token ("--name", or "--name=value" when hasValue
// is set), used by [ParseResult.CanonicalTokens] to support the
// round-trip testable property from spec.md §8.
func canonicalOptionTokens(spec *OptionSpec, value string, hasValue bool) []string {
	long := spec.name
	if len(spec.long) > 0 {
		long = spec.long[0]
	}
	if !hasValue {
		return []string{"--" + long}
	}
	return []string{fmt.Sprintf("--%s=%s", long, value)}
}
