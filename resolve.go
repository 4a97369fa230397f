//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/config.go
//

package posixarg

import (
	"sort"
	"strconv"
	"strings"
)

// longResolution is the outcome of resolving a long-option token's name
// (with any leading "--" and inline "=value" already stripped) against
// a [CommandSpec].
type longResolution struct {
	option  *OptionSpec
	alias   string // the exact alias the caller typed, e.g. "no-verb"
	negated bool
}

// resolveLongOption implements spec.md §4.1's long-option resolution
// precedence: exact match, then negation-prefixed match, then unique
// abbreviation.
func (c *CommandSpec) resolveLongOption(raw string) (longResolution, error) {
	norm := c.normalizeLong(raw)

	// 1. Exact match.
	if name, ok := c.longIndex[norm]; ok {
		return longResolution{option: c.optionByName[name], alias: raw}, nil
	}

	// 2. Exact negation-prefixed match: <prefix>-<long name>.
	for _, opt := range c.options {
		for _, prefix := range opt.negationPrefixes {
			for _, long := range opt.long {
				if c.normalizeLong(prefix+"-"+long) == norm {
					return longResolution{option: opt, alias: raw, negated: true}, nil
				}
			}
		}
	}

	// 3. Abbreviation, considering both plain long names and
	// negation-prefixed forms (spec.md §9 open question, resolved as
	// "yes").
	if c.config.AllowAbbreviations && len(norm) >= c.config.AbbreviationMinLength {
		type candidate struct {
			full    string
			option  *OptionSpec
			negated bool
		}
		var candidates []candidate
		seen := map[string]bool{}
		for _, opt := range c.options {
			for _, long := range opt.long {
				if strings.HasPrefix(c.normalizeLong(long), norm) && !seen[long] {
					seen[long] = true
					candidates = append(candidates, candidate{full: long, option: opt})
				}
			}
			for _, prefix := range opt.negationPrefixes {
				for _, long := range opt.long {
					full := prefix + "-" + long
					if strings.HasPrefix(c.normalizeLong(full), norm) && !seen[full] {
						seen[full] = true
						candidates = append(candidates, candidate{full: full, option: opt, negated: true})
					}
				}
			}
		}
		if len(candidates) == 1 {
			return longResolution{option: candidates[0].option, alias: raw, negated: candidates[0].negated}, nil
		}
		if len(candidates) > 1 {
			names := make([]string, 0, len(candidates))
			for _, cand := range candidates {
				names = append(names, cand.full)
			}
			sort.Strings(names)
			return longResolution{}, AmbiguousOptionError{Command: c.name, Token: raw, Candidates: names}
		}
	}

	return longResolution{}, UnknownOptionError{Command: c.name, Token: raw}
}

// resolveShortOption implements spec.md §4.1's short-option resolution:
// exact match only, never abbreviated.
func (c *CommandSpec) resolveShortOption(ch byte) (*OptionSpec, bool) {
	name, ok := c.shortIndex[c.normalizeShort(ch)]
	if !ok {
		return nil, false
	}
	return c.optionByName[name], true
}

// subcommandResolution is the outcome of resolving a token against a
// [CommandSpec]'s declared subcommands.
type subcommandResolution struct {
	command *CommandSpec
	alias   string
}

// resolveSubcommand implements spec.md §4.1's subcommand resolution:
// exact match against name or alias, then (if enabled) unique
// abbreviation, with the same ambiguity rules as long options.
func (c *CommandSpec) resolveSubcommand(raw string) (subcommandResolution, bool, error) {
	norm := c.normalizeSubcommandName(raw)

	if canonical, ok := c.subcommandIndex[norm]; ok {
		for _, sub := range c.subcommands {
			if sub.name == canonical {
				return subcommandResolution{command: sub, alias: raw}, true, nil
			}
		}
	}

	if c.config.AllowAbbreviations && len(norm) >= c.config.AbbreviationMinLength {
		seen := map[string]bool{}
		var names []string
		var matched *CommandSpec
		for key, canonical := range c.subcommandIndex {
			if !strings.HasPrefix(key, norm) {
				continue
			}
			if seen[canonical] {
				continue
			}
			seen[canonical] = true
			names = append(names, canonical)
			for _, sub := range c.subcommands {
				if sub.name == canonical {
					matched = sub
				}
			}
		}
		if len(names) == 1 {
			return subcommandResolution{command: matched, alias: raw}, true, nil
		}
		if len(names) > 1 {
			sort.Strings(names)
			return subcommandResolution{}, false, AmbiguousSubcommandError{Command: c.name, Token: raw, Candidates: names}
		}
	}

	return subcommandResolution{}, false, nil
}

// isNegativeNumber reports whether s parses as a decimal or
// floating-point number with a leading "-", per spec.md §4.2's
// AllowNegativeNumbers rule.
func isNegativeNumber(s string) bool {
	if !strings.HasPrefix(s, "-") || len(s) < 2 {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// negativeNumberWins reports whether a "-"-prefixed token should be
// captured as a negative-number positional rather than dispatched as a
// short-option cluster. Per spec.md §4.3, AllowNegativeNumbers does not
// apply to a cluster whose first character is itself a registered short
// option: the registered short always wins over the number reading.
func negativeNumberWins(cmd *CommandSpec, prefix, name string) bool {
	if !cmd.config.AllowNegativeNumbers || !isNegativeNumber(prefix+name) {
		return false
	}
	if len(name) > 0 {
		if _, ok := cmd.resolveShortOption(name[0]); ok {
			return false
		}
	}
	return true
}
