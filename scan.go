//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/parser.go
//

package posixarg

import "github.com/bassosimone/flagscanner"

// scan performs the lexical first pass described by SPEC_FULL.md §2/§4:
// it classifies each raw token by prefix, using the same
// [flagscanner.Scanner] the teacher library uses, configured for the
// fixed GNU prefixes ("-" for short options, "--" for long options) and
// the "--" options-arguments separator.
//
// The engine (engine.go) performs every GNU-specific behavior on top
// of the resulting tokens: clustering, abbreviation, negation,
// negative-number fallback, arity, and accumulation.
func scan(tokens []string) []flagscanner.Token {
	sx := &flagscanner.Scanner{
		Prefixes: []string{"-", "--"},
		Separator: "--",
	}
	return sx.Scan(tokens)
}

// isLoneDash reports whether tok is the one-character "-" token, which
// flagscanner classifies as an [flagscanner.OptionToken] with an empty
// name, but which spec.md §4.3 requires to be treated as a positional
// value ("`-` alone (single dash): positional value").
func isLoneDash(tok flagscanner.Token) bool {
	opt, ok := tok.(flagscanner.OptionToken)
	return ok && opt.Prefix == "-" && opt.Name == ""
}
