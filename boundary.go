//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/early.go
//

package posixarg

import "github.com/bassosimone/flagscanner"

// isBoundaryToken reports whether tok must stop greedy consumption of
// extra values for a multi-value option, per spec.md §4.2: "Stop when
// arity.max hit or a boundary token is encountered" — an option
// candidate (leading "-"/"--", unless it is really an allowed negative
// number), the "--" separator, or (when cmd declares subcommands) a
// recognized subcommand name.
//
// This reuses the teacher's early.go pattern of scanning ahead through
// already-classified tokens looking for one structurally interesting
// case, even though the thing being looked for (a value-consumption
// boundary, rather than a pre-scanned "--help") is different.
func isBoundaryToken(cmd *CommandSpec, tok flagscanner.Token) bool {
	switch t := tok.(type) {
	case flagscanner.OptionsArgumentsSeparatorToken:
		return true

	case flagscanner.OptionToken:
		if t.Prefix == "-" && t.Name == "" {
			return false // lone "-" is a positional value, never a boundary
		}
		if t.Prefix == "-" && negativeNumberWins(cmd, t.Prefix, t.Name) {
			return false
		}
		return true

	case flagscanner.PositionalArgumentToken:
		if cmd.HasSubcommands() {
			if _, ok, _ := cmd.resolveSubcommand(t.Value); ok {
				return true
			}
		}
		return false

	default:
		return false
	}
}
