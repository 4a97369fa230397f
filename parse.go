//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/clip/blob/v0.8.0/pkg/nparser/parser.go
//

package posixarg

// Parse parses args against cmd, returning the resulting [ParseResult]
// tree or the first [ParseError] encountered.
//
// args MUST NOT include the program name, following the convention of
// the underlying tokenizer. When cmd declares subcommands, a nested
// [ParseResult] is produced for whichever subcommand (if any) is
// invoked, reachable via [ParseResult.Subcommand].
func Parse(cmd *CommandSpec, args []string) (*ParseResult, error) {
	return parseTokens(cmd, scan(args))
}
