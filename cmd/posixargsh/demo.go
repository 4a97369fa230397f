//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package main

import "github.com/cliframe/posixarg"

// buildDemoCommand constructs a small grep-and-git-flavored command
// tree exercising most of posixarg's surface: flags, negation,
// clustering, multi-value options, positionals, and subcommands.
func buildDemoCommand() *posixarg.CommandSpec {
	mustOption := func(name string, opts ...posixarg.OptionSpecOption) *posixarg.OptionSpec {
		o, err := posixarg.NewOptionSpec(name, opts...)
		if err != nil {
			panic(err)
		}
		return o
	}
	mustPositional := func(name string, arity posixarg.Arity) *posixarg.PositionalSpec {
		p, err := posixarg.NewPositionalSpec(name, arity)
		if err != nil {
			panic(err)
		}
		return p
	}

	verbose := mustOption("verbose", posixarg.WithLongNames("verbose"), posixarg.WithShortNames('v'),
		posixarg.WithNegationPrefixes("no"))
	count := mustOption("count", posixarg.WithLongNames("count"), posixarg.WithShortNames('c'),
		posixarg.AsFlag(), posixarg.WithAccumulation(posixarg.Count))
	include := mustOption("include", posixarg.WithLongNames("include"), posixarg.WithShortNames('I'),
		posixarg.WithAccumulation(posixarg.Collect))

	pattern := mustPositional("pattern", posixarg.ExactlyOne)
	files := mustPositional("files", posixarg.ZeroOrMore)

	grep, err := posixarg.NewCommandSpec("grep", nil,
		posixarg.WithOptions(verbose, count, include),
		posixarg.WithPositionals(pattern, files),
	)
	if err != nil {
		panic(err)
	}

	branch := mustPositional("branch", posixarg.ZeroOrOne)
	checkout, err := posixarg.NewCommandSpec("checkout", nil,
		posixarg.WithAliases("co"),
		posixarg.WithPositionals(branch),
	)
	if err != nil {
		panic(err)
	}

	root, err := posixarg.NewCommandSpec("posixargsh", nil,
		posixarg.WithOptions(verbose),
		posixarg.WithSubcommands(grep, checkout),
	)
	if err != nil {
		panic(err)
	}
	return root
}
