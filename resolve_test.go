//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package posixarg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildResolveCommand(t *testing.T) *CommandSpec {
	t.Helper()
	verbose := mustOption(t, "verbose", WithLongNames("verbose"), WithShortNames('v'), WithNegationPrefixes("no"))
	output := mustOption(t, "output", WithLongNames("output", "out"), WithShortNames('o'))
	version := mustOption(t, "version", WithLongNames("version"), AsFlag())
	cmd, err := NewCommandSpec("app", nil, WithOptions(verbose, output, version))
	assert.NoError(t, err)
	return cmd
}

func TestResolveLongOption(t *testing.T) {
	cmd := buildResolveCommand(t)

	t.Run("exact match", func(t *testing.T) {
		res, err := cmd.resolveLongOption("verbose")
		assert.NoError(t, err)
		assert.Equal(t, "verbose", res.option.Name())
		assert.False(t, res.negated)
	})

	t.Run("negation-prefixed exact match", func(t *testing.T) {
		res, err := cmd.resolveLongOption("no-verbose")
		assert.NoError(t, err)
		assert.Equal(t, "verbose", res.option.Name())
		assert.True(t, res.negated)
	})

	t.Run("unique abbreviation", func(t *testing.T) {
		res, err := cmd.resolveLongOption("vers")
		assert.NoError(t, err)
		assert.Equal(t, "version", res.option.Name())
	})

	t.Run("ambiguous abbreviation", func(t *testing.T) {
		_, err := cmd.resolveLongOption("o")
		var target AmbiguousOptionError
		assert.ErrorAs(t, err, &target)
		assert.ElementsMatch(t, []string{"out", "output"}, target.Candidates)
	})

	t.Run("unknown option", func(t *testing.T) {
		_, err := cmd.resolveLongOption("nonexistent")
		var target UnknownOptionError
		assert.ErrorAs(t, err, &target)
	})
}

func TestResolveShortOption(t *testing.T) {
	cmd := buildResolveCommand(t)

	opt, ok := cmd.resolveShortOption('v')
	assert.True(t, ok)
	assert.Equal(t, "verbose", opt.Name())

	_, ok = cmd.resolveShortOption('z')
	assert.False(t, ok)
}

func TestResolveSubcommand(t *testing.T) {
	start, err := NewCommandSpec("start", nil, WithAliases("run"))
	assert.NoError(t, err)
	stop, err := NewCommandSpec("stop", nil)
	assert.NoError(t, err)
	cmd, err := NewCommandSpec("app", nil, WithSubcommands(start, stop))
	assert.NoError(t, err)

	t.Run("exact name", func(t *testing.T) {
		res, ok, err := cmd.resolveSubcommand("start")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "start", res.command.Name())
	})

	t.Run("alias", func(t *testing.T) {
		res, ok, err := cmd.resolveSubcommand("run")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "start", res.command.Name())
	})

	t.Run("abbreviation", func(t *testing.T) {
		res, ok, err := cmd.resolveSubcommand("sto")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "stop", res.command.Name())
	})

	t.Run("ambiguous abbreviation", func(t *testing.T) {
		_, ok, err := cmd.resolveSubcommand("st")
		assert.False(t, ok)
		var target AmbiguousSubcommandError
		assert.ErrorAs(t, err, &target)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok, err := cmd.resolveSubcommand("bogus")
		assert.False(t, ok)
		assert.NoError(t, err)
	})
}

func TestIsNegativeNumber(t *testing.T) {
	assert.True(t, isNegativeNumber("-5"))
	assert.True(t, isNegativeNumber("-3.14"))
	assert.False(t, isNegativeNumber("-"))
	assert.False(t, isNegativeNumber("-verbose"))
	assert.False(t, isNegativeNumber("5"))
}

func TestNegativeNumberWins(t *testing.T) {
	three := mustOption(t, "three", WithShortNames('3'), AsFlag())
	cmd, err := NewCommandSpec("app", nil, WithOptions(three))
	assert.NoError(t, err)

	t.Run("registered short beats the number reading", func(t *testing.T) {
		assert.False(t, negativeNumberWins(cmd, "-", "3"))
	})

	t.Run("unregistered digit is a negative number", func(t *testing.T) {
		assert.True(t, negativeNumberWins(cmd, "-", "5"))
	})

	t.Run("disabled by config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.AllowNegativeNumbers = false
		other, err := NewCommandSpec("app", cfg)
		assert.NoError(t, err)
		assert.False(t, negativeNumberWins(other, "-", "5"))
	})
}
