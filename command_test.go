//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/config_test.go
//

package posixarg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustOption(t *testing.T, name string, opts ...OptionSpecOption) *OptionSpec {
	t.Helper()
	o, err := NewOptionSpec(name, opts...)
	assert.NoError(t, err)
	return o
}

func mustPositional(t *testing.T, name string, arity Arity) *PositionalSpec {
	t.Helper()
	p, err := NewPositionalSpec(name, arity)
	assert.NoError(t, err)
	return p
}

func TestNewCommandSpec(t *testing.T) {
	t.Run("rejects the reserved token as a name", func(t *testing.T) {
		_, err := NewCommandSpec("--", nil)
		var target ReservedTokenError
		assert.ErrorAs(t, err, &target)
	})

	t.Run("rejects duplicate option names", func(t *testing.T) {
		verbose := mustOption(t, "verbose", WithLongNames("verbose"), AsFlag())
		again := mustOption(t, "verbose", WithLongNames("quiet"), AsFlag())
		_, err := NewCommandSpec("app", nil, WithOptions(verbose, again))
		var target DuplicateOptionNameError
		assert.ErrorAs(t, err, &target)
	})

	t.Run("rejects duplicate long names across options", func(t *testing.T) {
		a := mustOption(t, "a", WithLongNames("mode"), AsFlag())
		b := mustOption(t, "b", WithLongNames("mode"), AsFlag())
		_, err := NewCommandSpec("app", nil, WithOptions(a, b))
		var target DuplicateOptionNameError
		assert.ErrorAs(t, err, &target)
	})

	t.Run("rejects duplicate short names", func(t *testing.T) {
		a := mustOption(t, "a", WithShortNames('x'), AsFlag())
		b := mustOption(t, "b", WithShortNames('x'), AsFlag())
		_, err := NewCommandSpec("app", nil, WithOptions(a, b))
		var target DuplicateShortNameError
		assert.ErrorAs(t, err, &target)
	})

	t.Run("rejects a negation prefix colliding with a sibling long name", func(t *testing.T) {
		verbose := mustOption(t, "verbose", WithLongNames("verbose"), WithNegationPrefixes("no"))
		collide := mustOption(t, "no-verbose", WithLongNames("no-verbose"), AsFlag())
		_, err := NewCommandSpec("app", nil, WithOptions(verbose, collide))
		var target ConflictingNegationPrefixError
		assert.ErrorAs(t, err, &target)
	})

	t.Run("rejects more than one unbounded positional", func(t *testing.T) {
		a := mustPositional(t, "a", ZeroOrMore)
		b := mustPositional(t, "b", OneOrMore)
		_, err := NewCommandSpec("app", nil, WithPositionals(a, b))
		var target MultipleUnboundedPositionalsError
		assert.ErrorAs(t, err, &target)
	})

	t.Run("rejects duplicate subcommand names and aliases", func(t *testing.T) {
		sub1, err := NewCommandSpec("start", nil)
		assert.NoError(t, err)
		sub2, err := NewCommandSpec("run", nil, WithAliases("start"))
		assert.NoError(t, err)
		_, err = NewCommandSpec("app", nil, WithSubcommands(sub1, sub2))
		var target DuplicateSubcommandNameError
		assert.ErrorAs(t, err, &target)
	})

	t.Run("inherits the parent configuration by default", func(t *testing.T) {
		parentCfg := DefaultConfig()
		parentCfg.StrictOptionOrder = true
		cmd, err := NewCommandSpec("app", parentCfg)
		assert.NoError(t, err)
		assert.Same(t, parentCfg, cmd.Config())
	})

	t.Run("a root command with no parent config gets DefaultConfig", func(t *testing.T) {
		cmd, err := NewCommandSpec("app", nil)
		assert.NoError(t, err)
		assert.NotNil(t, cmd.Config())
	})
}
