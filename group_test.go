//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package posixarg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func capturesOf(values ...string) []positionalCapture {
	out := make([]positionalCapture, 0, len(values))
	for i, v := range values {
		out = append(out, positionalCapture{value: v, index: i})
	}
	return out
}

func TestGroupPositionals(t *testing.T) {
	t.Run("scalar positional", func(t *testing.T) {
		src := mustPositional(t, "src", ExactlyOne)
		cmd, err := NewCommandSpec("app", nil, WithPositionals(src))
		assert.NoError(t, err)

		result, err := groupPositionals(cmd, capturesOf("a.txt"))
		assert.NoError(t, err)
		assert.Equal(t, "a.txt", result["src"].Value())
	})

	t.Run("fixed then unbounded, greedy fill", func(t *testing.T) {
		src := mustPositional(t, "src", ExactlyOne)
		rest := mustPositional(t, "rest", ZeroOrMore)
		cmd, err := NewCommandSpec("app", nil, WithPositionals(src, rest))
		assert.NoError(t, err)

		result, err := groupPositionals(cmd, capturesOf("a.txt", "b.txt", "c.txt"))
		assert.NoError(t, err)
		assert.Equal(t, "a.txt", result["src"].Value())
		assert.Equal(t, []string{"b.txt", "c.txt"}, result["rest"].Value())
	})

	t.Run("too few values reports the unsatisfied positional", func(t *testing.T) {
		src := mustPositional(t, "src", ExactlyOne)
		dst := mustPositional(t, "dst", ExactlyOne)
		cmd, err := NewCommandSpec("app", nil, WithPositionals(src, dst))
		assert.NoError(t, err)

		_, err = groupPositionals(cmd, capturesOf("a.txt"))
		var target InsufficientPositionalArgumentsError
		assert.ErrorAs(t, err, &target)
		assert.Equal(t, "dst", target.Positional)
	})

	t.Run("too many values with no positionals declared", func(t *testing.T) {
		cmd, err := NewCommandSpec("app", nil)
		assert.NoError(t, err)

		_, err = groupPositionals(cmd, capturesOf("extra"))
		var target UnexpectedPositionalArgumentError
		assert.ErrorAs(t, err, &target)
		assert.Equal(t, "extra", target.Token)
	})

	t.Run("implicit catch-all synthesizes an args positional", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ImplicitCatchAllPositional = true
		cmd, err := NewCommandSpec("app", cfg)
		assert.NoError(t, err)

		result, err := groupPositionals(cmd, capturesOf("a", "b"))
		assert.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, result["args"].Value())
	})
}
