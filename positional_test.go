//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package posixarg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPositionalSpec(t *testing.T) {
	t.Run("rejects an empty name", func(t *testing.T) {
		_, err := NewPositionalSpec("", ExactlyOne)
		assert.Error(t, err)
	})

	t.Run("accepts a valid positional", func(t *testing.T) {
		p, err := NewPositionalSpec("files", OneOrMore)
		assert.NoError(t, err)
		assert.Equal(t, "files", p.Name())
		assert.Equal(t, OneOrMore, p.Arity())
	})
}
