//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package posixarg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeque(t *testing.T) {
	t.Run("empty deque", func(t *testing.T) {
		d := &deque[int]{}
		assert.True(t, d.Empty())
		_, ok := d.Front()
		assert.False(t, ok)
	})

	t.Run("front and pop front in order", func(t *testing.T) {
		d := &deque[int]{values: []int{1, 2, 3}}

		for _, want := range []int{1, 2, 3} {
			v, ok := d.Front()
			assert.True(t, ok)
			assert.Equal(t, want, v)
			d.PopFront()
		}
		assert.True(t, d.Empty())
	})

	t.Run("pop front on empty deque is a no-op", func(t *testing.T) {
		d := &deque[int]{}
		d.PopFront()
		assert.True(t, d.Empty())
	})
}
