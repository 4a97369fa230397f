//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package posixarg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArity(t *testing.T) {
	type testcase struct {
		name        string
		input       Arity
		isUnbounded bool
		isFlag      bool
		accepts     map[int]bool
		str         string
	}

	cases := []testcase{
		{
			name:        "Zero",
			input:       Zero,
			isUnbounded: false,
			isFlag:      true,
			accepts:     map[int]bool{0: true, 1: false},
			str:         "0",
		},
		{
			name:        "ZeroOrOne",
			input:       ZeroOrOne,
			accepts:     map[int]bool{0: true, 1: true, 2: false},
			str:         "0..1",
		},
		{
			name:        "ExactlyOne",
			input:       ExactlyOne,
			accepts:     map[int]bool{0: false, 1: true, 2: false},
			str:         "1",
		},
		{
			name:        "ZeroOrMore",
			input:       ZeroOrMore,
			isUnbounded: true,
			accepts:     map[int]bool{0: true, 50: true},
			str:         "0..*",
		},
		{
			name:        "OneOrMore",
			input:       OneOrMore,
			isUnbounded: true,
			accepts:     map[int]bool{0: false, 1: true, 50: true},
			str:         "1..*",
		},
		{
			name:    "NewArity(2,4)",
			input:   NewArity(2, 4),
			accepts: map[int]bool{1: false, 2: true, 4: true, 5: false},
			str:     "2..4",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.isUnbounded, tc.input.IsUnbounded())
			assert.Equal(t, tc.isFlag, tc.input.IsFlag())
			for n, want := range tc.accepts {
				assert.Equal(t, want, tc.input.Accepts(n), "Accepts(%d)", n)
			}
			assert.Equal(t, tc.str, tc.input.String())
		})
	}
}

func TestNewArityPanics(t *testing.T) {
	assert.Panics(t, func() { NewArity(-1, 2) })
	assert.Panics(t, func() { NewArity(0, -2) })
	assert.Panics(t, func() { NewArity(3, 1) })
}
