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

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.AllowAbbreviations)
	assert.True(t, cfg.CaseSensitiveLong)
	assert.True(t, cfg.CaseSensitiveShort)
	assert.True(t, cfg.AllowInterleavedOptions)
	assert.False(t, cfg.StrictOptionOrder)
	assert.False(t, cfg.ImplicitCatchAllPositional)
	assert.True(t, cfg.isTruthy("YES"))
	assert.True(t, cfg.isFalsey("0"))
	assert.False(t, cfg.isTruthy("maybe"))
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.clone()
	clone.TruthyValues["banana"] = true
	assert.False(t, cfg.TruthyValues["banana"])
}

func TestAsciiLower(t *testing.T) {
	assert.Equal(t, "hello-world", asciiLower("Hello-World"))
	assert.Equal(t, "café", asciiLower("café"))
}
