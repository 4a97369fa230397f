//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package posixarg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalOptionTokens(t *testing.T) {
	spec := mustOption(t, "output", WithLongNames("output", "out"))

	assert.Equal(t, []string{"--output"}, canonicalOptionTokens(spec, "", false))
	assert.Equal(t, []string{"--output=file.txt"}, canonicalOptionTokens(spec, "file.txt", true))
}
