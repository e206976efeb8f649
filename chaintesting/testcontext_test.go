package chaintesting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueTestLabel(t *testing.T) {
	a := UniqueTestLabel("chain")
	b := UniqueTestLabel("chain")
	assert.True(t, strings.HasPrefix(a, "chain-"))
	assert.NotEqual(t, a, b)
}

func TestNewNamedDigest(t *testing.T) {
	for _, name := range []string{"sha256", "sha3-256", "blake2b-256"} {
		t.Run(name, func(t *testing.T) {
			h, err := NewNamedDigest(name)
			require.NoError(t, err)
			assert.Equal(t, 32, h.Size())
		})
	}

	_, err := NewNamedDigest("md5")
	require.Error(t, err)
}
