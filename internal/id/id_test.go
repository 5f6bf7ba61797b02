package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Prefix(t *testing.T) {
	got, err := Generate("bm")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "bm-"))
	// 21-char nanoid plus prefix and separator.
	assert.Len(t, got, len("bm-")+21)
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id, err := Generate("fld")
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestMustGenerate(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = MustGenerate("bm")
	})
}
