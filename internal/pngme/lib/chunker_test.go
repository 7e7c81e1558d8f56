package lib

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPayload(t *testing.T) {
	t.Run("large payload is split into several parts", func(t *testing.T) {
		content := make([]byte, 64*1024)
		_, err := rand.Read(content)
		require.NoError(t, err)

		parts, err := SplitPayload(content)
		require.NoError(t, err)
		assert.Greater(t, len(parts), 1)

		for _, p := range parts {
			assert.LessOrEqual(t, len(p), maxPartSize)
		}
		assert.Equal(t, content, bytes.Join(parts, nil), "parts must reassemble the payload")
	})

	t.Run("small payload stays whole", func(t *testing.T) {
		content := []byte("this message is too small to be split.")

		parts, err := SplitPayload(content)
		require.NoError(t, err)
		require.Len(t, parts, 1)
		assert.Equal(t, content, parts[0])
	})

	t.Run("empty payload has no parts", func(t *testing.T) {
		parts, err := SplitPayload(nil)
		require.NoError(t, err)
		assert.Empty(t, parts)
	})

	t.Run("split is deterministic", func(t *testing.T) {
		content := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 2000)

		first, err := SplitPayload(content)
		require.NoError(t, err)
		second, err := SplitPayload(content)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
