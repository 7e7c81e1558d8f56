package commands_test

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gingerrexayers/pngme-go/internal/pngme/commands"
	"github.com/gingerrexayers/pngme-go/internal/pngme/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "image.png")
	captureStdout(t, func() {
		require.NoError(t, commands.Encode(path, "ruSt", "hello", commands.EncodeOptions{}))
	})

	report, err := commands.Inspect(path)
	require.NoError(t, err)
	require.NotEmpty(t, report.Chunks)

	first := report.Chunks[0]
	assert.Equal(t, "IHDR", first.Type)
	assert.Equal(t, uint32(13), first.Length)
	assert.True(t, first.Critical)
	assert.True(t, first.Public)
	assert.False(t, first.SafeToCopy)

	last := report.Chunks[len(report.Chunks)-1]
	assert.Equal(t, "ruSt", last.Type)
	assert.Equal(t, uint32(5), last.Length)
	assert.False(t, last.Critical)
	assert.False(t, last.Public)
	assert.True(t, last.Reserved)
	assert.True(t, last.SafeToCopy)
	assert.Equal(t, len(report.Chunks)-1, last.Index)
}

func TestPrintCommand(t *testing.T) {
	t.Run("table output", func(t *testing.T) {
		path := writeTestPNG(t, t.TempDir(), "image.png")

		output := captureStdout(t, func() {
			require.NoError(t, commands.Print(path, commands.PrintOptions{}))
		})

		assert.Contains(t, output, "Chunks in")
		lines := strings.Split(output, "\n")
		var header string
		for _, line := range lines {
			if strings.HasPrefix(line, "INDEX") {
				header = line
			}
		}
		require.NotEmpty(t, header, "missing header line")
		assert.Contains(t, header, "FLAGS")
		assert.Contains(t, output, "IHDR")
		assert.Contains(t, output, "CPR-", "IHDR is critical, public, reserved-valid and unsafe to copy")
		assert.Contains(t, output, "IEND")
	})

	t.Run("json output", func(t *testing.T) {
		path := writeTestPNG(t, t.TempDir(), "image.png")

		output := captureStdout(t, func() {
			require.NoError(t, commands.Print(path, commands.PrintOptions{JSON: true}))
		})

		var report types.FileReport
		require.NoError(t, json.Unmarshal([]byte(output), &report))
		assert.Equal(t, path, report.Path)
		assert.Greater(t, report.Size, int64(0))
		require.NotEmpty(t, report.Chunks)
		assert.Equal(t, "IEND", report.Chunks[len(report.Chunks)-1].Type)
	})

	t.Run("missing file", func(t *testing.T) {
		err := commands.Print(filepath.Join(t.TempDir(), "missing.png"), commands.PrintOptions{})
		assert.Error(t, err)
	})
}

func TestChunkTypes(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "image.png")
	captureStdout(t, func() {
		require.NoError(t, commands.Encode(path, "ruSt", "a", commands.EncodeOptions{}))
		require.NoError(t, commands.Encode(path, "ruSt", "b", commands.EncodeOptions{}))
	})

	names, err := commands.ChunkTypes(path)
	require.NoError(t, err)
	assert.Contains(t, names, "IHDR")
	assert.Contains(t, names, "IEND")

	count := 0
	for _, n := range names {
		if n == "ruSt" {
			count++
		}
	}
	assert.Equal(t, 1, count, "types are listed once")
	assert.IsNonDecreasing(t, names)
}
