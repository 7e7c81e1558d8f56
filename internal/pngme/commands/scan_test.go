package commands_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gingerrexayers/pngme-go/internal/pngme/commands"
	"github.com/gingerrexayers/pngme-go/internal/pngme/lib"
	"github.com/gingerrexayers/pngme-go/internal/pngme/png"
	"github.com/gingerrexayers/pngme-go/internal/pngme/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupScanDir builds a tree of images, some carrying a ruSt chunk, plus
// ignored paths and a broken file.
func setupScanDir(t *testing.T) string {
	t.Helper()
	testDir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	tagged := []string{"a.png", "nested/b.PNG", "ignored_dir/c.png", "thumbs/d.thumb.png"}
	for _, name := range tagged {
		path := writeTestPNG(t, testDir, name)
		captureStdout(t, func() {
			require.NoError(t, commands.Encode(path, "ruSt", "secret in "+name, commands.EncodeOptions{}))
		})
	}
	writeTestPNG(t, testDir, "plain.png")

	require.NoError(t, os.WriteFile(filepath.Join(testDir, "broken.png"), []byte("not really a png"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(testDir, "notes.txt"), []byte("ignored by extension"), 0644))

	ignoreContent := "# skip thumbnails\n*.thumb.png\n\nignored_dir/"
	require.NoError(t, os.WriteFile(filepath.Join(testDir, lib.IgnoreFilename), []byte(ignoreContent), 0644))
	return testDir
}

func TestScanDirectory(t *testing.T) {
	testDir := setupScanDir(t)

	report, err := commands.ScanDirectory(testDir, "ruSt")
	require.NoError(t, err)

	assert.Equal(t, testDir, report.Root)
	assert.Equal(t, 4, report.Scanned, "a.png, nested/b.PNG, plain.png and broken.png")

	var matched []string
	for _, m := range report.Matches {
		matched = append(matched, m.Path)
		assert.Equal(t, 1, m.Count)
		assert.Greater(t, m.Payload, uint64(0))
	}
	assert.Equal(t, []string{"a.png", "nested/b.PNG"}, matched)

	require.Len(t, report.Failures, 1)
	assert.Equal(t, "broken.png", report.Failures[0].Path)
	assert.Contains(t, report.Failures[0].Error, png.ErrInvalidSignature.Error())
}

func TestScanDirectoryErrors(t *testing.T) {
	_, err := commands.ScanDirectory(filepath.Join(t.TempDir(), "nope"), "ruSt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target directory does not exist")

	_, err = commands.ScanDirectory(t.TempDir(), "r")
	assert.ErrorIs(t, err, png.ErrInvalidTypeLength)
}

func TestScanCommand(t *testing.T) {
	testDir := setupScanDir(t)

	t.Run("table output", func(t *testing.T) {
		output := captureStdout(t, func() {
			require.NoError(t, commands.Scan(testDir, "ruSt", commands.ScanOptions{}))
		})
		assert.Contains(t, output, "with ruSt chunks")
		assert.Contains(t, output, "a.png")
		assert.Contains(t, output, "nested/b.PNG")
		assert.NotContains(t, output, "c.png")
		assert.NotContains(t, output, "d.thumb.png")
	})

	t.Run("json output", func(t *testing.T) {
		output := captureStdout(t, func() {
			require.NoError(t, commands.Scan(testDir, "ruSt", commands.ScanOptions{JSON: true}))
		})
		var report types.ScanReport
		require.NoError(t, json.Unmarshal([]byte(output), &report))
		assert.Len(t, report.Matches, 2)
	})

	t.Run("no matches", func(t *testing.T) {
		output := captureStdout(t, func() {
			require.NoError(t, commands.Scan(testDir, "noNe", commands.ScanOptions{}))
		})
		assert.True(t, strings.HasPrefix(output, "No noNe chunks found"), "got: %s", output)
	})
}
