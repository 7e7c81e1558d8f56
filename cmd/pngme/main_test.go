package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gingerrexayers/pngme-go/internal/pngme/commands"
	"github.com/gingerrexayers/pngme-go/internal/pngme/png"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMinimalPNG(t *testing.T) string {
	t.Helper()
	header, err := png.MakeChunk("IHDR", []byte{0, 0, 0, 1, 0, 0, 0, 1, 8, 0, 0, 0, 0})
	require.NoError(t, err)
	end, err := png.MakeChunk("IEND", nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "image.png")
	require.NoError(t, os.WriteFile(path, png.New(header, end).Bytes(), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestArgumentValidation(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "encode without message", args: []string{"encode", "image.png", "ruSt"}},
		{name: "decode without type", args: []string{"decode", "image.png"}},
		{name: "remove with extra args", args: []string{"remove", "image.png", "ruSt", "extra"}},
		{name: "print without file", args: []string{"print"}},
		{name: "scan without type", args: []string{"scan"}},
		{name: "completion for unknown shell", args: []string{"completion", "tcsh"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestEncodeAndRemoveThroughCLI(t *testing.T) {
	path := writeMinimalPNG(t)

	_, err := execute(t, "encode", path, "ruSt", "from the command line", "--backup")
	require.NoError(t, err)

	message, err := commands.DecodeMessage(path, "ruSt")
	require.NoError(t, err)
	assert.Equal(t, "from the command line", message)
	assert.FileExists(t, path+".bak")

	_, err = execute(t, "remove", path, "ruSt")
	require.NoError(t, err)

	_, err = commands.DecodeMessage(path, "ruSt")
	assert.ErrorIs(t, err, png.ErrChunkNotFound)
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "pngme")
}

func TestChunkArgCompletions(t *testing.T) {
	path := writeMinimalPNG(t)

	exts, directive := chunkArgCompletions(&cobra.Command{}, nil, "")
	assert.Equal(t, []string{"png"}, exts)
	assert.Equal(t, cobra.ShellCompDirectiveFilterFileExt, directive)

	names, directive := chunkArgCompletions(&cobra.Command{}, []string{path}, "")
	assert.Equal(t, []string{"IEND", "IHDR"}, names)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	names, _ = chunkArgCompletions(&cobra.Command{}, []string{filepath.Join(t.TempDir(), "missing.png")}, "")
	assert.Empty(t, names)
}
