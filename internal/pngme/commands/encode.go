// Package commands contains the command logic behind the pngme CLI.
package commands

import (
	"fmt"

	"github.com/gingerrexayers/pngme-go/internal/pngme/lib"
	"github.com/gingerrexayers/pngme-go/internal/pngme/png"
	"github.com/rs/zerolog/log"
)

// EncodeOptions holds the configuration for the encode command.
type EncodeOptions struct {
	// Output is where the result is written. Empty means the input file.
	Output string
	// Split spreads a long message over several chunks of the same type.
	Split bool
	// Backup keeps a copy of the input before it is overwritten.
	Backup bool
}

// Encode appends message to the PNG at filePath as one or more chunks of
// type chunkType.
func Encode(filePath, chunkType, message string, opts EncodeOptions) error {
	ct, err := png.ParseChunkType(chunkType)
	if err != nil {
		return fmt.Errorf("invalid chunk type: %w", err)
	}

	p, err := lib.ReadPNG(filePath)
	if err != nil {
		return err
	}

	parts := [][]byte{[]byte(message)}
	if opts.Split {
		if parts, err = lib.SplitPayload([]byte(message)); err != nil {
			return fmt.Errorf("failed to split message: %w", err)
		}
		if len(parts) == 0 {
			parts = [][]byte{nil}
		}
	}
	for _, part := range parts {
		c := png.NewChunk(ct, part)
		log.Debug().Str("type", ct.String()).Uint32("length", c.Length()).Uint32("crc", c.CRC()).Msg("appending chunk")
		p.AppendChunk(c)
	}

	output, err := prepareOutput(filePath, opts.Output, opts.Backup)
	if err != nil {
		return err
	}
	if err := lib.WritePNG(output, p); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	fmt.Printf("Encoded %d byte message into %d %s chunk(s) in \"%s\".\n", len(message), len(parts), ct, output)
	return nil
}

// prepareOutput resolves where a modified file goes, making a backup first
// when the input is about to be overwritten.
func prepareOutput(input, output string, backup bool) (string, error) {
	if output == "" {
		output = input
	}
	if backup && output == input {
		backupPath, err := lib.BackupFile(input)
		if err != nil {
			return "", fmt.Errorf("failed to back up %s: %w", input, err)
		}
		fmt.Printf("   - Backup written to \"%s\"\n", backupPath)
	}
	return output, nil
}
