package commands

import (
	"fmt"

	"github.com/gingerrexayers/pngme-go/internal/pngme/lib"
	"github.com/gingerrexayers/pngme-go/internal/pngme/png"
)

// RemoveOptions holds the configuration for the remove command.
type RemoveOptions struct {
	Output string
	// All removes every chunk of the type instead of only the first.
	All    bool
	Backup bool
}

// Remove deletes chunks of type chunkType from the PNG at filePath. The
// order of the remaining chunks is unchanged.
func Remove(filePath, chunkType string, opts RemoveOptions) error {
	if _, err := png.ParseChunkType(chunkType); err != nil {
		return fmt.Errorf("invalid chunk type: %w", err)
	}

	p, err := lib.ReadPNG(filePath)
	if err != nil {
		return err
	}

	removed := 1
	if opts.All {
		if removed = p.RemoveChunks(chunkType); removed == 0 {
			return fmt.Errorf("cannot remove from %s: %w", filePath, &png.NotFoundError{Type: chunkType})
		}
	} else if _, err := p.RemoveChunk(chunkType); err != nil {
		return fmt.Errorf("cannot remove from %s: %w", filePath, err)
	}

	output, err := prepareOutput(filePath, opts.Output, opts.Backup)
	if err != nil {
		return err
	}
	if err := lib.WritePNG(output, p); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	fmt.Printf("Removed %d %s chunk(s) from \"%s\".\n", removed, chunkType, output)
	return nil
}
