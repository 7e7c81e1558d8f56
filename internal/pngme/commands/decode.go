package commands

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/gingerrexayers/pngme-go/internal/pngme/lib"
	"github.com/gingerrexayers/pngme-go/internal/pngme/png"
)

// DecodeOptions holds the configuration for the decode command.
type DecodeOptions struct {
	// Joined concatenates every chunk of the type, which reads back a
	// message written with encode --split.
	Joined bool
}

// Decode prints the message stored in the chunks of type chunkType.
func Decode(filePath, chunkType string, opts DecodeOptions) error {
	decode := DecodeMessage
	if opts.Joined {
		decode = DecodeJoined
	}
	message, err := decode(filePath, chunkType)
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}

// DecodeMessage returns the text of the first chunk of type chunkType.
func DecodeMessage(filePath, chunkType string) (string, error) {
	if _, err := png.ParseChunkType(chunkType); err != nil {
		return "", fmt.Errorf("invalid chunk type: %w", err)
	}

	p, err := lib.ReadPNG(filePath)
	if err != nil {
		return "", err
	}

	c, ok := p.ChunkByType(chunkType)
	if !ok {
		return "", fmt.Errorf("cannot decode %s: %w", filePath, &png.NotFoundError{Type: chunkType})
	}
	return c.DataAsString()
}

// DecodeJoined returns the payloads of every chunk of type chunkType joined
// in file order.
func DecodeJoined(filePath, chunkType string) (string, error) {
	if _, err := png.ParseChunkType(chunkType); err != nil {
		return "", fmt.Errorf("invalid chunk type: %w", err)
	}

	p, err := lib.ReadPNG(filePath)
	if err != nil {
		return "", err
	}

	chunks := p.ChunksByType(chunkType)
	if len(chunks) == 0 {
		return "", fmt.Errorf("cannot decode %s: %w", filePath, &png.NotFoundError{Type: chunkType})
	}

	var buf bytes.Buffer
	for _, c := range chunks {
		buf.Write(c.Data())
	}
	// Split points can fall inside a multi-byte rune, so only the joined
	// message is checked.
	if !utf8.Valid(buf.Bytes()) {
		return "", fmt.Errorf("%d %s chunks: %w", len(chunks), chunkType, png.ErrInvalidUTF8)
	}
	return buf.String(), nil
}
