package lib

import (
	"errors"

	"github.com/gingerrexayers/pngme-go/internal/pngme/png"
)

// Describe returns a one-line hint for a codec error kind, or "" if err is
// not one of them.
func Describe(err error) string {
	switch {
	case errors.Is(err, png.ErrInvalidSignature):
		return "the file does not start with the PNG signature; it is not a PNG image"
	case errors.Is(err, png.ErrTruncated):
		return "the file ends in the middle of a chunk; it may be incomplete"
	case errors.Is(err, png.ErrCRCMismatch):
		return "a chunk's checksum does not match its contents; the file is corrupt"
	case errors.Is(err, png.ErrInvalidTypeLength):
		return "chunk types are exactly four letters, for example ruSt"
	case errors.Is(err, png.ErrInvalidTypeCharacters):
		return "chunk types may only contain the letters A-Z and a-z"
	case errors.Is(err, png.ErrInvalidUTF8):
		return "the chunk holds binary data, not a text message"
	case errors.Is(err, png.ErrChunkNotFound):
		return "no chunk of that type exists in the file; run 'pngme print' to list them"
	}
	return ""
}
