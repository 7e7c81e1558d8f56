package png

import (
	"errors"
	"fmt"
)

// Error kinds returned by the codec. Every error produced by this package
// matches exactly one of these with errors.Is.
var (
	// ErrInvalidSignature means the buffer does not start with the PNG magic bytes.
	ErrInvalidSignature = errors.New("invalid PNG signature")
	// ErrTruncated means a chunk field was cut short by the end of the buffer.
	ErrTruncated = errors.New("truncated chunk")
	// ErrInvalidTypeLength means a chunk type string is not exactly 4 bytes.
	ErrInvalidTypeLength = errors.New("chunk type must be exactly 4 bytes")
	// ErrInvalidTypeCharacters means a chunk type holds non-alphabetic bytes.
	ErrInvalidTypeCharacters = errors.New("chunk type must contain only ASCII letters")
	// ErrCRCMismatch means the stored checksum does not match the chunk contents.
	ErrCRCMismatch = errors.New("chunk CRC mismatch")
	// ErrInvalidUTF8 means a chunk payload is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("chunk data is not valid UTF-8")
	// ErrChunkNotFound means no chunk of the requested type exists.
	ErrChunkNotFound = errors.New("chunk not found")
)

// Field names a fixed-position part of a serialized chunk.
type Field string

const (
	FieldLength Field = "length"
	FieldType   Field = "type"
	FieldData   Field = "data"
	FieldCRC    Field = "crc"
)

// SignatureError reports the bytes found where the signature was expected.
type SignatureError struct {
	Got []byte
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("%v: got % x, want % x", ErrInvalidSignature, e.Got, Signature[:])
}

func (e *SignatureError) Unwrap() error { return ErrInvalidSignature }

// TruncatedError reports a field that needed more bytes than were left.
// Offset is relative to the start of the chunk.
type TruncatedError struct {
	Field  Field
	Offset int
	Need   uint64
	Have   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("%v: %s field at offset %d needs %d bytes, %d remain",
		ErrTruncated, e.Field, e.Offset, e.Need, e.Have)
}

func (e *TruncatedError) Unwrap() error { return ErrTruncated }

// CRCMismatchError carries both checksums of a corrupt chunk.
type CRCMismatchError struct {
	Type     ChunkType
	Stored   uint32
	Computed uint32
}

func (e *CRCMismatchError) Error() string {
	return fmt.Sprintf("%v: %q stores %#08x, computed %#08x",
		ErrCRCMismatch, e.Type.String(), e.Stored, e.Computed)
}

func (e *CRCMismatchError) Unwrap() error { return ErrCRCMismatch }

// TypeError reports a chunk type that failed validation.
type TypeError struct {
	Value []byte
	Err   error
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Value)
}

func (e *TypeError) Unwrap() error { return e.Err }

// ChunkError locates a chunk failure inside a PNG buffer.
type ChunkError struct {
	Index  int
	Offset int
	Err    error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("chunk %d at byte %d: %v", e.Index, e.Offset, e.Err)
}

func (e *ChunkError) Unwrap() error { return e.Err }

// NotFoundError names the chunk type that was looked up.
type NotFoundError struct {
	Type string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: no chunk of type %q", ErrChunkNotFound, e.Type)
}

func (e *NotFoundError) Unwrap() error { return ErrChunkNotFound }
