package png

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"unicode/utf8"
)

// Sizes of the fixed fields around a chunk payload.
const (
	lengthSize = 4
	typeSize   = 4
	crcSize    = 4

	// chunkOverhead is the number of bytes a chunk occupies besides its data.
	chunkOverhead = lengthSize + typeSize + crcSize
)

// Chunk is one length-prefixed, typed and checksummed record. A Chunk is
// immutable: accessors return copies and there are no setters.
type Chunk struct {
	length    uint32
	chunkType ChunkType
	data      []byte
	crc       uint32
}

// NewChunk builds a chunk from a type and payload, computing its length and CRC.
func NewChunk(chunkType ChunkType, data []byte) Chunk {
	data = bytes.Clone(data)
	if data == nil {
		data = []byte{}
	}
	return Chunk{
		length:    uint32(len(data)),
		chunkType: chunkType,
		data:      data,
		crc:       checksum(chunkType, data),
	}
}

// MakeChunk validates a type string and builds a chunk carrying payload.
func MakeChunk(chunkType string, payload []byte) (Chunk, error) {
	ct, err := ParseChunkType(chunkType)
	if err != nil {
		return Chunk{}, err
	}
	return NewChunk(ct, payload), nil
}

// ParseChunk decodes the chunk at the front of b. It returns the chunk and
// the number of bytes it occupied. On error the returned chunk is zero.
func ParseChunk(b []byte) (Chunk, int, error) {
	pos := 0

	if len(b)-pos < lengthSize {
		return Chunk{}, 0, &TruncatedError{Field: FieldLength, Offset: pos, Need: lengthSize, Have: len(b) - pos}
	}
	length := binary.BigEndian.Uint32(b[pos:])
	pos += lengthSize

	if len(b)-pos < typeSize {
		return Chunk{}, 0, &TruncatedError{Field: FieldType, Offset: pos, Need: typeSize, Have: len(b) - pos}
	}
	var ct ChunkType
	copy(ct[:], b[pos:pos+typeSize])
	pos += typeSize

	// Compare in uint64 so a huge length cannot overflow int on 32-bit platforms.
	if uint64(len(b)-pos) < uint64(length) {
		return Chunk{}, 0, &TruncatedError{Field: FieldData, Offset: pos, Need: uint64(length), Have: len(b) - pos}
	}
	data := b[pos : pos+int(length)]
	pos += int(length)

	if len(b)-pos < crcSize {
		return Chunk{}, 0, &TruncatedError{Field: FieldCRC, Offset: pos, Need: crcSize, Have: len(b) - pos}
	}
	stored := binary.BigEndian.Uint32(b[pos:])
	pos += crcSize

	// The checksum is checked before the type characters so that corruption
	// of the type bytes is reported as a CRC mismatch.
	if computed := checksum(ct, data); computed != stored {
		return Chunk{}, 0, &CRCMismatchError{Type: ct, Stored: stored, Computed: computed}
	}
	if !ct.IsAlphabetic() {
		return Chunk{}, 0, &TypeError{Value: ct[:], Err: ErrInvalidTypeCharacters}
	}

	return Chunk{
		length:    length,
		chunkType: ChunkTypeFromBytes(ct),
		data:      bytes.Clone(data),
		crc:       stored,
	}, pos, nil
}

// Length is the number of payload bytes.
func (c Chunk) Length() uint32 {
	return c.length
}

// Type returns the chunk's type code.
func (c Chunk) Type() ChunkType {
	return c.chunkType
}

// Data returns a copy of the payload.
func (c Chunk) Data() []byte {
	return bytes.Clone(c.data)
}

// CRC returns the CRC-32/IEEE of the type bytes followed by the payload.
func (c Chunk) CRC() uint32 {
	return c.crc
}

// DataAsString returns the payload as text, failing if it is not UTF-8.
func (c Chunk) DataAsString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("%s chunk: %w", c.chunkType, ErrInvalidUTF8)
	}
	return string(c.data), nil
}

// Bytes serializes the chunk in wire order: length, type, data, crc.
func (c Chunk) Bytes() []byte {
	return c.appendTo(make([]byte, 0, chunkOverhead+len(c.data)))
}

// Size is the number of bytes Bytes produces.
func (c Chunk) Size() int {
	return chunkOverhead + len(c.data)
}

func (c Chunk) appendTo(b []byte) []byte {
	b = binary.BigEndian.AppendUint32(b, c.length)
	b = append(b, c.chunkType[:]...)
	b = append(b, c.data...)
	return binary.BigEndian.AppendUint32(b, c.crc)
}

// Equal reports whether two chunks match in every field.
func (c Chunk) Equal(o Chunk) bool {
	return c.length == o.length &&
		c.chunkType == o.chunkType &&
		c.crc == o.crc &&
		bytes.Equal(c.data, o.data)
}

func (c Chunk) String() string {
	return fmt.Sprintf("Chunk{type: %s, length: %d, crc: %#08x}", c.chunkType, c.length, c.crc)
}

func checksum(ct ChunkType, data []byte) uint32 {
	h := crc32.NewIEEE()
	h.Write(ct[:])
	h.Write(data)
	return h.Sum32()
}
