// Package png models the chunk structure of PNG files: chunk type codes,
// checksummed chunks, and the signature-prefixed container that holds them.
// It does not decode image data.
package png

// ChunkType is the 4-byte tag that identifies a chunk. The case of each byte
// encodes a property of the chunk: bit 5 clear means uppercase.
type ChunkType [4]byte

const caseBit = 0x20

// ChunkTypeFromBytes wraps raw bytes without validating them. Use it for
// bytes that have already been checked elsewhere, such as a chunk read from
// a file whose checksum has been verified.
func ChunkTypeFromBytes(b [4]byte) ChunkType {
	return ChunkType(b)
}

// ParseChunkType validates a user-supplied type string. It must be exactly
// 4 bytes of ASCII letters; case is preserved.
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, &TypeError{Value: []byte(s), Err: ErrInvalidTypeLength}
	}
	var ct ChunkType
	copy(ct[:], s)
	if !ct.IsAlphabetic() {
		return ChunkType{}, &TypeError{Value: []byte(s), Err: ErrInvalidTypeCharacters}
	}
	return ct, nil
}

// Bytes returns the raw tag.
func (ct ChunkType) Bytes() [4]byte {
	return ct
}

// IsAlphabetic reports whether every byte is an ASCII letter.
func (ct ChunkType) IsAlphabetic() bool {
	for _, b := range ct {
		if !isASCIILetter(b) {
			return false
		}
	}
	return true
}

// IsCritical reports whether decoders must understand the chunk.
func (ct ChunkType) IsCritical() bool {
	return isUpper(ct[0])
}

// IsPublic reports whether the type is registered by the PNG standard.
func (ct ChunkType) IsPublic() bool {
	return isUpper(ct[1])
}

// IsReservedBitValid reports whether the reserved bit is in its required state.
func (ct ChunkType) IsReservedBitValid() bool {
	return isUpper(ct[2])
}

// IsValid is the structural check. It reads the same bit as IsReservedBitValid.
func (ct ChunkType) IsValid() bool {
	return ct.IsReservedBitValid()
}

// IsSafeToCopy reports whether editors may copy the chunk into a modified image.
func (ct ChunkType) IsSafeToCopy() bool {
	return !isUpper(ct[3])
}

// String renders the tag as text. Only meaningful for alphabetic tags.
func (ct ChunkType) String() string {
	return string(ct[:])
}

func isUpper(b byte) bool {
	return b&caseBit == 0
}

func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
