package png

import (
	"bytes"
	"fmt"
	"strings"
)

// Signature is the fixed 8-byte prefix of every PNG file.
var Signature = [8]byte{137, 80, 78, 71, 13, 10, 26, 10}

// PNG is a signature followed by an ordered list of chunks. Order is kept
// through every operation. A PNG performs no locking; callers that share one
// across goroutines must synchronize access themselves.
type PNG struct {
	chunks []Chunk
}

// New returns a PNG holding the given chunks in order.
func New(chunks ...Chunk) *PNG {
	return &PNG{chunks: append([]Chunk(nil), chunks...)}
}

// Parse decodes a complete PNG buffer. Chunks are read back to back until
// the buffer is exhausted. The first chunk that fails to parse aborts the
// whole parse, since the offsets of every chunk after it are unreliable.
func Parse(b []byte) (*PNG, error) {
	if len(b) < len(Signature) || !bytes.Equal(b[:len(Signature)], Signature[:]) {
		got := b
		if len(got) > len(Signature) {
			got = got[:len(Signature)]
		}
		return nil, &SignatureError{Got: bytes.Clone(got)}
	}

	p := &PNG{}
	for offset := len(Signature); offset < len(b); {
		chunk, n, err := ParseChunk(b[offset:])
		if err != nil {
			return nil, &ChunkError{Index: len(p.chunks), Offset: offset, Err: err}
		}
		p.chunks = append(p.chunks, chunk)
		offset += n
	}
	return p, nil
}

// Chunks returns the chunks in file order. The slice is a copy.
func (p *PNG) Chunks() []Chunk {
	return append([]Chunk(nil), p.chunks...)
}

// Len is the number of chunks.
func (p *PNG) Len() int {
	return len(p.chunks)
}

// AppendChunk adds a chunk after the last one. Duplicate types are allowed.
func (p *PNG) AppendChunk(c Chunk) {
	p.chunks = append(p.chunks, c)
}

// ChunkByType returns the first chunk whose type renders as chunkType.
func (p *PNG) ChunkByType(chunkType string) (Chunk, bool) {
	if i := p.indexOf(chunkType); i >= 0 {
		return p.chunks[i], true
	}
	return Chunk{}, false
}

// ChunksByType returns every chunk whose type renders as chunkType, in order.
func (p *PNG) ChunksByType(chunkType string) []Chunk {
	var matches []Chunk
	for _, c := range p.chunks {
		if c.Type().String() == chunkType {
			matches = append(matches, c)
		}
	}
	return matches
}

// RemoveChunk deletes the first chunk whose type renders as chunkType and
// returns it. If there is none the PNG is left untouched and the error
// matches ErrChunkNotFound.
func (p *PNG) RemoveChunk(chunkType string) (Chunk, error) {
	i := p.indexOf(chunkType)
	if i < 0 {
		return Chunk{}, &NotFoundError{Type: chunkType}
	}
	removed := p.chunks[i]
	p.chunks = append(p.chunks[:i:i], p.chunks[i+1:]...)
	return removed, nil
}

// RemoveChunks deletes every chunk whose type renders as chunkType and
// reports how many were removed.
func (p *PNG) RemoveChunks(chunkType string) int {
	kept := make([]Chunk, 0, len(p.chunks))
	for _, c := range p.chunks {
		if c.Type().String() != chunkType {
			kept = append(kept, c)
		}
	}
	removed := len(p.chunks) - len(kept)
	p.chunks = kept
	return removed
}

// Bytes serializes the signature followed by every chunk in order.
func (p *PNG) Bytes() []byte {
	size := len(Signature)
	for _, c := range p.chunks {
		size += c.Size()
	}
	b := make([]byte, 0, size)
	b = append(b, Signature[:]...)
	for _, c := range p.chunks {
		b = c.appendTo(b)
	}
	return b
}

func (p *PNG) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PNG{%d chunks}\n", len(p.chunks))
	for i, c := range p.chunks {
		fmt.Fprintf(&sb, "  [%d] %s\n", i, c)
	}
	return sb.String()
}

func (p *PNG) indexOf(chunkType string) int {
	for i, c := range p.chunks {
		if c.Type().String() == chunkType {
			return i
		}
	}
	return -1
}
