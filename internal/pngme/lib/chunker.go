package lib

import (
	"bytes"
	"io"

	"github.com/aclements/go-rabin/rabin"
)

// Bounds for content-defined splitting of large payloads.
const (
	minPartSize = 1 * 1024  // 1KB
	avgPartSize = 4 * 1024  // 4KB, must be a power of two
	maxPartSize = 16 * 1024 // 16KB

	splitPoly       = rabin.Poly64
	splitWindowSize = 64
)

// splitTable is expensive to build, so it is shared by every split.
var splitTable = rabin.NewTable(splitPoly, splitWindowSize)

// SplitPayload cuts data into parts using Rabin fingerprinting, so that an
// edit to a long message only changes the parts around the edit. The parts
// are sub-slices of data and concatenate back to it. Data no longer than
// minPartSize comes back as a single part; empty data as no parts.
func SplitPayload(data []byte) ([][]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) <= minPartSize {
		return [][]byte{data}, nil
	}

	chunker := rabin.NewChunker(splitTable, bytes.NewReader(data), minPartSize, avgPartSize, maxPartSize)

	var parts [][]byte
	offset := 0
	for {
		length, err := chunker.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		parts = append(parts, data[offset:offset+length])
		offset += length
	}

	// The chunker may stop short of the end on small inputs; keep the tail.
	if offset < len(data) {
		parts = append(parts, data[offset:])
	}
	return parts, nil
}
