package types

// `json:"..."` tags define the output of the --json flags.

// ChunkInfo describes one chunk of a PNG file.
type ChunkInfo struct {
	Index      int    `json:"index"`
	Type       string `json:"type"`
	Length     uint32 `json:"length"`
	CRC        uint32 `json:"crc"`
	Critical   bool   `json:"critical"`
	Public     bool   `json:"public"`
	Reserved   bool   `json:"reservedBitValid"`
	SafeToCopy bool   `json:"safeToCopy"`
}

// FileReport is the chunk listing of a single file.
type FileReport struct {
	Path   string      `json:"path"`
	Size   int64       `json:"size"`
	Chunks []ChunkInfo `json:"chunks"`
}

// ScanMatch is a file found by scan that carries the requested chunk type.
type ScanMatch struct {
	Path    string `json:"path"`
	Count   int    `json:"count"`
	Payload uint64 `json:"payloadBytes"`
}

// ScanFailure is a file scan could not parse.
type ScanFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// ScanReport is the result of scanning a directory.
type ScanReport struct {
	Root      string        `json:"root"`
	ChunkType string        `json:"chunkType"`
	Scanned   int           `json:"scanned"`
	Matches   []ScanMatch   `json:"matches"`
	Failures  []ScanFailure `json:"failures,omitempty"`
}
