package wavdecode

import "fmt"

// ChunkInfo describes a top-level chunk of a RIFF/WAVE file.
type ChunkInfo struct {
	ID [4]byte
	// Size is the body size declared in the chunk header.
	Size uint32
	// Offset is the position of the chunk body in the file.
	Offset int
}

// String implements the Stringer interface.
func (c ChunkInfo) String() string {
	return fmt.Sprintf("%s: %d bytes @ %d", c.ID[:], c.Size, c.Offset)
}

// Truncated reports whether the declared body runs past fileSize bytes.
func (c ChunkInfo) Truncated(fileSize int) bool {
	return c.Offset+int(c.Size) > fileSize
}

// ListChunks walks the chunk headers of b without decoding their bodies.
// Like the decoder, it trusts declared sizes and applies no pad byte. The
// walk ends when fewer than 8 bytes remain.
func ListChunks(b []byte) ([]ChunkInfo, error) {
	c := NewCursor(b)

	err := readRIFFHeader(c)
	if err != nil {
		return nil, err
	}

	var chunks []ChunkInfo

	for c.Remaining() >= chunkHeaderSize {
		id := c.ReadTag()
		size := c.ReadUint32()

		chunks = append(chunks, ChunkInfo{ID: id, Size: size, Offset: c.Offset()})

		c.Skip(int(size))
	}

	return chunks, nil
}
