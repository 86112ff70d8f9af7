package wavdecode

import "fmt"

const fmtChunkMinSize = 16

// Format is the parsed content of a fmt chunk.
type Format struct {
	// FormatID is the WAVE format tag: 1 for integer PCM, 3 for IEEE float.
	FormatID      uint16
	FloatingPoint bool
	NumChannels   uint16
	SampleRate    uint32
	// ByteRate is informational only.
	ByteRate uint32
	// BlockSize is the number of bytes in one multi-channel frame.
	BlockSize uint16
	BitDepth  uint16
}

// BytesPerSample returns the storage width of one sample of one channel.
func (f Format) BytesPerSample() int {
	return bytesPerSample(int(f.BitDepth))
}

// frameSize is the number of bytes used by one sample of every channel.
func (f Format) frameSize() int {
	return f.BytesPerSample() * int(f.NumChannels)
}

// String implements the Stringer interface.
func (f Format) String() string {
	kind := "PCM"
	if f.FloatingPoint {
		kind = "IEEE float"
	}

	return fmt.Sprintf("%s %d channels @ %d / %d bits", kind, f.NumChannels, f.SampleRate, f.BitDepth)
}

// decodeFormat reads a fmt chunk body of chunkSize bytes at the cursor.
// An unknown format tag fails before the rest of the chunk is consumed.
func decodeFormat(c *Cursor, chunkSize int) (*Format, error) {
	if c.Remaining() < 2 {
		return nil, fmt.Errorf("%w: fmt chunk at offset %d", ErrTruncated, c.Offset())
	}

	formatID := c.ReadUint16()
	if formatID != wavFormatPCM && formatID != wavFormatIEEEFloat {
		return nil, fmt.Errorf("%w: format tag 0x%04X", ErrUnsupportedFormat, formatID)
	}

	if c.Remaining() < fmtChunkMinSize-2 {
		return nil, fmt.Errorf("%w: fmt chunk at offset %d", ErrTruncated, c.Offset())
	}

	f := &Format{
		FormatID:      formatID,
		FloatingPoint: formatID == wavFormatIEEEFloat,
		NumChannels:   c.ReadUint16(),
		SampleRate:    c.ReadUint32(),
		ByteRate:      c.ReadUint32(),
		BlockSize:     c.ReadUint16(),
		BitDepth:      c.ReadUint16(),
	}

	if f.NumChannels == 0 {
		return nil, fmt.Errorf("%w: zero channels", ErrUnsupportedFormat)
	}

	if chunkSize > fmtChunkMinSize {
		// cbSize and extensible fields are not interpreted
		c.Skip(chunkSize - fmtChunkMinSize)
	}

	return f, nil
}
