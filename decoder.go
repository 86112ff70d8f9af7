package wavdecode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

const chunkHeaderSize = 8

// Options controls how integer PCM samples are normalized.
type Options struct {
	// Symmetric divides both halves of the integer range by the same
	// magnitude instead of mapping each extreme to exactly -1 and 1.
	// It has no effect on float formats.
	Symmetric bool
}

// Decode decodes a complete WAV file held in b using the default options.
func Decode(b []byte) (*AudioData, error) {
	return DecodeWithOptions(b, Options{})
}

// DecodeReader reads r until EOF and decodes the result.
func DecodeReader(r io.Reader, opts Options) (*AudioData, error) {
	var buf bytes.Buffer

	_, err := buf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read wav data: %w", err)
	}

	return DecodeWithOptions(buf.Bytes(), opts)
}

// DecodeWithOptions decodes a complete WAV file held in b.
// Chunks after the first data chunk are not inspected.
func DecodeWithOptions(b []byte, opts Options) (*AudioData, error) {
	c := NewCursor(b)

	err := readRIFFHeader(c)
	if err != nil {
		return nil, err
	}

	var format *Format

	for {
		if c.Remaining() < chunkHeaderSize {
			return nil, ErrDataNotFound
		}

		id := c.ReadTag()
		size := int(c.ReadUint32())

		switch id {
		case riff.FmtID:
			format, err = decodeFormat(c, size)
			if err != nil {
				return nil, fmt.Errorf("failed to decode fmt chunk: %w", err)
			}
		case riff.DataFormatID:
			if format == nil {
				return nil, ErrMissingFormat
			}

			return decodeData(c, min(size, c.Remaining()), format, opts)
		default:
			c.Skip(size)
		}
	}
}

// readRIFFHeader checks the 12 byte RIFF/WAVE preamble. The declared RIFF
// size is not compared with the buffer length.
func readRIFFHeader(c *Cursor) error {
	if c.Remaining() < 12 {
		return fmt.Errorf("%w: %d byte buffer", ErrInvalidContainer, c.Remaining())
	}

	if id := c.ReadTag(); id != riff.RiffID {
		return fmt.Errorf("%w: %q is not RIFF", ErrInvalidContainer, id[:])
	}

	c.Skip(4)

	if format := c.ReadTag(); format != riff.WavFormatID {
		return fmt.Errorf("%w: %q is not WAVE", ErrInvalidContainer, format[:])
	}

	return nil
}

// decodeData de-interleaves size bytes of frames into one slice per channel.
// A trailing partial frame is dropped.
func decodeData(c *Cursor, size int, format *Format, opts Options) (*AudioData, error) {
	mode, err := selectSampleMode(format.BitDepth, format.FloatingPoint, opts.Symmetric)
	if err != nil {
		return nil, err
	}

	numChannels := int(format.NumChannels)
	length := size / format.frameSize()

	channelData := make([][]float32, numChannels)
	for ch := range channelData {
		channelData[ch] = make([]float32, length)
	}

	for i := 0; i < length; i++ {
		for ch := 0; ch < numChannels; ch++ {
			channelData[ch][i] = c.readSample(mode)
		}
	}

	return &AudioData{
		SampleRate:     int(format.SampleRate),
		ChannelData:    channelData,
		Format:         *format,
		SourceBitDepth: int(format.BitDepth),
	}, nil
}
