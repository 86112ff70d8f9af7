package wavdecode

import (
	"errors"
	"time"
)

var (
	// ErrInvalidContainer is returned when the buffer is not a RIFF/WAVE file.
	ErrInvalidContainer = errors.New("invalid RIFF/WAVE container")
	// ErrUnsupportedFormat is returned when the fmt chunk describes an
	// encoding other than integer PCM or IEEE float.
	ErrUnsupportedFormat = errors.New("unsupported wav format")
	// ErrUnsupportedBitDepth is returned when no sample decoder exists for
	// the bit depth and sample type of the fmt chunk.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	// ErrMissingFormat is returned when a data chunk shows up before any fmt chunk.
	ErrMissingFormat = errors.New("data chunk found before fmt chunk")
	// ErrDataNotFound indicates a container without a data chunk.
	ErrDataNotFound = errors.New("data chunk not found")
	// ErrTruncated is returned when a chunk header or the fmt body runs past
	// the end of the buffer.
	ErrTruncated = errors.New("truncated wav buffer")
)

func framesDuration(frames, sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}

	return time.Duration(int64(frames) * int64(time.Second) / int64(sampleRate))
}
