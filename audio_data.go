package wavdecode

import (
	"time"

	"github.com/go-audio/audio"
)

// AudioData is the result of decoding a WAV file.
type AudioData struct {
	SampleRate int
	// ChannelData holds one slice per channel, all of the same length.
	ChannelData [][]float32
	// Format is the fmt chunk the samples were decoded with.
	Format Format
	// SourceBitDepth is the bit depth of the encoded samples.
	SourceBitDepth int
}

// NumChannels returns the number of decoded channels.
func (a *AudioData) NumChannels() int {
	if a == nil {
		return 0
	}

	return len(a.ChannelData)
}

// NumFrames returns the number of samples per channel.
func (a *AudioData) NumFrames() int {
	if a == nil || len(a.ChannelData) == 0 {
		return 0
	}

	return len(a.ChannelData[0])
}

// Duration returns the playback length of the decoded samples.
func (a *AudioData) Duration() time.Duration {
	if a == nil {
		return 0
	}

	return framesDuration(a.NumFrames(), a.SampleRate)
}

// Interleaved returns the samples frame by frame, channel by channel.
func (a *AudioData) Interleaved() []float32 {
	numChannels := a.NumChannels()
	frames := a.NumFrames()

	out := make([]float32, frames*numChannels)
	for i := 0; i < frames; i++ {
		for ch := 0; ch < numChannels; ch++ {
			out[i*numChannels+ch] = a.ChannelData[ch][i]
		}
	}

	return out
}

// AudioFormat returns the go-audio description of the decoded data.
func (a *AudioData) AudioFormat() *audio.Format {
	return &audio.Format{
		NumChannels: a.NumChannels(),
		SampleRate:  a.SampleRate,
	}
}

// Float32Buffer returns the samples as an interleaved go-audio buffer.
func (a *AudioData) Float32Buffer() *audio.Float32Buffer {
	return &audio.Float32Buffer{
		Format:         a.AudioFormat(),
		Data:           a.Interleaved(),
		SourceBitDepth: a.SourceBitDepth,
	}
}

// FloatBuffer returns the samples as an interleaved float64 go-audio buffer.
func (a *AudioData) FloatBuffer() *audio.FloatBuffer {
	return a.Float32Buffer().AsFloatBuffer()
}
