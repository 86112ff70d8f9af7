// Package wavdecode decodes RIFF/WAVE containers held in memory into
// per-channel float32 sample buffers.
//
// Supported sample encodings are PCM integer (8/16/24/32-bit) and IEEE
// float (32/64-bit). Integer PCM is normalized into [-1, 1] using either the
// asymmetric full-scale mapping (default) or a symmetric mapping selected
// with Options.Symmetric. Float samples pass through unscaled.
//
// The decoder walks chunks until the first data chunk, skipping anything it
// does not interpret (fact, LIST, JUNK, cue, ...). Chunk sizes are trusted as
// declared and odd-length chunks are not padded.
//
// Decoded data converts into go-audio buffers for use with the rest of the
// go-audio ecosystem:
//
//   - AudioData.Float32Buffer() *audio.Float32Buffer
//   - AudioData.FloatBuffer() *audio.FloatBuffer
package wavdecode
