package wavdecode

import (
	"encoding/binary"
	"math"
	"testing"
)

type testChunk struct {
	id   string
	size uint32
	data []byte
}

func chunk(id string, data []byte) testChunk {
	return testChunk{id: id, size: uint32(len(data)), data: data}
}

func chunkWithSize(id string, size uint32, data []byte) testChunk {
	return testChunk{id: id, size: size, data: data}
}

// buildWav assembles a RIFF/WAVE file. Chunks are written back to back with
// no pad byte, matching how the decoder walks them.
func buildWav(chunks ...testChunk) []byte {
	body := []byte("WAVE")
	for _, ch := range chunks {
		body = append(body, ch.id...)
		body = binary.LittleEndian.AppendUint32(body, ch.size)
		body = append(body, ch.data...)
	}

	out := []byte("RIFF")
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))

	return append(out, body...)
}

func fmtBody(formatID, numChannels uint16, sampleRate uint32, bitDepth uint16) []byte {
	blockSize := numChannels * uint16(bytesPerSample(int(bitDepth)))

	b := binary.LittleEndian.AppendUint16(nil, formatID)
	b = binary.LittleEndian.AppendUint16(b, numChannels)
	b = binary.LittleEndian.AppendUint32(b, sampleRate)
	b = binary.LittleEndian.AppendUint32(b, sampleRate*uint32(blockSize))
	b = binary.LittleEndian.AppendUint16(b, blockSize)

	return binary.LittleEndian.AppendUint16(b, bitDepth)
}

func pcmFmt(numChannels uint16, sampleRate uint32, bitDepth uint16) testChunk {
	return chunk("fmt ", fmtBody(wavFormatPCM, numChannels, sampleRate, bitDepth))
}

func floatFmt(numChannels uint16, sampleRate uint32, bitDepth uint16) testChunk {
	return chunk("fmt ", fmtBody(wavFormatIEEEFloat, numChannels, sampleRate, bitDepth))
}

func int16Bytes(samples ...int16) []byte {
	var b []byte
	for _, s := range samples {
		b = binary.LittleEndian.AppendUint16(b, uint16(s))
	}

	return b
}

func int32Bytes(samples ...int32) []byte {
	var b []byte
	for _, s := range samples {
		b = binary.LittleEndian.AppendUint32(b, uint32(s))
	}

	return b
}

func float32Bytes(samples ...float32) []byte {
	var b []byte
	for _, s := range samples {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(s))
	}

	return b
}

func float64Bytes(samples ...float64) []byte {
	var b []byte
	for _, s := range samples {
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(s))
	}

	return b
}

func float32ApproxEqual(value, expected, epsilon float32) bool {
	diff := value - expected
	if diff < 0 {
		diff = -diff
	}

	return diff <= epsilon
}

func assertFloat32SlicesClose(t *testing.T, got, expected []float32, epsilon float32) {
	t.Helper()

	if len(got) != len(expected) {
		t.Fatalf("expected %d samples but got %d", len(expected), len(got))
	}

	for i := range got {
		if !float32ApproxEqual(got[i], expected[i], epsilon) {
			t.Fatalf("expected %.6f at position %d, but got %.6f", expected[i], i, got[i])
		}
	}
}
