package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/wavdecode"
)

func writeTestWav(t *testing.T, samples []int16) string {
	t.Helper()

	var data []byte
	for _, s := range samples {
		data = binary.LittleEndian.AppendUint16(data, uint16(s))
	}

	var b []byte
	b = append(b, "RIFF"...)
	b = binary.LittleEndian.AppendUint32(b, uint32(4+8+16+8+len(data)))
	b = append(b, "WAVEfmt "...)
	b = binary.LittleEndian.AppendUint32(b, 16)
	b = binary.LittleEndian.AppendUint16(b, 1)
	b = binary.LittleEndian.AppendUint16(b, 1)
	b = binary.LittleEndian.AppendUint32(b, 8000)
	b = binary.LittleEndian.AppendUint32(b, 16000)
	b = binary.LittleEndian.AppendUint16(b, 2)
	b = binary.LittleEndian.AppendUint16(b, 16)
	b = append(b, "data"...)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(data)))
	b = append(b, data...)

	path := filepath.Join(t.TempDir(), "in.wav")

	err := os.WriteFile(path, b, 0o600)
	if err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	return path
}

func TestRunPrintsInfo(t *testing.T) {
	path := writeTestWav(t, []int16{0, math.MaxInt16, 0, math.MinInt16})

	var out bytes.Buffer

	err := run([]string{"-chunks", path}, &out)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"fmt : 16 bytes @ 20",
		"data: 8 bytes @ 44",
		"Format: PCM 1 channels @ 8000 / 16 bits",
		"Frames: 4",
		"Duration: 500µs",
		"peak 1.0000",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunMissingPath(t *testing.T) {
	err := run(nil, &bytes.Buffer{})
	if !errors.Is(err, errMissingPath) {
		t.Fatalf("run err=%v, want errMissingPath", err)
	}
}

func TestRunInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")

	err := os.WriteFile(path, []byte("not a wav file at all"), 0o600)
	if err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	err = run([]string{path}, &bytes.Buffer{})
	if !errors.Is(err, wavdecode.ErrInvalidContainer) {
		t.Fatalf("run err=%v, want ErrInvalidContainer", err)
	}
}

func TestLevels(t *testing.T) {
	peak, rms := levels([]float32{0.5, -1, 0.5, 0})
	if peak != 1 {
		t.Fatalf("peak=%v, want 1", peak)
	}

	if math.Abs(rms-math.Sqrt(1.5/4)) > 1e-9 {
		t.Fatalf("rms=%v, want %v", rms, math.Sqrt(1.5/4))
	}

	peak, rms = levels(nil)
	if peak != 0 || rms != 0 {
		t.Fatalf("levels(nil)=%v,%v, want 0,0", peak, rms)
	}
}
