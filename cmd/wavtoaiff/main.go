// This tool converts a wav file into an aiff file stored next to the source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/cwbudde/wavdecode"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

var (
	errMissingPath         = errors.New("you must set the -path flag")
	errUnsupportedBitDepth = errors.New("unsupported output bit depth")
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)

	path := flagSet.String("path", "", "the path to the wav file to convert to aiff")
	output := flagSet.String("out", "", "output path, defaults to the source path with an .aif extension")
	bitDepth := flagSet.Int("bits", 0, "output bit depth (8, 16, 24 or 32), defaults to the source depth")
	symmetric := flagSet.Bool("symmetric", false, "use symmetric integer normalization when decoding")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *path == "" {
		return errMissingPath
	}

	raw, err := os.ReadFile(*path)
	if err != nil {
		return err
	}

	data, err := wavdecode.DecodeWithOptions(raw, wavdecode.Options{Symmetric: *symmetric})
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", *path, err)
	}

	depth := outputBitDepth(*bitDepth, data.SourceBitDepth)
	if !validBitDepth(depth) {
		return fmt.Errorf("%w: %d", errUnsupportedBitDepth, depth)
	}

	outPath := *output
	if outPath == "" {
		outPath = (*path)[:len(*path)-len(filepath.Ext(*path))] + ".aif"
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", outPath, err)
	}
	defer outFile.Close()

	encoder := aiff.NewEncoder(outFile, data.SampleRate, depth, data.NumChannels())

	err = encoder.Write(float32ToIntBuffer(data.Interleaved(), data.AudioFormat(), depth))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	err = encoder.Close()
	if err != nil {
		return fmt.Errorf("failed to close %s: %w", outPath, err)
	}

	log.Printf("%s converted to %s (%d frames, %d bits)", *path, outPath, data.NumFrames(), depth)

	return nil
}

// outputBitDepth picks the requested depth, or the integer depth closest
// to the source when none was requested.
func outputBitDepth(requested, source int) int {
	if requested != 0 {
		return requested
	}

	if source > 32 {
		return 32
	}

	return source
}

func validBitDepth(bitDepth int) bool {
	switch bitDepth {
	case 8, 16, 24, 32:
		return true
	default:
		return false
	}
}

func float32ToIntBuffer(data []float32, format *audio.Format, bitDepth int) *audio.IntBuffer {
	intBuf := &audio.IntBuffer{
		Format:         format,
		SourceBitDepth: bitDepth,
		Data:           make([]int, len(data)),
	}
	for i, v := range data {
		intBuf.Data[i] = float32ToPCMInt(v, bitDepth)
	}

	return intBuf
}

// float32ToPCMInt scales to signed integers. AIFF stores 8-bit samples
// signed, unlike WAV.
func float32ToPCMInt(value float32, bitDepth int) int {
	value = clampFloat32(value, -1, 1)

	switch bitDepth {
	case 8:
		return clampScaledPCM(value, 128.0, 127)
	case 16:
		return clampScaledPCM(value, 32768.0, 32767)
	case 24:
		return clampScaledPCM(value, 8388608.0, 8388607)
	case 32:
		return clampScaledPCM(value, 2147483648.0, 2147483647)
	default:
		return 0
	}
}

func clampScaledPCM(value float32, scale float64, max int64) int {
	sample := min(int64(math.Round(float64(value)*scale)), max)

	min := int64(-scale)
	if sample < min {
		sample = min
	}

	return int(sample)
}

func clampFloat32(value, min, max float32) float32 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
