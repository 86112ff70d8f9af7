// This tool prints the format and per-channel levels of a wav file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/cwbudde/wavdecode"
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println("You must pass the path of the file to inspect")
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavinfo", flag.ContinueOnError)
	flagSet.SetOutput(out)

	symmetric := flagSet.Bool("symmetric", false, "use symmetric integer normalization")
	listChunks := flagSet.Bool("chunks", false, "list the top-level chunks")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if flagSet.NArg() < 1 {
		return errMissingPath
	}

	path := flagSet.Arg(0)

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if *listChunks {
		chunks, err := wavdecode.ListChunks(raw)
		if err != nil {
			return fmt.Errorf("failed to list chunks of %s: %w", path, err)
		}

		fmt.Fprintln(out, "Chunks:")

		for _, c := range chunks {
			suffix := ""
			if c.Truncated(len(raw)) {
				suffix = " (truncated)"
			}

			fmt.Fprintf(out, "\t%s%s\n", c, suffix)
		}
	}

	data, err := wavdecode.DecodeWithOptions(raw, wavdecode.Options{Symmetric: *symmetric})
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	fmt.Fprintf(out, "Format: %s\n", data.Format)
	fmt.Fprintf(out, "Frames: %d\n", data.NumFrames())
	fmt.Fprintf(out, "Duration: %s\n", data.Duration())

	for ch, samples := range data.ChannelData {
		peak, rms := levels(samples)
		fmt.Fprintf(out, "\tchannel [%d]:\tpeak %.4f\trms %.4f\n", ch, peak, rms)
	}

	return nil
}

func levels(samples []float32) (peak, rms float64) {
	if len(samples) == 0 {
		return 0, 0
	}

	var sum float64

	for _, s := range samples {
		v := float64(s)
		peak = math.Max(peak, math.Abs(v))
		sum += v * v
	}

	return peak, math.Sqrt(sum / float64(len(samples)))
}
