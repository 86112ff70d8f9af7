package wavdecode

import "fmt"

const (
	wavFormatPCM       = 1
	wavFormatIEEEFloat = 3

	pcm8Center         = 128
	scalePCM8Neg       = 128.0
	scalePCM8Pos       = 127.0
	scalePCM8Symmetric = 127.5
	scalePCM16         = 32768.0
	scalePCM24         = 8388608.0
	scalePCM32         = 2147483648.0
	maxPCM16           = 32767.0
	maxPCM24           = 8388607.0
	maxPCM32           = 2147483647.0
)

// normalizeAsymmetric divides negative values by the magnitude of the most
// negative integer and the rest by the most positive one, so both ends of
// the range land on exactly -1 and 1.
func normalizeAsymmetric(v int64, neg, pos float64) float32 {
	if v < 0 {
		return float32(float64(v) / neg)
	}

	return float32(float64(v) / pos)
}

// sampleMode identifies one sample decoding routine.
type sampleMode int

const (
	modeUnknown sampleMode = iota
	modePCM8
	modePCM8Symmetric
	modePCM16
	modePCM16Symmetric
	modePCM24
	modePCM24Symmetric
	modePCM32
	modePCM32Symmetric
	modeFloat32
	modeFloat64
)

var sampleModeNames = map[sampleMode]string{
	modeUnknown:        "unknown",
	modePCM8:           "pcm8",
	modePCM8Symmetric:  "pcm8 symmetric",
	modePCM16:          "pcm16",
	modePCM16Symmetric: "pcm16 symmetric",
	modePCM24:          "pcm24",
	modePCM24Symmetric: "pcm24 symmetric",
	modePCM32:          "pcm32",
	modePCM32Symmetric: "pcm32 symmetric",
	modeFloat32:        "float32",
	modeFloat64:        "float64",
}

func (m sampleMode) String() string {
	if name, ok := sampleModeNames[m]; ok {
		return name
	}

	return fmt.Sprintf("sampleMode(%d)", int(m))
}

// selectSampleMode maps (bit depth, float, symmetric) to a decoding routine.
// The symmetric flag is ignored for float formats.
func selectSampleMode(bitDepth uint16, floatingPoint, symmetric bool) (sampleMode, error) {
	if floatingPoint {
		switch bitDepth {
		case 32:
			return modeFloat32, nil
		case 64:
			return modeFloat64, nil
		default:
			return modeUnknown, fmt.Errorf("%w: %d-bit float", ErrUnsupportedBitDepth, bitDepth)
		}
	}

	modes, ok := integerSampleModes[bitDepth]
	if !ok {
		return modeUnknown, fmt.Errorf("%w: %d-bit integer", ErrUnsupportedBitDepth, bitDepth)
	}

	if symmetric {
		return modes[1], nil
	}

	return modes[0], nil
}

// integerSampleModes holds the {asymmetric, symmetric} routines per bit depth.
var integerSampleModes = map[uint16][2]sampleMode{
	8:  {modePCM8, modePCM8Symmetric},
	16: {modePCM16, modePCM16Symmetric},
	24: {modePCM24, modePCM24Symmetric},
	32: {modePCM32, modePCM32Symmetric},
}

// readSample decodes one sample at the cursor position.
func (c *Cursor) readSample(mode sampleMode) float32 {
	switch mode {
	case modePCM8:
		return c.ReadPCM8()
	case modePCM8Symmetric:
		return c.ReadPCM8Symmetric()
	case modePCM16:
		return c.ReadPCM16()
	case modePCM16Symmetric:
		return c.ReadPCM16Symmetric()
	case modePCM24:
		return c.ReadPCM24()
	case modePCM24Symmetric:
		return c.ReadPCM24Symmetric()
	case modePCM32:
		return c.ReadPCM32()
	case modePCM32Symmetric:
		return c.ReadPCM32Symmetric()
	case modeFloat32:
		return c.ReadFloat32()
	case modeFloat64:
		return c.ReadFloat64()
	default:
		return 0
	}
}

func bytesPerSample(bitDepth int) int {
	return (bitDepth-1)/8 + 1
}
