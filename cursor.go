package wavdecode

import (
	"encoding/binary"
	"math"
)

// Cursor is a forward-only little-endian reader over a fixed byte buffer.
//
// Reads do not check bounds. Callers query Remaining before reading past
// the data they know is present.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a cursor positioned at the start of b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{buf: b}
}

// Offset returns the current read position.
func (c *Cursor) Offset() int {
	return c.pos
}

// Remaining returns the number of unread bytes. It is never negative, even
// after a Skip past the end of the buffer.
func (c *Cursor) Remaining() int {
	if c.pos >= len(c.buf) {
		return 0
	}

	return len(c.buf) - c.pos
}

// Skip advances the position by n bytes.
func (c *Cursor) Skip(n int) {
	c.pos += n
}

func (c *Cursor) next(n int) []byte {
	b := c.buf[c.pos : c.pos+n]
	c.pos += n

	return b
}

// ReadUint8 reads one unsigned byte.
func (c *Cursor) ReadUint8() uint8 {
	return c.next(1)[0]
}

// ReadInt16 reads a little-endian signed 16-bit integer.
func (c *Cursor) ReadInt16() int16 {
	return int16(c.ReadUint16())
}

// ReadUint16 reads a little-endian unsigned 16-bit integer.
func (c *Cursor) ReadUint16() uint16 {
	return binary.LittleEndian.Uint16(c.next(2))
}

// ReadInt32 reads a little-endian signed 32-bit integer.
func (c *Cursor) ReadInt32() int32 {
	return int32(c.ReadUint32())
}

// ReadUint32 reads a little-endian unsigned 32-bit integer.
func (c *Cursor) ReadUint32() uint32 {
	return binary.LittleEndian.Uint32(c.next(4))
}

// ReadFixedString reads n bytes as single-byte characters.
func (c *Cursor) ReadFixedString(n int) string {
	b := c.next(n)

	r := make([]rune, n)
	for i, v := range b {
		r[i] = rune(v)
	}

	return string(r)
}

// ReadTag reads a 4 byte chunk identifier.
func (c *Cursor) ReadTag() [4]byte {
	var id [4]byte
	copy(id[:], c.next(4))

	return id
}

// ReadInt24 reads three little-endian bytes as a sign-extended 24-bit value.
func (c *Cursor) ReadInt24() int32 {
	b := c.next(3)

	v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	if v >= 0x800000 {
		v -= 0x1000000
	}

	return v
}

// ReadPCM8 reads an unsigned 8-bit sample with the asymmetric mapping:
// 0 maps to -1, 128 to 0 and 255 to 1.
func (c *Cursor) ReadPCM8() float32 {
	v := int(c.ReadUint8()) - pcm8Center
	if v < 0 {
		return float32(float64(v) / scalePCM8Neg)
	}

	return float32(float64(v) / scalePCM8Pos)
}

// ReadPCM8Symmetric reads an unsigned 8-bit sample centered at 127.5.
func (c *Cursor) ReadPCM8Symmetric() float32 {
	return float32((float64(c.ReadUint8()) - scalePCM8Symmetric) / scalePCM8Symmetric)
}

// ReadPCM16 reads a signed 16-bit sample with the asymmetric mapping.
func (c *Cursor) ReadPCM16() float32 {
	return normalizeAsymmetric(int64(c.ReadInt16()), scalePCM16, maxPCM16)
}

// ReadPCM16Symmetric reads a signed 16-bit sample divided by 32768.
func (c *Cursor) ReadPCM16Symmetric() float32 {
	return float32(float64(c.ReadInt16()) / scalePCM16)
}

// ReadPCM24 reads a signed 24-bit sample with the asymmetric mapping.
func (c *Cursor) ReadPCM24() float32 {
	return normalizeAsymmetric(int64(c.ReadInt24()), scalePCM24, maxPCM24)
}

// ReadPCM24Symmetric reads a signed 24-bit sample divided by 8388608.
func (c *Cursor) ReadPCM24Symmetric() float32 {
	return float32(float64(c.ReadInt24()) / scalePCM24)
}

// ReadPCM32 reads a signed 32-bit sample with the asymmetric mapping.
func (c *Cursor) ReadPCM32() float32 {
	return normalizeAsymmetric(int64(c.ReadInt32()), scalePCM32, maxPCM32)
}

// ReadPCM32Symmetric reads a signed 32-bit sample divided by 2147483648.
func (c *Cursor) ReadPCM32Symmetric() float32 {
	return float32(float64(c.ReadInt32()) / scalePCM32)
}

// ReadFloat32 reads an IEEE 754 single precision sample as is.
func (c *Cursor) ReadFloat32() float32 {
	return math.Float32frombits(c.ReadUint32())
}

// ReadFloat64 reads an IEEE 754 double precision sample. The value is
// narrowed to float32 but not rescaled.
func (c *Cursor) ReadFloat64() float32 {
	return float32(math.Float64frombits(binary.LittleEndian.Uint64(c.next(8))))
}
