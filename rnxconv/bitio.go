package rnxconv

/*------------------------------------------------------------------------------
* bitio.go : byte cursor and bitfield primitives over an OSP/GNSS payload
*
* reference : SiRF Binary Protocol Reference Manual, ICD-GPS-200, GLONASS ICD
*-----------------------------------------------------------------------------*/

import (
	"encoding/binary"
	"errors"
	"math"
)

// MaxPayload is the largest payload a single OSP message may carry.
const MaxPayload = 2048

// ErrTruncated is returned by any Cursor read that would run past the end
// of the underlying buffer.
var ErrTruncated = errors.New("rnxconv: truncated read")

// Cursor is a fallible, cursor-addressed reader over a byte payload. Every
// read either advances the cursor and returns a value, or leaves the
// cursor unchanged and returns ErrTruncated; it never panics.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor wraps buf for sequential reading starting at offset 0.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current cursor offset in bytes.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the number of unread bytes remaining.
func (c *Cursor) Len() int { return len(c.buf) - c.pos }

func (c *Cursor) need(n int) error {
	if c.pos+n > len(c.buf) {
		return ErrTruncated
	}
	return nil
}

// Skip advances the cursor by n bytes without inspecting them.
func (c *Cursor) Skip(n int) error {
	if err := c.need(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}

// U1 reads one unsigned byte, big-endian (trivially).
func (c *Cursor) U1() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.buf[c.pos]
	c.pos++
	return v, nil
}

// I1 reads one signed byte.
func (c *Cursor) I1() (int8, error) {
	v, err := c.U1()
	return int8(v), err
}

// U2 reads two unsigned bytes, big-endian.
func (c *Cursor) U2() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v, nil
}

// I2 reads two signed bytes, big-endian.
func (c *Cursor) I2() (int16, error) {
	v, err := c.U2()
	return int16(v), err
}

// U3 reads three unsigned bytes, big-endian, widened into a uint32.
func (c *Cursor) U3() (uint32, error) {
	if err := c.need(3); err != nil {
		return 0, err
	}
	v := uint32(c.buf[c.pos])<<16 | uint32(c.buf[c.pos+1])<<8 | uint32(c.buf[c.pos+2])
	c.pos += 3
	return v, nil
}

// I3 reads three bytes, big-endian, two's-complement widened via the
// explicit sign mask at bit 24.
func (c *Cursor) I3() (int32, error) {
	v, err := c.U3()
	if err != nil {
		return 0, err
	}
	return WidenTwosComplement(int64(v), 24), nil
}

// U4 reads four unsigned bytes, big-endian.
func (c *Cursor) U4() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v, nil
}

// I4 reads four signed bytes, big-endian.
func (c *Cursor) I4() (int32, error) {
	v, err := c.U4()
	return int32(v), err
}

// U8 reads eight unsigned bytes, big-endian.
func (c *Cursor) U8() (uint64, error) {
	if err := c.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(c.buf[c.pos:])
	c.pos += 8
	return v, nil
}

// I8 reads eight signed bytes, big-endian.
func (c *Cursor) I8() (int64, error) {
	v, err := c.U8()
	return int64(v), err
}

// F4 reads a 32-bit IEEE-754 float whose bytes arrive in the receiver's
// reversed order: payload bytes 3,2,1,0 feed float bytes 0..3.
func (c *Cursor) F4() (float32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	p := c.buf[c.pos : c.pos+4]
	var rev [4]byte
	rev[0], rev[1], rev[2], rev[3] = p[3], p[2], p[1], p[0]
	c.pos += 4
	return math.Float32frombits(binary.LittleEndian.Uint32(rev[:])), nil
}

// F8 reads a 64-bit IEEE-754 float with the receiver's word-swapped byte
// order: payload bytes 3,2,1,0,7,6,5,4 feed float bytes 0..7.
func (c *Cursor) F8() (float64, error) {
	if err := c.need(8); err != nil {
		return 0, err
	}
	p := c.buf[c.pos : c.pos+8]
	var rev [8]byte
	rev[0], rev[1], rev[2], rev[3] = p[3], p[2], p[1], p[0]
	rev[4], rev[5], rev[6], rev[7] = p[7], p[6], p[5], p[4]
	c.pos += 8
	return math.Float64frombits(binary.LittleEndian.Uint64(rev[:])), nil
}

// BitsMSB extracts length (<=32) bits from buf starting at bit position
// pos, where bit 0 is the most-significant bit of buf[0]. This is the
// convention GPS/GLONASS ICDs and SiRF's own ephemeris-poll messages use
// for packed subframe words, as opposed to ExtractBits' LSB-addressed
// 32-bit-word convention below.
func BitsMSB(buf []byte, pos, length int) uint32 {
	var bits uint32
	for i := pos; i < pos+length; i++ {
		bits = (bits << 1) | uint32((buf[i/8]>>(7-i%8))&1)
	}
	return bits
}

// SignedBitsMSB is BitsMSB widened as two's complement over length bits.
func SignedBitsMSB(buf []byte, pos, length int) int32 {
	return WidenTwosComplement(int64(BitsMSB(buf, pos, length)), length)
}

// ExtractBits treats stream as an array of 32-bit words where bit 0 of
// word 0 is global bit 0, and assembles len (<=32) bits starting at loBit;
// the LSB of the result is the stream bit at loBit.
func ExtractBits(stream []uint32, loBit, length int) uint32 {
	if length <= 0 || length > 32 {
		panic("rnxconv: ExtractBits length out of range")
	}
	var result uint32
	for i := 0; i < length; i++ {
		bitIdx := loBit + i
		word := stream[bitIdx/32]
		bit := (word >> (bitIdx % 32)) & 1
		result |= bit << i
	}
	return result
}

// WidenTwosComplement interprets value's low width bits as a two's
// complement signed integer: when the top bit is set, 2^width is
// subtracted.
func WidenTwosComplement(value int64, width int) int32 {
	mask := int64(1) << (width - 1)
	v := value & ((int64(1) << width) - 1)
	if v&mask != 0 {
		v -= int64(1) << width
	}
	return int32(v)
}

// WidenSignedMagnitude interprets value's low width bits as sign-magnitude:
// when the sign bit (the top bit) is set, all but the sign bit are
// inverted before being taken as the (negated) magnitude.
func WidenSignedMagnitude(value uint32, width int) int32 {
	signBit := uint32(1) << (width - 1)
	magMask := signBit - 1
	if value&signBit == 0 {
		return int32(value & magMask)
	}
	inverted := (^value) & magMask
	return -int32(inverted)
}
