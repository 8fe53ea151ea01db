package rnxconv

import "testing"

func TestCursorIntegers(t *testing.T) {
	c := NewCursor([]byte{0x02, 0x00, 0x00, 0x01})
	mid, err := c.U1()
	if err != nil || mid != 2 {
		t.Fatalf("U1 = %v, %v", mid, err)
	}
	rest := NewCursor([]byte{0x00, 0x00, 0x01})
	v, err := rest.U3()
	if err != nil || v != 1 {
		t.Fatalf("U3 = %v, %v", v, err)
	}
}

func TestCursorTruncated(t *testing.T) {
	c := NewCursor([]byte{0x01})
	if _, err := c.U2(); err != ErrTruncated {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if c.Pos() != 0 {
		t.Fatalf("cursor must not advance on failed read, pos=%d", c.Pos())
	}
}

func TestCursorFloatReversal(t *testing.T) {
	// float32(1.0) = 0x3F800000; reversed payload bytes are 00 00 80 3F
	c := NewCursor([]byte{0x00, 0x00, 0x80, 0x3F})
	f, err := c.F4()
	if err != nil || f != 1.0 {
		t.Fatalf("F4 = %v, %v", f, err)
	}
}

func TestCursorDoubleWordSwap(t *testing.T) {
	// float64(1.0) = 0x3FF0000000000000; word-swapped payload is
	// 00 00 00 3F | 00 00 00 F0 in the 3,2,1,0,7,6,5,4 arrangement.
	c := NewCursor([]byte{0x00, 0x00, 0x00, 0x3F, 0x00, 0x00, 0x00, 0xF0})
	d, err := c.F8()
	if err != nil || d != 1.0 {
		t.Fatalf("F8 = %v, %v", d, err)
	}
}

func TestExtractBits(t *testing.T) {
	s := []uint32{0x0000_0001, 0xFFFF_FFFF}
	if v := ExtractBits(s, 0, 1); v != 1 {
		t.Fatalf("bit0 = %d", v)
	}
	if v := ExtractBits(s, 1, 1); v != 0 {
		t.Fatalf("bit1 = %d", v)
	}
	if v := ExtractBits(s, 32, 4); v != 0xF {
		t.Fatalf("word1 nibble = %x", v)
	}
}

func TestWidenTwosComplement(t *testing.T) {
	if v := WidenTwosComplement(0x7F, 8); v != 0x7F {
		t.Fatalf("positive unchanged: %d", v)
	}
	if v := WidenTwosComplement(0xFF, 8); v != -1 {
		t.Fatalf("-1 widening: %d", v)
	}
	// widen(widen(x, n), n) == widen(x, n)
	for _, x := range []int64{0, 1, 0x7F, 0x80, 0xFF} {
		once := WidenTwosComplement(x, 8)
		twice := WidenTwosComplement(int64(once), 8)
		if once != twice {
			t.Fatalf("idempotence failed for %d: %d != %d", x, once, twice)
		}
	}
}

func TestWidenSignedMagnitude(t *testing.T) {
	if v := WidenSignedMagnitude(0x05, 8); v != 5 {
		t.Fatalf("positive: %d", v)
	}
	// sign bit set (0x80), magnitude bits 0x7F inverted -> 0x00 -> -0
	if v := WidenSignedMagnitude(0xFF, 8); v != 0 {
		t.Fatalf("all-ones widened: %d", v)
	}
	if v := WidenSignedMagnitude(0x80, 8); v != -0x7F {
		t.Fatalf("sign-only widened: %d", v)
	}
}

func TestI3TwosComplement(t *testing.T) {
	c := NewCursor([]byte{0xFF, 0xFF, 0xFF})
	v, err := c.I3()
	if err != nil || v != -1 {
		t.Fatalf("I3 = %v, %v", v, err)
	}
}
