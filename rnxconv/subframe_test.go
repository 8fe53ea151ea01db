package rnxconv

import "testing"

// encodeGpsWord is the test-side inverse of DecodeGpsWord: given the 24
// data bits it should recover and the D29/D30 of the word before it
// (as the receiver would prefix them), it computes D25-D30 and the
// on-air data-bit inversion, returning a raw word DecodeGpsWord accepts.
func encodeGpsWord(data24 uint32, prevD29, prevD30 bool) uint32 {
	data24 &= 0xFFFFFF
	wFull := data24 << 6
	if prevD29 {
		wFull |= 1 << 31
	}
	if prevD30 {
		wFull |= 1 << 30
	}
	var parity uint32
	for i := 0; i < 6; i++ {
		parity <<= 1
		for v := (wFull & gpsHamming[i]) >> 6; v > 0; v >>= 1 {
			parity ^= v & 1
		}
	}
	onAirData := data24
	if prevD30 {
		onAirData = (^data24) & 0xFFFFFF
	}
	word := (onAirData << 6) | parity
	if prevD29 {
		word |= 1 << 31
	}
	if prevD30 {
		word |= 1 << 30
	}
	return word
}

func TestDecodeGpsWordRoundTrip(t *testing.T) {
	for _, tc := range []struct{ prevD29, prevD30 bool }{
		{false, false}, {false, true}, {true, false}, {true, true},
	} {
		word := encodeGpsWord(0x123456, tc.prevD29, tc.prevD30)
		data, err := DecodeGpsWord(word)
		if err != nil {
			t.Fatalf("prevD29=%v prevD30=%v: unexpected parity error: %v", tc.prevD29, tc.prevD30, err)
		}
		got := uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2])
		if got != 0x123456 {
			t.Fatalf("prevD29=%v prevD30=%v: data = %06X, want 123456", tc.prevD29, tc.prevD30, got)
		}
	}
}

func TestDecodeGpsWordBadParity(t *testing.T) {
	word := encodeGpsWord(0x000001, false, false)
	word ^= 1 // flip a parity bit
	if _, err := DecodeGpsWord(word); err != ErrParity {
		t.Fatalf("expected ErrParity, got %v", err)
	}
}

func TestAssembleGpsSubframe(t *testing.T) {
	var words [10]uint32
	for i := range words {
		words[i] = encodeGpsWord(uint32(i+1), false, false)
	}
	buf, err := AssembleGpsSubframe(words)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf[2] != 1 || buf[5] != 2 {
		t.Fatalf("unexpected packed buffer: %x", buf)
	}
}

func TestGpsEphemerisBuilderCompletion(t *testing.T) {
	var sf1, sf2, sf3 [30]byte
	// subframe ID lives at bit offset 24+17+2=43, width 3.
	setSubframeID(&sf1, 1)
	setSubframeID(&sf2, 2)
	setSubframeID(&sf3, 3)

	b := NewGpsEphemerisBuilder()
	if m, _ := b.Add(5, 1, sf1); m != nil {
		t.Fatalf("expected incomplete after subframe 1")
	}
	if m, _ := b.Add(5, 2, sf2); m != nil {
		t.Fatalf("expected incomplete after subframe 2")
	}
	m, err := b.Add(5, 3, sf3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil {
		t.Fatalf("expected a completed mantissa set")
	}
	if m.SubframeID1 != 1 || m.SubframeID2 != 2 || m.SubframeID3 != 3 {
		t.Fatalf("subframe ids not preserved: %+v", m)
	}
}

func TestGpsEphemerisBuilderAgreeingIodcIode(t *testing.T) {
	var sf1, sf2, sf3 [30]byte
	setSubframeID(&sf1, 1)
	setSubframeID(&sf2, 2)
	setSubframeID(&sf3, 3)
	setBitsMSB(sf1[:], 73, 2, 0x01)  // IODC0 high bits
	setBitsMSB(sf1[:], 171, 8, 0xAB) // IODC1 low byte -> IODC = 0x01AB, low byte 0xAB
	setBitsMSB(sf2[:], 51, 8, 0xAB)  // IODE2 agrees with IODC's low byte
	setBitsMSB(sf3[:], 219, 8, 0xAB) // IODE3 agrees too

	b := NewGpsEphemerisBuilder()
	b.Add(5, 1, sf1)
	b.Add(5, 2, sf2)
	m, err := b.Add(5, 3, sf3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil {
		t.Fatalf("expected a completed mantissa set when IODC/IODE agree")
	}
}

func TestGpsEphemerisBuilderRejectsIodcIodeMismatch(t *testing.T) {
	var sf1, sf2, sf3 [30]byte
	setSubframeID(&sf1, 1)
	setSubframeID(&sf2, 2)
	setSubframeID(&sf3, 3)
	setBitsMSB(sf1[:], 73, 2, 0x01)  // IODC0 high bits
	setBitsMSB(sf1[:], 171, 8, 0xAB) // IODC1 low byte -> IODC low byte 0xAB
	setBitsMSB(sf2[:], 51, 8, 0xCD)  // IODE2 disagrees
	setBitsMSB(sf3[:], 219, 8, 0xAB) // IODE3 agrees, but IODE2 doesn't

	b := NewGpsEphemerisBuilder()
	b.Add(5, 1, sf1)
	b.Add(5, 2, sf2)
	m, err := b.Add(5, 3, sf3)
	if err != ErrIodcMismatch {
		t.Fatalf("expected ErrIodcMismatch, got %v", err)
	}
	if m != nil {
		t.Fatalf("expected no mantissa on a mismatched triplet, got %+v", m)
	}
}

// setSubframeID writes a 3-bit subframe ID into the bit position
// decodeGpsMantissa/PeekSubframeID read it from, leaving the rest zero.
func setSubframeID(buf *[30]byte, id int) {
	pos := 24 + 17 + 2
	for bit := 0; bit < 3; bit++ {
		byteIdx := (pos + bit) / 8
		bitIdx := (pos + bit) % 8
		v := (id >> (2 - bit)) & 1
		if v != 0 {
			buf[byteIdx] |= 1 << (7 - bitIdx)
		}
	}
}

func TestPeekSubframeID(t *testing.T) {
	var buf [30]byte
	setSubframeID(&buf, 2)
	if id := PeekSubframeID(buf); id != 2 {
		t.Fatalf("PeekSubframeID = %d, want 2", id)
	}
}

func TestPackGlonassString(t *testing.T) {
	var words [10]uint32
	for i := range words {
		words[i] = uint32(i) | 0xFFFFFF00 // high bits must be discarded
	}
	buf := PackGlonassString(words)
	for i, b := range buf {
		if b != byte(i) {
			t.Fatalf("buf[%d] = %d, want %d", i, b, i)
		}
	}
}

func TestStringNumber(t *testing.T) {
	var buf [10]byte
	// string number 3 at bit offset 1, width 4: binary 0011
	buf[0] = 0b00110000
	if n := stringNumber(buf); n != 3 {
		t.Fatalf("stringNumber = %d, want 3", n)
	}
}

func TestGlonassEphemerisBuilderCompletion(t *testing.T) {
	var bufs [5][10]byte
	for i := range bufs {
		setGlostrNumber(&bufs[i], i+1)
	}
	cfg := DefaultConfig()
	b := NewGlonassEphemerisBuilder(cfg, nil)
	for i := 0; i < 4; i++ {
		if m, _ := b.Add(12, bufs[i], true); m != nil {
			t.Fatalf("expected incomplete after string %d", i+1)
		}
	}
	m, err := b.Add(12, bufs[4], true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil || m.Slot != 12 {
		t.Fatalf("expected completed mantissa with slot=12, got %+v", m)
	}
}

func TestGlonassEphemerisBuilderRejectsBadHamming(t *testing.T) {
	var buf [10]byte
	setGlostrNumber(&buf, 1)
	cfg := DefaultConfig()
	b := NewGlonassEphemerisBuilder(cfg, nil)
	if m, _ := b.Add(12, buf, false); m != nil {
		t.Fatalf("expected string to be dropped, got %+v", m)
	}
}

// setGlostrNumber writes the 4-bit string number at bit offset 1.
func setGlostrNumber(buf *[10]byte, n int) {
	for bit := 0; bit < 4; bit++ {
		pos := 1 + bit
		byteIdx := pos / 8
		bitIdx := pos % 8
		v := (n >> (3 - bit)) & 1
		if v != 0 {
			buf[byteIdx] |= 1 << (7 - bitIdx)
		}
	}
}

// setBitsMSB writes an MSB-first field into buf, used by the aux-table
// tests to stand up strings 4, 6-15 without routing through stringNumber.
func setBitsMSB(buf []byte, pos, length, value int) {
	for bit := 0; bit < length; bit++ {
		p := pos + bit
		byteIdx := p / 8
		bitIdx := p % 8
		v := (value >> (length - 1 - bit)) & 1
		if v != 0 {
			buf[byteIdx] |= 1 << (7 - bitIdx)
		}
	}
}

func TestGlonassAuxTablesSlot(t *testing.T) {
	var buf [10]byte
	setGlostrNumber(&buf, 4)
	setBitsMSB(buf[:], 10, 5, 12)

	tab := NewGlonassAuxTables()
	tab.Observe(3, 75, buf)
	slot, ok := tab.Slot(75)
	if !ok || slot != 12 {
		t.Fatalf("Slot(75) = %d, %v, want 12, true", slot, ok)
	}

	// a second string 4 for the same satellite id with a different slot
	// must overwrite the stored value.
	var later [10]byte
	setGlostrNumber(&later, 4)
	setBitsMSB(later[:], 10, 5, 7)
	tab.Observe(3, 75, later)
	if slot, _ := tab.Slot(75); slot != 7 {
		t.Fatalf("Slot(75) = %d after second string 4, want overwritten value 7", slot)
	}

	// a string 4 for a different satellite id must not disturb sv=75.
	var other [10]byte
	setGlostrNumber(&other, 4)
	setBitsMSB(other[:], 10, 5, 20)
	tab.Observe(3, 76, other)
	if slot, _ := tab.Slot(75); slot != 7 {
		t.Fatalf("Slot(75) changed to %d after sv=76's string 4, want unchanged 7", slot)
	}
	if slot, ok := tab.Slot(76); !ok || slot != 20 {
		t.Fatalf("Slot(76) = %d, %v, want 20, true", slot, ok)
	}
}

func TestGlonassAuxTablesFreqPair(t *testing.T) {
	var even, odd [10]byte
	setGlostrNumber(&even, 6)
	setBitsMSB(even[:], 72, 5, 9) // nA = 9
	setGlostrNumber(&odd, 7)
	setBitsMSB(odd[:], 9, 5, 20) // HnA = 20, below the 25 sign threshold

	tab := NewGlonassAuxTables()
	tab.Observe(1, 0, even)
	if _, ok := tab.Freq(9); ok {
		t.Fatalf("Freq(9) resolved before the odd string arrived")
	}
	tab.Observe(1, 0, odd)
	freq, ok := tab.Freq(9)
	if !ok || freq != 20 {
		t.Fatalf("Freq(9) = %d, %v, want 20, true", freq, ok)
	}
}

func TestGlonassAuxTablesFreqSignCorrection(t *testing.T) {
	var even, odd [10]byte
	setGlostrNumber(&even, 14)
	setBitsMSB(even[:], 72, 5, 3) // nA = 3
	setGlostrNumber(&odd, 15)
	setBitsMSB(odd[:], 9, 5, 30) // HnA = 30, at/above threshold -> 30-32 = -2

	tab := NewGlonassAuxTables()
	tab.Observe(2, 0, even)
	tab.Observe(2, 0, odd)
	freq, ok := tab.Freq(3)
	if !ok || freq != -2 {
		t.Fatalf("Freq(3) = %d, %v, want -2, true", freq, ok)
	}
}

func TestGlonassAuxTablesFreqRequiresMatchingString(t *testing.T) {
	var even, wrongOdd [10]byte
	setGlostrNumber(&even, 8)
	setBitsMSB(even[:], 72, 5, 5)
	// string 9 would complete the pair; string 11 (odd, but from a
	// different pair) must not be mistaken for it.
	setGlostrNumber(&wrongOdd, 11)
	setBitsMSB(wrongOdd[:], 9, 5, 4)

	tab := NewGlonassAuxTables()
	tab.Observe(4, 0, even)
	tab.Observe(4, 0, wrongOdd)
	if _, ok := tab.Freq(5); ok {
		t.Fatalf("Freq(5) resolved from a mismatched string pair")
	}
}

func TestGlonassAuxTablesKnownSlots(t *testing.T) {
	tab := NewGlonassAuxTables()
	var e6, o7, e10, o11 [10]byte
	setGlostrNumber(&e6, 6)
	setBitsMSB(e6[:], 72, 5, 2)
	setGlostrNumber(&o7, 7)
	setBitsMSB(o7[:], 9, 5, 1)
	setGlostrNumber(&e10, 10)
	setBitsMSB(e10[:], 72, 5, 1)
	setGlostrNumber(&o11, 11)
	setBitsMSB(o11[:], 9, 5, 1)

	tab.Observe(1, 0, e6)
	tab.Observe(1, 0, o7)
	tab.Observe(1, 0, e10)
	tab.Observe(1, 0, o11)

	got := tab.KnownSlots()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("KnownSlots() = %v, want [1 2]", got)
	}
}
