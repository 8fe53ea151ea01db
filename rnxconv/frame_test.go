package rnxconv

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

func TestEncodeFrameRoundTrip(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0xFF}
	frame := EncodeFrame(payload)
	r := NewFramedReader(bytes.NewReader(frame), 64)
	got, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("got %x, want %x", got, payload)
	}
}

func TestFramedReaderSkipsGarbageBeforeSync(t *testing.T) {
	payload := []byte{0xAA, 0xBB}
	frame := EncodeFrame(payload)
	// a lone sync1 byte buried in the garbage must not false-trigger the
	// two-byte A0 A2 pattern.
	garbage := []byte{0x00, 0xFF, ospSync1, 0x11}
	data := append(append([]byte{}, garbage...), frame...)
	r := NewFramedReader(bytes.NewReader(data), 64)
	got, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("got %x, want %x", got, payload)
	}
}

func TestFramedReaderSyncLostExhaustsPatience(t *testing.T) {
	data := bytes.Repeat([]byte{0x00}, 10)
	r := NewFramedReader(bytes.NewReader(data), 5)
	if _, err := r.Next(); err != ErrSyncLost {
		t.Fatalf("expected ErrSyncLost, got %v", err)
	}
}

func TestFramedReaderDetectsChecksumMismatch(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03}
	frame := EncodeFrame(payload)
	frame[len(frame)-4] ^= 0xFF // corrupt the checksum's high byte
	r := NewFramedReader(bytes.NewReader(frame), 64)
	if _, err := r.Next(); err != ErrBadChecksum {
		t.Fatalf("expected ErrBadChecksum, got %v", err)
	}
}

func TestFramedReaderDetectsBadFooterMarker(t *testing.T) {
	payload := []byte{0x10, 0x20}
	frame := EncodeFrame(payload)
	frame[len(frame)-2] = 0x00 // corrupt the B0 end marker
	r := NewFramedReader(bytes.NewReader(frame), 64)
	if _, err := r.Next(); err != ErrBadChecksum {
		t.Fatalf("expected ErrBadChecksum for a bad footer marker, got %v", err)
	}
}

func TestFramedReaderRejectsOversizedLength(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{ospSync1, ospSync2})
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(MaxPayload+1))
	buf.Write(lenBuf[:])
	r := NewFramedReader(bytes.NewReader(buf.Bytes()), 64)
	if _, err := r.Next(); err != ErrBadLength {
		t.Fatalf("expected ErrBadLength, got %v", err)
	}
}

func TestFramedReaderTruncatedPayload(t *testing.T) {
	frame := EncodeFrame([]byte{0x01, 0x02, 0x03})
	truncated := frame[:len(frame)-5] // cut off mid payload/checksum
	r := NewFramedReader(bytes.NewReader(truncated), 64)
	if _, err := r.Next(); err != ErrTruncated {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestStrippedReaderReadsLengthPrefixedPayload(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04}
	var buf bytes.Buffer
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(payload)))
	buf.Write(lenBuf[:])
	buf.Write(payload)

	r := NewStrippedReader(bytes.NewReader(buf.Bytes()))
	got, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("got %x, want %x", got, payload)
	}
}

func TestStrippedReaderTruncated(t *testing.T) {
	// declares a 4-byte payload but only supplies 2.
	r := NewStrippedReader(bytes.NewReader([]byte{0x00, 0x04, 0x01, 0x02}))
	if _, err := r.Next(); err != ErrTruncated {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestStrippedReaderRejectsZeroLength(t *testing.T) {
	r := NewStrippedReader(bytes.NewReader([]byte{0x00, 0x00}))
	if _, err := r.Next(); err != ErrBadLength {
		t.Fatalf("expected ErrBadLength, got %v", err)
	}
}

func TestStrippedReaderEndOfFile(t *testing.T) {
	r := NewStrippedReader(bytes.NewReader(nil))
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
