package rnxconv

/*------------------------------------------------------------------------------
* frame.go : OSP frame reader, stripped and framed message sources
*
* reference : SiRF Binary Protocol Reference Manual ch.2 (message framing)
*-----------------------------------------------------------------------------*/

import (
	"encoding/binary"
	"errors"
	"io"
)

// Framing error values. SyncLost and BadChecksum leave the byte source
// positioned past the bad frame; they are never retried automatically.
var (
	ErrBadLength   = errors.New("rnxconv: frame length out of range")
	ErrBadChecksum = errors.New("rnxconv: frame checksum mismatch")
	ErrSyncLost    = errors.New("rnxconv: sync patience exhausted")
)

const (
	ospSync1 = 0xA0
	ospSync2 = 0xA2
	ospEnd1  = 0xB0
	ospEnd2  = 0xB3
)

// ByteSource is the minimal blocking byte source the frame reader
// consumes; file and serial implementations live in stream.go.
type ByteSource interface {
	ReadByte() (byte, error)
	Read(p []byte) (int, error)
}

// FrameReader pulls one framed OSP message at a time.
type FrameReader interface {
	// Next returns the payload of the next message, or io.EOF when the
	// source is exhausted.
	Next() ([]byte, error)
}

// StrippedReader reads an already-decapsulated OSP file: a bare
// concatenation of {length:u16, payload}.
type StrippedReader struct {
	src ByteSource
}

// NewStrippedReader wraps src for stripped-mode reading.
func NewStrippedReader(src ByteSource) *StrippedReader {
	return &StrippedReader{src: src}
}

func (r *StrippedReader) Next() ([]byte, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(r.src, lenBuf[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, ErrTruncated
		}
		return nil, err
	}
	length := int(binary.BigEndian.Uint16(lenBuf[:]))
	if length == 0 || length > MaxPayload {
		return nil, ErrBadLength
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r.src, payload); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, ErrTruncated
		}
		return nil, err
	}
	return payload, nil
}

// FramedReader reads framed OSP packets from a live or raw-packet byte
// source: A0 A2 {len:2} {payload} {checksum:2} B0 B3.
type FramedReader struct {
	src     ByteSource
	patience int // bytes/failed reads tolerated while searching for sync
}

// NewFramedReader wraps src for framed-mode reading. patience bounds how
// many bytes the synchronization automaton will discard before giving up
// with ErrSyncLost.
func NewFramedReader(src ByteSource, patience int) *FramedReader {
	return &FramedReader{src: src, patience: patience}
}

// syncState is the three-state automaton used to find A0 A2 in the stream.
// Properly separated states: a byte advances at most one state per call,
// with no fall-through between cases.
type syncState int

const (
	syncSeekFirst syncState = iota
	syncSeekSecond
	syncFound
)

func (r *FramedReader) synchronize() error {
	state := syncSeekFirst
	budget := r.patience
	for {
		b, err := r.src.ReadByte()
		if err != nil {
			return err
		}
		switch state {
		case syncSeekFirst:
			if b == ospSync1 {
				state = syncSeekSecond
			}
		case syncSeekSecond:
			if b == ospSync2 {
				state = syncFound
			} else if b != ospSync1 {
				state = syncSeekFirst
			}
		}
		if state == syncFound {
			return nil
		}
		budget--
		if budget <= 0 {
			return ErrSyncLost
		}
	}
}

func (r *FramedReader) Next() ([]byte, error) {
	if err := r.synchronize(); err != nil {
		return nil, err
	}
	var lenBuf [2]byte
	if _, err := io.ReadFull(r.src, lenBuf[:]); err != nil {
		return nil, ErrTruncated
	}
	length := int(binary.BigEndian.Uint16(lenBuf[:]))
	if length == 0 || length > MaxPayload {
		return nil, ErrBadLength
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r.src, payload); err != nil {
		return nil, ErrTruncated
	}
	var tail [4]byte // checksum:2, B0, B3
	if _, err := io.ReadFull(r.src, tail[:]); err != nil {
		return nil, ErrTruncated
	}
	wantChk := binary.BigEndian.Uint16(tail[:2])
	if tail[2] != ospEnd1 || tail[3] != ospEnd2 {
		return nil, ErrBadChecksum
	}
	var sum uint32
	for _, b := range payload {
		sum += uint32(b)
	}
	gotChk := uint16(sum & 0x7FFF)
	if gotChk != wantChk {
		return nil, ErrBadChecksum
	}
	return payload, nil
}

// EncodeFrame builds a complete OSP frame for payload, for tests and for
// any loopback tooling; it is the inverse of FramedReader.Next.
func EncodeFrame(payload []byte) []byte {
	out := make([]byte, 0, len(payload)+8)
	out = append(out, ospSync1, ospSync2)
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(payload)))
	out = append(out, lenBuf[:]...)
	out = append(out, payload...)
	var sum uint32
	for _, b := range payload {
		sum += uint32(b)
	}
	var chkBuf [2]byte
	binary.BigEndian.PutUint16(chkBuf[:], uint16(sum&0x7FFF))
	out = append(out, chkBuf[:]...)
	out = append(out, ospEnd1, ospEnd2)
	return out
}
