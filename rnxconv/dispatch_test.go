package rnxconv

import (
	"encoding/binary"
	"math"
	"testing"
)

// fakeSink records every call a Dispatcher makes, for assertions.
type fakeSink struct {
	positions   []struct{ t Time; x, y, z float64; nsv int }
	receiverIDs []struct{ sw, rcv, cust string }
	epochs      []Epoch
	gpsNav      []struct {
		sat int
		e   *GpsEphemeris
	}
	gloNav []struct {
		sat int
		e   *GlonassEphemeris
	}
}

func (f *fakeSink) Position(t Time, x, y, z float64, nsv int) {
	f.positions = append(f.positions, struct{ t Time; x, y, z float64; nsv int }{t, x, y, z, nsv})
}
func (f *fakeSink) ReceiverID(sw, rcv, cust string) {
	f.receiverIDs = append(f.receiverIDs, struct{ sw, rcv, cust string }{sw, rcv, cust})
}
func (f *fakeSink) Obs(e Epoch) { f.epochs = append(f.epochs, e) }
func (f *fakeSink) GpsNav(sat int, e *GpsEphemeris) {
	f.gpsNav = append(f.gpsNav, struct {
		sat int
		e   *GpsEphemeris
	}{sat, e})
}
func (f *fakeSink) GlonassNav(sat int, e *GlonassEphemeris) {
	f.gloNav = append(f.gloNav, struct {
		sat int
		e   *GlonassEphemeris
	}{sat, e})
}

func newTestDispatcher() (*Dispatcher, *fakeSink) {
	sink := &fakeSink{}
	cfg := DefaultConfig()
	d := NewDispatcher(cfg, nil, sink, "test-rx")
	return d, sink
}

func beU32(v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return b[:]
}
func beU16(v uint16) []byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return b[:]
}

// receiverF8 builds the word-swapped 8-byte float encoding Cursor.F8
// decodes: payload bytes 3,2,1,0,7,6,5,4 feed float bytes 0..7.
func receiverF8(v float64) []byte {
	var le [8]byte
	binary.LittleEndian.PutUint64(le[:], math.Float64bits(v))
	out := make([]byte, 8)
	out[3], out[2], out[1], out[0] = le[0], le[1], le[2], le[3]
	out[7], out[6], out[5], out[4] = le[4], le[5], le[6], le[7]
	return out
}

// receiverF4 is receiverF8's 4-byte counterpart.
func receiverF4(v float32) []byte {
	var le [4]byte
	binary.LittleEndian.PutUint32(le[:], math.Float32bits(v))
	out := make([]byte, 4)
	out[3], out[2], out[1], out[0] = le[0], le[1], le[2], le[3]
	return out
}

func TestDispatchPosition(t *testing.T) {
	d, sink := newTestDispatcher()
	var body []byte
	body = append(body, beU32(uint32(int32(1000)))...)
	body = append(body, beU32(uint32(int32(2000)))...)
	body = append(body, beU32(uint32(int32(3000)))...)
	body = append(body, make([]byte, 9)...) // vX,vY,vZ,Mode1,HDOP,Mode2
	body = append(body, beU16(2200)...)
	body = append(body, beU32(123456)...)
	body = append(body, 6) // nsv, above min-nsv default of 4

	if err := d.handlePosition(body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sink.positions) != 1 {
		t.Fatalf("expected 1 position, got %d", len(sink.positions))
	}
	p := sink.positions[0]
	if p.x != 1000 || p.y != 2000 || p.z != 3000 || p.nsv != 6 {
		t.Fatalf("unexpected position: %+v", p)
	}
	if p.t.Week != 3224 || p.t.Tow != 1234.56 {
		t.Fatalf("unexpected position time: %+v", p.t)
	}
}

func TestDispatchPositionRejectsFewSats(t *testing.T) {
	d, sink := newTestDispatcher()
	var body []byte
	body = append(body, beU32(0)...)
	body = append(body, beU32(0)...)
	body = append(body, beU32(0)...)
	body = append(body, make([]byte, 9)...)
	body = append(body, beU16(2200)...)
	body = append(body, beU32(0)...)
	body = append(body, 2) // below min-nsv

	if err := d.handlePosition(body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sink.positions) != 0 {
		t.Fatalf("expected position to be rejected, got %d", len(sink.positions))
	}
}

func TestDispatchReceiverID(t *testing.T) {
	d, sink := newTestDispatcher()
	body := []byte{3, 2, 'A', 'B', 'C', 'X', 'Y'}
	if err := d.handleReceiverID(body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sink.receiverIDs) != 1 {
		t.Fatalf("expected 1 receiver id, got %d", len(sink.receiverIDs))
	}
	id := sink.receiverIDs[0]
	if id.sw != "ABC" || id.cust != "XY" || id.rcv != "test-rx" {
		t.Fatalf("unexpected receiver id: %+v", id)
	}
}

func TestDispatchEpochTimeFlushesPending(t *testing.T) {
	d, _ := newTestDispatcher()

	var obsBody []byte
	obsBody = append(obsBody, 0)                // channel
	obsBody = append(obsBody, beU32(0)...)       // time tag
	obsBody = append(obsBody, byte(FirstGpsSat)) // sv
	obsBody = append(obsBody, receiverF8(1000.0)...)
	obsBody = append(obsBody, receiverF8(20000000.0)...) // pseudorange
	obsBody = append(obsBody, receiverF4(100.0)...)      // carrier freq
	obsBody = append(obsBody, receiverF8(5000.0)...)     // carrier phase
	obsBody = append(obsBody, beU16(0)...)               // time in track
	obsBody = append(obsBody, 0x13)                      // sync flags: bits 0,1,4 set
	for i := 0; i < 10; i++ {
		obsBody = append(obsBody, byte(40+i))
	}
	obsBody = append(obsBody, beU16(0)...)

	if err := d.handleMeasurement(obsBody); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.pending) != 1 {
		t.Fatalf("expected 1 pending sample, got %d", len(d.pending))
	}

	var timeBody []byte
	timeBody = append(timeBody, beU16(2200)...)
	timeBody = append(timeBody, beU32(100000)...) // tow = 1000.00 s
	timeBody = append(timeBody, 6)
	timeBody = append(timeBody, beU32(0)...)          // clock drift
	timeBody = append(timeBody, beU32(1000000000)...) // clock bias = 1s

	if err := d.handleEpochTime(timeBody); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.pending) != 0 {
		t.Fatalf("expected pending samples to be flushed")
	}
}

func TestDispatchMeasurementSyncFlagGating(t *testing.T) {
	d, _ := newTestDispatcher()
	var body []byte
	body = append(body, 0)
	body = append(body, beU32(0)...)
	body = append(body, byte(FirstGpsSat))
	body = append(body, receiverF8(1000.0)...)
	body = append(body, receiverF8(20000000.0)...)
	body = append(body, receiverF4(100.0)...)
	body = append(body, receiverF8(5000.0)...)
	body = append(body, beU16(0)...)
	body = append(body, 0x00) // acquisition not complete
	for i := 0; i < 10; i++ {
		body = append(body, byte(40))
	}
	body = append(body, beU16(0)...)

	if err := d.handleMeasurement(body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.pending) != 0 {
		t.Fatalf("expected sample with acquisition-incomplete flag to be dropped")
	}
}

func TestClassifySatelliteRanges(t *testing.T) {
	d, _ := newTestDispatcher()
	if sys, id, ok := d.classifySatellite(5); !ok || sys != 'G' || id != 5 {
		t.Fatalf("GPS classification wrong: %c %d %v", sys, id, ok)
	}
	if sys, id, ok := d.classifySatellite(150); !ok || sys != 'S' || id != 50 {
		t.Fatalf("SBAS classification wrong: %c %d %v", sys, id, ok)
	}
	if sys, id, ok := d.classifySatellite(75); !ok || sys != 'R' || id != 75 {
		t.Fatalf("GLONASS fallback-to-sv classification wrong: %c %d %v", sys, id, ok)
	}
	var buf [10]byte
	setGlostrNumber(&buf, 4)
	setBitsMSB(buf[:], 10, 5, 11)
	d.aux.Observe(3, 75, buf)
	if sys, id, ok := d.classifySatellite(75); !ok || sys != 'R' || id != 11 {
		t.Fatalf("GLONASS slot-table classification wrong: %c %d %v", sys, id, ok)
	}
	if _, _, ok := d.classifySatellite(250); ok {
		t.Fatalf("expected satellite 250 to be out of range")
	}

	// A later string 4 for a different satellite must not disturb sv=75's
	// entry, and a later string 4 for sv=75 itself with a different slot
	// must overwrite it.
	var other [10]byte
	setGlostrNumber(&other, 4)
	setBitsMSB(other[:], 10, 5, 20)
	d.aux.Observe(4, 76, other)
	if sys, id, ok := d.classifySatellite(75); !ok || sys != 'R' || id != 11 {
		t.Fatalf("sv=76's string 4 must not change sv=75's slot: %c %d %v", sys, id, ok)
	}

	var again [10]byte
	setGlostrNumber(&again, 4)
	setBitsMSB(again[:], 10, 5, 12)
	d.aux.Observe(3, 75, again)
	if sys, id, ok := d.classifySatellite(75); !ok || sys != 'R' || id != 12 {
		t.Fatalf("expected sv=75's slot to be overwritten to 12: %c %d %v", sys, id, ok)
	}
}

func TestDispatchGlonassEphemeris(t *testing.T) {
	d, sink := newTestDispatcher()
	var body []byte
	body = append(body, 12)                  // SID
	body = append(body, 1)                    // valid header flag
	body = append(body, 0, 0, 0)               // tauGPS, int3
	body = append(body, beU32(0)...)          // tauUTC
	body = append(body, beU16(0)...)          // b1
	body = append(body, beU16(0)...)          // b2
	body = append(body, 5)                    // n4
	body = append(body, 0)                    // kp
	body = append(body, 1)                    // nSvs

	// one ephemeris entry
	body = append(body, 1)  // valid
	body = append(body, 7)  // slot
	body = append(body, 3)  // freq offset (signed byte)
	body = append(body, 0)  // health
	body = append(body, beU16(100)...) // day
	body = append(body, 10) // tb raw
	body = append(body, 1)  // age
	body = append(body, beU32(uint32(int32(1000)))...) // posX
	body = append(body, beU32(uint32(int32(2000)))...) // posY
	body = append(body, beU32(uint32(int32(3000)))...) // posZ
	body = append(body, 0, 0, 10) // velX int3
	body = append(body, 0, 0, 20) // velY int3
	body = append(body, 0, 0, 30) // velZ int3
	body = append(body, 1, 1, 1)  // accX,accY,accZ
	body = append(body, 0)        // group delay
	body = append(body, 0, 0, 50) // tauN int3

	if err := d.handleGlonassEphemeris(body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sink.gloNav) != 1 {
		t.Fatalf("expected 1 glonass nav record, got %d", len(sink.gloNav))
	}
	rec := sink.gloNav[0]
	if rec.sat != 7 || rec.e.Slot != 7 || rec.e.Freq != 3 {
		t.Fatalf("unexpected glonass ephemeris: %+v", rec.e)
	}
}

func TestDispatchGpsSubframeParityFailureIsIgnored(t *testing.T) {
	d, sink := newTestDispatcher()
	var body []byte
	body = append(body, 0) // channel
	body = append(body, byte(FirstGpsSat))
	var words [10]uint32
	for i := range words {
		words[i] = encodeGpsWord(uint32(i+1), false, false)
	}
	words[0] ^= 1 // corrupt parity
	for _, w := range words {
		body = append(body, beU32(w)...)
	}
	if err := d.handleEphemerisSub(body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sink.gpsNav) != 0 {
		t.Fatalf("expected no nav record from a parity-broken subframe")
	}
}
