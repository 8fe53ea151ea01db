package rnxconv

/*------------------------------------------------------------------------------
* subframe.go : GPS navigation-subframe parity/assembly and GLONASS string
*               assembly, producing the raw mantissa buffers ephemeris.go
*               scales into physical units
*
* reference : ICD-GPS-200 20.3.5.2 (user parity algorithm), matched against
*             gnssgo/common.go's Decode_Word; GLONASS ICD string layout
*             matched against gnssgo/rcvraw.go's DecodeGlostrEph/DecodeGlostrUtc
*-----------------------------------------------------------------------------*/

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrParity is returned when a GPS subframe word fails the ICD-GPS-200
// parity check.
var ErrParity = fmt.Errorf("rnxconv: subframe parity error")

// ErrSubframeID is returned when a completed set of three GPS subframes
// does not carry subframe IDs 1, 2, 3 in order.
var ErrSubframeID = fmt.Errorf("rnxconv: unexpected subframe id sequence")

// ErrGlostrID is returned when a completed set of five GLONASS strings
// does not carry string numbers 1-5 in order.
var ErrGlostrID = fmt.Errorf("rnxconv: unexpected glonass string sequence")

// ErrIodcMismatch is returned when a completed set of three GPS subframes
// carries an IODC (subframe 1) whose low byte disagrees with either
// subframe's IODE, meaning the three subframes were not all transmitted
// from the same ephemeris upload.
var ErrIodcMismatch = fmt.Errorf("rnxconv: iodc/iode mismatch across subframes")

// gpsHamming is the set of six 32-bit masks used to recompute D25-D30 of a
// GPS navigation word from its 2 carried bits (D29*, D30* of the previous
// word) and its own D1-D30.
var gpsHamming = [6]uint32{
	0xBB1F3480, 0x5D8F9A40, 0xAEC7CD00, 0x5763E680, 0x6BB1F340, 0x8B7A89C0,
}

// DecodeGpsWord checks the parity of one raw GPS navigation word as a
// subframe-poll message carries it: the receiver already prefixes each
// 30-bit word (D1-D30) with the D29/D30 bits of the word before it, so
// word's bits 31/30 are D29*/D30* and bits 29-0 are the current D1-D30 —
// no state needs to be carried between words by this package. Undoes the
// data-bit inversion ICD-GPS-200 specifies when D30* is set and returns
// the 24 data bits as 3 bytes.
func DecodeGpsWord(word uint32) (data [3]byte, err error) {
	w := word
	if w&0x40000000 != 0 {
		w ^= 0x3FFFFFC0
	}
	var parity uint32
	for i := 0; i < 6; i++ {
		parity <<= 1
		for v := (w & gpsHamming[i]) >> 6; v > 0; v >>= 1 {
			parity ^= v & 1
		}
	}
	if parity != w&0x3F {
		return data, ErrParity
	}
	for i := 0; i < 3; i++ {
		data[i] = byte(w >> (22 - i*8))
	}
	return data, nil
}

// AssembleGpsSubframe decodes the 10 raw words of one GPS subframe (as
// delivered by a subframe-poll message, each already carrying its
// predecessor's D29/D30 in its top 2 bits) into the 30-byte buffer this
// package's ephemeris decoder reads with BitsMSB.
func AssembleGpsSubframe(words [10]uint32) (buf [30]byte, err error) {
	for i, w := range words {
		data, derr := DecodeGpsWord(w)
		if derr != nil && err == nil {
			err = derr
		}
		copy(buf[i*3:i*3+3], data[:])
	}
	return buf, err
}

// GpsMantissa holds the raw, unscaled fields pulled from one completed
// subframe 1/2/3 triplet, laid out in the same bit positions
// gnssgo/rcvraw.go's DecodeFrameEph reads from its packed 240-bit-per-
// subframe buffer. Scaling into physical units is ephemeris.go's job.
type GpsMantissa struct {
	Tow1                          uint32
	SubframeID1, SubframeID2, SubframeID3 int
	Week                          int
	Code, URA, Health             int
	IODC0, IODC1                  int
	L2PData                       int
	Tgd                           int32
	Toc                           uint32
	F2, F1                        int32
	F0                            int32
	IODE2                         int
	Crs                           int32
	Deltan                        int32
	M0                            int32
	Cuc                           int32
	E                             uint32
	Cus                           int32
	SqrtA                         uint32
	Toes                          uint32
	FitFlag                       int
	Cic                           int32
	Omega0                        int32
	Cis                           int32
	I0                            int32
	Crc                           int32
	Omega                         int32
	OmegaDot                      int32
	IODE3                         int
	IDot                          int32
}

// gpsSubframeSet accumulates the three 30-byte subframe buffers for one
// PRN until all three are present, implementing the completion rule
// (subframes 1, 2, 3 all present with matching IODC/IODE).
type gpsSubframeSet struct {
	have  [3]bool
	bufs  [3][30]byte
}

// GpsEphemerisBuilder tracks, per GPS/QZSS PRN, the subframe triplet
// needed to complete one ephemeris set.
type GpsEphemerisBuilder struct {
	sets map[int]*gpsSubframeSet
}

// NewGpsEphemerisBuilder returns an empty per-PRN tracker.
func NewGpsEphemerisBuilder() *GpsEphemerisBuilder {
	return &GpsEphemerisBuilder{sets: make(map[int]*gpsSubframeSet)}
}

// Add records one assembled 30-byte subframe buffer for prn. subframeID is
// the 3-bit ID extracted by the caller's first pass, or the assembler can
// re-derive it via PeekSubframeID below before calling Add. When subframes
// 1, 2 and 3 have all been seen, Add returns a complete mantissa set;
// otherwise it returns (nil, nil) and waits for more.
func (b *GpsEphemerisBuilder) Add(prn int, subframeID int, buf [30]byte) (*GpsMantissa, error) {
	if subframeID < 1 || subframeID > 3 {
		return nil, nil
	}
	s, ok := b.sets[prn]
	if !ok {
		s = &gpsSubframeSet{}
		b.sets[prn] = s
	}
	s.bufs[subframeID-1] = buf
	s.have[subframeID-1] = true
	if !(s.have[0] && s.have[1] && s.have[2]) {
		return nil, nil
	}
	m, err := decodeGpsMantissa(s.bufs[0], s.bufs[1], s.bufs[2])
	delete(b.sets, prn)
	return m, err
}

// PeekSubframeID reads the 3-bit subframe ID out of an assembled 30-byte
// subframe buffer without otherwise interpreting it, for callers that need
// to route the buffer to Add.
func PeekSubframeID(buf [30]byte) int {
	return int(BitsMSB(buf[:], 24+17+2, 3))
}

// writeSubframeID overwrites the 3-bit subframe ID field of an assembled
// 30-byte subframe buffer, for callers (DecodeMID15Ephemeris) that build
// a buffer from a message with no HOW word of its own to read the ID
// from.
func writeSubframeID(buf *[30]byte, id int) {
	pos := 24 + 17 + 2
	for bit := 0; bit < 3; bit++ {
		p := pos + bit
		byteIdx := p / 8
		bitIdx := p % 8
		if (id>>(2-bit))&1 != 0 {
			buf[byteIdx] |= 1 << (7 - bitIdx)
		} else {
			buf[byteIdx] &^= 1 << (7 - bitIdx)
		}
	}
}

// NavWordsToSubframe packs 15 consecutive 16-bit half-words, grouped the
// way a MID 15 complete-ephemeris message lays its 45-word payload out
// (three groups of 15, one per subframe), into the 30-byte buffer
// decodeGpsMantissa reads.
func NavWordsToSubframe(words [15]uint16) [30]byte {
	var buf [30]byte
	for i, w := range words {
		buf[2*i] = byte(w >> 8)
		buf[2*i+1] = byte(w)
	}
	return buf
}

// DecodeMID15Ephemeris decodes a MID 15 complete-ephemeris message's 45
// half-words into a GpsMantissa. MID15 carries no HOW of its own (the
// receiver already parsed the subframes to build this message), so the
// three 15-word groups arrive with their subframe-ID bits zeroed; this
// writes the known IDs 1, 2, 3 back in before handing the buffers to the
// same decodeGpsMantissa MID 8 subframes use.
func DecodeMID15Ephemeris(navW [45]uint16) (*GpsMantissa, error) {
	var w1, w2, w3 [15]uint16
	copy(w1[:], navW[0:15])
	copy(w2[:], navW[15:30])
	copy(w3[:], navW[30:45])
	sf1 := NavWordsToSubframe(w1)
	sf2 := NavWordsToSubframe(w2)
	sf3 := NavWordsToSubframe(w3)
	writeSubframeID(&sf1, 1)
	writeSubframeID(&sf2, 2)
	writeSubframeID(&sf3, 3)
	return decodeGpsMantissa(sf1, sf2, sf3)
}

// decodeGpsMantissa mirrors DecodeFrameEph's bit offsets exactly: each
// subframe occupies one 240-bit (30-byte) block, word 1's 24 data bits are
// skipped (i starts at absolute bit 24 within each block) before every
// subframe's own fields, subframe ID included.
func decodeGpsMantissa(sf1, sf2, sf3 [30]byte) (*GpsMantissa, error) {
	m := &GpsMantissa{}

	i := 24
	m.Tow1 = BitsMSB(sf1[:], i, 17)
	i += 17 + 2
	m.SubframeID1 = int(BitsMSB(sf1[:], i, 3))
	i += 3 + 2
	m.Week = int(BitsMSB(sf1[:], i, 10))
	i += 10
	m.Code = int(BitsMSB(sf1[:], i, 2))
	i += 2
	m.URA = int(BitsMSB(sf1[:], i, 4))
	i += 4
	m.Health = int(BitsMSB(sf1[:], i, 6))
	i += 6
	m.IODC0 = int(BitsMSB(sf1[:], i, 2))
	i += 2
	m.L2PData = int(BitsMSB(sf1[:], i, 1))
	i += 1 + 87
	m.Tgd = SignedBitsMSB(sf1[:], i, 8)
	i += 8
	m.IODC1 = int(BitsMSB(sf1[:], i, 8))
	i += 8
	m.Toc = BitsMSB(sf1[:], i, 16)
	i += 16
	m.F2 = SignedBitsMSB(sf1[:], i, 8)
	i += 8
	m.F1 = SignedBitsMSB(sf1[:], i, 16)
	i += 16
	m.F0 = SignedBitsMSB(sf1[:], i, 22)

	i = 24 + 17 + 2
	m.SubframeID2 = int(BitsMSB(sf2[:], i, 3))
	i += 3 + 2
	m.IODE2 = int(BitsMSB(sf2[:], i, 8))
	i += 8
	m.Crs = SignedBitsMSB(sf2[:], i, 16)
	i += 16
	m.Deltan = SignedBitsMSB(sf2[:], i, 16)
	i += 16
	m.M0 = SignedBitsMSB(sf2[:], i, 32)
	i += 32
	m.Cuc = SignedBitsMSB(sf2[:], i, 16)
	i += 16
	m.E = BitsMSB(sf2[:], i, 32)
	i += 32
	m.Cus = SignedBitsMSB(sf2[:], i, 16)
	i += 16
	m.SqrtA = BitsMSB(sf2[:], i, 32)
	i += 32
	m.Toes = BitsMSB(sf2[:], i, 16)
	i += 16
	if BitsMSB(sf2[:], i, 1) > 0 {
		m.FitFlag = 0
	} else {
		m.FitFlag = 1
	}

	i = 24 + 17 + 2
	m.SubframeID3 = int(BitsMSB(sf3[:], i, 3))
	i += 3 + 2
	m.Cic = SignedBitsMSB(sf3[:], i, 16)
	i += 16
	m.Omega0 = SignedBitsMSB(sf3[:], i, 32)
	i += 32
	m.Cis = SignedBitsMSB(sf3[:], i, 16)
	i += 16
	m.I0 = SignedBitsMSB(sf3[:], i, 32)
	i += 32
	m.Crc = SignedBitsMSB(sf3[:], i, 16)
	i += 16
	m.Omega = SignedBitsMSB(sf3[:], i, 32)
	i += 32
	m.OmegaDot = SignedBitsMSB(sf3[:], i, 24)
	i += 24
	m.IODE3 = int(BitsMSB(sf3[:], i, 8))
	i += 8
	m.IDot = SignedBitsMSB(sf3[:], i, 14)

	if m.SubframeID1 != 1 || m.SubframeID2 != 2 || m.SubframeID3 != 3 {
		return nil, ErrSubframeID
	}
	iode := m.IODE2
	if iode != m.IODE3 || iode != (m.IODC0<<8|m.IODC1)&0xFF {
		return nil, ErrIodcMismatch
	}
	return m, nil
}

// GlonassMantissa holds the raw fields pulled from one completed string
// 1-5 set for a GLONASS satellite, laid out exactly as
// gnssgo/rcvraw.go's DecodeGlostrEph/DecodeGlostrUtc read them from the
// 50-byte (w/o hamming and time mark) concatenated buffer.
type GlonassMantissa struct {
	Slot int

	TkH, TkM, TkS int
	VelX, AccX    int32
	PosX          int32

	Health int
	Tb     int
	VelY, AccY int32
	PosY       int32

	Gamma      int32
	VelZ, AccZ int32
	PosZ       int32

	Taun, DTaun int32
	Age         int
	Sva         int

	TauC int32
	TauGps int32
}

// glonassStringSet accumulates the five 10-byte (w/o hamming/time-mark)
// string buffers for one satellite until all five are present.
type glonassStringSet struct {
	have [5]bool
	bufs [5][10]byte
}

// GlonassEphemerisBuilder tracks, per receiver-reported slot, the string
// quintet needed to complete one immediate-data ephemeris set.
type GlonassEphemerisBuilder struct {
	sets map[int]*glonassStringSet
	cfg  *Config
	log  *Logger
}

// NewGlonassEphemerisBuilder returns an empty per-slot tracker. cfg's
// "glonass-hamming" option gates the (elided by default) Hamming check;
// log receives a warning whenever a string fails it.
func NewGlonassEphemerisBuilder(cfg *Config, log *Logger) *GlonassEphemerisBuilder {
	return &GlonassEphemerisBuilder{sets: make(map[int]*glonassStringSet), cfg: cfg, log: log}
}

// PackGlonassString packs the 10 raw 32-bit receiver words of one MID 8
// GLONASS string poll into the 10-byte (w/o hamming and time mark) buffer
// DecodeGlostrEph concatenates five of per satellite: each word's low byte
// carries 8 of the string's data bits, for 80 bits total (77 meaningful,
// 3 padding), matching the receiver's own on-air truncation of the
// Hamming and time-mark bits before framing the word.
func PackGlonassString(words [10]uint32) [10]byte {
	var buf [10]byte
	for i, w := range words {
		buf[i] = byte(w)
	}
	return buf
}

// stringNumber reads the 4-bit string number (bits 1-4, 0-indexed bit 1)
// out of a packed 10-byte string buffer.
func stringNumber(buf [10]byte) int {
	return int(BitsMSB(buf[:], 1, 4))
}

// Add records one packed 10-byte string buffer for the given slot number.
// hammingOK, when the caller has already verified the string's Hamming
// code (or the check is disabled), gates whether the string is accepted at
// all; when false the string is dropped and a warning logged. When
// strings 1-5 have all been accepted, Add returns the decoded mantissa.
func (b *GlonassEphemerisBuilder) Add(slot int, buf [10]byte, hammingOK bool) (*GlonassMantissa, error) {
	if !hammingOK {
		b.log.Warnf("rnxconv: dropping glonass string, slot=%d, hamming check failed\n", slot)
		return nil, nil
	}
	n := stringNumber(buf)
	if n < 1 || n > 5 {
		return nil, nil
	}
	s, ok := b.sets[slot]
	if !ok {
		s = &glonassStringSet{}
		b.sets[slot] = s
	}
	s.bufs[n-1] = buf
	s.have[n-1] = true
	if !(s.have[0] && s.have[1] && s.have[2] && s.have[3] && s.have[4]) {
		return nil, nil
	}
	m, err := decodeGlonassMantissa(s.bufs)
	delete(b.sets, slot)
	if m != nil {
		m.Slot = slot
	}
	return m, err
}

// CheckHamming runs the GLONASS string relative-Hamming-code check over a
// packed 10-byte string buffer, only when cfg enables it; otherwise it
// reports the string as accepted unconditionally. The mask table expects
// an 11-byte window (the on-air string carries the Hamming/time-mark bits
// PackGlonassString already stripped); the 11th byte is treated as zero,
// so this is an approximation of the true on-air check and stays disabled
// by default.
func CheckHamming(cfg *Config, buf [10]byte) bool {
	if cfg == nil || !cfg.Bool("glonass-hamming") {
		return true
	}
	var cs byte
	n := 0
	for row := 0; row < 8; row++ {
		cs = 0
		for col := 0; col < 11; col++ {
			var b byte
			if col < 10 {
				b = buf[col]
			}
			cs ^= xor8(b & glonassHammingMask[row][col])
		}
		if cs != 0 {
			n++
		}
	}
	return n == 0 || (n == 2 && cs != 0)
}

func xor8(b byte) byte {
	var x byte
	for b > 0 {
		x ^= b & 1
		b >>= 1
	}
	return x
}

// glonassHammingMask is the GLONASS relative-Hamming-code mask table, each
// row an 11-byte window (10 string bytes plus an implicit 0 pad byte for
// the check's 88-bit coverage).
var glonassHammingMask = [8][11]byte{
	{0x55, 0x55, 0x5A, 0xAA, 0xAA, 0xAA, 0xB5, 0x55, 0x6A, 0xD8, 0x08},
	{0x66, 0x66, 0x6C, 0xCC, 0xCC, 0xCC, 0xD9, 0x99, 0xB3, 0x68, 0x10},
	{0x87, 0x87, 0x8F, 0x0F, 0x0F, 0x0F, 0x1E, 0x1E, 0x3C, 0x70, 0x20},
	{0x07, 0xF8, 0x0F, 0xF0, 0x0F, 0xF0, 0x1F, 0xE0, 0x3F, 0x80, 0x40},
	{0xF8, 0x00, 0x0F, 0xFF, 0xF0, 0x00, 0x1F, 0xFF, 0xC0, 0x00, 0x80},
	{0x00, 0x00, 0x0F, 0xFF, 0xFF, 0xFF, 0xE0, 0x00, 0x00, 0x01, 0x00},
	{0xFF, 0xFF, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x00},
	{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xF8},
}

// decodeGlonassMantissa mirrors DecodeGlostrEph/DecodeGlostrUtc: the five
// 10-byte string buffers are concatenated (80 bits apart) and read with a
// single continuously advancing bit cursor.
func decodeGlonassMantissa(bufs [5][10]byte) (*GlonassMantissa, error) {
	var flat [50]byte
	for s := 0; s < 5; s++ {
		copy(flat[s*10:s*10+10], bufs[s][:])
	}
	m := &GlonassMantissa{}

	i := 1
	frn1 := int(BitsMSB(flat[:], i, 4))
	i += 4 + 2 + 2
	m.TkH = int(BitsMSB(flat[:], i, 5))
	i += 5
	m.TkM = int(BitsMSB(flat[:], i, 6))
	i += 6
	m.TkS = int(BitsMSB(flat[:], i, 1)) * 30
	i += 1
	m.VelX = signMagnitudeMSB(flat[:], i, 24)
	i += 24
	m.AccX = signMagnitudeMSB(flat[:], i, 5)
	i += 5
	m.PosX = signMagnitudeMSB(flat[:], i, 27)
	i += 27 + 4

	i = 80 + 1
	frn2 := int(BitsMSB(flat[:], i, 4))
	i += 4
	m.Health = int(BitsMSB(flat[:], i, 1))
	i += 1 + 2 + 1
	m.Tb = int(BitsMSB(flat[:], i, 7))
	i += 7 + 5
	m.VelY = signMagnitudeMSB(flat[:], i, 24)
	i += 24
	m.AccY = signMagnitudeMSB(flat[:], i, 5)
	i += 5
	m.PosY = signMagnitudeMSB(flat[:], i, 27)
	i += 27 + 4

	i = 160 + 1
	frn3 := int(BitsMSB(flat[:], i, 4))
	i += 4 + 1
	m.Gamma = signMagnitudeMSB(flat[:], i, 11)
	i += 11 + 1 + 2 + 1
	m.VelZ = signMagnitudeMSB(flat[:], i, 24)
	i += 24
	m.AccZ = signMagnitudeMSB(flat[:], i, 5)
	i += 5
	m.PosZ = signMagnitudeMSB(flat[:], i, 27)
	i += 27 + 4

	i = 240 + 1
	frn4 := int(BitsMSB(flat[:], i, 4))
	i += 4
	m.Taun = signMagnitudeMSB(flat[:], i, 22)
	i += 22
	m.DTaun = signMagnitudeMSB(flat[:], i, 5)
	i += 5
	m.Age = int(BitsMSB(flat[:], i, 5))
	i += 5 + 14 + 1
	m.Sva = int(BitsMSB(flat[:], i, 4))
	i += 4 + 3 + 11
	m.Slot = int(BitsMSB(flat[:], i, 5))

	i = 320 + 4 + 11
	m.TauC = SignedBitsMSB(flat[:], i, 32)
	i += 32 + 1 + 6
	m.TauGps = SignedBitsMSB(flat[:], i, 22)

	if frn1 != 1 || frn2 != 2 || frn3 != 3 || frn4 != 4 {
		return nil, ErrGlostrID
	}
	return m, nil
}

// signMagnitudeMSB reads length bits MSB-first where the top bit is sign
// and the remaining bits are magnitude, matching GLONASS's ICD encoding
// (as opposed to GPS's two's complement).
func signMagnitudeMSB(buf []byte, pos, length int) int32 {
	return WidenSignedMagnitude(BitsMSB(buf, pos, length), length)
}

// pendingFreq records that channel's almanac stream has announced slot nA
// and is now expecting the following odd-numbered string to carry that
// slot's carrier frequency number (HnA).
type pendingFreq struct {
	slot       int
	wantString int
}

// GlonassAuxTables tracks the two pieces of GLONASS satellite identity a
// receiver reports outside the immediate ephemeris strings: which slot a
// receiver-assigned satellite id is tracking (string 4), and which carrier
// frequency number a slot uses (derived from the almanac strings 6-15, two
// strings per slot: an even string announcing the slot, the odd string
// after it carrying the frequency number). A live stream cannot rewind to
// pre-scan these the way a batch file reader can, so entries arrive
// best-effort as the strings are seen; callers needing a slot's
// frequency before its almanac page has streamed by get "unknown" and
// may re-ask once an epoch's worth of strings has passed.
type GlonassAuxTables struct {
	slot map[int]int // receiver-assigned satellite id -> slot
	pend map[int]pendingFreq
	freq map[int]int // slot -> carrier frequency number
}

// NewGlonassAuxTables returns an empty tracker.
func NewGlonassAuxTables() *GlonassAuxTables {
	return &GlonassAuxTables{
		slot: make(map[int]int),
		pend: make(map[int]pendingFreq),
		freq: make(map[int]int),
	}
}

// Observe inspects one packed 10-byte GLONASS string, read on receiver
// channel for satellite id satID, and updates whichever table the string
// number feeds. The slot table is keyed by satID, not channel, so a valid
// string 4 only ever installs or overwrites that same satellite's entry;
// the almanac pairing table stays keyed by channel since strings 6-15
// announce other satellites' slots and must be paired within one channel's
// own stream.
func (g *GlonassAuxTables) Observe(channel, satID int, buf [10]byte) {
	n := stringNumber(buf)
	switch n {
	case 4:
		newSlot := int(BitsMSB(buf[:], 10, 5))
		if cur, ok := g.slot[satID]; !ok || cur != newSlot {
			g.slot[satID] = newSlot
		}
	case 6, 8, 10, 12, 14:
		nA := int(BitsMSB(buf[:], 72, 5))
		if nA > 0 {
			g.pend[channel] = pendingFreq{slot: nA, wantString: n + 1}
		}
	case 7, 9, 11, 13, 15:
		p, ok := g.pend[channel]
		if ok && p.wantString == n {
			hnA := int(BitsMSB(buf[:], 9, 5))
			if hnA >= 25 {
				hnA -= 32
			}
			g.freq[p.slot] = hnA
			delete(g.pend, channel)
		}
	}
}

// Slot returns the GLONASS slot number the given receiver-assigned
// satellite id is tracking, and whether string 4 has been seen for it yet.
func (g *GlonassAuxTables) Slot(satID int) (int, bool) {
	v, ok := g.slot[satID]
	return v, ok
}

// Freq returns the carrier frequency number for a slot, and whether its
// almanac pair has streamed by yet.
func (g *GlonassAuxTables) Freq(slot int) (int, bool) {
	v, ok := g.freq[slot]
	return v, ok
}

// KnownSlots returns the slots with a resolved frequency number, sorted.
func (g *GlonassAuxTables) KnownSlots() []int {
	slots := maps.Keys(g.freq)
	slices.Sort(slots)
	return slots
}
