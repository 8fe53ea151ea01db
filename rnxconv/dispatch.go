package rnxconv

/*------------------------------------------------------------------------------
* dispatch.go : MID routing, epoch assembly and bias correction
*
* reference : original_source/CommonClasses/GNSSdataFromOSP.cpp's
*             acqEpochData/acqHeaderData MID switch and its getMID*
*             extractors
*-----------------------------------------------------------------------------*/

import "errors"

// Satellite numbering ranges a SiRF receiver uses across MID 8/28/70,
// matching GNSSdataFromOSP.h's FIRST*/LAST* macros.
const (
	FirstGpsSat  = 1
	LastGpsSat   = 32
	FirstGloSat  = 70
	LastGloSat   = 83
	FirstSbasSat = 101
	LastSbasSat  = 200

	// MaxGlonassSlots is the GLONASS constellation's largest valid slot
	// number, matching GNSSdataFromOSP.h's MAXGLOSLOTS.
	MaxGlonassSlots = 24
)

// Message IDs this dispatcher routes.
const (
	midPosition         = 2
	midReceiverID       = 6
	midEpochTime        = 7
	midEphemerisSub     = 8
	midGpsEphemeris     = 15
	midMeasurement      = 28
	midGlonassEphemeris = 70
)

// Conversion constants a SiRF receiver's MID 28 observables are scaled
// with to reach RINEX units, matching GNSSdataFromOSP.h's C1CADJ/
// L1CADJ/L1WLINV.
const (
	speedOfLight    = 299792458.0
	l1Frequency     = 1575420000.0
	l1WavelengthInv = l1Frequency / speedOfLight
)

var errBadMID70Header = errors.New("rnxconv: MID70 is not a valid SID12 ephemeris response")

// ObsSample is one satellite's pseudorange/phase/frequency/strength
// observable set for one measurement epoch, already converted to RINEX
// units (metres, cycles, Hz).
type ObsSample struct {
	System         byte // 'G', 'R', or 'S'
	Sat            int  // PRN (G/S) or GLONASS slot (R)
	Pseudorange    float64
	CarrierPhase   float64
	CarrierFreq    float64
	SignalStrength float64
	StrengthIndex  int
	Time           float64 // receiver software time tag, seconds
}

// Epoch is one MID7-terminated batch of MID28 observables.
type Epoch struct {
	Week       int
	Tow        float64
	ClockBias  float64
	ClockDrift float64
	Samples    []ObsSample
}

// Sink receives the records a Dispatcher extracts, the same role
// RinexData/RTKobservation play for GNSSdataFromOSP's getMID*
// extractors: the dispatcher never writes a file directly.
type Sink interface {
	Position(t Time, x, y, z float64, nsv int)
	ReceiverID(swVersion, receiverName, swCustomer string)
	Obs(e Epoch)
	GpsNav(sat int, e *GpsEphemeris)
	GlonassNav(sat int, e *GlonassEphemeris)
}

// Dispatcher routes decoded OSP message payloads to a Sink, assembling
// GPS/GLONASS ephemerides and measurement epochs along the way.
type Dispatcher struct {
	cfg  *Config
	log  *Logger
	sink Sink

	receiverName string

	gpsBuilder *GpsEphemerisBuilder
	gloBuilder *GlonassEphemerisBuilder
	aux        *GlonassAuxTables

	refTime    Time
	haveRef    bool
	pending    []ObsSample
}

// NewDispatcher returns a Dispatcher that routes to sink. receiverName
// is the driver-supplied label GNSSdataFromOSP's constructor takes as
// "rcv", carried into the RECEIVER header record alongside MID6 data.
func NewDispatcher(cfg *Config, log *Logger, sink Sink, receiverName string) *Dispatcher {
	return &Dispatcher{
		cfg:          cfg,
		log:          log,
		sink:         sink,
		receiverName: receiverName,
		gpsBuilder:   NewGpsEphemerisBuilder(),
		gloBuilder:   NewGlonassEphemerisBuilder(cfg, log),
		aux:          NewGlonassAuxTables(),
	}
}

// Dispatch decodes one OSP message payload (MID byte followed by its
// body) and routes it to the matching handler. Unknown MIDs are
// silently ignored, matching acqEpochData's default case.
func (d *Dispatcher) Dispatch(payload []byte) error {
	if len(payload) == 0 {
		return nil
	}
	mid := payload[0]
	body := payload[1:]
	switch mid {
	case midPosition:
		return d.handlePosition(body)
	case midReceiverID:
		return d.handleReceiverID(body)
	case midEpochTime:
		return d.handleEpochTime(body)
	case midEphemerisSub:
		return d.handleEphemerisSub(body)
	case midGpsEphemeris:
		return d.handleGpsEphemeris(body)
	case midMeasurement:
		return d.handleMeasurement(body)
	case midGlonassEphemeris:
		return d.handleGlonassEphemeris(body)
	default:
		return nil
	}
}

func (d *Dispatcher) handlePosition(body []byte) error {
	c := NewCursor(body)
	x, err := c.I4()
	if err != nil {
		return err
	}
	y, err := c.I4()
	if err != nil {
		return err
	}
	z, err := c.I4()
	if err != nil {
		return err
	}
	if err := c.Skip(9); err != nil { // vX,vY,vZ (2S each) + Mode1,HDOP,Mode2 (1U each)
		return err
	}
	week, err := c.U2()
	if err != nil {
		return err
	}
	towRaw, err := c.U4()
	if err != nil {
		return err
	}
	nsv, err := c.U1()
	if err != nil {
		return err
	}
	if int(nsv) < d.cfg.Int("min-nsv") {
		d.log.Warnf("rnxconv: MID2 position solution has only %d satellites\n", nsv)
		return nil
	}
	t := Time{Week: int(week) + 1024, Tow: float64(towRaw) / 100.0}
	d.sink.Position(t, float64(x), float64(y), float64(z), int(nsv))
	return nil
}

func (d *Dispatcher) handleReceiverID(body []byte) error {
	c := NewCursor(body)
	vLen, err := c.U1()
	if err != nil {
		return err
	}
	cLen, err := c.U1()
	if err != nil {
		return err
	}
	version := make([]byte, vLen)
	for i := range version {
		b, err := c.U1()
		if err != nil {
			return err
		}
		version[i] = b
	}
	customer := make([]byte, cLen)
	for i := range customer {
		b, err := c.U1()
		if err != nil {
			return err
		}
		customer[i] = b
	}
	d.sink.ReceiverID(string(version), d.receiverName, string(customer))
	return nil
}

func (d *Dispatcher) handleEpochTime(body []byte) error {
	c := NewCursor(body)
	week, err := c.U2()
	if err != nil {
		return err
	}
	towRaw, err := c.U4()
	if err != nil {
		return err
	}
	sats, err := c.U1()
	if err != nil {
		return err
	}
	drift, err := c.U4()
	if err != nil {
		return err
	}
	biasRaw, err := c.U4()
	if err != nil {
		return err
	}
	if int(sats) < d.cfg.Int("min-nsv") {
		d.log.Warnf("rnxconv: MID7 epoch has only %d satellites\n", sats)
		return nil
	}
	tow := float64(towRaw) / 100.0
	bias := float64(biasRaw) * 1.0e-9
	if !d.cfg.Bool("apply-clock-bias") {
		tow += bias
		bias = 0.0
	}
	d.refTime = Time{Week: int(week), Tow: tow}
	d.haveRef = true

	if len(d.pending) == 0 {
		return nil
	}
	ep := Epoch{
		Week:       int(week),
		Tow:        tow,
		ClockBias:  bias,
		ClockDrift: float64(drift),
		Samples:    d.pending,
	}
	d.pending = nil
	d.applyBiasCorrection(&ep)
	d.sink.Obs(ep)
	return nil
}

// applyBiasCorrection folds the receiver clock bias/drift into the
// pseudorange/phase/frequency samples exactly as acqEpochData does,
// skipping any sample the OSP message already reported as zero.
func (d *Dispatcher) applyBiasCorrection(ep *Epoch) {
	if !d.cfg.Bool("apply-clock-bias") {
		return
	}
	for i := range ep.Samples {
		s := &ep.Samples[i]
		if s.Pseudorange != 0 {
			s.Pseudorange -= ep.ClockBias * speedOfLight
		}
		if s.CarrierPhase != 0 {
			s.CarrierPhase -= ep.ClockBias * l1Frequency
		}
		if s.CarrierFreq != 0 {
			s.CarrierFreq -= ep.ClockDrift
		}
	}
}

func (d *Dispatcher) handleMeasurement(body []byte) error {
	c := NewCursor(body)
	if _, err := c.U1(); err != nil { // channel, unused: MID28 classification keys on satellite number alone
		return err
	}
	if _, err := c.I4(); err != nil { // receiver time tag, unused
		return err
	}
	sv, err := c.U1()
	if err != nil {
		return err
	}
	sys, satID, ok := d.classifySatellite(int(sv))
	if !ok {
		d.log.Warnf("rnxconv: MID28 satellite number out of range: %d\n", sv)
		return nil
	}
	swTime, err := c.F8()
	if err != nil {
		return err
	}
	pseudorange, err := c.F8()
	if err != nil {
		return err
	}
	carrierFreqRaw, err := c.F4()
	if err != nil {
		return err
	}
	carrierPhase, err := c.F8()
	if err != nil {
		return err
	}
	if _, err := c.U2(); err != nil { // time in track, unused
		return err
	}
	syncFlags, err := c.U1()
	if err != nil {
		return err
	}
	strength, err := c.U1()
	if err != nil {
		return err
	}
	worst := strength
	for i := 1; i < 10; i++ {
		v, err := c.U1()
		if err != nil {
			return err
		}
		if v < worst {
			worst = v
		}
	}
	if _, err := c.U2(); err != nil { // delta range interval, unused
		return err
	}
	if syncFlags&0x01 == 0 {
		d.log.Tracef("rnxconv: MID28 sv=%d ignored: acquisition not complete\n", sv)
		return nil
	}
	carrierFreq := float64(carrierFreqRaw) * l1WavelengthInv
	phase := carrierPhase * l1WavelengthInv
	if syncFlags&0x02 == 0 {
		phase = 0.0
	}
	if syncFlags&0x10 == 0 {
		carrierFreq = 0.0
	}
	strengthIndex := int(worst) / 6
	if strengthIndex < 1 {
		strengthIndex = 1
	}
	if strengthIndex > 9 {
		strengthIndex = 9
	}
	sample := ObsSample{
		System:         sys,
		Sat:            satID,
		Pseudorange:    pseudorange,
		CarrierPhase:   phase,
		CarrierFreq:    carrierFreq,
		SignalStrength: float64(worst),
		StrengthIndex:  strengthIndex,
		Time:           swTime,
	}
	if len(d.pending) > 0 && d.pending[0].Time != swTime {
		d.log.Warnf("rnxconv: epoch %g discarded: MID7 lost\n", d.pending[0].Time)
		d.pending = d.pending[:0]
	}
	d.pending = append(d.pending, sample)
	return nil
}

// classifySatellite maps a receiver-reported satellite number into the
// RINEX satellite-system letter and satellite ID, matching
// getMID28ObsData's range checks and GLONASS slot lookup.
func (d *Dispatcher) classifySatellite(sv int) (sys byte, satID int, ok bool) {
	switch {
	case sv >= FirstGpsSat && sv <= LastGpsSat:
		return 'G', sv, true
	case sv >= FirstGloSat && sv <= LastGloSat:
		if slot, have := d.aux.Slot(sv); have {
			return 'R', slot, true
		}
		return 'R', sv, true
	case sv >= FirstSbasSat && sv <= LastSbasSat:
		return 'S', sv - 100, true
	default:
		return 0, 0, false
	}
}

func (d *Dispatcher) handleEphemerisSub(body []byte) error {
	c := NewCursor(body)
	ch, err := c.U1()
	if err != nil {
		return err
	}
	sv, err := c.U1()
	if err != nil {
		return err
	}
	var words [10]uint32
	for i := range words {
		w, err := c.U4()
		if err != nil {
			return err
		}
		words[i] = w
	}
	switch {
	case int(sv) >= FirstGpsSat && int(sv) <= LastGpsSat:
		return d.handleGpsSubframe(int(sv), words)
	case int(sv) >= FirstGloSat && int(sv) <= LastGloSat:
		return d.handleGlonassString(int(ch), int(sv), words)
	default:
		d.log.Warnf("rnxconv: MID8 satellite number out of GPS, GLONASS ranges: %d\n", sv)
		return nil
	}
}

func (d *Dispatcher) handleGpsSubframe(sv int, words [10]uint32) error {
	buf, err := AssembleGpsSubframe(words)
	if err != nil {
		d.log.Warnf("rnxconv: MID8 GPS sv=%d wrong parity\n", sv)
		return nil
	}
	subframeID := PeekSubframeID(buf)
	m, err := d.gpsBuilder.Add(sv, subframeID, buf)
	if err != nil {
		d.log.Warnf("rnxconv: MID8 GPS sv=%d %v\n", sv, err)
		return nil
	}
	if m == nil {
		return nil
	}
	e := ScaleGpsMantissa(m, d.refTime)
	d.sink.GpsNav(sv, e)
	return nil
}

func (d *Dispatcher) handleGlonassString(ch, sv int, words [10]uint32) error {
	buf := PackGlonassString(words)
	d.aux.Observe(ch, sv, buf)
	slot, have := d.aux.Slot(sv)
	if !have {
		slot = sv
	}
	hammingOK := CheckHamming(d.cfg, buf)
	m, err := d.gloBuilder.Add(slot, buf, hammingOK)
	if err != nil {
		d.log.Warnf("rnxconv: MID8 GLONASS slot=%d %v\n", slot, err)
		return nil
	}
	if m == nil {
		return nil
	}
	n4, nt := d.glonassCalendar()
	e := ScaleGlonassMantissa(m, n4, nt)
	if freq, ok := d.aux.Freq(slot); ok {
		e.Freq = freq
	}
	d.sink.GlonassNav(slot, e)
	return nil
}

// glonassCalendar derives the GLONASS four-year interval number and
// day-within-interval GlonassToGps needs from the dispatcher's current
// GPS time reference, since classic immediate-data strings never carry
// the calendar fields directly (only the intraday tb).
func (d *Dispatcher) glonassCalendar() (n4, nt int) {
	t := d.refTime.ToGo()
	n4 = (t.Year()-1996)/4 + 1
	return n4, t.YearDay()
}

// handleGpsEphemeris decodes a MID 15 complete-ephemeris message: the
// same subframe 1/2/3 fields as MID 8, but already packed 45 half-words
// wide with the HOW-derived subframe-ID bits zeroed, since this message
// carries no HOW of its own.
func (d *Dispatcher) handleGpsEphemeris(body []byte) error {
	c := NewCursor(body)
	sv, err := c.U1()
	if err != nil {
		return err
	}
	var navW [45]uint16
	for i := range navW {
		w, err := c.U2()
		if err != nil {
			return err
		}
		navW[i] = w
	}
	m, err := DecodeMID15Ephemeris(navW)
	if err != nil {
		d.log.Warnf("rnxconv: MID15 sv=%d %v\n", sv, err)
		return nil
	}
	e := ScaleGpsMantissa(m, d.refTime)
	d.sink.GpsNav(int(sv), e)
	return nil
}

func (d *Dispatcher) handleGlonassEphemeris(body []byte) error {
	c := NewCursor(body)
	sid, err := c.U1()
	if err != nil {
		return err
	}
	if sid != 12 {
		return errBadMID70Header
	}
	flag, err := c.U1()
	if err != nil {
		return err
	}
	if flag != 1 {
		return errBadMID70Header
	}
	if _, err := c.I3(); err != nil { // TAU_GPS, not used by this converter
		return err
	}
	if _, err := c.I4(); err != nil { // TAU_UTC
		return err
	}
	if _, err := c.I2(); err != nil { // B1
		return err
	}
	if _, err := c.I2(); err != nil { // B2
		return err
	}
	n4, err := c.U1()
	if err != nil {
		return err
	}
	if _, err := c.U1(); err != nil { // KP
		return err
	}
	nSvs, err := c.U1()
	if err != nil {
		return err
	}
	for i := 0; i < int(nSvs); i++ {
		if err := d.handleGlonassEphemerisEntry(c, int(n4)); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) handleGlonassEphemerisEntry(c *Cursor, n4 int) error {
	valid, err := c.U1()
	if err != nil {
		return err
	}
	slot, err := c.U1()
	if err != nil {
		return err
	}
	freqOffset, err := c.I1()
	if err != nil {
		return err
	}
	health, err := c.U1()
	if err != nil {
		return err
	}
	day, err := c.U2()
	if err != nil {
		return err
	}
	tbRaw, err := c.U1()
	if err != nil {
		return err
	}
	age, err := c.U1()
	if err != nil {
		return err
	}
	posX, err := c.I4()
	if err != nil {
		return err
	}
	posY, err := c.I4()
	if err != nil {
		return err
	}
	posZ, err := c.I4()
	if err != nil {
		return err
	}
	velX, err := c.I3()
	if err != nil {
		return err
	}
	velY, err := c.I3()
	if err != nil {
		return err
	}
	velZ, err := c.I3()
	if err != nil {
		return err
	}
	accX, err := c.I1()
	if err != nil {
		return err
	}
	accY, err := c.I1()
	if err != nil {
		return err
	}
	accZ, err := c.I1()
	if err != nil {
		return err
	}
	if _, err := c.U1(); err != nil { // group delay, not used by this converter
		return err
	}
	tauN, err := c.I3()
	if err != nil {
		return err
	}
	if valid != 1 || slot == 0 || int(slot) > MaxGlonassSlots {
		d.log.Warnf("rnxconv: MID70 ephemeris not valid for slot=%d\n", slot)
		return nil
	}
	m := &GlonassMantissa{
		Slot:   int(slot),
		Health: int(health),
		Age:    int(age),
		Tb:     int(tbRaw),
		PosX:   posX, PosY: posY, PosZ: posZ,
		VelX: velX, VelY: velY, VelZ: velZ,
		AccX: int32(accX), AccY: int32(accY), AccZ: int32(accZ),
		// the wire field already is the satellite clock bias with the
		// sign GlonassBroadcastOrbitMatrix's row 0 expects negated, so
		// Taun is stored as read: ScaleGlonassMantissa/the matrix layout
		// apply the negation once, not twice.
		Taun: tauN,
	}
	e := ScaleGlonassMantissa(m, n4, int(day))
	e.Freq = int(freqOffset)
	// GammaN is not carried by this message; MID8's almanac-derived
	// table has no use for it either (that table resolves the FDMA
	// channel number, a distinct field), so it stays at the
	// zero-value ScaleGlonassMantissa leaves it at.
	d.sink.GlonassNav(int(slot), e)
	return nil
}
