package rnxconv

/*------------------------------------------------------------------------------
* rinex_types.go : RINEX data model (C6) - header records, observation and
*                   navigation stores, V2/V3 observable-code translation
*
* reference : original_source/CommonClasses/RinexData.h (ClassHeader,
*             RinexData's epoch/header containers), gnssgo/renix.go's Sta/
*             Obs/Nav structs and the V2<->V3 code table in
*             ConvRinexCode2_3
*-----------------------------------------------------------------------------*/

import (
	"golang.org/x/exp/slices"
)

// RinexVersion is a RINEX file format generation this converter targets.
type RinexVersion int

const (
	V210 RinexVersion = 210
	V302 RinexVersion = 302
)

// versionMask is a bitset over the versions a header label is valid for.
type versionMask uint8

const (
	maskV210 versionMask = 1 << iota
	maskV302
	maskBoth = maskV210 | maskV302
)

func (m versionMask) allows(v RinexVersion) bool {
	switch v {
	case V210:
		return m&maskV210 != 0
	case V302:
		return m&maskV302 != 0
	}
	return false
}

// fileRole distinguishes the obligatory/optional/not-applicable status a
// label carries separately for each of the two file roles this converter
// writes, matching RinexData.h's per-file-type obligation table.
type fileRole byte

const (
	roleNotApplicable fileRole = iota
	roleOptional
	roleObligatory
)

// FileKind is the RINEX file role a RinexModel instance is being built
// for; a label's ObsRole or NavRole applies depending on this.
type FileKind byte

const (
	KindObs FileKind = iota
	KindNav
)

// HeaderLabel identifies a header record by the stable name RinexData.h
// enumerates them under, independent of the exact column-61-80 text (which
// HeaderRecord.Text carries and the V2/V3 forms can differ on).
type HeaderLabel string

const (
	LabelVersion  HeaderLabel = "VERSION"
	LabelRunBy    HeaderLabel = "RUNBY"
	LabelComment  HeaderLabel = "COMM"
	LabelMarkName HeaderLabel = "MRKNAME"
	LabelMarkNo   HeaderLabel = "MRKNO"
	LabelMarkType HeaderLabel = "MRKTYPE"
	LabelObserver HeaderLabel = "OBSERVER"
	LabelRecType  HeaderLabel = "RECTYPE"
	LabelAntType  HeaderLabel = "ANTTYPE"
	LabelAppXYZ   HeaderLabel = "APPXYZ"
	LabelAntHen   HeaderLabel = "ANTHEN"
	LabelWvlen    HeaderLabel = "WVLEN"
	LabelTobs     HeaderLabel = "TOBS"
	LabelSys      HeaderLabel = "SYS"
	LabelInt      HeaderLabel = "INT"
	LabelTofo     HeaderLabel = "TOFO"
	LabelTolo     HeaderLabel = "TOLO"
	LabelPhShift  HeaderLabel = "PHSHIFT"
	LabelGloFcn   HeaderLabel = "GLOFCN"
	LabelGloBias  HeaderLabel = "GLOBIAS"
	LabelLeap     HeaderLabel = "LEAP"
	LabelIonC     HeaderLabel = "IONC"
	LabelTimC     HeaderLabel = "TIMC"
	LabelEoh      HeaderLabel = "EOH"
)

// headerLabelInfo is the static, per-label row of RinexData.h's label
// table: the record's fixed columns-61-80 text, which versions it is
// legal under, and whether it is obligatory/optional/not-applicable for
// each of the two file roles this converter writes.
type headerLabelInfo struct {
	text    string
	version versionMask
	obsRole fileRole
	navRole fileRole
}

var headerLabelTable = map[HeaderLabel]headerLabelInfo{
	LabelVersion:  {"RINEX VERSION / TYPE", maskBoth, roleObligatory, roleObligatory},
	LabelRunBy:    {"PGM / RUN BY / DATE", maskBoth, roleObligatory, roleObligatory},
	LabelComment:  {"COMMENT", maskBoth, roleOptional, roleOptional},
	LabelMarkName: {"MARKER NAME", maskBoth, roleObligatory, roleNotApplicable},
	LabelMarkNo:   {"MARKER NUMBER", maskBoth, roleOptional, roleNotApplicable},
	LabelMarkType: {"MARKER TYPE", maskV302, roleOptional, roleNotApplicable},
	LabelObserver: {"OBSERVER / AGENCY", maskBoth, roleObligatory, roleNotApplicable},
	LabelRecType:  {"REC # / TYPE / VERS", maskBoth, roleObligatory, roleNotApplicable},
	LabelAntType:  {"ANT # / TYPE", maskBoth, roleObligatory, roleNotApplicable},
	LabelAppXYZ:   {"APPROX POSITION XYZ", maskBoth, roleOptional, roleNotApplicable},
	LabelAntHen:   {"ANTENNA: DELTA H/E/N", maskBoth, roleObligatory, roleNotApplicable},
	LabelWvlen:    {"WAVELENGTH FACT L1/2", maskV210, roleObligatory, roleNotApplicable},
	LabelTobs:     {"# / TYPES OF OBSERV", maskV210, roleObligatory, roleNotApplicable},
	LabelSys:      {"SYS / # / OBS TYPES", maskV302, roleObligatory, roleNotApplicable},
	LabelInt:      {"INTERVAL", maskBoth, roleOptional, roleNotApplicable},
	LabelTofo:     {"TIME OF FIRST OBS", maskBoth, roleObligatory, roleNotApplicable},
	LabelTolo:     {"TIME OF LAST OBS", maskBoth, roleOptional, roleNotApplicable},
	LabelPhShift:  {"SYS / PHASE SHIFT", maskV302, roleOptional, roleNotApplicable},
	LabelGloFcn:   {"GLONASS SLOT / FRQ #", maskV302, roleOptional, roleNotApplicable},
	LabelGloBias:  {"GLONASS COD/PHS/BIS", maskV302, roleOptional, roleNotApplicable},
	LabelLeap:     {"LEAP SECONDS", maskBoth, roleOptional, roleOptional},
	LabelIonC:     {"IONOSPHERIC CORR", maskV302, roleOptional, roleOptional},
	LabelTimC:     {"TIME SYSTEM CORR", maskV302, roleOptional, roleOptional},
	LabelEoh:      {"END OF HEADER", maskBoth, roleObligatory, roleObligatory},
}

// HeaderRecord is one entry of the ordered header list: a label, whether
// it currently carries data, and an untyped payload whose shape depends
// on the label (a string for RunBy/MarkName, a [3]float64 for AppXYZ, a
// *GnssSystem for Sys/Tobs, and so on — the reader and writer each know
// the shape for the labels they handle).
type HeaderRecord struct {
	Label   HeaderLabel
	HasData bool
	Payload interface{}

	// Comments that were authored immediately before this record and
	// must be re-emitted in that position, preserving RinexData's
	// comment-follows-a-record bookkeeping.
	commentsBefore []string
}

func newHeaderRecord(label HeaderLabel) *HeaderRecord {
	return &HeaderRecord{Label: label}
}

func (r *HeaderRecord) info() headerLabelInfo {
	info, ok := headerLabelTable[r.Label]
	if !ok {
		return headerLabelInfo{text: string(r.Label), version: maskBoth, obsRole: roleOptional, navRole: roleOptional}
	}
	return info
}

// role returns the obligatory/optional/not-applicable status for kind.
func (r *HeaderRecord) role(kind FileKind) fileRole {
	info := r.info()
	if kind == KindNav {
		return info.navRole
	}
	return info.obsRole
}

// GnssSystem is the observable-type table and satellite/observable
// selection state for one GNSS constellation, keyed by its RINEX system
// letter.
type GnssSystem struct {
	System      byte
	Observables []string        // e.g. "C1C","L1C","D1C","S1C"
	Selected    map[string]bool // observable -> selected (default true when absent)
	SelectedSat []int           // explicit PRN allow-list; empty means "all"
}

// NewGnssSystem returns a system entry with every observable selected by
// default, matching RinexData's "nothing excluded until asked" default.
func NewGnssSystem(system byte, observables []string) *GnssSystem {
	return &GnssSystem{System: system, Observables: append([]string(nil), observables...), Selected: make(map[string]bool)}
}

// IsSelected reports whether obs is selected for this system (true unless
// explicitly deselected).
func (g *GnssSystem) IsSelected(obs string) bool {
	if v, ok := g.Selected[obs]; ok {
		return v
	}
	return true
}

// SatSelected reports whether sat is allowed by this system's explicit
// PRN list (an empty list accepts every satellite).
func (g *GnssSystem) SatSelected(sat int) bool {
	if len(g.SelectedSat) == 0 {
		return true
	}
	return slices.Contains(g.SelectedSat, sat)
}

// ObsRecord is one observation value: a single satellite, observable and
// epoch, carrying the loss-of-lock indicator and signal strength RINEX
// prints alongside the value.
type ObsRecord struct {
	Time       float64 // seconds since GPS epoch
	System     byte
	Sat        int
	ObsType    string // e.g. "L1C"
	Value      float64
	LLI        int
	Strength   float64
}

// obsLess orders records by (time, system, satellite, observable-type),
// the key the data model's invariants require.
func obsLess(a, b ObsRecord) int {
	switch {
	case a.Time != b.Time:
		return cmpFloat(a.Time, b.Time)
	case a.System != b.System:
		return int(a.System) - int(b.System)
	case a.Sat != b.Sat:
		return a.Sat - b.Sat
	default:
		return cmpString(a.ObsType, b.ObsType)
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// NavRecord is one broadcast ephemeris: GPS carries an 8x4 matrix,
// GLONASS/SBAS a 4x4 one (BroadcastOrbit.Dims reports which).
type NavRecord struct {
	Time           float64
	System         byte
	Sat            int
	BroadcastOrbit Matrix
}

// Matrix is the minimal row/column accessor the writer needs; satisfied
// by *mat.Dense (see ephemeris.go's GpsBroadcastOrbitMatrix/
// GlonassBroadcastOrbitMatrix).
type Matrix interface {
	Dims() (r, c int)
	At(i, j int) float64
}

func navLess(a, b NavRecord) int {
	switch {
	case a.Time != b.Time:
		return cmpFloat(a.Time, b.Time)
	case a.System != b.System:
		return int(a.System) - int(b.System)
	default:
		return a.Sat - b.Sat
	}
}

// codeTranslation is the RINEX 2<->3 observable-code table this model
// attaches, matching spec's fixed pairs (and ConvRinexCode2_3's superset
// of them for the codes this converter actually emits).
var v2to3 = map[string]string{
	"L1": "L1C", "L2": "L2P", "C1": "C1C", "P1": "C1P", "P2": "C2P",
	"D1": "D1C", "D2": "D2P", "S1": "S1C", "S2": "S2P",
}

var v3to2 map[string]string

func init() {
	v3to2 = make(map[string]string, len(v2to3))
	for v2, v3 := range v2to3 {
		v3to2[v3] = v2
	}
}

// ObsCodeV3 translates a V2.10 two-character observable code into its
// V3.02 three-character equivalent; unknown codes pass through unchanged.
func ObsCodeV3(code string) string {
	if v3, ok := v2to3[code]; ok {
		return v3
	}
	return code
}

// ObsCodeV2 is ObsCodeV3's inverse.
func ObsCodeV2(code string) string {
	if v2, ok := v3to2[code]; ok {
		return v2
	}
	return code
}

// RinexModel is C6's container: the ordered header list, the per-system
// observable tables, and the sortable observation/navigation stores.
// A RinexModel is built for one FileKind at a time (the role governs
// which of a label's two obligation flags the writer/reader honor).
type RinexModel struct {
	Kind    FileKind
	Version RinexVersion

	headers      []*HeaderRecord
	headerByLbl  map[HeaderLabel]*HeaderRecord
	Systems      map[byte]*GnssSystem

	Obs []ObsRecord
	Nav []NavRecord

	pendingComments []string
	filter          *filterState
}

// NewRinexModel returns an empty model for the given file role, with
// every known header label present (so first_label/next_label can cursor
// over it) but marked as not yet carrying data.
func NewRinexModel(kind FileKind, version RinexVersion) *RinexModel {
	m := &RinexModel{
		Kind:        kind,
		Version:     version,
		headerByLbl: make(map[HeaderLabel]*HeaderRecord),
		Systems:     make(map[byte]*GnssSystem),
	}
	for _, label := range defaultLabelOrder {
		r := newHeaderRecord(label)
		m.headers = append(m.headers, r)
		m.headerByLbl[label] = r
	}
	return m
}

// defaultLabelOrder is the order a freshly constructed header carries its
// labels in before any insertion/re-ordering by the reader; it is also
// the order the writer falls back to when nothing repositioned a label.
var defaultLabelOrder = []HeaderLabel{
	LabelVersion, LabelRunBy, LabelComment, LabelMarkName, LabelMarkNo, LabelMarkType,
	LabelObserver, LabelRecType, LabelAntType, LabelAppXYZ, LabelAntHen,
	LabelWvlen, LabelTobs, LabelSys, LabelInt, LabelTofo, LabelTolo,
	LabelPhShift, LabelGloFcn, LabelGloBias, LabelLeap, LabelIonC, LabelTimC,
	LabelEoh,
}

// Header returns the record for label, creating it at the end of the
// ordered list if the model has never seen it (the reader's path for an
// out-of-table label it still wants to preserve verbatim).
func (m *RinexModel) Header(label HeaderLabel) *HeaderRecord {
	if r, ok := m.headerByLbl[label]; ok {
		return r
	}
	r := newHeaderRecord(label)
	m.headers = append(m.headers, r)
	m.headerByLbl[label] = r
	return r
}

// SetHeader stores a label's payload and marks it as carrying data. Any
// comments queued since the last SetHeader are attached to precede this
// record, per the data model's comment-placement rule.
func (m *RinexModel) SetHeader(label HeaderLabel, payload interface{}) {
	r := m.Header(label)
	r.Payload = payload
	r.HasData = true
	if len(m.pendingComments) > 0 {
		r.commentsBefore = append(r.commentsBefore, m.pendingComments...)
		m.pendingComments = nil
	}
}

// FirstLabel/NextLabel are the data model's cursor pair: they walk the
// ordered header list skipping entries with no data (EOH is always
// considered to have data, per the invariant).
func (m *RinexModel) FirstLabel() *HeaderRecord {
	return m.NextLabel(-1)
}

// NextLabel returns the first header record after index idx (an index
// into the internal ordered slice, -1 meaning "before the first") with
// data, or nil at the end of the list.
func (m *RinexModel) NextLabel(idx int) *HeaderRecord {
	for i := idx + 1; i < len(m.headers); i++ {
		if m.headers[i].HasData || m.headers[i].Label == LabelEoh {
			return m.headers[i]
		}
	}
	return nil
}

// indexOf returns r's position in the ordered header list, or -1.
func (m *RinexModel) indexOf(r *HeaderRecord) int {
	for i, h := range m.headers {
		if h == r {
			return i
		}
	}
	return -1
}

// AddComment appends text to the comments queued to precede the next
// record the caller installs with SetHeader (matching the data model's
// "comment remembers which record it should precede" rule).
func (m *RinexModel) AddComment(text string) {
	m.pendingComments = append(m.pendingComments, text)
}

// AddObs appends one observation record to the epoch store. The caller
// is responsible for keeping all records of one epoch at the same time
// tag; AddObs does not itself enforce the invariant beyond recording
// whatever tag the first record of a freshly cleared store carries.
func (m *RinexModel) AddObs(r ObsRecord) {
	m.Obs = append(m.Obs, r)
}

// ClearObs drains the epoch observation store (the writer calls this
// after emitting one epoch; a driver wanting to discard an epoch without
// writing it can call this directly).
func (m *RinexModel) ClearObs() {
	m.Obs = m.Obs[:0]
}

// SortObs orders the epoch store by the data model's required key.
func (m *RinexModel) SortObs() {
	slices.SortFunc(m.Obs, obsLess)
}

// AddNav inserts a navigation record only if no prior record shares its
// (time, system, satellite) key, per the data model's uniqueness
// invariant.
func (m *RinexModel) AddNav(r NavRecord) {
	for _, existing := range m.Nav {
		if existing.Time == r.Time && existing.System == r.System && existing.Sat == r.Sat {
			return
		}
	}
	m.Nav = append(m.Nav, r)
}

// SortNav orders the whole-file navigation store by the data model's key.
func (m *RinexModel) SortNav() {
	slices.SortFunc(m.Nav, navLess)
}

// DrainNavBefore removes and returns every navigation record with a time
// tag at or before cutoff, the writer's incremental-drain access pattern.
func (m *RinexModel) DrainNavBefore(cutoff float64) []NavRecord {
	var out []NavRecord
	m.Nav = slices.DeleteFunc(m.Nav, func(r NavRecord) bool {
		if r.Time <= cutoff {
			out = append(out, r)
			return true
		}
		return false
	})
	return out
}
