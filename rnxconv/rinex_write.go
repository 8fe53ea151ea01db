package rnxconv

/*------------------------------------------------------------------------------
* rinex_write.go : RINEX writer (C8) - emits a RinexModel as a syntactically
*                   valid observation or navigation file, V2.10 or V3.02
*
* reference : gnssgo/renix.go's OutRnxObsHeader/OutRnxObsBody/OutRnxNavBody
*             field layout and fmt.Sprintf column widths; original_source/
*             CommonClasses/RinexData.cpp's printObsHeader/saveObsData/
*             printNavEpoch obligation-flag and continuation-line handling
*-----------------------------------------------------------------------------*/

import (
	"fmt"
	"io"
	"math"
)

// navFloatDigits is the mantissa width OutNavf uses for every broadcast
// orbit field: " -.123456789012D+04" fixed-width scientific notation.
const navFloatDigits = 12

// RinexWriterOptions carries the header facts a driver supplies once,
// matching RnxOpt's RunBy/Marker/Rec/Ant/AppPos fields.
type RinexWriterOptions struct {
	Program      string
	RunBy        string
	Marker       string
	Observer     string
	Agency       string
	ReceiverNo   string
	ReceiverType string
	ReceiverVers string
	AntennaNo    string
	AntennaType  string
	ApproxPos    [3]float64
	AntennaDelta [3]float64
}

// epochFields is Time2Epoch's Go equivalent: year, month, day, hour,
// minute, fractional second.
func epochFields(t Time) [6]float64 {
	u := t.ToGo()
	sec := float64(u.Second()) + float64(u.Nanosecond())/1e9
	return [6]float64{
		float64(u.Year()), float64(u.Month()), float64(u.Day()),
		float64(u.Hour()), float64(u.Minute()), sec,
	}
}

// navf writes one broadcast-orbit field in RINEX's fixed-width
// scientific-notation style, matching OutNavf_n.
func navf(w io.Writer, value float64) {
	if value == 0 {
		fmt.Fprintf(w, " %s%0*dD%+03d", " .", navFloatDigits, 0, 0)
		return
	}
	e := math.Floor(math.Log10(math.Abs(value)) + 1.0)
	sign := " "
	if value < 0 {
		sign = "-"
	}
	mantissa := math.Abs(value) / math.Pow(10.0, e-float64(navFloatDigits))
	fmt.Fprintf(w, " %s.%0*.0fD%+03.0f", sign, navFloatDigits, mantissa, e)
}

// obsf writes one observation field: 14.3f value, or 14 blanks if the
// value is zero or out of RINEX's representable range, followed by the
// 1-digit LLI and the 1-digit signal-strength indicator (each blank when
// zero or unset), matching OutRnxObsf.
func obsf(w io.Writer, value float64, lli, strength int) {
	if value == 0.0 || value <= -1e9 || value >= 1e9 {
		io.WriteString(w, "              ")
	} else {
		fmt.Fprintf(w, "%14.3f", value)
	}
	if lli <= 0 {
		io.WriteString(w, " ")
	} else {
		fmt.Fprintf(w, "%1d", lli&7)
	}
	if strength <= 0 {
		io.WriteString(w, " ")
	} else {
		fmt.Fprintf(w, "%1d", strength&15)
	}
}

// WriteObsHeader emits m's header records to w for the model's target
// version, honoring each label's version mask and obligation flag.
func WriteObsHeader(w io.Writer, m *RinexModel, opt RinexWriterOptions) error {
	return writeHeader(w, m, KindObs, opt)
}

// WriteNavHeader emits a navigation file header.
func WriteNavHeader(w io.Writer, m *RinexModel, opt RinexWriterOptions) error {
	return writeHeader(w, m, KindNav, opt)
}

func writeHeader(w io.Writer, m *RinexModel, kind FileKind, opt RinexWriterOptions) error {
	fileType := "OBSERVATION DATA"
	sysLabel := rinexSysLabel(m)
	if kind == KindNav {
		fileType = "N: GNSS NAV DATA"
	}
	fmt.Fprintf(w, "%9.2f%-11s%-20s%-20s%-20s\n", float64(m.Version)/100.0, "",
		fileType, sysLabel, headerLabelTable[LabelVersion].text)
	fmt.Fprintf(w, "%-20.20s%-20.20s%-20.20s%-20s\n", opt.Program, opt.RunBy, "",
		headerLabelTable[LabelRunBy].text)

	for _, r := range m.headers {
		if r.Label == LabelVersion || r.Label == LabelRunBy || r.Label == LabelEoh {
			continue
		}
		if !r.role(kind).writable() {
			continue
		}
		info := r.info()
		if !info.version.allows(m.Version) {
			continue
		}
		for _, c := range r.commentsBefore {
			fmt.Fprintf(w, "%-60.60s%-20s\n", c, headerLabelTable[LabelComment].text)
		}
		if !r.HasData {
			if r.role(kind) == roleObligatory {
				// an obligatory record with nothing to print is a
				// warning, not a write failure: the file is still
				// syntactically valid without it.
			}
			continue
		}
		if err := writeHeaderRecord(w, r, m, kind, opt); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "%-60.60s%-20s\n", "", headerLabelTable[LabelEoh].text)
	return nil
}

func (role fileRole) writable() bool { return role != roleNotApplicable }

func rinexSysLabel(m *RinexModel) string {
	switch len(m.Systems) {
	case 0:
		return "M: Mixed"
	case 1:
		for sys := range m.Systems {
			switch sys {
			case 'G':
				return "G: GPS"
			case 'R':
				return "R: GLONASS"
			case 'S':
				return "S: SBAS Payload"
			case 'E':
				return "E: Galileo"
			}
		}
	}
	return "M: Mixed"
}

func writeHeaderRecord(w io.Writer, r *HeaderRecord, m *RinexModel, kind FileKind, opt RinexWriterOptions) error {
	switch r.Label {
	case LabelMarkName:
		fmt.Fprintf(w, "%-60.60s%-20s\n", opt.Marker, r.info().text)
	case LabelObserver:
		fmt.Fprintf(w, "%-20.20s%-40.40s%-20s\n", opt.Observer, opt.Agency, r.info().text)
	case LabelRecType:
		fmt.Fprintf(w, "%-20.20s%-20.20s%-20.20s%-20s\n", opt.ReceiverNo, opt.ReceiverType, opt.ReceiverVers, r.info().text)
	case LabelAntType:
		fmt.Fprintf(w, "%-20.20s%-20.20s%-20s%-20s\n", opt.AntennaNo, opt.AntennaType, "", r.info().text)
	case LabelAppXYZ:
		fmt.Fprintf(w, "%14.4f%14.4f%14.4f%-18s%-20s\n", opt.ApproxPos[0], opt.ApproxPos[1], opt.ApproxPos[2], "", r.info().text)
	case LabelAntHen:
		fmt.Fprintf(w, "%14.4f%14.4f%14.4f%-18s%-20s\n", opt.AntennaDelta[0], opt.AntennaDelta[1], opt.AntennaDelta[2], "", r.info().text)
	case LabelTobs:
		writeTobsV210(w, m)
	case LabelSys:
		writeSysV302(w, m)
	case LabelInt:
		if v, ok := r.Payload.(float64); ok {
			fmt.Fprintf(w, "%10.3f%50s%-20s\n", v, "", r.info().text)
		}
	case LabelTofo, LabelTolo:
		if t, ok := r.Payload.(Time); ok {
			ep := epochFields(t)
			fmt.Fprintf(w, "  %04.0f    %02.0f    %02.0f    %02.0f    %02.0f   %010.7f     %-12s%-20s\n",
				ep[0], ep[1], ep[2], ep[3], ep[4], ep[5], "GPS", r.info().text)
		}
	case LabelLeap:
		if v, ok := r.Payload.(int); ok {
			fmt.Fprintf(w, "%6d%54s%-20s\n", v, "", r.info().text)
		}
	default:
		if s, ok := r.Payload.(string); ok {
			fmt.Fprintf(w, "%-60.60s%-20s\n", s, r.info().text)
		}
	}
	return nil
}

func writeTobsV210(w io.Writer, m *RinexModel) {
	var codes []string
	for _, sys := range []byte{'G', 'R', 'S', 'E'} {
		s, ok := m.Systems[sys]
		if !ok {
			continue
		}
		for _, c := range s.Observables {
			v2 := ObsCodeV2(c)
			already := false
			for _, existing := range codes {
				if existing == v2 {
					already = true
					break
				}
			}
			if !already {
				codes = append(codes, v2)
			}
		}
	}
	fmt.Fprintf(w, "%6d", len(codes))
	for i, c := range codes {
		if i > 0 && i%9 == 0 {
			fmt.Fprintf(w, "\n%6s", "")
		}
		fmt.Fprintf(w, "%6s", c)
	}
	fmt.Fprintf(w, "%-20s\n", headerLabelTable[LabelTobs].text)
}

func writeSysV302(w io.Writer, m *RinexModel) {
	for _, sys := range []byte{'G', 'R', 'S', 'E'} {
		s, ok := m.Systems[sys]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%c  %3d", s.System, len(s.Observables))
		for i, c := range s.Observables {
			if i > 0 && i%13 == 0 {
				fmt.Fprintf(w, "%-20s\n      ", headerLabelTable[LabelSys].text)
			}
			fmt.Fprintf(w, " %3s", c)
		}
		pad := 13 - len(s.Observables)%13
		if len(s.Observables)%13 == 0 {
			pad = 0
		}
		fmt.Fprintf(w, "%*s%-20s\n", pad*4, "", headerLabelTable[LabelSys].text)
	}
}

// WriteObsEpoch writes one epoch's already-sorted, already-filtered
// observation records as a single V2.10 or V3.02 epoch block.
func WriteObsEpoch(w io.Writer, m *RinexModel, flag int) error {
	if len(m.Obs) == 0 {
		return nil
	}
	ep := epochFields(FromSinceGpsEpoch(m.Obs[0].Time))

	type satGroup struct {
		sys byte
		sat int
		rec []ObsRecord
	}
	var groups []satGroup
	for _, r := range m.Obs {
		if n := len(groups); n > 0 && groups[n-1].sys == r.System && groups[n-1].sat == r.Sat {
			groups[n-1].rec = append(groups[n-1].rec, r)
			continue
		}
		groups = append(groups, satGroup{sys: r.System, sat: r.Sat, rec: []ObsRecord{r}})
	}

	if m.Version <= V210 {
		fmt.Fprintf(w, " %02d %02.0f %02.0f %02.0f %02.0f %010.7f  %d%3d",
			int(ep[0])%100, ep[1], ep[2], ep[3], ep[4], ep[5], flag, len(groups))
		for i, g := range groups {
			if i > 0 && i%12 == 0 {
				fmt.Fprintf(w, "\n%32s", "")
			}
			fmt.Fprintf(w, "%-3s", satID(g.sys, g.sat))
		}
		io.WriteString(w, "\n")
		for _, g := range groups {
			for j, r := range g.rec {
				if j > 0 && j%5 == 0 {
					io.WriteString(w, "\n")
				}
				obsf(w, r.Value, r.LLI, int(r.Strength))
			}
			io.WriteString(w, "\n")
		}
		return nil
	}

	fmt.Fprintf(w, "> %04.0f %02.0f %02.0f %02.0f %02.0f %010.7f  %d%3d%21s\n",
		ep[0], ep[1], ep[2], ep[3], ep[4], ep[5], flag, len(groups), "")
	for _, g := range groups {
		fmt.Fprintf(w, "%-3s", satID(g.sys, g.sat))
		for _, r := range g.rec {
			obsf(w, r.Value, r.LLI, int(r.Strength))
		}
		io.WriteString(w, "\n")
	}
	return nil
}

func satID(sys byte, sat int) string {
	return fmt.Sprintf("%c%02d", sys, sat)
}

// rinexObsCodes is the fixed observable set this converter emits per
// system: pseudorange, carrier phase, Doppler and signal strength on L1,
// matching the fields ObsSample carries out of the dispatcher.
var rinexObsCodes = []string{"C1C", "L1C", "D1C", "S1C"}

// RinexSink is the C8 side of the Sink interface dispatch.go routes to:
// it turns each dispatched record into RinexModel entries and writes
// them out immediately, rather than buffering a whole file in memory.
type RinexSink struct {
	obsW, navW io.Writer
	opt        RinexWriterOptions
	ObsModel   *RinexModel
	NavModel   *RinexModel

	obsHeaderWritten bool
	navHeaderWritten bool

	// EpochsIn and EpochsOut let a driver tell "no data reached this
	// sink" apart from "the filter rejected every epoch it saw": EpochsIn
	// counts every Obs() call, EpochsOut only those that still had at
	// least one record after ApplyObsFilter.
	EpochsIn  int
	EpochsOut int
}

// NewRinexSink returns a Sink writing an observation file to obsW and a
// navigation file to navW at the given target version.
func NewRinexSink(obsW, navW io.Writer, version RinexVersion, opt RinexWriterOptions) *RinexSink {
	obsModel := NewRinexModel(KindObs, version)
	navModel := NewRinexModel(KindNav, version)
	for _, sys := range []byte{'G', 'R', 'S'} {
		obsModel.Systems[sys] = NewGnssSystem(sys, rinexObsCodes)
	}
	return &RinexSink{obsW: obsW, navW: navW, opt: opt, ObsModel: obsModel, NavModel: navModel}
}

func (s *RinexSink) Position(t Time, x, y, z float64, nsv int) {
	s.opt.ApproxPos = [3]float64{x, y, z}
}

func (s *RinexSink) ReceiverID(swVersion, receiverName, swCustomer string) {
	s.opt.ReceiverVers = swVersion
	s.opt.ReceiverType = receiverName
	s.opt.ReceiverNo = swCustomer
}

func (s *RinexSink) Obs(e Epoch) {
	if !s.obsHeaderWritten {
		t := Time{Week: e.Week, Tow: e.Tow}
		s.ObsModel.SetHeader(LabelTofo, t)
		WriteObsHeader(s.obsW, s.ObsModel, s.opt)
		s.obsHeaderWritten = true
	}
	tag := Time{Week: e.Week, Tow: e.Tow}.SinceGpsEpoch()
	for _, sample := range e.Samples {
		strength := float64(sample.StrengthIndex)
		s.ObsModel.AddObs(ObsRecord{Time: tag, System: sample.System, Sat: sample.Sat, ObsType: "C1C", Value: sample.Pseudorange, Strength: strength})
		s.ObsModel.AddObs(ObsRecord{Time: tag, System: sample.System, Sat: sample.Sat, ObsType: "L1C", Value: sample.CarrierPhase, Strength: strength})
		s.ObsModel.AddObs(ObsRecord{Time: tag, System: sample.System, Sat: sample.Sat, ObsType: "D1C", Value: sample.CarrierFreq, Strength: strength})
		s.ObsModel.AddObs(ObsRecord{Time: tag, System: sample.System, Sat: sample.Sat, ObsType: "S1C", Value: sample.SignalStrength, Strength: strength})
	}
	s.ObsModel.SortObs()
	s.ObsModel.ApplyObsFilter()
	s.EpochsIn++
	if len(s.ObsModel.Obs) > 0 {
		s.EpochsOut++
	}
	WriteObsEpoch(s.obsW, s.ObsModel, 0)
	s.ObsModel.ClearObs()
}

func (s *RinexSink) GpsNav(sat int, e *GpsEphemeris) {
	s.writeNav(NavRecord{Time: e.Toc.SinceGpsEpoch(), System: 'G', Sat: sat, BroadcastOrbit: GpsBroadcastOrbitMatrix(e)})
}

func (s *RinexSink) GlonassNav(sat int, e *GlonassEphemeris) {
	s.writeNav(NavRecord{Time: e.Toe.SinceGpsEpoch(), System: 'R', Sat: sat, BroadcastOrbit: GlonassBroadcastOrbitMatrix(e)})
}

func (s *RinexSink) writeNav(r NavRecord) {
	if !s.navHeaderWritten {
		WriteNavHeader(s.navW, s.NavModel, s.opt)
		s.navHeaderWritten = true
	}
	s.NavModel.AddNav(r)
	s.NavModel.ApplyNavFilter()
	for _, rec := range s.NavModel.DrainNavBefore(r.Time) {
		WriteNavEpoch(s.navW, rec)
	}
}

// WriteNavEpoch writes one navigation record's broadcast-orbit block:
// eight 4-field lines for GPS, four for GLONASS/SBAS, matching
// OutRnxNavBody's continuation-line layout.
func WriteNavEpoch(w io.Writer, r NavRecord) error {
	rows, cols := r.BroadcastOrbit.Dims()
	if cols != 4 {
		return fmt.Errorf("rnxconv: broadcast orbit matrix has %d columns, want 4", cols)
	}
	ep := epochFields(FromSinceGpsEpoch(r.Time))
	if r.System == 'G' {
		fmt.Fprintf(w, "%-3s %04.0f %02.0f %02.0f %02.0f %02.0f %02.0f", satID(r.System, r.Sat),
			ep[0], ep[1], ep[2], ep[3], ep[4], ep[5])
	} else {
		fmt.Fprintf(w, "%-3s %04.0f %02.0f %02.0f %02.0f %02.0f %02.0f", satID(r.System, r.Sat),
			ep[0], ep[1], ep[2], ep[3], ep[4], ep[5])
	}
	navf(w, r.BroadcastOrbit.At(0, 1))
	navf(w, r.BroadcastOrbit.At(0, 2))
	navf(w, r.BroadcastOrbit.At(0, 3))
	io.WriteString(w, "\n")
	for row := 1; row < rows; row++ {
		io.WriteString(w, "    ")
		for col := 0; col < cols; col++ {
			navf(w, r.BroadcastOrbit.At(row, col))
		}
		io.WriteString(w, "\n")
	}
	return nil
}
