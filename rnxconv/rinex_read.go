package rnxconv

/*------------------------------------------------------------------------------
* rinex_read.go : RINEX reader (C7) - fixed-column header and epoch parsing
*                 for versions 2.10 and 3.02
*
* reference : gnssgo/renix.go's ReadRnxHeader/DecodeObsHeader/
*             Decode_ObsEpoch/ReadRnxObsBody column layout, original_source/
*             CommonClasses/RinexData.cpp's readRinexHeader ordering checks
*-----------------------------------------------------------------------------*/

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"
)

// EpochStatus is the small return-code space ReadObsEpoch reports,
// matching RinexData.cpp's epoch read result codes.
type EpochStatus int

const (
	EpochEndOfFile EpochStatus = iota
	EpochOk
	EpochOkNewEpoch
	EpochBadObs
	EpochBadEpoch
	EpochSiteEventMissingMarker
	EpochSpecialRecordError
	EpochExternalEventMissingDate
	EpochBadFlag
	EpochUnsupportedVersion
)

// labelColumn is the fixed column (0-based) RINEX's columns 61-80
// (1-based) begin at.
const labelColumn = 60

// recordLabel extracts the trimmed columns-61-80 text from a header line,
// or "" if the line is too short to carry one.
func recordLabel(line string) string {
	if len(line) <= labelColumn {
		return ""
	}
	return strings.TrimSpace(line[labelColumn:])
}

// labelByText inverts headerLabelTable for the reader's lookup direction.
var labelByText map[string]HeaderLabel

func init() {
	labelByText = make(map[string]HeaderLabel, len(headerLabelTable))
	for label, info := range headerLabelTable {
		labelByText[info.text] = label
	}
}

// ReadHeader reads header lines from r into a fresh RinexModel for kind,
// until END OF HEADER or EOF. Unknown labels are recorded verbatim
// (HasData stays false, Payload carries the raw line) rather than
// rejected outright, matching "NoLabel" being a warning, not an abort.
// Out-of-order records (SYS/TOBS after DCBS/SCALE/PRNOBS, anything before
// VERSION) are logged as warnings via log; parsing continues regardless.
func ReadHeader(r *bufio.Reader, kind FileKind, log *Logger) (*RinexModel, error) {
	var version RinexVersion = V210
	sawVersion := false
	sawTobsOrSys := false

	// peek the VERSION line first so the model is constructed with the
	// right target version before any other record is parsed.
	var lines []string
	for {
		line, err := r.ReadString('\n')
		if line == "" && err != nil {
			break
		}
		lines = append(lines, line)
		if recordLabel(line) == headerLabelTable[LabelVersion].text {
			verNum, _ := strconv.ParseFloat(strings.TrimSpace(line[:9]), 64)
			if verNum >= 3.0 {
				version = V302
			}
			sawVersion = true
		}
		if recordLabel(line) == headerLabelTable[LabelEoh].text || err != nil {
			break
		}
	}
	if !sawVersion {
		log.Warnf("rnxconv: header has no RINEX VERSION / TYPE record\n")
	}

	m := NewRinexModel(kind, version)
	for _, line := range lines {
		label := recordLabel(line)
		switch label {
		case headerLabelTable[LabelVersion].text:
			m.SetHeader(LabelVersion, strings.TrimSpace(line[:9]))
			continue
		case headerLabelTable[LabelRunBy].text:
			m.SetHeader(LabelRunBy, strings.TrimSpace(line[:20]))
			continue
		case headerLabelTable[LabelComment].text:
			m.AddComment(strings.TrimRight(line[:60], " "))
			continue
		case headerLabelTable[LabelEoh].text:
			m.SetHeader(LabelEoh, nil)
			continue
		}
		known, ok := labelByText[label]
		if !ok {
			if label != "" {
				log.Warnf("rnxconv: unrecognized header label %q\n", label)
			}
			continue
		}
		if (known == LabelSys || known == LabelTobs) {
			sawTobsOrSys = true
		}
		if !sawTobsOrSys && (known == LabelPhShift || known == LabelGloFcn || known == LabelGloBias) {
			log.Warnf("rnxconv: %q appears before SYS / # / OBS TYPES\n", label)
		}
		readKnownRecord(m, known, line, log)
	}
	return m, nil
}

func readKnownRecord(m *RinexModel, label HeaderLabel, line string, log *Logger) {
	switch label {
	case LabelMarkName:
		m.SetHeader(label, strings.TrimSpace(line[:60]))
	case LabelAppXYZ:
		var pos [3]float64
		pos[0], _ = strconv.ParseFloat(strings.TrimSpace(line[0:14]), 64)
		pos[1], _ = strconv.ParseFloat(strings.TrimSpace(line[14:28]), 64)
		pos[2], _ = strconv.ParseFloat(strings.TrimSpace(line[28:42]), 64)
		m.SetHeader(label, pos)
	case LabelAntHen:
		var d [3]float64
		d[0], _ = strconv.ParseFloat(strings.TrimSpace(line[0:14]), 64)
		d[1], _ = strconv.ParseFloat(strings.TrimSpace(line[14:28]), 64)
		d[2], _ = strconv.ParseFloat(strings.TrimSpace(line[28:42]), 64)
		m.SetHeader(label, d)
	case LabelInt:
		v, _ := strconv.ParseFloat(strings.TrimSpace(line[0:10]), 64)
		m.SetHeader(label, v)
	case LabelLeap:
		v, _ := strconv.Atoi(strings.TrimSpace(line[0:6]))
		m.SetHeader(label, v)
	case LabelTobs:
		readTobsV210(m, line)
	case LabelSys:
		readSysV302(m, line, log)
	default:
		m.SetHeader(label, strings.TrimRight(line[:labelColumn], " "))
	}
}

func readTobsV210(m *RinexModel, line string) {
	n, _ := strconv.Atoi(strings.TrimSpace(line[0:6]))
	var codes []string
	for i := 0; i < n && i < 9; i++ {
		col := 6 + i*6
		if col+6 > len(line) {
			break
		}
		codes = append(codes, strings.TrimSpace(line[col:col+6]))
	}
	sys := NewGnssSystem('G', obsCodesToV3(codes))
	m.Systems['G'] = sys
	m.SetHeader(LabelTobs, codes)
}

func obsCodesToV3(codes []string) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = ObsCodeV3(c)
	}
	return out
}

func readSysV302(m *RinexModel, line string, log *Logger) {
	if len(line) < 7 {
		return
	}
	sysChar := line[0]
	n, err := strconv.Atoi(strings.TrimSpace(line[3:6]))
	if err != nil {
		log.Warnf("rnxconv: bad SYS / # / OBS TYPES count in %q\n", line)
		return
	}
	sys, ok := m.Systems[sysChar]
	if !ok {
		sys = NewGnssSystem(sysChar, nil)
		m.Systems[sysChar] = sys
	}
	for i := 0; i < n && i < 13; i++ {
		col := 7 + i*4
		if col+3 > len(line) {
			break
		}
		sys.Observables = append(sys.Observables, strings.TrimSpace(line[col:col+3]))
	}
	m.SetHeader(LabelSys, nil)
}

// ReadObsEpoch reads one epoch's header line (and, for V2.10, any
// satellite-id continuation lines) and returns the satellite list the
// caller should then pass to ReadObsValues, which reads the actual
// measurement lines.
func ReadObsEpoch(r *bufio.Reader, version RinexVersion) (t Time, flag int, sats []string, status EpochStatus) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return Time{}, 0, nil, EpochEndOfFile
	}
	if version <= V210 {
		if len(line) < 32 {
			return Time{}, 0, nil, EpochBadEpoch
		}
		n, _ := strconv.Atoi(strings.TrimSpace(line[29:32]))
		flag, _ = strconv.Atoi(strings.TrimSpace(line[28:29]))
		if flag >= 3 && flag <= 5 {
			return Time{}, flag, nil, EpochSpecialRecordError
		}
		t, err = parseV210EpochDate(line[:26])
		if err != nil {
			return Time{}, flag, nil, EpochBadEpoch
		}
		for i, col := 0, 32; i < n; i, col = i+1, col+3 {
			if col+3 > len(line) {
				line, err = r.ReadString('\n')
				if err != nil && line == "" {
					break
				}
				col = 32
			}
			if col+3 > len(line) {
				break
			}
			sats = append(sats, strings.TrimSpace(line[col:col+3]))
		}
		return t, flag, sats, EpochOk
	}

	if len(line) < 35 || line[0] != '>' {
		return Time{}, 0, nil, EpochBadEpoch
	}
	n, _ := strconv.Atoi(strings.TrimSpace(line[32:35]))
	flag, _ = strconv.Atoi(strings.TrimSpace(line[31:32]))
	if flag >= 3 && flag <= 5 {
		return Time{}, flag, nil, EpochSpecialRecordError
	}
	t, err = parseV302EpochDate(line[1:29])
	if err != nil {
		return Time{}, flag, nil, EpochBadEpoch
	}
	// V3.02 never lists satellites on the epoch line itself: each of the
	// n data lines that follow carries its own satellite id in columns
	// 1-3. sats comes back as n empty placeholders so the caller can
	// still learn the satellite count without a second return value.
	return t, flag, make([]string, n), EpochOkNewEpoch
}

func parseV210EpochDate(field string) (Time, error) {
	var yy, mo, dd, hh, mi int
	var ss float64
	_, err := parseFields(field, []int{3, 3, 3, 3, 3, 11}, &yy, &mo, &dd, &hh, &mi, &ss)
	if err != nil {
		return Time{}, err
	}
	year := yy
	if year < 80 {
		year += 2000
	} else if year < 100 {
		year += 1900
	}
	return FromGo(dateToGo(year, mo, dd, hh, mi, ss)), nil
}

func parseV302EpochDate(field string) (Time, error) {
	var yy, mo, dd, hh, mi int
	var ss float64
	_, err := parseFields(field, []int{4, 3, 3, 3, 3, 11}, &yy, &mo, &dd, &hh, &mi, &ss)
	if err != nil {
		return Time{}, err
	}
	return FromGo(dateToGo(yy, mo, dd, hh, mi, ss)), nil
}

// parseFields scans successive fixed-width integer/float fields out of
// field, writing each into the matching pointer in dst (int or float64).
func parseFields(s string, widths []int, dst ...interface{}) (int, error) {
	pos := 0
	for i, w := range widths {
		if pos+w > len(s) {
			w = len(s) - pos
		}
		if w <= 0 {
			break
		}
		text := strings.TrimSpace(s[pos : pos+w])
		pos += w
		if text == "" {
			continue
		}
		switch p := dst[i].(type) {
		case *int:
			v, err := strconv.Atoi(text)
			if err != nil {
				return i, err
			}
			*p = v
		case *float64:
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return i, err
			}
			*p = v
		}
	}
	return len(widths), nil
}

func dateToGo(year, month, day, hour, min int, sec float64) time.Time {
	whole := int(sec)
	nanos := int((sec - float64(whole)) * 1e9)
	return time.Date(year, time.Month(month), day, hour, min, whole, nanos, time.UTC)
}

// navFieldWidth is the fixed width of one broadcast-orbit field, matching
// navf's " s.dddddddddddd D+dd" layout.
const navFieldWidth = 19

// parseNavField decodes one navf-written field, translating RINEX's
// Fortran-style "D" exponent marker to the "E" strconv.ParseFloat expects.
// A blank field (navf's zero-value encoding also round-trips through this
// path without a special case) parses to 0.
func parseNavField(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.Replace(s, "D", "E", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// readNavFields slices s into up to n fixed-width navFieldWidth columns
// and decodes each, the inverse of navf's repeated writes on one line.
func readNavFields(s string, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		off := i * navFieldWidth
		if off >= len(s) {
			break
		}
		end := off + navFieldWidth
		if end > len(s) {
			end = len(s)
		}
		out[i] = parseNavField(s[off:end])
	}
	return out
}

// ReadNavEpoch reads one navigation record's broadcast-orbit block: the
// epoch line (satellite id, calendar date, the first three orbit fields)
// followed by seven continuation lines for GPS or three for GLONASS/SBAS,
// each carrying four more fields. This is WriteNavEpoch's exact inverse:
// row 0's column 0 is reconstructed from the calendar date rather than
// read as a navf field, since WriteNavEpoch never prints it that way.
func ReadNavEpoch(r *bufio.Reader, version RinexVersion) (NavRecord, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return NavRecord{}, io.EOF
	}
	line = strings.TrimRight(line, "\r\n")
	if len(line) < 23 {
		return NavRecord{}, fmt.Errorf("rnxconv: malformed navigation epoch line %q", line)
	}
	sys := line[0]
	sat, err := strconv.Atoi(strings.TrimSpace(line[1:3]))
	if err != nil {
		return NavRecord{}, fmt.Errorf("rnxconv: bad navigation satellite id %q", line[:3])
	}

	var spacer, yy, mo, dd, hh, mi int
	var ss float64
	if _, err := parseFields(line[3:23], []int{1, 4, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2},
		&spacer, &yy, &spacer, &mo, &spacer, &dd, &spacer, &hh, &spacer, &mi, &spacer, &ss); err != nil {
		return NavRecord{}, fmt.Errorf("rnxconv: bad navigation epoch date %q", line[3:23])
	}
	tag := FromGo(dateToGo(yy, mo, dd, hh, mi, ss)).SinceGpsEpoch()

	rows := 4
	if sys == 'G' {
		rows = 8
	}
	data := make([]float64, rows*4)
	data[0] = tag
	first := readNavFields(line[23:], 3)
	copy(data[1:4], first)

	for row := 1; row < rows; row++ {
		cline, err := r.ReadString('\n')
		if err != nil && cline == "" {
			return NavRecord{}, io.EOF
		}
		cline = strings.TrimRight(cline, "\r\n")
		if len(cline) < 4 {
			return NavRecord{}, fmt.Errorf("rnxconv: malformed navigation continuation line %q", cline)
		}
		copy(data[row*4:row*4+4], readNavFields(cline[4:], 4))
	}

	return NavRecord{Time: tag, System: sys, Sat: sat, BroadcastOrbit: mat.NewDense(rows, 4, data)}, nil
}

// ReadObsValues reads the per-satellite measurement lines that follow an
// epoch header ReadObsEpoch just returned, matching OutRnxObsf's inverse:
// each observable is a fixed 16-column field (14.3f value, 1-digit LLI,
// 1 blank), five per line before V2.10 wraps to a continuation line; V3.02
// never wraps and instead opens each satellite's line with its own 3-column
// satellite id, which is why sats is ignored there and only its length
// (the epoch's satellite count) matters.
func ReadObsValues(r *bufio.Reader, m *RinexModel, version RinexVersion, sats []string, t Time) ([]ObsRecord, error) {
	var out []ObsRecord
	tag := t.SinceGpsEpoch()

	for _, satStr := range sats {
		var sys byte
		var sat int
		var obsList []string

		if version <= V210 {
			if len(satStr) < 3 {
				return out, fmt.Errorf("rnxconv: malformed satellite id %q", satStr)
			}
			sys = satStr[0]
			sat, _ = strconv.Atoi(strings.TrimSpace(satStr[1:]))
			gs := m.Systems[sys]
			if gs == nil {
				gs = m.Systems['G']
			}
			if gs != nil {
				obsList = gs.Observables
			}
			recs, err := readObsLine(r, sys, sat, obsList, tag, 5)
			if err != nil {
				return out, err
			}
			out = append(out, recs...)
			continue
		}

		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return out, io.EOF
		}
		line = strings.TrimRight(line, "\r\n")
		if len(line) < 3 {
			return out, fmt.Errorf("rnxconv: malformed V3.02 observation line %q", line)
		}
		sys = line[0]
		sat, _ = strconv.Atoi(strings.TrimSpace(line[1:3]))
		if gs := m.Systems[sys]; gs != nil {
			obsList = gs.Observables
		}
		out = append(out, decodeObsFields(line[3:], sys, sat, obsList, tag)...)
	}
	return out, nil
}

// readObsLine reads ceil(len(obsList)/perLine) continuation lines for one
// satellite's V2.10 observable set and decodes them into records.
func readObsLine(r *bufio.Reader, sys byte, sat int, obsList []string, tag float64, perLine int) ([]ObsRecord, error) {
	var out []ObsRecord
	for i := 0; i < len(obsList); i += perLine {
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return out, io.EOF
		}
		line = strings.TrimRight(line, "\r\n")
		n := perLine
		if i+n > len(obsList) {
			n = len(obsList) - i
		}
		out = append(out, decodeObsFields(line, sys, sat, obsList[i:i+n], tag)...)
	}
	return out, nil
}

// decodeObsFields splits line into 16-column fields and decodes each as
// one ObsRecord for sys/sat, in the order obsList names: 14 columns of
// value, 1 of LLI, 1 of signal-strength indicator.
func decodeObsFields(line string, sys byte, sat int, obsList []string, tag float64) []ObsRecord {
	out := make([]ObsRecord, 0, len(obsList))
	for i, code := range obsList {
		off := i * 16
		field := ""
		if off < len(line) {
			end := off + 16
			if end > len(line) {
				end = len(line)
			}
			field = line[off:end]
		}
		var value float64
		var lli, strength int
		parseFields(field, []int{14, 1, 1}, &value, &lli, &strength)
		out = append(out, ObsRecord{Time: tag, System: sys, Sat: sat, ObsType: code, Value: value, LLI: lli, Strength: float64(strength)})
	}
	return out
}
