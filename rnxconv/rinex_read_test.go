package rnxconv

import (
	"bufio"
	"io"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

func headerLine(body string, label HeaderLabel) string {
	return pad(body, labelColumn) + pad(headerLabelTable[label].text, 20) + "\n"
}

func TestRecordLabelExtractsColumn61To80(t *testing.T) {
	line := headerLine("", LabelEoh)
	if got := recordLabel(line); got != "END OF HEADER" {
		t.Fatalf("recordLabel() = %q, want %q", got, "END OF HEADER")
	}
	if got := recordLabel("too short"); got != "" {
		t.Fatalf("recordLabel() on a short line = %q, want empty", got)
	}
}

func TestReadHeaderPicksVersionFromVersionRecord(t *testing.T) {
	var b strings.Builder
	b.WriteString(pad("     3.02           OBSERVATION DATA    M: Mixed", labelColumn) + pad(headerLabelTable[LabelVersion].text, 20) + "\n")
	b.WriteString(headerLine(pad("TESTMARK", 60), LabelMarkName))
	b.WriteString(headerLine("", LabelEoh))

	m, err := ReadHeader(bufio.NewReader(strings.NewReader(b.String())), KindObs, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Version != V302 {
		t.Fatalf("Version = %v, want V302", m.Version)
	}
	r := m.Header(LabelMarkName)
	if !r.HasData || r.Payload.(string) != "TESTMARK" {
		t.Fatalf("MARKER NAME not captured, got %+v", r)
	}
}

func TestReadHeaderDefaultsToV210WithoutVersionRecord(t *testing.T) {
	var b strings.Builder
	b.WriteString(headerLine("", LabelEoh))
	m, err := ReadHeader(bufio.NewReader(strings.NewReader(b.String())), KindObs, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Version != V210 {
		t.Fatalf("Version = %v, want V210 default", m.Version)
	}
}

func TestReadHeaderUnknownLabelDoesNotAbort(t *testing.T) {
	var b strings.Builder
	b.WriteString(pad("", labelColumn) + pad("SOME FUTURE LABEL", 20) + "\n")
	b.WriteString(headerLine("", LabelEoh))
	m, err := ReadHeader(bufio.NewReader(strings.NewReader(b.String())), KindObs, nil)
	if err != nil {
		t.Fatalf("unexpected error on an unrecognized label: %v", err)
	}
	if !m.Header(LabelEoh).HasData {
		t.Fatalf("expected parsing to continue through to END OF HEADER")
	}
}

func TestReadHeaderParsesSysV302ObservableList(t *testing.T) {
	var b strings.Builder
	sysLine := "G    4 C1C L1C D1C S1C"
	b.WriteString(headerLine(sysLine, LabelSys))
	b.WriteString(headerLine("", LabelEoh))
	m, err := ReadHeader(bufio.NewReader(strings.NewReader(b.String())), KindObs, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sys, ok := m.Systems['G']
	if !ok {
		t.Fatalf("expected a GPS system entry to be created")
	}
	if len(sys.Observables) != 4 || sys.Observables[0] != "C1C" {
		t.Fatalf("unexpected observable list: %+v", sys.Observables)
	}
}

func TestReadObsEpochV302Header(t *testing.T) {
	line := ">2022 03 15 01 0203.00000000   0  4\n"
	r := bufio.NewReader(strings.NewReader(line))
	tm, flag, _, status := ReadObsEpoch(r, V302)
	if status != EpochOkNewEpoch {
		t.Fatalf("status = %v, want EpochOkNewEpoch", status)
	}
	if flag != 0 {
		t.Fatalf("flag = %d, want 0", flag)
	}
	if tm.ToGo().Year() != 2022 {
		t.Fatalf("parsed year = %d, want 2022", tm.ToGo().Year())
	}
}

func TestReadObsEpochEndOfFile(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))
	_, _, _, status := ReadObsEpoch(r, V302)
	if status != EpochEndOfFile {
		t.Fatalf("status = %v, want EpochEndOfFile", status)
	}
}

func TestReadObsEpochV210HeaderAndSatelliteList(t *testing.T) {
	line := " 22 03 15 01 02 03.0000000  0  2G05R09\n"
	r := bufio.NewReader(strings.NewReader(line))
	tm, flag, sats, status := ReadObsEpoch(r, V210)
	if status != EpochOk {
		t.Fatalf("status = %v, want EpochOk", status)
	}
	if flag != 0 {
		t.Fatalf("flag = %d, want 0", flag)
	}
	if len(sats) != 2 || sats[0] != "G05" || sats[1] != "R09" {
		t.Fatalf("sats = %+v, want [G05 R09]", sats)
	}
	if tm.ToGo().Year() != 2022 {
		t.Fatalf("parsed year = %d, want 2022", tm.ToGo().Year())
	}
}

func TestReadObsValuesRoundTripsWriteObsEpochV302(t *testing.T) {
	m := NewRinexModel(KindObs, V302)
	m.Systems['G'] = NewGnssSystem('G', []string{"C1C", "L1C", "D1C", "S1C"})
	m.AddObs(ObsRecord{Time: 100, System: 'G', Sat: 5, ObsType: "C1C", Value: 20000000.123})
	m.AddObs(ObsRecord{Time: 100, System: 'G', Sat: 5, ObsType: "L1C", Value: 1234.5})
	m.AddObs(ObsRecord{Time: 100, System: 'G', Sat: 5, ObsType: "D1C", Value: -50.25})
	m.AddObs(ObsRecord{Time: 100, System: 'G', Sat: 5, ObsType: "S1C", Value: 45.0})
	m.SortObs()

	var buf strings.Builder
	if err := WriteObsEpoch(&buf, m, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := bufio.NewReader(strings.NewReader(buf.String()))
	tm, flag, sats, status := ReadObsEpoch(r, V302)
	if status != EpochOkNewEpoch {
		t.Fatalf("status = %v, want EpochOkNewEpoch", status)
	}
	if flag != 0 {
		t.Fatalf("flag = %d, want 0", flag)
	}
	if len(sats) != 1 {
		t.Fatalf("expected a single-satellite placeholder slice, got %+v", sats)
	}

	recs, err := ReadObsValues(r, m, V302, sats, tm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 4 {
		t.Fatalf("expected 4 observation records, got %d: %+v", len(recs), recs)
	}
	want := map[string]float64{"C1C": 20000000.123, "L1C": 1234.5, "D1C": -50.25, "S1C": 45.0}
	for _, rec := range recs {
		if rec.Sat != 5 || rec.System != 'G' {
			t.Fatalf("unexpected satellite on record: %+v", rec)
		}
		if w, ok := want[rec.ObsType]; !ok || w != rec.Value {
			t.Fatalf("record %+v does not match expected value %v", rec, w)
		}
	}
}

func TestReadObsValuesRoundTripsWriteObsEpochV210(t *testing.T) {
	m := NewRinexModel(KindObs, V210)
	m.Systems['G'] = NewGnssSystem('G', []string{"C1C", "L1C", "D1C", "S1C"})
	m.AddObs(ObsRecord{Time: 100, System: 'G', Sat: 5, ObsType: "C1C", Value: 20000000.123})
	m.AddObs(ObsRecord{Time: 100, System: 'G', Sat: 5, ObsType: "L1C", Value: 1234.5})
	m.AddObs(ObsRecord{Time: 100, System: 'G', Sat: 5, ObsType: "D1C", Value: -50.25})
	m.AddObs(ObsRecord{Time: 100, System: 'G', Sat: 5, ObsType: "S1C", Value: 45.0})
	m.SortObs()

	var buf strings.Builder
	if err := WriteObsEpoch(&buf, m, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := bufio.NewReader(strings.NewReader(buf.String()))
	tm, _, sats, status := ReadObsEpoch(r, V210)
	if status != EpochOk {
		t.Fatalf("status = %v, want EpochOk", status)
	}
	if len(sats) != 1 || sats[0] != "G05" {
		t.Fatalf("sats = %+v, want [G05]", sats)
	}

	recs, err := ReadObsValues(r, m, V210, sats, tm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 4 {
		t.Fatalf("expected 4 observation records, got %d: %+v", len(recs), recs)
	}
}

func TestReadObsValuesRoundTripsLliAndStrength(t *testing.T) {
	m := NewRinexModel(KindObs, V302)
	m.Systems['G'] = NewGnssSystem('G', []string{"C1C", "L1C"})
	m.AddObs(ObsRecord{Time: 100, System: 'G', Sat: 5, ObsType: "C1C", Value: 20000000.123, LLI: 1, Strength: 7})
	m.AddObs(ObsRecord{Time: 100, System: 'G', Sat: 5, ObsType: "L1C", Value: 1234.5, LLI: 0, Strength: 9})
	m.SortObs()

	var buf strings.Builder
	if err := WriteObsEpoch(&buf, m, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := bufio.NewReader(strings.NewReader(buf.String()))
	tm, _, sats, status := ReadObsEpoch(r, V302)
	if status != EpochOkNewEpoch {
		t.Fatalf("status = %v, want EpochOkNewEpoch", status)
	}
	recs, err := ReadObsValues(r, m, V302, sats, tm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 observation records, got %d: %+v", len(recs), recs)
	}
	byType := map[string]ObsRecord{}
	for _, rec := range recs {
		byType[rec.ObsType] = rec
	}
	if c := byType["C1C"]; c.LLI != 1 || c.Strength != 7 {
		t.Fatalf("C1C LLI/Strength = %d/%v, want 1/7", c.LLI, c.Strength)
	}
	if l := byType["L1C"]; l.LLI != 0 || l.Strength != 9 {
		t.Fatalf("L1C LLI/Strength = %d/%v, want 0/9", l.LLI, l.Strength)
	}
}

func TestReadNavEpochRoundTripsWriteNavEpochGps(t *testing.T) {
	toc := Time{Week: 2200, Tow: 345600} // whole seconds, so the calendar
	// round trip through ReadNavEpoch loses nothing to fractional-second
	// rounding.
	orbit := mat.NewDense(8, 4, []float64{
		toc.SinceGpsEpoch(), 1.5e-9, -2.3e-12, 0,
		200, 10.5, 1e-9, 0.5,
		0.01, 0.005, 0.02, 5153.7,
		toc.SinceGpsEpoch(), 0.001, 1.2, 0.002,
		0.9, 200.3, -1e-9, -3e-10,
		1, 0, 2200, 0,
		2.4, 0, 1e-9, 1234,
		0, 4.0, 0, 0,
	})
	rec := NavRecord{Time: toc.SinceGpsEpoch(), System: 'G', Sat: 12, BroadcastOrbit: orbit}

	var buf strings.Builder
	if err := WriteNavEpoch(&buf, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := bufio.NewReader(strings.NewReader(buf.String()))
	got, err := ReadNavEpoch(r, V302)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.System != 'G' || got.Sat != 12 {
		t.Fatalf("System/Sat = %c/%d, want G/12", got.System, got.Sat)
	}
	rows, cols := got.BroadcastOrbit.Dims()
	if rows != 8 || cols != 4 {
		t.Fatalf("dims = %d x %d, want 8 x 4", rows, cols)
	}
	wantRows, _ := orbit.Dims()
	for row := 0; row < wantRows; row++ {
		for col := 0; col < cols; col++ {
			want := orbit.At(row, col)
			got := got.BroadcastOrbit.At(row, col)
			if math.Abs(got-want) > math.Max(1e-6, math.Abs(want)*1e-10) {
				t.Fatalf("[%d][%d] = %v, want %v", row, col, got, want)
			}
		}
	}
}

func TestReadNavEpochRoundTripsWriteNavEpochGlonass(t *testing.T) {
	toe := Time{Week: 2200, Tow: 36000}
	orbit := mat.NewDense(4, 4, []float64{
		toe.SinceGpsEpoch(), 1.2e-7, -3.4e-10, 64800,
		7136.2, 1.234, 0.001, 0,
		-8452.1, -2.345, 0.002, 7,
		15234.8, 0.987, -0.001, 0,
	})
	rec := NavRecord{Time: toe.SinceGpsEpoch(), System: 'R', Sat: 7, BroadcastOrbit: orbit}

	var buf strings.Builder
	if err := WriteNavEpoch(&buf, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := bufio.NewReader(strings.NewReader(buf.String()))
	got, err := ReadNavEpoch(r, V302)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.System != 'R' || got.Sat != 7 {
		t.Fatalf("System/Sat = %c/%d, want R/7", got.System, got.Sat)
	}
	rows, cols := got.BroadcastOrbit.Dims()
	if rows != 4 || cols != 4 {
		t.Fatalf("dims = %d x %d, want 4 x 4", rows, cols)
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			want := orbit.At(row, col)
			gotVal := got.BroadcastOrbit.At(row, col)
			if math.Abs(gotVal-want) > math.Max(1e-6, math.Abs(want)*1e-10) {
				t.Fatalf("[%d][%d] = %v, want %v", row, col, gotVal, want)
			}
		}
	}
}

func TestReadNavEpochEndOfFile(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))
	if _, err := ReadNavEpoch(r, V302); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestParseFieldsSkipsBlankField(t *testing.T) {
	var a, b int
	n, err := parseFields("   1234", []int{4, 3}, &a, &b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Fatalf("parseFields returned %d, want 2", n)
	}
	if a != 0 || b != 234 {
		t.Fatalf("a=%d b=%d, want a=0 b=234", a, b)
	}
}
