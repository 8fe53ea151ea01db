package rnxconv

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestWriteObsHeaderEndsWithEndOfHeader(t *testing.T) {
	m := NewRinexModel(KindObs, V302)
	m.Systems['G'] = NewGnssSystem('G', []string{"C1C", "L1C"})
	m.SetHeader(LabelSys, nil)
	m.SetHeader(LabelMarkName, "TEST")

	var buf strings.Builder
	if err := WriteObsHeader(&buf, m, RinexWriterOptions{Program: "rnxconv", Marker: "TEST"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "RINEX VERSION / TYPE") {
		t.Fatalf("missing version line: %q", out)
	}
	if !strings.Contains(out, "END OF HEADER") {
		t.Fatalf("missing END OF HEADER: %q", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if !strings.Contains(lines[len(lines)-1], "END OF HEADER") {
		t.Fatalf("END OF HEADER should be the final line, got %q", lines[len(lines)-1])
	}
}

func TestWriteObsHeaderOmitsRecordsOutsideVersionMask(t *testing.T) {
	m := NewRinexModel(KindObs, V302)
	m.Systems['G'] = NewGnssSystem('G', []string{"C1C"})
	m.SetHeader(LabelWvlen, nil) // V2.10-only label, should not appear under V302

	var buf strings.Builder
	WriteObsHeader(&buf, m, RinexWriterOptions{})
	if strings.Contains(buf.String(), "WAVELENGTH FACT") {
		t.Fatalf("V2.10-only record leaked into a V3.02 header: %q", buf.String())
	}
}

func TestWriteObsEpochV302Format(t *testing.T) {
	m := NewRinexModel(KindObs, V302)
	m.AddObs(ObsRecord{Time: 100, System: 'G', Sat: 5, ObsType: "C1C", Value: 20000000.123})
	m.AddObs(ObsRecord{Time: 100, System: 'G', Sat: 5, ObsType: "L1C", Value: 1234.5})

	var buf strings.Builder
	if err := WriteObsEpoch(&buf, m, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, ">") {
		t.Fatalf("V3.02 epoch line should start with '>', got %q", out)
	}
	if !strings.Contains(out, "G05") {
		t.Fatalf("expected satellite id G05 in output: %q", out)
	}
}

func TestWriteObsEpochEmptyIsNoop(t *testing.T) {
	m := NewRinexModel(KindObs, V302)
	var buf strings.Builder
	if err := WriteObsEpoch(&buf, m, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for an empty epoch, got %q", buf.String())
	}
}

func TestWriteNavEpochGpsEightLines(t *testing.T) {
	orbit := mat.NewDense(8, 4, make([]float64, 32))
	rec := NavRecord{Time: 0, System: 'G', Sat: 5, BroadcastOrbit: orbit}
	var buf strings.Builder
	if err := WriteNavEpoch(&buf, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines for a GPS broadcast orbit, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "G05") {
		t.Fatalf("expected the first line to start with the satellite id, got %q", lines[0])
	}
}

func TestWriteNavEpochRejectsWrongColumnCount(t *testing.T) {
	orbit := mat.NewDense(4, 3, make([]float64, 12))
	rec := NavRecord{System: 'R', Sat: 1, BroadcastOrbit: orbit}
	var buf strings.Builder
	if err := WriteNavEpoch(&buf, rec); err == nil {
		t.Fatalf("expected an error for a non-4-column broadcast orbit matrix")
	}
}

func TestRinexSinkWritesObsAndNavOnFirstRecord(t *testing.T) {
	var obsBuf, navBuf strings.Builder
	sink := NewRinexSink(&obsBuf, &navBuf, V302, RinexWriterOptions{Marker: "TEST"})

	sink.Obs(Epoch{
		Week: 2200, Tow: 1000,
		Samples: []ObsSample{{System: 'G', Sat: 5, Pseudorange: 20000000, CarrierPhase: 100, CarrierFreq: 1, SignalStrength: 45}},
	})
	if !strings.Contains(obsBuf.String(), "END OF HEADER") {
		t.Fatalf("expected an obs header to be written on the first Obs() call")
	}
	if !strings.Contains(obsBuf.String(), "G05") {
		t.Fatalf("expected the epoch body to follow the header")
	}

	e := &GpsEphemeris{Toc: Time{Week: 2200, Tow: 0}}
	sink.GpsNav(5, e)
	if !strings.Contains(navBuf.String(), "END OF HEADER") {
		t.Fatalf("expected a nav header to be written on the first GpsNav() call")
	}
	if !strings.Contains(navBuf.String(), "G05") {
		t.Fatalf("expected the nav body to follow the header")
	}
}

func TestRinexSinkCountsEpochsSurvivingTheFilter(t *testing.T) {
	var obsBuf, navBuf strings.Builder
	sink := NewRinexSink(&obsBuf, &navBuf, V302, RinexWriterOptions{})
	sink.ObsModel.Systems['G'] = NewGnssSystem('G', []string{"C1C", "L1C", "D1C", "S1C"})
	sink.ObsModel.SetFilter([]string{"G"}, nil, nil)

	sink.Obs(Epoch{Week: 2200, Tow: 1000, Samples: []ObsSample{{System: 'G', Sat: 5, Pseudorange: 20000000}}})
	sink.Obs(Epoch{Week: 2200, Tow: 1001, Samples: []ObsSample{{System: 'R', Sat: 9, Pseudorange: 20000000}}})

	if sink.EpochsIn != 2 {
		t.Fatalf("EpochsIn = %d, want 2", sink.EpochsIn)
	}
	if sink.EpochsOut != 1 {
		t.Fatalf("EpochsOut = %d, want 1 (the GLONASS-only epoch should be filtered away)", sink.EpochsOut)
	}
}
