package rnxconv

import (
	"strings"
	"testing"
)

func TestWriteRtkSolHeaderFields(t *testing.T) {
	m := NewRtkSolModel(RtkSolOptions{Program: "rnxconv", InputFile: "in.bin", ElevMask: 10, SnrMask: 30})
	m.observe(Time{Week: 2200, Tow: 100})
	m.observe(Time{Week: 2200, Tow: 200})

	var buf strings.Builder
	if err := WriteRtkSolHeader(&buf, m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"% program\t: rnxconv\n",
		"% inp file\t: in.bin\n",
		"% pos mode\t: Single\n",
		"% elev mask\t: 10.0\n",
		"% snr mask\t: 30.0\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("header missing %q, got %q", want, out)
		}
	}
	if !strings.Contains(out, "Q=1:fix,2:float,3:sbas,4:dgps,5:single,6:ppp") {
		t.Fatalf("header missing the quality-code legend: %q", out)
	}
}

func TestRtkSolModelObserveTracksSpan(t *testing.T) {
	m := NewRtkSolModel(RtkSolOptions{})
	m.observe(Time{Week: 2200, Tow: 500})
	m.observe(Time{Week: 2200, Tow: 100})
	m.observe(Time{Week: 2200, Tow: 900})
	if m.start.Tow != 100 {
		t.Fatalf("start.Tow = %v, want 100", m.start.Tow)
	}
	if m.end.Tow != 900 {
		t.Fatalf("end.Tow = %v, want 900", m.end.Tow)
	}
}

func TestWriteRtkSolEpochPlaceholders(t *testing.T) {
	var buf strings.Builder
	if err := WriteRtkSolEpoch(&buf, Time{Week: 2200, Tow: 100}, 1.0, 2.0, 3.0, 5, 8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "  5   8") {
		t.Fatalf("expected quality=5 ns=8 fields, got %q", out)
	}
	if !strings.HasSuffix(out, "   0.00    0.0\n") {
		t.Fatalf("expected the fixed age/ratio suffix, got %q", out)
	}
	if strings.Count(out, " 0.0000") != 6 {
		t.Fatalf("expected six zero-valued standard deviation fields, got %q", out)
	}
}

func TestFormatGpsTimeLayout(t *testing.T) {
	got := formatGpsTime(Time{Week: 2200, Tow: 100})
	if !strings.Contains(got, "/") || !strings.Contains(got, ":") {
		t.Fatalf("unexpected time layout: %q", got)
	}
	parts := strings.Split(got, " ")
	if len(parts) != 2 {
		t.Fatalf("expected a date and a time part separated by one space, got %q", got)
	}
}

func TestRtkSolSinkWritesHeaderOnceThenEpochs(t *testing.T) {
	var buf strings.Builder
	sink := NewRtkSolSink(&buf, RtkSolOptions{Program: "rnxconv"})
	sink.SetMasks(15, 35)

	// real wire order: MID 28 burst, MID 2 (position, its own week/tow), then
	// MID 7 (epoch close) reaching Obs.
	sink.Position(Time{Week: 2200, Tow: 100}, 100, 200, 300, 6)
	sink.Position(Time{Week: 2200, Tow: 101}, 101, 201, 301, 7)
	sink.Obs(Epoch{Week: 2200, Tow: 101})

	out := buf.String()
	if strings.Count(out, "% program") != 1 {
		t.Fatalf("expected the header to be written exactly once, got %q", out)
	}
	if strings.Count(out, "\n") < 13 {
		t.Fatalf("expected a header block plus two epoch lines, got %q", out)
	}
	if !strings.Contains(out, "% elev mask\t: 15.0") {
		t.Fatalf("expected SetMasks to feed the header, got %q", out)
	}
	if sink.FixesWritten != 2 {
		t.Fatalf("FixesWritten = %d, want 2", sink.FixesWritten)
	}
}

// TestRtkSolSinkStampsEachFixWithItsOwnTime confirms Position uses the time
// it was given rather than a cached value from a previous epoch's Obs call.
func TestRtkSolSinkStampsEachFixWithItsOwnTime(t *testing.T) {
	var buf strings.Builder
	sink := NewRtkSolSink(&buf, RtkSolOptions{Program: "rnxconv"})

	sink.Position(Time{Week: 2200, Tow: 500}, 1, 2, 3, 6)

	out := buf.String()
	if !strings.Contains(out, formatGpsTime(Time{Week: 2200, Tow: 500})) {
		t.Fatalf("expected the fix to be stamped with its own MID 2 time, got %q", out)
	}
}
