package rnxconv

import "testing"

func TestObsCodeTranslationRoundTrip(t *testing.T) {
	cases := map[string]string{"L1": "L1C", "C1": "C1C", "P2": "C2P", "D1": "D1C", "S1": "S1C"}
	for v2, v3 := range cases {
		if got := ObsCodeV3(v2); got != v3 {
			t.Fatalf("ObsCodeV3(%q) = %q, want %q", v2, got, v3)
		}
		if got := ObsCodeV2(v3); got != v2 {
			t.Fatalf("ObsCodeV2(%q) = %q, want %q", v3, got, v2)
		}
	}
	if got := ObsCodeV3("X9"); got != "X9" {
		t.Fatalf("unknown code should pass through unchanged, got %q", got)
	}
}

func TestRinexModelHeaderCursorSkipsEmptyRecords(t *testing.T) {
	m := NewRinexModel(KindObs, V302)
	if r := m.FirstLabel(); r.Label != LabelEoh {
		t.Fatalf("FirstLabel() on an empty model should land on EOH, got %v", r.Label)
	}
	m.SetHeader(LabelMarkName, "TEST")
	r := m.FirstLabel()
	if r.Label != LabelMarkName {
		t.Fatalf("FirstLabel() = %v, want MRKNAME", r.Label)
	}
	idx := m.indexOf(r)
	if next := m.NextLabel(idx); next.Label != LabelEoh {
		t.Fatalf("NextLabel() after the only populated record should land on EOH, got %v", next.Label)
	}
}

func TestRinexModelAddNavRejectsDuplicateKey(t *testing.T) {
	m := NewRinexModel(KindNav, V302)
	m.AddNav(NavRecord{Time: 100, System: 'G', Sat: 5})
	m.AddNav(NavRecord{Time: 100, System: 'G', Sat: 5})
	if len(m.Nav) != 1 {
		t.Fatalf("expected duplicate (time,system,sat) to be rejected, got %d records", len(m.Nav))
	}
	m.AddNav(NavRecord{Time: 100, System: 'G', Sat: 6})
	if len(m.Nav) != 2 {
		t.Fatalf("expected a distinct satellite to be accepted, got %d records", len(m.Nav))
	}
}

func TestRinexModelSortObsOrdersByCompositeKey(t *testing.T) {
	m := NewRinexModel(KindObs, V302)
	m.AddObs(ObsRecord{Time: 2, System: 'G', Sat: 1, ObsType: "L1C"})
	m.AddObs(ObsRecord{Time: 1, System: 'R', Sat: 3, ObsType: "C1C"})
	m.AddObs(ObsRecord{Time: 1, System: 'G', Sat: 5, ObsType: "C1C"})
	m.SortObs()
	if m.Obs[0].Time != 1 || m.Obs[0].System != 'G' {
		t.Fatalf("unexpected sort order: %+v", m.Obs)
	}
	if m.Obs[1].Time != 1 || m.Obs[1].System != 'R' {
		t.Fatalf("unexpected sort order: %+v", m.Obs)
	}
	if m.Obs[2].Time != 2 {
		t.Fatalf("unexpected sort order: %+v", m.Obs)
	}
}

func TestGnssSystemSelection(t *testing.T) {
	g := NewGnssSystem('G', []string{"C1C", "L1C"})
	if !g.IsSelected("C1C") {
		t.Fatalf("observable should default to selected")
	}
	g.Selected["L1C"] = false
	if g.IsSelected("L1C") {
		t.Fatalf("explicitly deselected observable should report false")
	}
	if !g.SatSelected(5) {
		t.Fatalf("empty PRN list should accept every satellite")
	}
	g.SelectedSat = []int{5, 7}
	if g.SatSelected(6) {
		t.Fatalf("satellite 6 should be rejected by an explicit PRN list")
	}
	if !g.SatSelected(7) {
		t.Fatalf("satellite 7 should be accepted by an explicit PRN list")
	}
}
