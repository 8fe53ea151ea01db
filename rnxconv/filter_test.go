package rnxconv

import "testing"

func newFilterTestModel() *RinexModel {
	m := NewRinexModel(KindObs, V302)
	m.Systems['G'] = NewGnssSystem('G', []string{"C1C", "L1C"})
	m.Systems['R'] = NewGnssSystem('R', []string{"C1C", "L1C"})
	return m
}

func TestFilterRejectsUnselectedSystem(t *testing.T) {
	m := newFilterTestModel()
	if !m.SetFilter([]string{"G"}, nil, nil) {
		t.Fatalf("expected SetFilter to succeed")
	}
	m.AddObs(ObsRecord{System: 'G', Sat: 1, ObsType: "C1C"})
	m.AddObs(ObsRecord{System: 'R', Sat: 1, ObsType: "C1C"})
	m.ApplyObsFilter()
	if len(m.Obs) != 1 || m.Obs[0].System != 'G' {
		t.Fatalf("expected only GPS to survive, got %+v", m.Obs)
	}
}

func TestFilterSatelliteAllowList(t *testing.T) {
	m := newFilterTestModel()
	m.SetFilter([]string{"G05"}, nil, nil)
	m.AddObs(ObsRecord{System: 'G', Sat: 5, ObsType: "C1C"})
	m.AddObs(ObsRecord{System: 'G', Sat: 6, ObsType: "C1C"})
	m.ApplyObsFilter()
	if len(m.Obs) != 1 || m.Obs[0].Sat != 5 {
		t.Fatalf("expected only PRN 5 to survive, got %+v", m.Obs)
	}
}

func TestFilterObservableAllowList(t *testing.T) {
	m := newFilterTestModel()
	m.SetFilter(nil, []string{"GC1C"}, nil)
	m.AddObs(ObsRecord{System: 'G', Sat: 1, ObsType: "C1C"})
	m.AddObs(ObsRecord{System: 'G', Sat: 1, ObsType: "L1C"})
	m.ApplyObsFilter()
	if len(m.Obs) != 1 || m.Obs[0].ObsType != "C1C" {
		t.Fatalf("expected only C1C to survive, got %+v", m.Obs)
	}
}

func TestFilterNavBarePrefixMatchesEverySatellite(t *testing.T) {
	m := newFilterTestModel()
	m.SetFilter([]string{"R"}, nil, nil)
	m.AddNav(NavRecord{System: 'G', Sat: 1})
	m.AddNav(NavRecord{System: 'R', Sat: 9})
	m.ApplyNavFilter()
	if len(m.Nav) != 1 || m.Nav[0].System != 'R' {
		t.Fatalf("expected only GLONASS to survive, got %+v", m.Nav)
	}
}

func TestFilterUnknownTokenWarnsAndRejects(t *testing.T) {
	m := newFilterTestModel()
	log := NewLogger(nil, LevelWarn)
	if m.SetFilter([]string{"X"}, nil, log) {
		t.Fatalf("expected SetFilter to report false for an unknown system token")
	}
}

func TestFilterNoFilterAcceptsEverything(t *testing.T) {
	m := newFilterTestModel()
	m.AddObs(ObsRecord{System: 'G', Sat: 1, ObsType: "C1C"})
	m.AddObs(ObsRecord{System: 'R', Sat: 2, ObsType: "L1C"})
	m.ApplyObsFilter()
	if len(m.Obs) != 2 {
		t.Fatalf("expected no filtering without SetFilter, got %+v", m.Obs)
	}
}
