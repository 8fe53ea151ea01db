package rnxconv

import "testing"

func TestGpsURAMeters(t *testing.T) {
	if v := GpsURAMeters(0); v != 2.4 {
		t.Fatalf("GpsURAMeters(0) = %v, want 2.4", v)
	}
	if v := GpsURAMeters(14); v != 6144.0 {
		t.Fatalf("GpsURAMeters(14) = %v, want 6144.0", v)
	}
	if v := GpsURAMeters(99); v != 6144.0 {
		t.Fatalf("GpsURAMeters(99) = %v, want worst-case 6144.0", v)
	}
}

func TestGpsFitIntervalHours(t *testing.T) {
	// fit-flag=0, IODC=200 -> 6: a clear fit flag does not short-circuit
	// to 4h here, since 200 falls outside every named IODC band.
	if v := GpsFitIntervalHours(0, 200); v != 6.0 {
		t.Fatalf("fitFlag=0, iodc=200 should be 6h, got %v", v)
	}
	if v := GpsFitIntervalHours(1, 240); v != 8.0 {
		t.Fatalf("iodc=240 should be 8h, got %v", v)
	}
	if v := GpsFitIntervalHours(1, 0); v != 4.0 {
		t.Fatalf("iodc=0 should be 4h, got %v", v)
	}
	// 248-255 is 14h, distinct from the single value 496 that is also 14h.
	if v := GpsFitIntervalHours(1, 248); v != 14.0 {
		t.Fatalf("iodc=248 should be 14h, got %v", v)
	}
	if v := GpsFitIntervalHours(1, 255); v != 14.0 {
		t.Fatalf("iodc=255 should be 14h, got %v", v)
	}
	if v := GpsFitIntervalHours(1, 496); v != 14.0 {
		t.Fatalf("iodc=496 should be 14h, got %v", v)
	}
	// 497-503 is 26h and must not fall through to 496's 14h or the
	// default 6h.
	if v := GpsFitIntervalHours(1, 497); v != 26.0 {
		t.Fatalf("iodc=497 should be 26h, got %v", v)
	}
	if v := GpsFitIntervalHours(1, 503); v != 26.0 {
		t.Fatalf("iodc=503 should be 26h, got %v", v)
	}
	if v := GpsFitIntervalHours(1, 504); v != 6.0 {
		t.Fatalf("iodc=504 is outside every named band, should be 6h, got %v", v)
	}
	if v := GpsFitIntervalHours(1, 1022); v != 26.0 {
		t.Fatalf("iodc=1022 should be 26h, got %v", v)
	}
}

func TestAdjGpsWeek(t *testing.T) {
	ref := Time{Week: 2200}
	// a transmitted week of 2200 mod 1024 = 152 should fold back to 2200.
	if got := AdjGpsWeek(152, ref); got != 2200 {
		t.Fatalf("AdjGpsWeek(152, ref=2200) = %d, want 2200", got)
	}
}

func TestScaleGpsMantissaRoundTrip(t *testing.T) {
	m := &GpsMantissa{
		Tow1: 1000, Week: 152, URA: 0, Health: 0,
		IODC0: 1, IODC1: 200, L2PData: 0,
		Tgd: -4, Toc: 5000, F2: 0, F1: 0, F0: 100,
		SubframeID1: 1, SubframeID2: 2, SubframeID3: 3,
		IODE2: 200, Crs: 10, Deltan: 5, M0: 1000,
		Cuc: 2, E: 1 << 20, Cus: 3, SqrtA: 1 << 24,
		Toes: 5000, FitFlag: 0,
		Cic: 1, Omega0: 2000, Cis: 1, I0: 3000,
		Crc: 5, Omega: 4000, OmegaDot: 10, IODE3: 200, IDot: 1,
	}
	e := ScaleGpsMantissa(m, Time{Week: 2200})
	if e.IODC != (1<<8 | 200) {
		t.Fatalf("IODC = %d, want %d", e.IODC, 1<<8|200)
	}
	if e.Tgd == 0 {
		t.Fatalf("Tgd should not be zero for raw -4")
	}
	if e.Toe.Week != e.Week {
		t.Fatalf("Toe.Week = %d, want %d", e.Toe.Week, e.Week)
	}
	mat := GpsBroadcastOrbitMatrix(e)
	if r, c := mat.Dims(); r != 8 || c != 4 {
		t.Fatalf("broadcast orbit matrix dims = %d x %d, want 8 x 4", r, c)
	}
}

func TestScaleGpsMantissaTgdSentinel(t *testing.T) {
	m := &GpsMantissa{Tgd: -128}
	e := ScaleGpsMantissa(m, Time{Week: 2200})
	if e.Tgd != 0 {
		t.Fatalf("Tgd sentinel -128 should map to 0, got %v", e.Tgd)
	}
}

func TestScaleGlonassMantissa(t *testing.T) {
	m := &GlonassMantissa{
		Slot: 7, Health: 0, Age: 1, Sva: 3,
		Taun: -100, Gamma: 5, Tb: 96,
		PosX: 1000, PosY: 2000, PosZ: 3000,
		VelX: 10, VelY: 20, VelZ: 30,
		AccX: 1, AccY: 1, AccZ: 1,
	}
	e := ScaleGlonassMantissa(m, 10, 1)
	if e.Slot != 7 {
		t.Fatalf("Slot = %d, want 7", e.Slot)
	}
	if e.Pos[0] == 0 || e.Vel[0] == 0 {
		t.Fatalf("expected nonzero scaled position/velocity, got %+v", e)
	}
	mat := GlonassBroadcastOrbitMatrix(e)
	if r, c := mat.Dims(); r != 4 || c != 4 {
		t.Fatalf("broadcast orbit matrix dims = %d x %d, want 4 x 4", r, c)
	}
}
