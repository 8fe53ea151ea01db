package rnxconv

/*------------------------------------------------------------------------------
* ephemeris.go : scale-factor application, turning subframe.go's raw
*                mantissas into physical-unit broadcast orbit matrices
*
* reference : ICD-GPS-200 20.3.3.5, GLONASS ICD, gnssgo/ephemeris.go's
*             var_uraeph URA table
*-----------------------------------------------------------------------------*/

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SC2RAD is the semicircle-to-radian scale factor IS-GPS expresses all
// angular subframe fields in.
const SC2RAD = math.Pi

// Power-of-two scale factors ICD-GPS-200 and the GLONASS ICD assign to
// specific subframe/string fields, named the way both ICDs do.
const (
	P2_5  = 0.03125               // 2^-5
	P2_11 = 4.882812500000000e-04 // 2^-11
	P2_19 = 1.907348632812500e-06 // 2^-19
	P2_20 = 9.536743164062500e-07 // 2^-20
	P2_29 = 1.862645149230957e-09 // 2^-29
	P2_30 = 9.313225746154785e-10 // 2^-30
	P2_31 = 4.656612873077393e-10 // 2^-31
	P2_33 = 1.164153218269348e-10 // 2^-33
	P2_40 = 9.094947017729280e-13 // 2^-40
	P2_43 = 1.136868377216160e-13 // 2^-43
	P2_55 = 2.775557561562891e-17 // 2^-55
)

// gpsURAMeters maps a GPS subframe-1 URA index (0-14) to its nominal
// user-range-accuracy value in metres; index 15 (and out-of-range values)
// means "no accuracy prediction available", reported as the worst bound.
var gpsURAMeters = [15]float64{
	2.4, 3.4, 4.85, 6.85, 9.65, 13.65, 24.0, 48.0, 96.0, 192.0, 384.0, 768.0,
	1536.0, 3072.0, 6144.0,
}

// GpsURAMeters converts a raw URA index into metres.
func GpsURAMeters(ura int) float64 {
	if ura < 0 || ura > 14 {
		return 6144.0
	}
	return gpsURAMeters[ura]
}

// GpsFitIntervalHours returns the curve-fit interval for a subframe-2
// IODC: IODC 0 is 4 hours; 240-247 is 8; 248-255 and the single value 496
// are 14; 497-503 and 1021-1023 are 26; every other IODC is 6. The three
// narrow bands (496, 497-503, 1021-1023) are checked ahead of the wider
// 240-247/248-255 bands so none of them is ever shadowed by a broader
// range that would otherwise claim it first. fitFlag is accepted for the
// caller's convenience (it names the subframe-2 bit this interval comes
// from) but does not change the lookup: unlike ICD-GPS-200 20.3.4.4,
// where a clear fit flag always means 4 hours, this lookup applies to
// every transmitted IODC regardless of the fit flag's value.
func GpsFitIntervalHours(fitFlag, iodc int) float64 {
	switch {
	case iodc == 0:
		return 4.0
	case iodc == 496:
		return 14.0
	case iodc >= 497 && iodc <= 503:
		return 26.0
	case iodc >= 1021 && iodc <= 1023:
		return 26.0
	case iodc >= 240 && iodc <= 247:
		return 8.0
	case iodc >= 248 && iodc <= 255:
		return 14.0
	default:
		return 6.0
	}
}

// GpsEphemeris is the physical-unit ephemeris record, the scaled image of
// one GpsMantissa. Field names and units match the broadcast-orbit block
// a RINEX navigation record carries.
type GpsEphemeris struct {
	Toc, Toe Time
	Week     int
	URA      float64
	Health   int
	Code     int
	Flag     int
	IODC     int
	IODE     int
	Tgd      float64
	F0, F1, F2 float64

	Crs, Deltan, M0           float64
	Cuc, E, Cus, SqrtA        float64
	Cic, Omega0, Cis, I0      float64
	Crc, Omega, OmegaDot, IDot float64

	FitIntervalHours float64
}

// ScaleGpsMantissa applies ICD-GPS-200's fixed scale factors to m,
// resolving week rollover and the toe/ttr week-boundary adjustment
// exactly as gnssgo/rcvraw.go's DecodeFrameEph does. ref anchors the
// 10-bit transmitted week to its full value (see AdjGpsWeek).
func ScaleGpsMantissa(m *GpsMantissa, ref Time) *GpsEphemeris {
	e := &GpsEphemeris{
		Week:     AdjGpsWeek(m.Week, ref),
		URA:      GpsURAMeters(m.URA),
		Health:   m.Health,
		Code:     m.Code,
		Flag:     m.L2PData,
		IODC:     m.IODC0<<8 | m.IODC1,
		IODE:     m.IODE2,
		Tgd:      0,
		F2:       float64(m.F2) * P2_55,
		F1:       float64(m.F1) * P2_43,
		F0:       float64(m.F0) * P2_31,
		Crs:      float64(m.Crs) * P2_5,
		Deltan:   float64(m.Deltan) * P2_43 * SC2RAD,
		M0:       float64(m.M0) * P2_31 * SC2RAD,
		Cuc:      float64(m.Cuc) * P2_29,
		E:        float64(m.E) * P2_33,
		Cus:      float64(m.Cus) * P2_29,
		SqrtA:    float64(m.SqrtA) * P2_19,
		Cic:      float64(m.Cic) * P2_29,
		Omega0:   float64(m.Omega0) * P2_31 * SC2RAD,
		Cis:      float64(m.Cis) * P2_29,
		I0:       float64(m.I0) * P2_31 * SC2RAD,
		Crc:      float64(m.Crc) * P2_5,
		Omega:    float64(m.Omega) * P2_31 * SC2RAD,
		OmegaDot: float64(m.OmegaDot) * P2_43 * SC2RAD,
		IDot:     float64(m.IDot) * P2_43 * SC2RAD,
	}
	if m.Tgd != -128 {
		e.Tgd = float64(m.Tgd) * P2_31
	}
	e.FitIntervalHours = GpsFitIntervalHours(m.FitFlag, e.IODC)

	tow1 := float64(m.Tow1) * 6.0
	toc := float64(m.Toc) * 16.0
	toes := float64(m.Toes) * 16.0

	week := e.Week
	if toes < tow1-302400.0 {
		week++
	} else if toes > tow1+302400.0 {
		week--
	}
	e.Toe = Time{Week: week, Tow: toes}
	e.Toc = Time{Week: week, Tow: toc}
	return e
}

// GpsBroadcastOrbitMatrix lays e out as the 8x4 matrix RINEX navigation
// records print four fields per line, eight lines per satellite: row 0 is
// the clock line (Toc, af0, af1, af2); the remaining rows follow
// ICD-GPS-200's subframe 2/3 field order.
func GpsBroadcastOrbitMatrix(e *GpsEphemeris) *mat.Dense {
	m := mat.NewDense(8, 4, []float64{
		e.Toc.SinceGpsEpoch(), e.F0, e.F1, e.F2,
		float64(e.IODE), e.Crs, e.Deltan, e.M0,
		e.Cuc, e.E, e.Cus, e.SqrtA,
		e.Toe.SinceGpsEpoch(), e.Cic, e.Omega0, e.Cis,
		e.I0, e.Crc, e.Omega, e.OmegaDot,
		e.IDot, float64(e.Code), float64(e.Week), 0,
		e.URA, float64(e.Health), e.Tgd, float64(e.IODC),
		0, e.FitIntervalHours, 0, 0,
	})
	return m
}

// AdjGpsWeek folds a 10-bit transmitted GPS week into the full
// (non-rolled-over) week number nearest ref, matching
// gnssgo/common.go's AdjGpsWeek but taking the reference instant
// explicitly instead of reading a process-wide clock.
func AdjGpsWeek(week int, ref Time) int {
	w := ref.Week
	if w < 1560 {
		w = 1560 // 2009-12-01, gnssgo's floor for an unset/bad clock
	}
	return week + (w-week+1)/1024*1024
}

// GlonassEphemeris is the physical-unit image of one GlonassMantissa.
type GlonassEphemeris struct {
	Slot, Freq       int
	Toe              Time
	MessageFrameTime float64
	TauN, GammaN     float64
	Health           int
	Age              int
	Sva              int
	Pos, Vel, Acc    [3]float64
}

// ScaleGlonassMantissa applies the GLONASS ICD's fixed power-of-two scale
// factors to m, resolving the frame time into GPS time via GlonassToGps.
func ScaleGlonassMantissa(m *GlonassMantissa, n4, nt int) *GlonassEphemeris {
	e := &GlonassEphemeris{
		Slot:   m.Slot,
		Health: m.Health,
		Age:    m.Age,
		Sva:    m.Sva,
		TauN:   float64(m.Taun) * P2_30,
		GammaN: float64(m.Gamma) * P2_40,
	}
	e.Pos = [3]float64{
		float64(m.PosX) * P2_11 * 1e3,
		float64(m.PosY) * P2_11 * 1e3,
		float64(m.PosZ) * P2_11 * 1e3,
	}
	e.Vel = [3]float64{
		float64(m.VelX) * P2_20 * 1e3,
		float64(m.VelY) * P2_20 * 1e3,
		float64(m.VelZ) * P2_20 * 1e3,
	}
	e.Acc = [3]float64{
		float64(m.AccX) * P2_30 * 1e3,
		float64(m.AccY) * P2_30 * 1e3,
		float64(m.AccZ) * P2_30 * 1e3,
	}
	e.MessageFrameTime = float64(m.Tb) * 900.0
	e.Toe = GlonassToGps(n4, nt, e.MessageFrameTime)
	return e
}

// GlonassBroadcastOrbitMatrix lays e out as the 4x4 matrix RINEX
// navigation records print for a GLONASS satellite, matching the
// receiver's own MID-70 broadcast-orbit field order: clock line
// (Toc, -TauN, GammaN, message frame time), then X/Y/Z lines each
// carrying position, velocity, acceleration and a fourth field (health,
// carrier frequency number, age of operational information).
func GlonassBroadcastOrbitMatrix(e *GlonassEphemeris) *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		e.Toe.SinceGpsEpoch(), -e.TauN, e.GammaN, e.MessageFrameTime,
		e.Pos[0], e.Vel[0], e.Acc[0], float64(e.Health),
		e.Pos[1], e.Vel[1], e.Acc[1], float64(e.Freq),
		e.Pos[2], e.Vel[2], e.Acc[2], float64(e.Age),
	})
}
