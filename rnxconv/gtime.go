package rnxconv

/*------------------------------------------------------------------------------
* gtime.go : GPS week/time-of-week arithmetic
*
* reference : gnssgo/common.go Epoch2Time/GpsT2Time/Time2GpsT/TimeAdd
*-----------------------------------------------------------------------------*/

import "time"

// gpsEpoch is 1980-01-06 00:00:00 UTC, GPS week 0 / TOW 0.
var gpsEpoch = time.Date(1980, 1, 6, 0, 0, 0, 0, time.UTC)

// Time is a GPS-time instant represented as an extended (non-rolled-over)
// week number plus time-of-week in seconds.
type Time struct {
	Week int
	Tow  float64
}

// ToGo converts t to an absolute UTC instant (GPS time scale, no leap
// second correction — callers needing UTC apply GpsToUtc separately).
func (t Time) ToGo() time.Time {
	return gpsEpoch.Add(time.Duration(t.Week) * 7 * 24 * time.Hour).
		Add(time.Duration(t.Tow * float64(time.Second)))
}

// FromGo converts an absolute instant on the GPS time scale into week/tow.
func FromGo(u time.Time) Time {
	d := u.Sub(gpsEpoch)
	secs := d.Seconds()
	week := int(secs / (7 * 86400))
	tow := secs - float64(week)*7*86400
	return Time{Week: week, Tow: tow}
}

// Add returns t advanced by sec seconds, carrying into the week field.
func (t Time) Add(sec float64) Time {
	tow := t.Tow + sec
	week := t.Week
	for tow < 0 {
		tow += 7 * 86400
		week--
	}
	for tow >= 7*86400 {
		tow -= 7 * 86400
		week++
	}
	return Time{Week: week, Tow: tow}
}

// Sub returns t1-t0 in seconds.
func Sub(t1, t0 Time) float64 {
	return float64(t1.Week-t0.Week)*7*86400 + (t1.Tow - t0.Tow)
}

// SinceGpsEpoch returns the number of seconds between t and the GPS
// epoch, matching the RINEX data model's "seconds-since-GPS-epoch" time
// tag for observation/navigation records.
func (t Time) SinceGpsEpoch() float64 {
	return float64(t.Week)*7*86400 + t.Tow
}

// FromSinceGpsEpoch is the inverse of SinceGpsEpoch.
func FromSinceGpsEpoch(sec float64) Time {
	week := int(sec / (7 * 86400))
	return Time{Week: week, Tow: sec - float64(week)*7*86400}
}

// leapSeconds is the GPS-UTC leap second table, (effective UTC date,
// TAI-UTC offset at GPS epoch relative leap count). Only entries needed
// to convert receiver UTC timestamps (MID 7's tow adjustments are always
// in GPS time already) are carried; this is not a full IERS table.
var leapSeconds = []struct {
	year, month, day int
	offset           float64
}{
	{2017, 1, 1, 18},
	{2015, 7, 1, 17},
	{2012, 7, 1, 16},
	{2009, 1, 1, 15},
	{2006, 1, 1, 14},
	{1999, 1, 1, 13},
	{1997, 7, 1, 12},
}

// GpsToUtc subtracts the GPS-UTC leap second offset in effect at t.
func GpsToUtc(t Time) Time {
	u := t.ToGo()
	for _, l := range leapSeconds {
		if !u.Before(time.Date(l.year, time.Month(l.month), l.day, 0, 0, 0, 0, time.UTC)) {
			return t.Add(-l.offset)
		}
	}
	return t
}

// GlonassToGps converts a GLONASS-scale instant (UTC+3h) expressed as
// calendar fields (N4, NT, tb) into GPS time. N4 is the four-year interval number
// (1=1996-1999, ...), NT is the day number within it (1-based), and tb
// is the intraday time index in the units the GLONASS ICD defines for
// the navigation string family (30-minute intervals for immediate data).
func GlonassToGps(n4, nt int, tbSeconds float64) Time {
	base := time.Date(1996+4*(n4-1), 1, 1, 0, 0, 0, 0, time.UTC)
	instant := base.AddDate(0, 0, nt-1).Add(time.Duration(tbSeconds * float64(time.Second)))
	utc := instant.Add(-3 * time.Hour)
	gps := utc
	for _, l := range leapSeconds {
		if !utc.Before(time.Date(l.year, time.Month(l.month), l.day, 0, 0, 0, 0, time.UTC)) {
			gps = utc.Add(time.Duration(l.offset * float64(time.Second)))
			break
		}
	}
	return FromGo(gps)
}
