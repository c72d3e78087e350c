// Package moon approximates the phase of the moon on a given night. The
// calculation compares a Julian Date against a reference new moon and
// buckets the moon's age within the synodic cycle into the eight principal
// phases.
package moon

import (
	"math"

	"github.com/spencer-p/moondash/pkg/clock"
	"github.com/spencer-p/moondash/pkg/julian"
)

const (
	// newMoonEpoch is the Julian Date of the new moon of January 6, 2000.
	newMoonEpoch = 2451549.5

	// synodicMonth is the mean length of one lunar cycle in days.
	synodicMonth = 29.530588853
)

// Bucket upper bounds in days of moon age, each spanning about an eighth of
// a cycle. The interval before the first bound and the interval after the
// last together make up the new moon's eighth.
var thresholds = [...]float64{
	1.84566,
	5.53699,
	9.22831,
	12.91963,
	16.61096,
	20.30228,
	23.99361,
	27.86493,
}

// Phase identifies one of the eight principal lunar phases.
type Phase int

const (
	NewMoon Phase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

// age returns days since the most recent new moon, in [0, synodicMonth).
func age(jd float64) float64 {
	diff := jd - newMoonEpoch
	if diff < 0 {
		// Dates shortly before the epoch wrap to the prior cycle.
		diff += synodicMonth
	}
	d := math.Mod(diff, synodicMonth)
	if d < 0 {
		d += synodicMonth
	}
	return d
}

// PhaseIndex buckets a Julian Date into a raw cycle index from 0 through 8.
// Index 8 is the tail end of the cycle and means New Moon, the same as 0.
func PhaseIndex(jd float64) int {
	d := age(jd)
	for i, limit := range thresholds {
		if d < limit {
			return i
		}
	}
	return len(thresholds)
}

// FromJulianDate returns the Phase for a Julian Date, folding the raw
// index 8 back onto NewMoon.
func FromJulianDate(jd float64) Phase {
	if i := PhaseIndex(jd); i < len(thresholds) {
		return Phase(i)
	}
	return NewMoon
}

// Illumination returns the sunlit fraction of the visible disc: 0 at new
// moon, 1 at full.
func Illumination(jd float64) float64 {
	frac := age(jd) / synodicMonth
	return (1 - math.Cos(2*math.Pi*frac)) / 2
}

// Waxing reports whether the moon is growing brighter at the given date.
func Waxing(jd float64) bool {
	return age(jd) < synodicMonth/2
}

// Tonight returns the phase at the upcoming midnight GMT, which is noon of
// tomorrow's date in Julian Day terms. Going through time.Time keeps the
// day increment safe across month and year boundaries.
func Tonight(c clock.Clock) Phase {
	tomorrow := c.Now().UTC().AddDate(0, 0, 1)
	year, month, day := tomorrow.Date()
	return FromJulianDate(julian.Date(int(month), day, year, 12, 0, 0))
}
