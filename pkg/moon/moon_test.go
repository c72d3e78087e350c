package moon

import (
	"testing"
	"time"

	"github.com/spencer-p/moondash/pkg/clock"
	"github.com/spencer-p/moondash/pkg/julian"
)

func TestPhaseIndexEpoch(t *testing.T) {
	if got := PhaseIndex(newMoonEpoch); got != 0 {
		t.Errorf("PhaseIndex(epoch) = %d, want 0", got)
	}
	if got := FromJulianDate(newMoonEpoch); got != NewMoon {
		t.Errorf("FromJulianDate(epoch) = %v, want NewMoon", got)
	}
}

func TestPhaseIndexHalfCycle(t *testing.T) {
	jd := newMoonEpoch + 14.7652944 // half a synodic month later
	if got := PhaseIndex(jd); got != 4 {
		t.Errorf("PhaseIndex(epoch + half cycle) = %d, want 4", got)
	}
	if got := FromJulianDate(jd); got != FullMoon {
		t.Errorf("FromJulianDate(epoch + half cycle) = %v, want FullMoon", got)
	}
}

func TestPhaseIndexBeforeEpoch(t *testing.T) {
	// One day before the reference new moon wraps to the tail of the prior
	// cycle instead of failing.
	got := PhaseIndex(newMoonEpoch - 1)
	if got < 0 || got > 8 {
		t.Fatalf("PhaseIndex(epoch - 1) = %d, out of range [0, 8]", got)
	}
	if got != 8 {
		t.Errorf("PhaseIndex(epoch - 1) = %d, want 8", got)
	}
	if phase := FromJulianDate(newMoonEpoch - 1); phase != NewMoon {
		t.Errorf("FromJulianDate(epoch - 1) = %v, want NewMoon", phase)
	}
}

func TestPhaseIndexFarBeforeEpoch(t *testing.T) {
	// Even dates several cycles early must land in a valid bucket.
	for days := 1.0; days < 300; days += 7.3 {
		got := PhaseIndex(newMoonEpoch - days)
		if got < 0 || got > 8 {
			t.Errorf("PhaseIndex(epoch - %v) = %d, out of range [0, 8]", days, got)
		}
	}
}

func TestPhaseIndexCoversCycle(t *testing.T) {
	// Stepping through one cycle should hit every bucket in order.
	prev := 0
	seen := make(map[int]bool)
	for d := 0.0; d < synodicMonth; d += 0.25 {
		got := PhaseIndex(newMoonEpoch + d)
		if got < prev {
			t.Fatalf("PhaseIndex went backwards at age %v: %d after %d", d, got, prev)
		}
		seen[got] = true
		prev = got
	}
	for i := 0; i <= 8; i++ {
		if !seen[i] {
			t.Errorf("bucket %d never produced over a full cycle", i)
		}
	}
}

func TestNameAndIconAreTotal(t *testing.T) {
	table := []struct {
		phase Phase
		name  string
		icon  string
	}{
		{NewMoon, "New Moon", "new-moon.svg"},
		{WaxingCrescent, "Waxing Crescent", "waxing-crescent.svg"},
		{FirstQuarter, "First Quarter", "first-quarter.svg"},
		{WaxingGibbous, "Waxing Gibbous", "waxing-gibbous.svg"},
		{FullMoon, "Full Moon", "full-moon.svg"},
		{WaningGibbous, "Waning Gibbous", "waning-gibbous.svg"},
		{LastQuarter, "Last Quarter", "last-quarter.svg"},
		{WaningCrescent, "Waning Crescent", "waning-crescent.svg"},
		// Out of range values all fall back to the new moon.
		{Phase(8), "New Moon", "new-moon.svg"},
		{Phase(99), "New Moon", "new-moon.svg"},
		{Phase(-1), "New Moon", "new-moon.svg"},
	}

	for _, tc := range table {
		if got := tc.phase.Name(); got != tc.name {
			t.Errorf("Phase(%d).Name() = %q, want %q", int(tc.phase), got, tc.name)
		}
		if got := tc.phase.Icon(); got != tc.icon {
			t.Errorf("Phase(%d).Icon() = %q, want %q", int(tc.phase), got, tc.icon)
		}
	}
}

func TestIllumination(t *testing.T) {
	if got := Illumination(newMoonEpoch); got > 0.001 {
		t.Errorf("Illumination(epoch) = %v, want ~0", got)
	}
	if got := Illumination(newMoonEpoch + synodicMonth/2); got < 0.999 {
		t.Errorf("Illumination(epoch + half cycle) = %v, want ~1", got)
	}
	for d := -50.0; d < 50; d += 1.7 {
		got := Illumination(newMoonEpoch + d)
		if got < 0 || got > 1 {
			t.Errorf("Illumination(epoch + %v) = %v, out of range [0, 1]", d, got)
		}
	}
}

func TestWaxing(t *testing.T) {
	if !Waxing(newMoonEpoch + 5) {
		t.Errorf("moon 5 days old should be waxing")
	}
	if Waxing(newMoonEpoch + 20) {
		t.Errorf("moon 20 days old should be waning")
	}
}

func TestTonight(t *testing.T) {
	// Pinned to January 5, 2000: tomorrow is the reference new moon's date.
	clk := clock.Fixed(time.Date(2000, time.January, 5, 8, 30, 0, 0, time.UTC))
	if got := Tonight(clk); got != NewMoon {
		t.Errorf("Tonight on the eve of the epoch = %v, want NewMoon", got)
	}
}

func TestTonightMonthRollover(t *testing.T) {
	// The day after January 31 is February 1, not January 32.
	clk := clock.Fixed(time.Date(2021, time.January, 31, 23, 0, 0, 0, time.UTC))
	want := FromJulianDate(julian.Date(2, 1, 2021, 12, 0, 0))
	if got := Tonight(clk); got != want {
		t.Errorf("Tonight over a month boundary = %v, want %v", got, want)
	}

	// Same across a year boundary.
	clk = clock.Fixed(time.Date(2020, time.December, 31, 23, 0, 0, 0, time.UTC))
	want = FromJulianDate(julian.Date(1, 1, 2021, 12, 0, 0))
	if got := Tonight(clk); got != want {
		t.Errorf("Tonight over a year boundary = %v, want %v", got, want)
	}
}
