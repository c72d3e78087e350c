// Package sunset finds the sun events that frame a night of moon watching.
package sunset

import (
	"time"

	"github.com/spencer-p/moondash/pkg/timetricks"

	"github.com/keep94/sunrise"
)

// Dusk returns the sunset on t's calendar day in the given place. The moon
// becomes worth looking at shortly after this.
func Dusk(t time.Time, place Place) time.Time {
	s := around(t, place)
	return s.Sunset()
}

// NextDawn returns the sunrise of the calendar day after t, ending the
// night that Dusk starts.
func NextDawn(t time.Time, place Place) time.Time {
	s := around(t, place)
	s.AddDays(1)
	return s.Sunrise()
}

// around positions a sunrise calculation on t's calendar day. The sunrise
// package is not very clean with its dates and may land a day off in
// either direction.
func around(t time.Time, place Place) sunrise.Sunrise {
	var s sunrise.Sunrise
	s.Around(place.Lat, place.Long, t)
	for !timetricks.SameDay(t, s.Sunrise()) {
		if s.Sunrise().After(t) {
			s.AddDays(-1)
		} else {
			s.AddDays(1)
		}
	}
	return s
}
