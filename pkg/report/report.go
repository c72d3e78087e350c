// Package report assembles a night's moon forecast into one presentable
// value: the phase, how lit the disc is, when the sky gets dark, and a
// little flavor text.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spencer-p/moondash/pkg/julian"
	"github.com/spencer-p/moondash/pkg/moon"
	"github.com/spencer-p/moondash/pkg/sunset"
	"github.com/spencer-p/moondash/pkg/timetricks"
)

const timeFmt = "3:04 PM"

// Report describes the moon on a particular night.
type Report struct {
	Time         time.Time  `json:"time"`
	Phase        moon.Phase `json:"phase"`
	Name         string     `json:"name"`
	Icon         string     `json:"icon"`
	Illumination float64    `json:"illumination"`
	Waxing       bool       `json:"waxing"`
	Dusk         time.Time  `json:"dusk"`
	Quote        string     `json:"quote,omitempty"`
	Exclamation  string     `json:"exclamation,omitempty"`

	// PrettyTime is a human-readable version of the night, relative to the
	// current date. Optional.
	PrettyTime string `json:"pretty_time,omitempty"`
}

// New builds a Report for the night of t's calendar date in the given
// place. Flavor text is left for the caller to fill in.
func New(t time.Time, place sunset.Place) Report {
	year, month, day := t.UTC().Date()
	jd := julian.Date(int(month), day, year, 12, 0, 0)
	phase := moon.FromJulianDate(jd)
	return Report{
		Time:         t,
		Phase:        phase,
		Name:         phase.Name(),
		Icon:         phase.Icon(),
		Illumination: moon.Illumination(jd),
		Waxing:       moon.Waxing(jd),
		Dusk:         sunset.Dusk(t, place),
	}
}

func (r *Report) String() string {
	s := fmt.Sprintf("%s: %s, %.0f%% illuminated, look up after %s",
		r.prettyTime(),
		r.Name,
		100*r.Illumination,
		r.Dusk.Format(timeFmt))
	if r.Exclamation != "" {
		s = fmt.Sprintf("%s. %s", s, r.Exclamation)
	}
	return s
}

func (r *Report) prettyTime() string {
	return timetricks.Day(r.Time)
}

// UpdatePrettyTime makes sure that the report's pretty time is set.
func (r *Report) UpdatePrettyTime() {
	if r.PrettyTime == "" {
		r.PrettyTime = r.prettyTime()
	}
}

func (r *Report) MarshalJSON() ([]byte, error) {
	// Fill in pretty time if needed.
	r.UpdatePrettyTime()
	// Dereference is necessary to avoid infinite recursion; this method
	// only has a pointer receiver.
	return json.Marshal(*r)
}
