// Package timetricks holds small calendar-day helpers shared by the
// dashboard and the astronomy packages.
package timetricks

import (
	"time"
)

const dayFormat = "20060102"

// SameDay reports whether two times fall on the same calendar day.
func SameDay(t time.Time, t2 time.Time) bool {
	return t.Format(dayFormat) == t2.Format(dayFormat)
}

// UniqueDay returns a string representation of t that is unique by the day.
// Two separate times on the same calendar day return identical strings.
func UniqueDay(t time.Time) string {
	return t.Format(dayFormat)
}

// TrimClock strips the wall clock component of t, leaving midnight of the
// same calendar day.
func TrimClock(t time.Time) time.Time {
	h, m, s := t.Clock()
	return t.Add(-1 *
		(time.Duration(h)*time.Hour +
			time.Duration(m)*time.Minute +
			time.Duration(s)*time.Second))
}

// Day renders t's date for humans relative to the current date: "Today",
// "Tomorrow", a weekday name within the coming week, or MM/DD.
func Day(t time.Time) string {
	return day(t, time.Now())
}

// day is Day with the wall clock factored out.
func day(t, now time.Time) string {
	switch days := daysBetween(now, t); {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days > 1 && days < 7:
		return t.Weekday().String()
	default:
		return t.Format("01/02")
	}
}

// daysBetween counts whole calendar days from one time's date to another's.
func daysBetween(from, to time.Time) int {
	return int(TrimClock(to).Sub(TrimClock(from)).Hours() / 24)
}
