// Package julian converts civil calendar dates into Julian Day Numbers and
// fractional Julian Dates, the continuous day count astronomical arithmetic
// runs on.
package julian

// DayNumber returns the Julian Day Number for a proleptic Gregorian calendar
// date. January and February count as months 13 and 14 of the previous year
// so the leap day falls at the end of the anchored year (March 1, 4800 BCE).
// Every division here truncates; the formula depends on it.
func DayNumber(month, day, year int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// DateAt attaches a time of day to a Julian Day Number, yielding a
// fractional Julian Date.
func DateAt(jdn, hour, minute, second int) float64 {
	return float64(jdn) +
		float64(hour)/24 +
		float64(minute)/1440 +
		float64(second)/86400
}

// Date converts a civil date and clock time directly to a Julian Date.
func Date(month, day, year, hour, minute, second int) float64 {
	return DateAt(DayNumber(month, day, year), hour, minute, second)
}
