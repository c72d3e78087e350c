package moon

// Name returns the human readable phase name. Values outside the eight
// known phases, including the raw cycle index 8, read as a new moon.
func (p Phase) Name() string {
	switch p {
	case WaxingCrescent:
		return "Waxing Crescent"
	case FirstQuarter:
		return "First Quarter"
	case WaxingGibbous:
		return "Waxing Gibbous"
	case FullMoon:
		return "Full Moon"
	case WaningGibbous:
		return "Waning Gibbous"
	case LastQuarter:
		return "Last Quarter"
	case WaningCrescent:
		return "Waning Crescent"
	default:
		return "New Moon"
	}
}

// Icon returns the file name of the phase's icon under the static assets.
// Total in the same way Name is.
func (p Phase) Icon() string {
	switch p {
	case WaxingCrescent:
		return "waxing-crescent.svg"
	case FirstQuarter:
		return "first-quarter.svg"
	case WaxingGibbous:
		return "waxing-gibbous.svg"
	case FullMoon:
		return "full-moon.svg"
	case WaningGibbous:
		return "waning-gibbous.svg"
	case LastQuarter:
		return "last-quarter.svg"
	case WaningCrescent:
		return "waning-crescent.svg"
	default:
		return "new-moon.svg"
	}
}

func (p Phase) String() string {
	return p.Name()
}
