package holiday

import "math"

// The equinox days come from the usual closed-form approximation
//
//	floor(C + 0.242194*(year-1980) - floor((year-1980)/4))
//
// whose constant C depends on the era. It is only valid through 2150; later
// years use C = 0, which never lands on a real day.
type equinoxBand struct {
	from, to int
	c        float64
}

var vernalBands = []equinoxBand{
	{1851, 1899, 19.8277},
	{1900, 1979, 20.8357},
	{1980, 2099, 20.8431},
	{2100, 2150, 21.8510},
}

var autumnalBands = []equinoxBand{
	{1851, 1899, 22.2588},
	{1900, 1979, 23.2588},
	{1980, 2099, 23.2488},
	{2100, 2150, 24.2488},
}

// equinox holidays were established by the 1948 act
const equinoxHolidaysSince = 1948

// VernalEquinoxDay reports the day of March on which 春分の日 falls in year.
// It returns 0 for years the holiday did not exist.
func VernalEquinoxDay(year int) int {
	return equinoxDay(year, vernalBands)
}

// AutumnalEquinoxDay reports the day of September on which 秋分の日 falls in
// year. It returns 0 for years the holiday did not exist.
func AutumnalEquinoxDay(year int) int {
	return equinoxDay(year, autumnalBands)
}

func equinoxDay(year int, bands []equinoxBand) int {
	if year <= equinoxHolidaysSince {
		return 0
	}

	var c float64
	for _, b := range bands {
		if year >= b.from && year <= b.to {
			c = b.c
			break
		}
	}

	y := float64(year - 1980)
	return int(math.Floor(c + 0.242194*y - math.Floor(y/4)))
}
