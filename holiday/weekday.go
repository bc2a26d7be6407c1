package holiday

import "time"

const daysPerWeek = 7

// MonthStart reports the first day of the month containing d.
func MonthStart(d Date) Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// NthWeekday reports the week-th occurrence of wd in the month containing d,
// e.g. week=2 and wd=time.Monday gives the second Monday.
//
// It reports false when week is outside 1..5, wd is not a weekday, or the
// month has no such occurrence (most months have no fifth Monday).
func NthWeekday(d Date, week int, wd time.Weekday) (Date, bool) {
	if week < 1 || week > 5 || wd < time.Sunday || wd > time.Saturday {
		return Date{}, false
	}

	first := MonthStart(d)
	offset := (int(wd) - int(first.Weekday()) + daysPerWeek) % daysPerWeek
	target := first.AddDays(offset + (week-1)*daysPerWeek)
	if target.Year != d.Year || target.Month != d.Month {
		return Date{}, false
	}
	return target, true
}
