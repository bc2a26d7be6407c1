package holiday

import (
	"time"

	"github.com/alpacahq/jpholiday/utils/pool"
)

// Holiday is a national holiday and the date it falls on.
type Holiday struct {
	Date Date
	Name string
}

const maxDaysInMonth = 31

// InMonth returns the holidays of the given month in date order. An invalid
// month gives an empty result.
func InMonth(year int, month time.Month) []Holiday {
	var out []Holiday
	for day := 1; day <= maxDaysInMonth; day++ {
		d, ok := NewDate(year, month, day)
		if !ok {
			continue
		}
		if name, ok := Name(d); ok {
			out = append(out, Holiday{Date: d, Name: name})
		}
	}
	return out
}

// InYear returns the holidays of year in date order.
func InYear(year int) []Holiday {
	var out []Holiday
	for m := time.January; m <= time.December; m++ {
		out = append(out, InMonth(year, m)...)
	}
	return out
}

// Between returns the holidays from start up to end in date order. end is
// part of the range only when inclusive is set. A start after end gives an
// empty result.
func Between(start, end Date, inclusive bool) []Holiday {
	var out []Holiday
	for d := start; d.Before(end) || (inclusive && d == end); d = d.AddDays(1) {
		if name, ok := Name(d); ok {
			out = append(out, Holiday{Date: d, Name: name})
		}
	}
	return out
}

// eachYear runs fn for every year from..to on a pool of workers goroutines
// and waits for all of them.
func eachYear(from, to, workers int, fn func(year int)) {
	if to < from {
		return
	}

	p := pool.NewPool(workers, func(input interface{}) {
		fn(input.(int))
	})

	years := make(chan interface{})
	go func() {
		for y := from; y <= to; y++ {
			years <- y
		}
		close(years)
	}()

	p.Work(years)
	p.Wait()
}

// ScanYears returns InYear for every year from..to, indexed from from.
// Years are evaluated concurrently on workers goroutines.
func ScanYears(from, to, workers int) [][]Holiday {
	if to < from {
		return nil
	}

	out := make([][]Holiday, to-from+1)
	eachYear(from, to, workers, func(year int) {
		out[year-from] = InYear(year)
	})
	return out
}

// Overlap is a date on which more than one rule matches.
type Overlap struct {
	Date  Date
	Names []string
}

// Overlaps checks every day of the years from..to for dates matched by more
// than one rule and returns them in date order.
func Overlaps(from, to, workers int) []Overlap {
	if to < from {
		return nil
	}

	found := make([][]Overlap, to-from+1)
	eachYear(from, to, workers, func(year int) {
		start := Date{Year: year, Month: time.January, Day: 1}
		end := Date{Year: year + 1, Month: time.January, Day: 1}
		for d := start; d.Before(end); d = d.AddDays(1) {
			if names := Matching(d); len(names) > 1 {
				found[year-from] = append(found[year-from], Overlap{Date: d, Names: names})
			}
		}
	})

	var out []Overlap
	for _, o := range found {
		out = append(out, o...)
	}
	return out
}
