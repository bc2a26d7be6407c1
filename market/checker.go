// Package market tells whether the Tokyo market trades on a given day or at
// a given moment: weekends, national holidays and configured closed days are
// not market days.
package market

import (
	"time"

	"github.com/alpacahq/jpholiday/holiday"
	"github.com/alpacahq/jpholiday/utils/log"
)

// searchLimit bounds NextMarketDay and PreviousMarketDay.
const searchLimit = 366

type clock struct {
	hour, minute, second int
}

func clockOf(t time.Time) clock {
	return clock{t.Hour(), t.Minute(), t.Second()}
}

func (c clock) seconds() int {
	return c.hour*60*60 + c.minute*60 + c.second
}

// Checker answers market day and market hours questions. It is immutable
// and safe for concurrent use.
type Checker struct {
	loc        *time.Location
	openTime   clock
	closeTime  clock
	closedDays map[holiday.Date]struct{}
}

// NewChecker returns a Checker evaluating times in loc.
func NewChecker(cfg *Config, loc *time.Location) *Checker {
	if loc == nil {
		loc = time.UTC
	}
	c := &Checker{
		loc:        loc,
		openTime:   cfg.OpenTime.clock(),
		closeTime:  cfg.CloseTime.clock(),
		closedDays: map[holiday.Date]struct{}{},
	}
	for _, d := range cfg.ClosedDates() {
		c.closedDays[d] = struct{}{}
	}
	return c
}

// Location returns the location times are evaluated in.
func (c *Checker) Location() *time.Location {
	return c.loc
}

// IsMarketDay reports whether the market trades on the day t falls on in
// the checker's location.
func (c *Checker) IsMarketDay(t time.Time) bool {
	d := holiday.FromTime(t.In(c.loc))
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		log.Debug("[Market] %v is closed on %v", d, wd)
		return false
	}
	if name, ok := holiday.Name(d); ok {
		log.Debug("[Market] %v is closed for %s", d, name)
		return false
	}
	if _, ok := c.closedDays[d]; ok {
		log.Debug("[Market] %v is a configured closed day", d)
		return false
	}
	return true
}

// IsOpen reports whether t is a market day and within [open, close).
func (c *Checker) IsOpen(t time.Time) bool {
	if !c.IsMarketDay(t) {
		return false
	}
	s := clockOf(t.In(c.loc)).seconds()
	if s < c.openTime.seconds() || s >= c.closeTime.seconds() {
		log.Debug("[Market] not open at %v. openTime=%v, closeTime=%v", t, c.openTime, c.closeTime)
		return false
	}
	return true
}

// NextMarketDay returns midnight of the first market day on or after t's
// day. It returns the zero time when none is found within a year.
func (c *Checker) NextMarketDay(t time.Time) time.Time {
	return c.seek(t, 1)
}

// PreviousMarketDay returns midnight of the last market day on or before t's
// day. It returns the zero time when none is found within a year.
func (c *Checker) PreviousMarketDay(t time.Time) time.Time {
	return c.seek(t, -1)
}

func (c *Checker) seek(t time.Time, step int) time.Time {
	d := holiday.FromTime(t.In(c.loc))
	for i := 0; i < searchLimit; i++ {
		day := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, c.loc)
		if c.IsMarketDay(day) {
			return day
		}
		d = d.AddDays(step)
	}
	return time.Time{}
}
