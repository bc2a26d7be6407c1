package holiday

import "time"

// Holiday names as written in the Act on National Holidays.
const (
	NewYearsDay             = "元日"
	ComingOfAgeDay          = "成人の日"
	NationalFoundationDay   = "建国記念の日"
	EmperorsBirthday        = "天皇誕生日"
	VernalEquinox           = "春分の日"
	GreeneryDay             = "みどりの日"
	ShowaDay                = "昭和の日"
	ConstitutionMemorialDay = "憲法記念日"
	ChildrensDay            = "こどもの日"
	MarineDay               = "海の日"
	MountainDay             = "山の日"
	RespectForTheAgedDay    = "敬老の日"
	AutumnalEquinox         = "秋分の日"
	HealthAndSportsDay      = "体育の日"
	SportsDay               = "スポーツの日"
	CultureDay              = "文化の日"
	LaborThanksgivingDay    = "勤労感謝の日"

	CrownPrinceAkihitoWedding  = "皇太子・明仁親王の結婚の儀"
	EmperorShowaFuneral        = "昭和天皇の大喪の礼"
	EnthronementCeremony1990   = "即位の礼正殿の儀"
	CrownPrinceNaruhitoWedding = "皇太子・皇太子徳仁親王の結婚の儀"
	EnthronementDay            = "天皇の即位の日"
	EnthronementCeremony2019   = "即位礼正殿の儀"

	// CitizensHoliday is the name given to a weekday sandwiched between two
	// holidays.
	CitizensHoliday = "国民の休日"
	// SubstituteSuffix is appended to the name of a Sunday holiday whose
	// observance moved to a later weekday.
	SubstituteSuffix = " 振替休日"
)

// DayFn calculates the day of the month a holiday falls on in year. Days
// that are zero or negative never match.
type DayFn func(year int) int

// era is one legal definition of a holiday, in force from since through
// until (inclusive, zero meaning unbounded).
//
// A valid era is one of:
// - month and day (May 3rd)
// - month, week and weekday (the second Monday of January)
// - month and dayFn (the vernal equinox)
type era struct {
	since, until int

	month   time.Month
	day     int
	week    int
	weekday time.Weekday
	dayFn   DayFn
}

func fixed(month time.Month, day int) era {
	return era{month: month, day: day}
}

func floating(month time.Month, week int, weekday time.Weekday) era {
	return era{month: month, week: week, weekday: weekday}
}

func computed(month time.Month, fn DayFn) era {
	return era{month: month, dayFn: fn}
}

// exact is a one-off holiday for a single day.
func exact(year int, month time.Month, day int) era {
	return era{since: year, until: year, month: month, day: day}
}

func (e era) from(year int) era {
	e.since = year
	return e
}

func (e era) through(year int) era {
	e.until = year
	return e
}

func (e era) years(since, until int) era {
	e.since, e.until = since, until
	return e
}

func (e era) matches(d Date) bool {
	if e.since != 0 && d.Year < e.since {
		return false
	}
	if e.until != 0 && d.Year > e.until {
		return false
	}
	if d.Month != e.month {
		return false
	}

	switch {
	case e.dayFn != nil:
		return d.Day == e.dayFn(d.Year)
	case e.week > 0:
		nth, ok := NthWeekday(d, e.week, e.weekday)
		return ok && nth == d
	default:
		return d.Day == e.day
	}
}

// Rule is a named national holiday together with every legal definition it
// has had.
type Rule struct {
	Name string
	eras []era
}

// Matches reports whether d is the holiday under the law in force in d's
// year.
func (r Rule) Matches(d Date) bool {
	for _, e := range r.eras {
		if e.matches(d) {
			return true
		}
	}
	return false
}

func newRule(name string, eras ...era) Rule {
	return Rule{Name: name, eras: eras}
}

// rules is evaluated in order and the first match wins. In practice no two
// rules ever match the same day.
var rules = []Rule{
	newRule(NewYearsDay, fixed(time.January, 1)),
	newRule(ComingOfAgeDay,
		fixed(time.January, 15).through(1999),
		floating(time.January, 2, time.Monday).from(2000),
	),
	newRule(NationalFoundationDay, fixed(time.February, 11).from(1967)),
	newRule(EmperorsBirthday,
		fixed(time.April, 29).years(1948, 1988),
		fixed(time.December, 23).years(1989, 2018),
		// 2019 has none: the abdication fell between the two birthdays.
		fixed(time.February, 23).from(2020),
	),
	newRule(VernalEquinox, computed(time.March, VernalEquinoxDay)),
	newRule(GreeneryDay,
		fixed(time.April, 29).years(1989, 2006),
		fixed(time.May, 4).from(2007),
	),
	newRule(ShowaDay, fixed(time.April, 29).from(2007)),
	newRule(ConstitutionMemorialDay, fixed(time.May, 3)),
	newRule(ChildrensDay, fixed(time.May, 5)),
	// 2020 and 2021 moved around the Tokyo Olympics by special measures acts.
	newRule(MarineDay,
		fixed(time.July, 20).years(1996, 2002),
		floating(time.July, 3, time.Monday).years(2003, 2019),
		exact(2020, time.July, 23),
		exact(2021, time.July, 22),
		floating(time.July, 3, time.Monday).from(2022),
	),
	newRule(MountainDay,
		fixed(time.August, 11).years(2016, 2019),
		exact(2020, time.August, 10),
		exact(2021, time.August, 8),
		fixed(time.August, 11).from(2022),
	),
	newRule(RespectForTheAgedDay,
		fixed(time.September, 15).years(1966, 2002),
		floating(time.September, 3, time.Monday).from(2003),
	),
	newRule(AutumnalEquinox, computed(time.September, AutumnalEquinoxDay)),
	newRule(HealthAndSportsDay,
		fixed(time.October, 10).years(1966, 1999),
		floating(time.October, 2, time.Monday).years(2000, 2019),
	),
	newRule(SportsDay,
		exact(2020, time.July, 24),
		exact(2021, time.July, 23),
		floating(time.October, 2, time.Monday).from(2022),
	),
	newRule(CultureDay, fixed(time.November, 3)),
	newRule(LaborThanksgivingDay, fixed(time.November, 23)),

	// imperial ceremonies, each a holiday by its own act
	newRule(CrownPrinceAkihitoWedding, exact(1959, time.April, 10)),
	newRule(EmperorShowaFuneral, exact(1989, time.February, 24)),
	newRule(EnthronementCeremony1990, exact(1990, time.November, 12)),
	newRule(CrownPrinceNaruhitoWedding, exact(1993, time.June, 9)),
	newRule(EnthronementDay, exact(2019, time.May, 1)),
	newRule(EnthronementCeremony2019, exact(2019, time.October, 22)),
}

// Rules returns the holiday rules in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}
