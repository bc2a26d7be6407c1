package holiday

import "time"

// substitute holidays were introduced by the 1973 amendment
const substituteSince = 1973

// ruleName reports the name of the first rule matching d.
func ruleName(d Date) (string, bool) {
	for i := range rules {
		if rules[i].Matches(d) {
			return rules[i].Name, true
		}
	}
	return "", false
}

// Matching returns the names of every rule matching d, in evaluation order.
// More than one name means two rules overlap; Name still reports the first.
func Matching(d Date) []string {
	var names []string
	for i := range rules {
		if rules[i].Matches(d) {
			names = append(names, rules[i].Name)
		}
	}
	return names
}

// substitute reports the substitute holiday owed on d, if any. Walking back
// from the day before d, every day must be a holiday until a Sunday holiday
// is found; that holiday's observance moves to d.
//
// Only the rule set is consulted, never baseName or Name, so the walk cannot
// recurse.
func substitute(d Date) (string, bool) {
	if d.Year < substituteSince || d.Weekday() == time.Sunday {
		return "", false
	}

	for cur := d.AddDays(-1); ; cur = cur.AddDays(-1) {
		name, ok := ruleName(cur)
		if !ok {
			return "", false
		}
		if cur.Weekday() == time.Sunday {
			return name + SubstituteSuffix, true
		}
	}
}

// baseName resolves d without the citizen's holiday bridge, which itself
// needs this restricted form for the neighbouring days.
func baseName(d Date) (string, bool) {
	if name, ok := ruleName(d); ok {
		return name, true
	}
	return substitute(d)
}

// Name reports the name of the national holiday on d, or false when d is not
// a holiday.
func Name(d Date) (string, bool) {
	if name, ok := baseName(d); ok {
		return name, true
	}

	// a Sunday is never a citizen's holiday
	if d.Weekday() == time.Sunday {
		return "", false
	}

	_, prev := baseName(d.AddDays(-1))
	_, next := baseName(d.AddDays(1))
	if prev && next {
		return CitizensHoliday, true
	}
	return "", false
}

// NameOf parses s with Parse and resolves it with Name. Text that is not a
// date is not a holiday.
func NameOf(s string) (string, bool) {
	d, err := Parse(s)
	if err != nil {
		return "", false
	}
	return Name(d)
}

// IsHoliday reports whether d is a national holiday.
func IsHoliday(d Date) bool {
	_, ok := Name(d)
	return ok
}

// IsNonWorkingDay reports whether d is a Saturday, a Sunday or a national
// holiday.
func IsNonWorkingDay(d Date) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return IsHoliday(d)
}
