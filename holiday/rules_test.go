package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// No two rules may agree on a date. If one ever does, Name keeps reporting
// the first rule.
func TestRulesDoNotOverlap(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Overlaps(1900, 2150, 8))
}

func TestRulesOrder(t *testing.T) {
	t.Parallel()

	rs := Rules()
	assert.Len(t, rs, 23)
	assert.Equal(t, NewYearsDay, rs[0].Name)
	assert.Equal(t, LaborThanksgivingDay, rs[16].Name)
	assert.Equal(t, EnthronementCeremony2019, rs[len(rs)-1].Name)

	// callers get a copy
	rs[0] = Rule{Name: "x"}
	assert.Equal(t, NewYearsDay, Rules()[0].Name)
}

func TestImperialCeremoniesAreSingleDays(t *testing.T) {
	t.Parallel()

	days := map[string]Date{
		CrownPrinceAkihitoWedding:  MustDate(1959, time.April, 10),
		EmperorShowaFuneral:        MustDate(1989, time.February, 24),
		EnthronementCeremony1990:   MustDate(1990, time.November, 12),
		CrownPrinceNaruhitoWedding: MustDate(1993, time.June, 9),
		EnthronementDay:            MustDate(2019, time.May, 1),
		EnthronementCeremony2019:   MustDate(2019, time.October, 22),
	}
	for _, r := range Rules() {
		want, ok := days[r.Name]
		if !ok {
			continue
		}
		assert.True(t, r.Matches(want), r.Name)
		for _, other := range []Date{want.AddDays(-1), want.AddDays(1), {want.Year + 1, want.Month, want.Day}, {want.Year - 1, want.Month, want.Day}} {
			assert.False(t, r.Matches(other), "%s on %s", r.Name, other)
		}
	}
}

func TestRuleEras(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date string
		want []string
	}{
		{"1988-04-29", []string{EmperorsBirthday}},
		{"1989-04-29", []string{GreeneryDay}},
		{"2006-04-29", []string{GreeneryDay}},
		{"2007-04-29", []string{ShowaDay}},
		{"2007-05-04", []string{GreeneryDay}},
		{"2018-12-23", []string{EmperorsBirthday}},
		{"2019-12-23", nil},
		{"2019-02-23", nil},
		{"2020-02-23", []string{EmperorsBirthday}},
		{"1966-02-11", nil},
		{"1967-02-11", []string{NationalFoundationDay}},
		{"1999-01-15", []string{ComingOfAgeDay}},
		{"2000-01-15", nil},
		{"2000-01-10", []string{ComingOfAgeDay}},
		{"1995-07-20", nil},
		{"1996-07-20", []string{MarineDay}},
		{"2020-07-20", nil}, // third Monday, moved for the Olympics
		{"2020-07-23", []string{MarineDay}},
		{"2020-07-24", []string{SportsDay}},
		{"2020-10-12", nil},
		{"2021-07-22", []string{MarineDay}},
		{"2021-07-23", []string{SportsDay}},
		{"2021-08-08", []string{MountainDay}},
		{"2021-08-11", nil},
		{"2022-07-18", []string{MarineDay}},
		{"2022-10-10", []string{SportsDay}},
		{"2015-08-11", nil},
		{"2016-08-11", []string{MountainDay}},
		{"2019-10-14", []string{HealthAndSportsDay}},
		{"2002-09-15", []string{RespectForTheAgedDay}},
		{"2003-09-15", []string{RespectForTheAgedDay}}, // also the third Monday
		{"2004-09-15", nil},
		{"2004-09-20", []string{RespectForTheAgedDay}},
	}
	for _, tt := range tests {
		d, err := Parse(tt.date)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, Matching(d), tt.date)
	}
}
