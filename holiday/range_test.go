package holiday

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomDates(t *testing.T, n int) []Date {
	t.Helper()

	faker := gofakeit.New(20240101)
	start := time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2150, time.December, 31, 0, 0, 0, 0, time.UTC)

	out := make([]Date, n)
	for i := range out {
		out[i] = FromTime(faker.DateRange(start, end))
	}
	return out
}

func TestRandomDates(t *testing.T) {
	t.Parallel()

	for _, d := range randomDates(t, 2000) {
		name, ok := Name(d)
		assert.Equal(t, ok, IsHoliday(d), d.String())
		assert.Equal(t, ok, name != "", d.String())

		again, againOK := Name(d)
		assert.Equal(t, name, again, d.String())
		assert.Equal(t, ok, againOK, d.String())

		var want []Holiday
		if ok {
			want = []Holiday{{Date: d, Name: name}}
		}
		if diff := cmp.Diff(want, Between(d, d, true)); diff != "" {
			t.Errorf("Between(%s, %s, true) mismatch (-want +got):\n%s", d, d, diff)
		}
		assert.Empty(t, Between(d, d, false), d.String())

		if ok {
			assert.True(t, IsNonWorkingDay(d), d.String())
		}
	}
}

func TestInYearIsInMonths(t *testing.T) {
	t.Parallel()

	for year := 1950; year <= 2060; year++ {
		var want []Holiday
		for m := time.January; m <= time.December; m++ {
			want = append(want, InMonth(year, m)...)
		}
		if diff := cmp.Diff(want, InYear(year)); diff != "" {
			t.Errorf("InYear(%d) mismatch (-want +got):\n%s", year, diff)
		}

		start := Date{Year: year, Month: time.January, Day: 1}
		end := Date{Year: year, Month: time.December, Day: 31}
		if diff := cmp.Diff(want, Between(start, end, true)); diff != "" {
			t.Errorf("Between(%s, %s) mismatch (-want +got):\n%s", start, end, diff)
		}
	}
}

func TestInMonth(t *testing.T) {
	t.Parallel()

	got := InMonth(2024, time.September)
	want := []Holiday{
		{Date: MustDate(2024, time.September, 16), Name: RespectForTheAgedDay},
		{Date: MustDate(2024, time.September, 22), Name: AutumnalEquinox},
		{Date: MustDate(2024, time.September, 23), Name: AutumnalEquinox + SubstituteSuffix},
	}
	assert.Equal(t, want, got)

	assert.Empty(t, InMonth(2024, 0))
	assert.Empty(t, InMonth(2024, 13))
	assert.Empty(t, InMonth(2024, time.June))
}

func TestBetween(t *testing.T) {
	t.Parallel()

	start := MustDate(2019, time.April, 29)
	end := MustDate(2019, time.May, 6)

	inclusive := Between(start, end, true)
	require.Len(t, inclusive, 8)
	assert.Equal(t, Holiday{Date: start, Name: ShowaDay}, inclusive[0])
	assert.Equal(t, Holiday{Date: MustDate(2019, time.April, 30), Name: CitizensHoliday}, inclusive[1])
	assert.Equal(t, Holiday{Date: MustDate(2019, time.May, 1), Name: EnthronementDay}, inclusive[2])
	assert.Equal(t, Holiday{Date: MustDate(2019, time.May, 2), Name: CitizensHoliday}, inclusive[3])
	assert.Equal(t, Holiday{Date: end, Name: ChildrensDay + SubstituteSuffix}, inclusive[7])

	exclusive := Between(start, end, false)
	assert.Equal(t, inclusive[:7], exclusive)

	assert.Empty(t, Between(end, start, true))
	assert.Empty(t, Between(end, start, false))
}

func TestScanYears(t *testing.T) {
	t.Parallel()

	got := ScanYears(1990, 2030, 4)
	require.Len(t, got, 41)
	for i, hs := range got {
		year := 1990 + i
		if diff := cmp.Diff(InYear(year), hs); diff != "" {
			t.Errorf("ScanYears year %d mismatch (-want +got):\n%s", year, diff)
		}
	}

	assert.Nil(t, ScanYears(2030, 1990, 4))
	assert.Len(t, ScanYears(2024, 2024, 0), 1)
}

func TestOverlapsReportsEveryRule(t *testing.T) {
	t.Parallel()

	// nothing overlaps before the first rule takes effect either
	assert.Empty(t, Overlaps(1850, 1899, 2))
	assert.Nil(t, Overlaps(2000, 1999, 2))
}
