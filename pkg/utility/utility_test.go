package utility_test

import (
	"testing"
	"time"

	"github.com/imarsman/strptime/pkg/utility"
	"github.com/matryer/is"
)

func TestDigitCount(t *testing.T) {
	is := is.New(t)

	is.Equal(utility.DigitCount(0), int64(0))
	is.Equal(utility.DigitCount(6), int64(1))
	is.Equal(utility.DigitCount(99), int64(2))
	is.Equal(utility.DigitCount(366), int64(3))
	is.Equal(utility.DigitCount(9999), int64(4))
}

func TestIsLeap(t *testing.T) {
	is := is.New(t)

	is.True(utility.IsLeap(2024))
	is.True(utility.IsLeap(2000))
	is.True(!utility.IsLeap(1900))
	is.True(!utility.IsLeap(2023))
	is.Equal(utility.DaysIn(2024), 366)
	is.Equal(utility.DaysIn(2100), 365)
}

// Compare against the time package for every year the formula is meant to cover
func TestFirstWeekdayOf(t *testing.T) {
	is := is.New(t)

	for year := 1753; year <= 2400; year++ {
		want := int(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Weekday())
		got := utility.FirstWeekdayOf(year)
		if got != want {
			t.Logf("year %d got %d want %d", year, got, want)
		}
		is.Equal(got, want)
	}
}

func TestStartOfMonth(t *testing.T) {
	is := is.New(t)

	for _, year := range []int{2023, 2024} {
		row := utility.StartOfMonth[utility.LeapIndex(year)]
		for m := 0; m < 12; m++ {
			yday := time.Date(year, time.Month(m+1), 1, 0, 0, 0, 0, time.UTC).YearDay() - 1
			is.Equal(row[m], yday)
		}
		is.Equal(row[12], utility.DaysIn(year))
	}
}

func TestBytesToString(t *testing.T) {
	is := is.New(t)

	is.Equal(utility.BytesToString('G', 'M', 'T'), "GMT")
	is.Equal(utility.BytesToString(), "")
}
