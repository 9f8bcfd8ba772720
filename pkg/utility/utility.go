package utility

import "strings"

// DigitCount count digits in an int64 number
func DigitCount(number int64) int64 {
	var count int64 = 0
	for number != 0 {
		number /= 10
		count++
	}
	return count
}

// BytesToString convert byte list to string with no allocation
//
// A small cost a few ns in testing is incurred for using a string builder.
// There are no heap allocations using strings.Builder.
func BytesToString(bytes ...byte) string {
	var sb = new(strings.Builder)
	for i := 0; i < len(bytes); i++ {
		sb.WriteByte(bytes[i])
	}
	return sb.String()
}

// StartOfMonth[leap][m] counts the number of days in a year before month m
// (0-based) begins. There is an entry for m=12, counting the number of days
// before January of next year (365 or 366).
//
// Ref: http://en.wikipedia.org/wiki/ISO_week_date
var StartOfMonth = [2][13]int{
	// common year
	{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365},
	// leap year
	{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366},
}

// IsLeap reports whether year is a Gregorian leap year
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// LeapIndex row of StartOfMonth to use for year
func LeapIndex(year int) int {
	if IsLeap(year) {
		return 1
	}
	return 0
}

// DaysIn number of days in year
func DaysIn(year int) int {
	return StartOfMonth[LeapIndex(year)][12]
}

// FirstWeekdayOf the weekday (Sunday=0) of January 1st of year. Valid for the
// Gregorian calendar, which began Sept 14, 1752 in the UK and its colonies.
//
// Ref: http://en.wikipedia.org/wiki/Determination_of_the_day_of_the_week
func FirstWeekdayOf(year int) int {
	leap := 0
	if IsLeap(year) {
		leap = 6
	}
	return ((2 * (3 - (year/100)%4)) + (year % 100) + ((year % 100) / 4) + leap + 1) % 7
}
