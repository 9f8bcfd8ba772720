package strptime

import "strings"

// The one name table supported, that of the C locale
var (
	days = []string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	}
	abbrDays = []string{
		"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
	}
	months = []string{
		"January", "February", "March", "April", "May", "June", "July",
		"August", "September", "October", "November", "December",
	}
	abbrMonths = []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
	amPm = []string{
		"AM", "PM",
	}
)

// Fixed sub-formats of the composite directives
const (
	dateTimeFormat   = "%a %b %e %H:%M:%S %Y" // %c
	dateFormat       = "%m/%d/%y"             // %x
	timeFormat       = "%H:%M:%S"             // %X
	timeAmPmFormat   = "%I:%M:%S %p"          // %r
	monthDayYear     = "%m/%d/%y"             // %D
	yearMonthDay     = "%Y-%m-%d"             // %F
	hourMinute       = "%H:%M"                // %R
	hourMinuteSecond = "%H:%M:%S"             // %T
)

// hasPrefixFold case insensitive strings.HasPrefix
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// findString match the input at pos against full names and then against
// abbreviations, either of which may be nil. The first name in list order
// that is a case insensitive prefix of the input wins. idx is its position
// within its own list. Empty names never match.
func findString(value string, pos int, full, abbr []string) (idx, next int, ok bool) {
	rest := value[pos:]
	for _, names := range [2][]string{full, abbr} {
		for i, name := range names {
			if name == "" {
				continue
			}
			if hasPrefixFold(rest, name) {
				return i, pos + len(name), true
			}
		}
	}

	return 0, pos, false
}
