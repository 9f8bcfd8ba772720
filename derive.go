package strptime

import "github.com/imarsman/strptime/pkg/utility"

// fields which Tm fields a parse has set
type fields uint8

const (
	fYear fields = 1 << iota
	fMon
	fYday
	fMday
	fWday
	fHour
)

func (f fields) has(b fields) bool {
	return f&b == b
}

// derive fill in the date fields the format did not supply. A field that was
// set is never overwritten, with the exception of Year when a derived day of
// year runs outside the year.
func (p *parser) derive() {
	tm := p.tm

	if !p.state.has(fYday) && p.state.has(fYear) {
		if p.state.has(fMon | fMday) {
			tm.Yday = utility.StartOfMonth[leapIndex(tm.Year)][tm.Mon] + tm.Mday - 1
			p.state |= fYday
		} else if p.dayOffset != -1 {
			// The given weekday of the given week, or the first day of the week
			if !p.state.has(fWday) {
				tm.Wday = p.dayOffset
				p.state |= fWday
			}
			first := utility.FirstWeekdayOf(tm.Year + YearBase)
			tm.Yday = (7-first+p.dayOffset)%7 + (p.weekOffset-1)*7 + tm.Wday - p.dayOffset
			p.state |= fYday
		}
	}

	if !p.state.has(fYday | fYear) {
		return
	}

	if !p.state.has(fMon) {
		// Week 0 can land in the previous year
		for tm.Yday < 0 {
			tm.Year--
			tm.Yday += utility.DaysIn(tm.Year + YearBase)
		}

		row := utility.StartOfMonth[leapIndex(tm.Year)]
		i := 0
		for i < len(row) && tm.Yday >= row[i] {
			i++
		}
		if i > 12 {
			// Past the end of the year, carry into the next one
			i = 1
			tm.Yday -= row[12]
			tm.Year++
		}
		tm.Mon = i - 1
		p.state |= fMon
	}

	if !p.state.has(fMday) {
		tm.Mday = tm.Yday - utility.StartOfMonth[leapIndex(tm.Year)][tm.Mon] + 1
		p.state |= fMday
	}

	if !p.state.has(fWday) {
		wday := (utility.FirstWeekdayOf(tm.Year+YearBase) + tm.Yday) % 7
		if wday < 0 {
			wday += 7
		}
		tm.Wday = wday
		p.state |= fWday
	}
}

// leapIndex row of utility.StartOfMonth for a Tm.Year
func leapIndex(tmYear int) int {
	return utility.LeapIndex(tmYear + YearBase)
}
