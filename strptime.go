// Package strptime parses textual timestamps against strptime(3) style format
// templates into a broken-down time, a UTC offset in seconds and a zone label.
//
// Unlike the C library function the zone outputs are explicit, so %z and %Z
// work the same everywhere:
//
//	var tm strptime.Tm
//	var zone strptime.Zone
//	n, err := strptime.Parse("10/Oct/2000:13:55:36 -0700", "%d/%b/%Y:%H:%M:%S %z", &tm, &zone)
//
// Supported conversions are those of NetBSD strptime with the C locale.
// Fields the template does not supply are derived where possible: the day of
// the year from the month and day of month (or from %U/%W and the weekday),
// the month and day of month from the day of the year, and the weekday from
// the date.
package strptime

import (
	"sync"
	"time"

	"github.com/JohnCGriffin/overflow"
	"github.com/imarsman/strptime/pkg/localtime"
	"github.com/imarsman/strptime/pkg/tzname"
)

// YearBase Tm.Year counts years since YearBase
const YearBase = 1900

// Tm a broken-down time in the manner of C's struct tm
type Tm struct {
	Sec   int // seconds [0,61]
	Min   int // minutes [0,59]
	Hour  int // hours [0,23]
	Mday  int // day of month [1,31]
	Mon   int // month of year [0,11]
	Year  int // years since 1900
	Wday  int // day of week [0,6] (Sunday = 0)
	Yday  int // day of year [0,365]
	IsDST int // daylight saving time flag
}

// Zone the UTC offset and zone label set by %z and %Z. Name refers to one of
// the package's fixed labels or to a name held by the ZoneTable in use.
type Zone struct {
	Offset int64 // seconds east of UTC
	Name   string
}

// Localtime converts seconds since the Unix epoch for %s
type Localtime interface {
	Localtime(sec int64) time.Time
}

// ZoneTable the {standard, daylight} zone names matched by %Z and the
// standard offset they imply. It must not change while a parse is running.
type ZoneTable interface {
	Names() [2]string
	StdOffset() int64
}

// Parser parses with a given Localtime and ZoneTable. The zero value and
// values returned by New are safe for concurrent use.
type Parser struct {
	localtime Localtime
	zones     ZoneTable
}

// Option configures a Parser
type Option func(*Parser)

// WithLocaltime use l to convert %s values
func WithLocaltime(l Localtime) Option {
	return func(p *Parser) {
		p.localtime = l
	}
}

// WithZoneTable use t for %Z
func WithZoneTable(t ZoneTable) Option {
	return func(p *Parser) {
		p.zones = t
	}
}

// New get a parser. Without options it converts %s in time.Local and matches
// %Z against the zone names of time.Local.
func New(opts ...Option) *Parser {
	p := new(Parser)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var (
	defaultParser        = New()
	defaultLocaltimeOnce sync.Once
	defaultLocaltime     *localtime.Converter
)

func (p *Parser) localtimeConverter() Localtime {
	if p.localtime != nil {
		return p.localtime
	}
	defaultLocaltimeOnce.Do(func() {
		defaultLocaltime = localtime.Must(time.Local, localtime.DefaultCacheSize)
	})
	return defaultLocaltime
}

func (p *Parser) zoneTable() ZoneTable {
	if p.zones != nil {
		return p.zones
	}
	return tzname.Default()
}

// Parse parse value with the default parser. See Parser.Parse.
func Parse(value, format string, tm *Tm, zone *Zone) (int, error) {
	return defaultParser.Parse(value, format, tm, zone)
}

// Parse match value against format, storing fields into tm and zone as they
// are matched. It returns the index in value just past the matched text, which
// may be short of len(value). zone may be nil when the caller does not need it.
//
// Fields format does not mention keep the value they had on entry, so tm is
// usually zeroed or seeded with a reference date. On error tm and zone may have
// been partially written and should be discarded.
func (p *Parser) Parse(value, format string, tm *Tm, zone *Zone) (int, error) {
	if zone == nil {
		zone = new(Zone)
	}
	st := parser{
		Parser:    p,
		tm:        tm,
		zone:      zone,
		dayOffset: -1,
	}

	pos, err := st.parse(value, 0, format)
	if err != nil {
		return 0, err
	}
	st.derive()

	return pos, nil
}

// Alternate representation modifiers. They change nothing but each
// conversion has its own set of modifiers it accepts.
type altFormat uint8

const (
	altE altFormat = 1 << iota
	altO
)

var legalAlt = [256]altFormat{
	'c': altE, 'C': altE, 'x': altE, 'X': altE, 'Y': altE,

	'd': altO, 'e': altO, 'H': altO, 'I': altO, 'm': altO, 'M': altO,
	'S': altO, 'U': altO, 'W': altO, 'u': altO, 'w': altO,

	'g': altE | altO, 'G': altE | altO, 'V': altE | altO, 'y': altE | altO,
	's': altE | altO, 'z': altE | altO, 'Z': altE | altO,
}

// parser the state of one top level Parse call, shared with the calls made
// for composite directives
type parser struct {
	*Parser
	tm   *Tm
	zone *Zone

	state      fields // fields set so far
	splitYear  bool   // %C or %y seen
	dayOffset  int    // -1 or first day of the week for %U (0) and %W (1)
	weekOffset int    // week number from %U or %W
}

func (p *parser) parse(value string, pos int, format string) (int, error) {
	for f := 0; f < len(format); {
		c := format[f]
		f++

		// White space matches any amount of white space, including none
		if isSpace(c) {
			pos = skipSpace(value, pos)
			continue
		}

		if c != '%' {
			if pos >= len(value) || value[pos] != c {
				return pos, noMatch(0, "mismatch", pos)
			}
			pos++
			continue
		}

		var alt altFormat
		for {
			if f >= len(format) {
				return pos, noMatch('%', "incomplete directive", pos)
			}
			c = format[f]
			f++
			if c != 'E' && c != 'O' {
				break
			}
			if alt != 0 {
				return pos, noMatch(c, "repeated modifier", pos)
			}
			if c == 'E' {
				alt = altE
			} else {
				alt = altO
			}
		}
		if alt&^legalAlt[c] != 0 {
			return pos, noMatch(c, "modifier not allowed", pos)
		}

		var err error
		pos, err = p.directive(c, value, pos)
		if err != nil {
			return pos, err
		}
	}

	return pos, nil
}

// directive match one conversion
func (p *parser) directive(c byte, value string, pos int) (int, error) {
	tm := p.tm

	var (
		n    int
		next int
		ok   bool
	)

	switch c {
	case '%':
		if pos >= len(value) || value[pos] != '%' {
			return pos, noMatch(c, "mismatch", pos)
		}
		return pos + 1, nil

	// Composite conversions
	case 'c':
		p.state |= fWday | fMon | fMday | fYear
		return p.parse(value, pos, dateTimeFormat)
	case 'D':
		p.state |= fMon | fMday | fYear
		return p.parse(value, pos, monthDayYear)
	case 'F':
		p.state |= fMon | fMday | fYear
		return p.parse(value, pos, yearMonthDay)
	case 'R':
		return p.parse(value, pos, hourMinute)
	case 'r':
		return p.parse(value, pos, timeAmPmFormat)
	case 'T':
		return p.parse(value, pos, hourMinuteSecond)
	case 'X':
		return p.parse(value, pos, timeFormat)
	case 'x':
		p.state |= fMon | fMday | fYear
		return p.parse(value, pos, dateFormat)

	// Elementary conversions
	case 'A', 'a':
		n, next, ok = findString(value, pos, days, abbrDays)
		if !ok {
			return pos, noMatch(c, "unknown weekday", pos)
		}
		tm.Wday = n
		p.state |= fWday

	case 'B', 'b', 'h':
		n, next, ok = findString(value, pos, months, abbrMonths)
		if !ok {
			return pos, noMatch(c, "unknown month", pos)
		}
		tm.Mon = n
		p.state |= fMon

	case 'C':
		n, next, ok = convNum(value, pos, 0, 99)
		if !ok {
			return pos, noMatch(c, "want century 0..99", pos)
		}
		year := n*100 - YearBase
		if p.splitYear {
			year += tm.Year % 100
		}
		p.splitYear = true
		tm.Year = year
		p.state |= fYear

	case 'd', 'e':
		n, next, ok = convNum(value, pos, 1, 31)
		if !ok {
			return pos, noMatch(c, "want day of month 1..31", pos)
		}
		tm.Mday = n
		p.state |= fMday

	case 'H', 'k':
		n, next, ok = convNum(value, pos, 0, 23)
		if !ok {
			return pos, noMatch(c, "want hour 0..23", pos)
		}
		tm.Hour = n
		p.state |= fHour

	case 'I', 'l':
		n, next, ok = convNum(value, pos, 1, 12)
		if !ok {
			return pos, noMatch(c, "want hour 1..12", pos)
		}
		// 12 is the first hour of the half day, %p adds 12 for PM
		if n == 12 {
			n = 0
		}
		tm.Hour = n
		p.state |= fHour

	case 'j':
		n, next, ok = convNum(value, pos, 1, 366)
		if !ok {
			return pos, noMatch(c, "want day of year 1..366", pos)
		}
		tm.Yday = n - 1
		p.state |= fYday

	case 'M':
		n, next, ok = convNum(value, pos, 0, 59)
		if !ok {
			return pos, noMatch(c, "want minute 0..59", pos)
		}
		tm.Min = n

	case 'm':
		n, next, ok = convNum(value, pos, 1, 12)
		if !ok {
			return pos, noMatch(c, "want month 1..12", pos)
		}
		tm.Mon = n - 1
		p.state |= fMon

	case 'p':
		n, next, ok = findString(value, pos, amPm, nil)
		if !ok {
			return pos, noMatch(c, "want AM or PM", pos)
		}
		if p.state.has(fHour) && tm.Hour > 11 {
			return pos, noMatch(c, "hour already past 11", pos)
		}
		tm.Hour += n * 12

	case 'S':
		n, next, ok = convNum(value, pos, 0, 61)
		if !ok {
			return pos, noMatch(c, "want second 0..61", pos)
		}
		tm.Sec = n

	case 's':
		return p.epoch(value, pos)

	case 'U', 'W':
		n, next, ok = convNum(value, pos, 0, 53)
		if !ok {
			return pos, noMatch(c, "want week 0..53", pos)
		}
		if c == 'U' {
			p.dayOffset = int(time.Sunday)
		} else {
			p.dayOffset = int(time.Monday)
		}
		p.weekOffset = n

	case 'w':
		n, next, ok = convNum(value, pos, 0, 6)
		if !ok {
			return pos, noMatch(c, "want weekday 0..6", pos)
		}
		tm.Wday = n
		p.state |= fWday

	case 'u':
		n, next, ok = convNum(value, pos, 1, 7)
		if !ok {
			return pos, noMatch(c, "want weekday 1..7", pos)
		}
		tm.Wday = n % 7
		p.state |= fWday

	// ISO 8601 week based year and week, checked and skipped
	case 'g':
		_, next, ok = convNum(value, pos, 0, 99)
		if !ok {
			return pos, noMatch(c, "want year 0..99", pos)
		}
	case 'G':
		next = pos
		for next < len(value) && isDigit(value[next]) {
			next++
		}
		if next == pos {
			return pos, noMatch(c, "want year", pos)
		}
	case 'V':
		_, next, ok = convNum(value, pos, 0, 53)
		if !ok {
			return pos, noMatch(c, "want week 0..53", pos)
		}

	case 'Y':
		n, next, ok = convNum(value, pos, 0, maxYear)
		if !ok {
			return pos, noMatch(c, "want year 0..9999", pos)
		}
		tm.Year = n - YearBase
		p.state |= fYear

	case 'y':
		n, next, ok = convNum(value, pos, 0, 99)
		if !ok {
			return pos, noMatch(c, "want year 0..99", pos)
		}
		if p.splitYear {
			// Keep the century from %C
			n += (tm.Year / 100) * 100
		} else {
			p.splitYear = true
			if n <= 68 {
				n += 2000 - YearBase
			} else {
				n += 1900 - YearBase
			}
		}
		tm.Year = n
		p.state |= fYear

	case 'Z':
		return p.zoneName(value, pos)
	case 'z':
		return p.zoneOffset(value, pos)

	case 'n', 't':
		next = skipSpace(value, pos)

	default:
		return pos, noMatch(c, "unsupported conversion", pos)
	}

	return next, nil
}

// The largest year %Y reads, and the last second of it in UTC plus a day for
// zones east of UTC
const (
	maxYear         = 9999
	maxEpochSeconds = 253402300799 + 86400
)

// epoch match %s, seconds since the epoch, and set every date field from it
func (p *parser) epoch(value string, pos int) (int, error) {
	if pos >= len(value) || !isDigit(value[pos]) {
		return pos, noMatch('s', "want seconds since the epoch", pos)
	}

	var sec int64
	next := pos
	for next < len(value) && isDigit(value[next]) {
		v, ok := overflow.Mul64(sec, 10)
		if !ok {
			break
		}
		v, ok = overflow.Add64(v, int64(value[next]-'0'))
		if !ok {
			break
		}
		sec = v
		next++
	}

	if sec > maxEpochSeconds {
		return pos, noMatch('s', "seconds past year 9999", pos)
	}
	t := p.localtimeConverter().Localtime(sec)
	if t.Year() > maxYear {
		return pos, noMatch('s', "seconds past year 9999", pos)
	}

	*p.tm = FromTime(t)
	p.state |= fYday | fWday | fMon | fMday | fYear

	return next, nil
}
