package strptime

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/imarsman/strptime/pkg/utility"
	"github.com/pkg/errors"
	"lab.nexedi.com/kirr/go123/xfmt"
)

var (
	locationAtomic atomic.Value
	locationMu     sync.Mutex
)

type zoneKey struct {
	name   string
	offset int
}

func init() {
	// A cache for zones tied to offsets to save quite a bit of time and 3
	// allocations needed to get a fixed zone.
	locationAtomic.Store(make(map[zoneKey]*time.Location))
}

// LocationFromOffset get a location based on the offset seconds from UTC. Uses a cache
// of locations based on offset.
func LocationFromOffset(offsetSec int) *time.Location {
	return cachedLocation("", offsetSec)
}

// cachedLocation fixed zone for name and offset. The map is replaced rather
// than written to so readers never need the lock.
func cachedLocation(name string, offsetSec int) *time.Location {
	key := zoneKey{name, offsetSec}
	if l, ok := locationAtomic.Load().(map[zoneKey]*time.Location)[key]; ok {
		return l
	}

	locationMu.Lock()
	defer locationMu.Unlock()

	cachedZones := locationAtomic.Load().(map[zoneKey]*time.Location)
	if l, ok := cachedZones[key]; ok {
		return l
	}

	// Given that zones are in at most 15 minute increments and can be
	// positive or negative there should only be so many. There are currently
	// 37 observed UTC offsets in the world. Allow up to 50 names and offsets.
	var next map[zoneKey]*time.Location
	if len(cachedZones) >= 50 {
		next = make(map[zoneKey]*time.Location)
	} else {
		next = make(map[zoneKey]*time.Location, len(cachedZones)+1)
		for k, v := range cachedZones {
			next[k] = v
		}
	}
	location := time.FixedZone(name, offsetSec)
	next[key] = location
	locationAtomic.Store(next)

	return location
}

// FromTime broken-down time for t in its own location
func FromTime(t time.Time) Tm {
	tm := Tm{
		Sec:  t.Second(),
		Min:  t.Minute(),
		Hour: t.Hour(),
		Mday: t.Day(),
		Mon:  int(t.Month()) - 1,
		Year: t.Year() - YearBase,
		Wday: int(t.Weekday()),
		Yday: t.YearDay() - 1,
	}
	if t.IsDST() {
		tm.IsDST = 1
	}

	return tm
}

// Time the instant described by tm. If zone has a name it supplies the
// location, otherwise location is used. Out of range values such as a
// second of 60 roll over as they do with time.Date.
func (tm Tm) Time(zone Zone, location *time.Location) time.Time {
	if zone.Name != "" {
		name := zone.Name
		// %z labels every numeric offset UTC
		if name == utc && zone.Offset != 0 {
			name = ""
		}
		location = cachedLocation(name, int(zone.Offset))
	}
	if location == nil {
		location = time.UTC
	}

	return time.Date(tm.Year+YearBase, time.Month(tm.Mon+1), tm.Mday, tm.Hour, tm.Min, tm.Sec, 0, location)
}

// ParseInUTC parse the whole of value and return the time it describes, in UTC
// if value has no zone.
func ParseInUTC(value, format string) (time.Time, error) {
	return defaultParser.ParseInLocation(value, format, time.UTC)
}

// ParseInLocation parse the whole of value, apart from trailing white space, and
// return the time it describes. Dates default to 1970-01-01 and times to
// midnight. If value has no zone location is used.
func (p *Parser) ParseInLocation(value, format string, location *time.Location) (time.Time, error) {
	tm := Tm{Year: 1970 - YearBase, Mday: 1}
	var zone Zone

	n, err := p.Parse(value, format, &tm, &zone)
	if err != nil {
		return time.Time{}, err
	}
	if rest := skipSpace(value, n); rest != len(value) {
		return time.Time{}, noMatch(0, "unparsed input", rest)
	}

	return tm.Time(zone, location), nil
}

// OffsetHM get hours and minutes for an offset in seconds east of UTC
func OffsetHM(offset int64) (offsetH, offsetM int) {
	offsetH = int(offset / 3600)
	offsetM = int(offset/60) % 60

	// Ensure minutes is positive
	if offsetM < 0 {
		offsetM = -offsetM
	}

	return
}

// TwoDigitOffset get digit offset for hours and minutes. This is designed
// solely to help with calculating offset strings without using fmt.Sprintf,
// which causes allocations.
func TwoDigitOffset(in int, addPrefix bool) (digits string, err error) {
	if in > 99 || in < -99 {
		err = errors.New("Out of range")
		return
	}

	var prefix byte = '+'
	if in < 0 {
		prefix = '-'
		in = -in
	}

	// First byte is the integer part after an integer division
	// Second byte is the remainder
	var fr = byte('0' + in/10)
	var lr = byte('0' + in%10)

	if addPrefix {
		return utility.BytesToString(prefix, fr, lr), nil
	}
	return utility.BytesToString(fr, lr), nil
}

// OffsetString get an offset in +hhmm form, or +hh:mm if delimited.
//
// For 5 hours and 30 minutes
//
//	+0530
//
// For -5 hours and 30 minutes
//
//	-0530
func OffsetString(offset int64, delimited bool) (string, error) {
	offsetH, offsetM := OffsetHM(offset)

	h, err := TwoDigitOffset(offsetH, true)
	if err != nil {
		return "", err
	}
	// Offsets under an hour west keep their sign
	if offset < 0 && offsetH == 0 {
		h = "-00"
	}
	m, err := TwoDigitOffset(offsetM, false)
	if err != nil {
		return "", err
	}

	xfmtBuf := new(xfmt.Buffer)
	xfmtBuf.S(h)
	if delimited {
		xfmtBuf.S(":")
	}
	xfmtBuf.S(m)

	return utility.BytesToString(xfmtBuf.Bytes()...), nil
}

// String the zone as name and offset, e.g. "EST -0500"
func (z Zone) String() string {
	offset, err := OffsetString(z.Offset, false)
	if err != nil {
		return z.Name
	}
	if z.Name == "" {
		return offset
	}

	xfmtBuf := new(xfmt.Buffer)
	xfmtBuf.S(z.Name).S(" ").S(offset)

	return utility.BytesToString(xfmtBuf.Bytes()...)
}
