package strptime

import "strings"

// Zone labels set by the parser itself
const (
	gmt = "GMT"
	utc = "UTC"
)

// RFC 822 North American zones
var (
	nast = []string{"EST", "CST", "MST", "PST"}
	nadt = []string{"EDT", "CDT", "MDT", "PDT"}
)

// zoneName match %Z: GMT or UTC, or one of the names in the zone table
func (p *parser) zoneName(value string, pos int) (int, error) {
	zones := p.zoneTable()

	rest := value[pos:]
	if hasPrefixFold(rest, gmt) || hasPrefixFold(rest, utc) {
		p.tm.IsDST = 0
		p.zone.Offset = 0
		p.zone.Name = gmt
		return pos + len(gmt), nil
	}

	names := zones.Names()
	i, next, ok := findString(value, pos, names[:], nil)
	if !ok {
		return pos, noMatch('Z', "unknown zone name", pos)
	}
	p.tm.IsDST = i
	p.zone.Offset = zones.StdOffset()
	p.zone.Name = names[i]

	return next, nil
}

// zoneOffset match %z. Recognized are the ISO 8601 forms
//
//	Z      Zulu time, UTC
//	[+-]hh
//	[+-]hhmm
//	[+-]hh:mm
//
// and the RFC 822 and RFC 2822 forms
//
//	UT|GMT   UTC
//	E[SD]T   Eastern  -5 | -4
//	C[SD]T   Central  -6 | -5
//	M[SD]T   Mountain -7 | -6
//	P[SD]T   Pacific  -8 | -7
//	[A-IL-M] military -1 ... -12 (J not used)
//	[N-Y]    military +1 ... +12
func (p *parser) zoneOffset(value string, pos int) (int, error) {
	pos = skipSpace(value, pos)
	if pos >= len(value) {
		return pos, noMatch('z', "want zone", pos)
	}

	neg := false
	switch c := value[pos]; c {
	case 'G', 'U', 'Z':
		var prefix string
		switch c {
		case 'G':
			prefix = "GMT"
		case 'U':
			prefix = "UT"
		default:
			prefix = "Z"
		}
		if !strings.HasPrefix(value[pos:], prefix) {
			return pos, noMatch('z', "want UT or GMT", pos)
		}
		p.tm.IsDST = 0
		p.zone.Offset = 0
		p.zone.Name = utc
		return pos + len(prefix), nil

	case '+':
		pos++
	case '-':
		neg = true
		pos++

	default:
		if i, next, ok := findString(value, pos, nast, nil); ok {
			p.tm.IsDST = 0
			p.zone.Offset = int64(-5-i) * 3600
			p.zone.Name = nast[i]
			return next, nil
		}
		if i, next, ok := findString(value, pos, nadt, nil); ok {
			p.tm.IsDST = 1
			p.zone.Offset = int64(-4-i) * 3600
			p.zone.Name = nadt[i]
			return next, nil
		}

		var hours int
		switch {
		case c >= 'A' && c <= 'I':
			hours = int('A'-1) - int(c)
		case c >= 'L' && c <= 'M':
			hours = int('A') - int(c)
		case c >= 'N' && c <= 'Y':
			hours = int(c) - int('M')
		default:
			return pos, noMatch('z', "unknown zone", pos)
		}
		p.tm.IsDST = 0
		p.zone.Offset = int64(hours) * 3600
		p.zone.Name = utc
		return pos + 1, nil
	}

	// Up to 4 digits with a single colon allowed after the hours
	offs, digits, colon := 0, 0, false
	for digits < 4 && pos < len(value) {
		c := value[pos]
		if isDigit(c) {
			offs = offs*10 + int(c-'0')
			digits++
			pos++
			continue
		}
		if digits == 2 && c == ':' && !colon {
			colon = true
			pos++
			continue
		}
		break
	}

	switch digits {
	case 2:
		offs *= 100
	case 4:
		minutes := offs % 100
		if minutes >= 60 {
			return pos, noMatch('z', "want offset minutes below 60", pos)
		}
		// Minutes as hundredths of an hour
		offs = (offs/100)*100 + (minutes*50)/30
	default:
		return pos, noMatch('z', "want hh, hhmm or hh:mm offset", pos)
	}
	if neg {
		offs = -offs
	}

	p.tm.IsDST = 0
	p.zone.Offset = int64(offs) * 3600 / 100
	p.zone.Name = utc

	return pos, nil
}
