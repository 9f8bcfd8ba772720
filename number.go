package strptime

import "github.com/imarsman/strptime/pkg/utility"

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isSpace matches the C locale isspace set
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func skipSpace(value string, pos int) int {
	for pos < len(value) && isSpace(value[pos]) {
		pos++
	}
	return pos
}

// convNum read a decimal number starting at pos. At most as many digits as
// max has are read, and reading stops early once another digit would take the
// value past max. The value must fall within [min, max].
//
// On failure next is pos.
func convNum(value string, pos, min, max int) (n, next int, ok bool) {
	if pos >= len(value) || !isDigit(value[pos]) {
		return 0, pos, false
	}

	// The limit also determines the number of valid digits
	width := utility.DigitCount(int64(max))
	next = pos
	for {
		n = n*10 + int(value[next]-'0')
		next++
		width--
		if n*10 > max || width <= 0 || next >= len(value) || !isDigit(value[next]) {
			break
		}
	}

	if n < min || n > max {
		return 0, pos, false
	}

	return n, next, true
}
