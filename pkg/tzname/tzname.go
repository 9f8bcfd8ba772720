// Package tzname holds a {standard, daylight} timezone name pair together with
// the standard offset from UTC, the same information a C program gets from
// tzset() through tzname[] and timezone.
//
// The process wide table is built once from time.Local. Tables for other
// locations can be made with Load and FromLocation, and fixed tables with New.
package tzname

import (
	"sync"
	"time"
)

// Standard and Daylight index the names of a table
const (
	Standard = 0
	Daylight = 1
)

// Table a zone name pair and standard offset in seconds east of UTC. A Table is
// read only after construction.
type Table struct {
	names     [2]string
	stdOffset int64
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// New get a fixed table
func New(std, dst string, stdOffset int64) *Table {
	return &Table{names: [2]string{std, dst}, stdOffset: stdOffset}
}

// Default the process wide table for time.Local, built on first use
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = FromLocation(time.Local, time.Now().Year())
	})
	return defaultTable
}

// Load get a table for an IANA location name such as America/Toronto
func Load(name string, year int) (*Table, error) {
	l, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}

	return FromLocation(l, year), nil
}

// FromLocation get the table for a location by sampling the zone in effect on
// January 1st and July 1st of year. The sample with the smaller offset is
// standard time. A location without daylight saving time gets its standard
// name in both slots.
func FromLocation(location *time.Location, year int) *Table {
	jan := time.Date(year, time.January, 1, 0, 0, 0, 0, location)
	jul := time.Date(year, time.July, 1, 0, 0, 0, 0, location)

	janName, janOffset := jan.Zone()
	julName, julOffset := jul.Zone()

	switch {
	case janOffset == julOffset:
		return New(janName, janName, int64(janOffset))
	case janOffset < julOffset:
		return New(janName, julName, int64(janOffset))
	default:
		// Southern hemisphere
		return New(julName, janName, int64(julOffset))
	}
}

// Names the standard and daylight names
func (t *Table) Names() [2]string {
	return t.names
}

// StdOffset standard time offset in seconds east of UTC
func (t *Table) StdOffset() int64 {
	return t.stdOffset
}
