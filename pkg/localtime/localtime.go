// Package localtime converts seconds since the Unix epoch into civil time in a
// location, keeping recently converted values in an LRU cache. Log streams
// tend to repeat the same second many times over, which is what the cache is
// for.
package localtime

import (
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// DefaultCacheSize number of conversions kept when no size is given
const DefaultCacheSize = 64

// Converter converts epoch seconds to time values in a fixed location. It is
// safe for concurrent use.
type Converter struct {
	location *time.Location
	cache    *lru.Cache
}

// New get a converter for location with room for size cached conversions. A nil
// location means time.Local. A size below 1 uses DefaultCacheSize.
func New(location *time.Location, size int) (*Converter, error) {
	if location == nil {
		location = time.Local
	}
	if size < 1 {
		size = DefaultCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	return &Converter{location: location, cache: cache}, nil
}

// Must is like New but panics on error
func Must(location *time.Location, size int) *Converter {
	c, err := New(location, size)
	if err != nil {
		panic(err)
	}
	return c
}

// Location the location conversions are made in
func (c *Converter) Location() *time.Location {
	return c.location
}

// Localtime the civil time for sec seconds since 1970-01-01 00:00:00 UTC
func (c *Converter) Localtime(sec int64) time.Time {
	if v, ok := c.cache.Get(sec); ok {
		return v.(time.Time)
	}
	t := time.Unix(sec, 0).In(c.location)
	c.cache.Add(sec, t)

	return t
}

// Len number of cached conversions
func (c *Converter) Len() int {
	return c.cache.Len()
}

// Purge drop all cached conversions
func (c *Converter) Purge() {
	c.cache.Purge()
}
