package localtime_test

import (
	"sync"
	"testing"
	"time"

	"github.com/imarsman/strptime/pkg/localtime"
	"github.com/matryer/is"
)

func TestLocaltime(t *testing.T) {
	is := is.New(t)

	c, err := localtime.New(time.UTC, 2)
	is.NoErr(err)

	got := c.Localtime(0)
	is.Equal(got.Year(), 1970)
	is.Equal(got.Month(), time.January)
	is.Equal(got.Day(), 1)
	is.Equal(got.Weekday(), time.Thursday)
	is.Equal(c.Len(), 1)

	// Cached value is returned unchanged
	is.True(c.Localtime(0).Equal(got))
	is.Equal(c.Len(), 1)

	c.Localtime(86400)
	c.Localtime(2 * 86400)
	// Oldest entry evicted
	is.Equal(c.Len(), 2)

	c.Purge()
	is.Equal(c.Len(), 0)
}

func TestLocaltimeLocation(t *testing.T) {
	is := is.New(t)

	zone := time.FixedZone("IST", 5*3600+1800)
	c := localtime.Must(zone, 0)
	is.Equal(c.Location(), zone)

	got := c.Localtime(0)
	is.Equal(got.Hour(), 5)
	is.Equal(got.Minute(), 30)

	name, offset := got.Zone()
	is.Equal(name, "IST")
	is.Equal(offset, 19800)
}

func TestLocaltimeConcurrent(t *testing.T) {
	is := is.New(t)

	c := localtime.Must(time.UTC, 8)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			for j := int64(0); j < 100; j++ {
				c.Localtime(n*1000 + j%10)
			}
		}(int64(i % 4))
	}
	wg.Wait()

	is.True(c.Len() <= 8)
}

func BenchmarkLocaltimeCached(b *testing.B) {
	c := localtime.Must(time.UTC, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Localtime(1136214245)
	}
}
