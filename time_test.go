package strptime_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/imarsman/strptime"
	"github.com/matryer/is"
)

func TestOffsetString(t *testing.T) {
	is := is.New(t)

	tests := []struct {
		offset    int64
		delimited bool
		want      string
	}{
		{19800, false, "+0530"},
		{19800, true, "+05:30"},
		{-18000, false, "-0500"},
		{-18000, true, "-05:00"},
		{-1800, false, "-0030"},
		{2700, false, "+0045"},
		{0, false, "+0000"},
		{50400, false, "+1400"},
	}

	for _, tt := range tests {
		got, err := strptime.OffsetString(tt.offset, tt.delimited)
		is.NoErr(err)
		is.Equal(got, tt.want)
	}

	_, err := strptime.OffsetString(100*3600, false)
	is.True(err != nil)
}

func TestOffsetHM(t *testing.T) {
	is := is.New(t)

	h, m := strptime.OffsetHM(-19800)
	is.Equal(h, -5)
	is.Equal(m, 30)

	h, m = strptime.OffsetHM(20700)
	is.Equal(h, 5)
	is.Equal(m, 45)
}

func TestTwoDigitOffset(t *testing.T) {
	is := is.New(t)

	s, err := strptime.TwoDigitOffset(-5, true)
	is.NoErr(err)
	is.Equal(s, "-05")

	s, err = strptime.TwoDigitOffset(7, false)
	is.NoErr(err)
	is.Equal(s, "07")

	_, err = strptime.TwoDigitOffset(100, true)
	is.True(err != nil)
}

func TestLocationFromOffset(t *testing.T) {
	is := is.New(t)

	loc := strptime.LocationFromOffset(3600)
	is.True(loc == strptime.LocationFromOffset(3600)) // Cached

	_, offset := time.Date(2024, 1, 1, 0, 0, 0, 0, loc).Zone()
	is.Equal(offset, 3600)

	// More offsets than the cache holds
	for i := -60; i <= 60; i++ {
		loc := strptime.LocationFromOffset(i * 900)
		_, offset := time.Date(2024, 1, 1, 0, 0, 0, 0, loc).Zone()
		is.Equal(offset, i*900)
	}
}

func TestFromTime(t *testing.T) {
	got := strptime.FromTime(time.Date(2024, time.March, 11, 8, 9, 10, 0, time.UTC))
	want := strptime.Tm{Year: 124, Mon: 2, Mday: 11, Hour: 8, Min: 9, Sec: 10, Yday: 70, Wday: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromTime() mismatch (-want +got):\n%s", diff)
	}
}

func TestTmTime(t *testing.T) {
	is := is.New(t)

	tm := strptime.Tm{Year: 100, Mon: 9, Mday: 10, Hour: 13, Min: 55, Sec: 36}

	got := tm.Time(strptime.Zone{}, nil)
	is.True(got.Equal(time.Date(2000, time.October, 10, 13, 55, 36, 0, time.UTC)))
	is.Equal(got.Location(), time.UTC)

	got = tm.Time(strptime.Zone{Offset: -18000, Name: "EST"}, nil)
	name, offset := got.Zone()
	is.Equal(name, "EST")
	is.Equal(offset, -18000)
	is.True(got.Equal(time.Date(2000, time.October, 10, 18, 55, 36, 0, time.UTC)))

	// Numeric offsets are not labelled UTC
	got = tm.Time(strptime.Zone{Offset: 19800, Name: "UTC"}, time.UTC)
	is.Equal(got.Format("-0700"), "+0530")
	name, _ = got.Zone()
	is.True(name != "UTC")

	// The zone wins over the location
	loc := time.FixedZone("X", 3600)
	got = tm.Time(strptime.Zone{Name: "GMT"}, loc)
	is.True(got.Equal(time.Date(2000, time.October, 10, 13, 55, 36, 0, time.UTC)))

	got = tm.Time(strptime.Zone{}, loc)
	is.Equal(got.Location(), loc)

	// Leap second rolls over
	tm = strptime.Tm{Year: 116, Mon: 11, Mday: 31, Hour: 23, Min: 59, Sec: 60}
	got = tm.Time(strptime.Zone{}, nil)
	is.True(got.Equal(time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseInUTC(t *testing.T) {
	is := is.New(t)

	tests := []struct {
		value  string
		format string
		want   time.Time
	}{
		{
			"10/Oct/2000:13:55:36 -0700", "%d/%b/%Y:%H:%M:%S %z",
			time.Date(2000, time.October, 10, 20, 55, 36, 0, time.UTC),
		},
		{
			"Tue, 10 Oct 2000 13:55:36 GMT", "%a, %d %b %Y %T %z",
			time.Date(2000, time.October, 10, 13, 55, 36, 0, time.UTC),
		},
		{
			"2006-01-02T15:04:05+07:00", "%FT%T%z",
			time.Date(2006, time.January, 2, 8, 4, 5, 0, time.UTC),
		},
		{
			// Date fields default to 1970-01-01
			"13:55", "%H:%M",
			time.Date(1970, time.January, 1, 13, 55, 0, 0, time.UTC),
		},
		{
			"2024 60", "%Y %j",
			time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			"2000-01-01  \t", "%F",
			time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		got, err := strptime.ParseInUTC(tt.value, tt.format)
		t.Logf("input %q format %q got %v", tt.value, tt.format, got)
		is.NoErr(err)
		is.True(got.Equal(tt.want))
	}

	// Input left over
	_, err := strptime.ParseInUTC("2000-01-01 x", "%F")
	is.True(errors.Is(err, strptime.ErrNoMatch))

	_, err = strptime.ParseInUTC("2000-13-01", "%F")
	is.True(errors.Is(err, strptime.ErrNoMatch))
}

func TestParseInLocation(t *testing.T) {
	is := is.New(t)

	loc := time.FixedZone("Fixed", -3*3600)
	p := newParser()

	got, err := p.ParseInLocation("2024-07-01 12:00", "%F %R", loc)
	is.NoErr(err)
	is.Equal(got.Location(), loc)
	is.True(got.Equal(time.Date(2024, time.July, 1, 15, 0, 0, 0, time.UTC)))

	// A zone in the input wins
	got, err = p.ParseInLocation("2024-07-01 12:00 +0100", "%F %R %z", loc)
	is.NoErr(err)
	is.True(got.Equal(time.Date(2024, time.July, 1, 11, 0, 0, 0, time.UTC)))

	// %s is converted by the parser's Localtime, in UTC here
	got, err = p.ParseInLocation("86400", "%s", time.UTC)
	is.NoErr(err)
	is.True(got.Equal(time.Date(1970, time.January, 2, 0, 0, 0, 0, time.UTC)))
}

func BenchmarkParseInUTC(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := strptime.ParseInUTC("10/Oct/2000:13:55:36 -0700", "%d/%b/%Y:%H:%M:%S %z")
		if err != nil {
			b.Fatal(err)
		}
	}
}
