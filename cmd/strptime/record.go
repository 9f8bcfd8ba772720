package main

import (
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/imarsman/strptime"
	"github.com/pkg/errors"
	"lab.nexedi.com/kirr/go123/xfmt"
)

type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

// record the result of parsing one value
type record struct {
	Value    string `json:"value" yaml:"value"`
	Consumed int    `json:"consumed" yaml:"consumed"`
	Year     int    `json:"year" yaml:"year"`
	Month    int    `json:"month" yaml:"month"`
	Day      int    `json:"day" yaml:"day"`
	Hour     int    `json:"hour" yaml:"hour"`
	Minute   int    `json:"minute" yaml:"minute"`
	Second   int    `json:"second" yaml:"second"`
	Weekday  int    `json:"weekday" yaml:"weekday"`
	YearDay  int    `json:"yearDay" yaml:"yearDay"`
	IsDST    int    `json:"isDST" yaml:"isDST"`
	Offset   int64  `json:"offset" yaml:"offset"`
	Zone     string `json:"zone,omitempty" yaml:"zone,omitempty"`
	Time     string `json:"time" yaml:"time"`
}

// parseRecord parse value against format. Date fields default to 1970-01-01
// and values without a zone are taken to be in location.
func parseRecord(p *strptime.Parser, value, format string, location *time.Location) (record, error) {
	tm := strptime.Tm{Year: 1970 - strptime.YearBase, Mday: 1}
	var zone strptime.Zone

	n, err := p.Parse(value, format, &tm, &zone)
	if err != nil {
		return record{}, err
	}

	return record{
		Value:    value,
		Consumed: n,
		Year:     tm.Year + strptime.YearBase,
		Month:    tm.Mon + 1,
		Day:      tm.Mday,
		Hour:     tm.Hour,
		Minute:   tm.Min,
		Second:   tm.Sec,
		Weekday:  tm.Wday,
		YearDay:  tm.Yday + 1,
		IsDST:    tm.IsDST,
		Offset:   zone.Offset,
		Zone:     zone.Name,
		Time:     tm.Time(zone, location).Format(time.RFC3339),
	}, nil
}

type recordWriter struct {
	format outputFormat
	out    io.Writer
	count  int
}

func newRecordWriter(format outputFormat, out io.Writer) (*recordWriter, error) {
	switch format {
	case outputText, outputJSON, outputYAML:
	default:
		return nil, errors.Errorf("unexpected output format %s", format)
	}
	return &recordWriter{format: format, out: out}, nil
}

// write one record. JSON records are written one per line and YAML records as
// separate documents.
func (w *recordWriter) write(r record) error {
	var b []byte
	var err error

	switch w.format {
	case outputJSON:
		b, err = json.Marshal(r)
		b = append(b, '\n')
	case outputYAML:
		b, err = yaml.Marshal(r)
		if w.count > 0 {
			b = append([]byte("---\n"), b...)
		}
	default:
		b = textRecord(r)
	}
	if err != nil {
		return errors.Wrap(err, "failed to encode record")
	}
	w.count++

	_, err = w.out.Write(b)
	return err
}

// textRecord e.g.
//
//	2000-10-10T13:55:36-07:00 wday=2 yday=284 isdst=0 zone=UTC -0700
func textRecord(r record) []byte {
	xfmtBuf := new(xfmt.Buffer)
	xfmtBuf.S(r.Time).
		S(" wday=").D(r.Weekday).
		S(" yday=").D(r.YearDay).
		S(" isdst=").D(r.IsDST)
	if r.Zone != "" {
		zone := strptime.Zone{Offset: r.Offset, Name: r.Zone}
		xfmtBuf.S(" zone=").S(zone.String())
	}
	xfmtBuf.C('\n')

	return xfmtBuf.Bytes()
}
