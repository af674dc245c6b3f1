// Package logger configures the logrus logger used across getmein.
//
// Lines look like:
//
//	20231012153000 | INFO - > START: Creating the instance vm-1 instance=vm-1
//
// Fields attached to an entry are appended in logfmt.
package logger

import (
	"bytes"
	"io"
	"strings"

	"github.com/go-logfmt/logfmt"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// TimestampFormat is the layout of the leading timestamp.
const TimestampFormat = "20060102150405"

// New returns a logger writing to w at info level, or debug level when
// debug is set.
func New(w io.Writer, debug bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&Formatter{})
	l.SetLevel(logrus.InfoLevel)
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// Formatter renders entries as "TIMESTAMP | LEVEL - message key=value".
type Formatter struct {
	TimestampFormat string
}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = TimestampFormat
	}

	var b bytes.Buffer
	b.WriteString(entry.Time.Format(layout))
	b.WriteString(" | ")
	b.WriteString(strings.ToUpper(entry.Level.String()))
	b.WriteString(" - ")
	b.WriteString(entry.Message)

	if len(entry.Data) != 0 {
		keys := maps.Keys(entry.Data)
		slices.Sort(keys)

		var fields bytes.Buffer
		enc := logfmt.NewEncoder(&fields)
		for _, k := range keys {
			if err := enc.EncodeKeyval(k, entry.Data[k]); err != nil {
				return nil, err
			}
		}
		if fields.Len() != 0 {
			b.WriteByte(' ')
			b.Write(fields.Bytes())
		}
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}
