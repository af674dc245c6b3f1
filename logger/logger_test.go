package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/sirupsen/logrus"
)

func TestFormatter_Format(t *testing.T) {
	ts := time.Date(2023, 10, 12, 15, 30, 0, 0, time.UTC)

	tt := []struct {
		name  string
		entry *logrus.Entry
		want  string
	}{
		{
			name:  "message only",
			entry: &logrus.Entry{Time: ts, Level: logrus.InfoLevel, Message: "> INIT: done"},
			want:  "20231012153000 | INFO - > INIT: done\n",
		},
		{
			name:  "warning level",
			entry: &logrus.Entry{Time: ts, Level: logrus.WarnLevel, Message: "careful"},
			want:  "20231012153000 | WARNING - careful\n",
		},
		{
			name: "sorted logfmt fields",
			entry: &logrus.Entry{
				Time:    ts,
				Level:   logrus.ErrorLevel,
				Message: "failed",
				Data: logrus.Fields{
					"zone":  "us-central1-a",
					"err":   errors.New("exit status 1"),
					"image": "almalinux 8",
				},
			},
			want: `20231012153000 | ERROR - failed err="exit status 1" image="almalinux 8" zone=us-central1-a` + "\n",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := (&Formatter{}).Format(tc.entry)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("info by default", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, false)
		l.Debug("hidden")
		l.Info("shown")

		out := buf.String()
		assert.False(t, strings.Contains(out, "hidden"))
		assert.Contains(t, out, "| INFO - shown")
	})

	t.Run("debug", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, true)
		l.Debug("visible")
		assert.Contains(t, buf.String(), "| DEBUG - visible")
	})
}
