package formatters

import (
	"bytes"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestApplyGoTemplate(t *testing.T) {
	var buf bytes.Buffer
	err := ApplyGoTemplate(&buf, `alias {{ .Name }}={{ .Command | quote }}`, map[string]string{
		"Name":    "GetMeIn",
		"Command": "/usr/local/bin/getmein",
	})
	assert.NoError(t, err)
	assert.Equal(t, "alias GetMeIn=\"/usr/local/bin/getmein\"\n", buf.String())

	t.Run("parse error", func(t *testing.T) {
		err := ApplyGoTemplate(&buf, `{{ .Name`, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "parsing go-template")
	})
}

func TestFmtDuration(t *testing.T) {
	assert.Equal(t, "1 minute", FmtDuration(time.Minute))
	assert.Equal(t, "1 minute 30 seconds", FmtDuration(90*time.Second))
}
