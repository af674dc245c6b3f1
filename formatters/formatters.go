package formatters

import (
	"fmt"
	"io"
	"strings"
	text_template "text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/hako/durafmt"
)

// ApplyGoTemplate renders goTemplate with the sprig functions available,
// followed by a newline.
func ApplyGoTemplate(w io.Writer, goTemplate string, data any) error {
	goTemplate = strings.TrimSpace(goTemplate)

	tmpl, err := text_template.New("").Funcs(sprig.FuncMap()).Parse(goTemplate + "\n")
	if err != nil {
		return fmt.Errorf("parsing go-template: %w", err)
	}

	err = tmpl.Execute(w, data)
	if err != nil {
		return fmt.Errorf("rendering go-template: %w", err)
	}

	return nil
}

func FmtDuration(d time.Duration) string {
	return durafmt.Parse(d).LimitFirstN(2).String()
}
