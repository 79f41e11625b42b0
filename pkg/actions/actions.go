// Package actions writes GitHub Actions workflow commands.
// https://docs.github.com/en/actions/reference/workflows-and-actions/workflow-commands
package actions

import (
	"fmt"
	"io"
	"strings"
)

// Annotator writes annotations to w. The runner reads workflow commands
// from both stdout and stderr.
// A nil *Annotator or one created with Enabled false writes nothing,
// which is the case outside GitHub Actions.
type Annotator struct {
	w       io.Writer
	enabled bool
}

func New(w io.Writer, enabled bool) *Annotator {
	return &Annotator{
		w:       w,
		enabled: enabled,
	}
}

// Location points an annotation at a line of a file.
type Location struct {
	File string
	Line int
}

func (a *Annotator) Error(message string) {
	a.write("error", nil, message)
}

func (a *Annotator) Warning(message string) {
	a.write("warning", nil, message)
}

func (a *Annotator) WarningAt(loc *Location, message string) {
	a.write("warning", loc, message)
}

func (a *Annotator) write(command string, loc *Location, message string) {
	if a == nil || !a.enabled {
		return
	}
	params := ""
	if loc != nil {
		params = " file=" + escapeProperty(loc.File)
		if loc.Line > 0 {
			params += fmt.Sprintf(",line=%d", loc.Line)
		}
	}
	fmt.Fprintf(a.w, "::%s%s::%s\n", command, params, escapeData(message))
}

func escapeData(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A").Replace(s)
}

func escapeProperty(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A", ":", "%3A", ",", "%2C").Replace(s)
}
