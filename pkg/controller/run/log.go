package run

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/nestlint/nestlint/pkg/analyze"
)

type colorFunc func(a ...any) string

type Logger struct {
	stderr io.Writer
	yellow colorFunc
	cyan   colorFunc
}

func NewLogger(stderr io.Writer) *Logger {
	return &Logger{
		yellow: color.New(color.FgYellow).SprintFunc(),
		cyan:   color.New(color.FgCyan).SprintFunc(),
		stderr: stderr,
	}
}

// Output prints a finding with the first line of its code.
func (l *Logger) Output(f *analyze.Finding) {
	code, _, _ := strings.Cut(f.Code, "\n")
	fmt.Fprintf(l.stderr, `%s component is defined inside %s
%s:%d
%s
`, l.yellow("WARN"), l.cyan(f.ParentName), f.FilePath, f.Line, code)
}
