package run

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/nestlint/nestlint/pkg/analyze"
)

const defaultCommentTemplate = `## nestlint: components defined inside other functions

A component defined inside another function is a new component on every render of the parent.
Its state is lost and its DOM is remounted each time. Move it to the module scope.
{{range .Findings}}
### {{.FilePath}}:{{.Line}} in ` + "`{{.ParentName}}`" + `

` + "```tsx" + `
{{.Code}}
` + "```" + `
{{end}}`

type messageData struct {
	Findings []*analyze.Finding
}

// FormatMessage renders the pull request comment for findings.
// If tmpl is empty, the default template is used.
func FormatMessage(findings []*analyze.Finding, tmpl string) (string, error) {
	if tmpl == "" {
		tmpl = defaultCommentTemplate
	}
	t, err := template.New("comment").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse a comment template: %w", err)
	}
	buf := &strings.Builder{}
	if err := t.Execute(buf, &messageData{Findings: findings}); err != nil {
		return "", fmt.Errorf("execute a comment template: %w", err)
	}
	return buf.String(), nil
}
