package initcmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/nestlint/nestlint/refs/heads/main/json-schema/nestlint.json
# nestlint - https://github.com/nestlint/nestlint
version: 1
# base_ref: origin/main

ignore_files:
# - path: src/legacy/App.tsx
# - path: src/legacy/*.tsx
#   format: glob
# - path: \.stories\.tsx$
#   format: regexp

# comment_template: |
#   {{range .Findings}}- {{.FilePath}}:{{.Line}} {{.ParentName}}
#   {{end}}
`
	filePermission os.FileMode = 0o644
)

// Init creates a configuration file at configFilePath.
// An existing file is left as is.
func (c *Controller) Init(logE *logrus.Entry, configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		logE.WithField("config", configFilePath).Info("the configuration file already exists")
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	logE.WithField("config", configFilePath).Info("created a configuration file")
	return nil
}
