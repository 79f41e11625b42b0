package list

import (
	"context"
	"fmt"
	"path"
	"text/template"

	"github.com/sirupsen/logrus"
)

func (c *Controller) List(ctx context.Context, logE *logrus.Entry) error {
	tmpl, err := c.parseTemplate()
	if err != nil {
		return err
	}
	files, err := c.lister.ListChangedFiles(ctx)
	if err != nil {
		return fmt.Errorf("list changed files: %w", err)
	}
	for _, filePath := range files {
		logE := logE.WithField("file", filePath)
		ignored, err := c.cfg.IsIgnored(filePath)
		if err != nil {
			return fmt.Errorf("check if a file is ignored: %w", err)
		}
		if ignored {
			logE.Debug("skip a file because it's ignored by the configuration")
			continue
		}
		if c.excludeFile(filePath) {
			logE.Debug("exclude the file")
			continue
		}
		if c.excludeByIncludes(filePath) {
			logE.Debug("exclude the file by includes")
			continue
		}
		if err := c.output(&FileInfo{
			FilePath: filePath,
			FileName: path.Base(filePath),
			Dir:      path.Dir(filePath),
		}, tmpl); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) parseTemplate() (*template.Template, error) {
	if c.param.LineTemplate == "" {
		return nil, nil //nolint:nilnil
	}
	tmpl, err := template.New("line").Parse(c.param.LineTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse line template: %w", err)
	}
	return tmpl, nil
}

func (c *Controller) output(info *FileInfo, tmpl *template.Template) error {
	if tmpl != nil {
		if err := tmpl.Execute(c.stdout, info); err != nil {
			return fmt.Errorf("execute template: %w", err)
		}
		fmt.Fprintln(c.stdout)
		return nil
	}
	fmt.Fprintln(c.stdout, info.FilePath)
	return nil
}

func (c *Controller) excludeFile(filePath string) bool {
	for _, exclude := range c.param.Excludes {
		if exclude.MatchString(filePath) {
			return true
		}
	}
	return false
}

func (c *Controller) excludeByIncludes(filePath string) bool {
	if len(c.param.Includes) == 0 {
		return false
	}
	for _, include := range c.param.Includes {
		if include.MatchString(filePath) {
			return false
		}
	}
	return true
}
