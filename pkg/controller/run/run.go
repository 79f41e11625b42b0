package run

import (
	"context"
	"errors"
	"fmt"

	"github.com/nestlint/nestlint/pkg/actions"
	"github.com/nestlint/nestlint/pkg/analyze"
	"github.com/nestlint/nestlint/pkg/gitdiff"
	"github.com/nestlint/nestlint/pkg/reporter"
	"github.com/sirupsen/logrus"
)

const (
	FormatText  = "text"
	FormatSARIF = "sarif"
)

var (
	ErrNestedComponentsFound = errors.New("components are defined inside other functions")
	ErrCommentFailed         = errors.New("failed to post a pull request comment")
)

func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	filePaths, err := c.searchFiles(ctx, logE)
	if err != nil {
		return fmt.Errorf("search target files: %w", err)
	}
	if len(filePaths) == 0 {
		logE.Info("no component file is changed")
	}

	findings := []*analyze.Finding{}
	for _, filePath := range filePaths {
		logE := logE.WithField("file", filePath)
		logE.Debug("analyzing a file")
		arr, err := c.analyzer.AnalyzeFile(ctx, filePath)
		if err != nil {
			return fmt.Errorf("analyze a file %s: %w", filePath, err)
		}
		findings = append(findings, arr...)
	}

	if err := c.output(findings); err != nil {
		return err
	}

	commentFailed := false
	if c.param.Comment && len(findings) > 0 {
		failed, err := c.comment(ctx, logE, findings)
		if err != nil {
			return err
		}
		commentFailed = failed
	}

	if c.param.Check && len(findings) > 0 {
		return ErrNestedComponentsFound
	}
	if commentFailed {
		return ErrCommentFailed
	}
	return nil
}

func (c *Controller) searchFiles(ctx context.Context, logE *logrus.Entry) ([]string, error) {
	var candidates []string
	if len(c.param.FilePaths) != 0 {
		for _, p := range c.param.FilePaths {
			if !gitdiff.HasComponentExtension(p) {
				logE.WithField("file", p).Debug("skip a file because it isn't a .tsx or .jsx file")
				continue
			}
			candidates = append(candidates, p)
		}
	} else {
		arr, err := c.lister.ListChangedFiles(ctx)
		if err != nil {
			return nil, fmt.Errorf("list changed files: %w", err)
		}
		candidates = arr
	}

	files := make([]string, 0, len(candidates))
	for _, p := range candidates {
		ignored, err := c.cfg.IsIgnored(p)
		if err != nil {
			return nil, fmt.Errorf("check if a file is ignored: %w", err)
		}
		if ignored {
			logE.WithField("file", p).Debug("skip a file because it's ignored by the configuration")
			continue
		}
		files = append(files, p)
	}
	return files, nil
}

func (c *Controller) output(findings []*analyze.Finding) error {
	if c.param.Format == FormatSARIF {
		return c.outputSARIF(findings)
	}
	for _, f := range findings {
		c.logger.Output(f)
		c.annotator.WarningAt(&actions.Location{
			File: f.FilePath,
			Line: f.Line,
		}, fmt.Sprintf("Component is defined inside %s. Move it to the module scope.", f.ParentName))
	}
	return nil
}

// comment posts the findings. It returns true if the reporter couldn't post
// the comment because no token is available.
func (c *Controller) comment(ctx context.Context, logE *logrus.Entry, findings []*analyze.Finding) (bool, error) {
	body, err := FormatMessage(findings, c.cfg.CommentTemplate)
	if err != nil {
		return false, fmt.Errorf("format a pull request comment: %w", err)
	}
	status, err := c.reporter.PostComment(ctx, logE, body)
	if err != nil {
		return false, fmt.Errorf("post a pull request comment: %w", err)
	}
	logE.WithField("status", status.String()).Debug("handled a pull request comment")
	return status == reporter.StatusFailed, nil
}
