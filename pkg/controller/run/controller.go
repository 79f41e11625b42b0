// Package run implements the `nestlint run` command.
// The controller lists the changed component files, analyzes each of them for
// components defined inside other functions, prints the findings and posts
// them as a pull request comment. Everything runs sequentially, one file at
// a time.
package run

import (
	"context"
	"io"

	"github.com/nestlint/nestlint/pkg/actions"
	"github.com/nestlint/nestlint/pkg/analyze"
	"github.com/nestlint/nestlint/pkg/config"
	"github.com/nestlint/nestlint/pkg/reporter"
	"github.com/sirupsen/logrus"
)

type Controller struct {
	lister    ChangedFileLister
	analyzer  FileAnalyzer
	reporter  CommentPoster
	cfg       *config.Config
	param     *ParamRun
	logger    *Logger
	annotator *actions.Annotator
}

type ChangedFileLister interface {
	ListChangedFiles(ctx context.Context) ([]string, error)
}

type FileAnalyzer interface {
	AnalyzeFile(ctx context.Context, filePath string) ([]*analyze.Finding, error)
}

type CommentPoster interface {
	PostComment(ctx context.Context, logE *logrus.Entry, body string) (reporter.Status, error)
}

type ParamRun struct {
	// FilePaths are files passed as positional arguments.
	// If empty, changed files are listed with git.
	FilePaths       []string
	Check           bool
	Comment         bool
	Format          string
	IsGitHubActions bool
	Stdout          io.Writer
	Stderr          io.Writer
}

func New(lister ChangedFileLister, analyzer FileAnalyzer, poster CommentPoster, cfg *config.Config, param *ParamRun) *Controller {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Controller{
		lister:    lister,
		analyzer:  analyzer,
		reporter:  poster,
		cfg:       cfg,
		param:     param,
		logger:    NewLogger(param.Stderr),
		annotator: actions.New(param.Stderr, param.IsGitHubActions),
	}
}
