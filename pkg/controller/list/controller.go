// Package list prints the component files 'nestlint run' would analyze.
package list

import (
	"context"
	"io"
	"regexp"

	"github.com/nestlint/nestlint/pkg/config"
)

type Controller struct {
	lister ChangedFileLister
	cfg    *config.Config
	param  *Param
	stdout io.Writer
}

type ChangedFileLister interface {
	ListChangedFiles(ctx context.Context) ([]string, error)
}

type Param struct {
	LineTemplate string
	Includes     []*regexp.Regexp
	Excludes     []*regexp.Regexp
}

// FileInfo is the data of --line-template.
type FileInfo struct {
	FilePath string
	FileName string
	Dir      string
}

func New(lister ChangedFileLister, cfg *config.Config, param *Param, stdout io.Writer) *Controller {
	return &Controller{
		lister: lister,
		cfg:    cfg,
		param:  param,
		stdout: stdout,
	}
}
