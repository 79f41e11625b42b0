// Package list defines the 'nestlint list' command.
package list

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/nestlint/nestlint/pkg/cli/flag"
	"github.com/nestlint/nestlint/pkg/config"
	"github.com/nestlint/nestlint/pkg/controller/list"
	"github.com/nestlint/nestlint/pkg/gitdiff"
	"github.com/nestlint/nestlint/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/urfave/cli/v3"
)

type Flags struct {
	BaseRef      string
	LineTemplate string
	Include      []string
	Exclude      []string
}

type runner struct{}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{}
	return r.Command(logE, globalFlags)
}

func (r *runner) Command(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command { //nolint:funlen
	flags := &Flags{}
	return &cli.Command{
		Name:  "list",
		Usage: "List changed component files",
		Description: `List .tsx and .jsx files changed from the base reference.
Files matched by ignore_files aren't listed.

$ nestlint list

Custom output format using Go template:
$ nestlint list --line-template "{{.Dir}}"

Available template fields:
  FilePath - File path relative to the repository root
  FileName - Base file name
  Dir      - Directory of the file
`,
		Action: func(ctx context.Context, _ *cli.Command) error {
			return r.action(ctx, logE, globalFlags, flags)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "base",
				Usage:       "Git reference changed files are compared with",
				Destination: &flags.BaseRef,
			},
			&cli.StringFlag{
				Name:        "line-template",
				Usage:       "Go text/template format for each line",
				Destination: &flags.LineTemplate,
			},
			&cli.StringSliceFlag{
				Name:        "include",
				Aliases:     []string{"i"},
				Usage:       "A regular expression to include files",
				Destination: &flags.Include,
			},
			&cli.StringSliceFlag{
				Name:        "exclude",
				Aliases:     []string{"e"},
				Usage:       "A regular expression to exclude files",
				Destination: &flags.Exclude,
			},
		},
	}
}

func (r *runner) action(ctx context.Context, logE *logrus.Entry, globalFlags *flag.GlobalFlags, flags *Flags) error {
	log.SetLevel(globalFlags.LogLevel, logE)

	includes, err := compilePatterns(flags.Include)
	if err != nil {
		return fmt.Errorf("compile include patterns: %w", err)
	}
	excludes, err := compilePatterns(flags.Exclude)
	if err != nil {
		return fmt.Errorf("compile exclude patterns: %w", err)
	}

	fs := afero.NewOsFs()
	cfg, err := readConfig(fs, globalFlags.Config)
	if err != nil {
		return err
	}

	baseRef := flags.BaseRef
	if baseRef == "" {
		baseRef = cfg.BaseRef
	}
	lister := gitdiff.New(gitdiff.NewCommandExecutor(), baseRef, "")
	ctrl := list.New(lister, cfg, &list.Param{
		LineTemplate: flags.LineTemplate,
		Includes:     includes,
		Excludes:     excludes,
	}, os.Stdout)
	return ctrl.List(ctx, logE) //nolint:wrapcheck
}

func readConfig(fs afero.Fs, configFilePath string) (*config.Config, error) {
	p, err := config.NewFinder(fs).Find(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("find configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := config.NewReader(fs).Read(cfg, p); err != nil {
		return nil, fmt.Errorf("read configuration file: %w", err)
	}
	return cfg, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	regexps := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		r, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compile a regexp: %w", logerr.WithFields(err, logrus.Fields{
				"regexp": p,
			}))
		}
		regexps[i] = r
	}
	return regexps, nil
}
