// Package di wires the dependencies of the run command.
package di

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/nestlint/nestlint/pkg/actions"
	"github.com/nestlint/nestlint/pkg/analyze"
	"github.com/nestlint/nestlint/pkg/config"
	"github.com/nestlint/nestlint/pkg/controller/run"
	"github.com/nestlint/nestlint/pkg/gitdiff"
	"github.com/nestlint/nestlint/pkg/github"
	"github.com/nestlint/nestlint/pkg/log"
	"github.com/nestlint/nestlint/pkg/reporter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"golang.org/x/oauth2"
)

// Run executes the run command.
func Run(ctx context.Context, logE *logrus.Entry, flags *Flags, secrets *Secrets) error {
	if flags.IsGitHubActions {
		color.NoColor = false
	}
	log.SetLevel(flags.LogLevel, logE)

	fs := afero.NewOsFs()

	cfg, err := readConfig(fs, flags.Config)
	if err != nil {
		return err
	}

	param, err := buildParam(flags)
	if err != nil {
		return err
	}

	var poster run.CommentPoster
	if flags.Comment {
		p, err := newReporter(ctx, fs, logE, flags, secrets, github.NewKeyringTokenSource(log.NewSlog(logE)))
		if err != nil {
			return err
		}
		poster = p
	}

	baseRef := flags.BaseRef
	if baseRef == "" {
		baseRef = cfg.BaseRef
	}
	lister := gitdiff.New(gitdiff.NewCommandExecutor(), baseRef, flags.PWD)
	logE.WithField("base_ref", lister.BaseRef()).Debug("compare changed files with the base reference")

	ctrl := run.New(lister, analyze.New(fs), poster, cfg, param)
	return ctrl.Run(ctx, logE) //nolint:wrapcheck
}

func readConfig(fs afero.Fs, configFilePath string) (*config.Config, error) {
	cfgFinder := config.NewFinder(fs)
	cfgReader := config.NewReader(fs)
	configPath, err := cfgFinder.Find(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("find configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := cfgReader.Read(cfg, configPath); err != nil {
		return nil, fmt.Errorf("read configuration file: %w", logerr.WithFields(err, logrus.Fields{
			"config": configPath,
		}))
	}
	return cfg, nil
}

func buildParam(flags *Flags) (*run.ParamRun, error) {
	format := flags.Format
	if format == "" {
		format = run.FormatText
	}
	if format != run.FormatText && format != run.FormatSARIF {
		return nil, errors.New("format must be text or sarif")
	}
	return &run.ParamRun{
		FilePaths:       flags.Args,
		Check:           flags.Check,
		Comment:         flags.Comment,
		Format:          format,
		IsGitHubActions: flags.IsGitHubActions,
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
	}, nil
}

// resolveToken returns the token from the environment, then from the OS
// keyring when it's enabled. A keyring error isn't fatal because the reporter
// reports a missing token.
func resolveToken(logE *logrus.Entry, flags *Flags, secrets *Secrets, ts oauth2.TokenSource) string {
	if secrets.GitHubToken != "" {
		return secrets.GitHubToken
	}
	if !flags.KeyringEnabled {
		return ""
	}
	token, err := ts.Token()
	if err != nil {
		logerr.WithError(logE, err).Warn("get a GitHub access token from the keyring")
		return ""
	}
	return token.AccessToken
}

func newReporter(ctx context.Context, fs afero.Fs, logE *logrus.Entry, flags *Flags, secrets *Secrets, ts oauth2.TokenSource) (*reporter.Reporter, error) {
	token := resolveToken(logE, flags, secrets, ts)
	gh, err := github.NewFromAPIURL(ctx, flags.APIURL(), token)
	if err != nil {
		return nil, fmt.Errorf("create a GitHub client: %w", logerr.WithFields(err, logrus.Fields{
			"github_api_url": flags.APIURL(),
		}))
	}
	pr := setupPullRequest(fs, logE, flags)
	return reporter.New(gh.Issues, token, pr, actions.New(os.Stderr, flags.IsGitHubActions)), nil
}
