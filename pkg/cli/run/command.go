// Package run defines the 'nestlint run' command.
package run

import (
	"context"
	"fmt"
	"os"

	"github.com/nestlint/nestlint/pkg/cli/flag"
	"github.com/nestlint/nestlint/pkg/di"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
	}
	return r.Command()
}

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
}

func (r *runner) Command() *cli.Command { //nolint:funlen
	flags := &di.Flags{
		GlobalFlags: r.globalFlags,
	}
	return &cli.Command{
		Name:  "run",
		Usage: "Find components defined inside other functions",
		Description: `If no argument is passed, nestlint analyzes .tsx and .jsx files changed from the base reference.

$ nestlint run

The base reference is origin/main by default. You can change it with --base or base_ref in the configuration file.

$ nestlint run --base origin/develop

You can also pass file paths as arguments.

$ nestlint run src/App.tsx src/Page.jsx

With --comment, findings are posted to the pull request as a comment.
The GitHub access token is read from NESTLINT_GITHUB_TOKEN or GITHUB_TOKEN.
`,
		Action: func(ctx context.Context, c *cli.Command) error {
			flags.PR = c.Int("pr")
			return r.action(ctx, flags)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "base",
				Usage:       "Git reference changed files are compared with",
				Destination: &flags.BaseRef,
			},
			&cli.BoolFlag{
				Name:        "check",
				Usage:       "Exit with a non-zero status code if components are defined inside other functions",
				Destination: &flags.Check,
			},
			&cli.BoolFlag{
				Name:        "comment",
				Usage:       "Post findings as a pull request comment",
				Destination: &flags.Comment,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format. One of text and sarif",
				Value:       "text",
				Destination: &flags.Format,
			},
			&cli.StringFlag{
				Name:        "repo-owner",
				Usage:       "GitHub repository owner",
				Sources:     cli.EnvVars("GITHUB_REPOSITORY_OWNER"),
				Destination: &flags.RepoOwner,
			},
			&cli.StringFlag{
				Name:        "repo-name",
				Usage:       "GitHub repository name",
				Destination: &flags.RepoName,
			},
			&cli.IntFlag{
				Name:  "pr",
				Usage: "GitHub pull request number",
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArgs{
				Name:        "files",
				Max:         -1,
				Destination: &flags.Args,
			},
		},
	}
}

func (r *runner) action(ctx context.Context, flags *di.Flags) error {
	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get the current directory: %w", err)
	}
	flags.PWD = pwd
	di.SetEnv(flags, os.Getenv)
	secrets := &di.Secrets{}
	secrets.SetFromEnv(os.Getenv)
	return di.Run(ctx, r.logE, flags, secrets) //nolint:wrapcheck
}
