// Package cli defines the nestlint command line interface.
package cli

import (
	"context"

	"github.com/nestlint/nestlint/pkg/cli/flag"
	"github.com/nestlint/nestlint/pkg/cli/initcmd"
	"github.com/nestlint/nestlint/pkg/cli/list"
	"github.com/nestlint/nestlint/pkg/cli/run"
	"github.com/nestlint/nestlint/pkg/cli/token"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, logE *logrus.Entry, ldFlags *stdutil.LDFlags, args ...string) error {
	return newCommand(logE, ldFlags).Run(ctx, args) //nolint:wrapcheck
}

// newCommand builds the root command. urfave.Command sets the version and
// adds the version and help-all subcommands.
func newCommand(logE *logrus.Entry, ldFlags *stdutil.LDFlags) *cli.Command {
	globalFlags := &flag.GlobalFlags{}
	return urfave.Command(ldFlags, &cli.Command{
		Name:  "nestlint",
		Usage: "Find React components defined inside other functions. https://github.com/nestlint/nestlint",
		Flags: globalFlags.Flags(),
		Commands: []*cli.Command{
			initcmd.New(logE, globalFlags),
			run.New(logE, globalFlags),
			list.New(logE, globalFlags),
			token.New(logE),
		},
	})
}
