// Package initcmd defines the 'nestlint init' command.
package initcmd

import (
	"context"

	"github.com/nestlint/nestlint/pkg/cli/flag"
	"github.com/nestlint/nestlint/pkg/controller/initcmd"
	"github.com/nestlint/nestlint/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const defaultConfigFilePath = ".nestlint.yaml"

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
	args        []string
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create .nestlint.yaml if it doesn't exist",
		Description: `Create .nestlint.yaml if it doesn't exist

$ nestlint init

You can also pass configuration file path.

e.g.

$ nestlint init .github/nestlint.yaml
`,
		Action: r.action,
		Arguments: []cli.Argument{
			&cli.StringArgs{
				Name:        "config",
				Max:         1,
				Destination: &r.args,
			},
		},
	}
}

func (r *runner) action(_ context.Context, _ *cli.Command) error {
	log.SetLevel(r.globalFlags.LogLevel, r.logE)
	return initcmd.New(afero.NewOsFs()).Init(r.logE, configFilePath(r.args, r.globalFlags.Config)) //nolint:wrapcheck
}

func configFilePath(args []string, configFlag string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if configFlag != "" {
		return configFlag
	}
	return defaultConfigFilePath
}
