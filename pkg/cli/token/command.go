// Package token defines the 'nestlint token' command.
// The token is stored in the OS keyring and read by 'nestlint run' when
// NESTLINT_KEYRING_ENABLED is true.
package token

import (
	"github.com/nestlint/nestlint/pkg/github"
	"github.com/nestlint/nestlint/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/keyring/ghtoken"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry) *cli.Command {
	return ghtoken.Command(ghtoken.NewActor(log.NewSlog(logE), github.KeyService))
}
