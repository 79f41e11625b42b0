package github

import (
	"log/slog"

	"github.com/suzuki-shunsuke/urfave-cli-v3-util/keyring/ghtoken"
)

// KeyService is the keyring service `nestlint token set` stores the token in.
const KeyService = "nestlint/nestlint"

func NewKeyringTokenSource(logger *slog.Logger) *ghtoken.TokenSource {
	return ghtoken.NewTokenSource(logger, KeyService)
}
