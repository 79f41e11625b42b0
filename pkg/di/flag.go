package di

import (
	"github.com/nestlint/nestlint/pkg/cli/flag"
	"github.com/nestlint/nestlint/pkg/github"
)

// Flags holds the command line flags and environment variables of the run command.
type Flags struct {
	*flag.GlobalFlags

	Check   bool
	Comment bool
	Format  string
	BaseRef string

	IsGitHubActions bool
	KeyringEnabled  bool

	RepoOwner string
	RepoName  string
	PR        int

	GitHubRepository string
	GitHubAPIURL     string
	GitHubEventPath  string

	PWD  string
	Args []string
}

// APIURL returns GITHUB_API_URL, or the github.com API URL when it's unset.
func (f *Flags) APIURL() string {
	if f.GitHubAPIURL == "" {
		return github.DefaultAPIURL
	}
	return f.GitHubAPIURL
}
