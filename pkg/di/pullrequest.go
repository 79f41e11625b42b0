package di

import (
	"fmt"
	"strings"

	"github.com/nestlint/nestlint/pkg/reporter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// populatePullRequestFromGitHubActionsEnv fills missing fields from
// GITHUB_REPOSITORY and the event file.
func populatePullRequestFromGitHubActionsEnv(fs afero.Fs, pr *reporter.PullRequest, flags *Flags) error {
	if pr.RepoOwner == "" || pr.RepoName == "" {
		repo := flags.GitHubRepository
		owner, name, ok := strings.Cut(repo, "/")
		if !ok || owner == "" || name == "" {
			return fmt.Errorf("GITHUB_REPOSITORY is not set or invalid: %s", repo)
		}
		if pr.RepoOwner == "" {
			pr.RepoOwner = owner
		}
		if pr.RepoName == "" {
			pr.RepoName = name
		}
	}
	if pr.Number != 0 || flags.GitHubEventPath == "" {
		return nil
	}
	ev := &Event{}
	if err := readEvent(fs, ev, flags.GitHubEventPath); err != nil {
		return err
	}
	pr.Number = ev.PRNumber()
	return nil
}

// setupPullRequest resolves the pull request a comment is posted to.
// Flags take precedence. In GitHub Actions the missing fields are read from
// the environment. A pull request whose number is unknown is still returned
// so that the reporter reports the skip.
func setupPullRequest(fs afero.Fs, logE *logrus.Entry, flags *Flags) *reporter.PullRequest {
	pr := &reporter.PullRequest{
		RepoOwner: flags.RepoOwner,
		RepoName:  flags.RepoName,
		Number:    flags.PR,
	}
	if flags.IsGitHubActions {
		if err := populatePullRequestFromGitHubActionsEnv(fs, pr, flags); err != nil {
			logerr.WithError(logE, err).Warn("resolve the pull request from the GitHub Actions environment")
		}
	}
	return pr
}
