// Package reporter posts the analysis result as a pull request comment.
// A missing token or a missing pull request context is not an error:
// the reporter logs it, writes a GitHub Actions annotation and returns a
// Status so that the caller decides the exit code.
package reporter

import (
	"context"
	"errors"
	"fmt"

	"github.com/nestlint/nestlint/pkg/actions"
	"github.com/nestlint/nestlint/pkg/github"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

type IssuesService interface {
	CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
}

// PullRequest is the pull request a comment is posted to.
type PullRequest struct {
	RepoOwner string
	RepoName  string
	Number    int
}

type Status int

const (
	StatusPosted Status = iota
	// StatusFailed means the comment couldn't be posted because no token is available.
	StatusFailed
	// StatusSkipped means there is no pull request to comment on.
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusPosted:
		return "posted"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

var errRepositoryRequired = errors.New("repository owner and name are required to post a comment")

type Reporter struct {
	issues      IssuesService
	token       string
	pullRequest *PullRequest
	annotator   *actions.Annotator
}

// New creates a Reporter. pr may be nil when the run isn't triggered by a
// pull request.
func New(issues IssuesService, token string, pr *PullRequest, annotator *actions.Annotator) *Reporter {
	return &Reporter{
		issues:      issues,
		token:       token,
		pullRequest: pr,
		annotator:   annotator,
	}
}

// PostComment creates a new comment on the pull request.
// Comments from previous runs are neither updated nor deleted.
// The GitHub API is called at most once.
func (r *Reporter) PostComment(ctx context.Context, logE *logrus.Entry, body string) (Status, error) {
	if r.token == "" {
		const msg = "no GitHub access token is available (NESTLINT_GITHUB_TOKEN, GITHUB_TOKEN or keyring)"
		logE.Error(msg)
		r.annotator.Error(msg)
		return StatusFailed, nil
	}
	pr := r.pullRequest
	if pr == nil || pr.Number == 0 {
		const msg = "No pull request context found. Skipping comment."
		logE.Warn(msg)
		r.annotator.Warning(msg)
		return StatusSkipped, nil
	}
	if pr.RepoOwner == "" || pr.RepoName == "" {
		return StatusFailed, logerr.WithFields(errRepositoryRequired, logrus.Fields{ //nolint:wrapcheck
			"repo_owner":   pr.RepoOwner,
			"repo_name":    pr.RepoName,
			"pull_request": pr.Number,
		})
	}
	logE = logE.WithFields(logrus.Fields{
		"repo_owner":   pr.RepoOwner,
		"repo_name":    pr.RepoName,
		"pull_request": pr.Number,
	})
	cmt, _, err := r.issues.CreateComment(ctx, pr.RepoOwner, pr.RepoName, pr.Number, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return StatusFailed, fmt.Errorf("create a pull request comment: %w", err)
	}
	logE.WithField("comment_url", cmt.GetHTMLURL()).Info("posted a pull request comment")
	return StatusPosted, nil
}
