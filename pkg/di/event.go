package di

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// Event is the part of the GitHub Actions event payload nestlint reads.
type Event struct {
	PullRequest *PullRequest `json:"pull_request"`
	Repository  *Repository  `json:"repository"`
}

func (e *Event) RepoOwner() string {
	if e != nil && e.Repository != nil && e.Repository.Owner != nil {
		return e.Repository.Owner.Login
	}
	return ""
}

func (e *Event) RepoName() string {
	if e != nil && e.Repository != nil {
		return e.Repository.Name
	}
	return ""
}

// PRNumber returns the pull request number, or 0 if the event isn't about a
// pull request. Issue events are ignored.
func (e *Event) PRNumber() int {
	if e == nil || e.PullRequest == nil {
		return 0
	}
	return e.PullRequest.Number
}

type PullRequest struct {
	Number int `json:"number"`
}

type Repository struct {
	Owner *Owner `json:"owner"`
	Name  string `json:"name"`
}

type Owner struct {
	Login string `json:"login"`
}

func readEvent(fs afero.Fs, ev *Event, eventPath string) error {
	event, err := fs.Open(eventPath)
	if err != nil {
		return fmt.Errorf("read GITHUB_EVENT_PATH: %w", err)
	}
	defer event.Close()
	if err := json.NewDecoder(event).Decode(ev); err != nil {
		return fmt.Errorf("unmarshal GITHUB_EVENT_PATH: %w", err)
	}
	return nil
}
