package prthrottler

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/google/go-github/v71/github"
)

// Pull request event actions the bot enforces on.
const (
	actionOpened         = "opened"
	actionReopened       = "reopened"
	actionReadyForReview = "ready_for_review"
)

// PullRequestContext is an immutable snapshot of the pull request that
// triggered the run.
type PullRequestContext struct {
	Owner       string
	Repo        string
	Number      int
	NodeID      string
	IsDraft     bool
	State       string
	EventAction string
}

// AuthorContext identifies the pull request author.
type AuthorContext struct {
	Login string
	IsBot bool
}

// loadEvent reads the event payload the runner wrote to disk and builds the
// typed contexts from it. Payloads without a pull_request block yield zero
// contexts and are handled by the enforcer's event gate, not treated as
// errors.
func loadEvent(path, repository string) (PullRequestContext, AuthorContext, error) {
	var pr PullRequestContext
	var author AuthorContext

	owner, repo, ok := strings.Cut(repository, "/")
	if !ok || owner == "" || repo == "" {
		return pr, author, configErrorf("repository %q is not of the form owner/repo", repository)
	}
	pr.Owner, pr.Repo = owner, repo

	data, err := os.ReadFile(path)
	if err != nil {
		return pr, author, configErrorf("reading event payload %s: %v", path, err)
	}
	var event github.PullRequestEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return pr, author, configErrorf("parsing event payload %s: %v", path, err)
	}

	pr.EventAction = event.GetAction()
	if p := event.GetPullRequest(); p != nil {
		pr.Number = p.GetNumber()
		pr.NodeID = p.GetNodeID()
		pr.IsDraft = p.GetDraft()
		pr.State = p.GetState()
		if u := p.GetUser(); u != nil {
			author.Login = u.GetLogin()
			author.IsBot = strings.EqualFold(u.GetType(), "bot")
		}
	}
	return pr, author, nil
}
