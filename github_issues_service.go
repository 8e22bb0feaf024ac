package prthrottler

import (
	"context"

	"github.com/google/go-github/v71/github"
)

// issuesService is an interface generated for "github.com/google/go-github/v71/github".IssuesService.
type issuesService interface {
	CreateComment(context.Context, string, string, int, *github.IssueComment) (*github.IssueComment, *github.Response, error)
	AddLabelsToIssue(context.Context, string, string, int, []string) ([]*github.Label, *github.Response, error)
}
