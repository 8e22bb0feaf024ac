package prthrottler

import (
	"context"

	"github.com/google/go-github/v71/github"
)

// pullRequestsService is an interface generated for "github.com/google/go-github/v71/github".PullRequestsService.
type pullRequestsService interface {
	Edit(context.Context, string, string, int, *github.PullRequest) (*github.PullRequest, *github.Response, error)
}
