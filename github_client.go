package prthrottler

import (
	"context"

	"github.com/google/go-github/v71/github"
	"github.com/shurcooL/githubv4"
)

type githubClient interface {
	GetIssuesService() issuesService
	GetPullRequestsService() pullRequestsService
	GetTeamsService() teamsService
}

// realGithubClient satisfies the githubClient interface with a concrete github.Client
type realGithubClient struct {
	*github.Client
}

// GetIssuesService returns a issues service.
func (c *realGithubClient) GetIssuesService() issuesService {
	return c.Issues
}

// GetPullRequestsService returns a pull requests service.
func (c *realGithubClient) GetPullRequestsService() pullRequestsService {
	return c.PullRequests
}

// GetTeamsService returns a teams service.
func (c *realGithubClient) GetTeamsService() teamsService {
	return c.Teams
}

// graphQLClient covers the part of githubv4.Client used for search counts
// and the convert-to-draft mutation, which the REST API does not offer.
type graphQLClient interface {
	Query(ctx context.Context, q interface{}, variables map[string]interface{}) error
	Mutate(ctx context.Context, m interface{}, input githubv4.Input, variables map[string]interface{}) error
}
