package prthrottler

import (
	"context"
	"reflect"

	"github.com/google/go-github/v71/github"
	"github.com/shurcooL/githubv4"
)

type fakeGithubClient struct {
	issues       *issuesServiceMock
	pullRequests *pullRequestsServiceMock
	teams        *teamsServiceMock
}

// GetIssuesService returns a issues service.
func (c *fakeGithubClient) GetIssuesService() issuesService {
	return c.issues
}

// GetPullRequestsService returns a pull requests service.
func (c *fakeGithubClient) GetPullRequestsService() pullRequestsService {
	return c.pullRequests
}

// GetTeamsService returns a teams service.
func (c *fakeGithubClient) GetTeamsService() teamsService {
	return c.teams
}

// issuesServiceMock records calls and delegates to the Func fields; a nil
// Func means success.
type issuesServiceMock struct {
	CreateCommentFunc    func(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
	AddLabelsToIssueFunc func(ctx context.Context, owner, repo string, number int, labels []string) ([]*github.Label, *github.Response, error)
	calls                struct {
		CreateComment    []string // comment bodies
		AddLabelsToIssue [][]string
	}
}

func (m *issuesServiceMock) CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error) {
	m.calls.CreateComment = append(m.calls.CreateComment, comment.GetBody())
	if m.CreateCommentFunc == nil {
		return nil, nil, nil
	}
	return m.CreateCommentFunc(ctx, owner, repo, number, comment)
}

func (m *issuesServiceMock) AddLabelsToIssue(ctx context.Context, owner, repo string, number int, labels []string) ([]*github.Label, *github.Response, error) {
	m.calls.AddLabelsToIssue = append(m.calls.AddLabelsToIssue, labels)
	if m.AddLabelsToIssueFunc == nil {
		return nil, nil, nil
	}
	return m.AddLabelsToIssueFunc(ctx, owner, repo, number, labels)
}

type pullRequestsServiceMock struct {
	EditFunc func(ctx context.Context, owner, repo string, number int, pr *github.PullRequest) (*github.PullRequest, *github.Response, error)
	calls    struct {
		Edit []*github.PullRequest
	}
}

func (m *pullRequestsServiceMock) Edit(ctx context.Context, owner, repo string, number int, pr *github.PullRequest) (*github.PullRequest, *github.Response, error) {
	m.calls.Edit = append(m.calls.Edit, pr)
	if m.EditFunc == nil {
		return nil, nil, nil
	}
	return m.EditFunc(ctx, owner, repo, number, pr)
}

type teamsServiceMock struct {
	GetTeamMembershipBySlugFunc func(ctx context.Context, org, slug, user string) (*github.Membership, *github.Response, error)
	calls                       struct {
		GetTeamMembershipBySlug []string // org/slug pairs queried
	}
}

func (m *teamsServiceMock) GetTeamMembershipBySlug(ctx context.Context, org, slug, user string) (*github.Membership, *github.Response, error) {
	m.calls.GetTeamMembershipBySlug = append(m.calls.GetTeamMembershipBySlug, org+"/"+slug)
	if m.GetTeamMembershipBySlugFunc == nil {
		return nil, nil, nil
	}
	return m.GetTeamMembershipBySlugFunc(ctx, org, slug, user)
}

type graphQLClientMock struct {
	QueryFunc  func(ctx context.Context, q interface{}, variables map[string]interface{}) error
	MutateFunc func(ctx context.Context, m interface{}, input githubv4.Input, variables map[string]interface{}) error
	calls      struct {
		Query  []map[string]interface{}
		Mutate []githubv4.Input
	}
}

func (c *graphQLClientMock) Query(ctx context.Context, q interface{}, variables map[string]interface{}) error {
	c.calls.Query = append(c.calls.Query, variables)
	if c.QueryFunc == nil {
		return nil
	}
	return c.QueryFunc(ctx, q, variables)
}

func (c *graphQLClientMock) Mutate(ctx context.Context, m interface{}, input githubv4.Input, variables map[string]interface{}) error {
	c.calls.Mutate = append(c.calls.Mutate, input)
	if c.MutateFunc == nil {
		return nil
	}
	return c.MutateFunc(ctx, m, input, variables)
}

// setSearchCounts fills the anonymous aliased-search result struct a
// QueryFunc receives.
func setSearchCounts(q interface{}, open, merged int) {
	v := reflect.ValueOf(q).Elem()
	v.FieldByName("Open").FieldByName("IssueCount").SetInt(int64(open))
	v.FieldByName("Merged").FieldByName("IssueCount").SetInt(int64(merged))
}
