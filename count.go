package prthrottler

import (
	"context"
	"fmt"

	"github.com/shurcooL/githubv4"
)

// countFetcher reports how many open and merged pull requests an author has
// in a repository, via one aliased search query.
type countFetcher struct {
	gql graphQLClient
}

func (f *countFetcher) fetchCounts(ctx context.Context, owner, repo, author string, countDrafts bool) (open, merged int, err error) {
	var q struct {
		Open struct {
			IssueCount int
		} `graphql:"open: search(query: $openQuery, type: ISSUE, first: 1)"`
		Merged struct {
			IssueCount int
		} `graphql:"merged: search(query: $mergedQuery, type: ISSUE, first: 1)"`
	}
	openQuery := fmt.Sprintf("repo:%s/%s is:pr is:open author:%s", owner, repo, author)
	if !countDrafts {
		openQuery += " draft:false"
	}
	variables := map[string]interface{}{
		"openQuery":   githubv4.String(openQuery),
		"mergedQuery": githubv4.String(fmt.Sprintf("repo:%s/%s is:pr is:merged author:%s", owner, repo, author)),
	}
	if err := f.gql.Query(ctx, &q, variables); err != nil {
		return 0, 0, fmt.Errorf("searching pull requests: %w", err)
	}
	return q.Open.IssueCount, q.Merged.IssueCount, nil
}

// normalizeOpenCount removes the pull request under evaluation from the raw
// search count, leaving the author's other open pull requests. The search
// already excludes drafts when countDrafts is false, so a draft is only part
// of the raw count when drafts are counted.
func normalizeOpenCount(raw int, currentIsDraft, countDrafts bool) int {
	if countDrafts || !currentIsDraft {
		return raw - 1
	}
	return raw
}
