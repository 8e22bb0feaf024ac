package prthrottler

import (
	"context"

	"github.com/google/go-github/v71/github"
)

// teamsService is an interface generated for "github.com/google/go-github/v71/github".TeamsService.
type teamsService interface {
	GetTeamMembershipBySlug(context.Context, string, string, string) (*github.Membership, *github.Response, error)
}
