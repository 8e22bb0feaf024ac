package prthrottler

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// ExclusionReason says why an author is exempt from enforcement.
type ExclusionReason string

const (
	reasonNone            ExclusionReason = "none"
	reasonBot             ExclusionReason = "bot"
	reasonUserList        ExclusionReason = "user_list"
	reasonTeam            ExclusionReason = "team"
	reasonTeamCheckFailed ExclusionReason = "team_check_failed"
)

// exclusionFilter layers the bot check, the static user list and the
// configured team memberships, in that order, short-circuiting on the first
// match.
type exclusionFilter struct {
	logger logrus.FieldLogger
	teams  teamsService
	cfg    *Config
}

func (f *exclusionFilter) isExcluded(ctx context.Context, author AuthorContext) (bool, ExclusionReason) {
	login := strings.ToLower(author.Login)
	if author.IsBot || strings.HasSuffix(login, "[bot]") {
		return true, reasonBot
	}
	if _, ok := f.cfg.ExcludeUsers[login]; ok {
		return true, reasonUserList
	}
	for _, slug := range f.cfg.ExcludeTeams {
		membership, resp, err := f.teams.GetTeamMembershipBySlug(ctx, slug.Org, slug.Team, author.Login)
		if err != nil {
			// 404 means not a member, anything else is a failed check.
			if resp != nil && resp.StatusCode == http.StatusNotFound {
				continue
			}
			if f.cfg.SkipOnFailure {
				f.logger.WithError(err).Warnf("membership check for %s failed, not enforcing", slug)
				return true, reasonTeamCheckFailed
			}
			f.logger.WithError(err).Warnf("membership check for %s failed, trying next team", slug)
			continue
		}
		if membership.GetState() == "active" {
			return true, reasonTeam
		}
	}
	return false, reasonNone
}
