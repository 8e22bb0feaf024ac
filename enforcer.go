package prthrottler

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v71/github"
	"github.com/shurcooL/githubv4"
	"github.com/sirupsen/logrus"
)

// Enforcer applies the open-PR cap to a single pull request event.
type Enforcer struct {
	logger logrus.FieldLogger
	client githubClient
	gql    graphQLClient
	cfg    *Config
	pr     PullRequestContext
	author AuthorContext
}

// Run loads the triggering event and walks it to a terminal decision.
func Run(ctx context.Context, logger logrus.FieldLogger, client *github.Client, gql *githubv4.Client, cfg *Config) (Decision, error) {
	pr, author, err := loadEvent(cfg.EventPath, cfg.Repository)
	if err != nil {
		return Decision{}, err
	}
	e := &Enforcer{
		logger: logger,
		client: &realGithubClient{Client: client},
		gql:    gql,
		cfg:    cfg,
		pr:     pr,
		author: author,
	}
	return e.run(ctx)
}

// run produces exactly one decision. It returns an error only for failures
// that skip_on_failure does not tolerate.
func (e *Enforcer) run(ctx context.Context) (Decision, error) {
	log := e.logger.WithFields(logrus.Fields{
		"pr":     e.pr.Number,
		"author": e.author.Login,
	})

	switch e.pr.EventAction {
	case actionOpened, actionReopened, actionReadyForReview:
	default:
		log.Infof("event action %q is not enforced, skipping", e.pr.EventAction)
		return Decision{Outcome: OutcomeSkipped}, nil
	}
	if e.author.Login == "" {
		log.Info("pull request has no resolvable author, skipping")
		return Decision{Outcome: OutcomeSkipped}, nil
	}
	if e.cfg.Token == "" {
		log.Info("no github token available, skipping")
		return Decision{Outcome: OutcomeSkipped}, nil
	}

	filter := &exclusionFilter{logger: log, teams: e.client.GetTeamsService(), cfg: e.cfg}
	if excluded, reason := filter.isExcluded(ctx, e.author); excluded {
		log.Infof("author is excluded from enforcement (%s), skipping", reason)
		return Decision{Outcome: OutcomeSkipped}, nil
	}

	// A draft that is not counted cannot be over the limit.
	if !e.cfg.CountDrafts && e.pr.IsDraft {
		log.Info("draft pull requests are not counted, nothing to enforce")
		return Decision{Outcome: OutcomeOK}, nil
	}
	if e.pr.State != "open" {
		log.Infof("pull request is %s, skipping", e.pr.State)
		return Decision{Outcome: OutcomeSkipped}, nil
	}

	counts := &countFetcher{gql: e.gql}
	rawOpen, merged, err := counts.fetchCounts(ctx, e.pr.Owner, e.pr.Repo, e.author.Login, e.cfg.CountDrafts)
	if err != nil {
		if e.cfg.SkipOnFailure {
			log.WithError(err).Warn("could not fetch pull request counts, skipping")
			return Decision{Outcome: OutcomeSkipped}, nil
		}
		return Decision{}, fmt.Errorf("fetching pull request counts: %w", err)
	}

	decision := Decision{
		OpenCount:   normalizeOpenCount(rawOpen, e.pr.IsDraft, e.cfg.CountDrafts),
		AllowedOpen: e.cfg.Policy.Resolve(merged),
		MergedCount: merged,
	}

	if decision.OpenCount < decision.AllowedOpen {
		decision.Outcome = OutcomeOK
		log.Infof("%s has %d other open PRs of %d allowed (%d merged), within policy",
			e.author.Login, decision.OpenCount, decision.AllowedOpen, decision.MergedCount)
		return decision, nil
	}

	if !e.cfg.CountDrafts && e.cfg.RevertToDraftOnReady && e.pr.EventAction == actionReadyForReview {
		return e.revertToDraft(ctx, log, decision)
	}
	return e.close(ctx, log, decision)
}

// revertToDraft comments (unless the template is empty) and converts the
// pull request back to a draft. Comment failures never block the revert.
func (e *Enforcer) revertToDraft(ctx context.Context, log logrus.FieldLogger, decision Decision) (Decision, error) {
	body := renderComment(e.cfg.BackToDraftComment, e.author.Login, decision.OpenCount, decision.AllowedOpen, decision.MergedCount)
	if strings.TrimSpace(body) != "" {
		if err := e.comment(ctx, body); err != nil {
			log.WithError(err).Warn("could not post back-to-draft comment")
		}
	}

	var m struct {
		ConvertPullRequestToDraft struct {
			PullRequest struct {
				IsDraft githubv4.Boolean
			}
		} `graphql:"convertPullRequestToDraft(input: $input)"`
	}
	input := githubv4.ConvertPullRequestToDraftInput{PullRequestID: githubv4.ID(e.pr.NodeID)}
	if err := e.gql.Mutate(ctx, &m, input, nil); err != nil {
		if e.cfg.SkipOnFailure {
			log.WithError(err).Warn("could not convert pull request to draft, skipping")
			decision.Outcome = OutcomeSkipped
			return decision, nil
		}
		return Decision{}, fmt.Errorf("converting pull request to draft: %w", err)
	}

	decision.Outcome = OutcomeRevertedToDraft
	log.Infof("%s has %d other open PRs of %d allowed (%d merged), reverted #%d to draft",
		e.author.Login, decision.OpenCount, decision.AllowedOpen, decision.MergedCount, e.pr.Number)
	return decision, nil
}

// close comments, closes the pull request and optionally labels it. Comment
// and label failures are logged but never downgrade a successful close.
func (e *Enforcer) close(ctx context.Context, log logrus.FieldLogger, decision Decision) (Decision, error) {
	body := renderComment(e.cfg.CloseComment, e.author.Login, decision.OpenCount, decision.AllowedOpen, decision.MergedCount)
	if err := e.comment(ctx, body); err != nil {
		log.WithError(err).Warn("could not post close comment")
	}

	update := &github.PullRequest{State: github.Ptr("closed")}
	if _, _, err := e.client.GetPullRequestsService().Edit(ctx, e.pr.Owner, e.pr.Repo, e.pr.Number, update); err != nil {
		if e.cfg.SkipOnFailure {
			log.WithError(err).Warn("could not close pull request, skipping")
			decision.Outcome = OutcomeSkipped
			return decision, nil
		}
		return Decision{}, fmt.Errorf("closing pull request: %w", err)
	}

	if e.cfg.LabelWhenClosed != "" {
		if _, _, err := e.client.GetIssuesService().AddLabelsToIssue(ctx, e.pr.Owner, e.pr.Repo, e.pr.Number, []string{e.cfg.LabelWhenClosed}); err != nil {
			log.WithError(err).Warn("could not label closed pull request")
		}
	}

	decision.Outcome = OutcomeClosed
	log.Infof("%s has %d other open PRs of %d allowed (%d merged), closed #%d",
		e.author.Login, decision.OpenCount, decision.AllowedOpen, decision.MergedCount, e.pr.Number)
	return decision, nil
}

func (e *Enforcer) comment(ctx context.Context, body string) error {
	comment := &github.IssueComment{Body: github.Ptr(body)}
	_, _, err := e.client.GetIssuesService().CreateComment(ctx, e.pr.Owner, e.pr.Repo, e.pr.Number, comment)
	return err
}
