package core

import (
	"context"
	"time"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"
	"github.com/statisticsnorway/dapla-start-api/pkg/errs"
	"github.com/statisticsnorway/dapla-start-api/pkg/onboarding"
	"github.com/statisticsnorway/dapla-start-api/pkg/service"
)

var _ service.OnboardingService = &onboardingService{}

type onboardingService struct {
	jiraAPI    service.JiraAPI
	notifier   service.Notifier
	metrics    *Metrics
	apiVersion string
	now        func() time.Time
	opts       []onboarding.Option
	log        zerolog.Logger
}

func (s *onboardingService) CreateIssue(ctx context.Context, details *service.ProjectDetails) (*service.CreatedIssue, error) {
	const op errs.Op = "onboardingService.CreateIssue"

	payload := s.payload(details)

	issue, err := s.jiraAPI.CreateIssue(ctx, payload)
	if err != nil {
		s.metrics.Error(LocationJira)

		return nil, errs.E(op, err)
	}

	s.metrics.IssuesCreated.Inc()

	s.log.Info().
		Str("issue", issue.Key).
		Str("team", details.DisplayTeamName).
		Msg("onboarding issue created")

	if s.notifier != nil {
		err = s.notifier.IssueCreated(ctx, details, issue)
		if err != nil {
			s.metrics.Error(LocationSlack)
			s.log.Warn().Err(err).Str("issue", issue.Key).Msg("notifying about created issue")
		}
	}

	return issue, nil
}

func (s *onboardingService) PreviewIssue(_ context.Context, details *service.ProjectDetails) (*service.IssueRequest, error) {
	return s.payload(details), nil
}

// payload stamps the request with the running api version, the caller's
// details are left untouched.
func (s *onboardingService) payload(details *service.ProjectDetails) *service.IssueRequest {
	stamped := *details
	stamped.APIVersion = &s.apiVersion

	name := onboarding.ResolveTeamName(&stamped)
	if !slug.IsSlug(name.Uniform) {
		s.log.Warn().
			Str("display_team_name", name.Display).
			Str("uniform_team_name", name.Uniform).
			Msg("uniform team name is not url safe")
	}

	return onboarding.IssuePayload(&stamped, s.now(), s.opts...)
}

func NewOnboardingService(
	jiraAPI service.JiraAPI,
	notifier service.Notifier,
	metrics *Metrics,
	apiVersion string,
	now func() time.Time,
	log zerolog.Logger,
	opts ...onboarding.Option,
) *onboardingService {
	return &onboardingService{
		jiraAPI:    jiraAPI,
		notifier:   notifier,
		metrics:    metrics,
		apiVersion: apiVersion,
		now:        now,
		opts:       opts,
		log:        log,
	}
}
