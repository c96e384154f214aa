package static

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/statisticsnorway/dapla-start-api/pkg/service"
	slackapi "github.com/statisticsnorway/dapla-start-api/pkg/service/core/api/slack"
)

var _ service.Notifier = &slackAPI{}

type slackAPI struct {
	log zerolog.Logger
}

func (s *slackAPI) IssueCreated(_ context.Context, details *service.ProjectDetails, issue *service.CreatedIssue) error {
	s.log.Info().Msgf("Sending slack notification: %s", slackapi.Message(details, issue))

	return nil
}

func NewSlackAPI(log zerolog.Logger) *slackAPI {
	return &slackAPI{
		log: log,
	}
}
