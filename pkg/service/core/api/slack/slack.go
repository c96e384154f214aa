package slack

import (
	"context"
	"fmt"

	"github.com/statisticsnorway/dapla-start-api/pkg/errs"
	"github.com/statisticsnorway/dapla-start-api/pkg/service"
	slackapi "github.com/slack-go/slack"
)

var _ service.Notifier = &slackAPI{}

type slackAPI struct {
	webhookURL string
}

func (a *slackAPI) IssueCreated(ctx context.Context, details *service.ProjectDetails, issue *service.CreatedIssue) error {
	const op errs.Op = "slackAPI.IssueCreated"

	err := slackapi.PostWebhookContext(ctx, a.webhookURL, &slackapi.WebhookMessage{
		Text: Message(details, issue),
	})
	if err != nil {
		return errs.E(errs.IO, op, err)
	}

	return nil
}

// Message is the text posted when an onboarding issue has been created.
func Message(details *service.ProjectDetails, issue *service.CreatedIssue) string {
	reporter := "an unknown user"
	if details.Reporter != nil && details.Reporter.Name != "" {
		reporter = details.Reporter.Name
	}

	return fmt.Sprintf("Onboarding issue %s created for %s, submitted by %s", issue.Key, details.DisplayTeamName, reporter)
}

func NewSlackAPI(webhookURL string) *slackAPI {
	return &slackAPI{
		webhookURL: webhookURL,
	}
}
