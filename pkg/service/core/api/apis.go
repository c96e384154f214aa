package api

import (
	"github.com/rs/zerolog"
	"github.com/statisticsnorway/dapla-start-api/pkg/auth"
	"github.com/statisticsnorway/dapla-start-api/pkg/jira"
	"github.com/statisticsnorway/dapla-start-api/pkg/klass"
	"github.com/statisticsnorway/dapla-start-api/pkg/service"
	authapi "github.com/statisticsnorway/dapla-start-api/pkg/service/core/api/auth"
	"github.com/statisticsnorway/dapla-start-api/pkg/service/core/api/gcp"
	httpapi "github.com/statisticsnorway/dapla-start-api/pkg/service/core/api/http"
	slackapi "github.com/statisticsnorway/dapla-start-api/pkg/service/core/api/slack"
	"github.com/statisticsnorway/dapla-start-api/pkg/service/core/api/static"
	"github.com/statisticsnorway/dapla-start-api/pkg/userdirectory"
)

type Clients struct {
	JiraAPI          service.JiraAPI
	KlassAPI         service.KlassAPI
	UserDirectoryAPI service.UserDirectoryAPI
	ReporterAPI      service.ReporterAPI
	Notifier         service.Notifier
}

func NewClients(
	jiraCreator jira.Creator,
	klassFetcher klass.Fetcher,
	usersFetcher userdirectory.Fetcher,
	claimsReader auth.ClaimsReader,
	slackWebhookURL string,
	log zerolog.Logger,
) *Clients {
	var notifier service.Notifier = static.NewSlackAPI(log.With().Str("component", "slack").Logger())
	if slackWebhookURL != "" {
		notifier = slackapi.NewSlackAPI(slackWebhookURL)
	}

	return &Clients{
		JiraAPI:          httpapi.NewJiraAPI(jiraCreator),
		KlassAPI:         httpapi.NewKlassAPI(klassFetcher),
		UserDirectoryAPI: gcp.NewUserDirectoryAPI(usersFetcher),
		ReporterAPI:      authapi.NewReporterAPI(claimsReader),
		Notifier:         notifier,
	}
}
