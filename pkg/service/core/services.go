package core

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/statisticsnorway/dapla-start-api/pkg/onboarding"
	"github.com/statisticsnorway/dapla-start-api/pkg/service"
	"github.com/statisticsnorway/dapla-start-api/pkg/service/core/api"
)

type Services struct {
	OnboardingService  service.OnboardingService
	UserService        service.UserService
	OrgInfoService     service.OrgInfoService
	SubjectAreaService service.SubjectAreaService
}

type ServicesConfig struct {
	APIVersion          string
	SectionalDivisionID string
	SubjectAreaID       string
	Options             []onboarding.Option
}

func NewServices(
	cfg ServicesConfig,
	clients *api.Clients,
	metrics *Metrics,
	now func() time.Time,
	log zerolog.Logger,
) *Services {
	return &Services{
		OnboardingService: NewOnboardingService(
			clients.JiraAPI,
			clients.Notifier,
			metrics,
			cfg.APIVersion,
			now,
			log.With().Str("component", "onboarding").Logger(),
			cfg.Options...,
		),
		UserService:        NewUserService(clients.UserDirectoryAPI, metrics),
		OrgInfoService:     NewOrgInfoService(clients.KlassAPI, cfg.SectionalDivisionID, metrics),
		SubjectAreaService: NewSubjectAreaService(clients.KlassAPI, cfg.SubjectAreaID, metrics, now),
	}
}
