package handlers

import (
	"github.com/statisticsnorway/dapla-start-api/pkg/service"
	"github.com/statisticsnorway/dapla-start-api/pkg/service/core"
	"github.com/statisticsnorway/dapla-start-api/pkg/version"
)

type Handlers struct {
	OnboardingHandler     *OnboardingHandler
	UserHandler           *UserHandler
	ClassificationHandler *ClassificationHandler
	HealthHandler         *HealthHandler
}

func NewHandlers(s *core.Services, reporterAPI service.ReporterAPI) *Handlers {
	return &Handlers{
		OnboardingHandler:     NewOnboardingHandler(s.OnboardingService, reporterAPI),
		UserHandler:           NewUserHandler(s.UserService),
		ClassificationHandler: NewClassificationHandler(s.OrgInfoService, s.SubjectAreaService),
		HealthHandler:         NewHealthHandler(version.Name),
	}
}
