package routes

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
	"github.com/statisticsnorway/dapla-start-api/pkg/service/core/handlers"
	"github.com/statisticsnorway/dapla-start-api/pkg/service/core/transport"
)

type OnboardingEndpoints struct {
	CreateIssue  http.HandlerFunc
	PreviewIssue http.HandlerFunc
}

func NewOnboardingEndpoints(log zerolog.Logger, h *handlers.OnboardingHandler) *OnboardingEndpoints {
	return &OnboardingEndpoints{
		CreateIssue:  transport.For(h.CreateIssue).RequestFromJSON().Build(log),
		PreviewIssue: transport.For(h.PreviewIssue).RequestFromJSON().Build(log),
	}
}

func NewOnboardingRoutes(endpoints *OnboardingEndpoints) AddRoutesFn {
	return func(router chi.Router) {
		router.Post("/create_jira", endpoints.CreateIssue)
		router.Post("/preview_jira", endpoints.PreviewIssue)
	}
}
