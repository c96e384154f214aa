package routes

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
	"github.com/statisticsnorway/dapla-start-api/pkg/service/core/handlers"
	"github.com/statisticsnorway/dapla-start-api/pkg/service/core/transport"
)

type ClassificationEndpoints struct {
	GetOrgInfo      http.HandlerFunc
	GetSubjectAreas http.HandlerFunc
}

func NewClassificationEndpoints(log zerolog.Logger, h *handlers.ClassificationHandler) *ClassificationEndpoints {
	return &ClassificationEndpoints{
		GetOrgInfo:      transport.For(h.GetOrgInfo).Build(log),
		GetSubjectAreas: transport.For(h.GetSubjectAreas).Build(log),
	}
}

func NewClassificationRoutes(endpoints *ClassificationEndpoints) AddRoutesFn {
	return func(router chi.Router) {
		router.Get("/org_info", endpoints.GetOrgInfo)
		router.Get("/subject_areas", endpoints.GetSubjectAreas)
	}
}
