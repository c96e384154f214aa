package routes

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
	"github.com/statisticsnorway/dapla-start-api/pkg/service/core/handlers"
	"github.com/statisticsnorway/dapla-start-api/pkg/service/core/transport"
)

type HealthEndpoints struct {
	GetHealth http.HandlerFunc
}

func NewHealthEndpoints(log zerolog.Logger, h *handlers.HealthHandler) *HealthEndpoints {
	return &HealthEndpoints{
		GetHealth: transport.For(h.GetHealth).Build(log),
	}
}

func NewHealthRoutes(endpoints *HealthEndpoints) AddRoutesFn {
	return func(router chi.Router) {
		router.Route("/health", func(r chi.Router) {
			r.Get("/liveness", endpoints.GetHealth)
			r.Get("/readiness", endpoints.GetHealth)
		})
	}
}
