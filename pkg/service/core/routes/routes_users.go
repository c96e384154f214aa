package routes

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
	"github.com/statisticsnorway/dapla-start-api/pkg/service/core/handlers"
	"github.com/statisticsnorway/dapla-start-api/pkg/service/core/transport"
)

type UserEndpoints struct {
	GetUsers http.HandlerFunc
}

func NewUserEndpoints(log zerolog.Logger, h *handlers.UserHandler) *UserEndpoints {
	return &UserEndpoints{
		GetUsers: transport.For(h.GetUsers).Build(log),
	}
}

func NewUserRoutes(endpoints *UserEndpoints) AddRoutesFn {
	return func(router chi.Router) {
		router.Get("/users", endpoints.GetUsers)
	}
}
