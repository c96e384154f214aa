package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/statisticsnorway/dapla-start-api/pkg/service"
)

type UserHandler struct {
	service service.UserService
}

func (h *UserHandler) GetUsers(ctx context.Context, r *http.Request, _ any) ([]service.DirectoryUser, error) {
	var fields []string
	if f := r.URL.Query().Get("fields"); f != "" {
		fields = strings.Split(f, ",")
	}

	return h.service.GetUsers(ctx, fields)
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}
