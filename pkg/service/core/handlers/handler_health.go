package handlers

import (
	"context"
	"net/http"
)

const statusUp = "UP"

type Health struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type HealthHandler struct {
	name string
}

func (h *HealthHandler) GetHealth(_ context.Context, _ *http.Request, _ any) (*Health, error) {
	return &Health{
		Name:   h.name,
		Status: statusUp,
	}, nil
}

func NewHealthHandler(name string) *HealthHandler {
	return &HealthHandler{name: name}
}
