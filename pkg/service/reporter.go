package service

import (
	"context"
)

// ReporterAPI resolves the person submitting a request from their bearer token.
type ReporterAPI interface {
	Reporter(ctx context.Context, token string) (*ProjectUser, error)
}
