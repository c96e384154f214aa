package auth

import (
	"context"

	"github.com/statisticsnorway/dapla-start-api/pkg/auth"
	"github.com/statisticsnorway/dapla-start-api/pkg/errs"
	"github.com/statisticsnorway/dapla-start-api/pkg/service"
)

var _ service.ReporterAPI = &reporterAPI{}

type reporterAPI struct {
	reader auth.ClaimsReader
}

func (a *reporterAPI) Reporter(ctx context.Context, token string) (*service.ProjectUser, error) {
	const op errs.Op = "reporterAPI.Reporter"

	claims, err := a.reader.Read(ctx, token)
	if err != nil {
		return nil, errs.E(errs.Unauthenticated, op, err)
	}

	return &service.ProjectUser{
		Name:       claims.Name,
		Email:      claims.Email,
		EmailShort: claims.EmailShort(),
	}, nil
}

func NewReporterAPI(reader auth.ClaimsReader) *reporterAPI {
	return &reporterAPI{
		reader: reader,
	}
}
