package core

import (
	"context"
	"fmt"
	"time"

	"github.com/statisticsnorway/dapla-start-api/pkg/errs"
	"github.com/statisticsnorway/dapla-start-api/pkg/service"
)

const (
	sectionLevel = "2"
	klassDate    = "2006-01-02"
)

var _ service.OrgInfoService = &orgInfoService{}

type orgInfoService struct {
	klassAPI            service.KlassAPI
	sectionalDivisionID string
	metrics             *Metrics
}

func (s *orgInfoService) GetOrgInfo(ctx context.Context) ([]service.OrganizationInfo, error) {
	const op errs.Op = "orgInfoService.GetOrgInfo"

	versions, err := s.klassAPI.GetVersions(ctx, s.sectionalDivisionID)
	if err != nil {
		s.metrics.Error(LocationKlass)

		return nil, errs.E(op, err)
	}

	newest, err := newestVersion(versions)
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	items, err := s.klassAPI.GetVersionItems(ctx, newest.URL)
	if err != nil {
		s.metrics.Error(LocationKlass)

		return nil, errs.E(op, err)
	}

	sections := []service.OrganizationInfo{}

	for _, item := range items {
		if item.Level != sectionLevel {
			continue
		}

		sections = append(sections, service.OrganizationInfo{
			Code:       item.Code,
			Name:       item.Name,
			ParentCode: item.ParentCode,
		})
	}

	return sections, nil
}

// newestVersion picks the version with the latest valid from date, the last
// one listed wins a tie.
func newestVersion(versions []service.ClassificationVersion) (*service.ClassificationVersion, error) {
	var newest *service.ClassificationVersion
	var newestFrom time.Time

	for i := range versions {
		from, err := time.Parse(klassDate, versions[i].ValidFrom)
		if err != nil {
			return nil, fmt.Errorf("version %s: %w", versions[i].Name, err)
		}

		if newest == nil || !from.Before(newestFrom) {
			newest, newestFrom = &versions[i], from
		}
	}

	if newest == nil {
		return nil, fmt.Errorf("classification has no versions")
	}

	return newest, nil
}

func NewOrgInfoService(klassAPI service.KlassAPI, sectionalDivisionID string, metrics *Metrics) *orgInfoService {
	return &orgInfoService{
		klassAPI:            klassAPI,
		sectionalDivisionID: sectionalDivisionID,
		metrics:             metrics,
	}
}
