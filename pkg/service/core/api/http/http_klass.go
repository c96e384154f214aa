package http

import (
	"context"
	"time"

	"github.com/statisticsnorway/dapla-start-api/pkg/errs"
	"github.com/statisticsnorway/dapla-start-api/pkg/klass"
	"github.com/statisticsnorway/dapla-start-api/pkg/service"
)

var _ service.KlassAPI = &klassAPI{}

type klassAPI struct {
	fetcher klass.Fetcher
}

func (a *klassAPI) GetVersions(ctx context.Context, classificationID string) ([]service.ClassificationVersion, error) {
	const op errs.Op = "klassAPI.GetVersions"

	classification, err := a.fetcher.GetClassification(ctx, classificationID)
	if err != nil {
		return nil, errs.E(errs.IO, op, err)
	}

	versions := make([]service.ClassificationVersion, len(classification.Versions))
	for i, v := range classification.Versions {
		versions[i] = service.ClassificationVersion{
			Name:      v.Name,
			ValidFrom: v.ValidFrom,
			URL:       v.Links.Self.Href,
		}
	}

	return versions, nil
}

func (a *klassAPI) GetVersionItems(ctx context.Context, versionURL string) ([]service.ClassificationItem, error) {
	const op errs.Op = "klassAPI.GetVersionItems"

	version, err := a.fetcher.GetVersion(ctx, versionURL)
	if err != nil {
		return nil, errs.E(errs.IO, op, err)
	}

	return toItems(version.ClassificationItems), nil
}

func (a *klassAPI) GetCodesAt(ctx context.Context, classificationID string, date time.Time) ([]service.ClassificationItem, error) {
	const op errs.Op = "klassAPI.GetCodesAt"

	codes, err := a.fetcher.GetCodesAt(ctx, classificationID, date)
	if err != nil {
		return nil, errs.E(errs.IO, op, err)
	}

	return toItems(codes.Codes), nil
}

func toItems(items []klass.Item) []service.ClassificationItem {
	out := make([]service.ClassificationItem, len(items))
	for i, item := range items {
		out[i] = service.ClassificationItem{
			Code:       item.Code,
			ParentCode: item.ParentCode,
			Level:      item.Level,
			Name:       item.Name,
		}
	}

	return out
}

func NewKlassAPI(fetcher klass.Fetcher) *klassAPI {
	return &klassAPI{
		fetcher: fetcher,
	}
}
