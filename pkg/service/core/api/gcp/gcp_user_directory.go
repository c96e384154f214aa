package gcp

import (
	"context"

	"github.com/statisticsnorway/dapla-start-api/pkg/errs"
	"github.com/statisticsnorway/dapla-start-api/pkg/service"
	"github.com/statisticsnorway/dapla-start-api/pkg/userdirectory"
)

var _ service.UserDirectoryAPI = &userDirectoryAPI{}

type userDirectoryAPI struct {
	fetcher userdirectory.Fetcher
}

func (a *userDirectoryAPI) ListUsers(ctx context.Context) ([]service.DirectoryEntry, error) {
	const op errs.Op = "userDirectoryAPI.ListUsers"

	entries, err := a.fetcher.ListEntries(ctx)
	if err != nil {
		return nil, errs.E(errs.IO, op, err)
	}

	out := make([]service.DirectoryEntry, len(entries))
	for i, e := range entries {
		out[i] = service.DirectoryEntry{
			DisplayName:       e.DisplayName,
			UserPrincipalName: e.UserPrincipalName,
			Mail:              e.Mail,
		}
	}

	return out, nil
}

func NewUserDirectoryAPI(fetcher userdirectory.Fetcher) *userDirectoryAPI {
	return &userDirectoryAPI{
		fetcher: fetcher,
	}
}
