package core_test

import (
	"context"
	"fmt"
	"time"

	"github.com/statisticsnorway/dapla-start-api/pkg/errs"
	"github.com/statisticsnorway/dapla-start-api/pkg/service"
)

type fakeJiraAPI struct {
	sent  []*service.IssueRequest
	issue *service.CreatedIssue
	err   error
}

func (f *fakeJiraAPI) CreateIssue(_ context.Context, issue *service.IssueRequest) (*service.CreatedIssue, error) {
	f.sent = append(f.sent, issue)

	if f.err != nil {
		return nil, f.err
	}

	return f.issue, nil
}

type fakeNotifier struct {
	notified []string
	err      error
}

func (f *fakeNotifier) IssueCreated(_ context.Context, _ *service.ProjectDetails, issue *service.CreatedIssue) error {
	f.notified = append(f.notified, issue.Key)

	return f.err
}

type fakeKlassAPI struct {
	versions     map[string][]service.ClassificationVersion
	versionItems map[string][]service.ClassificationItem
	codes        map[string][]service.ClassificationItem
	codesAt      []time.Time
	err          error
}

func (f *fakeKlassAPI) GetVersions(_ context.Context, classificationID string) ([]service.ClassificationVersion, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.versions[classificationID], nil
}

func (f *fakeKlassAPI) GetVersionItems(_ context.Context, versionURL string) ([]service.ClassificationItem, error) {
	items, ok := f.versionItems[versionURL]
	if !ok {
		return nil, errs.E(errs.IO, errs.Op("fakeKlassAPI.GetVersionItems"), fmt.Errorf("unknown version %s", versionURL))
	}

	return items, nil
}

func (f *fakeKlassAPI) GetCodesAt(_ context.Context, classificationID string, date time.Time) ([]service.ClassificationItem, error) {
	f.codesAt = append(f.codesAt, date)

	if f.err != nil {
		return nil, f.err
	}

	return f.codes[classificationID], nil
}

type fakeUserDirectoryAPI struct {
	entries []service.DirectoryEntry
	err     error
}

func (f *fakeUserDirectoryAPI) ListUsers(_ context.Context) ([]service.DirectoryEntry, error) {
	return f.entries, f.err
}

func upstreamError(msg string) error {
	return errs.E(errs.IO, errs.Op("fake"), fmt.Errorf("%s", msg))
}
