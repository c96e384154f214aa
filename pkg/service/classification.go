package service

import (
	"context"
	"time"
)

type OrgInfoService interface {
	// GetOrgInfo returns the sections of the newest sectional division version.
	GetOrgInfo(ctx context.Context) ([]OrganizationInfo, error)
}

type SubjectAreaService interface {
	// GetSubjectAreas returns the subject area classification valid today as a tree.
	GetSubjectAreas(ctx context.Context) (*SubjectAreaTree, error)
}

type KlassAPI interface {
	GetVersions(ctx context.Context, classificationID string) ([]ClassificationVersion, error)
	GetVersionItems(ctx context.Context, versionURL string) ([]ClassificationItem, error)
	GetCodesAt(ctx context.Context, classificationID string, date time.Time) ([]ClassificationItem, error)
}

type ClassificationVersion struct {
	Name      string
	ValidFrom string
	URL       string
}

type ClassificationItem struct {
	Code       string
	ParentCode string
	Level      string
	Name       string
}

type SubjectAreaTree struct {
	Root []*SubjectArea `json:"root"`
}

type SubjectArea struct {
	Key      string         `json:"key"`
	Label    string         `json:"label"`
	Children []*SubjectArea `json:"children,omitempty"`
}
