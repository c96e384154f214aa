package handlers

import (
	"context"
	"net/http"

	"github.com/statisticsnorway/dapla-start-api/pkg/service"
)

type ClassificationHandler struct {
	orgInfoService     service.OrgInfoService
	subjectAreaService service.SubjectAreaService
}

func (h *ClassificationHandler) GetOrgInfo(ctx context.Context, _ *http.Request, _ any) ([]service.OrganizationInfo, error) {
	return h.orgInfoService.GetOrgInfo(ctx)
}

func (h *ClassificationHandler) GetSubjectAreas(ctx context.Context, _ *http.Request, _ any) (*service.SubjectAreaTree, error) {
	return h.subjectAreaService.GetSubjectAreas(ctx)
}

func NewClassificationHandler(orgInfoService service.OrgInfoService, subjectAreaService service.SubjectAreaService) *ClassificationHandler {
	return &ClassificationHandler{
		orgInfoService:     orgInfoService,
		subjectAreaService: subjectAreaService,
	}
}
