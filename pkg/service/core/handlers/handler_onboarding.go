package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/statisticsnorway/dapla-start-api/pkg/auth"
	"github.com/statisticsnorway/dapla-start-api/pkg/errs"
	"github.com/statisticsnorway/dapla-start-api/pkg/service"
)

type OnboardingHandler struct {
	onboardingService service.OnboardingService
	reporterAPI       service.ReporterAPI
}

func (h *OnboardingHandler) CreateIssue(ctx context.Context, r *http.Request, in service.ProjectDetails) (*service.CreatedIssue, error) {
	const op errs.Op = "OnboardingHandler.CreateIssue"

	details, err := h.withReporter(ctx, r, in)
	if err != nil {
		return nil, errs.E(op, err)
	}

	issue, err := h.onboardingService.CreateIssue(ctx, details)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return issue, nil
}

func (h *OnboardingHandler) PreviewIssue(ctx context.Context, r *http.Request, in service.ProjectDetails) (*service.IssueRequest, error) {
	const op errs.Op = "OnboardingHandler.PreviewIssue"

	details, err := h.withReporter(ctx, r, in)
	if err != nil {
		return nil, errs.E(op, err)
	}

	issue, err := h.onboardingService.PreviewIssue(ctx, details)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return issue, nil
}

// withReporter sets the reporter from the bearer token, a request without a
// token keeps the reporter it was sent with.
func (h *OnboardingHandler) withReporter(ctx context.Context, r *http.Request, details service.ProjectDetails) (*service.ProjectDetails, error) {
	const op errs.Op = "OnboardingHandler.withReporter"

	token, err := auth.BearerToken(r)
	if errors.Is(err, auth.ErrNoToken) {
		return &details, nil
	}

	if err != nil {
		return nil, errs.E(errs.Unauthenticated, op, err)
	}

	reporter, err := h.reporterAPI.Reporter(ctx, token)
	if err != nil {
		return nil, errs.E(errs.Unauthenticated, op, err)
	}

	details.Reporter = reporter

	return &details, nil
}

func NewOnboardingHandler(s service.OnboardingService, reporterAPI service.ReporterAPI) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingService: s,
		reporterAPI:       reporterAPI,
	}
}
