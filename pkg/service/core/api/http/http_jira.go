package http

import (
	"context"

	"github.com/statisticsnorway/dapla-start-api/pkg/errs"
	"github.com/statisticsnorway/dapla-start-api/pkg/jira"
	"github.com/statisticsnorway/dapla-start-api/pkg/service"
)

var _ service.JiraAPI = &jiraAPI{}

type jiraAPI struct {
	creator jira.Creator
}

func (a *jiraAPI) CreateIssue(ctx context.Context, issue *service.IssueRequest) (*service.CreatedIssue, error) {
	const op errs.Op = "jiraAPI.CreateIssue"

	created, err := a.creator.CreateIssue(ctx, issue)
	if err != nil {
		return nil, errs.E(errs.IO, op, err)
	}

	return &service.CreatedIssue{
		ID:   created.ID,
		Key:  created.Key,
		Self: created.Self,
	}, nil
}

func NewJiraAPI(creator jira.Creator) *jiraAPI {
	return &jiraAPI{
		creator: creator,
	}
}
