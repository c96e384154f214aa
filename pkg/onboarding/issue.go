package onboarding

import (
	"time"

	"github.com/statisticsnorway/dapla-start-api/pkg/service"
)

const summaryPrefix = "On-boarding: "

// Summary is the one line title of the onboarding issue.
func Summary(details *service.ProjectDetails) string {
	return summaryPrefix + details.DisplayTeamName
}

// IssuePayload wraps the summary and description into a create issue request.
func IssuePayload(details *service.ProjectDetails, today time.Time, opts ...Option) *service.IssueRequest {
	o := newOptions(opts)

	return &service.IssueRequest{
		Fields: service.IssueFields{
			Project:     service.IssueProject{Key: o.projectKey},
			Summary:     Summary(details),
			Description: Description(details, today, opts...),
			IssueType:   service.IssueType{Name: o.issueType},
		},
	}
}
