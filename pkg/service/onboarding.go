package service

import (
	"context"
	"net/http"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/statisticsnorway/dapla-start-api/pkg/adf"
)

type OnboardingService interface {
	// CreateIssue builds the onboarding issue for the team and creates it in Jira.
	CreateIssue(ctx context.Context, details *ProjectDetails) (*CreatedIssue, error)
	// PreviewIssue returns the issue that CreateIssue would send, without sending it.
	PreviewIssue(ctx context.Context, details *ProjectDetails) (*IssueRequest, error)
}

type JiraAPI interface {
	CreateIssue(ctx context.Context, issue *IssueRequest) (*CreatedIssue, error)
}

// Notifier tells someone that an onboarding issue has been created.
type Notifier interface {
	IssueCreated(ctx context.Context, details *ProjectDetails, issue *CreatedIssue) error
}

// ProjectUser is a person named in the onboarding issue.
type ProjectUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	// EmailShort is the short form principal, e.g. abc@ssb.no.
	EmailShort string `json:"email_short"`
}

// OrganizationInfo is the lowest level organizational unit owning the team.
type OrganizationInfo struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	ParentCode string `json:"parent_code"`
}

// ProjectDetails is everything known about a team that is being onboarded.
// A nil member list means the list was not provided, which is different from
// an empty one.
type ProjectDetails struct {
	DisplayTeamName string            `json:"display_team_name"`
	UniformTeamName *string           `json:"uniform_team_name,omitempty"`
	Manager         *ProjectUser      `json:"manager"`
	DataAdmins      []ProjectUser     `json:"data_admins"`
	Developers      []ProjectUser     `json:"developers"`
	Consumers       []ProjectUser     `json:"consumers"`
	Support         []ProjectUser     `json:"support"`
	OrgInfo         *OrganizationInfo `json:"org_info"`
	EnabledServices []string          `json:"enabled_services"`
	Reporter        *ProjectUser      `json:"reporter"`
	OtherInfo       *string           `json:"other_info"`
	UIVersion       *string           `json:"ui_version"`
	APIVersion      *string           `json:"api_version"`
}

func (d ProjectDetails) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.DisplayTeamName, validation.Required, validation.By(notBlank)),
		validation.Field(&d.Manager, validation.Required),
	)
}

func notBlank(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.ErrRequired
	}

	return nil
}

// ServiceEnabled reports whether the named optional service was requested.
func (d ProjectDetails) ServiceEnabled(name string) bool {
	return slices.Contains(d.EnabledServices, name)
}

type IssueProject struct {
	Key string `json:"key"`
}

type IssueType struct {
	Name string `json:"name"`
}

type IssueFields struct {
	Project     IssueProject `json:"project"`
	Summary     string       `json:"summary"`
	Description *adf.Doc     `json:"description"`
	IssueType   IssueType    `json:"issuetype"`
}

// IssueRequest is the body of a Jira create issue request.
type IssueRequest struct {
	Fields IssueFields `json:"fields"`
}

// CreatedIssue is the part of the Jira create issue response we pass on.
type CreatedIssue struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

func (c *CreatedIssue) StatusCode() int {
	return http.StatusCreated
}
