// Package onboarding builds the Jira issue that guides the Dapla platform team
// through onboarding a new team.
package onboarding

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/statisticsnorway/dapla-start-api/pkg/adf"
	"github.com/statisticsnorway/dapla-start-api/pkg/service"
	"gopkg.in/yaml.v3"
)

// RunbookVersion identifies the sequence and wording of the onboarding steps.
const RunbookVersion = "8-step"

const (
	DefaultProjectKey = "DS"
	DefaultIssueType  = "Task"

	// ServiceTransfer is the optional service that needs a transfer agent on-prem.
	ServiceTransfer = "transfer"

	placeholder     = "-"
	smallPrintColor = "#97a0af"
	dateLayout      = "2006-01-02"
)

type options struct {
	groupDomain string
	projectKey  string
	issueType   string
}

type Option func(*options)

// WithGroupDomain appends the domain to every access group name.
func WithGroupDomain(domain string) Option {
	return func(o *options) {
		o.groupDomain = domain
	}
}

func WithProjectKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.projectKey = key
		}
	}
}

func WithIssueType(name string) Option {
	return func(o *options) {
		if name != "" {
			o.issueType = name
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		projectKey: DefaultProjectKey,
		issueType:  DefaultIssueType,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// team is everything derived from the request that the steps interpolate.
type team struct {
	details *service.ProjectDetails
	name    TeamName
	repo    string
	groups  Groups
	today   time.Time
}

func newTeam(details *service.ProjectDetails, today time.Time, o *options) *team {
	name := ResolveTeamName(details)

	return &team{
		details: details,
		name:    name,
		repo:    name.RepositoryName(),
		groups:  DeriveGroups(name.Uniform, o.groupDomain),
		today:   today,
	}
}

// Description builds the issue description for the team. The output depends
// only on its arguments, today is the date shown as the submission date.
func Description(details *service.ProjectDetails, today time.Time, opts ...Option) *adf.Doc {
	t := newTeam(details, today, newOptions(opts))

	doc := adf.Document(
		header(t.name),
		submittedPanel(t),
		orgInfoPanel(details.OrgInfo),
		otherInfoPanel(details.OtherInfo),
		introParagraph(t),
		ownershipParagraph(),
	)

	for _, step := range steps {
		doc.Append(step(t)...)
	}

	return doc.Append(
		adf.Heading(2, adf.Text("Done! "), adf.Emoji(":tada:", 0x1f389)),
		adf.TextParagraph("Congratulations, if everything went according to plan, you are now done!"),
		adf.Rule(),
		adf.Heading(3, adf.Text("Technical details")),
		adf.CodeBlock(technicalDetails(t), "yaml"),
	)
}

// header shows the uniform name next to the display name only when it was
// overridden.
func header(name TeamName) *adf.HeadingNode {
	content := adf.Texts(name.Display)
	if name.Overridden {
		content = append(content, adf.Text(" "))
		content = append(content, codeText(name.Uniform)...)
	}

	return adf.Heading(1, content...)
}

func submittedPanel(t *team) *adf.PanelNode {
	var reporter service.ProjectUser
	if t.details.Reporter != nil {
		reporter = *t.details.Reporter
	}

	overridden := "no"
	if t.name.Overridden {
		overridden = "yes"
	}

	smallPrint := fmt.Sprintf("ui version: %s, api version: %s, uniform team name overridden: %s",
		valueOr(t.details.UIVersion, placeholder),
		valueOr(t.details.APIVersion, placeholder),
		overridden,
	)

	return adf.Panel(adf.PanelNote,
		adf.Paragraph(adf.Texts(
			fmt.Sprintf("Submitted by %s (%s) on %s", reporter.Name, reporter.Email, t.today.Format(dateLayout)),
		)...),
		adf.Paragraph(adf.Text(smallPrint, adf.TextColor(smallPrintColor))),
	)
}

func orgInfoPanel(info *service.OrganizationInfo) *adf.PanelNode {
	unit := placeholder
	if info != nil {
		unit = fmt.Sprintf("%s (%s)", info.Name, info.Code)
		if info.ParentCode != "" {
			unit += ", part of " + info.ParentCode
		}
	}

	return adf.Panel(adf.PanelInfo,
		adf.Paragraph(adf.Text("Organizational unit: ", adf.Strong()), adf.Text(unit)),
	)
}

func otherInfoPanel(otherInfo *string) *adf.PanelNode {
	return adf.Panel(adf.PanelInfo,
		adf.Paragraph(adf.Text("Other information", adf.Strong())),
		adf.Paragraph(lines(valueOr(otherInfo, "None"))...),
	)
}

func introParagraph(t *team) *adf.ParagraphNode {
	content := adf.Texts("This issue describes how to onboard ", t.name.Display, " to Dapla. The uniform team name is ")
	content = append(content, codeText(t.name.Uniform)...)
	content = append(content, adf.Text(" and the infrastructure as code repository is "))
	content = append(content, codeText(t.repo)...)
	content = append(content, adf.Text("."))

	return adf.Paragraph(content...)
}

func ownershipParagraph() *adf.ParagraphNode {
	return adf.Paragraph(
		adf.Text("The steps below are created by dapla-start and maintained by the Dapla platform team, runbook version "),
		adf.Text(RunbookVersion, adf.Code()),
		adf.Text(". Complete them in order."),
	)
}

// technicalDetails is the YAML used by the onboarding tooling, keys keep
// their insertion order.
func technicalDetails(t *team) string {
	root := &yaml.Node{Kind: yaml.MappingNode}

	add := func(key, value string) {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
		)
	}

	add("display_team_name", t.name.Display)
	add("uniform_team_name", t.name.Uniform)
	add("iac_git_project_name", t.repo)

	for _, s := range enabledServices(t.details) {
		add("enable_"+s, "yes")
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(root); err != nil {
		// A mapping of plain strings always encodes.
		panic(fmt.Sprintf("encoding technical details: %v", err))
	}

	_ = enc.Close()

	return buf.String()
}

// enabledServices is the requested services without repeats, in the order
// they were first given.
func enabledServices(details *service.ProjectDetails) []string {
	var services []string

	for _, s := range details.EnabledServices {
		if !slices.Contains(services, s) {
			services = append(services, s)
		}
	}

	return services
}

// lines keeps line breaks in free text without interpreting anything else.
func lines(text string) []adf.Inline {
	var content []adf.Inline

	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			content = append(content, adf.HardBreak())
		}

		content = append(content, adf.Texts(strings.TrimRight(line, "\r"))...)
	}

	return content
}

func codeText(s string) []adf.Inline {
	if s == "" {
		return nil
	}

	return []adf.Inline{adf.Text(s, adf.Code())}
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}

	return *s
}
