package onboarding

import (
	"fmt"
	"strings"

	"github.com/statisticsnorway/dapla-start-api/pkg/adf"
	"github.com/statisticsnorway/dapla-start-api/pkg/service"
)

const (
	kundeserviceEmail = "kundeservice@ssb.no"
	baseConfigURL     = "https://github.com/statisticsnorway/bip-gcp-base-config/blob/main/terraform.tfvars"
	hjelpBipURL       = "https://ssb-norge.slack.com/archives/C915HHACX"
	transferDocsURL   = "https://docs.dapla.ssb.no/dapla-user/transfer/"
)

type step func(t *team) []adf.Block

// steps is the runbook, every step yields the same number of blocks no
// matter which optional details were given.
var steps = []step{
	requestGroupsStep,
	verifyGroupsStep,
	baseConfigStep,
	repositoryStep,
	atlantisWhitelistStep,
	atlantisApplyStep,
	additionalServicesStep,
	notifyReporterStep,
}

func stepHeading(number int, title string) *adf.HeadingNode {
	return adf.Heading(2, adf.Text(fmt.Sprintf("%d. %s", number, title)))
}

func kundeserviceLink(text string) *adf.TextNode {
	return adf.LinkText(text, "mailto:"+kundeserviceEmail)
}

func requestGroupsStep(t *team) []adf.Block {
	d := t.details

	return []adf.Block{
		stepHeading(1, "AD group creation"),
		adf.Paragraph(
			adf.Text("These AD groups should be created for the team. Send the request to "),
			kundeserviceLink(kundeserviceEmail),
			adf.Text("."),
		),
		adf.Table(
			adf.TableRow(
				adf.TableHeader(adf.TextParagraph("AD group")),
				adf.TableHeader(adf.TextParagraph("Members")),
			),
			GroupRow(t.groups.Managers, managerMembers(d.Manager)),
			GroupRow(t.groups.DataAdmins, d.DataAdmins),
			GroupRow(t.groups.Developers, d.Developers),
			GroupRow(t.groups.Consumers, d.Consumers),
			GroupRow(t.groups.Support, d.Support),
		),
	}
}

func verifyGroupsStep(_ *team) []adf.Block {
	return []adf.Block{
		stepHeading(2, "Verify AD groups"),
		adf.TextParagraph("Wait until Kundeservice confirms the request, then check that every group above exists before continuing."),
	}
}

func baseConfigStep(t *team) []adf.Block {
	return []adf.Block{
		stepHeading(3, "bip-gcp-base-config"),
		adf.TextParagraph("AFTER AD groups have been created, add the following line:"),
		adf.CodeBlock(fmt.Sprintf("%q : %q", t.name.Uniform, t.groups.Managers), ""),
		adf.Paragraph(
			adf.Text("...to the dictionary in this file: "),
			adf.LinkText(baseConfigURL, baseConfigURL),
		),
		adf.Panel(adf.PanelWarning,
			adf.TextParagraph("Check that the uniform team name is not already in the file. Changes to this file are applied to every team on the platform."),
		),
	}
}

func repositoryStep(t *team) []adf.Block {
	return []adf.Block{
		stepHeading(4, "Create GCP Team IaC GitHub repository"),
		adf.Paragraph(adf.Text("IaC GitHub project name: "), adf.Text(t.repo, adf.Code())),
		adf.TextParagraph("Use the dapla-start-toolkit for this."),
	}
}

func atlantisWhitelistStep(t *team) []adf.Block {
	return []adf.Block{
		stepHeading(5, "Atlantis Whitelist"),
		adf.Paragraph(
			adf.Text("Once the IaC GitHub repository has been created, it needs to be whitelisted by BIP Atlantis. This request can be made to the "),
			adf.LinkText("#hjelp_bip", hjelpBipURL),
			adf.Text(" Slack channel"),
		),
		adf.Blockquote(
			adf.TextParagraph(fmt.Sprintf("Hei Stratus, kan dere whiteliste repoet '%s' i Atlantis?", t.repo)),
		),
	}
}

func atlantisApplyStep(t *team) []adf.Block {
	return []adf.Block{
		stepHeading(6, "Apply terraform with Atlantis"),
		adf.Paragraph(
			adf.Text("Create a pull request in "),
			adf.Text(t.repo, adf.Code()),
			adf.Text(" and then:"),
		),
		adf.OrderedList(1,
			adf.TextItem("Get approval from Team Stratus."),
			adf.ListItem(adf.Paragraph(
				adf.Text("Run the "),
				adf.Text("atlantis apply", adf.Code()),
				adf.Text(" command in the pull request."),
			)),
			adf.TextItem("Merge the pull request and delete the branch."),
		),
		adf.TextParagraph("This will cause Atlantis to build the requested infrastructure in GCP."),
	}
}

func additionalServicesStep(t *team) []adf.Block {
	requested := "none requested"
	if services := enabledServices(t.details); len(services) > 0 {
		requested = strings.Join(services, ", ")
	}

	var transfer adf.Block = adf.TextParagraph("Transfer Service is not requested, nothing more to do here.")
	if t.details.ServiceEnabled(ServiceTransfer) {
		transfer = transferPanel(t)
	}

	return []adf.Block{
		stepHeading(7, "Additional Services"),
		adf.Paragraph(adf.Texts("Requested services: ", requested)...),
		transfer,
	}
}

func transferPanel(t *team) *adf.PanelNode {
	request := []string{
		"Hei Kundeservice,",
		"",
		fmt.Sprintf("Det nye dapla teamet '%s' trenger transfer service satt opp for seg.", t.name.Display),
		"",
		"AD-gruppe som skal ha tilgang til synk område on-prem:",
		t.groups.DataAdmins,
		"",
		"Prosjektnavn i GCP:",
		t.name.Uniform + "-ts",
		"",
		"Fint om dere kan ordne det!",
		"",
		"Vennlig hilsen,",
	}

	manager := placeholder
	if t.details.Manager != nil {
		manager = t.details.Manager.Name
	}

	return adf.Panel(adf.PanelInfo,
		adf.Paragraph(
			adf.Text("Transfer Service is requested, send a request to "),
			kundeserviceLink("Kundeservice"),
			adf.Text(". Kundeservice needs to set up the Transfer Service agent and directory in Linuxstammen."),
		),
		adf.Paragraph(lines(strings.Join(request, "\n"))...),
		adf.Paragraph(
			adf.Text(fmt.Sprintf(
				"After Kundeservice has activated the agent and created the directory structure in Linuxstammen, "+
					"refer the manager (%s) and/or the data admins (%s) to the docs for activating the transfer service on the GCP side: ",
				manager, names(t.details.DataAdmins),
			)),
			adf.LinkText(transferDocsURL, transferDocsURL),
		),
	)
}

func notifyReporterStep(t *team) []adf.Block {
	who := adf.Texts("the person who submitted the request")
	if r := t.details.Reporter; r != nil && r.Name != "" {
		who = []adf.Inline{adf.Text(r.Name)}
		if r.Email != "" {
			who = append(who, adf.Text(" ("), adf.LinkText(r.Email, "mailto:"+r.Email), adf.Text(")"))
		}
	}

	content := append([]adf.Inline{adf.Text("Let ")}, who...)
	content = append(content, adf.Texts(" know that ", t.name.Display, " is ready to use Dapla.")...)

	return []adf.Block{
		stepHeading(8, "Notify the reporter"),
		adf.Paragraph(content...),
	}
}

func names(users []service.ProjectUser) string {
	if len(users) == 0 {
		return placeholder
	}

	n := make([]string, 0, len(users))
	for _, u := range sortedMembers(users) {
		n = append(n, u.Name)
	}

	return strings.Join(n, ", ")
}
