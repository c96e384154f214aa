package onboarding

import (
	"fmt"
	"sort"

	"github.com/statisticsnorway/dapla-start-api/pkg/adf"
	"github.com/statisticsnorway/dapla-start-api/pkg/service"
)

// GroupRow renders an access group and its members as a table row.
//
// A nil member list is shown as an empty paragraph, an empty list as an
// empty bullet list. Members are listed by name.
func GroupRow(groupName string, members []service.ProjectUser) *adf.TableRowNode {
	return adf.TableRow(
		adf.TableCell(adf.TextParagraph(groupName)),
		adf.TableCell(memberList(members)),
	)
}

func memberList(members []service.ProjectUser) adf.Block {
	if members == nil {
		return adf.Paragraph()
	}

	items := make([]*adf.ListItemNode, 0, len(members))
	for _, m := range sortedMembers(members) {
		items = append(items, adf.TextItem(fmt.Sprintf("%s (%s)", m.Name, m.EmailShort)))
	}

	return adf.BulletList(items...)
}

// sortedMembers returns a copy of members ordered by name.
func sortedMembers(members []service.ProjectUser) []service.ProjectUser {
	sorted := make([]service.ProjectUser, len(members))
	copy(sorted, members)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	return sorted
}

func managerMembers(manager *service.ProjectUser) []service.ProjectUser {
	if manager == nil {
		return nil
	}

	return []service.ProjectUser{*manager}
}
