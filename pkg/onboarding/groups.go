package onboarding

import (
	"strings"
)

const (
	RoleManagers   = "managers"
	RoleDataAdmins = "data-admins"
	RoleDevelopers = "developers"
	RoleConsumers  = "consumers"
	RoleSupport    = "support"
)

// Groups holds the access group names of a team, one per role.
type Groups struct {
	Managers   string
	DataAdmins string
	Developers string
	Consumers  string
	Support    string
}

// DeriveGroups names the access groups of the team with the given uniform
// name. If domain is not empty it is appended, e.g. "@groups.ssb.no".
func DeriveGroups(uniformTeamName, domain string) Groups {
	if domain != "" && !strings.HasPrefix(domain, "@") {
		domain = "@" + domain
	}

	group := func(role string) string {
		return uniformTeamName + "-" + role + domain
	}

	return Groups{
		Managers:   group(RoleManagers),
		DataAdmins: group(RoleDataAdmins),
		Developers: group(RoleDevelopers),
		Consumers:  group(RoleConsumers),
		Support:    group(RoleSupport),
	}
}
