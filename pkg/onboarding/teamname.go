package onboarding

import (
	"strings"

	"github.com/statisticsnorway/dapla-start-api/pkg/service"
)

var vowelFolder = strings.NewReplacer("æ", "ae", "ø", "oe", "å", "aa")

// NormalizeTeamName turns a display name such as "Team Blåbær" into the
// uniform team name "blaabaer". Characters other than space and the
// Norwegian vowels are passed through unchanged.
func NormalizeTeamName(displayName string) string {
	name := strings.ToLower(displayName)
	name = strings.Replace(name, "team ", "", 1)
	name = strings.ReplaceAll(name, " ", "-")

	return vowelFolder.Replace(name)
}

// TeamName is the resolved uniform name of a team.
type TeamName struct {
	Display string
	Uniform string
	// Overridden is set when the requested uniform name differs from the one
	// derived from the display name.
	Overridden bool
}

// ResolveTeamName derives the uniform team name, preferring the requested
// override if it normalizes to something else.
func ResolveTeamName(details *service.ProjectDetails) TeamName {
	name := TeamName{
		Display: details.DisplayTeamName,
		Uniform: NormalizeTeamName(details.DisplayTeamName),
	}

	if details.UniformTeamName == nil || *details.UniformTeamName == "" {
		return name
	}

	requested := NormalizeTeamName(*details.UniformTeamName)
	if requested != name.Uniform {
		name.Uniform = requested
		name.Overridden = true
	}

	return name
}

// RepositoryName is the name of the team's infrastructure as code repository.
func (n TeamName) RepositoryName() string {
	return "dapla-team-" + n.Uniform
}
