// internal/app/features/teams/types.go
package teams

import (
	"strings"

	"github.com/dalemusser/huddle/internal/domain/models"
)

// Summary is the compact team view returned by team-status checks and
// embedded in the login response. Skills are re-joined as a comma
// separated string for transport.
type Summary struct {
	GroupID            string `json:"groupId"`
	TeamName           string `json:"teamName"`
	ProjectDescription string `json:"projectDescription"`
	TeamSize           string `json:"teamSize"`
	SkillsNeeded       string `json:"skillsNeeded"`
	Timeline           string `json:"timeline"`
}

// SummaryOf builds a Summary from a team document. TeamSize carries the
// raw descriptor, not the parsed capacity.
func SummaryOf(t models.Team) Summary {
	return Summary{
		GroupID:            t.ID.Hex(),
		TeamName:           t.Name,
		ProjectDescription: t.Description,
		TeamSize:           t.PreferredSize,
		SkillsNeeded:       strings.Join(t.RequiredSkill, ","),
		Timeline:           t.Timeline,
	}
}

// Listing is one entry in the available-teams response: the full team
// document plus the creator's resolved display name.
type Listing struct {
	GroupID        string   `json:"groupId"`
	ProjectName    string   `json:"project_name"`
	Description    string   `json:"description_objective"`
	RequiredSkills []string `json:"required_skills"`
	PreferredSize  string   `json:"preferred_team_size"`
	Timeline       string   `json:"project_timeline"`
	CreatorUserID  string   `json:"creator_user_id"`
	Members        []string `json:"members"`
	CreatorName    string   `json:"creator_name"`
}

type createRequest struct {
	TeamName           string `json:"teamName"`
	ProjectDescription string `json:"projectDescription"`
	TeamSize           string `json:"teamSize"`
	SkillsNeeded       string `json:"skillsNeeded"`
	Timeline           string `json:"timeline"`
	UserID             string `json:"userId"`
}

type userIDRequest struct {
	UserID string `json:"user_id"`
}

type joinRequest struct {
	UserID  string `json:"user_id"`
	GroupID string `json:"group_id"`
}

// splitSkills turns a comma-separated skill string into a trimmed list,
// dropping empty tokens.
func splitSkills(csv string) []string {
	skills := []string{}
	for _, tok := range strings.Split(csv, ",") {
		if s := strings.TrimSpace(tok); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
