// internal/domain/models/team.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team statuses. A team is created "Recruiting" and the status is not
// transitioned anywhere else in the current design.
const TeamStatusRecruiting = "Recruiting"

// DefaultTeamSize is the preferred-size descriptor used when a team is
// created without one.
const DefaultTeamSize = "4-5"

// Team is a project team.
//
// NOTE:
//   - Members holds user ObjectID hex strings, creator first. The member
//     list only ever grows; there is no leave operation.
//   - PreferredSize is the raw descriptor (e.g. "4-5", "6+"). The numeric
//     ceiling is derived with teamsize.Capacity, never stored.
type Team struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"groupId"`
	Name          string             `bson:"project_name" json:"project_name"`
	Description   string             `bson:"description_objective" json:"description_objective"`
	RequiredSkill []string           `bson:"required_skills" json:"required_skills"`
	PreferredSize string             `bson:"preferred_team_size" json:"preferred_team_size"`
	Timeline      string             `bson:"project_timeline" json:"project_timeline"`
	CreatorUserID string             `bson:"creator_user_id" json:"creator_user_id"`
	Members       []string           `bson:"members" json:"members"`
	Status        string             `bson:"status" json:"status"`

	DateCreated time.Time `bson:"date_created" json:"date_created"`
}
