// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a student account.
//
// NOTE:
//   - Team membership is not embedded on User.
//     Use the teams collection's members array to discover a user's team.
//   - Password holds the bcrypt hash and is never serialized to clients.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"full_name" json:"fullName"`
	FullNameCI string             `bson:"full_name_ci" json:"-"` // lowercase, diacritics-stripped
	Email      string             `bson:"email" json:"email"`
	Password   []byte             `bson:"password" json:"-"`

	College     string   `bson:"college" json:"college"`
	Department  string   `bson:"department" json:"department"`
	YearOfStudy string   `bson:"year_of_study" json:"year_of_study"`
	Skills      []string `bson:"skills" json:"skills"`
	Bio         string   `bson:"bio" json:"bio"`
	Phone       string   `bson:"phone" json:"phone"`
	Interests   []string `bson:"interests" json:"interests"`
	LinkedIn    string   `bson:"linkedin" json:"linkedin"`
	GitHub      string   `bson:"github" json:"github"`

	// Base64 image payload, stored opaque. Nil until a photo is uploaded.
	ProfilePhotoB64 *string `bson:"profile_photo_b64" json:"profilePhotoUrl"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
