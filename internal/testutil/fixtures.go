package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/huddle/internal/app/system/authutil"
	"github.com/dalemusser/huddle/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// UniqueEmail returns an email address that will not collide with any
// other fixture in the run.
func UniqueEmail(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8] + "@example.com"
}

// CreateUser inserts a test user with a real bcrypt hash for password,
// so login flows can be exercised end to end.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, password string) models.User {
	f.t.Helper()

	hash, err := authutil.HashPassword(password)
	if err != nil {
		f.t.Fatalf("hash test password: %v", err)
	}

	user := models.User{
		ID:          primitive.NewObjectID(),
		FullName:    fullName,
		FullNameCI:  text.Fold(fullName),
		Email:       email,
		Password:    hash,
		College:     "Test University",
		Department:  "CSE",
		YearOfStudy: "3",
		Skills:      []string{"Go"},
		Bio:         "Highly motivated student.",
		Phone:       "Not Provided",
		Interests:   []string{},
		LinkedIn:    "Add Link",
		GitHub:      "Add Link",
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTeam inserts a test team with the creator as sole member.
func (f *Fixtures) CreateTeam(ctx context.Context, name, creatorUserID, preferredSize string) models.Team {
	f.t.Helper()

	team := models.Team{
		ID:            primitive.NewObjectID(),
		Name:          name,
		Description:   "A test project",
		RequiredSkill: []string{"Go", "MongoDB"},
		PreferredSize: preferredSize,
		Timeline:      "3 months",
		CreatorUserID: creatorUserID,
		Members:       []string{creatorUserID},
		Status:        models.TeamStatusRecruiting,
		DateCreated:   time.Now().UTC(),
	}

	if _, err := f.db.Collection("teams").InsertOne(ctx, team); err != nil {
		f.t.Fatalf("failed to create test team: %v", err)
	}
	return team
}

// AddMember appends a user id to a team's member list directly.
func (f *Fixtures) AddMember(ctx context.Context, teamID primitive.ObjectID, userID string) {
	f.t.Helper()

	if _, err := f.db.Collection("teams").UpdateByID(ctx, teamID,
		bson.M{"$push": bson.M{"members": userID}}); err != nil {
		f.t.Fatalf("failed to add test member: %v", err)
	}
}
