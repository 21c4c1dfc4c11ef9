package teamstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/huddle/internal/app/system/htmlsanitize"
	"github.com/dalemusser/huddle/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("teams")}
}

var (
	ErrDuplicateTeamName = errors.New("a team with this name already exists")
	ErrTeamNotFound      = errors.New("team not found")
)

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Team, error) {
	var t models.Team
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Team{}, ErrTeamNotFound
		}
		return models.Team{}, err
	}
	return t, nil
}

// Create inserts a new team with the creator as its first member.
// It does not check whether the creator already belongs to another team;
// only the join path enforces that invariant.
func (s *Store) Create(ctx context.Context, t models.Team) (models.Team, error) {
	t.ID = primitive.NewObjectID()
	t.Description = htmlsanitize.Sanitize(t.Description)
	if t.RequiredSkill == nil {
		t.RequiredSkill = []string{}
	}
	if t.PreferredSize == "" {
		t.PreferredSize = models.DefaultTeamSize
	}
	t.Members = []string{t.CreatorUserID}
	t.Status = models.TeamStatusRecruiting
	t.DateCreated = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, t); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Team{}, ErrDuplicateTeamName
		}
		return models.Team{}, err
	}
	return t, nil
}

// FindByMember returns the first team whose member list contains the
// user's id, or nil when the user is on no team. Iteration order is the
// store's; the single-team invariant should prevent multiple matches.
func (s *Store) FindByMember(ctx context.Context, userID string) (*models.Team, error) {
	var t models.Team
	err := s.c.FindOne(ctx, bson.M{"members": userID}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListNotMember returns every team the user is not a member of, in store
// iteration order. Capacity filtering happens in the caller, which has
// the parsed ceiling.
func (s *Store) ListNotMember(ctx context.Context, userID string) ([]models.Team, error) {
	cur, err := s.c.Find(ctx, bson.M{"members": bson.M{"$ne": userID}})
	if err != nil {
		return nil, err
	}

	var teams []models.Team
	if err := cur.All(ctx, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// AppendMember pushes the user onto the team's member list. The push is a
// single-document atomic update; the caller does the membership and
// capacity checks beforehand.
func (s *Store) AppendMember(ctx context.Context, id primitive.ObjectID, userID string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"members": userID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrTeamNotFound
	}
	return nil
}
