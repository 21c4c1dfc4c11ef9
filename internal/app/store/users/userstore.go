package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/huddle/internal/app/system/authutil"
	"github.com/dalemusser/huddle/internal/app/system/htmlsanitize"
	"github.com/dalemusser/huddle/internal/app/system/normalize"
	"github.com/dalemusser/huddle/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrDuplicateEmail is returned when attempting to create a user with an email that already exists.
	ErrDuplicateEmail = errors.New("an account with this email already exists")
	// ErrUserNotFound is returned when an update targets an id that does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrNoValidFields is returned when a profile update contains no allow-listed fields.
	ErrNoValidFields = errors.New("no valid fields provided for update")
)

// Profile defaults applied at signup for fields the client does not set.
const (
	DefaultBio   = "Highly motivated student."
	DefaultPhone = "Not Provided"
	DefaultLink  = "Add Link"
)

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user after normalizing fields, hashing the
// password, and filling placeholder profile values.
func (s *Store) Create(ctx context.Context, u models.User, password string) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.FullName = normalize.Name(u.FullName)
	u.FullNameCI = text.Fold(u.FullName)
	u.Email = normalize.Email(u.Email)

	hash, err := authutil.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	u.Password = hash

	if u.Skills == nil {
		u.Skills = []string{}
	}
	if u.Bio == "" {
		u.Bio = DefaultBio
	}
	u.Bio = htmlsanitize.Sanitize(u.Bio)
	if u.Phone == "" {
		u.Phone = DefaultPhone
	}
	if u.Interests == nil {
		u.Interests = []string{}
	}
	if u.LinkedIn == "" {
		u.LinkedIn = DefaultLink
	}
	if u.GitHub == "" {
		u.GitHub = DefaultLink
	}

	u.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// profileFields maps client update keys to document fields. Email and
// password are deliberately absent; they cannot be changed here.
var profileFields = map[string]string{
	"fullName":      "full_name",
	"department":    "department",
	"year_of_study": "year_of_study",
	"bio":           "bio",
	"phone":         "phone",
	"interests":     "interests",
	"linkedin":      "linkedin",
	"github":        "github",
}

// UpdateProfile applies the allow-listed subset of updates to a user.
// Keys outside the allow-list are dropped silently; if nothing survives,
// ErrNoValidFields is returned and no write happens.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, updates map[string]any) error {
	set := bson.M{}
	for clientKey, field := range profileFields {
		v, ok := updates[clientKey]
		if !ok {
			continue
		}
		if sv, isStr := v.(string); isStr {
			switch field {
			case "full_name":
				sv = normalize.Name(sv)
				set["full_name_ci"] = text.Fold(sv)
			case "bio":
				sv = htmlsanitize.Sanitize(sv)
			}
			set[field] = sv
			continue
		}
		set[field] = v
	}
	if len(set) == 0 {
		return ErrNoValidFields
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetProfilePhoto overwrites the stored photo payload unconditionally.
// The payload is opaque; no format or size validation is done.
func (s *Store) SetProfilePhoto(ctx context.Context, id primitive.ObjectID, photoB64 string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"profile_photo_b64": photoB64}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// NamesByIDs resolves user ObjectID hex strings to full names in one
// query. Invalid and unknown ids are simply absent from the result.
func (s *Store) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	names := make(map[string]string, len(oids))
	if len(oids) == 0 {
		return names, nil
	}

	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": oids}},
		options.Find().SetProjection(bson.M{"full_name": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc struct {
			ID       primitive.ObjectID `bson:"_id"`
			FullName string             `bson:"full_name"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		names[doc.ID.Hex()] = doc.FullName
	}
	return names, cur.Err()
}
