package teamstore_test

import (
	"errors"
	"testing"

	teamstore "github.com/dalemusser/huddle/internal/app/store/teams"
	"github.com/dalemusser/huddle/internal/domain/models"
	"github.com/dalemusser/huddle/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	creator := primitive.NewObjectID().Hex()
	created, err := store.Create(ctx, models.Team{
		Name:          "Alpha",
		Description:   "Build a thing",
		RequiredSkill: []string{"Go"},
		PreferredSize: "4-5",
		Timeline:      "3 months",
		CreatorUserID: creator,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Status != models.TeamStatusRecruiting {
		t.Errorf("Status: got %q, want %q", created.Status, models.TeamStatusRecruiting)
	}
	if len(created.Members) != 1 || created.Members[0] != creator {
		t.Errorf("Members: got %v, want creator only", created.Members)
	}
	if created.DateCreated.IsZero() {
		t.Error("expected DateCreated to be set")
	}
}

func TestStore_Create_DefaultSizeDescriptor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Team{
		Name:          "Beta",
		Description:   "desc",
		CreatorUserID: primitive.NewObjectID().Hex(),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.PreferredSize != models.DefaultTeamSize {
		t.Errorf("PreferredSize: got %q, want %q", created.PreferredSize, models.DefaultTeamSize)
	}
	if created.RequiredSkill == nil {
		t.Error("expected RequiredSkill to be an empty list, not nil")
	}
}

func TestStore_Create_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	creator := primitive.NewObjectID().Hex()
	if _, err := store.Create(ctx, models.Team{Name: "Gamma", Description: "d", CreatorUserID: creator}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := store.Create(ctx, models.Team{Name: "Gamma", Description: "d", CreatorUserID: creator})
	if !errors.Is(err, teamstore.ErrDuplicateTeamName) {
		t.Fatalf("expected ErrDuplicateTeamName, got %v", err)
	}
}

func TestStore_FindByMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	member := primitive.NewObjectID().Hex()
	team := fixtures.CreateTeam(ctx, "Delta", member, "4-5")

	found, err := store.FindByMember(ctx, member)
	if err != nil {
		t.Fatalf("FindByMember failed: %v", err)
	}
	if found == nil || found.ID != team.ID {
		t.Fatalf("expected team %v, got %v", team.ID, found)
	}

	none, err := store.FindByMember(ctx, primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("FindByMember failed: %v", err)
	}
	if none != nil {
		t.Errorf("expected no team, got %v", none.Name)
	}
}

func TestStore_ListNotMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	me := primitive.NewObjectID().Hex()
	other := primitive.NewObjectID().Hex()
	fixtures.CreateTeam(ctx, "Mine", me, "4-5")
	theirs := fixtures.CreateTeam(ctx, "Theirs", other, "4-5")

	teams, err := store.ListNotMember(ctx, me)
	if err != nil {
		t.Fatalf("ListNotMember failed: %v", err)
	}
	if len(teams) != 1 || teams[0].ID != theirs.ID {
		t.Fatalf("expected only the other team, got %v", teams)
	}
}

func TestStore_AppendMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	creator := primitive.NewObjectID().Hex()
	team := fixtures.CreateTeam(ctx, "Epsilon", creator, "4-5")

	joiner := primitive.NewObjectID().Hex()
	if err := store.AppendMember(ctx, team.ID, joiner); err != nil {
		t.Fatalf("AppendMember failed: %v", err)
	}

	got, err := store.GetByID(ctx, team.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.Members) != 2 || got.Members[1] != joiner {
		t.Errorf("Members: got %v, want creator then joiner", got.Members)
	}

	err = store.AppendMember(ctx, primitive.NewObjectID(), joiner)
	if !errors.Is(err, teamstore.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if !errors.Is(err, teamstore.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}
