package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/cedhub/cedhub/internal/app/system/roles"
	"github.com/cedhub/cedhub/internal/domain/models"
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

// CreateUser creates a test user with the given email and roles.
func (f *Fixtures) CreateUser(ctx context.Context, email string, userRoles ...string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:           primitive.NewObjectID(),
		Email:        email,
		Password:     "hashed",
		Roles:        userRoles,
		HasConfirmed: true,
		FirstName:    "Test",
		LastName:     "User",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateResearcher creates a test user with the RESEARCHER role.
func (f *Fixtures) CreateResearcher(ctx context.Context, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, email, roles.Researcher)
}

// CreateNamedUser creates a researcher with explicit first/last names.
func (f *Fixtures) CreateNamedUser(ctx context.Context, email, firstName, lastName string) models.User {
	f.t.Helper()

	u := f.CreateUser(ctx, email, roles.Researcher)
	_, err := f.db.Collection("users").UpdateByID(ctx, u.ID,
		map[string]any{"$set": map[string]any{"firstName": firstName, "lastName": lastName}})
	if err != nil {
		f.t.Fatalf("failed to name test user: %v", err)
	}
	u.FirstName = firstName
	u.LastName = lastName
	return u
}

// CreateEstablishment creates a test establishment headed by the given
// research director.
func (f *Fixtures) CreateEstablishment(ctx context.Context, name string, directorID primitive.ObjectID) models.Establishment {
	f.t.Helper()

	est := models.Establishment{
		ID:                 primitive.NewObjectID(),
		Name:               name,
		ResearchDirectorID: directorID,
		CreatedAt:          time.Now().UTC(),
	}
	if _, err := f.db.Collection("establishments").InsertOne(ctx, est); err != nil {
		f.t.Fatalf("failed to create test establishment: %v", err)
	}
	return est
}

// CreateLaboratory creates a test laboratory under an establishment.
func (f *Fixtures) CreateLaboratory(ctx context.Context, abbrev string, establishmentID, headID primitive.ObjectID) models.Laboratory {
	f.t.Helper()

	lab := models.Laboratory{
		ID:              primitive.NewObjectID(),
		Name:            "Laboratory " + abbrev,
		Abbreviation:    abbrev,
		EstablishmentID: establishmentID,
		HeadID:          headID,
		CreatedAt:       time.Now().UTC(),
	}
	if _, err := f.db.Collection("laboratories").InsertOne(ctx, lab); err != nil {
		f.t.Fatalf("failed to create test laboratory: %v", err)
	}
	return lab
}

// CreateTeam creates a test team under a laboratory.
func (f *Fixtures) CreateTeam(ctx context.Context, abbrev string, labID *primitive.ObjectID, headID primitive.ObjectID) models.Team {
	f.t.Helper()

	team := models.Team{
		ID:           primitive.NewObjectID(),
		Name:         "Team " + abbrev,
		Abbreviation: abbrev,
		LaboratoryID: labID,
		HeadID:       headID,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := f.db.Collection("teams").InsertOne(ctx, team); err != nil {
		f.t.Fatalf("failed to create test team: %v", err)
	}
	return team
}

// CreateMembership links a user to a team. active controls whether the
// membership counts as current.
func (f *Fixtures) CreateMembership(ctx context.Context, userID, teamID primitive.ObjectID, active bool) models.TeamMembership {
	f.t.Helper()

	m := models.TeamMembership{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		TeamID:    teamID,
		Active:    active,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("team_memberships").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test membership: %v", err)
	}
	return m
}

// CreateFollowedUser creates a followed-author record. userID may be nil for
// purely external authors.
func (f *Fixtures) CreateFollowedUser(ctx context.Context, authorID string, userID *primitive.ObjectID, pubs ...models.Publication) models.FollowedUser {
	f.t.Helper()

	if pubs == nil {
		pubs = []models.Publication{}
	}
	fu := models.FollowedUser{
		ID:           primitive.NewObjectID(),
		AuthorID:     authorID,
		UserID:       userID,
		Publications: pubs,
		FollowedAt:   time.Now().UTC(),
	}
	if _, err := f.db.Collection("followed_users").InsertOne(ctx, fu); err != nil {
		f.t.Fatalf("failed to create test followed user: %v", err)
	}
	return fu
}

// CreatePhdStudent creates a doctoral student supervised by the given user.
func (f *Fixtures) CreatePhdStudent(ctx context.Context, firstName, lastName string, supervisorID primitive.ObjectID) models.PhdStudent {
	f.t.Helper()

	p := models.PhdStudent{
		ID:         primitive.NewObjectID(),
		FirstName:  firstName,
		LastName:   lastName,
		Supervisor: supervisorID,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := f.db.Collection("phd_students").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test phd student: %v", err)
	}
	return p
}
