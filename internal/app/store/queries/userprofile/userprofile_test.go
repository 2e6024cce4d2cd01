// internal/app/store/queries/userprofile/userprofile_test.go
package userprofile_test

import (
	"errors"
	"testing"

	"github.com/cedhub/cedhub/internal/app/store/queries/userprofile"
	userstore "github.com/cedhub/cedhub/internal/app/store/users"
	"github.com/cedhub/cedhub/internal/app/system/roles"
	"github.com/cedhub/cedhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetUnknownUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	q := userprofile.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := q.Get(ctx, primitive.NewObjectID())
	if !errors.Is(err, userstore.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestGetEmptyRelations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	q := userprofile.New(db)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := f.CreateResearcher(ctx, "plain@example.org")

	p, err := q.Get(ctx, u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if p.Password != "" {
		t.Error("password should be cleared from the profile")
	}
	if p.LaboratoriesHeaded == nil || len(p.LaboratoriesHeaded) != 0 {
		t.Errorf("laboratoriesHeaded = %v, want empty slice", p.LaboratoriesHeaded)
	}
	if p.TeamsHeaded == nil || len(p.TeamsHeaded) != 0 {
		t.Errorf("teamsHeaded = %v, want empty slice", p.TeamsHeaded)
	}
	if p.TeamsMemberships == nil || len(p.TeamsMemberships) != 0 {
		t.Errorf("teamsMemberships = %v, want empty slice", p.TeamsMemberships)
	}
	if p.PhdStudents == nil || len(p.PhdStudents) != 0 {
		t.Errorf("phdStudents = %v, want empty slice", p.PhdStudents)
	}
	if p.CorrespondingFollowedUser != nil {
		t.Error("correspondingFollowedUser should be nil for an unlinked user")
	}
}

func TestGetFullAggregate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	q := userprofile.New(db)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	head := f.CreateUser(ctx, "full@example.org", roles.LaboratoryHead, roles.Researcher)
	est := f.CreateEstablishment(ctx, "CED Nord", head.ID)
	lab := f.CreateLaboratory(ctx, "LIG", est.ID, head.ID)
	team := f.CreateTeam(ctx, "APTIKAL", &lab.ID, head.ID)
	f.CreateMembership(ctx, head.ID, team.ID, true)
	f.CreatePhdStudent(ctx, "Iris", "Nguyen", head.ID)
	f.CreateFollowedUser(ctx, "auth-full", &head.ID)

	p, err := q.Get(ctx, head.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.LaboratoriesHeaded) != 1 || p.LaboratoriesHeaded[0].Abbreviation != "LIG" {
		t.Errorf("laboratoriesHeaded = %+v", p.LaboratoriesHeaded)
	}
	if len(p.TeamsHeaded) != 1 || p.TeamsHeaded[0].Abbreviation != "APTIKAL" {
		t.Errorf("teamsHeaded = %+v", p.TeamsHeaded)
	}
	if len(p.TeamsMemberships) != 1 {
		t.Errorf("teamsMemberships = %d, want 1", len(p.TeamsMemberships))
	}
	if len(p.PhdStudents) != 1 {
		t.Errorf("phdStudents = %d, want 1", len(p.PhdStudents))
	}
	if p.CorrespondingFollowedUser == nil || p.CorrespondingFollowedUser.AuthorID != "auth-full" {
		t.Errorf("correspondingFollowedUser = %+v", p.CorrespondingFollowedUser)
	}
}

func TestGetIgnoresInactiveMemberships(t *testing.T) {
	db := testutil.SetupTestDB(t)
	q := userprofile.New(db)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := f.CreateResearcher(ctx, "past@example.org")
	team := f.CreateTeam(ctx, "OLD", nil, primitive.NewObjectID())
	f.CreateMembership(ctx, u.ID, team.ID, false)

	p, err := q.Get(ctx, u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.TeamsMemberships) != 0 {
		t.Errorf("teamsMemberships = %d, want closed memberships excluded", len(p.TeamsMemberships))
	}
}
