// Package userprofile assembles the aggregate view of one account: its own
// fields plus everything headed, joined, supervised, and followed.
package userprofile

import (
	"context"
	"sync"

	followedstore "github.com/cedhub/cedhub/internal/app/store/followed"
	labstore "github.com/cedhub/cedhub/internal/app/store/laboratories"
	membershipstore "github.com/cedhub/cedhub/internal/app/store/memberships"
	phdstore "github.com/cedhub/cedhub/internal/app/store/phdstudents"
	teamstore "github.com/cedhub/cedhub/internal/app/store/teams"
	userstore "github.com/cedhub/cedhub/internal/app/store/users"
	"github.com/cedhub/cedhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Profile is the aggregate returned by GET /users/{id}. Absent relations are
// empty collections, never null.
type Profile struct {
	models.User

	LaboratoriesHeaded        []models.Laboratory     `json:"laboratoriesHeaded"`
	TeamsHeaded               []models.Team           `json:"teamsHeaded"`
	TeamsMemberships          []models.TeamMembership `json:"teamsMemberships"`
	PhdStudents               []models.PhdStudent     `json:"phdStudents"`
	CorrespondingFollowedUser *models.FollowedUser    `json:"correspondingFollowedUser"`
}

// Query bundles the per-collection stores the aggregate reads from.
type Query struct {
	Users       *userstore.Store
	Labs        *labstore.Store
	Teams       *teamstore.Store
	Memberships *membershipstore.Store
	Phd         *phdstore.Store
	Followed    *followedstore.Store
}

// New builds a Query over the given database.
func New(db *mongo.Database) *Query {
	return &Query{
		Users:       userstore.New(db),
		Labs:        labstore.New(db),
		Teams:       teamstore.New(db),
		Memberships: membershipstore.New(db),
		Phd:         phdstore.New(db),
		Followed:    followedstore.New(db),
	}
}

// Get loads the base user, then fans the five relation reads out
// concurrently. A missing base user is userstore.ErrUserNotFound; a failure
// in any relation read fails the whole aggregate (no partial results).
func (q *Query) Get(ctx context.Context, id primitive.ObjectID) (*Profile, error) {
	u, err := q.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p := &Profile{User: *u}
	p.User.Password = ""

	var wg sync.WaitGroup
	errs := make([]error, 5)

	wg.Add(5)
	go func() {
		defer wg.Done()
		p.LaboratoriesHeaded, errs[0] = q.Labs.ListByHead(ctx, id)
	}()
	go func() {
		defer wg.Done()
		p.TeamsHeaded, errs[1] = q.Teams.ListByHead(ctx, id)
	}()
	go func() {
		defer wg.Done()
		p.TeamsMemberships, errs[2] = q.Memberships.ListActiveByUser(ctx, id)
	}()
	go func() {
		defer wg.Done()
		p.PhdStudents, errs[3] = q.Phd.ListBySupervisor(ctx, id)
	}()
	go func() {
		defer wg.Done()
		p.CorrespondingFollowedUser, errs[4] = q.Followed.GetByUserID(ctx, id)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}
