// Package followedmembers answers "which followed authors sit in this
// laboratory or team", joining active memberships to followed records and to
// the account's first/last name.
package followedmembers

import (
	"context"

	followedstore "github.com/cedhub/cedhub/internal/app/store/followed"
	labstore "github.com/cedhub/cedhub/internal/app/store/laboratories"
	membershipstore "github.com/cedhub/cedhub/internal/app/store/memberships"
	teamstore "github.com/cedhub/cedhub/internal/app/store/teams"
	"github.com/cedhub/cedhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Member is one followed author annotated with the account's name.
type Member struct {
	models.FollowedUser

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Query composes the membership/followed/account join.
type Query struct {
	db          *mongo.Database
	Labs        *labstore.Store
	Teams       *teamstore.Store
	Memberships *membershipstore.Store
	Followed    *followedstore.Store
}

// New builds a Query over the given database.
func New(db *mongo.Database) *Query {
	return &Query{
		db:          db,
		Labs:        labstore.New(db),
		Teams:       teamstore.New(db),
		Memberships: membershipstore.New(db),
		Followed:    followedstore.New(db),
	}
}

// ByLaboratory resolves the laboratory by abbreviation, gathers active
// memberships across its teams restricted to followed accounts, and joins
// each to its followed record and account name. Result order follows
// membership order team by team.
func (q *Query) ByLaboratory(ctx context.Context, abbrev string) ([]Member, error) {
	lab, err := q.Labs.GetByAbbreviation(ctx, abbrev)
	if err != nil {
		return nil, err
	}

	teams, err := q.Teams.ListByLaboratory(ctx, lab.ID)
	if err != nil {
		return nil, err
	}

	followedIDs, err := q.Followed.LinkedUserIDs(ctx)
	if err != nil {
		return nil, err
	}

	memberships := []models.TeamMembership{}
	for _, team := range teams {
		ms, err := q.Memberships.ListActiveInTeam(ctx, team.ID, followedIDs)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, ms...)
	}

	return q.join(ctx, memberships)
}

// ByTeam is the same join narrowed to one team resolved by abbreviation.
func (q *Query) ByTeam(ctx context.Context, abbrev string) ([]Member, error) {
	team, err := q.Teams.GetByAbbreviation(ctx, abbrev)
	if err != nil {
		return nil, err
	}

	followedIDs, err := q.Followed.LinkedUserIDs(ctx)
	if err != nil {
		return nil, err
	}

	memberships, err := q.Memberships.ListActiveInTeam(ctx, team.ID, followedIDs)
	if err != nil {
		return nil, err
	}

	return q.join(ctx, memberships)
}

// join pairs each membership with its followed record and account name.
// Records are fetched in bulk and paired by user_id, then emitted in
// membership order; a membership whose joins are incomplete is skipped
// rather than misaligned.
func (q *Query) join(ctx context.Context, memberships []models.TeamMembership) ([]Member, error) {
	out := []Member{}
	if len(memberships) == 0 {
		return out, nil
	}

	ids := make([]primitive.ObjectID, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.UserID)
	}

	followedByUser, err := q.followedByUserID(ctx, ids)
	if err != nil {
		return nil, err
	}
	namesByUser, err := q.namesByUserID(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, m := range memberships {
		fu, ok := followedByUser[m.UserID]
		if !ok {
			continue
		}
		name := namesByUser[m.UserID]
		out = append(out, Member{
			FollowedUser: fu,
			FirstName:    name.First,
			LastName:     name.Last,
		})
	}
	return out, nil
}

func (q *Query) followedByUserID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.FollowedUser, error) {
	cur, err := q.db.Collection("followed_users").Find(ctx, bson.M{"user_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var all []models.FollowedUser
	if err := cur.All(ctx, &all); err != nil {
		return nil, err
	}

	byUser := make(map[primitive.ObjectID]models.FollowedUser, len(all))
	for _, fu := range all {
		if fu.UserID != nil {
			byUser[*fu.UserID] = fu
		}
	}
	return byUser, nil
}

type accountName struct {
	First string
	Last  string
}

func (q *Query) namesByUserID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]accountName, error) {
	opts := options.Find().SetProjection(bson.M{"firstName": 1, "lastName": 1})
	cur, err := q.db.Collection("users").Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var all []struct {
		ID        primitive.ObjectID `bson:"_id"`
		FirstName string             `bson:"firstName"`
		LastName  string             `bson:"lastName"`
	}
	if err := cur.All(ctx, &all); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]accountName, len(all))
	for _, u := range all {
		byID[u.ID] = accountName{First: u.FirstName, Last: u.LastName}
	}
	return byID, nil
}
