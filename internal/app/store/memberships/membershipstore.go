// internal/app/store/memberships/membershipstore.go
package membershipstore

import (
	"context"
	"time"

	"github.com/cedhub/cedhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("team_memberships")}
}

// Add creates an active membership linking a user to a team.
func (s *Store) Add(ctx context.Context, userID, teamID primitive.ObjectID) (models.TeamMembership, error) {
	m := models.TeamMembership{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		TeamID:    teamID,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.TeamMembership{}, err
	}
	return m, nil
}

// Close soft-closes a membership. History stays in the collection; only
// active=true rows count as current.
func (s *Store) Close(ctx context.Context, membershipID primitive.ObjectID) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": membershipID},
		bson.M{"$set": bson.M{"active": false}})
	return err
}

// ListActiveByUser returns the user's current memberships in creation order.
func (s *Store) ListActiveByUser(ctx context.Context, userID primitive.ObjectID) ([]models.TeamMembership, error) {
	return s.list(ctx, bson.M{"user_id": userID, "active": true})
}

// ListActiveInTeam returns the team's current memberships restricted to the
// given user ids, in creation order. An empty restriction matches nothing.
func (s *Store) ListActiveInTeam(ctx context.Context, teamID primitive.ObjectID, userIDs []primitive.ObjectID) ([]models.TeamMembership, error) {
	return s.list(ctx, bson.M{
		"team_id": teamID,
		"active":  true,
		"user_id": bson.M{"$in": userIDs},
	})
}

// CountActiveFollowed counts the team's current memberships held by users in
// the followed set.
func (s *Store) CountActiveFollowed(ctx context.Context, teamID primitive.ObjectID, followedIDs []primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{
		"team_id": teamID,
		"active":  true,
		"user_id": bson.M{"$in": followedIDs},
	})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.TeamMembership, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.TeamMembership{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
