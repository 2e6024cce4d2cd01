// internal/app/store/teams/teamstore.go
package teamstore

import (
	"context"
	"errors"

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
	return &Store{c: db.Collection("teams")}
}

// ErrTeamNotFound is returned when a lookup matches no team.
var ErrTeamNotFound = errors.New("team not found")

// GetByAbbreviation loads a team by its short code.
func (s *Store) GetByAbbreviation(ctx context.Context, abbrev string) (*models.Team, error) {
	var team models.Team
	if err := s.c.FindOne(ctx, bson.M{"abbreviation": abbrev}).Decode(&team); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// ListByLaboratory returns the teams under a laboratory.
func (s *Store) ListByLaboratory(ctx context.Context, labID primitive.ObjectID) ([]models.Team, error) {
	return s.list(ctx, bson.M{"laboratory_id": labID})
}

// ListByHead returns every team headed by the given user, including
// standalone teams with no laboratory.
func (s *Store) ListByHead(ctx context.Context, headID primitive.ObjectID) ([]models.Team, error) {
	return s.list(ctx, bson.M{"head_id": headID})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Team, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Team{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
