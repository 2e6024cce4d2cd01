// internal/app/store/phdstudents/phdstore.go
package phdstore

import (
	"context"

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
	return &Store{c: db.Collection("phd_students")}
}

// ListBySupervisor returns the doctoral students supervised by the given
// user.
func (s *Store) ListBySupervisor(ctx context.Context, supervisorID primitive.ObjectID) ([]models.PhdStudent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"supervisor": supervisorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.PhdStudent{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
