// internal/app/store/establishments/establishmentstore.go
package establishmentstore

import (
	"context"
	"errors"

	"github.com/cedhub/cedhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("establishments")}
}

// ErrNoEstablishment is returned when no establishment matches the lookup.
var ErrNoEstablishment = errors.New("no establishment for this director")

// GetByDirector loads the establishment whose research director is the given
// user.
func (s *Store) GetByDirector(ctx context.Context, directorID primitive.ObjectID) (*models.Establishment, error) {
	var est models.Establishment
	if err := s.c.FindOne(ctx, bson.M{"research_director_id": directorID}).Decode(&est); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoEstablishment
		}
		return nil, err
	}
	return &est, nil
}
