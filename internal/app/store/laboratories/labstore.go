// internal/app/store/laboratories/labstore.go
package labstore

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
	return &Store{c: db.Collection("laboratories")}
}

// ErrLaboratoryNotFound is returned when a lookup matches no laboratory.
var ErrLaboratoryNotFound = errors.New("laboratory not found")

// GetByHead loads the laboratory headed by the given user.
// A nil laboratory with nil error means the user heads none.
func (s *Store) GetByHead(ctx context.Context, headID primitive.ObjectID) (*models.Laboratory, error) {
	var lab models.Laboratory
	if err := s.c.FindOne(ctx, bson.M{"head_id": headID}).Decode(&lab); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &lab, nil
}

// GetByAbbreviation loads a laboratory by its short code.
func (s *Store) GetByAbbreviation(ctx context.Context, abbrev string) (*models.Laboratory, error) {
	var lab models.Laboratory
	if err := s.c.FindOne(ctx, bson.M{"abbreviation": abbrev}).Decode(&lab); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrLaboratoryNotFound
		}
		return nil, err
	}
	return &lab, nil
}

// ListByHead returns every laboratory headed by the given user.
func (s *Store) ListByHead(ctx context.Context, headID primitive.ObjectID) ([]models.Laboratory, error) {
	return s.list(ctx, bson.M{"head_id": headID})
}

// ListByEstablishment returns the laboratories under an establishment.
func (s *Store) ListByEstablishment(ctx context.Context, establishmentID primitive.ObjectID) ([]models.Laboratory, error) {
	return s.list(ctx, bson.M{"establishment_id": establishmentID})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Laboratory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Laboratory{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
